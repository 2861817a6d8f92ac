package ranking

import (
	"sort"
	"strings"

	"github.com/spigell/halatuju/internal/eligibility"
	"github.com/spigell/halatuju/internal/merit"
	"github.com/spigell/halatuju/internal/offering"
)

// TopN is the size of the headline list.
const TopN = 5

var institutionPriority = map[string]int{
	"Penyelidikan":   14,
	"Komprehensif":   13,
	"Berfokus":       12,
	"Teknikal":       11,
	"Premier":        10,
	"Konvensional":   9,
	"JMTI":           8,
	"METrO":          7,
	"Kolej Komuniti": 6,
	"ADTEC":          5,
	"IKTBN":          4,
	"ILP":            3,
	"IKBN":           2,
	"IKSN":           2,
	"IKBS":           1,
}

// InstitutionPriority ranks an institution subcategory. Unknown subcategories are 0.
func InstitutionPriority(subcategory string) int {
	return institutionPriority[strings.TrimSpace(subcategory)]
}

// CredentialPriority ranks a course by the credential its name implies.
func CredentialPriority(name string) int {
	n := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasPrefix(n, "asasi") || strings.Contains(n, "foundation"):
		return 4
	case strings.HasPrefix(n, "diploma"):
		return 3
	case strings.Contains(n, "sijil lanjutan") || strings.Contains(n, "advanced certificate"):
		return 2
	case strings.HasPrefix(n, "sijil") || strings.HasPrefix(n, "certificate"):
		return 1
	default:
		return 0
	}
}

// Result is a ranked list split into the headline entries and the rest.
type Result struct {
	Top5 []*offering.Offering `json:"top_5"`
	Rest []*offering.Offering `json:"rest"`
}

// All returns Top5 followed by Rest.
func (r Result) All() []*offering.Offering {
	out := make([]*offering.Offering, 0, len(r.Top5)+len(r.Rest))
	out = append(out, r.Top5...)
	return append(out, r.Rest...)
}

type scored struct {
	o           *offering.Offering
	credential  int
	institution int
}

// Rank scores every offering and orders them best first. Offerings are
// copied; the input slice and its elements are left untouched.
func Rank(offerings []*offering.Offering, signals Signals, lookups Lookups) Result {
	items := make([]scored, 0, len(offerings))
	for _, in := range offerings {
		if in == nil {
			continue
		}
		o := *in

		b := FitScore(signals, lookups.CourseTags[o.CourseID], lookups.Modifiers[o.InstitutionID])
		o.FitScore = b.Score
		o.FitReasons = b.Reasons()
		applyMeritPenalty(&o)

		items = append(items, scored{
			o:           &o,
			credential:  CredentialPriority(o.CourseName),
			institution: InstitutionPriority(lookups.Subcategories[o.InstitutionID]),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.o.FitScore != b.o.FitScore {
			return a.o.FitScore > b.o.FitScore
		}
		if a.credential != b.credential {
			return a.credential > b.credential
		}
		if a.institution != b.institution {
			return a.institution > b.institution
		}
		if ca, cb := a.o.Cutoff(), b.o.Cutoff(); ca != cb {
			return ca > cb
		}
		return a.o.CourseName < b.o.CourseName
	})

	res := Result{Top5: []*offering.Offering{}, Rest: []*offering.Offering{}}
	for i, it := range items {
		if i < TopN {
			res.Top5 = append(res.Top5, it.o)
		} else {
			res.Rest = append(res.Rest, it.o)
		}
	}

	return res
}

// applyMeritPenalty adjusts the capped fit score by the admission likelihood.
// TVET courses, courses without a cutoff and students without a merit are
// left as they are.
func applyMeritPenalty(o *offering.Offering) {
	cutoff := o.Cutoff()
	if cutoff <= 0 || o.StudentMerit == nil || o.SourceType == eligibility.SourceTVET {
		return
	}

	band, _ := merit.CheckProbability(*o.StudentMerit, cutoff)
	o.Likelihood = band
	o.FitScore += band.Penalty()
}
