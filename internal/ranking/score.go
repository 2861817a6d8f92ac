package ranking

import "strings"

const (
	BaseScore      = 100
	CategoryCap    = 6
	InstitutionCap = 5
	GlobalCap      = 20
)

// Breakdown is the scoring trace of one offering.
type Breakdown struct {
	// Categories holds each category after clamping to CategoryCap.
	Categories  map[Category]int `json:"categories"`
	Course      int              `json:"course"`
	Institution int              `json:"institution"`
	// Total is Course+Institution clamped to GlobalCap.
	Total    int      `json:"total"`
	Score    int      `json:"score"`
	Matches  []string `json:"matches,omitempty"`
	Cautions []string `json:"cautions,omitempty"`
}

// FitScore scores a course at an institution against the student's signals.
// The merit penalty is not part of the fit score; Rank applies it afterwards.
func FitScore(signals Signals, tags CourseTags, mods InstitutionModifiers) Breakdown {
	b := Breakdown{Categories: make(map[Category]int, len(Categories))}

	raw := make(map[Category]int, len(Categories))
	for _, c := range courseRules {
		for _, r := range c {
			if !r.when(signals, tags) {
				continue
			}
			raw[r.category] += r.delta
			b.note(r.match, r.caution)
			break
		}
	}

	for _, cat := range Categories {
		capped := clamp(raw[cat], CategoryCap)
		b.Categories[cat] = capped
		b.Course += capped
	}

	inst := 0
	for _, c := range institutionRules {
		for _, r := range c {
			if !r.when(signals, mods) {
				continue
			}
			inst += r.delta
			b.note(r.match, r.caution)
			break
		}
	}
	b.Institution = clamp(inst, InstitutionCap)

	b.Total = clamp(b.Course+b.Institution, GlobalCap)
	b.Score = BaseScore + b.Total

	return b
}

func (b *Breakdown) note(match, caution string) {
	if match != "" {
		b.Matches = append(b.Matches, match)
	}
	if caution != "" {
		b.Cautions = append(b.Cautions, caution)
	}
}

// Reasons renders the match phrases as one sentence followed by the cautions.
func (b Breakdown) Reasons() []string {
	var out []string

	seen := make(map[string]bool, len(b.Matches))
	var unique []string
	for _, m := range b.Matches {
		if !seen[m] {
			seen[m] = true
			unique = append(unique, m)
		}
	}

	switch n := len(unique); n {
	case 0:
	case 1:
		out = append(out, "Matches or aligns with your "+unique[0]+".")
	case 2:
		out = append(out, "Matches or aligns with your "+unique[0]+" and "+unique[1]+".")
	default:
		out = append(out, "Matches or aligns with your "+strings.Join(unique[:n-1], ", ")+", and "+unique[n-1]+".")
	}

	return append(out, b.Cautions...)
}

func clamp(v, limit int) int {
	return max(-limit, min(v, limit))
}
