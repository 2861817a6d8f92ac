package eligibility

import (
	"fmt"
	"strings"

	"github.com/spigell/halatuju/internal/grade"
)

type family int

const (
	familyDemographic family = iota
	familyThreeM
	familyAcademic
	familyAdvisory
)

// check is one flag-driven predicate.
type check struct {
	label  string
	family family
	active func(r Requirement) bool
	passed func(p Profile) bool
	reason string
}

var (
	tvetScience  = []string{grade.Physics, grade.Chem, grade.Science}
	polyScience  = []string{grade.Physics, grade.Chem, grade.Bio, grade.Science}
	scienceGroup = []string{grade.Physics, grade.Chem, grade.Bio, grade.Science, grade.AddSci, grade.CompSci}
)

// checks is evaluated in order. Adding a flag to Requirement means adding it here.
var checks = []check{
	// Demographic gate.
	{
		label:  "chk_malaysian",
		family: familyDemographic,
		active: func(r Requirement) bool { return r.ReqMalaysian },
		passed: func(p Profile) bool { return p.Citizen() },
		reason: "citizens only",
	},
	{
		label:  "chk_male",
		family: familyDemographic,
		active: func(r Requirement) bool { return r.ReqMale },
		passed: func(p Profile) bool { return p.Gender() == GenderMale },
		reason: "male applicants only",
	},
	{
		label:  "chk_female",
		family: familyDemographic,
		active: func(r Requirement) bool { return r.ReqFemale },
		passed: func(p Profile) bool { return p.Gender() == GenderFemale },
		reason: "female applicants only",
	},
	{
		label:  "chk_colorblind",
		family: familyDemographic,
		active: func(r Requirement) bool { return r.NoColorBlind },
		passed: func(p Profile) bool { return !p.ColorBlind() },
		reason: "not open to colour-blind applicants",
	},
	{
		label:  "chk_disability",
		family: familyDemographic,
		active: func(r Requirement) bool { return r.NoDisability },
		passed: func(p Profile) bool { return !p.Disability() },
		reason: "not open to applicants with a disability",
	},

	{
		label:  "chk_3m",
		family: familyThreeM,
		active: func(r Requirement) bool { return r.ThreeMOnly },
		passed: func(p Profile) bool {
			return grade.Attempted(p.Grade(grade.BM)) && grade.Attempted(p.Grade(grade.Math))
		},
		reason: "needs bm and math attempted",
	},

	// Core subjects.
	tierCheck("chk_pass_bm", func(r Requirement) bool { return r.PassBM }, grade.TierPass, grade.BM),
	tierCheck("chk_credit_bm", func(r Requirement) bool { return r.CreditBM }, grade.TierCredit, grade.BM),
	tierCheck("chk_pass_hist", func(r Requirement) bool { return r.PassHistory }, grade.TierPass, grade.History),
	tierCheck("chk_pass_eng", func(r Requirement) bool { return r.PassEnglish }, grade.TierPass, grade.English),
	tierCheck("chk_credit_eng", func(r Requirement) bool { return r.CreditEnglish }, grade.TierCredit, grade.English),
	tierCheck("chk_pass_math", func(r Requirement) bool { return r.PassMath }, grade.TierPass, grade.Math),
	tierCheck("chk_credit_math", func(r Requirement) bool { return r.CreditMath }, grade.TierCredit, grade.Math, grade.AddMath),
	tierCheck("chk_pass_math_addmath", func(r Requirement) bool { return r.PassMathAddMath }, grade.TierPass, grade.Math, grade.AddMath),
	tierCheck("chk_credit_addmath", func(r Requirement) bool { return r.CreditAddMath }, grade.TierCredit, grade.AddMath),
	tierCheck("chk_credit_math_or_addmath", func(r Requirement) bool { return r.CreditMathOrAdd }, grade.TierCredit, grade.Math, grade.AddMath),
	tierCheck("chk_pass_sci", func(r Requirement) bool { return r.PassScience }, grade.TierPass, grade.Science),
	tierCheck("chk_credit_sci", func(r Requirement) bool { return r.CreditScience }, grade.TierCredit, grade.Science),
	tierCheck("chk_credit_sci_group", func(r Requirement) bool { return r.CreditScienceGroup }, grade.TierCredit, scienceGroup...),
	tierCheck("chk_credit_bmbi", func(r Requirement) bool { return r.CreditBMBI }, grade.TierCredit, grade.BM, grade.English),

	// Grade B.
	letterCheck("chk_credit_bm_b", func(r Requirement) bool { return r.CreditBMB }, grade.B, grade.BM),
	letterCheck("chk_credit_eng_b", func(r Requirement) bool { return r.CreditEnglishB }, grade.B, grade.English),
	letterCheck("chk_credit_math_b", func(r Requirement) bool { return r.CreditMathB }, grade.B, grade.Math),
	letterCheck("chk_credit_addmath_b", func(r Requirement) bool { return r.CreditAddMathB }, grade.B, grade.AddMath),

	// Distinction.
	letterCheck("chk_distinction_bm", func(r Requirement) bool { return r.DistinctionBM }, grade.AMinus, grade.BM),
	letterCheck("chk_distinction_eng", func(r Requirement) bool { return r.DistinctionEnglish }, grade.AMinus, grade.English),
	letterCheck("chk_distinction_math", func(r Requirement) bool { return r.DistinctionMath }, grade.AMinus, grade.Math),
	letterCheck("chk_distinction_addmath", func(r Requirement) bool { return r.DistinctionAddMath }, grade.AMinus, grade.AddMath),
	letterCheck("chk_distinction_bio", func(r Requirement) bool { return r.DistinctionBio }, grade.AMinus, grade.Bio),
	letterCheck("chk_distinction_phy", func(r Requirement) bool { return r.DistinctionPhy }, grade.AMinus, grade.Physics),
	letterCheck("chk_distinction_chem", func(r Requirement) bool { return r.DistinctionChem }, grade.AMinus, grade.Chem),
	letterCheck("chk_distinction_sci", func(r Requirement) bool { return r.DistinctionScience }, grade.AMinus, grade.Science),

	// Religious and moral education, independent of each other.
	tierCheck("chk_pass_islam", func(r Requirement) bool { return r.PassIslam }, grade.TierPass, grade.Islam),
	tierCheck("chk_credit_islam", func(r Requirement) bool { return r.CreditIslam }, grade.TierCredit, grade.Islam),
	tierCheck("chk_pass_moral", func(r Requirement) bool { return r.PassMoral }, grade.TierPass, grade.Moral),
	tierCheck("chk_credit_moral", func(r Requirement) bool { return r.CreditMoral }, grade.TierCredit, grade.Moral),

	// TVET.
	tierCheck("chk_pass_math_sci_nb", func(r Requirement) bool { return r.PassMathScience }, grade.TierPass,
		concat([]string{grade.Math}, tvetScience)...),
	tierCheck("chk_pass_sci_tech", func(r Requirement) bool { return r.PassScienceTech }, grade.TierPass,
		concat(tvetScience, grade.TechnicalSubjects)...),
	tierCheck("chk_credit_math_sci", func(r Requirement) bool { return r.CreditMathSci }, grade.TierCredit,
		concat([]string{grade.Math}, tvetScience)...),
	tierCheck("chk_credit_math_sci_tech", func(r Requirement) bool { return r.CreditMathSciTech }, grade.TierCredit,
		concat([]string{grade.Math}, tvetScience, grade.TechnicalSubjects)...),

	// Polytechnic.
	streamCheck("chk_pass_stv", func(r Requirement) bool { return r.PassSTV }, grade.TierPass,
		concat(polyScience, grade.TechnicalSubjects, grade.VocationalSubjects)...),
	streamCheck("chk_credit_stv", func(r Requirement) bool { return r.CreditSTV }, grade.TierCredit,
		concat(polyScience, grade.TechnicalSubjects, grade.VocationalSubjects)...),
	streamCheck("chk_credit_sf", func(r Requirement) bool { return r.CreditSF }, grade.TierCredit,
		grade.Science, grade.Physics, grade.Bio),
	streamCheck("chk_credit_sfmt", func(r Requirement) bool { return r.CreditSFMT }, grade.TierCredit,
		grade.Science, grade.Physics, grade.Bio, grade.AddMath),
}

// advisoryChecks run after the academic battery and never block.
var advisoryChecks = []check{
	{
		label:  "chk_interview",
		family: familyAdvisory,
		active: func(r Requirement) bool { return r.ReqInterview },
		passed: func(Profile) bool { return true },
		reason: "interview required",
	},
	{
		label:  "chk_single",
		family: familyAdvisory,
		active: func(r Requirement) bool { return r.Single },
		passed: func(p Profile) bool { return p.MaritalStatus() != MaritalMarried },
		reason: "unmarried applicants only",
	},
}

func tierCheck(label string, active func(Requirement) bool, t grade.Tier, subjects ...string) check {
	return check{
		label:  label,
		family: familyAcademic,
		active: active,
		passed: func(p Profile) bool { return anyMeets(p.grades, subjects, t) },
		reason: fmt.Sprintf("needs a %s in %s", t, subjectList(subjects)),
	}
}

func letterCheck(label string, active func(Requirement) bool, minimum grade.Grade, subject string) check {
	return check{
		label:  label,
		family: familyAcademic,
		active: active,
		passed: func(p Profile) bool { return grade.MeetsGrade(p.Grade(subject), minimum) },
		reason: fmt.Sprintf("needs grade %s or better in %s", minimum, subject),
	}
}

// streamCheck is a tierCheck that is also satisfied by technical or vocational
// stream participation.
func streamCheck(label string, active func(Requirement) bool, t grade.Tier, subjects ...string) check {
	c := tierCheck(label, active, t, subjects...)
	byGrade := c.passed
	c.passed = func(p Profile) bool {
		return p.TechnicalStream() || p.VocationalStream() || byGrade(p)
	}
	c.reason += " or a technical/vocational stream"
	return c
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func subjectList(subjects []string) string {
	if len(subjects) == 1 {
		return subjects[0]
	}
	const shown = 5
	if len(subjects) > shown {
		return "any of " + strings.Join(subjects[:shown], ", ") + ", ..."
	}
	return "any of " + strings.Join(subjects, ", ")
}
