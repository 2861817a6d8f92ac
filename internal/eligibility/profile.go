package eligibility

import (
	"strings"

	"github.com/spigell/halatuju/internal/grade"
)

// Gender of the applicant.
type Gender string

const (
	GenderUnknown Gender = ""
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
)

var genderAliases = map[string]Gender{
	"male":      GenderMale,
	"m":         GenderMale,
	"lelaki":    GenderMale,
	"ஆண்":       GenderMale,
	"female":    GenderFemale,
	"f":         GenderFemale,
	"perempuan": GenderFemale,
	"பெண்":      GenderFemale,
}

// ParseGender accepts English and Malay spellings.
func ParseGender(s string) Gender {
	return genderAliases[strings.ToLower(strings.TrimSpace(s))]
}

// Marital status values understood by the "single" advisory check.
const (
	MaritalUnknown = ""
	MaritalSingle  = "single"
	MaritalMarried = "married"
)

// ProfileInput is the raw applicant data as it arrives from configuration or
// a request body.
type ProfileInput struct {
	Grades           map[string]string `mapstructure:"grades" json:"grades"`
	Gender           string            `mapstructure:"gender" json:"gender"`
	Citizen          bool              `mapstructure:"citizen" json:"citizen"`
	ColorBlind       bool              `mapstructure:"colorblind" json:"colorblind"`
	Disability       bool              `mapstructure:"disability" json:"disability"`
	MaritalStatus    string            `mapstructure:"marital-status" json:"marital_status"`
	TechnicalStream  *bool             `mapstructure:"technical-stream" json:"technical_stream"`
	VocationalStream *bool             `mapstructure:"vocational-stream" json:"vocational_stream"`
	Merit            *float64          `mapstructure:"merit" json:"merit"`
}

// Profile is an immutable applicant profile. Build it with NewProfile.
type Profile struct {
	grades           map[string]grade.Grade
	gender           Gender
	citizen          bool
	colorBlind       bool
	disability       bool
	maritalStatus    string
	technicalStream  bool
	vocationalStream bool
	merit            float64
	hasMerit         bool
	credits          int
	passes           int
}

// NewProfile normalises the input. Stream flags missing from the input are
// inferred from the grade sheet.
func NewProfile(in ProfileInput) Profile {
	grades := make(map[string]grade.Grade, len(in.Grades))
	for code, value := range in.Grades {
		g := grade.Parse(value)
		if !g.Valid() {
			continue
		}
		grades[grade.MapSubjectCode(code)] = g
	}

	tech, voc := InferStreams(grades)
	if in.TechnicalStream != nil {
		tech = *in.TechnicalStream
	}
	if in.VocationalStream != nil {
		voc = *in.VocationalStream
	}

	p := Profile{
		grades:           grades,
		gender:           ParseGender(in.Gender),
		citizen:          in.Citizen,
		colorBlind:       in.ColorBlind,
		disability:       in.Disability,
		maritalStatus:    strings.ToLower(strings.TrimSpace(in.MaritalStatus)),
		technicalStream:  tech,
		vocationalStream: voc,
	}

	if in.Merit != nil {
		p.merit = *in.Merit
		p.hasMerit = true
	}

	for _, g := range grades {
		if grade.MeetsTier(g, grade.TierCredit) {
			p.credits++
		}
		if grade.MeetsTier(g, grade.TierPass) {
			p.passes++
		}
	}

	return p
}

// WithMerit returns a copy of p carrying a computed merit.
func (p Profile) WithMerit(merit float64) Profile {
	p.merit = merit
	p.hasMerit = true
	return p
}

// InferStreams reports whether the student passed any technical or vocational
// elective.
func InferStreams(grades map[string]grade.Grade) (technical, vocational bool) {
	return anyMeets(grades, grade.TechnicalSubjects, grade.TierPass),
		anyMeets(grades, grade.VocationalSubjects, grade.TierPass)
}

func anyMeets(grades map[string]grade.Grade, subjects []string, t grade.Tier) bool {
	for _, s := range subjects {
		if grade.MeetsTier(grades[s], t) {
			return true
		}
	}
	return false
}

// Grade returns the grade for a subject; unknown subjects are not attempted.
func (p Profile) Grade(subject string) grade.Grade {
	return p.grades[subject]
}

// Grades returns a copy of the grade sheet.
func (p Profile) Grades() map[string]grade.Grade {
	out := make(map[string]grade.Grade, len(p.grades))
	for k, v := range p.grades {
		out[k] = v
	}
	return out
}

func (p Profile) Gender() Gender { return p.gender }
func (p Profile) Citizen() bool { return p.citizen }
func (p Profile) ColorBlind() bool { return p.colorBlind }
func (p Profile) Disability() bool { return p.disability }
func (p Profile) MaritalStatus() string { return p.maritalStatus }
func (p Profile) TechnicalStream() bool { return p.technicalStream }
func (p Profile) VocationalStream() bool { return p.vocationalStream }

// Merit returns the student's merit and whether it is known.
func (p Profile) Merit() (float64, bool) { return p.merit, p.hasMerit }

// Credits counts subjects at credit tier or better.
func (p Profile) Credits() int { return p.credits }

// Passes counts subjects at pass tier or better.
func (p Profile) Passes() int { return p.passes }
