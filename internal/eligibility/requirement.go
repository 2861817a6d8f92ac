package eligibility

import "math"

// SourceTVET marks courses from TVET agencies. Merit cutoffs carry no meaning there.
const SourceTVET = "tvet"

// Requirement is one course's entry requirements. Every flag defaults to
// false and every threshold to zero, which reads as "not required".
type Requirement struct {
	CourseID   string `mapstructure:"course_id"`
	SourceType string `mapstructure:"source_type"`

	// Demographic gate.
	ReqMalaysian bool `mapstructure:"req_malaysian"`
	ReqMale      bool `mapstructure:"req_male"`
	ReqFemale    bool `mapstructure:"req_female"`
	NoColorBlind bool `mapstructure:"no_colorblind"`
	NoDisability bool `mapstructure:"no_disability"`

	ThreeMOnly bool `mapstructure:"3m_only"`

	// Core subjects.
	PassBM             bool `mapstructure:"pass_bm"`
	CreditBM           bool `mapstructure:"credit_bm"`
	PassHistory        bool `mapstructure:"pass_history"`
	PassEnglish        bool `mapstructure:"pass_eng"`
	CreditEnglish      bool `mapstructure:"credit_english"`
	PassMath           bool `mapstructure:"pass_math"`
	CreditMath         bool `mapstructure:"credit_math"`
	PassMathAddMath    bool `mapstructure:"pass_math_addmath"`
	CreditAddMath      bool `mapstructure:"credit_addmath"`
	CreditMathOrAdd    bool `mapstructure:"credit_math_or_addmath"`
	PassScience        bool `mapstructure:"pass_sci"`
	CreditScience      bool `mapstructure:"credit_sci"`
	CreditScienceGroup bool `mapstructure:"credit_science_group"`
	CreditBMBI         bool `mapstructure:"credit_bmbi"`

	// Grade B variants.
	CreditBMB      bool `mapstructure:"credit_bm_b"`
	CreditEnglishB bool `mapstructure:"credit_eng_b"`
	CreditMathB    bool `mapstructure:"credit_math_b"`
	CreditAddMathB bool `mapstructure:"credit_addmath_b"`

	// Distinction variants.
	DistinctionBM      bool `mapstructure:"distinction_bm"`
	DistinctionEnglish bool `mapstructure:"distinction_eng"`
	DistinctionMath    bool `mapstructure:"distinction_math"`
	DistinctionAddMath bool `mapstructure:"distinction_addmath"`
	DistinctionBio     bool `mapstructure:"distinction_bio"`
	DistinctionPhy     bool `mapstructure:"distinction_phy"`
	DistinctionChem    bool `mapstructure:"distinction_chem"`
	DistinctionScience bool `mapstructure:"distinction_sci"`

	// Religious and moral education.
	PassIslam   bool `mapstructure:"pass_islam"`
	CreditIslam bool `mapstructure:"credit_islam"`
	PassMoral   bool `mapstructure:"pass_moral"`
	CreditMoral bool `mapstructure:"credit_moral"`

	// TVET family. Science here never includes Biology.
	PassMathScience   bool `mapstructure:"pass_math_science"`
	PassScienceTech   bool `mapstructure:"pass_science_tech"`
	CreditMathSci     bool `mapstructure:"credit_math_sci"`
	CreditMathSciTech bool `mapstructure:"credit_math_sci_tech"`

	// Polytechnic family. Science includes Biology; stream flags also satisfy.
	PassSTV    bool `mapstructure:"pass_stv"`
	CreditSTV  bool `mapstructure:"credit_stv"`
	CreditSF   bool `mapstructure:"credit_sf"`
	CreditSFMT bool `mapstructure:"credit_sfmt"`

	// Advisory.
	ReqInterview bool `mapstructure:"req_interview"`
	Single       bool `mapstructure:"single"`

	MinCredits        int      `mapstructure:"min_credits"`
	MinPass           int      `mapstructure:"min_pass"`
	MaxAggregateUnits int      `mapstructure:"max_aggregate_units"`
	MeritCutoff       *float64 `mapstructure:"merit_cutoff"`

	ReqGroupDiversity   bool                `mapstructure:"req_group_diversity"`
	SubjectGroupReq     GroupRules          `mapstructure:"subject_group_req"`
	ComplexRequirements ComplexRequirements `mapstructure:"complex_requirements"`
}

// Cutoff returns the merit cutoff, zero when absent or not a finite number.
func (r Requirement) Cutoff() float64 {
	return FiniteCutoff(r.MeritCutoff)
}

// FiniteCutoff dereferences a cutoff. Nil, NaN and infinite values read as zero.
func FiniteCutoff(c *float64) float64 {
	if c == nil || math.IsNaN(*c) || math.IsInf(*c, 0) {
		return 0
	}
	return *c
}

// IsTVET reports whether the course comes from a TVET source.
func (r Requirement) IsTVET() bool {
	return r.SourceType == SourceTVET
}
