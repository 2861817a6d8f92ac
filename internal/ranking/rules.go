package ranking

// rule adds delta to category when it fires and records an optional match or
// caution phrase.
type rule struct {
	category Category
	delta    int
	when     func(s Signals, t CourseTags) bool
	match    string
	caution  string
}

// chain fires at most one rule: the first whose condition holds.
type chain []rule

type instRule struct {
	delta   int
	when    func(s Signals, m InstitutionModifiers) bool
	match   string
	caution string
}

type instChain []instRule

func oneOf(v string, options ...string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}

var courseRules = []chain{
	// Work preference.
	{
		{
			category: WorkPreference,
			delta:    5,
			match:    "hands-on work preference",
			when: func(s Signals, t CourseTags) bool {
				return s.Has(WorkPreference, "hands_on") && t.WorkModality == "hands_on"
			},
		},
		{
			category: WorkPreference,
			delta:    -3,
			when: func(s Signals, t CourseTags) bool {
				return !s.Has(WorkPreference, "hands_on") && t.WorkModality == "hands_on"
			},
		},
	},
	{{
		category: WorkPreference,
		delta:    3,
		match:    "problem-solving style",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(WorkPreference, "problem_solving") && t.WorkModality == "mixed"
		},
	}},
	{{
		category: WorkPreference,
		delta:    4,
		match:    "desire to help people",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(WorkPreference, "people_helping") && t.PeopleInteraction == "high_people"
		},
	}},
	{
		{
			category: WorkPreference,
			delta:    4,
			match:    "creative thinking style (Project Based)",
			when: func(s Signals, t CourseTags) bool {
				return s.Has(WorkPreference, "creative") && t.HasLearningStyle("project_based")
			},
		},
		{
			category: WorkPreference,
			delta:    2,
			match:    "creative thinking style (Abstract)",
			when: func(s Signals, t CourseTags) bool {
				return s.Has(WorkPreference, "creative") && t.CognitiveType == "abstract"
			},
		},
	},

	// Environment.
	{{
		category: Environment,
		delta:    4,
		match:    "preference for workshop environments",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(Environment, "workshop_environment") && t.Environment == "workshop"
		},
	}},
	{{
		category: Environment,
		delta:    3,
		match:    "social environment preference",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(Environment, "high_people_environment") &&
				(t.Environment == "office" || t.PeopleInteraction == "high_people")
		},
	}},
	{{
		category: Environment,
		delta:    4,
		match:    "preference for office environments",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(Environment, "office_environment") && t.Environment == "office"
		},
	}},
	{{
		category: Environment,
		delta:    4,
		match:    "preference for field/outdoor work",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(Environment, "field_environment") && t.Environment == "field"
		},
	}},

	// Learning tolerance.
	{{
		category: LearningTolerance,
		delta:    3,
		match:    "learning by doing preference",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(LearningTolerance, "learning_by_doing") &&
				(t.WorkModality == "hands_on" || t.HasLearningStyle("project_based"))
		},
	}},
	{{
		category: LearningTolerance,
		delta:    3,
		match:    "theory-oriented preference",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(LearningTolerance, "theory_oriented") && oneOf(t.WorkModality, "theory", "mixed")
		},
	}},
	{{
		category: LearningTolerance,
		delta:    3,
		match:    "preference for conceptual learning",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(LearningTolerance, "concept_first") &&
				(t.WorkModality == "theoretical" || t.CognitiveType == "abstract")
		},
	}},
	{{
		category: LearningTolerance,
		delta:    3,
		match:    "preference for project-based assessment",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(LearningTolerance, "project_based") && t.HasLearningStyle("project_based")
		},
	}},

	// Energy sensitivity.
	{{
		category: EnergySensitivity,
		delta:    -6,
		caution:  "May be draining due to high public interaction.",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(EnergySensitivity, "low_people_tolerance") && t.PeopleInteraction == "high_people"
		},
	}},
	{{
		category: EnergySensitivity,
		delta:    -6,
		caution:  "Caution: Course is physically demanding.",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(EnergySensitivity, "physical_fatigue_sensitive") && t.Load == "physically_demanding"
		},
	}},
	{{
		category: EnergySensitivity,
		delta:    -6,
		caution:  "Caution: Course is mentally demanding.",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(EnergySensitivity, "mental_fatigue_sensitive") && t.Load == "mentally_demanding"
		},
	}},

	// Values.
	{{
		category: ValueTradeoff,
		delta:    3,
		match:    "entrepreneurial ambition",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(ValueTradeoff, "income_risk_tolerant") && t.Outcome == "entrepreneurial"
		},
	}},
	{{
		category: ValueTradeoff,
		delta:    4,
		match:    "need for a stable career pathway",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(ValueTradeoff, "stability_priority") &&
				oneOf(t.Outcome, "regulated_profession", "employment_first")
		},
	}},
	{{
		category: ValueTradeoff,
		delta:    4,
		match:    "priority for degree pathways",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(ValueTradeoff, "pathway_priority") && t.Outcome == "pathway_friendly"
		},
	}},
	{{
		category: ValueTradeoff,
		delta:    3,
		match:    "priority for meaningful/service-oriented work",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(ValueTradeoff, "meaning_priority") &&
				(t.PeopleInteraction == "high_people" || t.Outcome == "regulated_profession")
		},
	}},
	{
		{
			category: ValueTradeoff,
			delta:    4,
			match:    "priority for fast employment",
			when: func(s Signals, t CourseTags) bool {
				return s.Has(ValueTradeoff, "fast_employment_priority") && t.Outcome == "employment_first"
			},
		},
		{
			category: ValueTradeoff,
			delta:    2,
			match:    "industry-specific focus",
			when: func(s Signals, t CourseTags) bool {
				return s.Has(ValueTradeoff, "fast_employment_priority") && t.Outcome == "industry_specific"
			},
		},
	},
	{
		{
			category: ValueTradeoff,
			delta:    1,
			when: func(s Signals, t CourseTags) bool {
				return s.Has(ValueTradeoff, "fast_employment_priority") && t.CareerStructure == "stable"
			},
		},
		{
			category: ValueTradeoff,
			delta:    -1,
			when: func(s Signals, t CourseTags) bool {
				return s.Has(ValueTradeoff, "fast_employment_priority") && t.CareerStructure == "volatile"
			},
		},
	},
	{{
		category: ValueTradeoff,
		delta:    -2,
		caution:  "Pathway score dampened by fast employment priority.",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(ValueTradeoff, "pathway_priority") && s.Has(ValueTradeoff, "fast_employment_priority") &&
				t.Outcome == "pathway_friendly"
		},
	}},
	{
		{
			category: ValueTradeoff,
			delta:    4,
			match:    "desire for care-oriented roles",
			when: func(s Signals, t CourseTags) bool {
				return s.Has(ValueTradeoff, "meaning_priority") && t.ServiceOrientation == "care"
			},
		},
		{
			category: ValueTradeoff,
			delta:    3,
			match:    "preference for relational work",
			when: func(s Signals, t CourseTags) bool {
				return s.Has(ValueTradeoff, "meaning_priority") && t.InteractionType == "relational"
			},
		},
		{
			category: ValueTradeoff,
			delta:    1,
			match:    "service orientation",
			when: func(s Signals, t CourseTags) bool {
				return s.Has(ValueTradeoff, "meaning_priority") && t.ServiceOrientation == "service"
			},
		},
	},
	{{
		category: EnergySensitivity,
		delta:    -2,
		caution:  "Transactional interaction may be draining.",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(EnergySensitivity, "low_people_tolerance") && t.InteractionType == "transactional"
		},
	}},
	{{
		category: EnergySensitivity,
		delta:    -2,
		caution:  "Service focus may be draining.",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(EnergySensitivity, "low_people_tolerance") && t.ServiceOrientation == "service"
		},
	}},
	{{
		category: ValueTradeoff,
		delta:    3,
		match:    "preference for stable career structures",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(ValueTradeoff, "stability_priority") && t.CareerStructure == "stable"
		},
	}},
	{
		{
			category: ValueTradeoff,
			delta:    2,
			match:    "tolerance for volatile income",
			when: func(s Signals, t CourseTags) bool {
				return s.Has(ValueTradeoff, "income_risk_tolerant") && t.CareerStructure == "volatile"
			},
		},
		{
			category: ValueTradeoff,
			delta:    2,
			match:    "interest in portfolio careers",
			when: func(s Signals, t CourseTags) bool {
				return s.Has(ValueTradeoff, "income_risk_tolerant") && t.CareerStructure == "portfolio"
			},
		},
	},
	{{
		category: ValueTradeoff,
		delta:    2,
		match:    "regulated profession confidence",
		when: func(s Signals, t CourseTags) bool {
			return s.Has(ValueTradeoff, "stability_priority") && t.CredentialStatus == "regulated"
		},
	}},
	{
		{
			category: WorkPreference,
			delta:    4,
			match:    "expressive creative style",
			when: func(s Signals, t CourseTags) bool {
				return s.Has(WorkPreference, "creative") && t.CreativeOutput == "expressive"
			},
		},
		{
			category: WorkPreference,
			delta:    3,
			match:    "design-oriented creative preference",
			when: func(s Signals, t CourseTags) bool {
				return s.Has(WorkPreference, "creative") && t.CreativeOutput == "design"
			},
		},
	},
}

var institutionRules = []instChain{
	{{
		delta: 2,
		match: "income/urban focus",
		when: func(s Signals, m InstitutionModifiers) bool {
			return s.Has(ValueTradeoff, "income_risk_tolerant") && m.Urban
		},
	}},
	{
		{
			delta: 4,
			match: "need for high community support",
			when: func(s Signals, m InstitutionModifiers) bool {
				return s.Has(ValueTradeoff, "proximity_priority") && m.CommunitySupport == "high"
			},
		},
		{
			delta:   -2,
			caution: "Low community support may isolate.",
			when: func(s Signals, m InstitutionModifiers) bool {
				return s.Has(ValueTradeoff, "proximity_priority") && m.CommunitySupport == "low"
			},
		},
	},
	{{
		delta: 2,
		match: "need for local high-support job networks",
		when: func(s Signals, m InstitutionModifiers) bool {
			return s.Has(ValueTradeoff, "proximity_priority") && s.Has(ValueTradeoff, "fast_employment_priority") &&
				m.CommunitySupport == "high"
		},
	}},
}
