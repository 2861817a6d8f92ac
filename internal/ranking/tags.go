package ranking

import "slices"

// CourseTags describe a course for preference matching. Empty values are
// neutral and never fire a rule.
type CourseTags struct {
	WorkModality       string   `mapstructure:"work_modality" yaml:"work_modality" json:"work_modality,omitempty"`
	PeopleInteraction  string   `mapstructure:"people_interaction" yaml:"people_interaction" json:"people_interaction,omitempty"`
	CognitiveType      string   `mapstructure:"cognitive_type" yaml:"cognitive_type" json:"cognitive_type,omitempty"`
	LearningStyle      []string `mapstructure:"learning_style" yaml:"learning_style" json:"learning_style,omitempty"`
	Load               string   `mapstructure:"load" yaml:"load" json:"load,omitempty"`
	Outcome            string   `mapstructure:"outcome" yaml:"outcome" json:"outcome,omitempty"`
	Environment        string   `mapstructure:"environment" yaml:"environment" json:"environment,omitempty"`
	ServiceOrientation string   `mapstructure:"service_orientation" yaml:"service_orientation" json:"service_orientation,omitempty"`
	InteractionType    string   `mapstructure:"interaction_type" yaml:"interaction_type" json:"interaction_type,omitempty"`
	CareerStructure    string   `mapstructure:"career_structure" yaml:"career_structure" json:"career_structure,omitempty"`
	CredentialStatus   string   `mapstructure:"credential_status" yaml:"credential_status" json:"credential_status,omitempty"`
	CreativeOutput     string   `mapstructure:"creative_output" yaml:"creative_output" json:"creative_output,omitempty"`
}

// HasLearningStyle reports whether style is among the course's learning styles.
func (t CourseTags) HasLearningStyle(style string) bool {
	return slices.Contains(t.LearningStyle, style)
}

// InstitutionModifiers describe an institution's setting.
type InstitutionModifiers struct {
	Urban            bool   `mapstructure:"urban" yaml:"urban" json:"urban,omitempty"`
	CommunitySupport string `mapstructure:"cultural_safety_net" yaml:"cultural_safety_net" json:"cultural_safety_net,omitempty"`
}

// Lookups are the read-only tables a ranking call consults. They may be
// shared across concurrent calls.
type Lookups struct {
	CourseTags    map[string]CourseTags
	Modifiers     map[string]InstitutionModifiers
	Subcategories map[string]string
}
