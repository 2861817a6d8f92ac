package eligibility

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/spigell/halatuju/internal/grade"
)

//go:embed schema/*.json
var schemaFS embed.FS

const (
	complexSchema = "complex_requirements.json"
	groupSchema   = "subject_group_req.json"
)

var compiledSchemas sync.Map // map[string]*jsonschema.Schema

// OrGroup is satisfied when at least Count of Subjects are at Grade or better.
type OrGroup struct {
	Count    int         `json:"count"`
	Grade    grade.Grade `json:"grade"`
	Subjects []string    `json:"subjects"`
}

// ComplexRequirements is the parsed complex_requirements field. Groups are ANDed.
// Malformed is set when the source value could not be parsed; such a record
// fails the complex requirement check.
type ComplexRequirements struct {
	Groups    []OrGroup `json:"or_groups"`
	Malformed bool      `json:"-"`
}

// Active reports whether the field adds a check to the audit.
func (c ComplexRequirements) Active() bool {
	return c.Malformed || len(c.Groups) > 0
}

// GroupRule is one subject_group_req rule. A rule with AllowedGroups is a
// diversity rule: the student needs MinCount distinct groups at MinGrade.
type GroupRule struct {
	MinGrade      grade.Grade `json:"min_grade"`
	MinCount      int         `json:"min_count"`
	Subjects      []string    `json:"subjects,omitempty"`
	AllowedGroups [][]string  `json:"allowed_groups,omitempty"`
}

// IsDiversity reports whether the rule counts subject groups.
func (r GroupRule) IsDiversity() bool {
	return len(r.AllowedGroups) > 0
}

// GroupRules is the parsed subject_group_req field.
type GroupRules struct {
	Rules     []GroupRule
	Malformed bool
}

// Active reports whether the field adds a check to the audit.
func (g GroupRules) Active() bool {
	return g.Malformed || len(g.Rules) > 0
}

type rawOrGroup struct {
	Count    *int     `json:"count"`
	Grade    string   `json:"grade"`
	Subjects []string `json:"subjects"`
}

type rawGroupRule struct {
	MinGrade      string     `json:"min_grade"`
	MinCount      *int       `json:"min_count"`
	Subjects      []string   `json:"subjects"`
	AllowedGroups [][]string `json:"allowed_groups"`
}

// ParseComplexRequirements decodes complex_requirements. The {"or_groups": [...]}
// object, a bare list of groups and a single group object are accepted. Empty
// input yields no groups. Groups without subjects are dropped.
func ParseComplexRequirements(data []byte) (ComplexRequirements, error) {
	data = bytes.TrimSpace(data)
	if isBlank(data) {
		return ComplexRequirements{}, nil
	}

	if err := validate(complexSchema, data); err != nil {
		return ComplexRequirements{Malformed: true}, err
	}

	raw, err := decodeOrGroups(data)
	if err != nil {
		return ComplexRequirements{Malformed: true}, fmt.Errorf("decoding or-groups: %w", err)
	}

	out := ComplexRequirements{}
	for _, g := range raw {
		if len(g.Subjects) == 0 {
			continue
		}
		out.Groups = append(out.Groups, OrGroup{
			Count:    intOr(g.Count, 1),
			Grade:    gradeOr(g.Grade, grade.E),
			Subjects: mapSubjects(g.Subjects),
		})
	}

	return out, nil
}

func decodeOrGroups(data []byte) ([]rawOrGroup, error) {
	var raw []rawOrGroup
	if data[0] == '[' {
		err := json.Unmarshal(data, &raw)
		return raw, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if groups, ok := fields["or_groups"]; ok {
		err := json.Unmarshal(groups, &raw)
		return raw, err
	}

	var single rawOrGroup
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []rawOrGroup{single}, nil
}

// ParseSubjectGroupRules decodes subject_group_req, a list of rules.
func ParseSubjectGroupRules(data []byte) (GroupRules, error) {
	data = bytes.TrimSpace(data)
	if isBlank(data) {
		return GroupRules{}, nil
	}

	if err := validate(groupSchema, data); err != nil {
		return GroupRules{Malformed: true}, err
	}

	var raw []rawGroupRule
	if err := json.Unmarshal(data, &raw); err != nil {
		return GroupRules{Malformed: true}, fmt.Errorf("decoding subject group rules: %w", err)
	}

	out := GroupRules{}
	for _, r := range raw {
		rule := GroupRule{
			MinGrade: gradeOr(r.MinGrade, grade.E),
			MinCount: intOr(r.MinCount, 1),
			Subjects: mapSubjects(r.Subjects),
		}
		for _, group := range r.AllowedGroups {
			rule.AllowedGroups = append(rule.AllowedGroups, mapSubjects(group))
		}
		if len(rule.Subjects) == 0 && len(rule.AllowedGroups) == 0 {
			continue
		}
		out.Rules = append(out.Rules, rule)
	}

	return out, nil
}

func validate(name string, data []byte) error {
	sch, err := compiledSchema(name)
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema(name string) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	raw, err := schemaFS.ReadFile("schema/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading schema %q: %w", name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing schema %q: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := "schema://" + name
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiledSchemas.Store(name, compiled)
	return compiled, nil
}

// isBlank treats spreadsheet leftovers such as "nan" and "null" as empty.
func isBlank(data []byte) bool {
	switch strings.ToLower(string(data)) {
	case "", "nan", "null", "none", `""`, "{}", "[]":
		return true
	}
	return false
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func gradeOr(s string, def grade.Grade) grade.Grade {
	if g := grade.Parse(s); g.Valid() {
		return g
	}
	return def
}

func mapSubjects(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, grade.MapSubjectCode(s))
	}
	return out
}
