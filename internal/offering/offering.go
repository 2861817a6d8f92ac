package offering

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spigell/halatuju/internal/eligibility"
	"github.com/spigell/halatuju/internal/merit"
)

const (
	CourseIDField      = "CourseID"
	InstitutionIDField = "InstitutionID"
	SourceTypeField    = "SourceType"
	KeyField           = "Key"
)

type Offerings struct {
	Items []*Offering `json:"items"`
}

// Offering is a course at one institution, as seen by one student.
type Offering struct {
	CourseID        string   `json:"course_id"`
	InstitutionID   string   `json:"institution_id,omitempty"`
	CourseName      string   `json:"course_name"`
	InstitutionName string   `json:"institution_name,omitempty"`
	Level           string   `json:"level,omitempty"`
	Field           string   `json:"field,omitempty"`
	SourceType      string   `json:"source_type,omitempty"`
	MeritCutoff     *float64 `json:"merit_cutoff,omitempty"`
	StudentMerit    *float64 `json:"student_merit,omitempty"`

	Likelihood merit.Band               `json:"likelihood,omitempty"`
	Audit      []eligibility.AuditEntry `json:"audit,omitempty"`
	FitScore   int                      `json:"fit_score"`
	FitReasons []string                 `json:"fit_reasons,omitempty"`
}

// Key identifies the offering: course and institution joined by "@".
func (o *Offering) Key() string {
	if o.InstitutionID == "" {
		return o.CourseID
	}
	return o.CourseID + "@" + o.InstitutionID
}

// Cutoff returns the merit cutoff, zero when absent or not finite.
func (o *Offering) Cutoff() float64 {
	return eligibility.FiniteCutoff(o.MeritCutoff)
}

func (o *Offering) GetStringField(name string) string {
	switch name {
	case CourseIDField:
		return o.CourseID
	case InstitutionIDField:
		return o.InstitutionID
	case SourceTypeField:
		return o.SourceType
	case KeyField:
		return o.Key()
	default:
		return ""
	}
}

func (v *Offerings) Len() int {
	return len(v.Items)
}

// FindByID returns the offering of courseID at institutionID. An empty
// institutionID matches the first offering of the course.
func (v *Offerings) FindByID(courseID, institutionID string) *Offering {
	for _, o := range v.Items {
		if o.CourseID != courseID {
			continue
		}
		if institutionID == "" || o.InstitutionID == institutionID {
			return o
		}
	}
	return nil
}

// Exclude removes every offering whose field matches one of targets and
// returns the keys of the removed offerings. Order of the rest is preserved.
func (v *Offerings) Exclude(field string, targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		set[t] = struct{}{}
	}

	var excluded []string
	kept := v.Items[:0]
	for _, o := range v.Items {
		if _, ok := set[o.GetStringField(field)]; ok {
			excluded = append(excluded, o.Key())
			continue
		}
		kept = append(kept, o)
	}
	clear(v.Items[len(kept):])
	v.Items = kept

	return excluded
}

// Keep removes every offering whose field is not one of targets.
func (v *Offerings) Keep(field string, targets []string) []string {
	set := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		set[t] = struct{}{}
	}

	var drop []string
	for _, o := range v.Items {
		if _, ok := set[o.GetStringField(field)]; !ok {
			drop = append(drop, o.GetStringField(field))
		}
	}
	return v.Exclude(field, drop)
}

func (v *Offerings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "offerings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ToExcluded converts the offerings into exclude file entries.
func (v *Offerings) ToExcluded(reason string) *ExcludedCourses {
	excluded := &ExcludedCourses{}
	for _, o := range v.Items {
		excluded.Items = append(excluded.Items, &ExcludedCourse{
			CourseID:      o.CourseID,
			InstitutionID: o.InstitutionID,
			CourseName:    o.CourseName,
			Reason:        reason,
			ExcludedAt:    time.Now().UTC(),
		})
	}
	return excluded
}

// ReportBySource groups offerings by source type.
func (v *Offerings) ReportBySource() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, o := range v.Items {
		source := o.SourceType
		if source == "" {
			source = "unknown"
		}

		entry := map[string]string{
			"course":      fmt.Sprintf("%s (%s)", o.CourseName, o.CourseID),
			"institution": o.InstitutionName,
			"level":       o.Level,
			"field":       o.Field,
			"fit_score":   strconv.Itoa(o.FitScore),
		}
		if o.MeritCutoff != nil {
			entry["merit_cutoff"] = strconv.FormatFloat(o.Cutoff(), 'f', 2, 64)
		}
		if o.Likelihood != merit.None {
			entry["likelihood"] = string(o.Likelihood)
		}

		report[source] = append(report[source], entry)
	}
	return report
}
