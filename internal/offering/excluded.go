package offering

import (
	"encoding/json"
	"errors"
	"os"
	"time"
)

type ExcludedCourses struct {
	Items []*ExcludedCourse
}

// ExcludedCourse is one exclude file entry. An empty InstitutionID excludes
// the course everywhere.
type ExcludedCourse struct {
	CourseID      string
	InstitutionID string `json:",omitempty"`
	CourseName    string `json:",omitempty"`
	Reason        string `json:",omitempty"`
	ExcludedAt    time.Time
}

// GetExcludedFromFile reads an exclude file. A missing or empty file holds no entries.
func GetExcludedFromFile(path string) (*ExcludedCourses, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return &ExcludedCourses{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedCourses{}, nil
	}

	var excluded ExcludedCourses
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedCourses) Append(s *ExcludedCourses) {
	e.Items = append(e.Items, s.Items...)
}

// CourseIDs lists courses excluded at every institution.
func (e *ExcludedCourses) CourseIDs() []string {
	ids := make([]string, 0)
	for _, c := range e.Items {
		if c.InstitutionID == "" {
			ids = append(ids, c.CourseID)
		}
	}
	return ids
}

// Keys lists offering keys excluded at a single institution.
func (e *ExcludedCourses) Keys() []string {
	keys := make([]string, 0)
	for _, c := range e.Items {
		if c.InstitutionID != "" {
			keys = append(keys, c.CourseID+"@"+c.InstitutionID)
		}
	}
	return keys
}

func (e *ExcludedCourses) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
