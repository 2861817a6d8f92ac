// Package catalog loads course requirements, course and institution metadata,
// offering links and ranking tags from YAML files.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/spigell/halatuju/internal/eligibility"
	"github.com/spigell/halatuju/internal/offering"
	"github.com/spigell/halatuju/internal/ranking"
)

var ErrNoFiles = errors.New("no catalog files matched")

type Course struct {
	CourseID   string `yaml:"course_id"`
	Name       string `yaml:"course"`
	Level      string `yaml:"level"`
	Field      string `yaml:"field"`
	SourceType string `yaml:"source_type"`
}

type Institution struct {
	InstitutionID string `yaml:"institution_id"`
	Name          string `yaml:"institution_name"`
	Subcategory   string `yaml:"subcategory"`
	State         string `yaml:"state"`
}

// Link places a course at an institution.
type Link struct {
	CourseID      string `yaml:"course_id"`
	InstitutionID string `yaml:"institution_id"`
}

type document struct {
	Requirements         []map[string]any                        `yaml:"requirements"`
	Courses              []Course                                `yaml:"courses"`
	Institutions         []Institution                           `yaml:"institutions"`
	Offerings            []Link                                  `yaml:"offerings"`
	CourseTags           map[string]ranking.CourseTags           `yaml:"course_tags"`
	InstitutionModifiers map[string]ranking.InstitutionModifiers `yaml:"institution_modifiers"`
}

// Catalog is the merged content of every loaded file. It is read-only after
// Load and safe for concurrent readers.
type Catalog struct {
	requirements map[string]eligibility.Requirement
	order        []string
	courses      map[string]Course
	institutions map[string]Institution
	links        []Link
	tags         map[string]ranking.CourseTags
	modifiers    map[string]ranking.InstitutionModifiers
	files        []string
}

func newCatalog() *Catalog {
	return &Catalog{
		requirements: map[string]eligibility.Requirement{},
		courses:      map[string]Course{},
		institutions: map[string]Institution{},
		tags:         map[string]ranking.CourseTags{},
		modifiers:    map[string]ranking.InstitutionModifiers{},
	}
}

// Load expands the glob patterns and merges every YAML document found.
// Later files override earlier entries with the same id.
func Load(patterns []string, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("evaluating pattern %s: %w", pattern, err)
		}
		for _, m := range matches {
			if !slices.Contains(files, m) {
				files = append(files, m)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoFiles, patterns)
	}

	c := newCatalog()
	for _, file := range files {
		if err := c.loadFile(file, logger); err != nil {
			return nil, err
		}
	}

	logger.Debug("catalog loaded",
		zap.Strings("files", files),
		zap.Int("requirements", len(c.requirements)),
		zap.Int("courses", len(c.courses)),
		zap.Int("institutions", len(c.institutions)),
		zap.Int("offerings", len(c.links)),
	)

	return c, nil
}

func (c *Catalog) loadFile(path string, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening catalog file %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	for {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("parsing catalog file %s: %w", path, err)
		}
		if err := c.merge(doc, logger.With(zap.String("file", path))); err != nil {
			return fmt.Errorf("loading catalog file %s: %w", path, err)
		}
	}

	c.files = append(c.files, path)
	return nil
}

func (c *Catalog) merge(doc document, logger *zap.Logger) error {
	for i, row := range doc.Requirements {
		req, err := DecodeRequirement(row, logger)
		if err != nil {
			return fmt.Errorf("requirement %d: %w", i+1, err)
		}
		if req.CourseID == "" {
			logger.Warn("requirement without course_id skipped", zap.Int("row", i+1))
			continue
		}
		if _, ok := c.requirements[req.CourseID]; !ok {
			c.order = append(c.order, req.CourseID)
		}
		c.requirements[req.CourseID] = req
	}

	for _, course := range doc.Courses {
		c.courses[course.CourseID] = course
	}
	for _, inst := range doc.Institutions {
		c.institutions[inst.InstitutionID] = inst
	}
	for _, link := range doc.Offerings {
		if link.CourseID == "" {
			continue
		}
		c.links = append(c.links, link)
	}
	for id, tags := range doc.CourseTags {
		c.tags[id] = tags
	}
	for id, mods := range doc.InstitutionModifiers {
		c.modifiers[id] = mods
	}

	return nil
}

// Requirement returns the requirement record of a course.
func (c *Catalog) Requirement(courseID string) (eligibility.Requirement, bool) {
	r, ok := c.requirements[courseID]
	return r, ok
}

// CourseIDs lists requirement course ids in load order.
func (c *Catalog) CourseIDs() []string {
	return slices.Clone(c.order)
}

func (c *Catalog) Course(courseID string) (Course, bool) {
	course, ok := c.courses[courseID]
	return course, ok
}

func (c *Catalog) Files() []string {
	return slices.Clone(c.files)
}

// Offerings joins the offering links with course, institution and
// requirement data. Requirements that no link mentions become a single
// offering without an institution.
func (c *Catalog) Offerings() *offering.Offerings {
	out := &offering.Offerings{Items: []*offering.Offering{}}

	linked := map[string]bool{}
	for _, link := range c.links {
		linked[link.CourseID] = true
		out.Items = append(out.Items, c.build(link.CourseID, link.InstitutionID))
	}

	for _, id := range c.order {
		if !linked[id] {
			out.Items = append(out.Items, c.build(id, ""))
		}
	}

	return out
}

func (c *Catalog) build(courseID, institutionID string) *offering.Offering {
	o := &offering.Offering{
		CourseID:      courseID,
		InstitutionID: institutionID,
		CourseName:    courseID,
	}

	if course, ok := c.courses[courseID]; ok {
		if course.Name != "" {
			o.CourseName = course.Name
		}
		o.Level = course.Level
		o.Field = course.Field
		o.SourceType = strings.ToLower(strings.TrimSpace(course.SourceType))
	}

	if inst, ok := c.institutions[institutionID]; ok {
		o.InstitutionName = inst.Name
	}

	if req, ok := c.requirements[courseID]; ok {
		if req.SourceType != "" {
			o.SourceType = req.SourceType
		}
		if req.MeritCutoff != nil {
			cutoff := *req.MeritCutoff
			o.MeritCutoff = &cutoff
		}
	}

	return o
}

// Lookups returns the ranking tables. The maps are shared, callers must not
// modify them.
func (c *Catalog) Lookups() ranking.Lookups {
	subcategories := make(map[string]string, len(c.institutions))
	for id, inst := range c.institutions {
		if inst.Subcategory != "" {
			subcategories[id] = inst.Subcategory
		}
	}

	return ranking.Lookups{
		CourseTags:    c.tags,
		Modifiers:     c.modifiers,
		Subcategories: subcategories,
	}
}
