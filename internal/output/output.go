// Package output renders ranked offerings, eligibility audits and merit
// breakdowns for the terminal or as JSON. The JSON formatter writes one
// document per call.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spigell/halatuju/internal/eligibility"
	"github.com/spigell/halatuju/internal/insights"
	"github.com/spigell/halatuju/internal/merit"
	"github.com/spigell/halatuju/internal/ranking"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Formatter writes results in one output format.
type Formatter interface {
	Ranked(res ranking.Result) error
	Audit(courseID string, res eligibility.Result) error
	Merit(res merit.Result) error
	Insights(ins insights.Insights) error
}

// New returns the formatter for format. An empty format means console.
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "", FormatConsole:
		return NewConsole(w, true), nil
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// JSON writes indented JSON documents.
type JSON struct {
	enc *json.Encoder
}

func NewJSON(w io.Writer) *JSON {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSON{enc: enc}
}

func (j *JSON) Ranked(res ranking.Result) error {
	return j.enc.Encode(res)
}

func (j *JSON) Audit(courseID string, res eligibility.Result) error {
	return j.enc.Encode(struct {
		CourseID string `json:"course_id"`
		eligibility.Result
	}{CourseID: courseID, Result: res})
}

func (j *JSON) Merit(res merit.Result) error {
	return j.enc.Encode(res)
}

func (j *JSON) Insights(ins insights.Insights) error {
	return j.enc.Encode(ins)
}
