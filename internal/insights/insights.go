// Package insights summarises a set of eligible offerings: how they spread
// over streams, fields and levels, and how the student's merit compares.
package insights

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spigell/halatuju/internal/merit"
	"github.com/spigell/halatuju/internal/offering"
)

// TopFields is how many fields the summary lists.
const TopFields = 5

const noCourses = "No eligible courses found."

var streamLabels = map[string]string{
	"poly":  "Politeknik",
	"kkom":  "Kolej Komuniti",
	"tvet":  "TVET",
	"ua":    "Universiti Awam",
	"pismp": "PISMP (Perguruan)",
}

// StreamLabel returns the display name of a source type. Unknown types are
// returned unchanged.
func StreamLabel(sourceType string) string {
	if label, ok := streamLabels[sourceType]; ok {
		return label
	}
	return sourceType
}

type Stream struct {
	SourceType string `json:"source_type"`
	Label      string `json:"label"`
	Count      int    `json:"count"`
}

type Field struct {
	Field string `json:"field"`
	Count int    `json:"count"`
}

type Level struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// MeritSummary counts offerings per likelihood band. NoData holds offerings
// without a band.
type MeritSummary struct {
	High   int `json:"high"`
	Fair   int `json:"fair"`
	Low    int `json:"low"`
	NoData int `json:"no_data"`
}

type Insights struct {
	Streams     []Stream     `json:"stream_breakdown"`
	TopFields   []Field      `json:"top_fields"`
	Levels      []Level      `json:"level_distribution"`
	Merit       MeritSummary `json:"merit_summary"`
	SummaryText string       `json:"summary_text"`
}

// counter counts keys and remembers the order they were first seen.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// sorted returns keys by descending count. Equal counts keep first-seen order.
func (c *counter) sorted() []string {
	keys := slices.Clone(c.order)
	slices.SortStableFunc(keys, func(a, b string) int {
		return c.counts[b] - c.counts[a]
	})
	return keys
}

// Generate summarises items. The result depends only on the items and their
// order; slices are never nil.
func Generate(items []*offering.Offering) Insights {
	res := Insights{
		Streams:   []Stream{},
		TopFields: []Field{},
		Levels:    []Level{},
	}
	total := 0
	streams, fields, levels := newCounter(), newCounter(), newCounter()
	for _, o := range items {
		if o == nil {
			continue
		}
		total++

		source := o.SourceType
		if source == "" {
			source = "unknown"
		}
		streams.add(source)

		if f := strings.TrimSpace(o.Field); f != "" {
			fields.add(f)
		}
		if l := strings.TrimSpace(o.Level); l != "" {
			levels.add(l)
		}

		switch o.Likelihood {
		case merit.High:
			res.Merit.High++
		case merit.Fair:
			res.Merit.Fair++
		case merit.Low:
			res.Merit.Low++
		default:
			res.Merit.NoData++
		}
	}

	if total == 0 {
		res.SummaryText = noCourses
		return res
	}

	for _, s := range streams.sorted() {
		res.Streams = append(res.Streams, Stream{SourceType: s, Label: StreamLabel(s), Count: streams.counts[s]})
	}
	for _, f := range fields.sorted() {
		if len(res.TopFields) == TopFields {
			break
		}
		res.TopFields = append(res.TopFields, Field{Field: f, Count: fields.counts[f]})
	}
	for _, l := range levels.sorted() {
		res.Levels = append(res.Levels, Level{Level: l, Count: levels.counts[l]})
	}

	res.SummaryText = fmt.Sprintf("You qualify for %d courses across %d streams.", total, len(res.Streams))
	if len(res.TopFields) > 0 {
		top := res.TopFields[0]
		res.SummaryText += fmt.Sprintf(" Your strongest field is %s (%d courses).", top.Field, top.Count)
	}

	return res
}
