package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spigell/halatuju/internal/merit"
	"github.com/spigell/halatuju/internal/offering"
)

func item(source, field, level string, band merit.Band) *offering.Offering {
	return &offering.Offering{CourseID: "c", SourceType: source, Field: field, Level: level, Likelihood: band}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []*offering.Offering
		want  Insights
	}{
		{
			name:  "empty",
			items: nil,
			want: Insights{
				Streams:     []Stream{},
				TopFields:   []Field{},
				Levels:      []Level{},
				SummaryText: "No eligible courses found.",
			},
		},
		{
			name:  "only nil items",
			items: []*offering.Offering{nil},
			want: Insights{
				Streams:     []Stream{},
				TopFields:   []Field{},
				Levels:      []Level{},
				SummaryText: "No eligible courses found.",
			},
		},
		{
			name: "mixed streams",
			items: []*offering.Offering{
				item("tvet", "Welding", "Sijil", merit.None),
				item("poly", "Engineering", "Diploma", merit.High),
				item("poly", "Engineering", "Diploma", merit.Fair),
				item("ua", " Business ", "Asasi", merit.Low),
				item("poly", "", "", merit.High),
				item("", "Engineering", "Diploma", merit.None),
			},
			want: Insights{
				Streams: []Stream{
					{SourceType: "poly", Label: "Politeknik", Count: 3},
					{SourceType: "tvet", Label: "TVET", Count: 1},
					{SourceType: "ua", Label: "Universiti Awam", Count: 1},
					{SourceType: "unknown", Label: "unknown", Count: 1},
				},
				TopFields: []Field{
					{Field: "Engineering", Count: 3},
					{Field: "Welding", Count: 1},
					{Field: "Business", Count: 1},
				},
				Levels: []Level{
					{Level: "Diploma", Count: 3},
					{Level: "Sijil", Count: 1},
					{Level: "Asasi", Count: 1},
				},
				Merit:       MeritSummary{High: 2, Fair: 1, Low: 1, NoData: 2},
				SummaryText: "You qualify for 6 courses across 4 streams. Your strongest field is Engineering (3 courses).",
			},
		},
		{
			name: "no fields",
			items: []*offering.Offering{
				item("kkom", "", "Sijil", merit.None),
			},
			want: Insights{
				Streams:     []Stream{{SourceType: "kkom", Label: "Kolej Komuniti", Count: 1}},
				TopFields:   []Field{},
				Levels:      []Level{{Level: "Sijil", Count: 1}},
				Merit:       MeritSummary{NoData: 1},
				SummaryText: "You qualify for 1 courses across 1 streams.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Generate(tt.items))
		})
	}
}

func TestGenerateKeepsTopFiveFields(t *testing.T) {
	t.Parallel()

	var items []*offering.Offering
	for _, f := range []string{"a", "b", "c", "d", "e", "f", "f"} {
		items = append(items, item("poly", f, "", merit.None))
	}

	got := Generate(items).TopFields
	assert.Len(t, got, TopFields)
	assert.Equal(t, Field{Field: "f", Count: 2}, got[0])
	assert.Equal(t, []string{"f", "a", "b", "c", "d"}, []string{got[0].Field, got[1].Field, got[2].Field, got[3].Field, got[4].Field})
}

func TestStreamLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PISMP (Perguruan)", StreamLabel("pismp"))
	assert.Equal(t, "other", StreamLabel("other"))
}
