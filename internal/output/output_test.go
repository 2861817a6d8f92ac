package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spigell/halatuju/internal/eligibility"
	"github.com/spigell/halatuju/internal/insights"
	"github.com/spigell/halatuju/internal/merit"
	"github.com/spigell/halatuju/internal/offering"
	"github.com/spigell/halatuju/internal/ranking"
)

func sample() ranking.Result {
	res := ranking.Result{Top5: []*offering.Offering{}, Rest: []*offering.Offering{}}
	for i, name := range []string{"Diploma A", "Diploma B", "Sijil C", "Sijil D", "Sijil E", "Sijil F"} {
		o := &offering.Offering{CourseID: name, CourseName: name, FitScore: 110 - i}
		if i < ranking.TopN {
			res.Top5 = append(res.Top5, o)
		} else {
			res.Rest = append(res.Rest, o)
		}
	}
	res.Top5[0].InstitutionName = "Politeknik Ungku Omar"
	res.Top5[0].Likelihood = merit.Fair
	res.Top5[0].FitReasons = []string{"Matches or aligns with your hands-on work preference."}
	return res
}

func TestConsoleRanked(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewConsole(&buf, false).Ranked(sample()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Top matches",
		"1. [110] Diploma A @ Politeknik Ungku Omar (Fair chance)",
		"     Matches or aligns with your hands-on work preference.",
		"Other eligible courses (1)",
		"6. [105] Sijil F",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestConsoleRankedEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewConsole(&buf, false).Ranked(ranking.Result{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No eligible courses found.") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestConsoleAudit(t *testing.T) {
	t.Parallel()

	res := eligibility.Result{
		Eligible: false,
		Audit: []eligibility.AuditEntry{
			{Label: "chk_pass_bm", Passed: true, Blocking: true},
			{Label: "chk_male", Passed: false, Reason: "male applicants only", Blocking: true},
			{Label: "chk_interview", Passed: true, Reason: "interview required"},
		},
	}

	var buf bytes.Buffer
	if err := NewConsole(&buf, false).Audit("POLY-DKM", res); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Eligibility audit for POLY-DKM",
		"  ✓ chk_pass_bm\n",
		"  ✗ chk_male: male applicants only",
		"  • chk_interview: interview required",
		"Not eligible",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestJSONRanked(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, err := New(FormatJSON, &buf)
	if err != nil {
		t.Fatalf("new formatter: %v", err)
	}
	if err := f.Ranked(sample()); err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded struct {
		Top5 []map[string]any `json:"top_5"`
		Rest []map[string]any `json:"rest"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(decoded.Top5) != 5 || len(decoded.Rest) != 1 {
		t.Fatalf("unexpected split: %d/%d", len(decoded.Top5), len(decoded.Rest))
	}
	if decoded.Top5[0]["likelihood"] != "Fair" {
		t.Fatalf("expected likelihood in JSON, got %v", decoded.Top5[0]["likelihood"])
	}
}

func TestJSONAudit(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	res := eligibility.Result{Eligible: true, Audit: []eligibility.AuditEntry{}}
	if err := NewJSON(&buf).Audit("X", res); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `"course_id": "X"`) || !strings.Contains(buf.String(), `"eligible": true`) {
		t.Fatalf("unexpected JSON: %s", buf.String())
	}
}

func TestConsoleInsights(t *testing.T) {
	t.Parallel()

	ins := insights.Generate([]*offering.Offering{
		{CourseID: "a", SourceType: "poly", Field: "Engineering", Level: "Diploma", Likelihood: merit.High},
		{CourseID: "b", SourceType: "tvet", Field: "Engineering", Level: "Sijil"},
	})

	var buf bytes.Buffer
	if err := NewConsole(&buf, false).Insights(ins); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Summary",
		"  You qualify for 2 courses across 2 streams. Your strongest field is Engineering (2 courses).",
		"  streams: Politeknik 1, TVET 1",
		"  top fields: Engineering 2",
		"  levels: Diploma 1, Sijil 1",
		"  merit: high 1, fair 0, low 0, no data 1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestConsoleInsightsEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewConsole(&buf, false).Insights(insights.Generate(nil)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := buf.String(); got != "Summary\n  No eligible courses found.\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestJSONInsights(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ins := insights.Generate([]*offering.Offering{{CourseID: "a", SourceType: "poly"}})
	if err := NewJSON(&buf).Insights(ins); err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	for _, key := range []string{"stream_breakdown", "top_fields", "level_distribution", "merit_summary", "summary_text"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("expected key %q in %s", key, buf.String())
		}
	}
}

func TestNewUnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := New("xml", &bytes.Buffer{}); err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
}
