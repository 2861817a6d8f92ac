package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spigell/halatuju/internal/eligibility"
	"github.com/spigell/halatuju/internal/insights"
	"github.com/spigell/halatuju/internal/merit"
	"github.com/spigell/halatuju/internal/offering"
	"github.com/spigell/halatuju/internal/ranking"
)

// Console formats output for terminal display.
type Console struct {
	w        io.Writer
	colorize bool
}

func NewConsole(w io.Writer, colorize bool) *Console {
	return &Console{w: w, colorize: colorize}
}

func (c *Console) style(color string) lipgloss.Style {
	if !c.colorize || color == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func (c *Console) heading(s string) string {
	if !c.colorize {
		return s
	}
	return lipgloss.NewStyle().Bold(true).Render(s)
}

// Ranked prints the headline offerings with their reasons and the rest as a
// compact list.
func (c *Console) Ranked(res ranking.Result) error {
	if len(res.Top5) == 0 {
		_, err := fmt.Fprintln(c.w, "No eligible courses found.")
		return err
	}

	fmt.Fprintln(c.w, c.heading("Top matches"))
	for i, o := range res.Top5 {
		fmt.Fprintf(c.w, "%d. %s\n", i+1, c.line(o))
		for _, reason := range o.FitReasons {
			fmt.Fprintf(c.w, "     %s\n", reason)
		}
	}

	if len(res.Rest) == 0 {
		return nil
	}

	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.heading(fmt.Sprintf("Other eligible courses (%d)", len(res.Rest))))
	for i, o := range res.Rest {
		if _, err := fmt.Fprintf(c.w, "%d. %s\n", len(res.Top5)+i+1, c.line(o)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) line(o *offering.Offering) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s", o.FitScore, o.CourseName)
	if o.InstitutionName != "" {
		fmt.Fprintf(&b, " @ %s", o.InstitutionName)
	}
	if o.Likelihood != merit.None {
		fmt.Fprintf(&b, " %s", c.style(o.Likelihood.Color()).Render("("+string(o.Likelihood)+" chance)"))
	}
	return b.String()
}

// Audit prints every audit entry followed by the verdict.
func (c *Console) Audit(courseID string, res eligibility.Result) error {
	fmt.Fprintln(c.w, c.heading("Eligibility audit for "+courseID))

	if len(res.Audit) == 0 {
		fmt.Fprintln(c.w, "  no additional restriction")
	}

	for _, e := range res.Audit {
		mark, color := "✓", "10"
		switch {
		case !e.Blocking:
			mark, color = "•", "7"
		case !e.Passed:
			mark, color = "✗", "9"
		}

		line := fmt.Sprintf("  %s %s", c.style(color).Render(mark), e.Label)
		if e.Reason != "" {
			line += ": " + e.Reason
		}
		fmt.Fprintln(c.w, line)
	}

	verdict := c.style("9").Render("Not eligible")
	if res.Eligible {
		verdict = c.style("10").Render("Eligible")
	}
	if res.Likelihood != merit.None {
		verdict += " " + c.style(res.Likelihood.Color()).Render("("+string(res.Likelihood)+" chance)")
	}

	_, err := fmt.Fprintln(c.w, verdict)
	return err
}

func (c *Console) Merit(res merit.Result) error {
	fmt.Fprintln(c.w, c.heading("Merit"))
	fmt.Fprintf(c.w, "  academic: %.2f\n", res.Academic)
	fmt.Fprintf(c.w, "  final:    %.2f\n", res.Final)
	_, err := fmt.Fprintf(c.w, "  points:   %d\n", res.TotalPoints)
	return err
}

// Insights prints the summary line followed by one line per breakdown.
// Empty breakdowns are skipped.
func (c *Console) Insights(ins insights.Insights) error {
	fmt.Fprintln(c.w, c.heading("Summary"))
	fmt.Fprintf(c.w, "  %s\n", ins.SummaryText)

	streams := make([]string, 0, len(ins.Streams))
	for _, s := range ins.Streams {
		streams = append(streams, fmt.Sprintf("%s %d", s.Label, s.Count))
	}
	fields := make([]string, 0, len(ins.TopFields))
	for _, f := range ins.TopFields {
		fields = append(fields, fmt.Sprintf("%s %d", f.Field, f.Count))
	}
	levels := make([]string, 0, len(ins.Levels))
	for _, l := range ins.Levels {
		levels = append(levels, fmt.Sprintf("%s %d", l.Level, l.Count))
	}

	for _, row := range []struct {
		name  string
		items []string
	}{
		{"streams", streams},
		{"top fields", fields},
		{"levels", levels},
	} {
		if len(row.items) > 0 {
			fmt.Fprintf(c.w, "  %s: %s\n", row.name, strings.Join(row.items, ", "))
		}
	}

	if len(streams) == 0 {
		return nil
	}

	m := ins.Merit
	_, err := fmt.Fprintf(c.w, "  merit: %s %d, %s %d, %s %d, no data %d\n",
		c.style(merit.High.Color()).Render("high"), m.High,
		c.style(merit.Fair.Color()).Render("fair"), m.Fair,
		c.style(merit.Low.Color()).Render("low"), m.Low,
		m.NoData,
	)
	return err
}
