package filtering

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/halatuju/internal/eligibility"
	"github.com/spigell/halatuju/internal/offering"
)

type eligibilityFilter struct {
	disabled bool
	reason   string
	workers  int
}

// NewEligibility creates the filter that drops offerings the student does not
// qualify for and attaches the audit to the rest.
func NewEligibility() Filter {
	return &eligibilityFilter{}
}

func (f *eligibilityFilter) Name() string { return "eligibility" }

func (f *eligibilityFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *eligibilityFilter) IsEnabled() bool { return !f.disabled }

func (f *eligibilityFilter) Validate(cfg *Config) error {
	f.workers = runtime.GOMAXPROCS(0)
	if cfg == nil {
		return nil
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.Workers > 0 {
		f.workers = cfg.Workers
	}
	return nil
}

func (f *eligibilityFilter) Apply(ctx context.Context, deps Deps, v *offering.Offerings) (*offering.Offerings, Step, error) {
	initial := v.Len()
	if deps.Requirements == nil {
		return v, Step{}, fmt.Errorf("requirement source is required")
	}

	workers := f.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*eligibility.Result, initial)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, o := range v.Items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			req, ok := deps.Requirements.Requirement(o.CourseID)
			if !ok {
				return nil
			}
			res := eligibility.Evaluate(deps.Profile, req)
			results[i] = &res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return v, Step{}, fmt.Errorf("evaluating offerings: %w", err)
	}

	var studentMerit *float64
	if m, ok := deps.Profile.Merit(); ok {
		studentMerit = &m
	}

	kept := make([]*offering.Offering, 0, initial)
	var dropped []string
	for i, o := range v.Items {
		res := results[i]
		if res == nil {
			deps.Logger.Debug("no requirement record, keeping offering", zap.String("offering", o.Key()))
			o.Audit = []eligibility.AuditEntry{}
			o.StudentMerit = studentMerit
			kept = append(kept, o)
			continue
		}

		if !res.Eligible {
			dropped = append(dropped, o.Key())
			deps.Logger.Debug("offering rejected",
				zap.String("course_id", o.CourseID),
				zap.String("institution_id", o.InstitutionID),
				zap.Strings("failed", labels(res.Failed())),
			)
			continue
		}

		o.Audit = res.Audit
		o.Likelihood = res.Likelihood
		o.StudentMerit = studentMerit
		kept = append(kept, o)
	}
	v.Items = kept

	if len(dropped) > 0 {
		deps.Logger.Info("excluding offerings the student is not eligible for",
			zap.Int("excluded", len(dropped)),
			zap.Int("offerings_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(dropped), Left: v.Len()}, nil
}

func (f *eligibilityFilter) Status() Status {
	details := map[string]string{
		"workers": strconv.Itoa(f.workers),
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

func labels(entries []eligibility.AuditEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return out
}
