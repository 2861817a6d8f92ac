package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/halatuju/internal/eligibility"
	"github.com/spigell/halatuju/internal/logger"
	"github.com/spigell/halatuju/internal/offering"
)

const maxLoggedOfferings = 20

// Filter represents a single filtering step applied to offerings.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, v *offering.Offerings) (*offering.Offerings, Step, error)
}

// RequirementSource looks up the requirement record of a course.
type RequirementSource interface {
	Requirement(courseID string) (eligibility.Requirement, bool)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger       *zap.Logger
	Profile      eligibility.Profile
	Requirements RequirementSource
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	Sources     []string
	ExcludeFile string
	Workers     int
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Default returns the standard pipeline: source selection, exclude file,
// then eligibility.
func Default() []Filter {
	return []Filter{NewSources(), NewExcludeFile(), NewEligibility()}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run validates every enabled filter and then applies them in order.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, v *offering.Offerings) (*offering.Offerings, error) {
	deps.Logger = logger.Nop(deps.Logger)

	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(ctx, deps, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		deps.Logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		v = next
	}

	return v, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
