package filtering

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/halatuju/internal/offering"
	"github.com/spigell/halatuju/internal/utils"
)

type excludeFileFilter struct {
	disabled bool
	reason   string
	path     string
}

// NewExcludeFile creates a filter that removes offerings listed in the exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *excludeFileFilter) IsEnabled() bool { return !f.disabled }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, v *offering.Offerings) (*offering.Offerings, Step, error) {
	initial := v.Len()
	if f.path == "" {
		return v, Step{Initial: initial, Dropped: 0, Left: v.Len()}, nil
	}

	excluded, err := offering.GetExcludedFromFile(f.path)
	if err != nil {
		return v, Step{}, fmt.Errorf("getting excluded courses from file: %w", err)
	}

	removed := v.Exclude(offering.CourseIDField, excluded.CourseIDs())
	removed = append(removed, v.Exclude(offering.KeyField, excluded.Keys())...)
	if len(removed) > 0 {
		deps.Logger.Info("excluding offerings based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_offerings", utils.TruncateListForLog(removed, maxLoggedOfferings)),
			zap.Int("offerings_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(removed), Left: v.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
