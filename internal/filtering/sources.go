package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/halatuju/internal/offering"
	"github.com/spigell/halatuju/internal/utils"
)

type sourcesFilter struct {
	disabled bool
	reason   string
	sources  []string
}

// NewSources creates a filter that keeps only offerings from the configured
// source types. An empty source list keeps everything.
func NewSources() Filter {
	return &sourcesFilter{}
}

func (f *sourcesFilter) Name() string { return "sources" }

func (f *sourcesFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *sourcesFilter) IsEnabled() bool { return !f.disabled }

func (f *sourcesFilter) Validate(cfg *Config) error {
	f.sources = nil
	if cfg == nil {
		return nil
	}
	for _, s := range cfg.Sources {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			f.sources = append(f.sources, s)
		}
	}
	return nil
}

func (f *sourcesFilter) Apply(_ context.Context, deps Deps, v *offering.Offerings) (*offering.Offerings, Step, error) {
	initial := v.Len()
	if len(f.sources) == 0 {
		return v, Step{Initial: initial, Dropped: 0, Left: v.Len()}, nil
	}

	excluded := v.Keep(offering.SourceTypeField, f.sources)
	if len(excluded) > 0 {
		deps.Logger.Debug("excluding offerings by source type",
			zap.Strings("sources", f.sources),
			zap.Strings("excluded_offerings", utils.TruncateListForLog(excluded, maxLoggedOfferings)),
			zap.Int("offerings_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}

func (f *sourcesFilter) Status() Status {
	details := map[string]string{}
	if len(f.sources) > 0 {
		details["sources"] = strings.Join(f.sources, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
