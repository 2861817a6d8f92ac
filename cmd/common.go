package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/halatuju/internal/catalog"
	"github.com/spigell/halatuju/internal/eligibility"
	"github.com/spigell/halatuju/internal/filtering"
	"github.com/spigell/halatuju/internal/logger"
	"github.com/spigell/halatuju/internal/merit"
	"github.com/spigell/halatuju/internal/output"
	"github.com/spigell/halatuju/internal/ranking"
)

// setup builds the run logger and reads the config. Any failure is fatal.
func setup(cmd *cobra.Command) (*zap.Logger, *Config) {
	base, err := logger.New(logger.Options{JSON: viper.GetBool("json"), Debug: viper.GetBool("debug")})
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	l := logger.WithRunFields(base, uuid.NewString(), cmd.Name())

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.Profile == nil {
		l.Fatal("config is required", zap.String("hint", "describe the student under the profile key"))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	l.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return l, config
}

// buildProfile normalises the configured profile. A missing merit is
// computed from the grade sheet and the co-curricular score.
func buildProfile(config *Config, l *zap.Logger) eligibility.Profile {
	p := eligibility.NewProfile(config.Profile.ProfileInput)
	if _, ok := p.Merit(); ok {
		return p
	}

	res := merit.Compute(p.Grades(), config.Profile.Coq)
	l.Debug("computed merit",
		zap.Float64("academic_merit", res.Academic),
		zap.Float64("final_merit", res.Final),
	)
	return p.WithMerit(res.Final)
}

func loadCatalog(config *Config, l *zap.Logger) *catalog.Catalog {
	var paths []string
	if config.Catalog != nil {
		paths = config.Catalog.Paths
	}
	if len(paths) == 0 {
		l.Fatal("catalog paths are required",
			zap.String("hint", "set catalog.paths in the config or the HALATUJU_CATALOG environment variable"),
		)
	}

	c, err := catalog.Load(paths, l)
	if err != nil {
		l.Fatal("loading the catalog", zap.Error(err))
	}
	return c
}

func newFormatter(config *Config, l *zap.Logger) output.Formatter {
	format := ""
	if config.Output != nil {
		format = config.Output.Format
	}

	f, err := output.New(format, os.Stdout)
	if err != nil {
		l.Fatal("creating an output formatter", zap.Error(err))
	}
	return f
}

func filterConfig(config *Config) *filtering.Config {
	return &filtering.Config{
		Sources:     config.Sources,
		ExcludeFile: config.ExcludeFile,
		Workers:     config.Workers,
	}
}

func signals(config *Config) ranking.Signals {
	out := make(ranking.Signals, len(config.Signals))
	for category, values := range config.Signals {
		out[ranking.Category(category)] = values
	}
	return out
}
