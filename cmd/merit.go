package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/halatuju/internal/eligibility"
	"github.com/spigell/halatuju/internal/merit"
)

var meritCmd = &cobra.Command{
	Use:   "merit",
	Short: "Print the merit breakdown of the configured grade sheet",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, config := setup(cmd)

		profile := eligibility.NewProfile(config.Profile.ProfileInput)
		res := merit.Compute(profile.Grades(), config.Profile.Coq)

		if err := newFormatter(config, logger).Merit(res); err != nil {
			logger.Fatal("rendering the merit", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(meritCmd)
}
