package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/halatuju/internal/eligibility"
)

var checkCmd = &cobra.Command{
	Use:   "check <course_id>",
	Short: "Print the full eligibility audit of one course",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		check(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func check(cmd *cobra.Command, courseID string) {
	logger, config := setup(cmd)

	cat := loadCatalog(config, logger)
	req, ok := cat.Requirement(courseID)
	if !ok {
		logger.Fatal("course not found in the catalog",
			zap.String("course_id", courseID),
			zap.Strings("files", cat.Files()),
		)
	}

	profile := buildProfile(config, logger)
	res := eligibility.Evaluate(profile, req)

	logger.Debug("evaluated course",
		zap.String("course_id", courseID),
		zap.Bool("eligible", res.Eligible),
		zap.Int("entries", len(res.Audit)),
	)

	if err := newFormatter(config, logger).Audit(courseID, res); err != nil {
		logger.Fatal("rendering the audit", zap.Error(err))
	}
}
