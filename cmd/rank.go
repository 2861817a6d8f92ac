package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/halatuju/internal/eligibility"
	"github.com/spigell/halatuju/internal/filtering"
	"github.com/spigell/halatuju/internal/insights"
	"github.com/spigell/halatuju/internal/offering"
	"github.com/spigell/halatuju/internal/output"
	"github.com/spigell/halatuju/internal/ranking"
)

const (
	PromptShowAudit           = "Show the audit of a course"
	PromptShowInsights        = "Show insights"
	PromptReportBySource      = "Report by source"
	PromptAppendToExcludeFile = "Append a course to exclude file"
	PromptOfferingsToFile     = "Dump offerings to file"
	PromptExit                = "Exit"
	PromptBack                = "back"

	excludeReason = "excluded from the rank menu"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowAudit, PromptShowInsights, PromptReportBySource, PromptAppendToExcludeFile, PromptOfferingsToFile, PromptExit},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank every course the student is eligible for",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().BoolP("yes", "y", false, "print the ranking and exit without the interactive menu")
	rankCmd.Flags().BoolP("all", "a", false, "rank every offering without checking eligibility")
	rankCmd.Flags().StringP("exclude-file", "e", "", "special file with courses to exclude. Default is unset.")

	viper.BindPFlag("exclude-file", rankCmd.Flags().Lookup("exclude-file"))
}

func rank(cmd *cobra.Command) {
	ctx := context.Background()

	logger, config := setup(cmd)

	logger.Info("starting the halatuju ranking", zap.String("version", version))

	cat := loadCatalog(config, logger)
	profile := buildProfile(config, logger)
	formatter := newFormatter(config, logger)

	offerings := cat.Offerings()
	if offerings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no offerings in the catalog"))
		return
	}

	steps := filtering.Default()
	if all, _ := cmd.Flags().GetBool("all"); all {
		filtering.DisableByName(steps, "eligibility", "all flag is set")
	}

	deps := filtering.Deps{Logger: logger, Profile: profile, Requirements: cat}
	filtered, err := filtering.Run(ctx, filterConfig(config), deps, steps, offerings)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	logger.Debug("filters", zap.Any("statuses", filtering.Describe(steps)))

	lookups := cat.Lookups()
	result := ranking.Rank(filtered.Items, signals(config), lookups)
	if err := formatter.Ranked(result); err != nil {
		logger.Fatal("rendering the ranking", zap.Error(err))
	}
	if len(result.Top5) > 0 {
		if err := formatter.Insights(insights.Generate(result.All())); err != nil {
			logger.Fatal("rendering the insights", zap.Error(err))
		}
	}

	if yes, _ := cmd.Flags().GetBool("yes"); yes || len(result.Top5) == 0 {
		return
	}

	ranked := &offering.Offerings{Items: result.All()}
	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		logger.Info("current list of offerings", zap.Int("count", ranked.Len()))

		if err := handleAction(action, logger, config, formatter, ranked); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, config *Config, formatter output.Formatter, ranked *offering.Offerings) error {
	switch action {
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	case PromptShowAudit:
		o, err := selectOffering("Choose a course and press ENTER", ranked)
		if err != nil || o == nil {
			return err
		}
		return formatter.Audit(o.Key(), eligibility.Result{Eligible: true, Audit: o.Audit, Likelihood: o.Likelihood})
	case PromptShowInsights:
		return formatter.Insights(insights.Generate(ranked.Items))
	case PromptReportBySource:
		pretty, _ := json.MarshalIndent(ranked.ReportBySource(), "", "  ")
		logger.Info(string(pretty), zap.Int("offerings count", ranked.Len()))
		return nil
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(logger, config, ranked)
	case PromptOfferingsToFile:
		filename, err := ranked.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// selectOffering returns nil when the user goes back.
func selectOffering(label string, ranked *offering.Offerings) (*offering.Offering, error) {
	items := make([]string, 0, ranked.Len()+1)
	for _, o := range ranked.Items {
		items = append(items, fmt.Sprintf("%s / %s / %s", o.Key(), o.CourseName, o.InstitutionName))
	}

	selector := promptui.Select{
		Label: label,
		Items: append(items, PromptBack),
		Size:  10,
	}

	idx, selected, err := selector.Run()
	if err != nil {
		return nil, err
	}
	if selected == PromptBack {
		return nil, nil
	}
	return ranked.Items[idx], nil
}

func appendToExcludeFile(logger *zap.Logger, config *Config, ranked *offering.Offerings) error {
	excludeFile := config.ExcludeFile
	if excludeFile == "" {
		logger.Warn("exclude file is not configured", zap.String("hint", "set exclude-file or pass --exclude-file"))
		return nil
	}

	o, err := selectOffering("Choose a course to exclude", ranked)
	if err != nil || o == nil {
		return err
	}

	excluded, err := offering.GetExcludedFromFile(excludeFile)
	if err != nil {
		return err
	}

	excluded.Append((&offering.Offerings{Items: []*offering.Offering{o}}).ToExcluded(excludeReason))

	if err = excluded.ToFile(excludeFile); err != nil {
		return err
	}

	logger.Info("appended to exclude file",
		zap.String("filename", excludeFile),
		zap.String("course_id", o.CourseID),
		zap.String("institution_id", o.InstitutionID),
	)

	ranked.Exclude(offering.KeyField, []string{o.Key()})
	return nil
}
