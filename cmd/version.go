package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spigell/halatuju/internal/ranking"
)

// Actual version can be specified with -ldflags "-X github.com/spigell/halatuju/cmd.version=...".
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the fit score limits it ranks with",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s version: %s\n", app, version)
		fmt.Fprintf(out, "fit score: base %d, category cap %d, institution cap %d, total cap %d\n",
			ranking.BaseScore, ranking.CategoryCap, ranking.InstitutionCap, ranking.GlobalCap)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
