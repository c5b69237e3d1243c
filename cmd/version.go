package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kjourdan1/hashenc/internal/output"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print hashenc version",
	Run: func(cmd *cobra.Command, args []string) {
		if output.JSONMode {
			output.JSON(map[string]string{"version": Version, "commit": Commit, "buildDate": BuildDate})
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "hashenc version %s (commit: %s, built: %s)\n", Version, Commit, BuildDate)
	},
}

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}
