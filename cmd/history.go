package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kjourdan1/hashenc/internal/audit"
	"github.com/kjourdan1/hashenc/internal/output"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show CLI audit history",
	Long: `Displays audit events written by hashenc in JSONL format.

By default, reads ~/.hashenc/audit.log (audit.path) and prints the latest events.
Use --result to keep only successful or failed invocations.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var (
	historyResult string
	historyLimit  int
)

func init() {
	historyCmd.Flags().StringVar(&historyResult, "result", "", "filter by result (success or failure)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "max number of events to display")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	events, err := audit.Read(settings.Audit.Path)
	if err != nil {
		return fmt.Errorf("history failed: %w", err)
	}
	filtered := audit.Filter(events, historyResult, historyLimit)

	if output.JSONMode {
		output.JSON(filtered)
		return nil
	}

	w := cmd.ErrOrStderr()
	if len(events) == 0 {
		fmt.Fprintln(w, "No audit events found.")
		return nil
	}
	if len(filtered) == 0 {
		fmt.Fprintln(w, "No matching audit events.")
		return nil
	}

	bold := color.New(color.Bold)
	bold.Fprintln(w, "📜 hashenc history")
	for _, event := range filtered {
		status := color.New(color.FgGreen)
		if event.Result != audit.ResultSuccess {
			status = color.New(color.FgRed)
		}
		status.Fprintf(w, "  %s", event.Result)
		fmt.Fprintf(w, "  %s  op=%s", event.Timestamp, event.Operation)
		fmt.Fprintf(w, "  exit=%d  duration=%dms", event.ExitCode, event.DurationMs)
		if cfg := event.MetadataValue("config"); cfg != "" {
			fmt.Fprintf(w, "  config=%s", cfg)
		}
		fmt.Fprintln(w)
	}

	return nil
}
