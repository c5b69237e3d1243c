package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kjourdan1/hashenc/internal/batch"
	"github.com/kjourdan1/hashenc/internal/doctor"
	"github.com/kjourdan1/hashenc/internal/exitcode"
	"github.com/kjourdan1/hashenc/internal/output"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check settings, schema and encoder health",
	Long: `Verify that settings load, that the embedded batch manifest schema
compiles, that the encoder reproduces its reference values and that the
audit log is writable.

Each check reports ✅ (pass), ❌ (fail), ⚠️ (warning) or ⏭️ (skipped) with
an actionable fix suggestion.

Exit code 0 if all critical checks pass, 1 otherwise.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	summary := doctor.RunAll(doctor.Env{
		Settings:   settings,
		ConfigFile: configFileUsed,
		Schema:     batch.GetSchema(),
	})

	doctor.PrintResults(cmd.OutOrStdout(), summary)

	if summary.HasFailure {
		err := exitcode.Wrap(exitcode.Generic, output.NewError("one or more critical checks failed"))
		if output.JSONMode {
			return reported(err)
		}
		return err
	}
	return nil
}
