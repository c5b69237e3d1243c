package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kjourdan1/hashenc/internal/batch"
	"github.com/kjourdan1/hashenc/internal/exitcode"
	"github.com/kjourdan1/hashenc/internal/output"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Encode every input listed in a manifest",
	Long: `Loads a YAML or JSON manifest, validates it against the embedded
schema and encodes each entry in order.

Manifest format:
  apiVersion: hashenc/v1
  kind: Batch
  metadata:
    name: nightly
  inputs:
    - name: gateway
      value: 100#101#1#5
    - value: 128#0#0#1

Reports are printed to stdout or written with --output, in text, json,
yaml or markdown format. The command exits with a validation error when
any entry is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

var (
	batchFormat   string
	batchOutput   string
	batchFailFast bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", batch.FormatText, "report format: "+strings.Join(batch.Formats, ", "))
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "write the report to a file instead of stdout")
	batchCmd.Flags().BoolVar(&batchFailFast, "fail-fast", false, "stop at the first invalid entry")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := batch.NormalizeFormat(batchFormat)
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, err)
	}

	m, err := batch.Load(path)
	if err != nil {
		var schemaErr *batch.SchemaError
		if errors.As(err, &schemaErr) {
			return exitcode.Wrap(exitcode.Validation, output.WrapErrorWithFix(err, "invalid manifest "+path, "Compare the file with: hashenc schema export"))
		}
		if errors.Is(err, os.ErrNotExist) {
			return exitcode.Wrap(exitcode.IO, err)
		}
		return exitcode.Wrap(exitcode.Validation, err)
	}

	opts := batch.Options{FailFast: settings.Batch.FailFast}
	var report *batch.Report
	_ = output.WithSpinner(fmt.Sprintf("Encoding %d input(s)", len(m.Inputs)), func() error {
		report = batch.Run(m, opts)
		return nil
	})
	output.Debug("batch finished", "valid", report.Valid, "invalid", report.Invalid, "stopped", report.Stopped)

	var runErr error
	if report.Failed() {
		runErr = exitcode.Wrap(exitcode.Validation, fmt.Errorf("%d of %d entries invalid", report.Invalid, report.Total))
	}

	if batchOutput != "" {
		if err := writeReport(report, format, batchOutput); err != nil {
			return err
		}
		if !output.JSONMode {
			color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "✅ Report written to %s\n", batchOutput)
		}
	}

	switch {
	case output.JSONMode:
		if runErr != nil {
			output.JSONWithError(report, runErr)
			return reported(runErr)
		}
		output.JSON(report)
		return nil
	case batchOutput != "":
		// report already written
	case format == batch.FormatText:
		w := output.Stdout()
		if report.Name != "" {
			fmt.Fprintln(w, output.Title("Batch: "+report.Name))
		}
		fmt.Fprintln(w, output.RenderResults(report.Results, settings.Output.Sentinel, true))
		fmt.Fprintln(w, output.Summary(report.Valid, report.Invalid, report.Total-len(report.Results)))
	default:
		data, err := batch.Render(report, format, settings.Output.Sentinel)
		if err != nil {
			return exitcode.Wrap(exitcode.Validation, err)
		}
		if _, err := output.Stdout().Write(data); err != nil {
			return exitcode.Wrap(exitcode.IO, err)
		}
	}

	return runErr
}

func writeReport(report *batch.Report, format, path string) error {
	data, err := batch.Render(report, format, settings.Output.Sentinel)
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return exitcode.Wrap(exitcode.IO, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return exitcode.Wrap(exitcode.IO, fmt.Errorf("writing report: %w", err))
	}
	return nil
}
