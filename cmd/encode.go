package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kjourdan1/hashenc/internal/batch"
	"github.com/kjourdan1/hashenc/internal/codec"
	"github.com/kjourdan1/hashenc/internal/exitcode"
	"github.com/kjourdan1/hashenc/internal/output"
	"github.com/kjourdan1/hashenc/internal/wizard"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [INPUT...]",
	Short: "Validate and encode '#'-delimited inputs",
	Long: `Validates each INPUT and prints its encoded value, or the failure
sentinel when it is invalid. One line is printed per input.

Inputs can also be read line by line from stdin (--stdin) or entered field
by field (--interactive).

Examples:
  hashenc encode 128#0#0#1 100#101#1#5
  printf '1#2#3#4\n9#9#9\n' | hashenc encode --stdin --explain
  hashenc encode -i
  hashenc encode 1#2#3#4 5#6#7#8 --save-manifest batch.yaml`,
	RunE: runEncode,
}

var (
	encodeStdin       bool
	encodeInteractive bool
	encodeExplain     bool
	encodeStrict      bool
	encodeSaveTo      string
)

// newPrompter is replaced in tests.
var newPrompter = func() wizard.Prompter { return wizard.NewSurveyPrompter() }

func init() {
	encodeCmd.Flags().BoolVar(&encodeStdin, "stdin", false, "read inputs from stdin, one per line")
	encodeCmd.Flags().BoolVarP(&encodeInteractive, "interactive", "i", false, "enter the four fields interactively")
	encodeCmd.Flags().BoolVar(&encodeExplain, "explain", false, "show why an input is invalid")
	encodeCmd.Flags().BoolVar(&encodeStrict, "strict", false, "exit with a validation error if any input is invalid")
	encodeCmd.Flags().StringVar(&encodeSaveTo, "save-manifest", "", "also write the inputs as a batch manifest (JSON if the path ends in .json)")

	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inputs := append([]string(nil), args...)

	if encodeStdin {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return exitcode.Wrap(exitcode.IO, fmt.Errorf("reading stdin: %w", err))
		}
		inputs = append(inputs, lines...)
	}

	if encodeInteractive {
		input, err := wizard.NewEncodeWizard(newPrompter()).Run()
		if err != nil {
			return exitcode.Wrap(exitcode.Generic, fmt.Errorf("interactive input: %w", err))
		}
		inputs = append(inputs, input)
	}

	if len(inputs) == 0 {
		return exitcode.Wrap(exitcode.Validation, output.NewErrorWithFix(
			"no inputs given",
			"Pass inputs as arguments (hashenc encode 1#2#3#4), use --stdin or --interactive",
		))
	}

	m := batch.FromInputs("encode", inputs)
	if encodeSaveTo != "" {
		if err := saveManifest(m, encodeSaveTo); err != nil {
			return err
		}
		output.Debug("manifest written", "path", encodeSaveTo)
	}

	report := batch.Run(m, batch.Options{})
	for _, r := range report.Results {
		if !r.Valid {
			output.Debug("invalid input", "input", r.Input, "reason", r.Reason)
		}
	}

	var err error
	if encodeStrict && report.Failed() {
		err = exitcode.Wrap(exitcode.Validation, fmt.Errorf("%d of %d input(s) invalid", report.Invalid, report.Total))
	}

	return printResults(cmd, report.Results, err)
}

func saveManifest(m *batch.Manifest, path string) error {
	vr, err := batch.Validate(m)
	if err != nil {
		return exitcode.Wrap(exitcode.Generic, err)
	}
	if !vr.Valid {
		return exitcode.Wrap(exitcode.Validation, &batch.SchemaError{Errors: vr.Errors})
	}
	data, err := batch.Marshal(m, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return exitcode.Wrap(exitcode.Generic, fmt.Errorf("encoding manifest: %w", err))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return exitcode.Wrap(exitcode.IO, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return exitcode.Wrap(exitcode.IO, fmt.Errorf("writing manifest: %w", err))
	}
	return nil
}

// printResults writes results in the configured format and returns err,
// marked as reported when the JSON payload already carries it.
func printResults(cmd *cobra.Command, results []codec.Result, err error) error {
	if output.JSONMode {
		if err != nil {
			output.JSONWithError(results, err)
			return reported(err)
		}
		output.JSON(results)
		return nil
	}

	w := output.Stdout()
	if encodeExplain {
		fmt.Fprintln(w, output.RenderResults(results, settings.Output.Sentinel, true))
	} else {
		for _, r := range results {
			fmt.Fprintln(w, output.Plain(r, settings.Output.Sentinel))
		}
	}

	if err != nil {
		color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
		return reported(err)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
