package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kjourdan1/hashenc/internal/batch"
	"github.com/kjourdan1/hashenc/internal/exitcode"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Export or check the batch manifest JSON Schema",
	Long: `Schema tooling for batch manifests.

Examples:
  hashenc schema export                      # print schema to stdout
  hashenc schema export --output schema.json # write to file
  hashenc schema validate batch.yaml         # check a manifest without encoding it`,
}

var schemaExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the batch manifest JSON Schema",
	Args:  cobra.NoArgs,
	RunE:  runSchemaExport,
}

var schemaValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a batch manifest against the JSON Schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchemaValidate,
}

var schemaOutputFile string

func init() {
	schemaExportCmd.Flags().StringVarP(&schemaOutputFile, "output", "o", "", "write schema to file instead of stdout")

	schemaCmd.AddCommand(schemaExportCmd)
	schemaCmd.AddCommand(schemaValidateCmd)
	rootCmd.AddCommand(schemaCmd)
}

func runSchemaExport(cmd *cobra.Command, args []string) error {
	data := batch.GetSchema()
	if len(data) == 0 {
		return exitcode.Wrap(exitcode.Generic, fmt.Errorf("no embedded schema available"))
	}

	if schemaOutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(schemaOutputFile), 0o755); err != nil {
			return exitcode.Wrap(exitcode.IO, err)
		}
		if err := os.WriteFile(schemaOutputFile, data, 0o644); err != nil {
			return exitcode.Wrap(exitcode.IO, err)
		}
		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "✅ Schema written to %s\n", schemaOutputFile)
		return nil
	}

	_, err := cmd.OutOrStdout().Write(data)
	return err
}

func runSchemaValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return exitcode.Wrap(exitcode.IO, err)
	}
	result, err := batch.ValidateYAML(data)
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, err)
	}
	if !result.Valid {
		w := cmd.ErrOrStderr()
		for _, e := range result.Errors {
			color.New(color.FgRed).Fprintf(w, "  ❌ %s: %s\n", e.Field, e.Description)
		}
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("%d schema validation error(s) found", len(result.Errors)))
	}
	color.New(color.FgGreen, color.Bold).Fprintf(cmd.ErrOrStderr(), "✅ %s matches schema\n", args[0])
	return nil
}
