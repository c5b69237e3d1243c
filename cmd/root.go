// Package cmd implements the Cobra-based CLI for hashenc.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kjourdan1/hashenc/internal/config"
	"github.com/kjourdan1/hashenc/internal/exitcode"
	"github.com/kjourdan1/hashenc/internal/output"
)

var (
	cfgFile    string
	verbosity  int
	jsonOutput bool // --json flag for machine-readable output
	sentinel   string

	// settings is resolved once per invocation in PersistentPreRunE.
	settings *config.Settings
	// configFileUsed is empty when no settings file was found.
	configFileUsed string
)

// rootCmd is the top-level command for hashenc.
var rootCmd = &cobra.Command{
	Use:   "hashenc",
	Short: "Validate and encode '#'-delimited four-field inputs",
	Long: `hashenc validates strings of the form A#B#C#D and folds the four
fields into one integer with base-256 positional weighting:

  value = ((A*256 + B)*256 + C)*256 + D

Field A must lie in 1..128 and fields B, C and D in 0..255. Any input with
a wrong field count, a non-numeric field or an out-of-range field fails as
a whole and prints the failure sentinel ("false" by default).

Settings are read from hashenc.yaml (working directory or $HOME) and
HASHENC_* environment variables.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command and reports any error it returns.
func Execute() error {
	err := rootCmd.Execute()
	var rep *reportedError
	if err != nil && !errors.As(err, &rep) {
		output.PrintError(err)
	}
	return err
}

// Settings returns the settings of the last invocation, or nil if they
// could not be loaded.
func Settings() *config.Settings {
	return settings
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: hashenc.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (-v, -vv)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON (machine-readable)")
	rootCmd.PersistentFlags().StringVar(&sentinel, "sentinel", config.DefaultSentinel, "text printed for an invalid input")
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	settings = nil
	configFileUsed = ""
	output.SetWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
	output.Init(verbosity > 0, jsonOutput)

	v := viper.New()
	config.Init(v, cfgFile)
	_ = v.BindPFlag(config.KeyOutputSentinel, cmd.Root().PersistentFlags().Lookup("sentinel"))
	if f := cmd.Flags().Lookup("fail-fast"); f != nil {
		_ = v.BindPFlag(config.KeyBatchFailFast, f)
	}

	if err := config.Read(v); err != nil {
		return exitcode.Wrap(exitcode.Config, output.WrapErrorWithFix(err, "loading settings", "Check the file passed with --config or run: hashenc config init --force"))
	}
	s, err := config.Load(v)
	if err != nil {
		return exitcode.Wrap(exitcode.Config, err)
	}
	if jsonOutput {
		s.Output.Format = config.FormatJSON
	}
	settings = s

	output.Init(verbosity > 0, s.JSON())
	configFileUsed = v.ConfigFileUsed()
	if configFileUsed != "" {
		output.Debug("using config file", "path", configFileUsed)
	}
	return nil
}

// reportedError marks an error whose details were already written to the
// JSON output, so Execute does not print it a second time.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}
