package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kjourdan1/hashenc/internal/config"
	"github.com/kjourdan1/hashenc/internal/exitcode"
	"github.com/kjourdan1/hashenc/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect hashenc.yaml",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a hashenc.yaml with default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var (
	configInitPath  string
	configInitForce bool
)

func init() {
	configInitCmd.Flags().StringVar(&configInitPath, "path", config.DefaultConfigName+".yaml", "file to write")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.Save(config.Defaults(), configInitPath, configInitForce); err != nil {
		return exitcode.Wrap(exitcode.Config, output.WrapErrorWithFix(err, "writing config", "Use --force to overwrite"))
	}
	color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "✅ Config written to %s\n", configInitPath)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if output.JSONMode {
		output.JSON(settings)
		return nil
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	_, err = output.Stdout().Write(data)
	return err
}
