package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kjourdan1/hashenc/internal/batch"
)

// demoInputs are the sample inputs shipped with the encoder.
var demoInputs = []string{
	"128#0#0#1",
	"100#101#1#5",
	"a#101#1#5",
	"135#101#1#5",
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Encode the built-in sample inputs",
	Long: `Encodes four sample inputs and prints one result per line:

  128#0#0#1     2147483649
  100#101#1#5   1684340997
  a#101#1#5     false (first field is not a number)
  135#101#1#5   false (first field is above 128)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		report := batch.Run(batch.FromInputs("demo", demoInputs), batch.Options{})
		return printResults(cmd, report.Results, nil)
	},
}

func init() {
	demoCmd.Flags().BoolVar(&encodeExplain, "explain", false, "show why an input is invalid")
	rootCmd.AddCommand(demoCmd)
}
