package cmd

import (
	"github.com/joshyorko/heron/common"
	"github.com/joshyorko/heron/settings"

	"github.com/spf13/cobra"
)

var (
	areaOutput string
)

var areaCmd = &cobra.Command{
	Use:   "area <a> <b> <c>",
	Short: "Calculate area of one triangle from command line arguments.",
	Long: `Calculate area of one triangle without any prompts.

Exit code is 0 when the area was calculated, 2 when the sides do not form a
triangle (degenerate, flat triangles included) and 1 for invalid input.

Example:
  heron area 3 4 5
  heron area 3 4 5 --output yaml
  heron area -- -1 2 2`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutput(areaOutput); err != nil {
			return err
		}
		config := settings.Global
		sides, err := parseSides(args)
		if err != nil {
			return err
		}
		entry := calculate(sides, config)
		common.Debug("Area of %v is %s.", sides.Slice(), entry.Result)
		err = writeReports(cmd.OutOrStdout(), areaOutput, config, true, entry)
		if err != nil {
			return err
		}
		if entry.Result == resultImpossible {
			return ErrImpossibleTriangle
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(areaCmd)
	areaCmd.Flags().StringVarP(&areaOutput, "output", "o", outputText, "Output format: text, json or yaml.")
}
