package cmd

import (
	"github.com/joshyorko/heron/common"
	"github.com/joshyorko/heron/interactive"
	"github.com/joshyorko/heron/pretty"
	"github.com/joshyorko/heron/settings"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"interactive", "i"},
	Short:   "Launch full screen calculator.",
	Long: `Launch the full screen terminal user interface of the calculator.

Type each side length and press Enter. After the result, Enter starts a new
triangle. Esc or Ctrl+C quits.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		pretty.Guard(pretty.Interactive, 1, "The full screen calculator requires a terminal (TTY)")

		outcomes, err := interactive.Run(settings.Global.SessionOptions())
		pretty.Guard(err == nil, 1, "UI error: %v", err)
		common.Log("%d triangle(s) calculated.", len(outcomes))
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
