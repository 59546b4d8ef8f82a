package cmd

import (
	"github.com/joshyorko/heron/common"
	"github.com/joshyorko/heron/pretty"
	"github.com/joshyorko/heron/session"
	"github.com/joshyorko/heron/settings"
	"github.com/joshyorko/heron/wizard"

	"github.com/spf13/cobra"
)

var (
	plainFlag   bool
	noPauseFlag bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive calculator loop (default command).",
	Long: `Run asks for side a, b and c one line at a time, shows the area and then
starts over. Text that is not a number restarts from side a.`,
	Args: cobra.NoArgs,
	RunE: runLoop,
}

func runLoop(cmd *cobra.Command, args []string) error {
	config := settings.Global
	options := config.SessionOptions()
	if noPauseFlag {
		options.Pause = false
	}
	var screen wizard.Screen
	if !plainFlag && config.UseTerminal(pretty.Interactive) {
		screen = session.NewTerminalScreen(cmd.OutOrStdout(), pretty.TerminalWidth())
	} else {
		screen = session.NewPlainScreen(cmd.OutOrStdout())
	}
	common.Debug("Starting calculator loop with options %+v.", options)
	return session.New(cmd.InOrStdin(), screen, options).Run(cmd.Context())
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&plainFlag, "plain", "", false, "Never redraw lines or clear the screen.")
	runCmd.Flags().BoolVarP(&noPauseFlag, "no-pause", "", false, "Do not wait for Enter between steps.")
}
