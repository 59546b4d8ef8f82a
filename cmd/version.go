package cmd

import (
	"fmt"

	"github.com/joshyorko/heron/common"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version of heron.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", common.HeronMode().Name(), common.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
