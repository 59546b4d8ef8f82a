package cmd

import (
	"errors"

	"github.com/joshyorko/heron/common"
	"github.com/joshyorko/heron/pretty"
	"github.com/joshyorko/heron/settings"
	"github.com/joshyorko/heron/xviper"

	"github.com/spf13/cobra"
)

var (
	configFile    string
	debugFlag     bool
	traceFlag     bool
	silentFlag    bool
	colorlessFlag bool
	lineNumbers   bool
)

var rootCmd = &cobra.Command{
	Use:   "heron",
	Short: "Triangle area calculator using Heron's formula.",
	Long: `Heron asks for the three side lengths of a triangle and tells the area
enclosed by them, using Heron's formula:

     S = (a+b+c) / 2
     A = Sqrt( S(S-a)(S-b)(S-c) )

Without subcommand the interactive calculator loop is started. It keeps
asking for new triangles until input is closed or the program is killed.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	RunE:              runLoop,
}

func Execute() {
	defer common.WaitLogs()

	err := rootCmd.Execute()
	if errors.Is(err, ErrImpossibleTriangle) {
		pretty.Exit(2, "%v", err)
	}
	pretty.Guard(err == nil, 1, "Error: %v", err)
}

func initConfig(cmd *cobra.Command, args []string) error {
	common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
	common.LogLinenumbers = lineNumbers
	common.NoColorFlag = colorlessFlag
	pretty.Setup()

	err := settings.LoadFile(configFile)
	if err != nil {
		return err
	}
	_, err = settings.SummonSettings()
	if err != nil {
		return err
	}
	common.Trace("Effective settings: %v", xviper.AllSettings())
	return nil
}

func bindFlag(cmd *cobra.Command, key, name string) {
	err := xviper.BindPFlag(key, cmd.PersistentFlags().Lookup(name))
	common.Uncritical("binding flag "+name, err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Settings file to use. (default is $HERON_HOME/heron.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "", false, "To get debug output where available.")
	rootCmd.PersistentFlags().BoolVarP(&traceFlag, "trace", "", false, "To get trace output where available.")
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "", false, "Be silent, do not log anything.")
	rootCmd.PersistentFlags().BoolVarP(&colorlessFlag, "colorless", "", false, "Do not use colors in output.")
	rootCmd.PersistentFlags().BoolVarP(&lineNumbers, "numbered", "", false, "Put line numbers on log lines.")
	rootCmd.PersistentFlags().String("unit", "m", "Unit symbol shown after lengths.")
	rootCmd.PersistentFlags().Int("precision", -1, "Decimals shown in numbers, -1 for shortest exact form.")
	bindFlag(rootCmd, settings.UnitKey, "unit")
	bindFlag(rootCmd, settings.PrecisionKey, "precision")

	rootCmd.Flags().BoolVarP(&plainFlag, "plain", "", false, "Never redraw lines or clear the screen.")
	rootCmd.Flags().BoolVarP(&noPauseFlag, "no-pause", "", false, "Do not wait for Enter between steps.")
}
