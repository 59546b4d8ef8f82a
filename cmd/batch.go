package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/joshyorko/heron/common"
	"github.com/joshyorko/heron/pretty"
	"github.com/joshyorko/heron/settings"

	"github.com/spf13/cobra"
)

var (
	batchOutput string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Calculate areas for triangles listed in standard input.",
	Long: `Batch reads one triangle per line from standard input. Each line has three
side lengths separated by white space; shell style quoting is allowed. Empty
lines and lines starting with # are skipped. Lines which cannot be used are
reported and processing continues with the next line.

Example:
  printf '3 4 5\n1 1 5\n' | heron batch --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutput(batchOutput); err != nil {
			return err
		}
		config := settings.Global
		entries := []report{}
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for number := 1; scanner.Scan(); number++ {
			line := strings.TrimSpace(scanner.Text())
			if len(line) == 0 || strings.HasPrefix(line, "#") {
				continue
			}
			entry := batchLine(line, config)
			entry.Line = number
			if entry.Result == resultInvalid {
				pretty.Warning("line %d skipped: %s", number, entry.Error)
			}
			entries = append(entries, entry)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading triangles: %w", err)
		}
		common.Debug("Batch calculated %d triangle(s).", len(entries))
		if len(entries) > 0 {
			err := writeReports(cmd.OutOrStdout(), batchOutput, config, false, entries...)
			if err != nil {
				return err
			}
		}
		pretty.Ok()
		return nil
	},
}

func batchLine(line string, config *settings.Settings) report {
	fields, err := shlex.Split(line)
	if err != nil {
		return invalid(err, config)
	}
	sides, err := parseSides(fields)
	if err != nil {
		return invalid(err, config)
	}
	return calculate(sides, config)
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", outputText, "Output format: text, json or yaml.")
}
