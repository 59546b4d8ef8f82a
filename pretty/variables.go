package pretty

import (
	"os"

	"github.com/joshyorko/heron/common"
	"github.com/mattn/go-isatty"
)

var (
	Colorless   bool
	Disabled    bool
	Interactive bool
	Red         string
	Green       string
	Yellow      string
	Reset       string
	Bold        string
)

func Setup() {
	stdin := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	if common.NoColorFlag || os.Getenv("NO_COLOR") != "" {
		Colorless = true
	}
	if os.Getenv("TERM") == "" || os.Getenv("TERM") == "dumb" {
		Colorless = true
	}

	// Prompts are read from stdin and redrawn on stdout, so both must be terminals.
	Interactive = stdin && stdout

	Disabled = !localSetup(Interactive)

	common.Trace("Interactive mode enabled: %v; colors enabled: %v", Interactive, !Colorless && !Disabled)
	if stdout && !Colorless && !Disabled {
		Red = csi("91m")
		Green = csi("92m")
		Yellow = csi("93m")
		Reset = csi("0m")
		Bold = csi("1m")
	}
}
