package pretty

import (
	"os"
	"strings"

	"github.com/joshyorko/heron/common"
	"golang.org/x/term"
)

// Cursor control sequences (CSI, Control Sequence Introducer). These only
// build the sequences; the caller decides where they are written.

// CursorUp moves cursor up by n lines (CSI {n}A)
func CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return csif("%dA", n)
}

// EraseLine returns carriage to column one and clears the entire line (CSI 2K)
func EraseLine() string {
	return "\r" + csi("2K")
}

// ClearScreen moves cursor home and clears everything below it.
func ClearScreen() string {
	return csi("1;1H") + csi("0J")
}

// TerminalWidth returns the terminal width in columns
// Uses golang.org/x/term.GetSize() with fallback to 80 columns if detection fails
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		common.Trace("Failed to get terminal width, using fallback: %v", err)
		return 80
	}
	common.Trace("Terminal width detected: %d", width)
	return width
}

// Rule is a horizontal divider of given length, never wider than limit.
// Limit zero or less means no limit.
func Rule(length, limit int) string {
	if limit > 0 && length > limit {
		length = limit
	}
	if length <= 0 {
		return ""
	}
	return strings.Repeat("-", length)
}
