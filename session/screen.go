package session

import (
	"fmt"
	"io"

	"github.com/joshyorko/heron/pretty"
	"github.com/joshyorko/heron/wizard"
)

type widthLimited interface {
	Width() int
}

type plainScreen struct {
	out io.Writer
}

// NewPlainScreen appends lines and never moves the cursor.
func NewPlainScreen(out io.Writer) wizard.Screen {
	return &plainScreen{out: out}
}

func (it *plainScreen) Line(format string, details ...interface{}) {
	fmt.Fprintf(it.out, format+"\n", details...)
}

func (it *plainScreen) Clear() {}

type terminalScreen struct {
	plainScreen
	width int
}

// NewTerminalScreen clears between iterations and rewrites the instruction
// of an accepted side with its value.
func NewTerminalScreen(out io.Writer, width int) wizard.Screen {
	return &terminalScreen{plainScreen: plainScreen{out: out}, width: width}
}

func (it *terminalScreen) Clear() {
	fmt.Fprint(it.out, pretty.ClearScreen())
}

// Redraw expects cursor below the line the user typed, and the instruction
// line above that one.
func (it *terminalScreen) Redraw(text string) {
	fmt.Fprintf(it.out, "%s%s%s\n%s", pretty.CursorUp(2), pretty.EraseLine(), text, pretty.EraseLine())
}

func (it *terminalScreen) Width() int {
	return it.width
}
