package wizard_test

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/joshyorko/heron/hamlet"
	"github.com/joshyorko/heron/wizard"
)

type recordingScreen struct {
	lines  []string
	clears int
}

func (it *recordingScreen) Line(format string, details ...interface{}) {
	it.lines = append(it.lines, fmt.Sprintf(format, details...))
}

func (it *recordingScreen) Clear() {
	it.clears++
}

type redrawingScreen struct {
	recordingScreen
	redraws []string
}

func (it *redrawingScreen) Redraw(text string) {
	it.redraws = append(it.redraws, text)
}

func TestParseSideAcceptsNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"10", 10},
		{"3.5", 3.5},
		{"-2", -2},
		{"+4", 4},
		{" 7 ", 7},
		{"1e3", 1000},
		{".25", 0.25},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			must_be, _ := hamlet.Specifications(t)
			value, err := wizard.ParseSide(tt.input)
			must_be.Nil(err)
			must_be.Equal(tt.expected, value)
		})
	}
}

func TestParseSideRejectsNonNumbers(t *testing.T) {
	for _, input := range []string{"abc", "", "   ", "x", "3,5", "10m", "NaN", "Inf", "-infinity", "1e400"} {
		t.Run(strconv.Quote(input), func(t *testing.T) {
			must_be, _ := hamlet.Specifications(t)
			value, err := wizard.ParseSide(input)
			must_be.ErrorIs(err, wizard.ErrInvalidInput)
			must_be.Equal(0.0, value)
		})
	}
}

func TestParseSideKeepsSyntaxReason(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	_, err := wizard.ParseSide("abc")
	must_be.ErrorIs(err, strconv.ErrSyntax)

	var invalid *wizard.InvalidInputError
	must_be.True(errors.As(err, &invalid))
	must_be.Equal("abc", invalid.Input)
}

func TestCollectSideEchoesAcceptedValue(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	screen := &recordingScreen{}
	sut := wizard.NewCollector(strings.NewReader("10\n3.5\r\n"), screen)

	value, err := sut.CollectSide("a")
	must_be.Nil(err)
	must_be.Equal(10.0, value)

	value, err = sut.CollectSide("b")
	must_be.Nil(err)
	must_be.Equal(3.5, value)

	must_be.Equal([]string{"Side a = 10m", "Side b = 3.5m"}, screen.lines)
}

func TestCollectSidePrefersRedraw(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	screen := &redrawingScreen{}
	sut := wizard.NewCollector(strings.NewReader("-2\n"), screen)
	sut.Unit = "cm"

	value, err := sut.CollectSide("c")
	must_be.Nil(err)
	must_be.Equal(-2.0, value)
	must_be.Equal([]string{"Side c = -2cm"}, screen.redraws)
	must_be.Equal(0, len(screen.lines))
}

func TestCollectSideRejectsText(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	screen := &recordingScreen{}
	sut := wizard.NewCollector(strings.NewReader("abc\n5\n"), screen)

	value, err := sut.CollectSide("b")
	must_be.ErrorIs(err, wizard.ErrInvalidInput)
	must_be.Equal(0.0, value)

	var invalid *wizard.InvalidInputError
	must_be.True(errors.As(err, &invalid))
	must_be.Equal("b", invalid.Label)
	must_be.Contains(err.Error(), "side b")
	must_be.Equal([]string{"Input must be a number, press Enter to try again."}, screen.lines)
	wont_be.Contains(strings.Join(screen.lines, "\n"), "Side b =")
}

func TestCollectSidePassesReadErrors(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	screen := &recordingScreen{}
	sut := wizard.NewCollector(strings.NewReader("4"), screen)

	value, err := sut.CollectSide("a")
	must_be.Nil(err)
	must_be.Equal(4.0, value)

	_, err = sut.CollectSide("b")
	must_be.ErrorIs(err, io.EOF)
	wont_be.ErrorIs(err, wizard.ErrInvalidInput)
}

func TestPauseConsumesOneLine(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	screen := &recordingScreen{}
	sut := wizard.NewCollector(strings.NewReader("anything at all\n8\n"), screen)

	must_be.Nil(sut.Pause())
	value, err := sut.CollectSide("a")
	must_be.Nil(err)
	must_be.Equal(8.0, value)
	must_be.ErrorIs(sut.Pause(), io.EOF)
}

func TestFormatNumber(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	must_be.Equal("6", wizard.FormatNumber(6, -1))
	must_be.Equal("0.1", wizard.FormatNumber(0.1, -1))
	must_be.Equal("6.00", wizard.FormatNumber(6, 2))
	must_be.Equal("100000000000000000000", wizard.FormatNumber(1e20, -1))
}
