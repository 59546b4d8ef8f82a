package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/joshyorko/heron/common"
)

const (
	UNIX_NEWLINE    = "\n"
	WINDOWS_NEWLINE = "\r\n"

	newline = '\n'
)

var (
	// ErrInvalidInput is matched by every InvalidInputError via errors.Is.
	ErrInvalidInput = errors.New("input must be a number")
)

// InvalidInputError reports side length text that is not a real number.
type InvalidInputError struct {
	Label string
	Input string
	Err   error
}

func (it *InvalidInputError) Error() string {
	if len(it.Label) > 0 {
		return fmt.Sprintf("side %s: %q: %v", it.Label, it.Input, ErrInvalidInput)
	}
	return fmt.Sprintf("%q: %v", it.Input, ErrInvalidInput)
}

func (it *InvalidInputError) Unwrap() []error {
	if it.Err == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, it.Err}
}

// Screen receives everything the collector wants the user to see.
type Screen interface {
	Line(format string, details ...interface{})
	Clear()
}

// Redrawer is implemented by screens that can replace the instruction and the
// typed input of the side that was just accepted with a summary line.
type Redrawer interface {
	Redraw(text string)
}

// ParseSide converts user typed text into a side length. Anything that
// strconv accepts as a finite float64 is fine, including zero and negative
// values.
func ParseSide(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		var numeric *strconv.NumError
		if errors.As(err, &numeric) {
			err = numeric.Err
		}
		return 0, &InvalidInputError{Input: trimmed, Err: err}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &InvalidInputError{Input: trimmed}
	}
	return value, nil
}

// FormatNumber renders value with given number of decimals; negative
// precision gives the shortest representation that reads back exactly.
func FormatNumber(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func readLine(source *bufio.Reader) (string, error) {
	reply, err := source.ReadString(newline)
	if err != nil {
		if errors.Is(err, io.EOF) && len(reply) > 0 {
			return strings.TrimRight(reply, WINDOWS_NEWLINE), nil
		}
		return "", err
	}
	return strings.TrimRight(reply, WINDOWS_NEWLINE), nil
}

func note(screen Screen, form string, details ...interface{}) {
	message := fmt.Sprintf(form, details...)
	common.Trace("wizard note: %s", message)
	screen.Line("%s", message)
}
