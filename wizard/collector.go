package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/joshyorko/heron/common"
	"github.com/joshyorko/heron/pretty"
)

const (
	RetryMessage = "Input must be a number, press Enter to try again."
)

// Collector reads side lengths one line at a time.
type Collector struct {
	source    *bufio.Reader
	screen    Screen
	Unit      string
	Precision int
	Retry     string
}

func NewCollector(source io.Reader, screen Screen) *Collector {
	reader, ok := source.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(source)
	}
	return &Collector{
		source:    reader,
		screen:    screen,
		Unit:      "m",
		Precision: -1,
		Retry:     RetryMessage,
	}
}

// CollectSide reads one side length. Accepted values are echoed as
// "Side <label> = <value><unit>". Text which is not a number is reported on
// screen and returned as *InvalidInputError without retrying. Read errors,
// io.EOF included, are returned as they are.
func (it *Collector) CollectSide(label string) (float64, error) {
	reply, err := readLine(it.source)
	if err != nil {
		return 0, err
	}
	value, err := ParseSide(reply)
	if err != nil {
		var invalid *InvalidInputError
		if errors.As(err, &invalid) {
			invalid.Label = label
		}
		common.Debug("Side %s rejected: %v", label, err)
		note(it.screen, "%s%s%s", pretty.Red, it.Retry, pretty.Reset)
		return 0, err
	}
	common.Debug("Side %s accepted: %v", label, value)
	it.echo(label, value)
	return value, nil
}

// Pause waits until user presses Enter.
func (it *Collector) Pause() error {
	_, err := readLine(it.source)
	return err
}

func (it *Collector) Describe(value float64) string {
	return fmt.Sprintf("%s%s", FormatNumber(value, it.Precision), it.Unit)
}

func (it *Collector) echo(label string, value float64) {
	text := fmt.Sprintf("Side %s = %s", label, it.Describe(value))
	if redrawer, ok := it.screen.(Redrawer); ok {
		redrawer.Redraw(text)
		return
	}
	it.screen.Line("%s", text)
}
