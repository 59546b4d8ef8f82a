package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joshyorko/heron/heron"
	"github.com/joshyorko/heron/settings"
	"github.com/joshyorko/heron/wizard"

	"gopkg.in/yaml.v2"
)

const (
	outputText = `text`
	outputJson = `json`
	outputYaml = `yaml`

	resultComputed   = `computed`
	resultImpossible = `impossible`
	resultInvalid    = `invalid`
)

var (
	ErrImpossibleTriangle = errors.New("this is an impossible triangle, check your measurements")
	ErrUnknownOutput      = errors.New("unknown output format")
)

// report is one calculation in machine readable form. Area is missing when
// the triangle is impossible, since NaN is not valid JSON.
type report struct {
	Line   int         `json:"line,omitempty" yaml:"line,omitempty"`
	Sides  heron.Sides `json:"sides" yaml:"sides"`
	Unit   string      `json:"unit" yaml:"unit"`
	Result string      `json:"result" yaml:"result"`
	Area   *float64    `json:"area,omitempty" yaml:"area,omitempty"`
	Error  string      `json:"error,omitempty" yaml:"error,omitempty"`
}

func calculate(sides heron.Sides, config *settings.Settings) report {
	result := report{Sides: sides, Unit: config.Unit, Result: resultImpossible}
	area := sides.Area()
	if heron.Classify(area) == heron.Possible {
		result.Result = resultComputed
		result.Area = &area
	}
	return result
}

func invalid(err error, config *settings.Settings) report {
	return report{Unit: config.Unit, Result: resultInvalid, Error: err.Error()}
}

func parseSides(fields []string) (heron.Sides, error) {
	if len(fields) != 3 {
		return heron.Sides{}, fmt.Errorf("expected 3 sides, got %d: %w", len(fields), wizard.ErrInvalidInput)
	}
	values := [3]float64{}
	for at, label := range []string{"a", "b", "c"} {
		value, err := wizard.ParseSide(fields[at])
		var failure *wizard.InvalidInputError
		if errors.As(err, &failure) {
			failure.Label = label
		}
		if err != nil {
			return heron.Sides{}, err
		}
		values[at] = value
	}
	return heron.NewSides(values[0], values[1], values[2]), nil
}

func checkOutput(format string) error {
	switch format {
	case outputText, outputJson, outputYaml:
		return nil
	default:
		return fmt.Errorf("%w %q, use %s, %s or %s", ErrUnknownOutput, format, outputText, outputJson, outputYaml)
	}
}

func textOf(entry report, config *settings.Settings) string {
	prefix := ""
	if entry.Line > 0 {
		prefix = fmt.Sprintf("line %d: ", entry.Line)
	}
	switch entry.Result {
	case resultComputed:
		return fmt.Sprintf("%sThe area of your triangle is %s%s^2", prefix, wizard.FormatNumber(*entry.Area, config.Precision), entry.Unit)
	case resultImpossible:
		return fmt.Sprintf("%sThis is an impossible triangle, check your measurements.", prefix)
	default:
		return fmt.Sprintf("%s%s", prefix, entry.Error)
	}
}

func writeReports(out io.Writer, format string, config *settings.Settings, single bool, entries ...report) error {
	var payload interface{} = entries
	if single && len(entries) == 1 {
		payload = entries[0]
	}
	switch format {
	case outputJson:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case outputYaml:
		blob, err := yaml.Marshal(payload)
		if err != nil {
			return err
		}
		_, err = out.Write(blob)
		return err
	default:
		lines := make([]string, 0, len(entries))
		for _, entry := range entries {
			lines = append(lines, textOf(entry, config))
		}
		_, err := fmt.Fprintln(out, strings.Join(lines, "\n"))
		return err
	}
}
