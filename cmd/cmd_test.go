package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/joshyorko/heron/common"
	"github.com/joshyorko/heron/hamlet"
	"github.com/joshyorko/heron/wizard"
	"gopkg.in/yaml.v2"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(common.HERON_HOME_VARIABLE, t.TempDir())
	t.Setenv(common.HERON_PRODUCT_NAME, "")

	areaOutput = outputText
	batchOutput = outputText
	plainFlag = false
	noPauseFlag = false
	configFile = ""
	rootCmd.PersistentFlags().Set("unit", "m")
	rootCmd.PersistentFlags().Set("precision", "-1")

	out := &bytes.Buffer{}
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAreaCommandComputes(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	out, err := execute(t, "", "area", "3", "4", "5")
	must_be.Nil(err)
	must_be.Equal("The area of your triangle is 6m^2\n", out)
}

func TestAreaCommandReportsImpossible(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	out, err := execute(t, "", "area", "2", "2", "4")
	must_be.ErrorIs(err, ErrImpossibleTriangle)
	must_be.Contains(out, "This is an impossible triangle")
}

func TestAreaCommandRejectsText(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	out, err := execute(t, "", "area", "3", "x", "5")
	must_be.ErrorIs(err, wizard.ErrInvalidInput)
	must_be.Contains(err.Error(), "side b")
	must_be.Equal("", out)
}

func TestAreaCommandStructuredOutput(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	out, err := execute(t, "", "area", "3", "4", "5", "--output", "json", "--precision", "2", "--unit", "cm")
	must_be.Nil(err)
	decoded := report{}
	must_be.Nil(json.Unmarshal([]byte(out), &decoded))
	must_be.Equal(resultComputed, decoded.Result)
	must_be.Equal("cm", decoded.Unit)
	wont_be.Nil(decoded.Area)
	must_be.Near(6.0, *decoded.Area, 1e-9)

	out, err = execute(t, "", "area", "1", "1", "5", "--output", "yaml")
	must_be.ErrorIs(err, ErrImpossibleTriangle)
	decoded = report{}
	must_be.Nil(yaml.Unmarshal([]byte(out), &decoded))
	must_be.Equal(resultImpossible, decoded.Result)
	must_be.Equal("m", decoded.Unit)
	must_be.Nil(decoded.Area)
	must_be.Equal(5.0, decoded.Sides.C)
}

func TestAreaCommandRejectsUnknownOutput(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	_, err := execute(t, "", "area", "3", "4", "5", "--output", "xml")
	must_be.ErrorIs(err, ErrUnknownOutput)
}

func TestBatchCommandKeepsGoing(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	input := strings.Join([]string{
		"# sides of some triangles",
		"3 4 5",
		"",
		"'1' 1 5",
		"2 2 4",
		"a b c",
		"1 2",
		"\"3 4 5",
	}, "\n")
	logs := &bytes.Buffer{}
	restore := common.SetLogOutput(logs)
	defer restore()

	out, err := execute(t, input, "batch")
	must_be.Nil(err)
	common.WaitLogs()
	must_be.Contains(logs.String(), "Warning: line 6 skipped: side a")
	must_be.Contains(logs.String(), "Warning: line 7 skipped: expected 3 sides")
	must_be.Contains(logs.String(), "OK.")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	must_be.Equal(6, len(lines))
	must_be.Equal("line 2: The area of your triangle is 6m^2", lines[0])
	must_be.Equal("line 4: This is an impossible triangle, check your measurements.", lines[1])
	must_be.Equal("line 5: This is an impossible triangle, check your measurements.", lines[2])
	must_be.Contains(lines[3], "line 6: side a")
	must_be.Contains(lines[4], "expected 3 sides, got 2")
	must_be.Contains(lines[5], "line 8: ")
}

func TestBatchCommandJson(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	out, err := execute(t, "3 4 5\nx 1 1\n", "batch", "-o", "json")
	must_be.Nil(err)
	decoded := []report{}
	must_be.Nil(json.Unmarshal([]byte(out), &decoded))
	must_be.Equal(2, len(decoded))
	must_be.Equal(resultComputed, decoded[0].Result)
	must_be.Equal(1, decoded[0].Line)
	must_be.Equal(resultInvalid, decoded[1].Result)
	must_be.Equal(2, decoded[1].Line)
	must_be.Contains(decoded[1].Error, "input must be a number")
}

func TestRunCommandLoopsUntilInputEnds(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	out, err := execute(t, "3\n4\n5\n\n\n5\nx\n\n", "run", "--plain")
	must_be.Nil(err)
	must_be.Contains(out, "The area of your triangle is 6m^2")
	must_be.Contains(out, "Input must be a number, press Enter to try again.")
	must_be.Equal(3, strings.Count(out, "Triangle Calculator"))
	wont_be.Contains(out, "\x1b[")
}

func TestRootCommandRunsLoop(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	out, err := execute(t, "3\n4\n5\n", "--plain", "--no-pause")
	must_be.Nil(err)
	must_be.Contains(out, "The area of your triangle is 6m^2")
	wont_be.Contains(out, "Press Enter to reveal result")
	wont_be.Contains(out, "another triangle, press Enter")
}

func TestUnitFlagReachesPrompts(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	out, err := execute(t, "3\n4\n5\n", "--plain", "--no-pause", "--unit", "cm")
	must_be.Nil(err)
	must_be.Contains(out, "Please type the length of one of your triangle's sides (in cm)")
	must_be.Contains(out, "Side a = 3cm")
	must_be.Contains(out, "three side lengths of the triangle in cm")
	must_be.Contains(out, "The area of your triangle is 6cm^2")
	wont_be.Contains(out, "metres")
}

func TestVersionCommand(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	out, err := execute(t, "", "version")
	must_be.Nil(err)
	must_be.Equal("Heron "+common.Version+"\n", out)
}
