// Package session runs the calculator loop: collect three sides, compute the
// area, show the outcome and start over.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/joshyorko/heron/common"
	"github.com/joshyorko/heron/heron"
	"github.com/joshyorko/heron/pretty"
	"github.com/joshyorko/heron/wizard"
)

type OutcomeKind int

const (
	OutcomeInvalid OutcomeKind = iota
	OutcomeImpossible
	OutcomeComputed
)

func (it OutcomeKind) String() string {
	switch it {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeImpossible:
		return "impossible"
	case OutcomeComputed:
		return "computed"
	default:
		return "unknown"
	}
}

// Outcome summarizes one iteration. Side is the label of the rejected side
// for invalid outcomes.
type Outcome struct {
	Kind  OutcomeKind
	Sides heron.Sides
	Area  float64
	Side  string
}

type Options struct {
	Unit      string
	UnitName  string
	Precision int
	Pause     bool
	Banner    bool
}

func DefaultOptions() Options {
	return Options{
		Unit:      "m",
		UnitName:  "metres",
		Precision: -1,
		Pause:     true,
		Banner:    true,
	}
}

type Session struct {
	machine   *Machine
	collector *wizard.Collector
	screen    wizard.Screen
	options   Options
}

func New(source io.Reader, screen wizard.Screen, options Options) *Session {
	collector := wizard.NewCollector(source, screen)
	collector.Unit = options.Unit
	collector.Precision = options.Precision
	if !options.Pause {
		collector.Retry = "Input must be a number, try again."
	}
	return &Session{
		machine:   NewMachine(),
		collector: collector,
		screen:    screen,
		options:   options,
	}
}

// Run repeats iterations until input is closed or context is cancelled. A
// closed input ends the loop without error.
func (it *Session) Run(ctx context.Context) error {
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			common.Debug("Session stopped before round %d: %v", round, err)
			return err
		}
		outcome, err := it.Iterate()
		if errors.Is(err, io.EOF) {
			common.Debug("Input closed during round %d.", round)
			return nil
		}
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		common.Debug("Round %d ended as %s with sides %v.", round, outcome.Kind, outcome.Sides.Slice())
	}
}

// Iterate runs one full pass of the state machine, from the first side to the
// restart.
func (it *Session) Iterate() (Outcome, error) {
	it.machine.Reset()
	it.screen.Clear()
	it.banner()

	for it.machine.State().Collecting() {
		label := it.machine.Label()
		it.instruct(it.machine.State())
		value, err := it.collector.CollectSide(label)
		if errors.Is(err, wizard.ErrInvalidInput) {
			it.machine.Abandon()
			return Outcome{Kind: OutcomeInvalid, Side: label}, it.pause()
		}
		if err != nil {
			return Outcome{}, err
		}
		if err := it.machine.Record(value); err != nil {
			return Outcome{}, err
		}
	}

	it.explain()
	if err := it.pause(); err != nil {
		return Outcome{}, err
	}
	area, err := it.machine.Compute()
	if err != nil {
		return Outcome{}, err
	}
	outcome := Outcome{Kind: OutcomeComputed, Sides: it.machine.Sides(), Area: area}
	if heron.IsImpossible(area) {
		outcome.Kind = OutcomeImpossible
		it.impossible()
	} else {
		it.result(area)
	}
	if err := it.pause(); err != nil {
		return outcome, err
	}
	return outcome, it.machine.Finish()
}

func (it *Session) pause() error {
	if !it.options.Pause {
		return nil
	}
	return it.collector.Pause()
}

func (it *Session) rule(length int) string {
	limit := 0
	if limited, ok := it.screen.(widthLimited); ok {
		limit = limited.Width()
	}
	return pretty.Rule(length, limit)
}

func (it *Session) framed(color, message string) {
	rule := it.rule(len(message))
	it.screen.Line("%s", rule)
	it.screen.Line("%s%s%s", color, message, pretty.Reset)
	it.screen.Line("%s", rule)
}

func (it *Session) banner() {
	if !it.options.Banner {
		return
	}
	description := "This program uses Heron's formula to calculate the area of a triangle given the length of all 3 sides"
	it.screen.Line("%s%s%s", pretty.Bold, "Triangle Calculator", pretty.Reset)
	it.screen.Line("")
	it.screen.Line("%s", description)
	it.screen.Line("")
	it.screen.Line("%s", it.rule(len(description)))
}

func (it *Session) instruct(state State) {
	it.screen.Line("%s", Instruction(state, it.options.UnitName))
}

// Instruction is the prompt shown while collecting a side.
func Instruction(state State, unitName string) string {
	switch state {
	case CollectingA:
		return fmt.Sprintf("Please type the length of one of your triangle's sides (in %s) and press Enter.", unitName)
	case CollectingB:
		return fmt.Sprintf("Great! Now input the length (in %s) of another side.", unitName)
	case CollectingC:
		return fmt.Sprintf("Almost there! You just need to input the length of the remaining side (in %s)", unitName)
	default:
		return ""
	}
}

func (it *Session) explain() {
	unit := it.options.Unit
	it.screen.Line("Perfect! Now the program will calculate the area of a triangle using Heron's formula.")
	it.screen.Line("For reference, Heron's formula is shown below:")
	it.screen.Line("")
	it.screen.Line("     S = (a+b+c) / 2             (S is half the perimeter of the triangle (%s)", unit)
	it.screen.Line("")
	it.screen.Line("A = Sqrt( S(S-a)(S-b)(S-c) )     (A is the area of the triangle (%s^2)", unit)
	it.screen.Line("")
	it.screen.Line("Where a, b and c are the three side lengths of the triangle in %s", it.options.UnitName)
	if it.options.Pause {
		it.screen.Line("")
		it.screen.Line("Press Enter to reveal result...")
	}
}

func (it *Session) impossible() {
	message := "This is an impossible triangle, check your measurements and try again"
	if it.options.Pause {
		message += " by pressing Enter"
	}
	it.framed(pretty.Red, message+".")
}

func (it *Session) result(area float64) {
	value := wizard.FormatNumber(area, it.options.Precision)
	it.framed(pretty.Green, fmt.Sprintf("The area of your triangle is %s%s^2", value, it.options.Unit))
	if it.options.Pause {
		it.screen.Line("")
		it.screen.Line("To calculate the area of another triangle, press Enter")
	}
}
