package session

import (
	"errors"
	"fmt"

	"github.com/joshyorko/heron/heron"
)

// State of one calculation.
type State int

const (
	CollectingA State = iota
	CollectingB
	CollectingC
	Computing
	Displaying
	Restart
)

var (
	ErrWrongState = errors.New("operation not allowed in current state")

	labels = [...]string{"a", "b", "c"}
)

func (it State) String() string {
	switch it {
	case CollectingA:
		return "collecting side a"
	case CollectingB:
		return "collecting side b"
	case CollectingC:
		return "collecting side c"
	case Computing:
		return "computing"
	case Displaying:
		return "displaying"
	case Restart:
		return "restart"
	default:
		return fmt.Sprintf("state(%d)", int(it))
	}
}

func (it State) Collecting() bool {
	return it >= CollectingA && it <= CollectingC
}

// Machine tracks which side is expected next and guarantees that area is
// only computed from three accepted sides of the same iteration.
type Machine struct {
	state State
	sides [3]float64
	area  float64
}

func NewMachine() *Machine {
	return &Machine{state: CollectingA}
}

func (it *Machine) State() State {
	return it.state
}

// Label names the side being collected, or is empty when not collecting.
func (it *Machine) Label() string {
	if !it.state.Collecting() {
		return ""
	}
	return labels[it.state]
}

func (it *Machine) Record(value float64) error {
	if !it.state.Collecting() {
		return fmt.Errorf("record side in %s: %w", it.state, ErrWrongState)
	}
	it.sides[it.state] = value
	it.state += 1
	return nil
}

// Abandon drops all collected sides and marks the iteration for restart.
func (it *Machine) Abandon() {
	it.sides = [3]float64{}
	it.state = Restart
}

func (it *Machine) Sides() heron.Sides {
	return heron.NewSides(it.sides[0], it.sides[1], it.sides[2])
}

func (it *Machine) Compute() (float64, error) {
	if it.state != Computing {
		return 0, fmt.Errorf("compute area in %s: %w", it.state, ErrWrongState)
	}
	it.area = it.Sides().Area()
	it.state = Displaying
	return it.area, nil
}

func (it *Machine) Area() float64 {
	return it.area
}

func (it *Machine) Finish() error {
	if it.state != Displaying {
		return fmt.Errorf("finish in %s: %w", it.state, ErrWrongState)
	}
	it.state = Restart
	return nil
}

func (it *Machine) Reset() {
	it.sides = [3]float64{}
	it.area = 0
	it.state = CollectingA
}
