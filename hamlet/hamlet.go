// Package hamlet gives tests a "to be, or not to be" vocabulary: every
// expectation comes as a pair, one which must hold and one which must not.
package hamlet

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type Hamlet struct {
	t        testing.TB
	positive bool
}

// Specifications returns the must_be and wont_be halves for given test.
func Specifications(t testing.TB) (Hamlet, Hamlet) {
	return Hamlet{t: t, positive: true}, Hamlet{t: t, positive: false}
}

func (it Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	if it.positive {
		require.Equal(it.t, expected, actual)
	} else {
		require.NotEqual(it.t, expected, actual)
	}
}

func (it Hamlet) Text(expected string, actual interface{}) {
	it.t.Helper()
	it.Equal(expected, fmt.Sprintf("%v", actual))
}

func (it Hamlet) Nil(actual interface{}) {
	it.t.Helper()
	if it.positive {
		require.Nil(it.t, actual)
	} else {
		require.NotNil(it.t, actual)
	}
}

func (it Hamlet) True(actual bool) {
	it.t.Helper()
	if it.positive {
		require.True(it.t, actual)
	} else {
		require.False(it.t, actual)
	}
}

func (it Hamlet) Contains(container, element interface{}) {
	it.t.Helper()
	if it.positive {
		require.Contains(it.t, container, element)
	} else {
		require.NotContains(it.t, container, element)
	}
}

func (it Hamlet) ErrorIs(err, target error) {
	it.t.Helper()
	if it.positive {
		require.ErrorIs(it.t, err, target)
	} else {
		require.NotErrorIs(it.t, err, target)
	}
}

// Near compares floats with relative tolerance.
func (it Hamlet) Near(expected, actual, epsilon float64) {
	it.t.Helper()
	scale := math.Max(math.Abs(expected), 1)
	near := math.Abs(expected-actual) <= epsilon*scale
	if near != it.positive {
		require.Failf(it.t, "unexpected closeness", "expected %v near %v within %v to be %v", actual, expected, epsilon, it.positive)
	}
}

func (it Hamlet) Panic(todo func()) {
	it.t.Helper()
	if it.positive {
		require.Panics(it.t, todo)
	} else {
		require.NotPanics(it.t, todo)
	}
}
