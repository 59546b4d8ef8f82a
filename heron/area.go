// Package heron computes triangle areas from side lengths alone.
//
// Given three sides a, b and c, Heron's formula first takes half of the
// perimeter
//
//	s = (a + b + c) / 2
//
// and then the area
//
//	A = sqrt( s(s-a)(s-b)(s-c) )
//
// Area is total: sides which do not close into a triangle produce NaN (a
// negative radicand) or zero, and it is up to the caller to Classify the
// result.
package heron

import "math"

// Classification tells whether a computed area describes a real triangle.
type Classification int

const (
	Possible Classification = iota
	Impossible
)

func (it Classification) String() string {
	switch it {
	case Possible:
		return "possible"
	case Impossible:
		return "impossible"
	default:
		return "unknown"
	}
}

// Sides is an ordered triple of side lengths.
type Sides struct {
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
	C float64 `json:"c" yaml:"c"`
}

func NewSides(a, b, c float64) Sides {
	return Sides{A: a, B: b, C: c}
}

func (it Sides) Perimeter() float64 {
	return it.A + it.B + it.C
}

func (it Sides) Semiperimeter() float64 {
	return it.Perimeter() / 2
}

func (it Sides) Area() float64 {
	return Area(it.A, it.B, it.C)
}

func (it Sides) Slice() []float64 {
	return []float64{it.A, it.B, it.C}
}

func Semiperimeter(a, b, c float64) float64 {
	return (a + b + c) / 2
}

// Area returns the area enclosed by sides a, b and c.
func Area(a, b, c float64) float64 {
	s := Semiperimeter(a, b, c)
	return math.Sqrt(s * ((s - a) * (s - b) * (s - c)))
}

// Classify reports non-finite and zero areas as impossible. Degenerate
// (collinear) triangles have zero area and are therefore impossible too.
func Classify(area float64) Classification {
	if IsImpossible(area) {
		return Impossible
	}
	return Possible
}

func IsImpossible(area float64) bool {
	return math.IsNaN(area) || math.IsInf(area, 0) || area == 0
}
