// Package tuner implements the hyper-parameter search utility of
// spec.md §4.6: a ParameterSpace of named axes, grid generation, and
// greedy local refinement around the best-scored trial. Grounded on
// original_source/src/tuner.h.
package tuner

import "math"

// AxisKind names how an Axis's [Min, Max] (or Values) should be sampled.
type AxisKind int

const (
	// Linear samples evenly between Min and Max.
	Linear AxisKind = iota
	// Base10 samples evenly in log10-space between Min and Max.
	Base10
	// Finite samples from the fixed Values list.
	Finite
)

// Axis is one named hyper-parameter dimension.
type Axis struct {
	Name   string
	Min    float64
	Max    float64
	Values []float64
	Kind   AxisKind
}

// LinearAxis adds an axis sampled evenly between min and max.
func LinearAxis(name string, min, max float64) Axis {
	return Axis{Name: name, Min: min, Max: max, Kind: Linear}
}

// Base10Axis adds an axis sampled evenly in log10-space between min and
// max (both given as the exponents, e.g. Base10Axis("alpha0", -3, 0)
// spans 1e-3..1e0).
func Base10Axis(name string, min, max float64) Axis {
	return Axis{Name: name, Min: min, Max: max, Kind: Base10}
}

// FiniteAxis adds an axis enumerating a fixed value list.
func FiniteAxis(name string, values ...float64) Axis {
	return Axis{Name: name, Values: values, Kind: Finite}
}

// grid returns n evenly-spaced samples covering the axis's current span.
func (a Axis) grid(n int) []float64 {
	if a.Kind == Finite {
		return append([]float64(nil), a.Values...)
	}
	if n < 2 {
		n = 2
	}
	lo, hi := a.Min, a.Max
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		v := lo + t*(hi-lo)
		if a.Kind == Base10 {
			v = math.Pow(10, v)
		}
		out[i] = v
	}
	return out
}

// narrowed returns a copy of the axis with its span halved around
// center (a sampled value; for Base10 axes its exponent is used),
// clamped to the original bounds. Finite axes are unaffected:
// refinement has no notion of "span" for an enumeration.
func (a Axis) narrowed(center float64) Axis {
	if a.Kind == Finite {
		return a
	}
	if a.Kind == Base10 {
		center = math.Log10(center)
	}
	half := (a.Max - a.Min) / 4
	lo, hi := center-half, center+half
	if lo < a.Min {
		lo = a.Min
	}
	if hi > a.Max {
		hi = a.Max
	}
	n := a
	n.Min, n.Max = lo, hi
	return n
}

// ParameterSpace is the ordered list of Axes a Tuner searches over.
type ParameterSpace struct {
	Axes []Axis
}
