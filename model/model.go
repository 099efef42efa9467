// Package model implements the hand-rolled-gradient feed-forward model
// contract of SPEC_FULL.md §6 (no autodiff beyond per-layer derivatives),
// grounded on original_source/src/model.h and src/layers/{layer_affine,
// layer_activation}.h, replacing the teacher's gorgonia-graph network/
// package.
package model

import "math/rand"

// Dims3 is a (maps, rows, cols) tensor shape, matching spec.md §6's
// idims()/odims() 3-tuple.
type Dims3 struct {
	Maps, Rows, Cols int
}

// Size returns the flattened element count of the shape.
func (d Dims3) Size() int { return d.Maps * d.Rows * d.Cols }

// Model is a differentiable feed-forward function of a flat parameter
// vector and an input batch of IDims()-shaped samples, producing an
// output batch of ODims()-shaped samples.
type Model interface {
	// Params returns a copy of the current flat parameter vector.
	Params() []float64
	// SetParams overwrites the parameter vector; len(v) must equal PSize().
	SetParams(v []float64)
	// Random reinitializes parameters using the model's configured
	// per-layer initialization strategies.
	Random(rng *rand.Rand)

	// Output evaluates the model on a single IDims()-shaped input,
	// returning an ODims()-shaped output.
	Output(input []float64) []float64
	// GParam returns the parameter gradient for the last Output call,
	// given the gradient of the loss w.r.t. that call's output.
	GParam(gradOutput []float64) []float64
	// GInput returns the input gradient for the last Output call, given
	// the gradient of the loss w.r.t. that call's output.
	GInput(gradOutput []float64) []float64

	PSize() int
	IDims() Dims3
	ODims() Dims3

	// Clone returns a fresh Model with the same configuration and
	// current parameter values but independent forward-pass scratch
	// state, used to give each accumulator worker its own copy.
	Clone() Model
}
