package model

import "math/rand"

// Layer is one stage of a Sequential model. Each Layer is stateful: it
// caches what it needs from its last Output call (Affine its input,
// Activation its output) so that GInput/GParam can be
// computed without recomputing the forward pass, matching the teacher's
// activation_layer_t/affine_layer_t probe-then-backward split.
type Layer interface {
	Output(params, input []float64) []float64
	GInput(params, gradOutput []float64) []float64
	GParam(params, gradOutput []float64) []float64

	PSize() int
	IDims() Dims3
	ODims() Dims3

	Random(rng *rand.Rand, params []float64)

	// Clone returns a fresh Layer with the same configuration but an
	// independent input/output cache, used to give each accumulator
	// worker its own forward-pass scratch state (SPEC_FULL.md §5).
	Clone() Layer
}
