package stochastic

import (
	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// Algorithm is one stochastic update rule. Each Step evaluates whatever
// stochastic gradients it needs against fn's *current* minibatch (the
// shared outer loop calls fn.StochNext() between iterations, never
// mid-Step) and returns the new iterate. Per-algorithm running state
// (moment estimates, momentum, averages) is kept as explicit fields on
// the Algorithm value, not captured in a closure, so that an Algorithm
// can be serialized and resumed (SPEC_FULL.md §9).
type Algorithm interface {
	// Reset (re-)initializes any running state for a parameter vector
	// of the given dimension.
	Reset(dims int)

	// Step advances x by one stochastic iteration using global
	// iteration counter k (1-based) and learning rate alpha, returning
	// the new iterate.
	Step(fn objective.Stochastic, x *mat.VecDense, k int, alpha float64) *mat.VecDense
}

// SnapshotPointer is implemented by algorithms whose deterministic
// end-of-epoch snapshot should be evaluated at a point other than the
// current iterate (SIA evaluates at its running-averaged iterate).
type SnapshotPointer interface {
	SnapshotPoint(x *mat.VecDense) *mat.VecDense
}

func infNorm(v mat.Vector) float64 {
	n := v.Len()
	max := 0.0
	for i := 0; i < n; i++ {
		a := v.AtVec(i)
		if a < 0 {
			a = -a
		}
		if a > max {
			max = a
		}
	}
	return max
}
