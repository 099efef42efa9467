package stochastic

import (
	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// SG is plain stochastic gradient descent: x <- x - alpha * g, where g is
// the gradient of the current minibatch at x. It carries no running
// state, grounded on original_source/src/math/stoch/sg.hpp.
type SG struct{}

func (SG) Reset(dims int) {}

func (SG) Step(fn objective.Stochastic, x *mat.VecDense, k int, alpha float64) *mat.VecDense {
	g := mat.NewVecDense(x.Len(), nil)
	fn.StochEval(x, g)

	next := mat.NewVecDense(x.Len(), nil)
	next.AddScaledVec(x, -alpha, g)
	return next
}
