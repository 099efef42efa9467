package stochastic

import (
	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// SGA is stochastic gradient averaging: the descent direction is the
// negative running mean of every gradient observed so far, not the
// current minibatch gradient alone. Grounded on
// original_source/src/math/stoch/sga.hpp (gavg accumulates cstate.g;
// cstate.d = -gavg.value() each iteration). Unlike SIA, the original
// takes its epoch-end snapshot directly at the resulting iterate, so SGA
// does not implement SnapshotPointer.
type SGA struct {
	gavg VecAverage
}

func (s *SGA) Reset(dims int) {
	s.gavg = VecAverage{}
}

func (s *SGA) Step(fn objective.Stochastic, x *mat.VecDense, k int, alpha float64) *mat.VecDense {
	n := x.Len()
	g := mat.NewVecDense(n, nil)
	fn.StochEval(x, g)

	d := s.gavg.Update(g)

	next := mat.NewVecDense(n, nil)
	next.AddScaledVec(x, -alpha, d)
	return next
}
