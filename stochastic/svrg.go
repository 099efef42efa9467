package stochastic

import (
	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// SVRG is stochastic variance-reduced gradient descent: it periodically
// (every SnapshotEvery iterations; when that is 0, every fn.Summands()
// iterations, which is once per epoch unless Options.EpochSize overrides
// the epoch length) takes a full
// deterministic snapshot x̃ with gradient g̃, then estimates the gradient
// at each inner x as g(x) − stoch_g(x̃) + g̃, using the same minibatch for
// both stochastic terms. Grounded on
// original_source/src/stoch/solver_stoch_svrg.cpp.
type SVRG struct {
	SnapshotEvery int

	xTilde, gTilde *mat.VecDense
	since          int
}

func (s *SVRG) Reset(dims int) {
	s.xTilde = nil
	s.gTilde = nil
	s.since = 0
}

func (s *SVRG) Step(fn objective.Stochastic, x *mat.VecDense, k int, alpha float64) *mat.VecDense {
	n := x.Len()
	every := s.SnapshotEvery
	if every <= 0 {
		every = fn.Summands()
	}

	if s.xTilde == nil || s.since >= every {
		s.xTilde = mat.VecDenseCopyOf(x)
		s.gTilde = mat.NewVecDense(n, nil)
		fn.Eval(s.xTilde, s.gTilde)
		s.since = 0
	}
	s.since++

	g := mat.NewVecDense(n, nil)
	fn.StochEval(x, g)

	gTildeStoch := mat.NewVecDense(n, nil)
	fn.StochEval(s.xTilde, gTildeStoch)

	estimate := mat.NewVecDense(n, nil)
	estimate.SubVec(g, gTildeStoch)
	estimate.AddVec(estimate, s.gTilde)

	next := mat.NewVecDense(n, nil)
	next.AddScaledVec(x, -alpha, estimate)
	return next
}
