package stochastic

import (
	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// SIA is stochastic iterate averaging: each step is plain SG, but the
// epoch-end snapshot is evaluated at the running mean of all visited
// iterates rather than at the current x, grounded on
// original_source/src/math/stoch/sia.hpp (xavg accumulates cx every
// inner iteration; the epoch callback evaluates at xavg.value()).
type SIA struct {
	xavg VecAverage
}

func (s *SIA) Reset(dims int) {
	s.xavg = VecAverage{}
}

func (s *SIA) Step(fn objective.Stochastic, x *mat.VecDense, k int, alpha float64) *mat.VecDense {
	n := x.Len()
	g := mat.NewVecDense(n, nil)
	fn.StochEval(x, g)

	next := mat.NewVecDense(n, nil)
	next.AddScaledVec(x, -alpha, g)

	s.xavg.Update(next)
	return next
}

// SnapshotPoint returns the running average of visited iterates instead
// of the current iterate x.
func (s *SIA) SnapshotPoint(x *mat.VecDense) *mat.VecDense {
	return s.xavg.Value
}
