package stochastic

import (
	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// SGM is stochastic gradient descent with classical (heavy-ball)
// momentum: v <- Beta*v + g; x <- x - alpha*v.
type SGM struct {
	Beta float64

	v *mat.VecDense
}

func (s *SGM) Reset(dims int) {
	s.v = mat.NewVecDense(dims, nil)
}

func (s *SGM) beta() float64 {
	if s.Beta <= 0 {
		return 0.9
	}
	return s.Beta
}

func (s *SGM) Step(fn objective.Stochastic, x *mat.VecDense, k int, alpha float64) *mat.VecDense {
	if s.v == nil {
		s.v = mat.NewVecDense(x.Len(), nil)
	}
	g := mat.NewVecDense(x.Len(), nil)
	fn.StochEval(x, g)

	s.v.AddScaledVec(g, s.beta(), s.v)

	next := mat.NewVecDense(x.Len(), nil)
	next.AddScaledVec(x, -alpha, s.v)
	return next
}
