package stochastic

import (
	"math"

	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// AdaGrad accumulates the elementwise sum of squared gradients and scales
// each coordinate's step inversely to its accumulated magnitude, grounded
// on original_source/src/stoch/solver_stoch_adagrad.cpp.
type AdaGrad struct {
	Epsilon float64

	gsum2 *mat.VecDense
}

func (a *AdaGrad) Reset(dims int) {
	a.gsum2 = mat.NewVecDense(dims, nil)
}

func (a *AdaGrad) epsilon() float64 {
	if a.Epsilon <= 0 {
		return 1e-6
	}
	return a.Epsilon
}

func (a *AdaGrad) Step(fn objective.Stochastic, x *mat.VecDense, k int, alpha float64) *mat.VecDense {
	n := x.Len()
	if a.gsum2 == nil {
		a.gsum2 = mat.NewVecDense(n, nil)
	}
	g := mat.NewVecDense(n, nil)
	fn.StochEval(x, g)

	next := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		gi := g.AtVec(i)
		s2 := a.gsum2.AtVec(i) + gi*gi
		a.gsum2.SetVec(i, s2)
		d := -gi / (a.epsilon() + math.Sqrt(s2))
		next.SetVec(i, x.AtVec(i)+alpha*d)
	}
	return next
}
