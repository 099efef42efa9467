package stochastic

import (
	"math"

	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// Adam maintains bias-corrected first and second moment running averages
// of the stochastic gradient, grounded on
// original_source/src/stoch/solver_stoch_adam.h (Kingma & Ba, 2015).
type Adam struct {
	Beta1   float64
	Beta2   float64
	Epsilon float64

	m, v *mat.VecDense
	t    int
}

func (a *Adam) Reset(dims int) {
	a.m = nil
	a.v = nil
	a.t = 0
}

func (a *Adam) beta1() float64 {
	if a.Beta1 <= 0 {
		return 0.9
	}
	return a.Beta1
}

func (a *Adam) beta2() float64 {
	if a.Beta2 <= 0 {
		return 0.999
	}
	return a.Beta2
}

func (a *Adam) epsilon() float64 {
	if a.Epsilon <= 0 {
		return 1e-6
	}
	return a.Epsilon
}

func (a *Adam) Step(fn objective.Stochastic, x *mat.VecDense, k int, alpha float64) *mat.VecDense {
	n := x.Len()
	if a.m == nil {
		a.m = mat.NewVecDense(n, nil)
		a.v = mat.NewVecDense(n, nil)
	}
	g := mat.NewVecDense(n, nil)
	fn.StochEval(x, g)

	a.t++
	b1, b2, eps := a.beta1(), a.beta2(), a.epsilon()
	bc1 := 1 - math.Pow(b1, float64(a.t))
	bc2 := 1 - math.Pow(b2, float64(a.t))

	next := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		gi := g.AtVec(i)
		mi := b1*a.m.AtVec(i) + (1-b1)*gi
		vi := b2*a.v.AtVec(i) + (1-b2)*gi*gi
		a.m.SetVec(i, mi)
		a.v.SetVec(i, vi)

		mHat := mi / bc1
		vHat := vi / bc2
		d := -mHat / (eps + math.Sqrt(vHat))
		next.SetVec(i, x.AtVec(i)+alpha*d)
	}
	return next
}
