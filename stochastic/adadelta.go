package stochastic

import (
	"math"

	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// AdaDelta is self-tuning: it carries no external learning rate, scaling
// each coordinate by the ratio of a running average of squared steps to a
// running average of squared gradients, grounded on
// original_source/src/stoch/solver_stoch_adadelta.cpp. Step ignores the
// alpha passed by the outer loop, matching the original's constant
// step multiplier of 1.
type AdaDelta struct {
	Momentum float64
	Epsilon  float64

	gavg, davg *mat.VecDense
}

func (a *AdaDelta) Reset(dims int) {
	a.gavg = nil
	a.davg = nil
}

func (a *AdaDelta) momentum() float64 {
	if a.Momentum <= 0 {
		return 0.9
	}
	return a.Momentum
}

func (a *AdaDelta) epsilon() float64 {
	if a.Epsilon <= 0 {
		return 1e-6
	}
	return a.Epsilon
}

func (a *AdaDelta) Step(fn objective.Stochastic, x *mat.VecDense, k int, alpha float64) *mat.VecDense {
	n := x.Len()
	if a.gavg == nil {
		a.gavg = mat.NewVecDense(n, nil)
		a.davg = mat.NewVecDense(n, nil)
	}
	g := mat.NewVecDense(n, nil)
	fn.StochEval(x, g)

	beta := a.momentum()
	eps := a.epsilon()
	d := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		gi := g.AtVec(i)
		a.gavg.SetVec(i, beta*a.gavg.AtVec(i)+(1-beta)*gi*gi)
		di := -gi * (eps + math.Sqrt(a.davg.AtVec(i))) / (eps + math.Sqrt(a.gavg.AtVec(i)))
		d.SetVec(i, di)
		a.davg.SetVec(i, beta*a.davg.AtVec(i)+(1-beta)*di*di)
	}

	next := mat.NewVecDense(n, nil)
	next.AddVec(x, d)
	return next
}
