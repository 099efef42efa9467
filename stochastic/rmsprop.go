package stochastic

import (
	"math"

	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// RMSProp divides the gradient by an exponentially-weighted running
// average of its squared magnitude, grounded on
// original_source/src/stoch/solver_stoch_rmsprop.h.
type RMSProp struct {
	Beta    float64
	Epsilon float64

	gavg *mat.VecDense
}

func (r *RMSProp) Reset(dims int) {
	r.gavg = nil
}

func (r *RMSProp) beta() float64 {
	if r.Beta <= 0 {
		return 0.9
	}
	return r.Beta
}

func (r *RMSProp) epsilon() float64 {
	if r.Epsilon <= 0 {
		return 1e-6
	}
	return r.Epsilon
}

func (r *RMSProp) Step(fn objective.Stochastic, x *mat.VecDense, k int, alpha float64) *mat.VecDense {
	n := x.Len()
	g := mat.NewVecDense(n, nil)
	fn.StochEval(x, g)

	if r.gavg == nil {
		r.gavg = mat.NewVecDense(n, nil)
		for i := 0; i < n; i++ {
			gi := g.AtVec(i)
			r.gavg.SetVec(i, gi*gi)
		}
	} else {
		beta := r.beta()
		for i := 0; i < n; i++ {
			gi := g.AtVec(i)
			r.gavg.SetVec(i, beta*r.gavg.AtVec(i)+(1-beta)*gi*gi)
		}
	}

	next := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		d := -g.AtVec(i) / (r.epsilon() + math.Sqrt(r.gavg.AtVec(i)))
		next.SetVec(i, x.AtVec(i)+alpha*d)
	}
	return next
}
