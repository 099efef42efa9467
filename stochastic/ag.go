package stochastic

import (
	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// AGVariant selects Nesterov's accelerated gradient restart policy.
type AGVariant string

const (
	// AGPlain never restarts the momentum sequence.
	AGPlain AGVariant = "plain"
	// AGFR restarts when the function value increases between
	// consecutive auxiliary-point evaluations.
	AGFR AGVariant = "fr"
	// AGGR restarts when the new direction opposes the step just taken,
	// i.e. g·(x_new-x) > 0.
	AGGR AGVariant = "gr"
)

// AG is stochastic Nesterov accelerated gradient descent, grounded on
// original_source/src/optimize/stoch_nag.hpp, generalized with the
// function-increase (AGFR) and gradient (AGGR) restart rules of
// spec.md §4.5 (not present in the retrieved original snippet, which
// only implements the unrestarted sequence).
type AG struct {
	Variant AGVariant

	y, prevX *mat.VecDense
	k        int
	prevF    float64
	haveF    bool
}

func (a *AG) Reset(dims int) {
	a.y = nil
	a.prevX = nil
	a.k = 0
	a.haveF = false
}

func (a *AG) Step(fn objective.Stochastic, x *mat.VecDense, iter int, alpha float64) *mat.VecDense {
	n := x.Len()
	if a.y == nil {
		a.y = mat.VecDenseCopyOf(x)
		a.prevX = mat.VecDenseCopyOf(x)
	}

	g := mat.NewVecDense(n, nil)
	fy := fn.StochEval(a.y, g)

	xNew := mat.NewVecDense(n, nil)
	xNew.AddScaledVec(a.y, -alpha, g)

	restart := false
	switch a.Variant {
	case AGFR:
		restart = a.haveF && fy > a.prevF
	case AGGR:
		var diff mat.VecDense
		diff.SubVec(xNew, x)
		restart = mat.Dot(g, &diff) > 0
	}
	a.prevF = fy
	a.haveF = true

	yNew := mat.NewVecDense(n, nil)
	if restart {
		a.k = 0
		yNew.CopyVec(xNew)
	} else {
		m := float64(a.k) / float64(a.k+3)
		var diff mat.VecDense
		diff.SubVec(xNew, a.prevX)
		yNew.AddScaledVec(a.prevX, m, &diff)
		a.k++
	}

	a.prevX = mat.VecDenseCopyOf(xNew)
	a.y = yNew
	return xNew
}
