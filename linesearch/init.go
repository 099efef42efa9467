package linesearch

import (
	"math"

	"github.com/go-nanocv/nanocv/objective"
)

// InitType names a step-length initialization strategy.
type InitType string

const (
	InitUnit      InitType = "unit"
	InitLinear    InitType = "linear"
	InitQuadratic InitType = "quadratic"
	InitCGDescent InitType = "cgdescent"
)

// Init produces the initial step length t0 handed to a Strategy at the
// start of outer iteration k. prev is nil at k=0.
type Init interface {
	Type() InitType
	T0(fn objective.Function, k int, prevT float64, prev, curr *objective.State) float64
}

// Unit always returns 1.
type Unit struct{}

func (Unit) Type() InitType { return InitUnit }
func (Unit) T0(objective.Function, int, float64, *objective.State, *objective.State) float64 {
	return 1
}

// Linear rescales the previous step by the ratio of directional
// derivatives: t0 = t_prev · (d_prev·g_prev) / (d·g). Returns 1 at k=0.
type Linear struct{}

func (Linear) Type() InitType { return InitLinear }
func (Linear) T0(fn objective.Function, k int, prevT float64, prev, curr *objective.State) float64 {
	if k == 0 || prev == nil {
		return 1
	}
	denom := curr.DirectionalDerivative()
	if denom == 0 {
		return 1
	}
	return prevT * prev.DirectionalDerivative() / denom
}

// Quadratic returns the minimizer of a one-dimensional quadratic
// interpolant through the previous two function values:
// t0 = 1.01 · 2·(f − f_prev) / (d·g). Returns 1 at k=0.
type Quadratic struct{}

func (Quadratic) Type() InitType { return InitQuadratic }
func (Quadratic) T0(fn objective.Function, k int, prevT float64, prev, curr *objective.State) float64 {
	if k == 0 || prev == nil {
		return 1
	}
	denom := curr.DirectionalDerivative()
	if denom == 0 {
		return 1
	}
	return 1.01 * 2 * (curr.F - prev.F) / denom
}

// CGDescent is the CG-Descent initializer: at k=0 a scale based on
// ‖x‖∞ and ‖g‖∞; thereafter it probes at φ1·t_prev and returns either
// the quadratic interpolant through that probe (if convex and
// improving) or φ2·t_prev. Constants per the original nanocv
// (src/solvers/lsearch_init.cpp): φ0=0.01, φ1=0.1, φ2=2.
type CGDescent struct {
	Phi0, Phi1, Phi2 float64
}

// DefaultCGDescent returns the CG-Descent initializer with the
// original's constants.
func DefaultCGDescent() CGDescent { return CGDescent{Phi0: 0.01, Phi1: 0.1, Phi2: 2} }

func (CGDescent) Type() InitType { return InitCGDescent }

func (c CGDescent) T0(fn objective.Function, k int, prevT float64, prev, curr *objective.State) float64 {
	phi0, phi1, phi2 := nz(c.Phi0, 0.01), nz(c.Phi1, 0.1), nz(c.Phi2, 2)

	if k == 0 || prev == nil {
		xnorm := infNorm(&curr.X)
		gnorm := infNorm(&curr.G)
		if gnorm == 0 {
			return 1
		}
		if xnorm > 0 {
			return phi0 * xnorm / gnorm
		}
		if curr.F != 0 {
			return phi0 * math.Abs(curr.F) / (gnorm * gnorm)
		}
		return 1
	}

	tProbe := phi1 * prevT
	if tProbe <= 0 {
		tProbe = prevT
	}
	probe, _ := probe(fn, curr, tProbe)

	phiPrime0 := curr.DirectionalDerivative()
	denom := 2 * (probe.F - curr.F - tProbe*phiPrime0)
	if denom > 0 {
		tQ := -phiPrime0 * tProbe * tProbe / denom
		if tQ > 0 && probe.F <= curr.F {
			return tQ
		}
	}
	return phi2 * prevT
}

func nz(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
