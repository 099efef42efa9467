// Package linesearch implements the line-search subsystem that powers
// the batch solver family: step-length initialization strategies
// (unit/linear/quadratic/CG-Descent) and acceptance strategies
// (backtracking/Armijo, Wolfe, strong-Wolfe via cubic interpolation, and
// Hager-Zhang). The Phase constants ({Expanding, Bracketed, Zooming,
// Accepted, Failed}) name the stages of a search; the strategies
// themselves are written as bounded loops that hand off to shared zoom
// helpers and do not record a Phase value. Hager-Zhang expands once and
// then only shrinks its bracket; it does not re-enter expansion.
package linesearch

import (
	"math"

	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// Phase names the state of a Strategy's internal search.
type Phase int

const (
	Expanding Phase = iota
	Bracketed
	Zooming
	Accepted
	Failed
)

// Conditions bundles the Armijo/curvature parameters shared by every
// strategy. Defaults: c1=1e-4, c2=0.1 for CGD, c2=0.9 for L-BFGS/GD.
type Conditions struct {
	C1 float64
	C2 float64
}

// DefaultConditions returns the conditions used by quasi-Newton solvers
// (L-BFGS, GD): c1=1e-4, c2=0.9.
func DefaultConditions() Conditions { return Conditions{C1: 1e-4, C2: 0.9} }

// DefaultCGDConditions returns the conditions used by CGD: c1=1e-4,
// c2=0.1 (a tighter curvature requirement suits the shorter CGD memory).
func DefaultCGDConditions() Conditions { return Conditions{C1: 1e-4, C2: 0.1} }

// Strategy advances a candidate state from state0 at step t0 to a point
// satisfying the strategy's declared sufficient-decrease/curvature
// conditions, or reports failure. On failure the caller falls back to
// steepest descent at the same iterate per spec.md §7.
type Strategy interface {
	Search(fn objective.Function, state0 *objective.State, t0 float64,
		cond Conditions) (*objective.State, bool)
}

// probe evaluates fn at state0.X + t*state0.D without mutating state0,
// returning a fresh State plus φ(t) and φ′(t) = g(x+td)·d.
func probe(fn objective.Function, state0 *objective.State, t float64) (*objective.State, float64) {
	s := state0.Clone()
	s.D.CloneFromVec(&state0.D)
	s.Update(fn, t)
	return s, s.DirectionalDerivative()
}

func phi0(state0 *objective.State) float64 {
	return state0.F
}

func phiPrime0(state0 *objective.State) float64 {
	return state0.DirectionalDerivative()
}

// armijo reports whether t satisfies the sufficient-decrease condition
// φ(t) ≤ φ(0) + c1·t·φ′(0).
func armijo(state0 *objective.State, t, ft float64, cond Conditions) bool {
	return ft <= phi0(state0)+cond.C1*t*phiPrime0(state0)
}

// curvatureWeak reports the (weak) Wolfe curvature condition
// φ′(t) ≥ c2·φ′(0).
func curvatureWeak(state0 *objective.State, phiPrimeT float64, cond Conditions) bool {
	return phiPrimeT >= cond.C2*phiPrime0(state0)
}

// curvatureStrong reports the strong-Wolfe curvature condition
// |φ′(t)| ≤ c2·|φ′(0)|.
func curvatureStrong(state0 *objective.State, phiPrimeT float64, cond Conditions) bool {
	return math.Abs(phiPrimeT) <= cond.C2*math.Abs(phiPrime0(state0))
}

func infNorm(v mat.Vector) float64 {
	n := v.Len()
	max := 0.0
	for i := 0; i < n; i++ {
		a := math.Abs(v.AtVec(i))
		if a > max {
			max = a
		}
	}
	return max
}
