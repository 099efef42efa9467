package linesearch

import (
	"math"

	"github.com/go-nanocv/nanocv/objective"
)

// Interpolation implements the Nocedal & Wright cubic-interpolation
// ("zoom") strategy, Algorithms 3.5/3.6: it first brackets an interval
// containing an acceptable point by expansion (Bracketed phase), then
// repeatedly narrows the bracket with a safeguarded cubic (falling back
// to quadratic) interpolant (Zooming phase) until a point satisfying the
// strong-Wolfe conditions is found (Accepted) or the probe budget is
// exhausted (Failed).
type Interpolation struct {
	MaxBracket int
	MaxZoom    int
	ExpandBy   float64
}

// DefaultInterpolation returns the Nocedal-Wright strategy with the
// book's typical budgets: bracket expansion up to ×4 for 32 tries, zoom
// for 32 iterations.
func DefaultInterpolation() Interpolation {
	return Interpolation{MaxBracket: 32, MaxZoom: 32, ExpandBy: 4}
}

func (s Interpolation) Search(fn objective.Function, state0 *objective.State, t0 float64,
	cond Conditions) (*objective.State, bool) {
	maxBracket := s.MaxBracket
	if maxBracket <= 0 {
		maxBracket = 32
	}
	expand := s.ExpandBy
	if expand <= 1 {
		expand = 4
	}

	phiPrime0 := phiPrime0(state0)
	fi0 := phi0(state0)

	tPrev := 0.0
	phiPrevVal := fi0
	phiPrevDeriv := phiPrime0

	t := t0
	for i := 0; i < maxBracket; i++ {
		s1, phiPrimeT := probe(fn, state0, t)

		if s1.Status == objective.Diverged || !armijo(state0, t, s1.F, cond) ||
			(i > 0 && s1.F >= phiPrevVal) {
			return zoomBracket(fn, state0, tPrev, t, phiPrevVal, phiPrevDeriv, s1.F, phiPrimeT, cond, s.zoomBudget(), true)
		}

		if curvatureStrong(state0, phiPrimeT, cond) {
			return s1, true
		}

		if phiPrimeT >= 0 {
			return zoomBracket(fn, state0, t, tPrev, s1.F, phiPrimeT, phiPrevVal, phiPrevDeriv, cond, s.zoomBudget(), true)
		}

		tPrev, phiPrevVal, phiPrevDeriv = t, s1.F, phiPrimeT
		t *= expand
	}

	last, _ := probe(fn, state0, t)
	last.Status = objective.Failed
	return last, false
}

func (s Interpolation) zoomBudget() int {
	if s.MaxZoom <= 0 {
		return 32
	}
	return s.MaxZoom
}

// zoom narrows the bracket [lo, hi] (given by step length only) using a
// safeguarded cubic/quadratic interpolant until a point satisfying the
// requested curvature test (weak for Backtrack's Wolfe variant, strong
// otherwise) is accepted, used both by Interpolation and by Backtrack's
// curvature fallback.
func zoom(fn objective.Function, state0 *objective.State, lo, hi, fi0, phiPrimeLo float64,
	cond Conditions, strong bool) (*objective.State, bool) {
	loState, _ := probe(fn, state0, lo)
	hiState, hiDeriv := probe(fn, state0, hi)
	return zoomBracket(fn, state0, lo, hi, loState.F, phiPrimeLo, hiState.F, hiDeriv, cond, 32, strong)
}

func zoomBracket(fn objective.Function, state0 *objective.State, lo, hi, floLo, dLo, fHi, dHi float64,
	cond Conditions, maxIter int, strong bool) (*objective.State, bool) {
	curvatureOK := curvatureStrong
	if !strong {
		curvatureOK = curvatureWeak
	}

	for i := 0; i < maxIter; i++ {
		t := interpolate(lo, hi, floLo, fHi, dLo, dHi)
		if !interior(lo, hi, t) {
			t = (lo + hi) / 2
		}

		s, d := probe(fn, state0, t)

		if s.Status == objective.Diverged || !armijo(state0, t, s.F, cond) || s.F >= floLo {
			hi, fHi, dHi = t, s.F, d
			continue
		}

		if curvatureOK(state0, d, cond) {
			return s, true
		}

		if d*(hi-lo) >= 0 {
			hi, fHi, dHi = lo, floLo, dLo
		}
		lo, floLo, dLo = t, s.F, d
	}

	last, _ := probe(fn, state0, lo)
	last.Status = objective.Failed
	return last, false
}

func interior(lo, hi, t float64) bool {
	a, b := lo, hi
	if a > b {
		a, b = b, a
	}
	return t > a && t < b
}

// interpolate fits a cubic through (lo, f(lo), f'(lo)) and
// (hi, f(hi), f'(hi)) and returns its minimizer, falling back to a
// quadratic (then bisection, handled by the caller via interior()) when
// the cubic is ill-conditioned.
func interpolate(lo, hi, fLo, fHi, dLo, dHi float64) float64 {
	d1 := dLo + dHi - 3*(fLo-fHi)/(lo-hi)
	inner := d1*d1 - dLo*dHi
	if inner < 0 {
		// Cubic has no real minimizer in range; fall back to quadratic
		// interpolation using lo's value and derivative.
		denom := 2 * (fHi - fLo - dLo*(hi-lo))
		if denom == 0 {
			return (lo + hi) / 2
		}
		return lo - dLo*(hi-lo)*(hi-lo)/denom
	}
	d2 := math.Sqrt(inner)
	if hi < lo {
		d2 = -d2
	}
	return hi - (hi-lo)*(dHi+d2-d1)/(dHi-dLo+2*d2)
}
