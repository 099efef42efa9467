package linesearch

import (
	"math"

	"github.com/go-nanocv/nanocv/objective"
)

// HagerZhang implements the CG-Descent line search: bracket by
// expansion until φ′(t) ≥ 0 or φ(t) exceeds φ(0) by more than
// ε·|φ(0)|, then shrink the bracket with secant² updates, accepting a
// point only when it satisfies the approximate Wolfe conditions
// (2c1−1 ≤ φ′(t)/φ′(0) ≤ c2) and φ(t) ≤ φ(0) + ε·|φ(0)| both hold. The
// standard Wolfe conditions are not tested as a separate acceptance rule.
type HagerZhang struct {
	Eps        float64 // ε, default 1e-6
	Theta      float64 // secant bisection weight, default 0.5
	MaxExpand  int
	MaxShrink  int
}

// DefaultHagerZhang returns the standard CG-Descent configuration.
func DefaultHagerZhang() HagerZhang {
	return HagerZhang{Eps: 1e-6, Theta: 0.5, MaxExpand: 32, MaxShrink: 64}
}

func (h HagerZhang) eps() float64 {
	if h.Eps <= 0 {
		return 1e-6
	}
	return h.Eps
}

func (h HagerZhang) theta() float64 {
	if h.Theta <= 0 || h.Theta >= 1 {
		return 0.5
	}
	return h.Theta
}

// approxWolfe reports whether t satisfies the approximate Wolfe
// acceptance criterion used by CG-Descent in place of the exact
// sufficient-decrease test (which is numerically fragile near the
// minimizer for nearly-quadratic objectives).
func (h HagerZhang) approxWolfe(state0 *objective.State, ft, phiPrimeT float64, cond Conditions) bool {
	fi0 := phi0(state0)
	phiPrime0 := phiPrime0(state0)
	eps := h.eps() * math.Abs(fi0)

	relaxedArmijo := (2*cond.C1-1)*phiPrime0 >= phiPrimeT
	curvature := phiPrimeT >= cond.C2*phiPrime0
	nearFlat := ft <= fi0+eps

	return nearFlat && relaxedArmijo && curvature
}

func (h HagerZhang) Search(fn objective.Function, state0 *objective.State, t0 float64,
	cond Conditions) (*objective.State, bool) {
	maxExpand := h.MaxExpand
	if maxExpand <= 0 {
		maxExpand = 32
	}
	maxShrink := h.MaxShrink
	if maxShrink <= 0 {
		maxShrink = 64
	}
	fi0 := phi0(state0)
	eps := h.eps() * math.Abs(fi0)

	lo, loF, loD := 0.0, fi0, phiPrime0(state0)
	t := t0
	var hi float64
	var hiF, hiD float64
	bracketed := false

	for i := 0; i < maxExpand; i++ {
		s, d := probe(fn, state0, t)

		if h.approxWolfe(state0, s.F, d, cond) {
			return s, true
		}

		if d >= 0 {
			hi, hiF, hiD = t, s.F, d
			bracketed = true
			break
		}
		if s.F > fi0+eps {
			// Overshot: bisect towards the last good point instead of
			// expanding further.
			hi, hiF, hiD = t, s.F, d
			bracketed = true
			break
		}

		lo, loF, loD = t, s.F, d
		t *= 2
	}

	if !bracketed {
		last, _ := probe(fn, state0, t)
		last.Status = objective.Failed
		return last, false
	}

	theta := h.theta()
	for i := 0; i < maxShrink; i++ {
		t := secant(lo, hi, loD, hiD)
		if !interior(lo, hi, t) {
			t = theta*lo + (1-theta)*hi
		}

		s, d := probe(fn, state0, t)

		if h.approxWolfe(state0, s.F, d, cond) {
			return s, true
		}

		if d >= 0 {
			hi, hiF, hiD = t, s.F, d
			continue
		}
		if s.F <= fi0+eps {
			lo, loF, loD = t, s.F, d
		} else {
			hi, hiF, hiD = t, s.F, d
		}
	}

	last, _ := probe(fn, state0, lo)
	last.Status = objective.Failed
	_ = loF
	_ = hiF
	return last, false
}

// secant returns the zero of the secant line through (lo, loD) and
// (hi, hiD), the standard bracket-shrinking update for Hager-Zhang.
func secant(lo, hi, loD, hiD float64) float64 {
	if hiD == loD {
		return (lo + hi) / 2
	}
	return (lo*hiD - hi*loD) / (hiD - loD)
}
