package linesearch

import "github.com/go-nanocv/nanocv/objective"

// BacktrackVariant selects which condition Backtrack enforces besides
// the Armijo sufficient-decrease test.
type BacktrackVariant string

const (
	// Armijo enforces only the sufficient-decrease condition.
	Armijo BacktrackVariant = "armijo"
	// Wolfe additionally enforces the weak curvature condition.
	Wolfe BacktrackVariant = "wolfe"
	// StrongWolfe additionally enforces the strong curvature condition.
	StrongWolfe BacktrackVariant = "strongwolfe"
)

// Backtrack starts at t0 and shrinks t ← ρ·t (ρ=0.5 by default) while the
// Armijo condition is violated. The Wolfe and StrongWolfe variants
// additionally require their curvature test once Armijo is satisfied;
// since shrinking alone cannot repair a curvature violation (the
// directional derivative only gets steeper as t shrinks towards 0),
// those variants fall through to a bracket+zoom the moment Armijo holds
// but curvature does not, reusing the same cubic-interpolation zoom as
// Interpolation.
type Backtrack struct {
	Variant BacktrackVariant
	Rho     float64
	MaxIter int
}

// DefaultBacktrack returns a plain Armijo backtracking strategy with
// ρ=0.5 and a 64-iteration probe budget.
func DefaultBacktrack() Backtrack {
	return Backtrack{Variant: Armijo, Rho: 0.5, MaxIter: 64}
}

func (b Backtrack) rho() float64 {
	if b.Rho <= 0 || b.Rho >= 1 {
		return 0.5
	}
	return b.Rho
}

func (b Backtrack) maxIter() int {
	if b.MaxIter <= 0 {
		return 64
	}
	return b.MaxIter
}

func (b Backtrack) Search(fn objective.Function, state0 *objective.State, t0 float64,
	cond Conditions) (*objective.State, bool) {
	t := t0
	rho := b.rho()

	var last *objective.State
	for i := 0; i < b.maxIter(); i++ {
		s, phiPrimeT := probe(fn, state0, t)
		last = s

		if s.Status == objective.Diverged {
			t *= rho
			continue
		}

		if !armijo(state0, t, s.F, cond) {
			t *= rho
			continue
		}

		switch b.Variant {
		case Wolfe:
			if curvatureWeak(state0, phiPrimeT, cond) {
				return s, true
			}
			return zoom(fn, state0, 0, t, phi0(state0), phiPrime0(state0), cond, false)
		case StrongWolfe:
			if curvatureStrong(state0, phiPrimeT, cond) {
				return s, true
			}
			return zoom(fn, state0, 0, t, phi0(state0), phiPrime0(state0), cond, true)
		default:
			return s, true
		}
	}

	if last != nil {
		last.Status = objective.Failed
	}
	return last, false
}
