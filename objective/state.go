package objective

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// State is the solver's working iterate: x, gradient g, descent direction
// d, step length t, plus call counters and termination status. State holds
// a borrowed, non-owning reference to its Function for the duration of a
// single optimization call; the caller is responsible for keeping the
// Function alive and must not mutate State concurrently with a solver
// driving it.
type State struct {
	X mat.VecDense
	G mat.VecDense
	D mat.VecDense
	F float64
	T float64

	Status Status

	Iterations int
	FCalls     int
	GCalls     int
}

// NewState constructs a State at x0, evaluating fn once so that, per the
// invariant g = ∇f(x) and f = f(x) hold immediately after construction.
func NewState(fn Function, x0 mat.Vector) *State {
	s := &State{}
	s.X.CloneFromVec(asVec(x0))
	s.D.ReuseAsVec(s.X.Len())
	s.G.ReuseAsVec(s.X.Len())

	s.F = fn.Eval(&s.X, &s.G)
	s.FCalls++
	s.GCalls++
	s.checkFinite()
	return s
}

func asVec(v mat.Vector) *mat.VecDense {
	if vd, ok := v.(*mat.VecDense); ok {
		return vd
	}
	n := v.Len()
	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, v.AtVec(i))
	}
	return out
}

// ConvergenceCriterion returns the scale-invariant gradient norm
// ‖g‖∞ / (1 + |f|) used by every solver family to test convergence.
func (s *State) ConvergenceCriterion() float64 {
	return infNorm(&s.G) / (1 + math.Abs(s.F))
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

// Update advances the iterate along d by step length t, refreshes f and
// g at the new point, and marks the state Diverged if either becomes
// non-finite.
func (s *State) Update(fn Function, t float64) {
	var x mat.VecDense
	x.AddScaledVec(&s.X, t, &s.D)
	s.UpdateAt(fn, &x)
	s.T = t
}

// UpdateAt refreshes the state at an explicitly supplied point, leaving T
// unchanged (callers that also advanced along d should set T themselves;
// Update does so, and the stochastic solver calls UpdateAt directly to
// evaluate its end-of-epoch snapshot point).
func (s *State) UpdateAt(fn Function, x mat.Vector) {
	s.X.CloneFromVec(asVec(x))
	s.F = fn.Eval(&s.X, &s.G)
	s.FCalls++
	s.GCalls++
	s.Iterations++
	s.checkFinite()
}

// StochUpdate behaves like Update but evaluates against the Function's
// current minibatch rather than the full objective.
func (s *State) StochUpdate(fn Stochastic, t float64) {
	var x mat.VecDense
	x.AddScaledVec(&s.X, t, &s.D)
	s.X.CloneFromVec(&x)
	s.F = fn.StochEval(&s.X, &s.G)
	s.FCalls++
	s.GCalls++
	s.Iterations++
	s.T = t
	s.checkFinite()
}

func (s *State) checkFinite() {
	if math.IsNaN(s.F) || math.IsInf(s.F, 0) {
		s.Status = Diverged
		return
	}
	n := s.G.Len()
	for i := 0; i < n; i++ {
		v := s.G.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s.Status = Diverged
			return
		}
	}
}

// Clone returns a deep copy of the state, used by line-search strategies
// that need to probe candidate points without disturbing state0.
func (s *State) Clone() *State {
	c := &State{F: s.F, T: s.T, Status: s.Status,
		Iterations: s.Iterations, FCalls: s.FCalls, GCalls: s.GCalls}
	c.X.CloneFromVec(&s.X)
	c.G.CloneFromVec(&s.G)
	c.D.CloneFromVec(&s.D)
	return c
}

// DirectionalDerivative returns g·d, the directional derivative of f
// along the current descent direction, i.e. φ′(0) for the line search.
func (s *State) DirectionalDerivative() float64 {
	return mat.Dot(&s.G, &s.D)
}
