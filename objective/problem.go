package objective

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Machine-epsilon-derived accuracy thresholds, named ε₀…ε₃ in the spec:
// ε₀ ≈ ε, ε₁ ≈ √ε, ε₂ ≈ ⁴√ε, ε₃ ≈ ∛ε.
var (
	Eps0 = math.Nextafter(1, 2) - 1
	Eps1 = math.Sqrt(Eps0)
	Eps2 = math.Sqrt(Eps1)
	Eps3 = math.Cbrt(Eps0)
)

// Problem wraps a Function with test-oriented diagnostics, chiefly a
// central-difference gradient check used to catch mis-implemented
// analytic gradients before they reach a solver.
type Problem struct {
	Fn Function
}

// centralDiffStep is the perturbation used for the central-difference
// gradient estimate; ⁴√ε balances truncation vs. round-off error for
// double precision, per the original's src/common/math.hpp.
const centralDiffStep = 1e-4

// CentralDifference estimates ∂f/∂x_i at x via the symmetric difference
// quotient (f(x+h·e_i) − f(x−h·e_i)) / 2h.
func (p Problem) CentralDifference(x mat.Vector, i int) float64 {
	n := x.Len()
	xp := mat.NewVecDense(n, nil)
	xm := mat.NewVecDense(n, nil)
	for j := 0; j < n; j++ {
		xp.SetVec(j, x.AtVec(j))
		xm.SetVec(j, x.AtVec(j))
	}
	h := centralDiffStep
	xp.SetVec(i, xp.AtVec(i)+h)
	xm.SetVec(i, xm.AtVec(i)-h)

	fp := p.Fn.Eval(xp, nil)
	fm := p.Fn.Eval(xm, nil)
	return (fp - fm) / (2 * h)
}

// GradAccuracy returns max_i |CentralDifference(x, i) − ∇f(x)_i|, the
// worst-case discrepancy between the analytic and numerical gradient.
// Tests compare this against 10·ε₂ per spec.md §8 invariant 1.
func (p Problem) GradAccuracy(x mat.Vector) float64 {
	n := x.Len()
	g := mat.NewVecDense(n, nil)
	p.Fn.Eval(x, g)

	diffs := make([]float64, n)
	for i := 0; i < n; i++ {
		diffs[i] = math.Abs(p.CentralDifference(x, i) - g.AtVec(i))
	}
	return diffs[floats.MaxIdx(diffs)]
}
