package batch_test

import (
	"math"
	"testing"

	"github.com/go-nanocv/nanocv/batch"
	"github.com/go-nanocv/nanocv/linesearch"
	"github.com/go-nanocv/nanocv/objective"
	"github.com/go-nanocv/nanocv/objective/bench"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// S1: Rosenbrock, L-BFGS, quadratic init + interpolation strategy.
func TestS1RosenbrockLBFGS(t *testing.T) {
	fn := bench.Rosenbrock{}
	x0 := objective.NewState(fn, mat.NewVecDense(2, []float64{-1.2, 1}))

	dir := &batch.LBFGS{History: 20}
	opts := batch.Options{
		Init:       linesearch.Quadratic{},
		Strategy:   linesearch.DefaultInterpolation(),
		Conditions: linesearch.Conditions{C1: 1e-4, C2: 0.9},
		Eps:        1e-6,
		MaxIters:   200,
	}

	out := batch.Solve(fn, x0, dir, opts)
	require.Equal(t, objective.Converged, out.Status)
	require.Less(t, infNorm(&out.G), 1e-5)
	require.InDelta(t, 1.0, out.X.AtVec(0), 1e-2)
	require.InDelta(t, 1.0, out.X.AtVec(1), 1e-2)
}

// S2: Sphere 8D, GD with backtracking + linear init.
func TestS2SphereGD(t *testing.T) {
	fn := bench.Sphere{N: 8}
	start := make([]float64, 8)
	for i := range start {
		start[i] = 0.7
	}
	x0 := objective.NewState(fn, mat.NewVecDense(8, start))

	dir := batch.GD{}
	opts := batch.Options{
		Init:       linesearch.Linear{},
		Strategy:   linesearch.DefaultBacktrack(),
		Conditions: linesearch.Conditions{C1: 1e-4, C2: 0.9},
		Eps:        1e-9,
		MaxIters:   200,
	}

	out := batch.Solve(fn, x0, dir, opts)
	require.Less(t, out.F, 1e-8)
}

// S3: diagonal quadratic, CGD-HS.
func TestS3DiagQuadraticCGDHS(t *testing.T) {
	fn := bench.DiagQuadratic{Diag: []float64{1, 10, 100, 1000}}
	x0 := objective.NewState(fn, mat.NewVecDense(4, []float64{1, 1, 1, 1}))

	dir := batch.CGD{Variant: batch.HS}
	opts := batch.Options{
		Init:       linesearch.Unit{},
		Strategy:   linesearch.DefaultInterpolation(),
		Conditions: linesearch.DefaultCGDConditions(),
		Eps:        1e-8,
		MaxIters:   100,
	}

	out := batch.Solve(fn, x0, dir, opts)
	require.Equal(t, objective.Converged, out.Status)
	require.LessOrEqual(t, out.Iterations, 100)
}

// Property: every CGD β-variant must not increase f(x0) on a convex
// function, per spec.md §8 invariant 2.
func TestAllCGDVariantsDecreaseOnConvex(t *testing.T) {
	variants := []batch.BetaVariant{batch.HS, batch.FR, batch.PRPP, batch.CD,
		batch.LS, batch.DY, batch.DYHS, batch.DYCD, batch.N}

	for _, v := range variants {
		v := v
		t.Run(string(v), func(t *testing.T) {
			fn := bench.Sphere{N: 4}
			x0 := objective.NewState(fn, mat.NewVecDense(4, []float64{1, -2, 3, -0.5}))
			f0 := x0.F

			opts := batch.Options{
				Init:       linesearch.Unit{},
				Strategy:   linesearch.DefaultInterpolation(),
				Conditions: linesearch.DefaultCGDConditions(),
				Eps:        1e-8,
				MaxIters:   200,
			}
			out := batch.Solve(fn, x0, batch.CGD{Variant: v}, opts)
			require.LessOrEqual(t, out.F, f0)
			require.Less(t, out.ConvergenceCriterion(), 10*objective.Eps2)
		})
	}
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
