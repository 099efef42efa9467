package objective_test

import (
	"testing"

	"github.com/go-nanocv/nanocv/objective"
	"github.com/go-nanocv/nanocv/objective/bench"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGradAccuracy(t *testing.T) {
	cases := []struct {
		name string
		fn   objective.Function
		x    []float64
	}{
		{"rosenbrock", bench.Rosenbrock{}, []float64{-1.2, 1}},
		{"sphere", bench.Sphere{N: 4}, []float64{1, -2, 3, 0.5}},
		{"beale", bench.Beale{}, []float64{1, 1}},
		{"diagquad", bench.DiagQuadratic{Diag: []float64{1, 10, 100, 1000}},
			[]float64{1, 1, 1, 1}},
	}

	p := objective.Problem{}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p.Fn = c.fn
			x := mat.NewVecDense(len(c.x), c.x)
			acc := p.GradAccuracy(x)
			require.Less(t, acc, 10*objective.Eps2)
		})
	}
}

func TestStateInvariants(t *testing.T) {
	fn := bench.Sphere{N: 3}
	x0 := mat.NewVecDense(3, []float64{1, 2, 3})
	s := objective.NewState(fn, x0)

	require.Equal(t, fn.Eval(x0, nil), s.F)
	for i := 0; i < 3; i++ {
		require.Equal(t, 2*x0.AtVec(i), s.G.AtVec(i))
	}
}

func TestConvergenceCriterion(t *testing.T) {
	fn := bench.Sphere{N: 2}
	x0 := mat.NewVecDense(2, []float64{0, 0})
	s := objective.NewState(fn, x0)
	require.Equal(t, 0.0, s.ConvergenceCriterion())
}
