package stochastic_test

import (
	"math/rand"
	"testing"

	"github.com/go-nanocv/nanocv/objective"
	"github.com/go-nanocv/nanocv/objective/bench"
	"github.com/go-nanocv/nanocv/stochastic"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func targets(rng *rand.Rand, m, n int) [][]float64 {
	out := make([][]float64, m)
	for j := range out {
		row := make([]float64, n)
		for i := range row {
			row[i] = rng.Float64()*2 - 1
		}
		out[j] = row
	}
	return out
}

// S4: 32D sum of squares (every target is the origin), plain SG,
// alpha0=0.01, decay=1, K=100 inner iterations per epoch (also the
// schedule's tau), 50 epochs; expect f_final < 0.01*f_initial.
func TestS4SumOfSquaresSG(t *testing.T) {
	zeros := make([][]float64, 16)
	for j := range zeros {
		zeros[j] = make([]float64, 32)
	}
	fn := &bench.StochQuadratic{Targets: zeros}

	x0 := make([]float64, 32)
	for i := range x0 {
		x0[i] = 1.0
	}
	state0 := objective.NewState(fn, mat.NewVecDense(32, x0))
	f0 := state0.F

	opts := stochastic.Options{
		LRate:     stochastic.LRate{Alpha0: 0.01, Gamma: 1.0, Tau: 100},
		Epochs:    50,
		EpochSize: 100,
		Eps:       1e-10,
	}
	out := stochastic.Solve(fn, state0, stochastic.SG{}, opts)
	require.Less(t, out.F, 0.01*f0)
}

// Property: on an easy low-dimensional convex quadratic, every algorithm
// improves substantially over the initial point from most random starts.
func TestAllAlgorithmsImproveOnConvex(t *testing.T) {
	algorithms := map[string]func() stochastic.Algorithm{
		"sg":       func() stochastic.Algorithm { return stochastic.SG{} },
		"sgm":      func() stochastic.Algorithm { return &stochastic.SGM{Beta: 0.9} },
		"ag":       func() stochastic.Algorithm { return &stochastic.AG{Variant: stochastic.AGPlain} },
		"agfr":     func() stochastic.Algorithm { return &stochastic.AG{Variant: stochastic.AGFR} },
		"aggr":     func() stochastic.Algorithm { return &stochastic.AG{Variant: stochastic.AGGR} },
		"adagrad":  func() stochastic.Algorithm { return &stochastic.AdaGrad{} },
		"adadelta": func() stochastic.Algorithm { return &stochastic.AdaDelta{} },
		"rmsprop":  func() stochastic.Algorithm { return &stochastic.RMSProp{} },
		"adam":     func() stochastic.Algorithm { return &stochastic.Adam{} },
		"svrg":     func() stochastic.Algorithm { return &stochastic.SVRG{SnapshotEvery: 20} },
		"sia":      func() stochastic.Algorithm { return &stochastic.SIA{} },
		"sga":      func() stochastic.Algorithm { return &stochastic.SGA{} },
	}

	rng := rand.New(rand.NewSource(7))
	const dims, m = 3, 8

	for name, factory := range algorithms {
		name, factory := name, factory
		t.Run(name, func(t *testing.T) {
			successes := 0
			const trials = 10
			for trial := 0; trial < trials; trial++ {
				fn := &bench.StochQuadratic{Targets: targets(rng, m, dims)}
				x0 := make([]float64, dims)
				for i := range x0 {
					x0[i] = rng.Float64()*4 - 2
				}
				state0 := objective.NewState(fn, mat.NewVecDense(dims, x0))
				f0 := state0.F

				opts := stochastic.Options{
					LRate:     stochastic.LRate{Alpha0: 0.05, Gamma: 0.5, Tau: 1},
					Epochs:    40,
					EpochSize: 20,
					Eps:       1e-12,
				}
				out := stochastic.Solve(fn, state0, factory(), opts)
				if out.Status != objective.Diverged && out.F < f0*0.5+1e-12 {
					successes++
				}
			}
			require.GreaterOrEqual(t, successes, trials*9/10,
				"%s: expected >=90%% of random starts to improve substantially", name)
		})
	}
}

func TestSIASolveDoesNotDiverge(t *testing.T) {
	fn := &bench.StochQuadratic{Targets: [][]float64{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}}}
	x0 := objective.NewState(fn, mat.NewVecDense(2, []float64{0, 0}))

	opts := stochastic.Options{
		LRate:     stochastic.LRate{Alpha0: 0.1, Gamma: 0, Tau: 1},
		Epochs:    5,
		EpochSize: 8,
		Eps:       1e-12,
	}
	out := stochastic.Solve(fn, x0, &stochastic.SIA{}, opts)
	require.False(t, out.Status == objective.Diverged)
}
