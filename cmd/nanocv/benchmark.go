package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-nanocv/nanocv/batch"
	"github.com/go-nanocv/nanocv/linesearch"
	"github.com/go-nanocv/nanocv/objective"
	"github.com/go-nanocv/nanocv/objective/bench"
	"github.com/go-nanocv/nanocv/stochastic"
	"github.com/go-nanocv/nanocv/utils/progressbar"
	"github.com/pkg/errors"
)

var benchmarkFunctions = map[string]func() objective.Function{
	"rosenbrock": func() objective.Function { return bench.Rosenbrock{} },
	"sphere":     func() objective.Function { return bench.Sphere{N: 32} },
	"beale":      func() objective.Function { return bench.Beale{} },
}

// runBenchmarkBatch drives every batch solver family (GD, CGD, L-BFGS)
// against a named synthetic objective and reports final value and wall
// time, mirroring the original's ncv_benchmark_optimizers.cpp sweep.
func runBenchmarkBatch(name string) error {
	fn, ok := benchmarkFunctions[name]
	if !ok {
		return errors.Errorf("benchmark_batch: invalid_config: unknown function %q", name)
	}

	type entry struct {
		label string
		dir   batch.Direction
	}
	dirs := []entry{
		{"gd", batch.GD{}},
		{"cgd", batch.CGD{}},
		{"lbfgs", &batch.LBFGS{History: 8}},
	}
	opts := batch.Options{
		Init:       linesearch.Unit{},
		Strategy:   linesearch.DefaultBacktrack(),
		Conditions: linesearch.DefaultConditions(),
		MaxIters:   500,
	}

	bar := progressbar.NewProgressBar(40, len(dirs), 100*time.Millisecond, true)
	bar.Display()
	for _, e := range dirs {
		f := fn()
		x0 := initialPoint(f.Size())
		state := objective.NewState(f, vecOf(x0))

		start := time.Now()
		final := batch.Solve(f, state, e.dir, opts)
		fmt.Printf("%-8s %-8s f=%.6g status=%s time=%s\n", name, e.label, final.F, final.Status, time.Since(start))
		bar.Increment()
	}
	bar.Close()
	return nil
}

// runBenchmarkStoch drives a subset of the stochastic solver families
// (SG, SGM, AG, AdaGrad, Adam, SVRG) against a separable StochQuadratic,
// reporting the final value and status of each.
func runBenchmarkStoch(name string) error {
	rng := rand.New(rand.NewSource(0))
	targets := make([][]float64, 64)
	for i := range targets {
		targets[i] = []float64{rng.NormFloat64(), rng.NormFloat64()}
	}
	fn := &bench.StochQuadratic{Targets: targets}

	types := []stochastic.AlgorithmType{
		stochastic.TypeSG, stochastic.TypeSGM, stochastic.TypeAG,
		stochastic.TypeAdaGrad, stochastic.TypeAdam, stochastic.TypeSVRG,
	}

	bar := progressbar.NewProgressBar(40, len(types), 100*time.Millisecond, true)
	bar.Display()
	for _, t := range types {
		cfg := stochastic.Config{Type: t, Alpha0: 0.05, Epochs: 20}
		algo, opts, err := cfg.Build()
		if err != nil {
			return errors.Wrap(err, "benchmark_stoch")
		}

		x0 := initialPoint(fn.Size())
		state := objective.NewState(fn, vecOf(x0))

		start := time.Now()
		final := stochastic.Solve(fn, state, algo, opts)
		fmt.Printf("%-8s f=%.6g status=%s time=%s\n", t, final.F, final.Status, time.Since(start))
		bar.Increment()
	}
	bar.Close()
	return nil
}

func initialPoint(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = 1
	}
	return x
}
