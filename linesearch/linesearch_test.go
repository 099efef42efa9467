package linesearch_test

import (
	"math"
	"testing"

	"github.com/go-nanocv/nanocv/linesearch"
	"github.com/go-nanocv/nanocv/objective"
	"github.com/go-nanocv/nanocv/objective/bench"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func steepestDescentState(fn objective.Function, x0 []float64) *objective.State {
	s := objective.NewState(fn, mat.NewVecDense(len(x0), x0))
	s.D.ScaleVec(-1, &s.G)
	return s
}

func TestBacktrackSatisfiesArmijo(t *testing.T) {
	fn := bench.Sphere{N: 2}
	s0 := steepestDescentState(fn, []float64{3, -4})

	strat := linesearch.DefaultBacktrack()
	cond := linesearch.DefaultConditions()

	out, ok := strat.Search(fn, s0, 1.0, cond)
	require.True(t, ok)
	require.Less(t, out.F, s0.F)
	require.LessOrEqual(t, out.F, s0.F+cond.C1*out.T*s0.DirectionalDerivative())
}

func TestInterpolationSatisfiesStrongWolfe(t *testing.T) {
	fn := bench.Rosenbrock{}
	s0 := steepestDescentState(fn, []float64{-1.2, 1})

	strat := linesearch.DefaultInterpolation()
	cond := linesearch.Conditions{C1: 1e-4, C2: 0.9}

	out, ok := strat.Search(fn, s0, 1.0, cond)
	require.True(t, ok)
	require.LessOrEqual(t, out.F, s0.F+cond.C1*out.T*s0.DirectionalDerivative())
	require.LessOrEqual(t, math.Abs(out.DirectionalDerivative()), cond.C2*math.Abs(s0.DirectionalDerivative()))
}

func TestHagerZhangAcceptsOrFails(t *testing.T) {
	fn := bench.Sphere{N: 3}
	s0 := steepestDescentState(fn, []float64{1, 2, 3})

	strat := linesearch.DefaultHagerZhang()
	cond := linesearch.DefaultCGDConditions()

	out, ok := strat.Search(fn, s0, 1.0, cond)
	require.NotNil(t, out)
	if ok {
		require.Less(t, out.F, s0.F)
	}
}

func TestInitUnit(t *testing.T) {
	init := linesearch.Unit{}
	require.Equal(t, 1.0, init.T0(nil, 0, 0, nil, nil))
}

func TestInitLinearFirstIteration(t *testing.T) {
	init := linesearch.Linear{}
	require.Equal(t, 1.0, init.T0(nil, 0, 0, nil, nil))
}

func TestStrategyConfigBuild(t *testing.T) {
	cfg := linesearch.StrategyConfig{Kind: linesearch.StratInterpolation}
	strat, err := cfg.Build()
	require.NoError(t, err)
	require.NotNil(t, strat)
}

func TestInvalidStrategyConfig(t *testing.T) {
	cfg := linesearch.StrategyConfig{Kind: "bogus"}
	_, err := cfg.Build()
	require.Error(t, err)
}

func TestDecodeStrictRejectsUnknownFields(t *testing.T) {
	var cfg linesearch.StrategyConfig
	err := linesearch.DecodeStrict([]byte(`{"strat":"backtrack","bogus":1}`), &cfg)
	require.Error(t, err)
}
