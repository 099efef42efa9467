package model_test

import (
	"math/rand"
	"testing"

	"github.com/go-nanocv/nanocv/model"
	"github.com/stretchr/testify/require"
)

func TestSequentialGradParamMatchesFiniteDifference(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := model.NewSequential(
		&model.Affine{ISize: 4, OSize: 5},
		&model.Activation{Kind: model.Tanh, Dims: model.Dims3{1, 1, 5}},
		&model.Affine{ISize: 5, OSize: 2},
	)
	m.Random(rng)

	input := []float64{0.3, -0.2, 0.5, 0.1}
	out := m.Output(input)
	require.Len(t, out, 2)

	gradOutput := []float64{1, 0}
	analytic := m.GParam(gradOutput)

	params := m.Params()
	const h = 1e-6
	for i := range params {
		orig := params[i]

		params[i] = orig + h
		m.SetParams(params)
		fPlus := m.Output(input)[0]

		params[i] = orig - h
		m.SetParams(params)
		fMinus := m.Output(input)[0]

		params[i] = orig
		m.SetParams(params)

		numeric := (fPlus - fMinus) / (2 * h)
		require.InDelta(t, numeric, analytic[i], 1e-4)
	}
}

func TestSequentialGradInputMatchesFiniteDifference(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	m := model.NewSequential(
		&model.Affine{ISize: 3, OSize: 3},
		&model.Activation{Kind: model.Sigmoid, Dims: model.Dims3{1, 1, 3}},
	)
	m.Random(rng)

	input := []float64{0.1, 0.2, -0.3}
	m.Output(input)
	gradOutput := []float64{1, 0, 0}
	analytic := m.GInput(gradOutput)

	const h = 1e-6
	for i := range input {
		orig := input[i]
		input[i] = orig + h
		fPlus := m.Output(input)[0]
		input[i] = orig - h
		fMinus := m.Output(input)[0]
		input[i] = orig

		numeric := (fPlus - fMinus) / (2 * h)
		require.InDelta(t, numeric, analytic[i], 1e-4)
	}
}
