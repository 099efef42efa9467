package model

import (
	"math"
	"math/rand"
)

// ActivationKind names a scalar nonlinearity, applied elementwise.
type ActivationKind string

const (
	Sigmoid ActivationKind = "sigmoid"
	Tanh    ActivationKind = "tanh"
	ReLU    ActivationKind = "relu"
)

// Activation applies a scalar nonlinearity elementwise; it carries no
// parameters (PSize() == 0), grounded on
// original_source/src/layers/layer_activation.h.
type Activation struct {
	Kind ActivationKind
	Dims Dims3

	lastOutput []float64
}

func (a *Activation) PSize() int { return 0 }

func (a *Activation) IDims() Dims3 { return a.Dims }

func (a *Activation) ODims() Dims3 { return a.Dims }

func (a *Activation) fwd(x float64) float64 {
	switch a.Kind {
	case Tanh:
		return math.Tanh(x)
	case ReLU:
		if x > 0 {
			return x
		}
		return 0
	default:
		return 1 / (1 + math.Exp(-x))
	}
}

// deriv returns f'(x) expressed in terms of the already-computed output y
// = f(x), avoiding recomputation of x.
func (a *Activation) deriv(y float64) float64 {
	switch a.Kind {
	case Tanh:
		return 1 - y*y
	case ReLU:
		if y > 0 {
			return 1
		}
		return 0
	default:
		return y * (1 - y)
	}
}

func (a *Activation) Output(params, input []float64) []float64 {
	out := make([]float64, len(input))
	for i, x := range input {
		out[i] = a.fwd(x)
	}
	a.lastOutput = out
	return out
}

func (a *Activation) GInput(params, gradOutput []float64) []float64 {
	gi := make([]float64, len(gradOutput))
	for i, go_ := range gradOutput {
		gi[i] = go_ * a.deriv(a.lastOutput[i])
	}
	return gi
}

func (a *Activation) GParam(params, gradOutput []float64) []float64 { return nil }

func (a *Activation) Random(rng *rand.Rand, params []float64) {}

func (a *Activation) Clone() Layer {
	return &Activation{Kind: a.Kind, Dims: a.Dims}
}
