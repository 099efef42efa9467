package model

import (
	"math/rand"

	"github.com/go-nanocv/nanocv/initwfn"
)

// Affine is a fully-connected layer output = W*input + b, grounded on
// original_source/src/layers/layer_affine.h. Parameters are laid out as
// the row-major W (OSize x ISize) followed by the bias vector b.
type Affine struct {
	ISize, OSize int
	Init         *initwfn.InitWFn

	lastInput []float64
}

func (a *Affine) wsize() int { return a.OSize * a.ISize }

func (a *Affine) PSize() int { return a.wsize() + a.OSize }

func (a *Affine) IDims() Dims3 { return Dims3{1, 1, a.ISize} }

func (a *Affine) ODims() Dims3 { return Dims3{1, 1, a.OSize} }

func (a *Affine) Output(params, input []float64) []float64 {
	a.lastInput = append(a.lastInput[:0], input...)

	w := params[:a.wsize()]
	b := params[a.wsize():a.PSize()]

	out := make([]float64, a.OSize)
	for o := 0; o < a.OSize; o++ {
		sum := b[o]
		row := w[o*a.ISize : (o+1)*a.ISize]
		for i := 0; i < a.ISize; i++ {
			sum += row[i] * input[i]
		}
		out[o] = sum
	}
	return out
}

// GInput returns W^T · gradOutput.
func (a *Affine) GInput(params, gradOutput []float64) []float64 {
	w := params[:a.wsize()]
	gi := make([]float64, a.ISize)
	for o := 0; o < a.OSize; o++ {
		go_ := gradOutput[o]
		row := w[o*a.ISize : (o+1)*a.ISize]
		for i := 0; i < a.ISize; i++ {
			gi[i] += row[i] * go_
		}
	}
	return gi
}

// GParam returns [dW (outer product of gradOutput and the cached last
// input), db = gradOutput].
func (a *Affine) GParam(params, gradOutput []float64) []float64 {
	gp := make([]float64, a.PSize())
	for o := 0; o < a.OSize; o++ {
		go_ := gradOutput[o]
		row := gp[o*a.ISize : (o+1)*a.ISize]
		for i := 0; i < a.ISize; i++ {
			row[i] = go_ * a.lastInput[i]
		}
	}
	copy(gp[a.wsize():], gradOutput)
	return gp
}

func (a *Affine) Clone() Layer {
	return &Affine{ISize: a.ISize, OSize: a.OSize, Init: a.Init}
}

func (a *Affine) Random(rng *rand.Rand, params []float64) {
	init := a.Init
	if init == nil {
		cfg, _ := initwfn.New(initwfn.GlorotU, initwfn.GlorotUConfig{Gain: 1})
		init = cfg
	}
	init.Apply(rng, a.ISize, a.OSize, params[:a.wsize()])
	for i := a.wsize(); i < a.PSize(); i++ {
		params[i] = 0
	}
}
