package loss

import (
	"math"

	"github.com/go-nanocv/nanocv/utils/floatutils"
	"github.com/go-nanocv/nanocv/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// CrossEntropy is softmax cross-entropy over raw logit outputs, with
// target a one-hot class vector and Error the 0/1 misclassification
// indicator (argmax output vs argmax target).
type CrossEntropy struct{}

func softmax(logits []float64) []float64 {
	max := logits[0]
	for _, v := range logits[1:] {
		if v > max {
			max = v
		}
	}
	out := make([]float64, len(logits))
	sum := 0.0
	for i, v := range logits {
		e := math.Exp(v - max)
		out[i] = e
		sum += e
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func argmax(v []float64) int {
	return matutils.MaxVec(mat.NewVecDense(len(v), v))
}

func (CrossEntropy) Value(target, output []float64) float64 {
	p := softmax(output)
	loss := 0.0
	for i, t := range target {
		if t != 0 {
			loss -= t * math.Log(floatutils.Clip(p[i], 1e-12, 1))
		}
	}
	return loss
}

func (CrossEntropy) VGrad(target, output []float64) []float64 {
	p := softmax(output)
	g := make([]float64, len(output))
	for i := range output {
		g[i] = p[i] - target[i]
	}
	return g
}

func (CrossEntropy) Error(target, output []float64) float64 {
	if argmax(output) == argmax(target) {
		return 0
	}
	return 1
}
