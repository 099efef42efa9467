package initwfn

import (
	"math"
	"math/rand"
)

// HeUConfig draws weights uniformly in ±Gain·sqrt(6/fanIn), the He et
// al. scale appropriate for ReLU-family activations.
type HeUConfig struct {
	Gain float64
}

func (h HeUConfig) Type() Type { return HeU }

func (h HeUConfig) ValidType(t Type) bool { return t == HeU }

func (h HeUConfig) gain() float64 {
	if h.Gain == 0 {
		return 1
	}
	return h.Gain
}

func (h HeUConfig) Create() InitFn {
	return func(rng *rand.Rand, fanIn, fanOut int, dst []float64) {
		bound := h.gain() * math.Sqrt(6.0/float64(fanIn))
		for i := range dst {
			dst[i] = (rng.Float64()*2 - 1) * bound
		}
	}
}

// HeNConfig draws weights from N(0, Gain·sqrt(2/fanIn)).
type HeNConfig struct {
	Gain float64
}

func (h HeNConfig) Type() Type { return HeN }

func (h HeNConfig) ValidType(t Type) bool { return t == HeN }

func (h HeNConfig) gain() float64 {
	if h.Gain == 0 {
		return 1
	}
	return h.Gain
}

func (h HeNConfig) Create() InitFn {
	return func(rng *rand.Rand, fanIn, fanOut int, dst []float64) {
		std := h.gain() * math.Sqrt(2.0/float64(fanIn))
		for i := range dst {
			dst[i] = rng.NormFloat64() * std
		}
	}
}
