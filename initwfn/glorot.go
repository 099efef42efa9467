package initwfn

import (
	"math"
	"math/rand"
)

// GlorotUConfig draws weights uniformly in ±Gain·sqrt(6/(fanIn+fanOut)).
type GlorotUConfig struct {
	Gain float64
}

func (g GlorotUConfig) Type() Type { return GlorotU }

func (g GlorotUConfig) ValidType(t Type) bool { return t == GlorotU }

func (g GlorotUConfig) gain() float64 {
	if g.Gain == 0 {
		return 1
	}
	return g.Gain
}

func (g GlorotUConfig) Create() InitFn {
	return func(rng *rand.Rand, fanIn, fanOut int, dst []float64) {
		bound := g.gain() * math.Sqrt(6.0/float64(fanIn+fanOut))
		for i := range dst {
			dst[i] = (rng.Float64()*2 - 1) * bound
		}
	}
}

// GlorotNConfig draws weights from N(0, Gain·sqrt(2/(fanIn+fanOut))).
type GlorotNConfig struct {
	Gain float64
}

func (g GlorotNConfig) Type() Type { return GlorotN }

func (g GlorotNConfig) ValidType(t Type) bool { return t == GlorotN }

func (g GlorotNConfig) gain() float64 {
	if g.Gain == 0 {
		return 1
	}
	return g.Gain
}

func (g GlorotNConfig) Create() InitFn {
	return func(rng *rand.Rand, fanIn, fanOut int, dst []float64) {
		std := g.gain() * math.Sqrt(2.0/float64(fanIn+fanOut))
		for i := range dst {
			dst[i] = rng.NormFloat64() * std
		}
	}
}
