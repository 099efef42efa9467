package initwfn

import "math/rand"

// UniformConfig draws weights uniformly in [Low, High].
type UniformConfig struct {
	Low, High float64
}

func (u UniformConfig) Type() Type { return Uniform }

func (u UniformConfig) ValidType(t Type) bool { return t == Uniform }

func (u UniformConfig) Create() InitFn {
	return func(rng *rand.Rand, fanIn, fanOut int, dst []float64) {
		span := u.High - u.Low
		for i := range dst {
			dst[i] = u.Low + rng.Float64()*span
		}
	}
}
