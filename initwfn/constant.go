package initwfn

import "math/rand"

// ZeroesConfig fills every parameter with 0.
type ZeroesConfig struct{}

func (z ZeroesConfig) Type() Type { return Zeroes }

func (z ZeroesConfig) ValidType(t Type) bool { return t == Zeroes }

func (z ZeroesConfig) Create() InitFn {
	return func(rng *rand.Rand, fanIn, fanOut int, dst []float64) {
		for i := range dst {
			dst[i] = 0
		}
	}
}

// OnesConfig fills every parameter with 1.
type OnesConfig struct{}

func (o OnesConfig) Type() Type { return Ones }

func (o OnesConfig) ValidType(t Type) bool { return t == Ones }

func (o OnesConfig) Create() InitFn {
	return func(rng *rand.Rand, fanIn, fanOut int, dst []float64) {
		for i := range dst {
			dst[i] = 1
		}
	}
}

// ConstantConfig fills every parameter with Value.
type ConstantConfig struct {
	Value float64
}

func (c ConstantConfig) Type() Type { return Constant }

func (c ConstantConfig) ValidType(t Type) bool { return t == Constant }

func (c ConstantConfig) Create() InitFn {
	return func(rng *rand.Rand, fanIn, fanOut int, dst []float64) {
		for i := range dst {
			dst[i] = c.Value
		}
	}
}
