package initwfn

import "math/rand"

// GaussianConfig draws weights from N(Mean, StdDev), ignoring fan-in/out.
type GaussianConfig struct {
	Mean, StdDev float64
}

func (g GaussianConfig) Type() Type { return Gaussian }

func (g GaussianConfig) ValidType(t Type) bool { return t == Gaussian }

func (g GaussianConfig) Create() InitFn {
	return func(rng *rand.Rand, fanIn, fanOut int, dst []float64) {
		for i := range dst {
			dst[i] = g.Mean + rng.NormFloat64()*g.StdDev
		}
	}
}
