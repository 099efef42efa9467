package task

import (
	"math/rand"

	"github.com/go-nanocv/nanocv/model"
	"github.com/go-nanocv/nanocv/utils/tensorutils"
)

// Synthetic is an in-memory classification Task used to exercise the
// accumulator and solvers in tests without a real image/charset loader
// (those concrete loaders are explicitly out of scope per spec.md §2).
type Synthetic struct {
	idims, odims model.Dims3
	folds        map[Fold][]Sample
}

// NewSynthetic generates a linearly-separable classification task: each
// sample's class determines the mean of a Gaussian input cloud.
func NewSynthetic(rng *rand.Rand, idims model.Dims3, classes int, perFold map[Fold]int) *Synthetic {
	s := &Synthetic{
		idims: idims,
		odims: model.Dims3{1, 1, classes},
		folds: map[Fold][]Sample{},
	}

	n := idims.Size()
	centers := make([][]float64, classes)
	for c := range centers {
		center := make([]float64, n)
		for i := range center {
			center[i] = rng.Float64()*6 - 3
		}
		centers[c] = center
	}

	for fold, count := range perFold {
		samples := make([]Sample, count)
		for i := 0; i < count; i++ {
			c := i % classes
			input := make([]float64, n)
			for j := range input {
				input[j] = centers[c][j] + rng.NormFloat64()*0.3
			}
			target := make([]float64, classes)
			target[c] = 1
			samples[i] = Sample{Input: input, Target: target}
		}
		s.folds[fold] = samples
	}
	return s
}

func (s *Synthetic) IDims() model.Dims3 { return s.idims }

func (s *Synthetic) ODims() model.Dims3 { return s.odims }

func (s *Synthetic) FSize() int { return s.odims.Size() }

func (s *Synthetic) Size(fold Fold) int { return len(s.folds[fold]) }

func (s *Synthetic) Get(fold Fold, begin, end int) Minibatch {
	return s.GetSlice(fold, tensorutils.NewSlice(begin, end, 1))
}

// GetSlice generalizes Get to a strided window, so e.g. a caller can pull
// every other sample (step=2) for a held-out periodic subsample without
// copying the full fold first.
func (s *Synthetic) GetSlice(fold Fold, slice tensorutils.Slice) Minibatch {
	all := s.folds[fold]
	step := slice.Step()
	if step <= 0 {
		step = 1
	}
	var out []Sample
	for i := slice.Start(); i < slice.End() && i < len(all); i += step {
		out = append(out, all[i])
	}
	return Minibatch{Samples: out}
}

func (s *Synthetic) Shuffle(fold Fold) {
	samples := s.folds[fold]
	rand.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})
}
