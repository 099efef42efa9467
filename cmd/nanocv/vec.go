package main

import (
	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

func vecOf(v []float64) *mat.VecDense {
	return mat.NewVecDense(len(v), append([]float64(nil), v...))
}

func newVec(n int) *mat.VecDense {
	return mat.NewVecDense(n, nil)
}

func toSlice(s *objective.State) []float64 {
	n := s.X.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = s.X.AtVec(i)
	}
	return out
}
