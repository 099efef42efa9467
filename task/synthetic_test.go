package task_test

import (
	"math/rand"
	"testing"

	"github.com/go-nanocv/nanocv/model"
	"github.com/go-nanocv/nanocv/task"
	"github.com/go-nanocv/nanocv/utils/tensorutils"
	"github.com/stretchr/testify/require"
)

func TestSyntheticGetSliceStride(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	idims := model.Dims3{1, 1, 2}
	tk := task.NewSynthetic(rng, idims, 2, map[task.Fold]int{task.Train: 10})

	full := tk.Get(task.Train, 0, 10)
	require.Len(t, full.Samples, 10)

	strided := tk.GetSlice(task.Train, tensorutils.NewSlice(0, 10, 2))
	require.Len(t, strided.Samples, 5)
	for i, s := range strided.Samples {
		require.Equal(t, full.Samples[i*2].Input, s.Input)
	}
}
