package accumulator_test

import (
	"math/rand"
	"testing"

	"github.com/go-nanocv/nanocv/accumulator"
	"github.com/go-nanocv/nanocv/loss"
	"github.com/go-nanocv/nanocv/model"
	"github.com/go-nanocv/nanocv/objective"
	"github.com/go-nanocv/nanocv/task"
	"github.com/go-nanocv/nanocv/threadpool"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func buildTask(rng *rand.Rand) (*task.Synthetic, model.Dims3) {
	idims := model.Dims3{1, 1, 4}
	tk := task.NewSynthetic(rng, idims, 3, map[task.Fold]int{task.Train: 64})
	return tk, idims
}

// S5: worker-count independence. The deterministic full-batch value and
// gradient must agree within eps1 regardless of how many workers process
// the fold.
func TestWorkerCountIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tk, idims := buildTask(rng)

	newModel := func() model.Model {
		return model.NewSequential(
			&model.Affine{ISize: idims.Size(), OSize: 6},
			&model.Activation{Kind: model.Tanh, Dims: model.Dims3{1, 1, 6}},
			&model.Affine{ISize: 6, OSize: 3},
		)
	}
	proto := newModel()
	proto.Random(rng)
	x := mat.NewVecDense(proto.PSize(), proto.Params())

	var values []float64
	var grads []*mat.VecDense

	for _, workers := range []int{1, 2, 4, 8} {
		pool := threadpool.NewSize(workers)
		acc := accumulator.New(proto.Clone(), loss.CrossEntropy{}, tk, task.Train)
		acc.Pool = pool

		g := mat.NewVecDense(proto.PSize(), nil)
		f := acc.Eval(x, g)
		pool.Stop()

		values = append(values, f)
		grads = append(grads, g)
	}

	for i := 1; i < len(values); i++ {
		require.InDelta(t, values[0], values[i], 10*objective.Eps1)
	}
	for i := 1; i < len(grads); i++ {
		for j := 0; j < grads[0].Len(); j++ {
			require.InDelta(t, grads[0].AtVec(j), grads[i].AtVec(j), 10*objective.Eps1)
		}
	}
}
