// Package accumulator turns a (model, loss, task, fold) tuple into a
// differentiable objective.Function/Stochastic, parallelizing per-sample
// value/gradient evaluation across a threadpool.Pool, grounded on
// original_source/src/cortex/stochastic.cpp.
package accumulator

import (
	"github.com/go-nanocv/nanocv/loss"
	"github.com/go-nanocv/nanocv/model"
	"github.com/go-nanocv/nanocv/task"
	"github.com/go-nanocv/nanocv/threadpool"
	"gonum.org/v1/gonum/mat"
)

// Accumulator wraps a model, loss, task, and fold as an
// objective.Stochastic. Eval/StochEval partition the fold's samples
// across the Pool's workers, each worker evaluating its own Model clone
// (isolating the per-layer forward-pass cache) into a private accState,
// merged additively once every worker's chunk completes.
type Accumulator struct {
	Model     model.Model
	Loss      loss.Loss
	Task      task.Task
	Fold      task.Fold
	Criterion Criterion
	Pool      *threadpool.Pool
	BatchSize int

	workers []model.Model
	cur     int
}

// New constructs an Accumulator, defaulting Pool to threadpool.Default()
// and Criterion to CriterionAverage when unset.
func New(m model.Model, l loss.Loss, t task.Task, fold task.Fold) *Accumulator {
	return &Accumulator{Model: m, Loss: l, Task: t, Fold: fold, Criterion: CriterionAverage{}, BatchSize: 32}
}

func (a *Accumulator) pool() *threadpool.Pool {
	if a.Pool == nil {
		a.Pool = threadpool.Default()
	}
	return a.Pool
}

func (a *Accumulator) ensureWorkers() {
	n := a.pool().Workers()
	if len(a.workers) == n {
		return
	}
	a.workers = make([]model.Model, n)
	for i := range a.workers {
		a.workers[i] = a.Model.Clone()
	}
}

func (a *Accumulator) Size() int { return a.Model.PSize() }

func (a *Accumulator) Convex() bool { return false }

func (a *Accumulator) InDomain(x mat.Vector) bool { return true }

func (a *Accumulator) run(x mat.Vector, begin, end int) accState {
	a.ensureWorkers()
	params := asSlice(x)
	for _, w := range a.workers {
		w.SetParams(params)
	}

	acc := make([]accState, a.pool().Workers())
	for i := range acc {
		acc[i] = newAccState(a.Size())
	}

	mb := a.Task.Get(a.Fold, begin, end)

	a.pool().LoopIt(len(mb.Samples), 0, func(b, e, worker int) {
		w := a.workers[worker]
		for i := b; i < e; i++ {
			s := mb.Samples[i]
			out := w.Output(s.Input)
			value := a.Loss.Value(s.Target, out)
			errVal := a.Loss.Error(s.Target, out)
			gradOut := a.Loss.VGrad(s.Target, out)
			gparam := w.GParam(gradOut)
			acc[worker].accumulate(value, errVal, gparam)
		}
	})

	total := newAccState(a.Size())
	for _, s := range acc {
		total.merge(s)
	}
	return total
}

func setVec(g *mat.VecDense, v []float64) {
	for i, gi := range v {
		g.SetVec(i, gi)
	}
}

func (a *Accumulator) Eval(x mat.Vector, g *mat.VecDense) float64 {
	acc := a.run(x, 0, a.Task.Size(a.Fold))
	params := asSlice(x)
	if g != nil {
		setVec(g, a.Criterion.VGrad(acc, params))
	}
	return a.Criterion.Value(acc, params)
}

// StochEval evaluates the current minibatch [cur, cur+BatchSize).
func (a *Accumulator) StochEval(x mat.Vector, g *mat.VecDense) float64 {
	end := a.cur + a.batchSize()
	if n := a.Task.Size(a.Fold); end > n {
		end = n
	}
	acc := a.run(x, a.cur, end)
	params := asSlice(x)
	if g != nil {
		setVec(g, a.Criterion.VGrad(acc, params))
	}
	return a.Criterion.Value(acc, params)
}

func (a *Accumulator) batchSize() int {
	if a.BatchSize <= 0 {
		return 32
	}
	return a.BatchSize
}

// StochNext advances to the next minibatch, wrapping at the fold's size.
func (a *Accumulator) StochNext() {
	n := a.Task.Size(a.Fold)
	a.cur += a.batchSize()
	if a.cur >= n {
		a.cur = 0
	}
}

// Summands returns the number of minibatches per epoch.
func (a *Accumulator) Summands() int {
	n := a.Task.Size(a.Fold)
	bs := a.batchSize()
	return (n + bs - 1) / bs
}

func (a *Accumulator) Error(x mat.Vector) float64 {
	acc := a.run(x, 0, a.Task.Size(a.Fold))
	return a.Criterion.Error(acc)
}

func asSlice(x mat.Vector) []float64 {
	if vd, ok := x.(*mat.VecDense); ok {
		return vd.RawVector().Data
	}
	n := x.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = x.AtVec(i)
	}
	return out
}
