// Package task implements the Task contract consumed by the accumulator
// (SPEC_FULL.md §6): fixed input/output dims, per-fold sample counts, and
// minibatch retrieval/shuffling.
package task

import "github.com/go-nanocv/nanocv/model"

// Fold names a labelled subset of a task.
type Fold int

const (
	Train Fold = iota
	Valid
	Test
)

// Sample is one (input, target) pair, each a flattened tensor matching
// the task's IDims()/ODims().
type Sample struct {
	Input, Target []float64
}

// Minibatch is a batch of Samples from one fold, in fold order (contiguous
// for Get, strided for Synthetic.GetSlice).
type Minibatch struct {
	Samples []Sample
}

// Task exposes a fixed-shape, multi-fold dataset.
type Task interface {
	IDims() model.Dims3
	ODims() model.Dims3
	// FSize returns the number of distinct classes/targets, 0 if not a
	// classification task.
	FSize() int
	// Size returns the number of samples in fold.
	Size(fold Fold) int
	// Get returns samples [begin, end) of fold.
	Get(fold Fold, begin, end int) Minibatch
	// Shuffle randomizes the sample order within fold.
	Shuffle(fold Fold)
}
