// Package trainer implements the training result tracker of spec.md §4.8:
// per-epoch measurement history, better/worse/overfit/diverge/solved
// classification, best-parameter snapshotting, convergence speed, and CSV
// persistence. Grounded on original_source/src/trainer_result.h and
// src/nanocv/trainers/batch_trainer.cpp.
package trainer

import "time"

// MeasureStat pairs an objective value with its user-facing error metric,
// e.g. loss and misclassification rate on one fold.
type MeasureStat struct {
	Value float64
	Error float64
}

// State is one epoch's snapshot, corresponding to the original's
// trainer_state_t: wall-clock time plus train/valid/test measurements.
type State struct {
	Epoch    int
	WallTime time.Duration
	Train    MeasureStat
	Valid    MeasureStat
	Test     MeasureStat
}
