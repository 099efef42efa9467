package trainer

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Status classifies one epoch's update, mirroring the original's
// trainer_status enum.
type Status int

const (
	Failed Status = iota
	Better
	Worse
	Overfit
	Diverged
	Solved
)

func (s Status) String() string {
	switch s {
	case Better:
		return "better"
	case Worse:
		return "worse"
	case Overfit:
		return "overfit"
	case Diverged:
		return "diverged"
	case Solved:
		return "solved"
	default:
		return "failed"
	}
}

// IsDone reports whether status should stop the training loop.
func IsDone(s Status) bool {
	return s == Overfit || s == Diverged || s == Solved
}

// Result tracks the current/optimum model state across a training run: the
// append-only history of epoch states, the best-valid parameter snapshot,
// and the run's configuration string (its JSON-able solver/trainer config,
// stored for later CSV/log identification).
type Result struct {
	Config string

	optParams []float64
	optState  State
	history   []State

	worseStreak int
	hasBest     bool
}

// NewResult constructs an empty Result carrying config for later
// persistence and logging.
func NewResult(config string) *Result {
	return &Result{Config: config}
}

// Update appends state to the history and classifies the epoch per
// spec.md §4.8: diverged if the training value is non-finite, solved if
// the validation value has reached targetAccuracy (targetAccuracy <= 0
// disables this check), better if it strictly improves the best
// validation value seen so far, worse if it does not, and overfit once
// more than patience consecutive epochs have been worse. On better, the
// supplied params are snapshotted as the new optimum.
func (r *Result) Update(params []float64, state State, patience int, targetAccuracy float64) Status {
	r.history = append(r.history, state)

	if math.IsNaN(state.Train.Value) || math.IsInf(state.Train.Value, 0) {
		return Diverged
	}

	if targetAccuracy > 0 && state.Valid.Value <= targetAccuracy {
		r.snapshot(params, state)
		return Solved
	}

	if !r.hasBest || state.Valid.Value < r.optState.Valid.Value {
		r.snapshot(params, state)
		r.worseStreak = 0
		return Better
	}

	r.worseStreak++
	if r.worseStreak > patience {
		return Overfit
	}
	return Worse
}

func (r *Result) snapshot(params []float64, state State) {
	r.optParams = append([]float64(nil), params...)
	r.optState = state
	r.hasBest = true
}

// Valid reports whether any epoch has been recorded with a parameter
// snapshot, mirroring the original's operator bool().
func (r *Result) Valid() bool {
	return len(r.history) > 0 && r.hasBest
}

// OptimumState returns the epoch state at the best validation value seen
// so far.
func (r *Result) OptimumState() State {
	return r.optState
}

// OptimumParams returns the parameter vector snapshotted at OptimumState.
func (r *Result) OptimumParams() []float64 {
	return r.optParams
}

// OptimumEpoch returns the epoch number of OptimumState.
func (r *Result) OptimumEpoch() int {
	return r.optState.Epoch
}

// History returns the full append-only epoch log.
func (r *Result) History() []State {
	return r.history
}

// ConvergenceSpeed fits log(train value) against wall-clock seconds by
// ordinary least squares over the history and returns the negated slope:
// the exponent s such that loss decreases geometrically by s per second.
// Needs at least two history entries; returns 0 otherwise.
func (r *Result) ConvergenceSpeed() float64 {
	n := len(r.history)
	if n < 2 {
		return 0
	}

	t0 := r.history[0].WallTime.Seconds()
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, s := range r.history {
		xs[i] = s.WallTime.Seconds() - t0
		v := s.Train.Value
		if v <= 0 {
			v = 1e-300
		}
		ys[i] = math.Log(v)
	}

	_, beta := stat.LinearRegression(xs, ys, nil, false)
	return -beta
}

// Less orders results by their optimum validation value, mirroring the
// original's operator<.
func (r *Result) Less(other *Result) bool {
	return r.optState.Valid.Value < other.optState.Valid.Value
}
