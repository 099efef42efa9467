// Package objective defines the differentiable objective abstraction that
// every solver in this module optimizes: Function, its stochastic
// extension, and the solver-facing State that tracks an iterate, its
// gradient, descent direction, and termination status.
package objective

import "gonum.org/v1/gonum/mat"

// Status classifies the outcome of an optimization run.
type Status int

const (
	// Running indicates the solver has not yet terminated.
	Running Status = iota
	// Converged indicates the convergence criterion was satisfied.
	Converged
	// Failed indicates a line search or other inner step could not
	// produce an acceptable point.
	Failed
	// Stopped indicates the caller requested early termination.
	Stopped
	// MaxIters indicates the iteration budget was exhausted.
	MaxIters
	// Diverged indicates a non-finite value or gradient was observed.
	Diverged
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Failed:
		return "failed"
	case Stopped:
		return "stopped"
	case MaxIters:
		return "max_iters"
	case Diverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// Function is a differentiable, possibly stochastic objective. A single
// Function value may be evaluated concurrently by multiple callers as
// long as each call operates on distinct state (e.g. distinct gradient
// output vectors); Eval itself must not mutate shared Function state.
type Function interface {
	// Size returns the dimension of the parameter vector.
	Size() int

	// Convex reports whether the function is known to be convex.
	Convex() bool

	// InDomain reports whether x is a valid point to evaluate at.
	InDomain(x mat.Vector) bool

	// Eval returns f(x) and, if g is non-nil, writes ∇f(x) into g. g
	// must have the same length as x. Eval returns a non-finite value
	// for out-of-domain x; callers treat that as divergence.
	Eval(x mat.Vector, g *mat.VecDense) float64
}

// Stochastic extends Function with minibatch operations used by the
// stochastic solver family.
type Stochastic interface {
	Function

	// StochEval evaluates f and, if g is non-nil, ∇f at x using the
	// current minibatch.
	StochEval(x mat.Vector, g *mat.VecDense) float64

	// StochNext advances to the next minibatch.
	StochNext()

	// Summands returns the number of StochNext steps (minibatches) that
	// make up one pass over the data; the stochastic solver uses it
	// directly as the default number of inner iterations per epoch.
	Summands() int
}

// BoundedSize optionally constrains the admissible dimension of a
// Function's parameter vector. Functions that do not implement it are
// assumed unconstrained.
type BoundedSize interface {
	MinSize() int
	MaxSize() int
}
