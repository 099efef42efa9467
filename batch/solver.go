// Package batch implements the full-batch solver family: gradient
// descent, nonlinear conjugate gradient (nine β-policy variants), and
// L-BFGS. All three share the outer loop described in spec.md §4.4:
// compute a descent direction, obtain a step length via line search,
// advance the state, and test convergence.
package batch

import (
	"log"

	"github.com/go-nanocv/nanocv/linesearch"
	"github.com/go-nanocv/nanocv/objective"
)

// Direction computes the next descent direction given the previous and
// current solver states (prev is nil on the first iteration). It is the
// one piece that differs between GD, CGD, and L-BFGS.
type Direction interface {
	Next(k int, prev, curr *objective.State) *objective.State
}

// Options configures the shared outer loop.
type Options struct {
	Init        linesearch.Init
	Strategy    linesearch.Strategy
	Conditions  linesearch.Conditions
	Eps         float64 // convergence threshold, default objective.Eps2
	MaxIters    int     // default 1000
	Logger      *log.Logger
}

func (o Options) eps() float64 {
	if o.Eps > 0 {
		return o.Eps
	}
	return objective.Eps2
}

func (o Options) maxIters() int {
	if o.MaxIters > 0 {
		return o.MaxIters
	}
	return 1000
}

// Solve runs the shared batch outer loop: it asks dir for a descent
// direction each iteration, obtains a step length from opts.Init and
// opts.Strategy, advances the state, and tests convergence. On a line
// search failure, it retries once with steepest descent at the same
// iterate (spec.md §7); two consecutive failures set Status=Failed.
func Solve(fn objective.Function, x0 *objective.State, dir Direction, opts Options) *objective.State {
	curr := x0
	var prev *objective.State
	prevT := 0.0
	lastFailed := false

	for k := 0; k < opts.maxIters(); k++ {
		if curr.ConvergenceCriterion() < opts.eps() {
			curr.Status = objective.Converged
			return curr
		}

		next := dir.Next(k, prev, curr)
		t0 := opts.Init.T0(fn, k, prevT, prev, next)

		accepted, ok := opts.Strategy.Search(fn, next, t0, opts.Conditions)
		if !ok {
			if lastFailed {
				accepted.Status = objective.Failed
				if opts.Logger != nil {
					opts.Logger.Printf("batch: line search failed twice at iteration %d, stopping", k)
				}
				return accepted
			}
			lastFailed = true
			// Fall back to steepest descent at the same iterate for one
			// step, per spec.md §7.
			sd := next.Clone()
			sd.D.ScaleVec(-1, &next.G)
			accepted, ok = opts.Strategy.Search(fn, sd, 1.0, opts.Conditions)
			if !ok {
				accepted.Status = objective.Failed
				return accepted
			}
		} else {
			lastFailed = false
		}

		if opts.Logger != nil {
			opts.Logger.Printf("batch: iter=%d f=%g |g|inf/(1+|f|)=%g t=%g",
				k, accepted.F, accepted.ConvergenceCriterion(), accepted.T)
		}

		prev, curr = next, accepted
		prevT = accepted.T

		if curr.Status == objective.Diverged {
			return curr
		}
	}

	curr.Status = objective.MaxIters
	return curr
}
