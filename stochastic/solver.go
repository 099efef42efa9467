package stochastic

import (
	"log"

	"github.com/go-nanocv/nanocv/objective"
	"github.com/go-nanocv/nanocv/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// Options configures the shared stochastic outer loop of spec.md §4.5:
// Epochs passes of fn.Summands() (or EpochSize if set explicitly) inner
// iterations each, with a deterministic full-batch snapshot
// evaluated at the end of each epoch against Eps.
type Options struct {
	LRate     LRate
	Epochs    int
	EpochSize int
	Eps       float64
	Logger    *log.Logger
	Verbose   bool
}

func (o Options) eps() float64 {
	if o.Eps <= 0 {
		return objective.Eps2
	}
	return o.Eps
}

func (o Options) epochs() int {
	if o.Epochs <= 0 {
		return 100
	}
	return o.Epochs
}

func (o Options) epochSize(fn objective.Stochastic) int {
	if o.EpochSize > 0 {
		return o.EpochSize
	}
	return fn.Summands()
}

// Solve runs algo against fn starting from x0 for Options.Epochs epochs,
// snapshotting the deterministic objective at the end of every epoch and
// keeping the best snapshot seen. It mirrors the teacher's outer solver
// loop shape (batch.Solve) specialized to the stochastic inner-iteration
// / epoch-snapshot structure instead of a single line search.
func Solve(fn objective.Stochastic, x0 *objective.State, algo Algorithm, opts Options) *objective.State {
	algo.Reset(x0.X.Len())

	x := mat.VecDenseCopyOf(&x0.X)
	best := x0.Clone()
	k := 1

	for e := 0; e < opts.epochs(); e++ {
		inner := opts.epochSize(fn)
		for i := 0; i < inner; i++ {
			alpha := opts.LRate.At(k)
			x = algo.Step(fn, x, k, alpha)
			fn.StochNext()
			k++
		}

		snapAt := mat.Vector(x)
		if sp, ok := algo.(SnapshotPointer); ok {
			if p := sp.SnapshotPoint(x); p != nil {
				snapAt = p
			}
		}

		snap := best.Clone()
		snap.UpdateAt(fn, snapAt)
		snap.Iterations = e + 1

		if opts.Logger != nil {
			opts.Logger.Printf("epoch=%d f=%g |g|=%g", e+1, snap.F, infNorm(&snap.G))
			if opts.Verbose {
				opts.Logger.Printf("epoch=%d grad=%s", e+1, matutils.Format(&snap.G))
			}
		}

		if snap.Status == objective.Diverged {
			best = snap
			break
		}
		if snap.F < best.F {
			best = snap
		}
		if snap.ConvergenceCriterion() < opts.eps() {
			best = snap
			best.Status = objective.Converged
			return best
		}
	}

	if best.Status == objective.Running {
		best.Status = objective.MaxIters
	}
	return best
}
