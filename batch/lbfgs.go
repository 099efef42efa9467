package batch

import (
	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// pair is one (s_i, y_i) history entry: s_i = x_{i+1}-x_i,
// y_i = g_{i+1}-g_i.
type pair struct {
	s, y *mat.VecDense
}

// LBFGS is the limited-memory BFGS Direction. It maintains deques S and
// Y of length <= History (default 20) and computes d = -H*g via the
// two-loop recursion, skipping the curvature update when s·y <= 0.
// LBFGS is stateful across calls to Next and must not be shared between
// concurrent optimization runs.
type LBFGS struct {
	History int

	pairs []pair
}

func (l *LBFGS) history() int {
	if l.History <= 0 {
		return 20
	}
	return l.History
}

func (l *LBFGS) Next(k int, prev, curr *objective.State) *objective.State {
	next := curr.Clone()

	if k > 0 && prev != nil {
		var s, y mat.VecDense
		s.SubVec(&curr.X, &prev.X)
		y.SubVec(&curr.G, &prev.G)

		if mat.Dot(&s, &y) > 0 {
			l.pairs = append(l.pairs, pair{s: mat.VecDenseCopyOf(&s), y: mat.VecDenseCopyOf(&y)})
			if len(l.pairs) > l.history() {
				l.pairs = l.pairs[1:]
			}
		}
	}

	next.D.CloneFromVec(l.direction(&curr.G))
	return next
}

// direction computes r ≈ H·g via the two-loop recursion and returns
// d = −r.
func (l *LBFGS) direction(g *mat.VecDense) *mat.VecDense {
	n := g.Len()
	q := mat.NewVecDense(n, nil)
	q.CopyVec(g)

	m := len(l.pairs)
	alpha := make([]float64, m)

	for i := m - 1; i >= 0; i-- {
		p := l.pairs[i]
		denom := mat.Dot(p.s, p.y)
		if denom == 0 {
			alpha[i] = 0
			continue
		}
		a := mat.Dot(p.s, q) / denom
		alpha[i] = a
		q.AddScaledVec(q, -a, p.y)
	}

	r := mat.NewVecDense(n, nil)
	if m > 0 {
		last := l.pairs[m-1]
		yy := mat.Dot(last.y, last.y)
		gamma := 1.0
		if yy != 0 {
			gamma = mat.Dot(last.s, last.y) / yy
		}
		r.ScaleVec(gamma, q)
	} else {
		r.CopyVec(q)
	}

	for i := 0; i < m; i++ {
		p := l.pairs[i]
		denom := mat.Dot(p.s, p.y)
		if denom == 0 {
			continue
		}
		beta := mat.Dot(p.y, r) / denom
		r.AddScaledVec(r, alpha[i]-beta, p.s)
	}

	r.ScaleVec(-1, r)
	return r
}

// Reset clears the history, used when a solver is reused across
// independent optimization calls.
func (l *LBFGS) Reset() {
	l.pairs = nil
}
