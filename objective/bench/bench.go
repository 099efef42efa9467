// Package bench implements the synthetic benchmark objectives the
// original nanocv ships for exercising solvers (see
// apps/benchmark_optimizers.h and ncv_benchmark_optimizers.cpp): the
// Rosenbrock valley, the separable sphere/sum-of-squares bowl, Beale's
// function, and a diagonal-Hessian quadratic. All are plain
// objective.Function values with hand-derived gradients, used by
// SPEC_FULL scenarios S1-S4 and the gradient-accuracy property tests.
package bench

import "gonum.org/v1/gonum/mat"

// Rosenbrock is the classic 2D banana-valley function
// f(x,y) = (1-x)^2 + 100*(y-x^2)^2, convex=false (it has a single
// curved valley but is not convex).
type Rosenbrock struct{}

func (Rosenbrock) Size() int        { return 2 }
func (Rosenbrock) Convex() bool     { return false }
func (Rosenbrock) InDomain(mat.Vector) bool { return true }

func (Rosenbrock) Eval(x mat.Vector, g *mat.VecDense) float64 {
	a, b := x.AtVec(0), x.AtVec(1)
	t1 := 1 - a
	t2 := b - a*a
	f := t1*t1 + 100*t2*t2

	if g != nil {
		dfda := -2*t1 - 400*a*t2
		dfdb := 200 * t2
		g.SetVec(0, dfda)
		g.SetVec(1, dfdb)
	}
	return f
}

// Sphere is the separable sum-of-squares bowl f(x) = Σx_i², convex and
// strictly so: the unique minimizer is the origin.
type Sphere struct {
	N int
}

func (s Sphere) Size() int            { return s.N }
func (Sphere) Convex() bool           { return true }
func (Sphere) InDomain(mat.Vector) bool { return true }

func (s Sphere) Eval(x mat.Vector, g *mat.VecDense) float64 {
	f := 0.0
	for i := 0; i < s.N; i++ {
		v := x.AtVec(i)
		f += v * v
		if g != nil {
			g.SetVec(i, 2*v)
		}
	}
	return f
}

// Beale is Beale's function, a standard non-convex 2D test case with a
// sharp minimum at (3, 0.5).
type Beale struct{}

func (Beale) Size() int        { return 2 }
func (Beale) Convex() bool     { return false }
func (Beale) InDomain(mat.Vector) bool { return true }

func (Beale) Eval(x mat.Vector, g *mat.VecDense) float64 {
	a, b := x.AtVec(0), x.AtVec(1)

	c1 := 1.5 - a + a*b
	c2 := 2.25 - a + a*b*b
	c3 := 2.625 - a + a*b*b*b

	f := c1*c1 + c2*c2 + c3*c3

	if g != nil {
		dfda := 2*c1*(b-1) + 2*c2*(b*b-1) + 2*c3*(b*b*b-1)
		dfdb := 2*c1*a + 2*c2*2*a*b + 2*c3*3*a*b*b
		g.SetVec(0, dfda)
		g.SetVec(1, dfdb)
	}
	return f
}

// DiagQuadratic is f(x) = 1/2 xᵀAx for diagonal A, used by scenario S3
// (A = diag(1, 10, 100, 1000)) to probe conditioning-sensitive CGD
// convergence.
type DiagQuadratic struct {
	Diag []float64
}

func (d DiagQuadratic) Size() int            { return len(d.Diag) }
func (DiagQuadratic) Convex() bool           { return true }
func (DiagQuadratic) InDomain(mat.Vector) bool { return true }

func (d DiagQuadratic) Eval(x mat.Vector, g *mat.VecDense) float64 {
	f := 0.0
	for i, a := range d.Diag {
		v := x.AtVec(i)
		f += 0.5 * a * v * v
		if g != nil {
			g.SetVec(i, a*v)
		}
	}
	return f
}

// StochQuadratic is a separable sum over M per-sample quadratic summands
// f_j(x) = Σ_i (x_i - Targets[j][i])², with f(x) = mean_j f_j(x). Its
// minimizer is the coordinatewise mean of Targets, used by the stochastic
// solver property and scenario tests (SPEC_FULL.md §4.5) since it is
// convex and admits a closed-form optimum to check convergence against.
// StochNext cycles deterministically through the M summands.
type StochQuadratic struct {
	Targets [][]float64

	cur int
}

func (s *StochQuadratic) Size() int { return len(s.Targets[0]) }

func (s *StochQuadratic) Convex() bool { return true }

func (s *StochQuadratic) InDomain(mat.Vector) bool { return true }

func (s *StochQuadratic) Summands() int { return len(s.Targets) }

// Eval is the deterministic full-batch mean over every summand.
func (s *StochQuadratic) Eval(x mat.Vector, g *mat.VecDense) float64 {
	n := s.Size()
	m := len(s.Targets)
	f := 0.0
	if g != nil {
		for i := 0; i < n; i++ {
			g.SetVec(i, 0)
		}
	}
	for _, t := range s.Targets {
		for i := 0; i < n; i++ {
			d := x.AtVec(i) - t[i]
			f += d * d
			if g != nil {
				g.SetVec(i, g.AtVec(i)+2*d)
			}
		}
	}
	if g != nil {
		for i := 0; i < n; i++ {
			g.SetVec(i, g.AtVec(i)/float64(m))
		}
	}
	return f / float64(m)
}

// StochEval evaluates the single summand at the current minibatch cursor.
func (s *StochQuadratic) StochEval(x mat.Vector, g *mat.VecDense) float64 {
	n := s.Size()
	t := s.Targets[s.cur]
	f := 0.0
	for i := 0; i < n; i++ {
		d := x.AtVec(i) - t[i]
		f += d * d
		if g != nil {
			g.SetVec(i, 2*d)
		}
	}
	return f
}

// StochNext advances to the next summand, wrapping around.
func (s *StochQuadratic) StochNext() {
	s.cur = (s.cur + 1) % len(s.Targets)
}
