// Package stochastic implements the stochastic solver family (SG, SGM,
// Nesterov with restarts, AdaGrad, AdaDelta, RMSProp, Adam, SVRG, and
// iterate/gradient averaging) sharing the epoch/snapshot outer loop of
// spec.md §4.5. Per-algorithm running state is modeled as explicit
// structs (SPEC_FULL.md §9: "stochastic state as data, not closures"),
// making every solver serializable and independently testable.
package stochastic

import "gonum.org/v1/gonum/mat"

// Momentum is a scalar exponentially-weighted running average with
// retention coefficient Beta: Value <- Beta*Value + (1-Beta)*x.
type Momentum struct {
	Beta  float64
	Value float64
	init  bool
}

// Update applies one step of the running average, initializing Value to
// x on the first call so that Momentum does not bias the first
// observation towards zero.
func (m *Momentum) Update(x float64) float64 {
	if !m.init {
		m.Value = x
		m.init = true
		return m.Value
	}
	m.Value = m.Beta*m.Value + (1-m.Beta)*x
	return m.Value
}

// VecMomentum is the elementwise vector form of Momentum.
type VecMomentum struct {
	Beta  float64
	Value *mat.VecDense
}

// Update applies one elementwise step of the running average.
func (m *VecMomentum) Update(x *mat.VecDense) *mat.VecDense {
	if m.Value == nil {
		m.Value = mat.VecDenseCopyOf(x)
		return m.Value
	}
	var next mat.VecDense
	next.ScaleVec(m.Beta, m.Value)
	next.AddScaledVec(&next, 1-m.Beta, x)
	m.Value = &next
	return m.Value
}

// VecAverage is a uniform (unweighted) running mean of vectors, distinct
// from the exponentially-weighted VecMomentum: avg_n = avg_{n-1} +
// (x_n - avg_{n-1})/n. Used by SIA/SGA to average iterates/gradients
// across an entire run rather than decaying older observations.
type VecAverage struct {
	Value *mat.VecDense
	n     int
}

// Update folds x into the running mean and returns the updated average.
func (a *VecAverage) Update(x *mat.VecDense) *mat.VecDense {
	a.n++
	if a.Value == nil {
		a.Value = mat.VecDenseCopyOf(x)
		return a.Value
	}
	var diff mat.VecDense
	diff.SubVec(x, a.Value)
	var next mat.VecDense
	next.AddScaledVec(a.Value, 1/float64(a.n), &diff)
	a.Value = &next
	return a.Value
}

// LRate is a per-iteration learning-rate schedule
// α(k) = α0 · (1 + γ·k/τ)^-1, τ = "iterations per epoch-like unit".
type LRate struct {
	Alpha0 float64
	Gamma  float64
	Tau    float64
}

// At returns α(k).
func (l LRate) At(k int) float64 {
	tau := l.Tau
	if tau <= 0 {
		tau = 1
	}
	return l.Alpha0 / (1 + l.Gamma*float64(k)/tau)
}
