// Package loss implements the Loss contract consumed by the accumulator
// (SPEC_FULL.md §6): value(target, output), vgrad(target, output), and
// a user-facing error metric distinct from the differentiable value.
package loss

// Loss scores a model's output against a target.
type Loss interface {
	// Value returns the scalar loss for one sample.
	Value(target, output []float64) float64
	// VGrad returns d(Value)/d(output), the same shape as output.
	VGrad(target, output []float64) []float64
	// Error returns the user-facing metric for one sample (e.g.
	// misclassification: 0 or 1; squared error: a non-negative scalar).
	Error(target, output []float64) float64
}
