package batch

import "github.com/go-nanocv/nanocv/objective"

// GD is the steepest-descent Direction: d = −g.
type GD struct{}

func (GD) Next(k int, prev, curr *objective.State) *objective.State {
	next := curr.Clone()
	next.D.ScaleVec(-1, &curr.G)
	return next
}
