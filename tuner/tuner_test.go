package tuner_test

import (
	"testing"

	"github.com/go-nanocv/nanocv/tuner"
	"github.com/stretchr/testify/require"
)

// sphere is a cheap scoring function with a unique minimum at x=0.3,
// y=-0.2, used to score trials.
func sphere(values map[string]float64) float64 {
	dx := values["x"] - 0.3
	dy := values["y"] + 0.2
	return dx*dx + dy*dy
}

func TestTunerRefinementKeepsBestScore(t *testing.T) {
	space := tuner.ParameterSpace{Axes: []tuner.Axis{
		tuner.LinearAxis("x", -1, 1),
		tuner.LinearAxis("y", -1, 1),
	}}
	tu := tuner.New(space, 1)

	var firstPassBest float64 = 1e18
	for {
		trial := tu.Get()
		if trial == nil {
			break
		}
		score := sphere(trial.Values)
		tu.Score(trial.ID, score)
		if trial.Depth == 0 && score < firstPassBest {
			firstPassBest = score
		}
		if trial.Depth >= tuner.MaxRefinementDepth {
			break
		}
	}

	opt := tu.Optimum()
	require.NotNil(t, opt)
	require.LessOrEqual(t, opt.Score, firstPassBest)
}

func TestTunerFiniteAxis(t *testing.T) {
	space := tuner.ParameterSpace{Axes: []tuner.Axis{
		tuner.FiniteAxis("alpha0", 1e-3, 1e-2, 1e-1),
	}}
	tu := tuner.New(space, 2)

	seen := map[float64]bool{}
	for i := 0; i < 3; i++ {
		trial := tu.Get()
		require.NotNil(t, trial)
		seen[trial.Values["alpha0"]] = true
		tu.Score(trial.ID, 0)
	}
	require.Len(t, seen, 3)
}
