package trainer_test

import (
	"math"
	"os"
	"testing"
	"time"

	"github.com/go-nanocv/nanocv/trainer"
	"github.com/stretchr/testify/require"
)

// S6: TrainerResult overfitting detection over a synthetic loss sequence.
func TestResultOverfitClassification(t *testing.T) {
	train := []float64{1.0, 0.8, 0.6, 0.5, 0.4, 0.3}
	valid := []float64{1.0, 0.9, 0.85, 0.88, 0.90, 0.95}
	want := []trainer.Status{
		trainer.Better, trainer.Better, trainer.Better,
		trainer.Worse, trainer.Worse, trainer.Overfit,
	}

	r := trainer.NewResult("patience=2")
	var got []trainer.Status
	for i := range train {
		s := trainer.State{
			Epoch: i + 1,
			Train: trainer.MeasureStat{Value: train[i]},
			Valid: trainer.MeasureStat{Value: valid[i]},
		}
		status := r.Update([]float64{float64(i)}, s, 2, 0)
		got = append(got, status)
		if trainer.IsDone(status) {
			break
		}
	}

	require.Equal(t, want, got)
	require.Equal(t, 3, r.OptimumEpoch())
	require.InDelta(t, 0.85, r.OptimumState().Valid.Value, 1e-9)
}

func TestResultDivergesOnNonFiniteTrainValue(t *testing.T) {
	r := trainer.NewResult("")
	status := r.Update([]float64{0}, trainer.State{
		Epoch: 1,
		Train: trainer.MeasureStat{Value: math.NaN()},
	}, 2, 0)
	require.Equal(t, trainer.Diverged, status)
}

func TestResultSolvesOnTargetAccuracy(t *testing.T) {
	r := trainer.NewResult("")
	status := r.Update([]float64{1, 2}, trainer.State{
		Epoch: 1,
		Train: trainer.MeasureStat{Value: 0.01},
		Valid: trainer.MeasureStat{Value: 0.001},
	}, 2, 0.01)
	require.Equal(t, trainer.Solved, status)
	require.Equal(t, []float64{1, 2}, r.OptimumParams())
}

func TestConvergenceSpeedPositiveForDecreasingLoss(t *testing.T) {
	r := trainer.NewResult("")
	for i := 0; i < 5; i++ {
		r.Update([]float64{0}, trainer.State{
			Epoch:    i + 1,
			WallTime: time.Duration(i) * time.Second,
			Train:    trainer.MeasureStat{Value: 1.0 / float64(i+1)},
			Valid:    trainer.MeasureStat{Value: 1.0 / float64(i+1)},
		}, 10, 0)
	}
	require.Greater(t, r.ConvergenceSpeed(), 0.0)
}

func TestSaveWritesCSVHeaderAndRows(t *testing.T) {
	r := trainer.NewResult("solver=sg")
	var statuses []trainer.Status
	for i := 0; i < 3; i++ {
		s := trainer.State{
			Epoch: i + 1,
			Train: trainer.MeasureStat{Value: 1.0 / float64(i+1)},
			Valid: trainer.MeasureStat{Value: 1.0 / float64(i+1)},
		}
		statuses = append(statuses, r.Update([]float64{0}, s, 10, 0))
	}

	path := t.TempDir() + "/history.csv"
	require.NoError(t, r.Save(path, statuses))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "epoch,wall_time_ms,train_value")
	require.Contains(t, string(data), "solver=sg")
}

func TestCheckpointRoundTrip(t *testing.T) {
	r := trainer.NewResult("cfg")
	r.Update([]float64{1, 2, 3}, trainer.State{Epoch: 1, Valid: trainer.MeasureStat{Value: 0.5}}, 2, 0)
	r.Update([]float64{4, 5, 6}, trainer.State{Epoch: 2, Valid: trainer.MeasureStat{Value: 0.4}}, 2, 0)

	ck := trainer.NewCheckpoint(r)
	path := t.TempDir() + "/run.gob"
	require.NoError(t, ck.Save(path))

	loaded, err := trainer.LoadCheckpoint(path)
	require.NoError(t, err)
	require.Equal(t, ck.OptParams, loaded.OptParams)

	resumed := trainer.Resume(loaded)
	require.Equal(t, r.OptimumParams(), resumed.OptimumParams())
}
