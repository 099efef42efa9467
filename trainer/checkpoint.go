package trainer

import (
	"encoding/gob"
	"os"

	"github.com/google/uuid"
)

// Checkpoint is the gob-persisted form of a Result, adapted from the
// teacher's experiment/tracker and experiment/checkpointer gob idiom
// (encode/decode via os.Open/os.Create) onto trainer state instead of RL
// timesteps.
type Checkpoint struct {
	RunID     string
	Config    string
	OptParams []float64
	OptState  State
	History   []State
}

// NewCheckpoint snapshots r under a fresh run ID.
func NewCheckpoint(r *Result) Checkpoint {
	return Checkpoint{
		RunID:     uuid.NewString(),
		Config:    r.Config,
		OptParams: append([]float64(nil), r.optParams...),
		OptState:  r.optState,
		History:   append([]State(nil), r.history...),
	}
}

// Save gob-encodes the checkpoint to path.
func (c Checkpoint) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gob.NewEncoder(file).Encode(c)
}

// LoadCheckpoint gob-decodes a Checkpoint previously written by Save.
func LoadCheckpoint(path string) (Checkpoint, error) {
	file, err := os.Open(path)
	if err != nil {
		return Checkpoint{}, err
	}
	defer file.Close()

	var c Checkpoint
	if err := gob.NewDecoder(file).Decode(&c); err != nil {
		return Checkpoint{}, err
	}
	return c, nil
}

// Resume rebuilds a Result from a checkpoint, replaying its history so
// subsequent Update calls continue the worse-streak and best-value state
// correctly.
func Resume(c Checkpoint) *Result {
	r := NewResult(c.Config)
	r.optParams = append([]float64(nil), c.OptParams...)
	r.optState = c.OptState
	r.history = append([]State(nil), c.History...)
	r.hasBest = len(c.OptParams) > 0

	streak := 0
	for _, s := range r.history {
		if s.Epoch > r.optState.Epoch {
			streak++
		}
	}
	r.worseStreak = streak
	return r
}
