package trainer

import (
	"encoding/csv"
	"os"
	"strconv"
)

var csvHeader = []string{
	"epoch", "wall_time_ms",
	"train_value", "train_error",
	"valid_value", "valid_error",
	"test_value", "test_error",
	"status", "config",
}

// Save writes the training history as CSV to path, one row per epoch,
// with columns epoch, wall_time_ms, train_value, train_error,
// valid_value, valid_error, test_value, test_error, status, config, per
// spec.md §6's TrainerResult persistence contract. statuses must have the
// same length as History(); it holds the classification returned by
// Update() for each recorded epoch.
func (r *Result) Save(path string, statuses []Status) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for i, s := range r.history {
		status := Failed
		if i < len(statuses) {
			status = statuses[i]
		}
		row := []string{
			strconv.Itoa(s.Epoch),
			strconv.FormatInt(s.WallTime.Milliseconds(), 10),
			strconv.FormatFloat(s.Train.Value, 'g', -1, 64),
			strconv.FormatFloat(s.Train.Error, 'g', -1, 64),
			strconv.FormatFloat(s.Valid.Value, 'g', -1, 64),
			strconv.FormatFloat(s.Valid.Error, 'g', -1, 64),
			strconv.FormatFloat(s.Test.Value, 'g', -1, 64),
			strconv.FormatFloat(s.Test.Error, 'g', -1, 64),
			status.String(),
			r.Config,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
