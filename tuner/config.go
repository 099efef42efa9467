package tuner

import "encoding/json"

// Config is the JSON-serialised form of a Trial, per spec.md §4.6's
// "get() returns a JSON-serialised configuration".
type Config struct {
	ID     string             `json:"id"`
	Values map[string]float64 `json:"values"`
	Depth  int                `json:"depth"`
}

// JSON marshals the trial as a Config.
func (t *Trial) JSON() ([]byte, error) {
	return json.Marshal(Config{ID: t.ID, Values: t.Values, Depth: t.Depth})
}
