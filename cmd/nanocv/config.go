package main

import (
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// RunConfig is the top-level YAML/JSON configuration for the train and
// benchmark_* commands, per spec.md §6's "configuration produced/consumed"
// boundary: all tunable components read/write JSON objects, so RunConfig's
// nested structs carry `json` tags and are dispatched through the same
// Type+Config registries as the rest of the core.
type RunConfig struct {
	Family    string                 `mapstructure:"family" json:"family" yaml:"family"` // "batch" or "stochastic"
	Solver    map[string]interface{} `mapstructure:"solver" json:"solver" yaml:"solver"`
	Epochs    int                    `mapstructure:"epochs" json:"epochs" yaml:"epochs"`
	Patience  int                    `mapstructure:"patience" json:"patience" yaml:"patience"`
	Accuracy  float64                `mapstructure:"accuracy" json:"accuracy" yaml:"accuracy"`
	Out       string                 `mapstructure:"out" json:"out" yaml:"out"`
	Benchmark string                 `mapstructure:"benchmark" json:"benchmark" yaml:"benchmark"`
	Seed      int64                  `mapstructure:"seed" json:"seed" yaml:"seed"`
}

// defaultRunConfig returns the RunConfig used as the starting point for
// the "example" subcommand's scaffold, a small Adam stochastic run.
func defaultRunConfig() *RunConfig {
	return &RunConfig{
		Family: "stochastic",
		Solver: map[string]interface{}{
			"type":   "adam",
			"alpha0": 0.001,
			"beta1":  0.9,
			"beta2":  0.999,
		},
		Epochs:   50,
		Patience: 5,
		Accuracy: 0.01,
		Out:      "run.csv",
		Seed:     1,
	}
}

// exampleYAML renders defaultRunConfig as YAML, following the same
// yaml.Marshal round-trip idiom loadConfig's sibling components use to
// move a map[string]interface{} into a strict struct.
func exampleYAML() (string, error) {
	data, err := yaml.Marshal(defaultRunConfig())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// loadConfig reads a YAML (or JSON) config file at path, following the
// viper idiom of explicit SetConfigFile/SetConfigType/AddConfigPath
// rather than the package-global viper instance.
func loadConfig(path string) (*RunConfig, error) {
	vp := viper.New()
	vp.SetConfigFile(filepath.Base(path))
	vp.SetConfigType(configType(path))
	vp.AddConfigPath(filepath.Dir(path))

	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &RunConfig{}
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configType(path string) string {
	switch filepath.Ext(path) {
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}
