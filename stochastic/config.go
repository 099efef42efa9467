package stochastic

import (
	"fmt"

	"github.com/go-nanocv/nanocv/objective"
)

// AlgorithmType names a stochastic Algorithm family, matching spec.md §6's
// tunable-component JSON keys for the stochastic solver family.
type AlgorithmType string

const (
	TypeSG       AlgorithmType = "sg"
	TypeSGM      AlgorithmType = "sgm"
	TypeAG       AlgorithmType = "ag"
	TypeAGFR     AlgorithmType = "agfr"
	TypeAGGR     AlgorithmType = "aggr"
	TypeAdaGrad  AlgorithmType = "adagrad"
	TypeAdaDelta AlgorithmType = "adadelta"
	TypeRMSProp  AlgorithmType = "rmsprop"
	TypeAdam     AlgorithmType = "adam"
	TypeSVRG     AlgorithmType = "svrg"
	TypeSIA      AlgorithmType = "sia"
	TypeSGA      AlgorithmType = "sga"
)

// Config is the strict JSON configuration for a stochastic Algorithm and
// its learning-rate schedule, keyed by the common attributes of spec.md
// §6: {alpha0, decay, beta1, beta2, epsilon, momentum}.
type Config struct {
	Type AlgorithmType `json:"type"`

	Alpha0 float64 `json:"alpha0,omitempty"`
	Decay  float64 `json:"decay,omitempty"`
	Tau    float64 `json:"tau,omitempty"`

	Beta1    float64 `json:"beta1,omitempty"`
	Beta2    float64 `json:"beta2,omitempty"`
	Momentum float64 `json:"momentum,omitempty"`
	Epsilon  float64 `json:"epsilon,omitempty"`

	Epochs        int `json:"epochs,omitempty"`
	EpochSize     int `json:"epochSize,omitempty"`
	SnapshotEvery int `json:"snapshotEvery,omitempty"`

	Eps float64 `json:"eps,omitempty"`
}

func (c Config) tau() float64 {
	if c.Tau <= 0 {
		return 1
	}
	return c.Tau
}

// Build constructs the Algorithm and Options described by the Config.
func (c Config) Build() (Algorithm, Options, error) {
	lrate := LRate{Alpha0: c.Alpha0, Gamma: c.Decay, Tau: c.tau()}
	if lrate.Alpha0 <= 0 {
		lrate.Alpha0 = 0.01
	}

	opts := Options{
		LRate:     lrate,
		Epochs:    c.Epochs,
		EpochSize: c.EpochSize,
		Eps:       c.Eps,
	}

	var algo Algorithm
	switch c.Type {
	case TypeSG, "":
		algo = SG{}
	case TypeSGM:
		algo = &SGM{Beta: c.Momentum}
	case TypeAG:
		algo = &AG{Variant: AGPlain}
	case TypeAGFR:
		algo = &AG{Variant: AGFR}
	case TypeAGGR:
		algo = &AG{Variant: AGGR}
	case TypeAdaGrad:
		algo = &AdaGrad{Epsilon: c.Epsilon}
	case TypeAdaDelta:
		algo = &AdaDelta{Momentum: c.Momentum, Epsilon: c.Epsilon}
	case TypeRMSProp:
		algo = &RMSProp{Beta: c.Momentum, Epsilon: c.Epsilon}
	case TypeAdam:
		algo = &Adam{Beta1: c.Beta1, Beta2: c.Beta2, Epsilon: c.Epsilon}
	case TypeSVRG:
		algo = &SVRG{SnapshotEvery: c.SnapshotEvery}
	case TypeSIA:
		algo = &SIA{}
	case TypeSGA:
		algo = &SGA{}
	default:
		return nil, Options{}, fmt.Errorf("stochastic: invalid_config: unknown type %q: %w", c.Type, objective.ErrInvalidConfig)
	}

	return algo, opts, nil
}
