package linesearch

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-nanocv/nanocv/objective"
)

// InitConfig is the strict JSON configuration for an Init, selected by
// the "init" key described in spec.md §6
// (init ∈ {unit, linear, quadratic, cgdescent}).
type InitConfig struct {
	Kind      InitType `json:"init"`
	Phi0      float64  `json:"phi0,omitempty"`
	Phi1      float64  `json:"phi1,omitempty"`
	Phi2      float64  `json:"phi2,omitempty"`
}

// Build returns the Init described by the configuration.
func (c InitConfig) Build() (Init, error) {
	switch c.Kind {
	case InitUnit, "":
		return Unit{}, nil
	case InitLinear:
		return Linear{}, nil
	case InitQuadratic:
		return Quadratic{}, nil
	case InitCGDescent:
		cg := DefaultCGDescent()
		if c.Phi0 != 0 {
			cg.Phi0 = c.Phi0
		}
		if c.Phi1 != 0 {
			cg.Phi1 = c.Phi1
		}
		if c.Phi2 != 0 {
			cg.Phi2 = c.Phi2
		}
		return cg, nil
	default:
		return nil, fmt.Errorf("linesearch: invalid_config: unknown init %q: %w", c.Kind, objective.ErrInvalidConfig)
	}
}

// StrategyType names a Strategy family, matching the "strat" key in
// spec.md §6 (strat ∈ {backtrack, interpolation, cgdescent}).
type StrategyType string

const (
	StratBacktrack     StrategyType = "backtrack"
	StratInterpolation StrategyType = "interpolation"
	StratCGDescent     StrategyType = "cgdescent"
)

// StrategyConfig is the strict JSON configuration for a Strategy.
type StrategyConfig struct {
	Kind    StrategyType     `json:"strat"`
	Variant BacktrackVariant `json:"variant,omitempty"`
	C1      float64          `json:"c1,omitempty"`
	C2      float64          `json:"c2,omitempty"`
	History int              `json:"history,omitempty"`
}

// Conditions returns the (c1, c2) pair described by the configuration,
// falling back to the quasi-Newton defaults if unset.
func (c StrategyConfig) Conditions() Conditions {
	cond := DefaultConditions()
	if c.C1 != 0 {
		cond.C1 = c.C1
	}
	if c.C2 != 0 {
		cond.C2 = c.C2
	}
	return cond
}

// Build returns the Strategy described by the configuration.
func (c StrategyConfig) Build() (Strategy, error) {
	switch c.Kind {
	case StratBacktrack, "":
		variant := c.Variant
		if variant == "" {
			variant = Armijo
		}
		return Backtrack{Variant: variant, Rho: 0.5, MaxIter: 64}, nil
	case StratInterpolation:
		return DefaultInterpolation(), nil
	case StratCGDescent:
		return DefaultHagerZhang(), nil
	default:
		return nil, fmt.Errorf("linesearch: invalid_config: unknown strat %q: %w", c.Kind, objective.ErrInvalidConfig)
	}
}

// DecodeStrict unmarshals data into v, rejecting unknown JSON fields per
// spec.md §6's "Unknown keys are errors (strict parsing)".
func DecodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
