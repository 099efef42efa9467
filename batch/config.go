package batch

import (
	"fmt"

	"github.com/go-nanocv/nanocv/linesearch"
	"github.com/go-nanocv/nanocv/objective"
)

// SolverType names a batch solver family, matching the teacher's
// Type+Config JSON registry idiom (solver/Solver.go).
type SolverType string

const (
	TypeGD    SolverType = "GD"
	TypeCGD   SolverType = "CGD"
	TypeLBFGS SolverType = "LBFGS"
)

// Config is the strict JSON configuration for a BatchSolver: common
// line-search keys (§6: c1, c2, init, strat, history) plus the CGD
// variant or L-BFGS history length.
type Config struct {
	Type      SolverType            `json:"type"`
	Init      linesearch.InitConfig `json:"init"`
	Strategy  linesearch.StrategyConfig `json:"strategy"`
	Variant   BetaVariant           `json:"variant,omitempty"`
	History   int                   `json:"history,omitempty"`
	Orthotest float64               `json:"orthotest,omitempty"`
	Eps       float64               `json:"eps,omitempty"`
	MaxIters  int                   `json:"maxIters,omitempty"`
}

// Build constructs the Direction and Options described by the Config.
func (c Config) Build() (Direction, Options, error) {
	init, err := c.Init.Build()
	if err != nil {
		return nil, Options{}, fmt.Errorf("batch: %w", err)
	}
	strat, err := c.Strategy.Build()
	if err != nil {
		return nil, Options{}, fmt.Errorf("batch: %w", err)
	}

	opts := Options{
		Init:       init,
		Strategy:   strat,
		Conditions: c.Strategy.Conditions(),
		Eps:        c.Eps,
		MaxIters:   c.MaxIters,
	}

	var dir Direction
	switch c.Type {
	case TypeGD, "":
		dir = GD{}
	case TypeCGD:
		dir = CGD{Variant: c.Variant, Orthotest: c.Orthotest}
	case TypeLBFGS:
		dir = &LBFGS{History: c.History}
	default:
		return nil, Options{}, fmt.Errorf("batch: invalid_config: unknown solver type %q: %w", c.Type, objective.ErrInvalidConfig)
	}

	return dir, opts, nil
}
