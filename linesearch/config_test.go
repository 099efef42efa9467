package linesearch_test

import (
	"errors"
	"testing"

	"github.com/go-nanocv/nanocv/linesearch"
	"github.com/go-nanocv/nanocv/objective"
	"github.com/stretchr/testify/require"
)

func TestInitConfigBuildUnknownKindIsInvalidConfig(t *testing.T) {
	cfg := linesearch.InitConfig{Kind: "not-an-init"}
	_, err := cfg.Build()
	require.Error(t, err)
	require.True(t, errors.Is(err, objective.ErrInvalidConfig))
}

func TestStrategyConfigBuildUnknownKindIsInvalidConfig(t *testing.T) {
	cfg := linesearch.StrategyConfig{Kind: "not-a-strategy"}
	_, err := cfg.Build()
	require.Error(t, err)
	require.True(t, errors.Is(err, objective.ErrInvalidConfig))
}
