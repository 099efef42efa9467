package stochastic_test

import (
	"errors"
	"testing"

	"github.com/go-nanocv/nanocv/objective"
	"github.com/go-nanocv/nanocv/stochastic"
	"github.com/stretchr/testify/require"
)

func TestConfigBuildUnknownTypeIsInvalidConfig(t *testing.T) {
	cfg := stochastic.Config{Type: "not-an-algorithm"}
	_, _, err := cfg.Build()
	require.Error(t, err)
	require.True(t, errors.Is(err, objective.ErrInvalidConfig))
}
