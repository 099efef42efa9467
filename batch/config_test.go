package batch_test

import (
	"errors"
	"testing"

	"github.com/go-nanocv/nanocv/batch"
	"github.com/go-nanocv/nanocv/objective"
	"github.com/stretchr/testify/require"
)

func TestConfigBuildUnknownTypeIsInvalidConfig(t *testing.T) {
	cfg := batch.Config{Type: "not-a-solver"}
	_, _, err := cfg.Build()
	require.Error(t, err)
	require.True(t, errors.Is(err, objective.ErrInvalidConfig))
}
