package initwfn_test

import (
	"errors"
	"testing"

	"github.com/go-nanocv/nanocv/initwfn"
	"github.com/go-nanocv/nanocv/objective"
	"github.com/stretchr/testify/require"
)

func TestNewMismatchedTypeIsInvalidConfig(t *testing.T) {
	_, err := initwfn.New(initwfn.HeU, initwfn.GlorotUConfig{Gain: 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, objective.ErrInvalidConfig))
}

func TestUnmarshalJSONUnknownTypeIsInvalidConfig(t *testing.T) {
	var w initwfn.InitWFn
	err := w.UnmarshalJSON([]byte(`{"Type":"NotAType"}`))
	require.Error(t, err)
	require.True(t, errors.Is(err, objective.ErrInvalidConfig))
}
