// Package initwfn implements parameter initialization strategies as a
// JSON Type+Config registry, adapted from the teacher's gorgonia.InitWFn
// wrapper of the same name to operate on plain []float64 parameter
// buffers instead (SPEC_FULL.md's Non-goal excludes autodiff, and with
// it gorgonia's graph-node weight initializers).
package initwfn

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"reflect"

	"github.com/go-nanocv/nanocv/objective"
)

// Type names an initialization strategy.
type Type string

const (
	GlorotU  Type = "GlorotU"
	GlorotN  Type = "GlorotN"
	HeU      Type = "HeU"
	HeN      Type = "HeN"
	Gaussian Type = "Gaussian"
	Uniform  Type = "Uniform"
	Zeroes   Type = "Zeroes"
	Ones     Type = "Ones"
	Constant Type = "Constant"
)

// InitFn fills dst with initial parameter values given the layer's
// fan-in and fan-out (used by the scale-aware strategies).
type InitFn func(rng *rand.Rand, fanIn, fanOut int, dst []float64)

// Config produces an InitFn and validates it is being built under its
// own declared Type (the UnmarshalJSON registry below relies on this to
// catch a mismatched "type" JSON field).
type Config interface {
	Create() InitFn
	ValidType(Type) bool
}

// InitWFn is a JSON-serializable initialization strategy: a Type tag plus
// the Config that parameterizes it, mirroring the teacher's
// initwfn.InitWFn / solver.Solver reflect-based registry idiom.
type InitWFn struct {
	Type
	Config
}

// Apply fills dst using the wrapped strategy.
func (w *InitWFn) Apply(rng *rand.Rand, fanIn, fanOut int, dst []float64) {
	w.Config.Create()(rng, fanIn, fanOut, dst)
}

// New validates t against c and returns the wrapped InitWFn.
func New(t Type, c Config) (*InitWFn, error) {
	if !c.ValidType(t) {
		return nil, fmt.Errorf("initwfn: invalid_config: type %v for configuration %T: %w", t, c, objective.ErrInvalidConfig)
	}
	return &InitWFn{Type: t, Config: c}, nil
}

var registry = map[Type]reflect.Type{
	GlorotU:  reflect.TypeOf(GlorotUConfig{}),
	GlorotN:  reflect.TypeOf(GlorotNConfig{}),
	HeU:      reflect.TypeOf(HeUConfig{}),
	HeN:      reflect.TypeOf(HeNConfig{}),
	Gaussian: reflect.TypeOf(GaussianConfig{}),
	Uniform:  reflect.TypeOf(UniformConfig{}),
	Zeroes:   reflect.TypeOf(ZeroesConfig{}),
	Ones:     reflect.TypeOf(OnesConfig{}),
	Constant: reflect.TypeOf(ConstantConfig{}),
}

// UnmarshalJSON implements json.Unmarshaler, dispatching on the "Type"
// field to the concrete Config type registered for it.
func (w *InitWFn) UnmarshalJSON(data []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var typeName Type
	if err := json.Unmarshal(m["Type"], &typeName); err != nil {
		return err
	}
	ty, ok := registry[typeName]
	if !ok {
		return fmt.Errorf("initwfn: invalid_config: unknown type %q: %w", typeName, objective.ErrInvalidConfig)
	}
	value := reflect.New(ty).Interface().(Config)
	if raw, ok := m["Config"]; ok {
		if err := json.Unmarshal(raw, value); err != nil {
			return err
		}
	}
	w.Type = typeName
	w.Config = value
	return nil
}
