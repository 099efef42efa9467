package objective

import "errors"

// ErrInvalidConfig marks the invalid_config error kind of §7: a bad JSON
// payload or an out-of-range parameter, detected before any iteration
// runs. Component-specific Build/parse errors wrap this sentinel so a
// caller can discriminate it with errors.Is regardless of which
// component rejected the configuration.
var ErrInvalidConfig = errors.New("nanocv: invalid_config")

// ErrDimensionMismatch marks the dimension_mismatch error kind of §7: a
// model/task/params shape disagreement, detected before any iteration
// runs.
//
// The other five error kinds (domain, convergence_failure,
// line_search_failure, divergence, overfit_stop) are never constructed as
// error values in this module — they are classifications a solver or
// TrainerResult reports through its returned Status, per the propagation
// policy that only invalid_config and dimension_mismatch are surfaced as
// Go errors ahead of any iteration.
var ErrDimensionMismatch = errors.New("nanocv: dimension_mismatch")
