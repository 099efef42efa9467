package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-nanocv/nanocv/accumulator"
	"github.com/go-nanocv/nanocv/batch"
	"github.com/go-nanocv/nanocv/linesearch"
	"github.com/go-nanocv/nanocv/loss"
	"github.com/go-nanocv/nanocv/model"
	"github.com/go-nanocv/nanocv/objective"
	"github.com/go-nanocv/nanocv/stochastic"
	"github.com/go-nanocv/nanocv/task"
	"github.com/go-nanocv/nanocv/trainer"
	"github.com/pkg/errors"
)

// runTrain builds the default demo model/task pair (a synthetic
// classification task, since concrete dataset loaders are out of scope per
// spec.md §2/Non-goals), wraps it in an Accumulator per fold, and drives
// either a batch or stochastic solver, tracking progress with a
// trainer.Result.
func runTrain(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return errors.Wrap(err, "train: invalid_config")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	idims := model.Dims3{Maps: 1, Rows: 1, Cols: 8}
	classes := 3
	tk := task.NewSynthetic(rng, idims, classes, map[task.Fold]int{
		task.Train: 256,
		task.Valid: 64,
		task.Test:  64,
	})

	net := model.NewSequential(
		&model.Affine{ISize: idims.Size(), OSize: 16},
		&model.Activation{Kind: model.Tanh, Dims: model.Dims3{Maps: 1, Rows: 1, Cols: 16}},
		&model.Affine{ISize: 16, OSize: classes},
	)
	net.Random(rng)

	trainAcc := accumulator.New(net.Clone(), loss.CrossEntropy{}, tk, task.Train)
	validAcc := accumulator.New(net.Clone(), loss.CrossEntropy{}, tk, task.Valid)
	testAcc := accumulator.New(net.Clone(), loss.CrossEntropy{}, tk, task.Test)

	x0 := mustParamsVec(net)
	result := trainer.NewResult(solverTypeString(cfg.Solver))

	start := time.Now()
	var statuses []trainer.Status
	epochCb := func(epoch int, params []float64, trainValue, trainError float64) (trainer.Status, error) {
		validValue := validAcc.Eval(vecOf(params), newVec(len(params)))
		validError := validAcc.Error(vecOf(params))
		testValue := testAcc.Eval(vecOf(params), newVec(len(params)))
		testError := testAcc.Error(vecOf(params))

		st := trainer.State{
			Epoch:    epoch,
			WallTime: time.Since(start),
			Train:    trainer.MeasureStat{Value: trainValue, Error: trainError},
			Valid:    trainer.MeasureStat{Value: validValue, Error: validError},
			Test:     trainer.MeasureStat{Value: testValue, Error: testError},
		}
		status := result.Update(params, st, cfg.Patience, cfg.Accuracy)
		statuses = append(statuses, status)
		return status, nil
	}

	switch cfg.Family {
	case "", "batch":
		if err := runBatchTrain(trainAcc, x0, cfg, epochCb); err != nil {
			return err
		}
	case "stochastic":
		if err := runStochasticTrain(trainAcc, x0, cfg, epochCb); err != nil {
			return err
		}
	default:
		return errors.Errorf("train: invalid_config: unknown family %q", cfg.Family)
	}

	fmt.Printf("optimum epoch=%d train=%.6g valid=%.6g speed=%.4g/s\n",
		result.OptimumEpoch(), result.OptimumState().Train.Value,
		result.OptimumState().Valid.Value, result.ConvergenceSpeed())

	if cfg.Out != "" {
		if err := result.Save(cfg.Out, statuses); err != nil {
			return errors.Wrap(err, "train")
		}
	}
	return nil
}

func mustParamsVec(net model.Model) []float64 {
	return append([]float64(nil), net.Params()...)
}

func solverTypeString(solver map[string]interface{}) string {
	t, _ := solver["type"].(string)
	return t
}

func runBatchTrain(fn objective.Function, x0 []float64, cfg *RunConfig, cb epochFunc) error {
	if len(x0) != fn.Size() {
		return errors.Wrapf(objective.ErrDimensionMismatch, "train: x0 has %d entries, want %d", len(x0), fn.Size())
	}

	var bc batch.Config
	if err := decodeSolverConfig(cfg.Solver, &bc); err != nil {
		return err
	}
	dir, opts, err := bc.Build()
	if err != nil {
		return errors.Wrap(err, "train")
	}
	if cfg.Epochs > 0 {
		opts.MaxIters = cfg.Epochs
	}

	state := objective.NewState(fn, vecOf(x0))
	final := batch.Solve(fn, state, dir, opts)
	cb(final.Iterations, toSlice(final), final.F, 0)
	return nil
}

func runStochasticTrain(fn objective.Stochastic, x0 []float64, cfg *RunConfig, cb epochFunc) error {
	if len(x0) != fn.Size() {
		return errors.Wrapf(objective.ErrDimensionMismatch, "train: x0 has %d entries, want %d", len(x0), fn.Size())
	}

	var sc stochastic.Config
	if err := decodeSolverConfig(cfg.Solver, &sc); err != nil {
		return err
	}
	algo, opts, err := sc.Build()
	if err != nil {
		return errors.Wrap(err, "train")
	}
	if cfg.Epochs > 0 {
		opts.Epochs = cfg.Epochs
	}

	state := objective.NewState(fn, vecOf(x0))
	final := stochastic.Solve(fn, state, algo, opts)
	cb(final.Iterations, toSlice(final), final.F, 0)
	return nil
}

type epochFunc func(epoch int, params []float64, trainValue, trainError float64) (trainer.Status, error)

func decodeSolverConfig(raw map[string]interface{}, out interface{}) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return linesearch.DecodeStrict(data, out)
}
