// Command nanocv is a thin CLI wrapper over the core optimization and
// training packages, per spec.md §6: commands forward flags as JSON/YAML
// configuration to the core and exit 0 on success, non-zero on error.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "info":
		err = runInfo()
	case "example":
		err = runExample()
	case "train":
		fs := flag.NewFlagSet("train", flag.ExitOnError)
		cfgPath := fs.String("config", "", "path to a YAML/JSON training config")
		fs.Parse(os.Args[2:])
		if *cfgPath == "" {
			err = errors.New("train: invalid_config: -config is required")
		} else {
			err = runTrain(*cfgPath)
		}
	case "benchmark_batch":
		fs := flag.NewFlagSet("benchmark_batch", flag.ExitOnError)
		fn := fs.String("fn", "sphere", "benchmark function: rosenbrock, sphere, beale")
		fs.Parse(os.Args[2:])
		err = runBenchmarkBatch(*fn)
	case "benchmark_stoch":
		fs := flag.NewFlagSet("benchmark_stoch", flag.ExitOnError)
		fn := fs.String("fn", "quadratic", "benchmark function")
		fs.Parse(os.Args[2:])
		err = runBenchmarkStoch(*fn)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: nanocv <info|example|train|benchmark_batch|benchmark_stoch> [flags]")
}
