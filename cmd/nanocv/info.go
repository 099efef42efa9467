package main

import (
	"fmt"

	"github.com/pkg/errors"
)

const moduleVersion = "0.1.0"

// runInfo prints the available solver families and algorithms, a thin
// stand-in for the original nanocv binary's --info listing.
func runInfo() error {
	fmt.Printf("nanocv %s\n", moduleVersion)
	fmt.Println("batch solvers:      gd, cgd, lbfgs")
	fmt.Println("stochastic solvers: sg, sgm, ag, agfr, aggr, adagrad, adadelta, rmsprop, adam, svrg, sia, sga")
	fmt.Println("benchmark functions: rosenbrock, sphere, beale")
	return nil
}

// runExample prints a starter YAML config for the train subcommand.
func runExample() error {
	out, err := exampleYAML()
	if err != nil {
		return errors.Wrap(err, "example")
	}
	fmt.Print(out)
	return nil
}
