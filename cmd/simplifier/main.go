// Command simplifier reduces the triangle count of an STL mesh using
// greedy quadric-error-metric edge collapse.
package main

import (
	"fmt"
	"os"
)

func main() {
	log := appLogger{}

	p, err := parseParams(os.Args[1:])
	if err != nil {
		log.Error("%v", err)
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(1)
	}

	if err := run(p, log); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func run(p Params, log appLogger) error {
	switch p.Mode {
	case ModeSimple:
		return runSimpleMode(p, log)
	case ModeIterative:
		return runIterativeMode(p, log)
	default:
		return fmt.Errorf("unknown mode: %v", p.Mode)
	}
}
