package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Mode selects which driver run uses.
type Mode int

const (
	ModeSimple Mode = iota
	ModeIterative
)

// Params holds one fully validated invocation of the simplifier.
type Params struct {
	InputPath  string
	OutputPath string
	Factor     float64
	Mode       Mode
	Iterations int
}

func defaultParams() Params {
	return Params{Factor: 0.5, Mode: ModeSimple, Iterations: 1}
}

const usageText = `Usage:
    example:
        simplifier factor=0.1 in=input.stl out=output.stl
        simplifier in=dragon.stl mode=iterative iterations=5
    params:
        - in: input file path
        - out: output file path             [optional, default=<input>_simplified.stl]
        - factor: 0-1, both exclusive       [optional, default=0.5]
        - mode: simple|iterative            [optional, default=simple]
        - iterations: number of iterations  [optional, default=1] (only for iterative mode)
`

// parseParams parses the "key=value" argument grammar the original
// tool uses (no leading dashes), which the standard flag package
// cannot express, and validates the result.
func parseParams(args []string) (Params, error) {
	p := defaultParams()
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "in="):
			p.InputPath = strings.TrimPrefix(arg, "in=")
		case strings.HasPrefix(arg, "out="):
			p.OutputPath = strings.TrimPrefix(arg, "out=")
		case strings.HasPrefix(arg, "factor="):
			f, err := strconv.ParseFloat(strings.TrimPrefix(arg, "factor="), 64)
			if err != nil {
				return Params{}, fmt.Errorf("invalid factor: %w", err)
			}
			p.Factor = f
		case strings.HasPrefix(arg, "mode="):
			switch m := strings.TrimPrefix(arg, "mode="); m {
			case "simple":
				p.Mode = ModeSimple
			case "iterative":
				p.Mode = ModeIterative
			default:
				return Params{}, fmt.Errorf("unknown mode: %s", m)
			}
		case strings.HasPrefix(arg, "iterations="):
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "iterations="))
			if err != nil {
				return Params{}, fmt.Errorf("invalid iterations: %w", err)
			}
			p.Iterations = n
		default:
			return Params{}, fmt.Errorf("unknown argument: %s", arg)
		}
	}

	if p.InputPath == "" {
		return Params{}, fmt.Errorf("input file path is required")
	}
	if p.Iterations < 1 {
		return Params{}, fmt.Errorf("invalid number of iterations: %d", p.Iterations)
	}
	if p.Factor <= 0 || p.Factor >= 1 {
		return Params{}, fmt.Errorf("invalid factor: %v", p.Factor)
	}
	if info, err := os.Stat(p.InputPath); err != nil || info.IsDir() {
		return Params{}, fmt.Errorf("invalid input path: %s", p.InputPath)
	}
	// Unlike the original, the output path is not required to already
	// exist: it is a write target, not an input. A directory at that
	// path is still rejected since it can never be a valid write target.
	if p.OutputPath != "" {
		if info, err := os.Stat(p.OutputPath); err == nil && info.IsDir() {
			return Params{}, fmt.Errorf("invalid output path: %s", p.OutputPath)
		}
	}

	return p, nil
}
