package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MicroKiss/Simplifier/geom"
	"github.com/MicroKiss/Simplifier/simplify"
	"github.com/MicroKiss/Simplifier/stl"
)

// defaultOutputPath builds "<input>_simplified<suffix>.stl" next to
// the input file, the same naming scheme the original falls back to
// when no explicit output path is given.
func defaultOutputPath(inputPath, suffix string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + "_simplified" + suffix + ext
}

func writeBinary(path string, tris []geom.Triangle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return stl.WriteBinary(f, tris)
}

func runSimpleMode(p Params, log appLogger) error {
	log.Log("Loading %s", p.InputPath)
	data, err := os.ReadFile(p.InputPath)
	if err != nil {
		return err
	}
	mesh, err := stl.DetectAndRead(data)
	if err != nil {
		return err
	}
	log.Log("Input mesh contains %d faces", len(mesh))
	log.Log("Simplifying to %d%% of original...", int(p.Factor*100))

	var simplified []geom.Triangle
	dur := timeIt(func() {
		simplified = simplify.Simplify(mesh, p.Factor)
	})

	log.Log("Simplification took %d ms", dur.Milliseconds())
	log.Log("Output mesh contains %d faces. Actual factor: %v",
		len(simplified), float64(len(simplified))/float64(len(mesh)))

	out := p.OutputPath
	if out == "" {
		out = defaultOutputPath(p.InputPath, "")
	}

	log.Log("Writing %s", out)
	return writeBinary(out, simplified)
}

type iterationStat struct {
	faces int
	ms    int64
}

func runIterativeMode(p Params, log appLogger) error {
	log.Log("Loading %s", p.InputPath)
	data, err := os.ReadFile(p.InputPath)
	if err != nil {
		return err
	}
	mesh, err := stl.DetectAndRead(data)
	if err != nil {
		return err
	}
	log.Log("Input mesh contains %d faces", len(mesh))
	log.Log("Simplifying...")

	var stats []iterationStat
	previous := mesh
	converged := false

	for iteration := 0; iteration < p.Iterations; iteration++ {
		var simplified []geom.Triangle
		dur := timeIt(func() {
			simplified = simplify.Simplify(previous, p.Factor)
		})
		stats = append(stats, iterationStat{faces: len(simplified), ms: dur.Milliseconds()})

		if len(stats) >= 2 && stats[len(stats)-1].faces == stats[len(stats)-2].faces {
			converged = true
			break
		}

		outName := defaultOutputPath(p.InputPath, strconv.Itoa(iteration+1))
		if err := writeBinary(outName, simplified); err != nil {
			return err
		}
		previous = simplified
	}

	for i, s := range stats {
		log.Log("Iteration %d | %d faces | duration: %d ms", i+1, s.faces, s.ms)
	}
	if converged {
		log.Log("No further simplification possible")
	}
	return nil
}
