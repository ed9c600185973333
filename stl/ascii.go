package stl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MicroKiss/Simplifier/geom"
)

// ReadASCII parses an ASCII STL stream. It scans every line for the
// shape "vertex x y z" and ignores everything else (solid/endsolid,
// facet normal, outer loop/endloop, whitespace) — the same tolerant
// approach most STL readers take, since the facet scaffolding carries
// no information ReadASCII needs.
func ReadASCII(r io.Reader) ([]geom.Triangle, error) {
	var verts []geom.Vec3
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 4 || fields[0] != "vertex" {
			continue
		}
		v, err := parseVertex(fields[1:])
		if err != nil {
			return nil, err
		}
		verts = append(verts, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(verts)%3 != 0 {
		return nil, ErrTruncatedASCIIVertex
	}

	out := make([]geom.Triangle, 0, len(verts)/3)
	for i := 0; i+2 < len(verts); i += 3 {
		out = append(out, geom.Triangle{V1: verts[i], V2: verts[i+1], V3: verts[i+2]})
	}
	return out, nil
}

func parseVertex(fields []string) (geom.Vec3, error) {
	vals := make([]float64, 3)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geom.Vec3{}, fmt.Errorf("stl: invalid vertex coordinate %q: %w", f, err)
		}
		vals[i] = v
	}
	return geom.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// WriteASCII writes tris in the "solid .. facet normal .. endsolid"
// textual STL form.
func WriteASCII(w io.Writer, name string, tris []geom.Triangle) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "solid %s\n", name); err != nil {
		return err
	}
	for _, t := range tris {
		n := t.Normal()
		fmt.Fprintf(bw, "facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintln(bw, "outer loop")
		for _, v := range []geom.Vec3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintln(bw, "endloop")
		fmt.Fprintln(bw, "endfacet")
	}
	if _, err := fmt.Fprintf(bw, "endsolid %s\n", name); err != nil {
		return err
	}
	return bw.Flush()
}
