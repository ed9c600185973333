package simplify

import (
	"github.com/MicroKiss/Simplifier/geom"
	"github.com/MicroKiss/Simplifier/meshgraph"
)

// Extract walks every vertex's incidence list and collects each
// surviving face exactly once, in the order the vertex arena was built
// — including vertices that have themselves been retired, since a
// retired vertex's Faces list still holds the faces that outlived it
// by being handed off to its replacement. Each surviving face is
// emitted as a flat geom.Triangle, discarding all graph structure.
func Extract(g *meshgraph.Graph) []geom.Triangle {
	seen := make(map[*meshgraph.Face]bool)
	var out []geom.Triangle
	for _, v := range g.Vertices {
		for _, f := range v.Faces {
			if seen[f] {
				continue
			}
			seen[f] = true
			if f.Removed {
				continue
			}
			out = append(out, geom.Triangle{V1: f.V1.Position, V2: f.V2.Position, V3: f.V3.Position})
		}
	}
	return out
}
