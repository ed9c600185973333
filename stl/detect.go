package stl

import (
	"bytes"

	"github.com/MicroKiss/Simplifier/geom"
)

// DetectAndRead sniffs whether data is binary or ASCII STL and parses
// it accordingly. Detection does not trust the "solid" keyword (binary
// STL files are allowed to start with it too, and some binary writers
// actually do): instead it checks whether data's length matches what
// the binary header's declared triangle count predicts.
func DetectAndRead(data []byte) ([]geom.Triangle, error) {
	if looksBinary(data) {
		return ReadBinary(bytes.NewReader(data))
	}
	return ReadASCII(bytes.NewReader(data))
}
