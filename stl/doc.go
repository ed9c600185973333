// Package stl reads and writes the STL triangle-mesh file format in
// both its binary and ASCII variants.
//
// Binary STL is an 80-byte free-form header, a little-endian uint32
// triangle count, and one 50-byte record per triangle (a float32
// normal, three float32 vertex positions, and a uint16 attribute byte
// count this package always writes as zero and ignores on read).
// ASCII STL carries the same triangles as whitespace-separated
// "vertex x y z" lines in multiples of three; this package does not
// validate the surrounding "facet"/"outer loop"/"endloop" structure,
// matching the tolerant line-scanning the format is usually read with.
package stl
