package stl

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/MicroKiss/Simplifier/geom"
)

const (
	headerSize    = 84 // 80 free-form bytes + uint32 triangle count
	triangleSize  = 50 // 12 float32 + uint16 attribute byte count
	headerPadding = 80
)

type binaryTriangle struct {
	Normal             [3]float32
	V1, V2, V3         [3]float32
	AttributeByteCount uint16
}

// ReadBinary parses a binary STL stream into a flat triangle list. The
// per-triangle normal and attribute byte count are read but discarded:
// callers always recompute normals from vertex order.
func ReadBinary(r io.Reader) ([]geom.Triangle, error) {
	var pad [headerPadding]byte
	if _, err := io.ReadFull(r, pad[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
	}

	out := make([]geom.Triangle, 0, count)
	for i := uint32(0); i < count; i++ {
		var rec binaryTriangle
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncatedTriangle, err)
		}
		out = append(out, geom.Triangle{
			V1: vecFromFloat32(rec.V1),
			V2: vecFromFloat32(rec.V2),
			V3: vecFromFloat32(rec.V3),
		})
	}
	return out, nil
}

// WriteBinary writes tris as a binary STL stream, recomputing each
// triangle's normal from its vertex order rather than trusting any
// caller-supplied one.
func WriteBinary(w io.Writer, tris []geom.Triangle) error {
	var header [headerPadding]byte
	copy(header[:], "Generated by Simplifier")
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tris))); err != nil {
		return err
	}

	for _, t := range tris {
		rec := binaryTriangle{
			Normal: float32Of(t.Normal()),
			V1:     float32Of(t.V1),
			V2:     float32Of(t.V2),
			V3:     float32Of(t.V3),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}
	return nil
}

func vecFromFloat32(a [3]float32) geom.Vec3 {
	return geom.Vec3{X: float64(a[0]), Y: float64(a[1]), Z: float64(a[2])}
}

func float32Of(v geom.Vec3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// looksBinary reports whether data's declared binary-STL triangle
// count is consistent with its length — the same sniffing heuristic
// DetectAndRead uses instead of trusting the "solid" keyword, which
// malformed binary files are known to also start with.
func looksBinary(data []byte) bool {
	if len(data) < headerSize {
		return false
	}
	count := binary.LittleEndian.Uint32(data[headerPadding:headerSize])
	return headerSize+int(count)*triangleSize == len(data)
}
