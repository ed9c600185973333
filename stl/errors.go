package stl

import "errors"

var (
	// ErrTruncatedHeader is returned when a binary STL file ends before
	// its 84-byte header (80 free-form bytes plus the uint32 count) has
	// been fully read.
	ErrTruncatedHeader = errors.New("stl: truncated binary header")

	// ErrTruncatedTriangle is returned when a binary STL file's declared
	// triangle count promises more 50-byte records than the file
	// actually contains.
	ErrTruncatedTriangle = errors.New("stl: truncated binary triangle record")

	// ErrTruncatedASCIIVertex is returned when an ASCII STL file's
	// "vertex" lines do not come in complete groups of three.
	ErrTruncatedASCIIVertex = errors.New("stl: truncated ASCII vertex group")
)
