// Package fieldscan implements a high-level API for locating the first
// delimiter-bounded field of a piece of text. A field is a maximal run
// of bytes containing no delimiter; the delimiter is the ASCII space
// byte.
//
// Lower-level APIs which give more control over scanning and over the
// lifetime of the scanned bytes are available in the inner packages.
// The scanner package locates boundaries over raw byte slices without
// copying, and the view package adds runtime staleness checking for
// callers who hold windows into buffers that mutate. The implementation
// of this package is minimal and serves as a reference for how to
// consume the lower-level packages.
package fieldscan

import (
	"github.com/fieldscan/fieldscan/scanner"
	"github.com/fieldscan/fieldscan/token"
)

// Boundary returns the offset in s of the first delimiter byte. When s
// contains no delimiter the boundary is len(s); when s is empty it is
// 0.
func Boundary(s string) int {
	return scanner.FieldEndString(s)
}

// FirstWord returns the first field of s, the text before the first
// delimiter byte. When s contains no delimiter the whole of s is
// returned; when s starts with a delimiter the result is empty.
func FirstWord(s string) string {
	return scanner.FirstFieldString(s)
}

// Result records one scanned input together with the first-field
// boundary located in it. Input and Field are copies, so a Result stays
// valid regardless of what happens to the sequence it was scanned from.
type Result struct {
	// Position locates the scanned input, when known.
	Position token.Position

	// Input is the scanned text.
	Input string

	// Offset is the boundary: the index of the first delimiter byte in
	// Input, or len(Input) when Input contains no delimiter.
	Offset int

	// Field is the text before the boundary, Input[:Offset].
	Field string
}

// ScanString locates the first field of s. pos may be the zero Position
// when the input's origin is unknown.
func ScanString(pos token.Position, s string) Result {
	off := scanner.FieldEndString(s)
	return Result{
		Position: pos,
		Input:    s,
		Offset:   off,
		Field:    s[:off],
	}
}

// Scan locates the first field of b. The returned Result copies b, so b
// may be reused or mutated afterwards.
func Scan(pos token.Position, b []byte) Result {
	off := scanner.FieldEnd(b)
	return Result{
		Position: pos,
		Input:    string(b),
		Offset:   off,
		Field:    string(b[:off]),
	}
}
