// Package token provides the positional types shared between the scanner
// and the tools that consume its output.
package token

import (
	"fmt"
	"strconv"
)

// A Span is a half-open byte range [Start, End) within a scanned sequence.
// Spans are plain offsets: nothing ties a Span to the sequence it was
// computed from, and mutating that sequence afterwards leaves the Span
// pointing at bytes that no longer mean what they did.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// IsZero reports whether s is the zero value.
func (s Span) IsZero() bool { return s == Span{} }

// Cut applies the span to b and returns the sub-slice it bounds. The
// result aliases b's storage. Cut panics if the span does not fit in b.
func (s Span) Cut(b []byte) []byte { return b[s.Start:s.End] }

// String returns the span in [start,end) form.
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Position describes where a scanned sequence came from. The zero value
// of Position means the origin is unknown.
type Position struct {
	Filename string // origin filename, or empty when unknown
	Line     int    // line number within the origin, starting at 1
	Column   int    // byte column within the line, starting at 1
}

// IsValid reports whether the position points at a line.
func (p Position) IsValid() bool { return p.Line > 0 }

// String returns the position in file:line:column form. Missing parts are
// omitted; a completely unknown position renders as "-".
func (p Position) String() string {
	s := p.Filename
	if p.Line > 0 {
		if s != "" {
			s += ":"
		}
		s += strconv.Itoa(p.Line)
		if p.Column > 0 {
			s += ":" + strconv.Itoa(p.Column)
		}
	}
	if s == "" {
		s = "-"
	}
	return s
}
