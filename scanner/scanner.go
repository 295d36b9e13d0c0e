// Package scanner implements delimiter-bounded substring scanning over
// in-memory byte sequences: finding the boundary of the first
// space-delimited field and carving that field out without copying.
//
// Every function here is a pure read over caller-owned storage. The
// scanner never mutates its input and never retains it past the call, but
// the zero-copy results alias the input, so their validity is bounded by
// the caller leaving the input alone. See the package view for holders
// that detect violations of that discipline, and for detached snapshots
// that remove it entirely.
package scanner

import (
	"bytes"
	"strings"

	"github.com/fieldscan/fieldscan/token"
)

// Delimiter is the byte that terminates a field. It is fixed: widening
// the scan to delimiter sets or multi-byte delimiters is outside this
// package's contract.
const Delimiter byte = ' '

// FieldEnd returns the index of the first delimiter in b, or len(b) when
// b contains no delimiter, meaning the whole input is one field. The scan
// is a single forward pass and the leftmost delimiter wins.
//
// FieldEnd is total: it has no error conditions, and the empty (or nil)
// sequence returns 0.
//
// The returned offset is not tied to b. If the caller mutates b after the
// call, the offset keeps its numeric value but no longer describes the
// new contents; FieldEnd cannot detect that, and callers that need
// detection should scan through a view.Buffer instead.
func FieldEnd(b []byte) int {
	if i := bytes.IndexByte(b, Delimiter); i >= 0 {
		return i
	}
	return len(b)
}

// FieldEndString is FieldEnd for strings.
func FieldEndString(s string) int {
	if i := strings.IndexByte(s, Delimiter); i >= 0 {
		return i
	}
	return len(s)
}

// FirstField returns the first field of b: every byte before the first
// delimiter, or all of b when no delimiter is present. The result aliases
// b's storage and is produced without copying.
//
// The result means what it says only while the caller leaves b unmodified
// and unreleased. Holding the result across a mutation of b is the
// use-after-invalidate hazard; nothing at runtime checks for it here.
// Callers that must retain the field should copy it, most simply through
// view.Snapshot.
func FirstField(b []byte) []byte {
	return b[:FieldEnd(b)]
}

// FirstFieldString is FirstField for strings. Strings are immutable, so
// the returned substring carries no invalidation hazard.
func FirstFieldString(s string) string {
	return s[:FieldEndString(s)]
}

// FirstFieldSpan returns the bounds of the first field of b as a Span:
// Start is always 0 and End equals FieldEnd(b). Use it when tracking
// offsets instead of slices, keeping in mind that a Span is as detached
// from b as the plain offset is.
func FirstFieldSpan(b []byte) token.Span {
	return token.Span{Start: 0, End: FieldEnd(b)}
}

// SplitFirst splits b around the first delimiter, returning the first
// field and the remainder after the delimiter. When b contains no
// delimiter, field is all of b and rest is nil. Both results alias b.
//
// Applying SplitFirst repeatedly to rest enumerates every field of b,
// preserving empty fields between adjacent delimiters.
func SplitFirst(b []byte) (field, rest []byte) {
	i := FieldEnd(b)
	if i == len(b) {
		return b, nil
	}
	return b[:i], b[i+1:]
}
