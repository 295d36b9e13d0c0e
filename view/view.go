package view

import (
	"github.com/fieldscan/fieldscan/token"
)

// A View is a window into a span of a Buffer's bytes. Views read
// through to the buffer's storage without copying, so they are cheap to
// create and pass around, but they are only meaningful while the buffer
// still holds the bytes they were created over.
//
// A View remembers the buffer generation it was created under. Once the
// buffer is mutated or released the view is stale: Valid reports false
// and the accessors panic instead of returning bytes from a sequence
// that has since changed. Callers who need the content to outlive the
// buffer should call Detach.
//
// The zero View is a valid empty view of no buffer.
type View struct {
	buf  *Buffer
	span token.Span
	gen  uint64
}

// Span returns the view's byte range within its buffer.
func (v View) Span() token.Span { return v.span }

// Len returns the view's length in bytes. Len does not require the view
// to be valid.
func (v View) Len() int { return v.span.Len() }

// Valid reports whether the view's buffer is unchanged since the view
// was created.
func (v View) Valid() bool {
	return v.buf == nil || v.gen == v.buf.gen.Load()
}

// Bytes returns the viewed bytes. The result aliases the buffer's
// storage and is only good until the buffer's next mutation.
//
// Bytes panics if the view is stale.
func (v View) Bytes() []byte {
	v.check()
	if v.buf == nil {
		return nil
	}
	return v.span.Cut(v.buf.data)
}

// String returns a copy of the viewed bytes as a string.
//
// String panics if the view is stale.
func (v View) String() string {
	return string(v.Bytes())
}

// Detach copies the viewed bytes into a ByteView that stays valid no
// matter what happens to the buffer afterwards.
//
// Detach panics if the view is already stale.
func (v View) Detach() ByteView {
	return Snapshot(v.Bytes())
}

func (v View) check() {
	if !v.Valid() {
		panic("view: access through stale view: buffer was mutated or released after the view was created")
	}
}
