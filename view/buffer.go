// Package view provides runtime-checked windows into mutable byte
// buffers.
//
// The scanner package hands out plain subslices and leaves the "do not
// mutate the backing sequence while a view is live" discipline to the
// caller. Package view enforces that discipline at run time instead: a
// Buffer counts its mutations, every View records the count it was
// created under, and a View whose count has fallen behind panics on
// access rather than reading through to bytes that no longer mean what
// they did.
//
// For callers who want neither discipline nor checking, ByteView offers
// the third option: copy once at creation and stay valid forever.
package view

import (
	"fmt"

	"go.uber.org/atomic"

	"github.com/fieldscan/fieldscan/scanner"
	"github.com/fieldscan/fieldscan/token"
)

// Buffer is a mutable byte sequence that tracks its own mutations so
// views into it can detect staleness. The zero Buffer is empty and
// ready to use.
//
// Buffer methods are not safe for concurrent use; the generation
// counter detects sequenced mutate-then-read mistakes, not data races.
type Buffer struct {
	data []byte
	gen  atomic.Uint64
}

// NewBuffer returns a Buffer backed directly by b. The caller hands
// over ownership of b and must not retain or mutate it afterwards.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{data: b}
}

// NewBufferString returns a Buffer holding a copy of s.
func NewBufferString(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the buffer's contents. The result aliases the buffer's
// storage and is only good until the next mutation.
func (b *Buffer) Bytes() []byte { return b.data }

// String returns a copy of the buffer's contents as a string.
func (b *Buffer) String() string { return string(b.data) }

// Set replaces the buffer's contents with b, taking ownership of b.
// All existing views into the buffer become invalid.
func (bf *Buffer) Set(b []byte) {
	bf.data = b
	bf.gen.Inc()
}

// SetString replaces the buffer's contents with a copy of s. All
// existing views into the buffer become invalid.
func (b *Buffer) SetString(s string) {
	b.data = []byte(s)
	b.gen.Inc()
}

// Clear empties the buffer, keeping the backing storage for reuse. All
// existing views into the buffer become invalid.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
	b.gen.Inc()
}

// Release empties the buffer and drops its backing storage. All
// existing views into the buffer become invalid.
func (b *Buffer) Release() {
	b.data = nil
	b.gen.Inc()
}

// FirstField returns a View of the buffer's first field, the bytes up
// to but not including the first delimiter. When the buffer contains no
// delimiter the view spans the whole buffer; when it starts with one
// the view is empty.
func (b *Buffer) FirstField() View {
	return b.view(scanner.FirstFieldSpan(b.data))
}

// Slice returns a View of buffer bytes [i, j). It panics if the bounds
// are out of range.
func (b *Buffer) Slice(i, j int) View {
	if i < 0 || j < i || j > len(b.data) {
		panic(fmt.Sprintf("view: slice bounds [%d,%d) out of range for buffer of length %d", i, j, len(b.data)))
	}
	return b.view(token.Span{Start: i, End: j})
}

func (b *Buffer) view(span token.Span) View {
	return View{buf: b, span: span, gen: b.gen.Load()}
}
