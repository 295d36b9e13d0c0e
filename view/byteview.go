package view

// A ByteView holds an immutable snapshot of bytes. Taking one is the
// copy-on-read escape from the aliasing discipline: the snapshot keeps
// its content no matter what happens to the sequence it was taken from,
// and nothing handed out by a ByteView can reach the snapshot's storage.
//
// The zero ByteView is empty and ready to use.
type ByteView struct {
	b []byte
}

// Snapshot copies b into a new ByteView.
func Snapshot(b []byte) ByteView {
	return ByteView{b: cloneBytes(b)}
}

// SnapshotString copies s into a new ByteView.
func SnapshotString(s string) ByteView {
	return ByteView{b: []byte(s)}
}

// Len returns the view's length in bytes.
func (v ByteView) Len() int {
	return len(v.b)
}

// ByteSlice returns a copy of the data as a byte slice. Mutating the
// returned slice does not affect the view.
func (v ByteView) ByteSlice() []byte {
	return cloneBytes(v.b)
}

// String returns the data as a string.
func (v ByteView) String() string {
	return string(v.b)
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
