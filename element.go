package strq

import "github.com/ashert/strq/ring"

// Element is a detached queue member handed to the caller by
// RemoveHead and RemoveTail. Removal is an ownership transfer, not a
// borrow: once returned, the queue no longer tracks the element, and
// the caller must eventually Release it to return its slot to the
// arena.
type Element struct {
	arena *ring.Arena[string]
	ref   ring.Ref
}

// Ok reports whether the element still holds a live slot. It is false
// for nil elements and after Release.
func (e *Element) Ok() bool { return e != nil && e.arena != nil && e.arena.Alive(e.ref) }

// Value returns the element's string, or the empty string after
// Release.
func (e *Element) Value() string {
	if !e.Ok() {
		return ""
	}
	return e.arena.Value(e.ref)
}

// CopyValue writes a truncated, NUL-terminated copy of the element's
// value into dst, mirroring the buffer contract of RemoveHead.
func (e *Element) CopyValue(dst []byte) {
	if e.Ok() {
		copyValue(dst, e.arena.Value(e.ref))
	}
}

// Release returns the element's slot (and with it the value) to the
// arena free-list. Releasing twice, or releasing a nil element, is a
// no-op.
func (e *Element) Release() {
	if e.Ok() {
		e.arena.Release(e.ref)
	}
}
