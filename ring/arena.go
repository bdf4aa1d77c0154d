// Package ring provides the storage substrate for intrusive circular
// doubly-linked chains: a growable arena of slots addressed by index,
// with the prev/next references stored as indexes into the same
// arena. A free-list recycles released slots, so a stale reference
// can never point at memory the arena has given back.
//
// An arena can host any number of independent chains. Because every
// chain in an arena shares one slab, moving or splicing nodes between
// chains is pure index relinking and never copies payloads. Chains
// are anchored at a sentinel slot (see Head) and are not safe for
// access from multiple concurrent goroutines.
package ring

// Ref addresses a slot within an Arena. The zero chain reference is
// Nil, which no valid slot ever has.
type Ref int32

// Nil is the reference held by the prev/next fields of a detached
// slot, and the result of accessor methods given invalid input.
const Nil Ref = -1

type slot[T any] struct {
	value T
	next  Ref
	prev  Ref
	live  bool
}

// Arena owns a slab of slots and a free-list of released slot
// indexes. The zero value is not usable; construct arenas with
// NewArena.
type Arena[T any] struct {
	slots []slot[T]
	free  Ref
}

const defaultArenaSize = 16

// NewArena constructs an arena with capacity for the given number of
// slots before the slab grows. Sizes less than one select a small
// default.
func NewArena[T any](capacity int) *Arena[T] {
	if capacity < 1 {
		capacity = defaultArenaSize
	}

	return &Arena[T]{slots: make([]slot[T], 0, capacity), free: Nil}
}

// Head allocates a self-linked sentinel slot anchoring a new, empty
// chain. The sentinel carries no payload; its next/prev fields define
// the first and last members of the chain.
func (a *Arena[T]) Head() Ref {
	r := a.take()
	s := &a.slots[r]
	s.next = r
	s.prev = r
	s.live = true
	return r
}

// Alloc fills a slot with the provided value and returns its
// reference. The slot starts detached (prev and next are Nil) and
// must be linked into a chain with InsertAfter or InsertBefore.
func (a *Arena[T]) Alloc(v T) Ref {
	r := a.take()
	s := &a.slots[r]
	s.value = v
	s.next = Nil
	s.prev = Nil
	s.live = true
	return r
}

// Release returns a slot to the free-list, dropping its value. The
// slot must be detached, or a self-linked (empty) sentinel; releasing
// Nil, a dead slot, or a slot that is still a member of a chain is a
// no-op. Releasing the same reference twice is safe: the second call
// does nothing.
func (a *Arena[T]) Release(r Ref) {
	if !a.Alive(r) {
		return
	}

	s := &a.slots[r]
	if !(s.next == Nil && s.prev == Nil) && !(s.next == r && s.prev == r) {
		return
	}

	var zero T
	s.value = zero
	s.live = false
	s.prev = Nil
	s.next = a.free
	a.free = r
}

// Alive reports whether the reference addresses a slot currently
// allocated in this arena.
func (a *Arena[T]) Alive(r Ref) bool {
	return a != nil && r >= 0 && int(r) < len(a.slots) && a.slots[r].live
}

// Value returns the payload stored in the slot, or the zero value for
// dead or invalid references.
func (a *Arena[T]) Value(r Ref) (out T) {
	if !a.Alive(r) {
		return out
	}
	return a.slots[r].value
}

// SetValue replaces the payload stored in a live slot.
func (a *Arena[T]) SetValue(r Ref, v T) {
	if a.Alive(r) {
		a.slots[r].value = v
	}
}

// Next returns the forward link of the slot, or Nil for dead or
// invalid references.
func (a *Arena[T]) Next(r Ref) Ref {
	if !a.Alive(r) {
		return Nil
	}
	return a.slots[r].next
}

// Prev returns the backward link of the slot, or Nil for dead or
// invalid references.
func (a *Arena[T]) Prev(r Ref) Ref {
	if !a.Alive(r) {
		return Nil
	}
	return a.slots[r].prev
}

// Len reports the number of slots the slab currently holds, live or
// not. Useful mostly for observing growth in tests and capacity
// planning.
func (a *Arena[T]) Len() int { return len(a.slots) }

func (a *Arena[T]) take() Ref {
	if a.free != Nil {
		r := a.free
		a.free = a.slots[r].next
		return r
	}

	a.slots = append(a.slots, slot[T]{})
	return Ref(len(a.slots) - 1)
}
