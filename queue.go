// Package strq implements a string-valued sequence container over an
// arena-addressed circular doubly-linked chain (see the ring
// package), with queue operations at both ends, structural
// transforms (dedup, pairwise swap, reversal, block reversal,
// monotonic filtering), stable merge sort, multi-queue merging, and
// unbiased shuffling.
//
// Queues that share an arena can exchange elements by pure index
// relinking: merging and sorting never copy or reallocate payloads.
// Queues are not safe for access from multiple concurrent
// goroutines; callers needing shared access must serialize it
// externally.
//
// Invalid input degrades to a no-op failure value rather than a
// panic: operations on a nil or freed queue return false, nil, or
// zero as appropriate.
package strq

import (
	"github.com/tychoish/fun/intish"

	"github.com/ashert/strq/ring"
)

// Queue is a handle on one chain of string elements within an
// arena. The zero value is not usable; construct queues with New or
// NewQueue. After Free the handle is invalid, and every operation on
// it degrades to a no-op.
type Queue struct {
	arena *ring.Arena[string]
	head  ring.Ref
}

// New creates an empty queue whose elements live in the provided
// arena. Queues that will exchange elements through Merge or a
// MergeGroup must share an arena. Returns nil when the arena is nil.
func New(a *ring.Arena[string]) *Queue {
	if a == nil {
		return nil
	}

	return &Queue{arena: a, head: a.Head()}
}

// NewQueue creates an empty queue with a private arena, for callers
// that never merge across queues. Use q.Arena() with New to create
// siblings that can.
func NewQueue() *Queue { return New(ring.NewArena[string](0)) }

// Arena exposes the arena backing this queue, so that callers can
// construct sibling queues eligible for merging.
func (q *Queue) Arena() *ring.Arena[string] {
	if q == nil {
		return nil
	}
	return q.arena
}

func (q *Queue) valid() bool { return q != nil && q.arena != nil && q.arena.Alive(q.head) }

// Free releases every element remaining in the queue and then the
// sentinel itself, returning all of their slots to the arena's
// free-list. The arena outlives the queue and may back other
// queues. Safe to call on a nil or already-freed queue.
func (q *Queue) Free() {
	if !q.valid() {
		return
	}

	a := q.arena
	for r := a.Next(q.head); r != q.head; {
		next := a.Next(r)
		a.Unlink(r)
		a.Release(r)
		r = next
	}

	a.Release(q.head)
}

// InsertHead stores a copy of the value in a new element at the front
// of the queue. Reports false, with no change to the queue, when the
// handle is invalid.
func (q *Queue) InsertHead(s string) bool {
	if !q.valid() {
		return false
	}

	q.arena.InsertAfter(q.head, q.arena.Alloc(s))
	return true
}

// InsertTail stores a copy of the value in a new element at the back
// of the queue. Reports false, with no change to the queue, when the
// handle is invalid.
func (q *Queue) InsertTail(s string) bool {
	if !q.valid() {
		return false
	}

	q.arena.InsertBefore(q.head, q.arena.Alloc(s))
	return true
}

// RemoveHead detaches the first element and transfers its ownership
// to the caller, who must eventually Release it. Returns nil when the
// queue is invalid or empty.
//
// When dst is non-empty, up to len(dst)-1 bytes of the element's
// value are copied into it, followed by a terminating NUL; longer
// values are truncated.
func (q *Queue) RemoveHead(dst []byte) *Element { return q.detach(dst, false) }

// RemoveTail detaches the last element and transfers its ownership to
// the caller, who must eventually Release it. Returns nil when the
// queue is invalid or empty. The dst buffer behaves as in RemoveHead.
func (q *Queue) RemoveTail(dst []byte) *Element { return q.detach(dst, true) }

// Len counts the elements in the queue by walking the chain. Returns
// 0 for an invalid handle as well as for an empty queue; callers that
// need to distinguish the two must check the handle separately.
func (q *Queue) Len() int {
	if !q.valid() {
		return 0
	}

	n := 0
	for r := q.arena.Next(q.head); r != q.head; r = q.arena.Next(r) {
		n++
	}

	return n
}

// Validate audits the structural soundness of the queue's chain (see
// ring.Arena.Validate). Returns an error describing the first
// violation found, or ErrInvalidQueue for a nil or freed handle.
func (q *Queue) Validate() error {
	if !q.valid() {
		return ErrInvalidQueue
	}

	return q.arena.Validate(q.head)
}

func (q *Queue) detach(dst []byte, fromTail bool) *Element {
	if !q.valid() || q.arena.Empty(q.head) {
		return nil
	}

	r := q.arena.Next(q.head)
	if fromTail {
		r = q.arena.Prev(q.head)
	}

	q.arena.Unlink(r)
	copyValue(dst, q.arena.Value(r))

	return &Element{arena: q.arena, ref: r}
}

// copyValue fills dst with a truncated, NUL-terminated copy of val;
// zero-length buffers are left alone.
func copyValue(dst []byte, val string) {
	if len(dst) == 0 {
		return
	}

	n := copy(dst, val[:intish.Min(len(val), len(dst)-1)])
	dst[n] = 0
}
