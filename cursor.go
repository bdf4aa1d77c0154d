package strq

import (
	"iter"

	"github.com/ashert/strq/ring"
)

// Cursor is a lazy, non-destructive view over a queue's chain.
// Cursors start positioned on the sentinel: the first Next advances
// to the first element in the cursor's direction. A cursor is finite,
// restartable with Reset, and tolerant of the queue being mutated
// between calls, though elements added behind the cursor's position
// are not revisited.
type Cursor struct {
	arena   *ring.Arena[string]
	head    ring.Ref
	at      ring.Ref
	reverse bool
}

// Cursor returns a forward (head-to-tail) cursor over the queue. On
// an invalid queue the cursor is empty.
func (q *Queue) Cursor() *Cursor { return q.cursor(false) }

// ReverseCursor returns a backward (tail-to-head) cursor over the
// queue. On an invalid queue the cursor is empty.
func (q *Queue) ReverseCursor() *Cursor { return q.cursor(true) }

func (q *Queue) cursor(reverse bool) *Cursor {
	if !q.valid() {
		return &Cursor{head: ring.Nil, at: ring.Nil, reverse: reverse}
	}
	return &Cursor{arena: q.arena, head: q.head, at: q.head, reverse: reverse}
}

// Next advances the cursor and reports whether it landed on an
// element; it returns false forever once the walk comes back around
// to the sentinel.
func (c *Cursor) Next() bool {
	if c == nil || !c.arena.Alive(c.head) || !c.arena.Alive(c.at) {
		return false
	}

	step := c.arena.Next(c.at)
	if c.reverse {
		step = c.arena.Prev(c.at)
	}

	if step == c.head || step == ring.Nil {
		return false
	}

	c.at = step
	return true
}

// Value returns the value under the cursor, or the empty string when
// the cursor is not positioned on an element.
func (c *Cursor) Value() string {
	if c == nil || c.at == c.head || !c.arena.Alive(c.at) {
		return ""
	}
	return c.arena.Value(c.at)
}

// Reset rewinds the cursor to the sentinel so the walk can start
// over.
func (c *Cursor) Reset() {
	if c != nil {
		c.at = c.head
	}
}

// Seq returns a native iterator over the queue's values in
// head-to-tail order.
func (q *Queue) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		for c := q.Cursor(); c.Next(); {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// SeqReverse returns a native iterator over the queue's values in
// tail-to-head order.
func (q *Queue) SeqReverse() iter.Seq[string] {
	return func(yield func(string) bool) {
		for c := q.ReverseCursor(); c.Next(); {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Slice exports the queue's values to a slice in head-to-tail order,
// mostly for inspection and tests. Returns nil for an invalid or
// empty queue.
func (q *Queue) Slice() []string {
	var out []string
	for c := q.Cursor(); c.Next(); {
		out = append(out, c.Value())
	}
	return out
}
