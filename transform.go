package strq

import "github.com/ashert/strq/ring"

// DeleteMiddle removes and releases the middle element, located by
// walking two cursors inward from both ends one step at a time until
// they meet or cross. For even-length queues this selects the second
// of the two central elements. Reports false on an invalid or empty
// queue.
func (q *Queue) DeleteMiddle() bool {
	if !q.valid() || q.arena.Empty(q.head) {
		return false
	}

	a := q.arena
	front, tail := a.Next(q.head), a.Prev(q.head)
	for front != tail && a.Next(tail) != front {
		front = a.Next(front)
		tail = a.Prev(tail)
	}

	a.Unlink(front)
	a.Release(front)
	return true
}

// DeleteDuplicates removes every element whose value also appears in
// an adjacent element, releasing whole runs of equal values including
// their first member: [a a b c c] becomes [b]. The queue must already
// be sorted for duplicates to be adjacent. Always reports true; an
// invalid or empty queue is a successful no-op.
func (q *Queue) DeleteDuplicates() bool {
	if !q.valid() {
		return true
	}

	a := q.arena
	r := a.Next(q.head)
	for r != q.head {
		next := a.Next(r)
		if next == q.head || a.Value(next) != a.Value(r) {
			r = next
			continue
		}

		// drop the full run, first occurrence included
		v := a.Value(r)
		for r != q.head && a.Value(r) == v {
			next = a.Next(r)
			a.Unlink(r)
			a.Release(r)
			r = next
		}
	}

	return true
}

// SwapPairs exchanges adjacent elements pairwise (first with second,
// third with fourth, and so on); an odd trailing element stays
// put. No-op on an invalid or empty queue.
func (q *Queue) SwapPairs() {
	if !q.valid() {
		return
	}

	a := q.arena
	r := a.Next(q.head)
	for r != q.head && a.Next(r) != q.head {
		a.Move(r, a.Next(r))
		r = a.Next(r)
	}
}

// Reverse reverses the order of the elements in place by relinking
// only. No-op on an invalid, empty, or single-element queue.
func (q *Queue) Reverse() {
	if !q.valid() || q.arena.Empty(q.head) || q.arena.Singular(q.head) {
		return
	}

	reverseChain(q.arena, q.head)
}

// ReverseK reverses each consecutive block of exactly k elements
// independently, leaving a final partial block (fewer than k
// elements) in its original order. ReverseK is its own inverse for a
// fixed k. No-op when k is less than two or the queue is invalid,
// empty, or singular.
func (q *Queue) ReverseK(k int) {
	if k <= 1 || !q.valid() || q.arena.Empty(q.head) || q.arena.Singular(q.head) {
		return
	}

	a := q.arena
	result := a.Head()
	block := a.Head()

	for {
		upto := a.Advance(q.head, q.head, k)
		if upto == q.head {
			break
		}

		a.Cut(block, q.head, upto)
		reverseChain(a, block)
		a.SpliceTail(block, result)
	}

	// the partial block keeps its order and position
	a.SpliceTail(q.head, result)
	a.Splice(result, q.head)

	a.Release(result)
	a.Release(block)
}

// reverseChain relocates each member to the front of the chain in
// original front-to-back order, which reverses the chain in one pass.
func reverseChain(a *ring.Arena[string], head ring.Ref) {
	r := a.Next(head)
	for r != head {
		next := a.Next(r)
		a.Move(r, head)
		r = next
	}
}
