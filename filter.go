package strq

// Ascend walks the queue from the tail toward the head, tracking a
// bound that starts at the tail's value and is updated to each
// retained value, and removes (and releases) every element whose
// value is strictly greater than the current bound. The survivors
// read head-to-tail in non-decreasing order; the tail always
// survives. Returns the number of surviving elements, 0 for an
// invalid or empty queue.
func (q *Queue) Ascend() int {
	return q.filterFromTail(func(v, bound string) bool { return v > bound })
}

// Descend is the mirror of Ascend: elements strictly less than the
// bound are removed, and the survivors read head-to-tail in
// non-increasing order. Returns the number of surviving elements, 0
// for an invalid or empty queue.
func (q *Queue) Descend() int {
	return q.filterFromTail(func(v, bound string) bool { return v < bound })
}

// filterFromTail deletes every element for which purge reports true
// against the running bound, scanning right to left.
func (q *Queue) filterFromTail(purge func(v, bound string) bool) int {
	if !q.valid() || q.arena.Empty(q.head) {
		return 0
	}

	a := q.arena
	tail := a.Prev(q.head)
	bound := a.Value(tail)
	kept := 1

	for r := a.Prev(tail); r != q.head; {
		prev := a.Prev(r)

		if v := a.Value(r); purge(v, bound) {
			a.Unlink(r)
			a.Release(r)
		} else {
			bound = v
			kept++
		}

		r = prev
	}

	return kept
}
