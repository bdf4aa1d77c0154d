package strq

import "github.com/ashert/strq/ring"

// Sort orders the queue in the given direction with a bottom-up,
// non-recursive merge sort: runs of doubling width are cut off the
// front of the queue, merged pairwise, and accumulated onto a fresh
// chain that replaces the queue at the end of each pass. The sort is
// stable (equal values keep their relative order) and relinks
// indexes only. No-op on an invalid, empty, or single-element queue.
func (q *Queue) Sort(dir Direction) {
	if !q.valid() || q.arena.Empty(q.head) || q.arena.Singular(q.head) {
		return
	}

	a := q.arena
	n := q.Len()

	left := a.Head()
	right := a.Head()
	done := a.Head()

	for width := 1; width < n; width *= 2 {
		for !a.Empty(q.head) {
			a.Cut(left, q.head, runEnd(a, q.head, width))
			a.Cut(right, q.head, runEnd(a, q.head, width))
			mergeChains(a, left, right, dir)
			a.SpliceTail(left, done)
		}
		a.Splice(done, q.head)
	}

	a.Release(left)
	a.Release(right)
	a.Release(done)
}

// runEnd locates the last element of the next width-sized run, or the
// chain's final element when fewer than width remain.
func runEnd(a *ring.Arena[string], head ring.Ref, width int) ring.Ref {
	upto := a.Advance(head, head, width)
	if upto == head {
		upto = a.Prev(head)
	}
	return upto
}
