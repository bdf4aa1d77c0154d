package strq

import "github.com/ashert/strq/ring"

// Direction selects the lexicographic ordering used by Merge, Sort,
// and MergeGroup.Merge.
type Direction int8

const (
	// Ascending orders values from lexicographically smallest to
	// largest.
	Ascending Direction = iota
	// Descending orders values from lexicographically largest to
	// smallest.
	Descending
)

// Merge combines two queues that are each already sorted in the given
// direction, relinking every element of src into dst so that dst ends
// up sorted and src ends up empty. No payloads are copied and no
// slots are allocated. The merge is stable: when values compare
// equal, dst's element precedes src's.
//
// Returns the total number of elements in the merged result. When
// either handle is nil or invalid, or the queues do not share an
// arena, nothing moves and the other queue's size is returned.
func Merge(dst, src *Queue, dir Direction) int {
	switch {
	case !dst.valid() && !src.valid():
		return 0
	case !src.valid():
		return dst.Len()
	case !dst.valid():
		return src.Len()
	case dst.arena != src.arena || dst.head == src.head:
		return dst.Len()
	}

	n := dst.Len() + src.Len()
	mergeChains(dst.arena, dst.head, src.head, dir)
	return n
}

// mergeChains merges the sorted chain at src into the sorted chain at
// dst through a temporary result chain: the better front element
// moves to the result tail until one side runs out, the remainder is
// spliced after it, and the result is spliced back onto dst.
func mergeChains(a *ring.Arena[string], dst, src ring.Ref, dir Direction) {
	result := a.Head()

	for !a.Empty(dst) && !a.Empty(src) {
		pick := a.Next(dst)
		if firstWins(a.Value(a.Next(src)), a.Value(pick), dir) {
			pick = a.Next(src)
		}
		a.MoveBefore(pick, result)
	}

	a.SpliceTail(src, result)
	a.SpliceTail(dst, result)
	a.Splice(result, dst)

	a.Release(result)
}

// firstWins reports whether a value strictly precedes another in the
// given direction. Ties lose, which is what keeps the merge stable.
func firstWins(v, over string, dir Direction) bool {
	if dir == Descending {
		return v > over
	}
	return v < over
}
