package strq

import (
	"github.com/tychoish/fun/ers"

	"github.com/ashert/strq/ring"
)

const (
	// ErrInvalidQueue is reported when a nil or freed queue handle is
	// offered to a MergeGroup.
	ErrInvalidQueue ers.Error = "strq: invalid queue handle"
	// ErrMismatchedArena is reported when a queue added to a
	// MergeGroup does not share the element arena of the members
	// already present; cross-arena relinking is impossible.
	ErrMismatchedArena ers.Error = "strq: queue belongs to a different arena"
)

// MergeStrategy selects how MergeGroup.Merge reduces its member
// queues into one.
type MergeStrategy int8

const (
	// PairwiseTree merges members in rounds of doubling stride
	// (member i absorbs member i+stride), so each member takes part
	// in at most ceil(log2 k) merges.
	PairwiseTree MergeStrategy = iota
	// SequentialAccumulate folds every member into the first, one
	// after another. Same result as PairwiseTree, but the first
	// member participates in every merge.
	SequentialAccumulate
)

// groupEntry pairs a member queue with the element count last
// observed for it.
type groupEntry struct {
	q     *Queue
	count int
}

// MergeGroup chains several independent sorted queues together for a
// k-way merge. Chaining does not alter ownership of the member
// queues: the group tracks only their order and element counts, and
// after Merge the members other than the first are left empty but
// intact.
type MergeGroup struct {
	arena *ring.Arena[groupEntry]
	head  ring.Ref
	size  int
}

// NewMergeGroup constructs an empty group.
func NewMergeGroup() *MergeGroup {
	a := ring.NewArena[groupEntry](8)
	return &MergeGroup{arena: a, head: a.Head()}
}

// Add appends a queue to the end of the group's chain. Every member
// must share the element arena of the first member, so that merging
// can relink elements across queues.
func (g *MergeGroup) Add(q *Queue) error {
	if g == nil || g.arena == nil || !g.arena.Alive(g.head) {
		return ErrInvalidQueue
	}

	if !q.valid() {
		return ErrInvalidQueue
	}

	if first := g.first(); first != nil && first.arena != q.arena {
		return ErrMismatchedArena
	}

	g.arena.InsertBefore(g.head, g.arena.Alloc(groupEntry{q: q, count: q.Len()}))
	g.size++
	return nil
}

// Len reports the number of member queues in the group.
func (g *MergeGroup) Len() int {
	if g == nil {
		return 0
	}
	return g.size
}

// Merge combines every member queue, each already sorted in the given
// direction, into the first member, using the selected strategy. The
// other members end up empty but remain valid handles owned by their
// creators. Returns the size of the merged result; a group with zero
// or one members is a trivial case.
func (g *MergeGroup) Merge(dir Direction, strategy MergeStrategy) int {
	if g == nil || g.size == 0 {
		return 0
	}

	first := g.first()
	if g.size == 1 {
		return first.Len()
	}

	if strategy == SequentialAccumulate {
		g.sequential(dir)
	} else {
		g.pairwise(dir)
	}

	total := first.Len()
	g.settleCounts(total)
	return total
}

// Free releases the group's chain. Member queues are untouched; they
// belong to their creators.
func (g *MergeGroup) Free() {
	if g == nil || g.arena == nil || !g.arena.Alive(g.head) {
		return
	}

	for r := g.arena.Next(g.head); r != g.head; {
		next := g.arena.Next(r)
		g.arena.Unlink(r)
		g.arena.Release(r)
		r = next
	}

	g.arena.Release(g.head)
	g.size = 0
}

func (g *MergeGroup) first() *Queue {
	if g.size == 0 {
		return nil
	}
	return g.arena.Value(g.arena.Next(g.head)).q
}

// memberAt walks the chain to the i-th member (zero indexed).
func (g *MergeGroup) memberAt(i int) *Queue {
	return g.arena.Value(g.arena.Advance(g.head, g.head, i+1)).q
}

func (g *MergeGroup) pairwise(dir Direction) {
	for stride := 1; stride < g.size; stride *= 2 {
		for i := 0; i+stride < g.size; i += 2 * stride {
			Merge(g.memberAt(i), g.memberAt(i+stride), dir)
		}
	}
}

func (g *MergeGroup) sequential(dir Direction) {
	first := g.first()
	for i := 1; i < g.size; i++ {
		Merge(first, g.memberAt(i), dir)
	}
}

// settleCounts refreshes the tracked element counts after a merge:
// everything lives in the first member now.
func (g *MergeGroup) settleCounts(total int) {
	for i, r := 0, g.arena.Next(g.head); r != g.head; i, r = i+1, g.arena.Next(r) {
		e := g.arena.Value(r)
		e.count = 0
		if i == 0 {
			e.count = total
		}
		g.arena.SetValue(r, e)
	}
}
