package ring

import (
	"fmt"

	"github.com/tychoish/fun/ers"
)

// ErrBrokenChain is the root of every violation reported by Validate.
const ErrBrokenChain ers.Error = "ring: broken chain"

// Reset re-initializes a chain to empty, leaving the sentinel
// self-linked. Any slots previously on the chain are orphaned, so
// callers should only reset chains they have already drained or
// spliced elsewhere.
func (a *Arena[T]) Reset(head Ref) {
	if !a.Alive(head) {
		return
	}

	s := &a.slots[head]
	s.next = head
	s.prev = head
}

// Empty reports whether the chain anchored at head has no members.
func (a *Arena[T]) Empty(head Ref) bool { return !a.Alive(head) || a.slots[head].next == head }

// Singular reports whether the chain anchored at head has exactly one
// member.
func (a *Arena[T]) Singular(head Ref) bool {
	if !a.Alive(head) {
		return false
	}
	s := a.slots[head]
	return s.next != head && s.next == s.prev
}

// InsertAfter links a detached slot into the chain immediately after
// the anchor (which may be the sentinel, making the slot the first
// member).
func (a *Arena[T]) InsertAfter(anchor, n Ref) {
	if !a.Alive(anchor) || !a.Alive(n) || anchor == n {
		return
	}
	a.link(n, anchor, a.slots[anchor].next)
}

// InsertBefore links a detached slot into the chain immediately
// before the anchor (which may be the sentinel, making the slot the
// last member).
func (a *Arena[T]) InsertBefore(anchor, n Ref) {
	if !a.Alive(anchor) || !a.Alive(n) || anchor == n {
		return
	}
	a.link(n, a.slots[anchor].prev, anchor)
}

// Unlink detaches a slot from its chain, leaving its prev and next
// references Nil. Unlinking a detached slot is a no-op. The slot
// remains allocated; ownership questions (Release or relink) are the
// caller's.
func (a *Arena[T]) Unlink(n Ref) {
	if !a.Alive(n) {
		return
	}

	s := &a.slots[n]
	if s.next == Nil || s.next == n {
		return
	}

	a.slots[s.prev].next = s.next
	a.slots[s.next].prev = s.prev
	s.next = Nil
	s.prev = Nil
}

// Move relocates a linked slot to the position immediately after the
// anchor, which may be in a different chain of the same arena.
func (a *Arena[T]) Move(n, anchor Ref) {
	if !a.Alive(n) || !a.Alive(anchor) || n == anchor {
		return
	}
	a.Unlink(n)
	a.InsertAfter(anchor, n)
}

// MoveBefore relocates a linked slot to the position immediately
// before the anchor. MoveBefore(n, head) moves the slot to the tail
// of head's chain.
func (a *Arena[T]) MoveBefore(n, anchor Ref) {
	if !a.Alive(n) || !a.Alive(anchor) || n == anchor {
		return
	}
	a.Unlink(n)
	a.InsertBefore(anchor, n)
}

// Splice relinks every member of the chain anchored at src into the
// chain holding at, immediately after at, and resets src to empty.
// The at position may be a sentinel (members land at the front of its
// chain) or any linked slot. Splicing an empty chain only resets it.
func (a *Arena[T]) Splice(src, at Ref) {
	if !a.Alive(src) || !a.Alive(at) || src == at {
		return
	}

	if a.Empty(src) {
		a.Reset(src)
		return
	}

	first := a.slots[src].next
	last := a.slots[src].prev
	after := a.slots[at].next

	a.slots[at].next = first
	a.slots[first].prev = at
	a.slots[last].next = after
	a.slots[after].prev = last

	a.Reset(src)
}

// SpliceTail relinks every member of the chain anchored at src to the
// tail of the chain anchored at head, and resets src to empty.
func (a *Arena[T]) SpliceTail(src, head Ref) {
	if !a.Alive(src) || !a.Alive(head) || src == head || a.Empty(src) {
		return
	}
	a.Splice(src, a.slots[head].prev)
}

// Cut resets dst and then moves the prefix of src's chain, from its
// first member through upto inclusive, onto dst. Passing src as upto
// cuts nothing; passing src's last member moves the entire chain. The
// upto reference must be a member of src's chain (or src itself);
// this is not checked.
func (a *Arena[T]) Cut(dst, src, upto Ref) {
	if !a.Alive(dst) || !a.Alive(src) || dst == src {
		return
	}

	a.Reset(dst)

	if a.Empty(src) || upto == src || !a.Alive(upto) {
		return
	}

	first := a.slots[src].next
	rest := a.slots[upto].next

	a.slots[dst].next = first
	a.slots[first].prev = dst
	a.slots[dst].prev = upto
	a.slots[upto].next = dst

	a.slots[src].next = rest
	a.slots[rest].prev = src
}

// Advance walks forward from a starting position, taking at most n
// steps, and returns the reference reached. If the walk arrives back
// at the sentinel first the sentinel is returned: Advance(head, head,
// n) therefore locates the n-th member of the chain, or head when the
// chain holds fewer than n members.
func (a *Arena[T]) Advance(from, head Ref, n int) Ref {
	if !a.Alive(from) || !a.Alive(head) {
		return head
	}

	cur := from
	for ; n > 0; n-- {
		cur = a.slots[cur].next
		if cur == head || cur == Nil {
			return head
		}
	}

	return cur
}

// Validate audits the structural soundness of the chain anchored at
// head: every linked slot must be live, forward and backward links
// must agree, the walk must return to the sentinel, and no member of
// the chain may sit on the arena's free-list. It returns nil for a
// sound chain and an error wrapping ErrBrokenChain describing the
// first violation otherwise. Intended for tests and debugging; the
// walk is linear in the chain length.
func (a *Arena[T]) Validate(head Ref) error {
	if !a.Alive(head) {
		return fmt.Errorf("%w: sentinel %d is not a live slot", ErrBrokenChain, head)
	}

	steps := 0
	for cur := head; ; {
		next := a.slots[cur].next
		switch {
		case next == Nil:
			return fmt.Errorf("%w: slot %d has a nil forward link", ErrBrokenChain, cur)
		case !a.Alive(next):
			return fmt.Errorf("%w: slot %d links forward to dead slot %d", ErrBrokenChain, cur, next)
		case a.slots[next].prev != cur:
			return fmt.Errorf("%w: slot %d.next=%d but %d.prev=%d",
				ErrBrokenChain, cur, next, next, a.slots[next].prev)
		}

		if steps++; steps > len(a.slots) {
			return fmt.Errorf("%w: walk from %d did not return to the sentinel", ErrBrokenChain, head)
		}

		if cur = next; cur == head {
			break
		}
	}

	for f := a.free; f != Nil; f = a.slots[f].next {
		if a.slots[f].live {
			return fmt.Errorf("%w: live slot %d found on the free-list", ErrBrokenChain, f)
		}
	}

	return nil
}

func (a *Arena[T]) link(n, prev, next Ref) {
	a.slots[next].prev = n
	a.slots[n].next = next
	a.slots[n].prev = prev
	a.slots[prev].next = n
}
