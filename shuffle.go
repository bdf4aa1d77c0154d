package strq

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tychoish/fun/ers"
)

// ErrRandomSource wraps read failures from the random byte source
// passed to Shuffle.
const ErrRandomSource ers.Error = "strq: random source failed"

// Shuffle rearranges the queue into a uniformly random permutation
// using a Fisher-Yates selection pass: for each i from n down to 1 an
// unbiased index j in [0, i) is drawn from rng and the j-th remaining
// element moves to the tail of a result chain, which finally replaces
// the queue. rng must fill the requested bytes synchronously;
// crypto/rand.Reader is a suitable production source.
//
// Index draws use rejection sampling over 32-bit values so that no
// index is favored the way a bare modulo reduction would. No-op on an
// invalid, empty, or single-element queue, or a nil rng. On a read
// failure an error wrapping ErrRandomSource is returned and the queue
// retains its full set of elements in unspecified order.
func (q *Queue) Shuffle(rng io.Reader) error {
	if !q.valid() || rng == nil || q.arena.Empty(q.head) || q.arena.Singular(q.head) {
		return nil
	}

	a := q.arena
	result := a.Head()

	for i := q.Len(); i >= 1; i-- {
		j := 0
		if i > 1 {
			var err error
			if j, err = drawIndex(rng, uint32(i)); err != nil {
				// keep the multiset intact: already-placed
				// elements return to the queue ahead of the rest
				a.Splice(result, q.head)
				a.Release(result)
				return fmt.Errorf("%w: %w", ErrRandomSource, err)
			}
		}

		a.MoveBefore(a.Advance(q.head, q.head, j+1), result)
	}

	a.Splice(result, q.head)
	a.Release(result)
	return nil
}

// drawIndex returns an unbiased index in [0, bound) from 32-bit draws
// by rejection sampling: values below (2^32 - bound) mod bound are
// discarded so that the final modulo reduction is exact.
func drawIndex(rng io.Reader, bound uint32) (int, error) {
	threshold := -bound % bound

	var buf [4]byte
	for {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return 0, err
		}

		if r := binary.LittleEndian.Uint32(buf[:]); r >= threshold {
			return int(r % bound), nil
		}
	}
}
