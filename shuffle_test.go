package strq_test

import (
	crand "crypto/rand"
	"errors"
	"io"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
	"github.com/tychoish/fun/testt"

	"github.com/ashert/strq"
)

// brokenReader fails after a fixed number of successful reads.
type brokenReader struct {
	remaining int
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if r.remaining <= 0 {
		return 0, io.ErrUnexpectedEOF
	}
	r.remaining--
	for i := range p {
		p[i] = 0x5a
	}
	return len(p), nil
}

func TestShuffle(t *testing.T) {
	t.Run("PreservesValues", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		q := strq.NewQueue()
		defer q.Free()

		want := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
		fill(t, q, want...)

		assert.NotError(t, q.Shuffle(rng))
		assert.NotError(t, q.Validate())

		got := q.Slice()
		assert.Equal(t, len(got), len(want))
		sort.Strings(got)
		for i := range want {
			check.Equal(t, got[i], want[i])
		}
	})
	t.Run("DeterministicSource", func(t *testing.T) {
		// identical sources yield identical permutations
		one := strq.NewQueue()
		two := strq.NewQueue()
		defer one.Free()
		defer two.Free()
		vals := []string{"1", "2", "3", "4", "5", "6"}
		fill(t, one, vals...)
		fill(t, two, vals...)

		assert.NotError(t, one.Shuffle(rand.New(rand.NewSource(7))))
		assert.NotError(t, two.Shuffle(rand.New(rand.NewSource(7))))

		a, b := one.Slice(), two.Slice()
		for i := range a {
			check.Equal(t, a[i], b[i])
		}
	})
	t.Run("TrivialInputs", func(t *testing.T) {
		q := strq.NewQueue()
		defer q.Free()

		assert.NotError(t, q.Shuffle(crand.Reader))
		fill(t, q, "solo")
		assert.NotError(t, q.Shuffle(crand.Reader))
		assertValues(t, q, "solo")

		var nilq *strq.Queue
		assert.NotError(t, nilq.Shuffle(crand.Reader))
	})
	t.Run("NilSource", func(t *testing.T) {
		q := strq.NewQueue()
		defer q.Free()
		fill(t, q, "a", "b")

		assert.NotError(t, q.Shuffle(nil))
		assertValues(t, q, "a", "b")
	})
	t.Run("SourceFailure", func(t *testing.T) {
		q := strq.NewQueue()
		defer q.Free()
		fill(t, q, "a", "b", "c", "d", "e")

		err := q.Shuffle(&brokenReader{remaining: 2})
		assert.Error(t, err)
		assert.True(t, errors.Is(err, strq.ErrRandomSource))
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))

		// order is unspecified after a failure, the value set is not
		assert.NotError(t, q.Validate())
		got := q.Slice()
		assert.Equal(t, len(got), 5)
		sort.Strings(got)
		for i, want := range []string{"a", "b", "c", "d", "e"} {
			check.Equal(t, got[i], want)
		}
	})
	t.Run("UniformPermutations", func(t *testing.T) {
		const trials = 3000
		q := strq.NewQueue()
		defer q.Free()
		fill(t, q, "a", "b", "c")

		counts := make(map[string]int, 6)
		for i := 0; i < trials; i++ {
			assert.NotError(t, q.Shuffle(crand.Reader))
			counts[strings.Join(q.Slice(), "")]++
		}

		assert.Equal(t, len(counts), 6)

		// chi-squared against uniform; 24.1 leaves p under 1e-4
		// at five degrees of freedom
		expected := float64(trials) / 6
		chi2 := 0.0
		for _, observed := range counts {
			diff := float64(observed) - expected
			chi2 += diff * diff / expected
		}

		testt.Logf(t, "chi2=%.3f counts=%v", chi2, counts)
		assert.True(t, chi2 < 24.1)
	})
}
