package ring

import (
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestArena(t *testing.T) {
	t.Run("AllocStartsDetached", func(t *testing.T) {
		a := NewArena[string](4)
		r := a.Alloc("one")
		assert.True(t, a.Alive(r))
		assert.Equal(t, a.Value(r), "one")
		check.Equal(t, a.Next(r), Nil)
		check.Equal(t, a.Prev(r), Nil)
	})
	t.Run("HeadIsSelfLinked", func(t *testing.T) {
		a := NewArena[string](4)
		h := a.Head()
		assert.True(t, a.Alive(h))
		check.Equal(t, a.Next(h), h)
		check.Equal(t, a.Prev(h), h)
		check.True(t, a.Empty(h))
		check.True(t, !a.Singular(h))
	})
	t.Run("ReleaseRecyclesSlots", func(t *testing.T) {
		a := NewArena[int](4)
		r := a.Alloc(42)
		grown := a.Len()

		a.Release(r)
		assert.True(t, !a.Alive(r))
		check.Equal(t, a.Value(r), 0)

		// the next allocation reuses the released index before
		// the slab grows
		again := a.Alloc(7)
		assert.Equal(t, again, r)
		assert.Equal(t, a.Len(), grown)
	})
	t.Run("DoubleReleaseIsNoop", func(t *testing.T) {
		a := NewArena[int](4)
		r := a.Alloc(1)
		a.Release(r)
		a.Release(r)
		a.Release(Nil)
		a.Release(Ref(9000))

		one := a.Alloc(10)
		two := a.Alloc(20)
		assert.NotEqual(t, one, two)
		check.Equal(t, a.Value(one), 10)
		check.Equal(t, a.Value(two), 20)
	})
	t.Run("ReleaseRefusesLinkedSlots", func(t *testing.T) {
		a := NewArena[string](4)
		h := a.Head()
		r := a.Alloc("linked")
		a.InsertAfter(h, r)

		a.Release(r)
		assert.True(t, a.Alive(r))
		check.Equal(t, a.Next(h), r)
	})
	t.Run("ReleaseAcceptsEmptySentinel", func(t *testing.T) {
		a := NewArena[string](4)
		h := a.Head()
		a.Release(h)
		assert.True(t, !a.Alive(h))
	})
	t.Run("SetValue", func(t *testing.T) {
		a := NewArena[string](4)
		r := a.Alloc("before")
		a.SetValue(r, "after")
		assert.Equal(t, a.Value(r), "after")

		a.SetValue(Nil, "nowhere")
		check.Equal(t, a.Value(Nil), "")
	})
	t.Run("DeadSlotAccessors", func(t *testing.T) {
		a := NewArena[string](4)
		r := a.Alloc("gone")
		a.Release(r)
		check.Equal(t, a.Value(r), "")
		check.Equal(t, a.Next(r), Nil)
		check.Equal(t, a.Prev(r), Nil)
	})
}
