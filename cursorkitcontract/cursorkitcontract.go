// Package cursorkitcontract has the contracts that cursor backed sequence implementations must honour.
package cursorkitcontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/cursorkit"
	"go.llib.dev/frameless/port/contract"
)

// traverseLimit caps traversals so an accidental unbounded subject can't hang the suite.
const traverseLimit = 4096

// Iterable validates the cursor laws on a sequence implementation.
// The made subject should hold at least one value whenever possible,
// and must be finite.
func Iterable[T, V any](mk func(testing.TB) cursorkit.Iterable[T, V]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) cursorkit.Iterable[T, V] {
		return mk(t)
	})

	s.Then("the guarded traversal dereferences cleanly at every visited place", func(t *testcase.T) {
		src := subject.Get(t)
		end := src.End()
		var n int
		for c := src.Begin(); c.IsLive() && !c.Equal(end); c.Advance() {
			_, err := c.Value()
			assert.NoError(t, err)
			n++
			assert.True(t, n < traverseLimit, "subject is expected to be a finite sequence")
		}
	})

	s.Then("begin hands out independently advancing cursor copies", func(t *testcase.T) {
		src := subject.Get(t)
		c1, c2 := src.Begin(), src.Begin()
		assert.Equal(t, c1.IsLive(), c2.IsLive())
		if !c1.IsLive() {
			return
		}
		v1, err := c1.Value()
		assert.NoError(t, err)
		v2, err := c2.Value()
		assert.NoError(t, err)
		assert.Equal(t, v1, v2)
		c1.Advance()
		after, err := c2.Value()
		assert.NoError(t, err)
		assert.Equal(t, v2, after)
	})

	s.Then("a cursor that ran out of values stays exhausted", func(t *testcase.T) {
		src := subject.Get(t)
		end := src.End()
		c := src.Begin()
		for i := 0; c.IsLive() && !c.Equal(end); i++ {
			assert.True(t, i < traverseLimit, "subject is expected to be a finite sequence")
			c.Advance()
		}
		if c.IsLive() {
			t.Log("the traversal finished on a live cursor, exhaustion has nothing to verify here")
			return
		}
		for range 3 {
			_, err := c.Value()
			assert.ErrorIs(t, err, cursorkit.ErrExhausted)
			c.Advance()
			assert.False(t, c.IsLive())
		}
		var zero cursorkit.Cursor[T, V]
		assert.True(t, c.Equal(zero), "exhausted cursors are expected to be equal")
	})

	return s.AsSuite("cursorkit.Iterable")
}

// ReverseIterable validates that walking a sequence backwards
// mirrors walking it forwards.
// The made subject must also implement cursorkit.Iterable.
func ReverseIterable[T, V any](mk func(testing.TB) cursorkit.ReverseIterable[T, V]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) cursorkit.ReverseIterable[T, V] {
		return mk(t)
	})

	s.Then("the backwards traversal dereferences cleanly at every visited place", func(t *testcase.T) {
		src := subject.Get(t)
		end := src.REnd()
		var n int
		for c := src.RBegin(); c.IsLive() && !c.Equal(end); c.Advance() {
			_, err := c.Value()
			assert.NoError(t, err)
			n++
			assert.True(t, n < traverseLimit, "subject is expected to be a finite sequence")
		}
	})

	s.Then("the backwards traversal is the mirror of the forward one", func(t *testcase.T) {
		src := subject.Get(t)
		fwd, ok := src.(cursorkit.Iterable[T, V])
		if !ok {
			t.Skip("the subject only supports backwards traversal")
		}
		forward := cursorkit.Collect(fwd)
		backward := cursorkit.Collect(cursorkit.Reverse(src))
		assert.Equal(t, len(forward), len(backward))
		for i, v := range forward {
			assert.Equal(t, v, backward[len(backward)-1-i])
		}
	})

	return s.AsSuite("cursorkit.ReverseIterable")
}
