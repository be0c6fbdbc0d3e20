// package cursorkit provide building blocks to define sequence traversal with cursors.
//
// # Summary
//
// A Cursor is a small copyable value that knows where it stands in a sequence,
// how to move one step forward, what element it currently exposes,
// and when it counts as being at the same place as another cursor.
// These three concerns are independent strategies,
// so a new sequence type only has to supply the parts that differ from an existing one.
// Pairing a begin cursor with an end cursor gives a Sequence,
// which the rest of the package (Range, Reverse, Zip2, Enumerate)
// composes without knowing anything about the underlying source of the data.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package cursorkit

import (
	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrExhausted is returned when a cursor's element is requested
// after the cursor already ran out of the sequence it belongs to.
const ErrExhausted errorkit.Error = "cursorkit: exhausted cursor got dereferenced"

// Position is the location state of a Cursor.
// While set, it holds the value from which the cursor derives its element.
// The zero Position is unset, which stands for a cursor past the end of its sequence.
type Position[T any] struct {
	value T
	ok    bool
}

// At returns a Position standing on v.
func At[T any](v T) Position[T] {
	return Position[T]{value: v, ok: true}
}

// Lookup returns the held value and whether the position is currently set.
func (p Position[T]) Lookup() (T, bool) {
	return p.value, p.ok
}

// Set moves the position onto v.
func (p *Position[T]) Set(v T) {
	p.value, p.ok = v, true
}

// Unset clears the position, marking the cursor as exhausted.
// An unset position stays unset; advancing won't bring it back.
func (p *Position[T]) Unset() {
	var zero T
	p.value, p.ok = zero, false
}

// Advancer is the strategy that moves a position one step forward in its sequence.
//
// Advance may update the held value or call Position.Unset
// when the sequence has no further values.
// A Cursor never calls Advance on an already unset position.
type Advancer[T any] interface {
	Advance(*Position[T])
}

// AdvanceFunc is an adapter to allow the use of ordinary functions as Advancer.
type AdvanceFunc[T any] func(*Position[T])

func (fn AdvanceFunc[T]) Advance(p *Position[T]) { fn(p) }

// DerefFunc is the strategy that projects a position's held value
// into the element the consumer receives.
type DerefFunc[T, V any] func(T) V

// EqualFunc is the strategy that decides whether two held values
// refer to the same place in a sequence.
type EqualFunc[T any] func(a, b T) bool

// Cursor points into a sequence of V elements through a held value of type T.
//
// Cursor is a value object; copies move independently.
// The zero Cursor is exhausted.
type Cursor[T, V any] struct {
	pos      Position[T]
	advancer Advancer[T]
	deref    DerefFunc[T, V]
	equal    EqualFunc[T]
}

// New composes a cursor out of its starting position and its three strategies.
//
// A nil adv makes the cursor exhaust on its first Advance.
// The eq strategy may be left nil only when the cursor's end
// is detected through exhaustion rather than through comparing against an end cursor.
func New[T, V any](start Position[T], adv Advancer[T], deref DerefFunc[T, V], eq EqualFunc[T]) Cursor[T, V] {
	return Cursor[T, V]{
		pos:      start,
		advancer: adv,
		deref:    deref,
		equal:    eq,
	}
}

// IsLive reports whether the cursor still stands on a value.
func (c *Cursor[T, V]) IsLive() bool {
	_, ok := c.pos.Lookup()
	return ok
}

// Value returns the element the cursor currently stands on.
// After the cursor ran out of values, it keeps returning ErrExhausted.
func (c *Cursor[T, V]) Value() (V, error) {
	v, ok := c.pos.Lookup()
	if !ok {
		var zero V
		return zero, ErrExhausted
	}
	return c.deref(v), nil
}

// Advance moves the cursor one step forward.
// On an exhausted cursor it is a no-op.
func (c *Cursor[T, V]) Advance() {
	if !c.IsLive() {
		return
	}
	if c.advancer == nil {
		c.pos.Unset()
		return
	}
	c.advancer.Advance(&c.pos)
}

// Equal reports whether the two cursors stand at the same place.
//
// Two exhausted cursors are always equal, an exhausted and a live one never,
// and two live cursors are compared with the receiver's equality strategy.
func (c *Cursor[T, V]) Equal(oth Cursor[T, V]) bool {
	a, aok := c.pos.Lookup()
	b, bok := oth.pos.Lookup()
	if !aok || !bok {
		return aok == bok
	}
	return c.equal(a, b)
}
