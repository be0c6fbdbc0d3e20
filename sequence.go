package cursorkit

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Iterable is the role interface of anything that can hand out
// a begin cursor along with the end cursor that terminates it.
type Iterable[T, V any] interface {
	// Begin returns a cursor standing on the first value of the sequence.
	// For an empty sequence, the returned cursor is either exhausted or equal to End.
	Begin() Cursor[T, V]
	// End returns the cursor that marks where the traversal must stop.
	// The end cursor itself is never dereferenced.
	End() Cursor[T, V]
}

// ReverseIterable is the role interface of sequences
// that can also be walked from their back towards their front.
type ReverseIterable[T, V any] interface {
	// RBegin returns a cursor standing on the last value of the sequence.
	RBegin() Cursor[T, V]
	// REnd returns the cursor that terminates the backwards traversal.
	REnd() Cursor[T, V]
}

// Sequence is a begin cursor bundled with its end cursor.
// It is what the composition functions of this package return,
// and the simplest way to satisfy Iterable for ad-hoc cursor pairs.
type Sequence[T, V any] struct {
	begin Cursor[T, V]
	end   Cursor[T, V]
}

// Wrap bundles a begin and an end cursor into a Sequence.
func Wrap[T, V any](begin, end Cursor[T, V]) Sequence[T, V] {
	return Sequence[T, V]{begin: begin, end: end}
}

// Begin returns a copy of the sequence's begin cursor.
// Advancing the copy leaves the sequence reusable.
func (s Sequence[T, V]) Begin() Cursor[T, V] { return s.begin }

// End returns a copy of the sequence's end cursor.
func (s Sequence[T, V]) End() Cursor[T, V] { return s.end }

// Iter adapts the sequence into an iter.Seq to make it range-able.
func (s Sequence[T, V]) Iter() iter.Seq[V] { return Values[T, V](s) }

// Values traverses src from its begin cursor until the end cursor is reached
// or the walking cursor exhausts, whichever comes first.
func Values[T, V any](src Iterable[T, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		end := src.End()
		for c := src.Begin(); c.IsLive() && !c.Equal(end); c.Advance() {
			v, _ := c.Value()
			if !yield(v) {
				return
			}
		}
	}
}

// Collect exhausts src and returns all its values in a slice.
// Calling it on an unbounded sequence won't return.
func Collect[T, V any](src Iterable[T, V]) []V {
	return iterkit.Collect(Values[T, V](src))
}

// Count exhausts src and returns how many values the traversal produced.
func Count[T, V any](src Iterable[T, V]) int {
	return iterkit.Count(Values[T, V](src))
}

// Slice makes the values of a Go slice traversable through cursors,
// both front to back and back to front.
type Slice[E any] []E

// Begin returns a cursor on the first element of the slice.
func (vs Slice[E]) Begin() Cursor[int, E] { return vs.cursorAt(0, 1) }

// End returns the cursor terminating the forward traversal.
func (vs Slice[E]) End() Cursor[int, E] { return Cursor[int, E]{} }

// RBegin returns a cursor on the last element of the slice.
func (vs Slice[E]) RBegin() Cursor[int, E] { return vs.cursorAt(len(vs)-1, -1) }

// REnd returns the cursor terminating the backwards traversal.
func (vs Slice[E]) REnd() Cursor[int, E] { return Cursor[int, E]{} }

// Iter adapts the slice's forward traversal into an iter.Seq.
func (vs Slice[E]) Iter() iter.Seq[E] { return Values[int, E](vs) }

func (vs Slice[E]) cursorAt(start, dir int) Cursor[int, E] {
	var pos Position[int]
	if 0 <= start && start < len(vs) {
		pos = At(start)
	}
	adv := AdvanceFunc[int](func(p *Position[int]) {
		i, ok := p.Lookup()
		if !ok {
			return
		}
		if next := i + dir; 0 <= next && next < len(vs) {
			p.Set(next)
		} else {
			p.Unset()
		}
	})
	deref := func(i int) E { return vs[i] }
	return New(pos, adv, deref, EqualValues[int]())
}

// FromSeq adapts an iter.Seq into a cursor backed Sequence.
//
// The returned Sequence is single use:
// its cursors pull from the same underlying source,
// and draining the source leaves every cursor of the sequence equal to End,
// so a finished sequence yields no further values.
func FromSeq[V any](src iter.Seq[V]) Sequence[V, V] {
	next, stop := iter.Pull(src)
	v, ok := next()
	if !ok {
		stop()
		return Wrap(Cursor[V, V]{}, Cursor[V, V]{})
	}
	var zero V
	var drained bool
	adv := AdvanceFunc[V](func(p *Position[V]) {
		if v, ok := next(); ok {
			p.Set(v)
			return
		}
		stop()
		drained = true
		p.Set(zero)
	})
	// once the source drains, every cursor of the sequence is equal to the live End
	eq := func(a, b V) bool { return drained }
	return Wrap(
		New(At(v), adv, Identity[V](), eq),
		New(At(zero), nil, Identity[V](), eq),
	)
}
