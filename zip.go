package cursorkit

import (
	"fmt"

	"go.llib.dev/frameless/port/option"
)

// Pair is the element a Zip2 traversal produces.
type Pair[A, B any] struct {
	A A
	B B
}

// Triple is the element a Zip3 traversal produces.
type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// Indexed is the element an Enumerate traversal produces.
type Indexed[V any] struct {
	Index int
	Value V
}

// Cursors2 is the held value of a Zip2 cursor:
// the two sub-cursors that move in lockstep.
type Cursors2[TA, A, TB, B any] struct {
	A Cursor[TA, A]
	B Cursor[TB, B]
}

// Cursors3 is the held value of a Zip3 cursor.
type Cursors3[TA, A, TB, B, TC, C any] struct {
	A Cursor[TA, A]
	B Cursor[TB, B]
	C Cursor[TC, C]
}

// Zip2 walks two sequences in lockstep and yields their values pairwise.
//
// Termination is governed by the authoritative input alone,
// which defaults to the last one,
// so order the inputs to make the shortest sequence the last argument.
// When another input runs out before the authoritative one,
// its side of the produced pairs falls back to the zero value.
func Zip2[TA, A, TB, B any](as Iterable[TA, A], bs Iterable[TB, B], opts ...ZipOption) Sequence[Cursors2[TA, A, TB, B], Pair[A, B]] {
	c := option.Use(opts)
	authority := c.authority("Zip2", 2)
	deref := func(cs Cursors2[TA, A, TB, B]) Pair[A, B] {
		a, _ := cs.A.Value()
		b, _ := cs.B.Value()
		return Pair[A, B]{A: a, B: b}
	}
	begin := zip2Cursor(Cursors2[TA, A, TB, B]{A: as.Begin(), B: bs.Begin()}, authority, deref)
	end := zip2Cursor(Cursors2[TA, A, TB, B]{A: as.End(), B: bs.End()}, authority, deref)
	return Wrap(begin, end)
}

// Zip3 is Zip2 for three sequences.
func Zip3[TA, A, TB, B, TC, C any](as Iterable[TA, A], bs Iterable[TB, B], cs Iterable[TC, C], opts ...ZipOption) Sequence[Cursors3[TA, A, TB, B, TC, C], Triple[A, B, C]] {
	c := option.Use(opts)
	authority := c.authority("Zip3", 3)
	deref := func(cur Cursors3[TA, A, TB, B, TC, C]) Triple[A, B, C] {
		a, _ := cur.A.Value()
		b, _ := cur.B.Value()
		v, _ := cur.C.Value()
		return Triple[A, B, C]{A: a, B: b, C: v}
	}
	begin := zip3Cursor(Cursors3[TA, A, TB, B, TC, C]{A: as.Begin(), B: bs.Begin(), C: cs.Begin()}, authority, deref)
	end := zip3Cursor(Cursors3[TA, A, TB, B, TC, C]{A: as.End(), B: bs.End(), C: cs.End()}, authority, deref)
	return Wrap(begin, end)
}

// Enumerate pairs every value of src with its zero-based position in the traversal.
//
// Under the hood it is a Zip2 of an unbounded index sequence with src,
// where src, being the last input, governs the termination.
func Enumerate[T, V any](src Iterable[T, V]) Sequence[Cursors2[int, int, T, V], Indexed[V]] {
	index := Unbounded(0, 1)
	deref := func(cs Cursors2[int, int, T, V]) Indexed[V] {
		i, _ := cs.A.Value()
		v, _ := cs.B.Value()
		return Indexed[V]{Index: i, Value: v}
	}
	begin := zip2Cursor(Cursors2[int, int, T, V]{A: index.Begin(), B: src.Begin()}, 2, deref)
	end := zip2Cursor(Cursors2[int, int, T, V]{A: index.End(), B: src.End()}, 2, deref)
	return Wrap(begin, end)
}

func zip2Cursor[TA, A, TB, B, V any](
	start Cursors2[TA, A, TB, B],
	authority int,
	deref DerefFunc[Cursors2[TA, A, TB, B], V],
) Cursor[Cursors2[TA, A, TB, B], V] {
	adv := AdvanceFunc[Cursors2[TA, A, TB, B]](func(p *Position[Cursors2[TA, A, TB, B]]) {
		cs, ok := p.Lookup()
		if !ok {
			return
		}
		cs.A.Advance()
		cs.B.Advance()
		p.Set(cs)
	})
	eq := func(x, y Cursors2[TA, A, TB, B]) bool {
		switch authority {
		case 1:
			return x.A.Equal(y.A)
		default:
			return x.B.Equal(y.B)
		}
	}
	return New(At(start), adv, deref, eq)
}

func zip3Cursor[TA, A, TB, B, TC, C, V any](
	start Cursors3[TA, A, TB, B, TC, C],
	authority int,
	deref DerefFunc[Cursors3[TA, A, TB, B, TC, C], V],
) Cursor[Cursors3[TA, A, TB, B, TC, C], V] {
	adv := AdvanceFunc[Cursors3[TA, A, TB, B, TC, C]](func(p *Position[Cursors3[TA, A, TB, B, TC, C]]) {
		cs, ok := p.Lookup()
		if !ok {
			return
		}
		cs.A.Advance()
		cs.B.Advance()
		cs.C.Advance()
		p.Set(cs)
	})
	eq := func(x, y Cursors3[TA, A, TB, B, TC, C]) bool {
		switch authority {
		case 1:
			return x.A.Equal(y.A)
		case 2:
			return x.B.Equal(y.B)
		default:
			return x.C.Equal(y.C)
		}
	}
	return New(At(start), adv, deref, eq)
}

type ZipConfig struct {
	// Authority is the 1 based argument position of the input
	// whose end decides when the zipped traversal stops.
	//
	// Default: the last input
	Authority int
}

func (c ZipConfig) Configure(t *ZipConfig) { option.Configure(c, t) }

func (c ZipConfig) authority(op string, arity int) int {
	if c.Authority == 0 {
		return arity
	}
	if c.Authority < 0 || arity < c.Authority {
		panic(fmt.Sprintf("[%s] invalid authority: %d", op, c.Authority))
	}
	return c.Authority
}

type ZipOption option.Option[ZipConfig]

// ZipAuthority selects which input of a Zip2 or Zip3 governs termination,
// by its 1 based argument position.
func ZipAuthority(n int) ZipOption {
	return option.Func[ZipConfig](func(c *ZipConfig) {
		c.Authority = n
	})
}
