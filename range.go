package cursorkit

import (
	"go.llib.dev/cursorkit/internal/constraints"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

// Progression returns a cursor standing on start that advances by step.
// It has no built-in end; pair it against a cursor standing on the sentinel value,
// or use Range which does that for you.
func Progression[N constraints.Number](start, step N) Cursor[N, N] {
	return New(At(start), StepBy(step), Identity[N](), EqualValues[N]())
}

// Range returns the arithmetic sequence that starts at begin
// and yields every begin+n*step value below end (above end for a negative step).
//
// The end value itself is never part of the sequence.
// When step doesn't divide the distance evenly,
// the traversal stops at the first progression value past end,
// so Range(2, 10, RangeStep(3)) yields 2, 5, 8.
// A begin and end in contradiction with the step's direction make an empty sequence.
func Range[N constraints.Integer](begin, end N, opts ...RangeOption[N]) Sequence[N, N] {
	c := option.Use(opts)
	step := zerokit.Coalesce(c.Step, 1)
	if (0 < step && end < begin) || (step < 0 && begin < end) {
		end = begin
	}
	// align the sentinel onto the progression, else begin can step over it
	if m := (end - begin) % step; m != 0 {
		end += step - m
	}
	return Wrap(Progression(begin, step), Progression(end, step))
}

// RangeTo is Range starting from zero.
func RangeTo[N constraints.Integer](end N, opts ...RangeOption[N]) Sequence[N, N] {
	return Range(0, end, opts...)
}

// Unbounded returns the endless arithmetic sequence start, start+step, start+2*step and so on.
// Traversing it on its own never finishes;
// it is meant to be bounded externally, like the index side of Enumerate.
func Unbounded[N constraints.Number](start, step N) Sequence[N, N] {
	mk := func() Cursor[N, N] {
		return New(At(start), StepBy(step), Identity[N](), NeverEqual[N]())
	}
	return Wrap(mk(), mk())
}

type RangeConfig[N constraints.Integer] struct {
	// Step is the difference between two consecutive values of the range.
	//
	// Default: 1
	Step N
}

func (c RangeConfig[N]) Configure(t *RangeConfig[N]) { option.Configure(c, t) }

type RangeOption[N constraints.Integer] option.Option[RangeConfig[N]]

// RangeStep sets the increment of a Range.
// A zero step cannot make progress, asking for it is a programmer error.
func RangeStep[N constraints.Integer](step N) RangeOption[N] {
	if step == 0 {
		panic("[RangeStep] invalid step: 0")
	}
	return option.Func[RangeConfig[N]](func(c *RangeConfig[N]) {
		c.Step = step
	})
}
