package cursorkit

import (
	"go.llib.dev/cursorkit/internal/constraints"
	"go.llib.dev/frameless/pkg/compare"
	"go.llib.dev/frameless/pkg/pointer"
)

// EqualValues compares held values with the == operator.
func EqualValues[T comparable]() EqualFunc[T] {
	return func(a, b T) bool { return a == b }
}

// EqualAddresses treats two pointer positions as the same place
// only when they point at the same storage,
// regardless of whether the pointed-at values happen to be equal.
func EqualAddresses[E any]() EqualFunc[*E] {
	return func(a, b *E) bool { return a == b }
}

// NeverEqual reports every pair of held values as different places.
// It suits unbounded sequences whose termination is imposed from outside,
// for example by the authoritative partner of a Zip2.
func NeverEqual[T any]() EqualFunc[T] {
	return func(a, b T) bool { return false }
}

// EqualComparable compares held values through their own Compare method.
func EqualComparable[T compare.Interface[T]]() EqualFunc[T] {
	return func(a, b T) bool { return compare.IsEqual(a.Compare(b)) }
}

// EqualCmp is EqualComparable for types that follow the math/big Cmp convention.
func EqualCmp[T compare.ShortInterface[T]]() EqualFunc[T] {
	return func(a, b T) bool { return compare.IsEqual(a.Cmp(b)) }
}

// Identity exposes the held value itself as the element.
func Identity[T any]() DerefFunc[T, T] {
	return func(v T) T { return v }
}

// Indirect exposes the value that a pointer position points at.
func Indirect[E any]() DerefFunc[*E, E] {
	return func(ptr *E) E { return pointer.Deref(ptr) }
}

// StepBy returns the advancing strategy that adds a constant step
// to a numeric held value.
func StepBy[N constraints.Number](step N) Advancer[N] {
	return stepper[N]{step: step}
}

type stepper[N constraints.Number] struct{ step N }

func (s stepper[N]) Advance(p *Position[N]) {
	if v, ok := p.Lookup(); ok {
		p.Set(v + s.step)
	}
}
