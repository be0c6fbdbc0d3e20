// Package constraints contains the type sets shared by the cursorkit generics.
package constraints

type Int interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type UInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

// Integer is the type set of all fixed-size integer kinds.
type Integer interface {
	Int | UInt
}

// Number is the type set of everything that supports the arithmetic operators.
type Number interface {
	Int | UInt | Float
}
