package cursorkit

// Reverse returns the back to front traversal of src as a regular Sequence,
// so everything that consumes an Iterable can also consume a reversed one.
func Reverse[T, V any](src ReverseIterable[T, V]) Sequence[T, V] {
	return Wrap(src.RBegin(), src.REnd())
}
