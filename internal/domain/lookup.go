package domain

// Lookup is the outcome of a read by identifier: either a value was found or
// nothing exists under that identifier. It replaces a nullable return so the
// absent branch has to be handled explicitly (see HandleNotFound).
type Lookup[T any] struct {
	value T
	found bool
}

// Found wraps a value that was located in the store.
func Found[T any](v T) Lookup[T] {
	return Lookup[T]{value: v, found: true}
}

// Absent reports that no value exists for the requested identifier.
func Absent[T any]() Lookup[T] {
	return Lookup[T]{}
}

// Get returns the value and whether it was found.
func (l Lookup[T]) Get() (T, bool) {
	return l.value, l.found
}
