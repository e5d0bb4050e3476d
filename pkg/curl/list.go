package curl

import "fmt"

// CapacityError reports that a pre-sized pool ran out of room. It is raised
// as a panic: the mesh was configured with too few curl splits for the
// requested geometry.
type CapacityError struct {
	Pool     string
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("curl: %s pool exhausted (capacity %d)", e.Pool, e.Capacity)
}

// fixedList is a fixed capacity list backed by a slice allocated once.
// It never grows; exceeding capacity panics with *CapacityError.
type fixedList[T any] struct {
	name  string
	items []T
	n     int
}

func newFixedList[T any](name string, capacity int) *fixedList[T] {
	return &fixedList[T]{name: name, items: make([]T, capacity)}
}

func (l *fixedList[T]) Len() int { return l.n }

func (l *fixedList[T]) Cap() int { return len(l.items) }

func (l *fixedList[T]) Clear() { l.n = 0 }

// At returns a pointer to element i.
func (l *fixedList[T]) At(i int) *T {
	if i < 0 || i >= l.n {
		panic(fmt.Sprintf("curl: %s index %d out of range [0,%d)", l.name, i, l.n))
	}
	return &l.items[i]
}

// Push appends v.
func (l *fixedList[T]) Push(v T) {
	if l.n >= len(l.items) {
		panic(&CapacityError{Pool: l.name, Capacity: len(l.items)})
	}
	l.items[l.n] = v
	l.n++
}

// Insert places v at index i, shifting the tail right.
func (l *fixedList[T]) Insert(i int, v T) {
	if i < 0 || i > l.n {
		panic(fmt.Sprintf("curl: %s insert index %d out of range [0,%d]", l.name, i, l.n))
	}
	if l.n >= len(l.items) {
		panic(&CapacityError{Pool: l.name, Capacity: len(l.items)})
	}
	copy(l.items[i+1:l.n+1], l.items[i:l.n])
	l.items[i] = v
	l.n++
}

// Slice returns the live elements. The slice aliases the backing storage.
func (l *fixedList[T]) Slice() []T {
	return l.items[:l.n]
}
