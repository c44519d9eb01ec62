// Package sorted provides a slice that stays in ascending order as values
// are pushed onto it.
//
// Vector keeps its elements sorted with a single insertion-sort step per
// push: the new value is appended and then swapped backward until it is no
// longer less than its predecessor. Because the slice is sorted before every
// push, only the new tail element can be out of place, so the step is O(n)
// worst case and O(1) when values arrive in order.
//
//	v := sorted.New(cmp.Compare[int])
//	v.Push(3)
//	v.Push(1)
//	max, _ := v.Peek() // 3
//
// Vector is not safe for concurrent use.
package sorted

import "iter"

// Vector is an always-sorted sequence ordered by a caller-supplied
// three-way comparison.
type Vector[T any] struct {
	items []T
	cmp   func(a, b T) int
}

// New creates an empty vector ordered by cmp.
// cmp must define a total order: negative when a < b, zero when equal,
// positive when a > b.
func New[T any](cmp func(a, b T) int) *Vector[T] {
	return &Vector[T]{cmp: cmp}
}

// Push inserts value, keeping the vector in ascending order.
// Values that compare equal keep their push order.
func (v *Vector[T]) Push(value T) {
	v.items = append(v.items, value)
	for i := len(v.items) - 1; i > 0; i-- {
		if v.cmp(v.items[i-1], v.items[i]) <= 0 {
			break
		}
		v.items[i-1], v.items[i] = v.items[i], v.items[i-1]
	}
}

// Peek returns the largest (last) element without removing it.
func (v *Vector[T]) Peek() (T, bool) {
	if len(v.items) == 0 {
		var zero T
		return zero, false
	}
	return v.items[len(v.items)-1], true
}

// Pop removes and returns the largest (last) element.
func (v *Vector[T]) Pop() (T, bool) {
	if len(v.items) == 0 {
		var zero T
		return zero, false
	}
	last := v.items[len(v.items)-1]
	var zero T
	v.items[len(v.items)-1] = zero
	v.items = v.items[:len(v.items)-1]
	return last, true
}

// At returns the element at index i in ascending order.
// It panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	return v.items[i]
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.items)
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return len(v.items) == 0
}

// Clear removes all elements, keeping the allocated capacity.
func (v *Vector[T]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
}

// All iterates over the elements in ascending order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the vector sharing the comparator.
func (v *Vector[T]) Clone() *Vector[T] {
	items := make([]T, len(v.items))
	copy(items, v.items)
	return &Vector[T]{items: items, cmp: v.cmp}
}
