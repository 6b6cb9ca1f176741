package omap

import "github.com/niceyeti/stl/internal/errs"

// Iterator references a position in the map's in-order traversal.
// Iterators survive splay rotations (rotations only touch parent/child
// pointers, never the in-order list) and survive unrelated inserts; using
// an iterator after the node it references has been erased is undefined.
type Iterator[K any, V any] struct {
	node *node[K, V]
	end  *node[K, V]
}

// belongsTo reports whether it was produced by m.
func (it Iterator[K, V]) belongsTo(m *Map[K, V]) bool {
	return it.end == m.end
}

// Valid reports whether it references a real element rather than End().
func (it Iterator[K, V]) Valid() bool {
	return it.node != nil && it.node != it.end
}

// Key returns the referenced element's key.
// Returns errs.ErrIndexOutOfBound if it references End().
func (it Iterator[K, V]) Key() (K, error) {
	if !it.Valid() {
		var zero K
		return zero, errs.ErrIndexOutOfBound
	}
	return it.node.key, nil
}

// Value returns the referenced element's value.
// Returns errs.ErrIndexOutOfBound if it references End().
func (it Iterator[K, V]) Value() (V, error) {
	if !it.Valid() {
		var zero V
		return zero, errs.ErrIndexOutOfBound
	}
	return it.node.value, nil
}

// SetValue overwrites the referenced element's value in place.
// Returns errs.ErrIndexOutOfBound if it references End().
func (it Iterator[K, V]) SetValue(v V) error {
	if !it.Valid() {
		return errs.ErrIndexOutOfBound
	}
	it.node.value = v
	return nil
}

// Next advances it to the following element in ascending order.
// Returns errs.ErrInvalidIterator if it already references End().
func (it Iterator[K, V]) Next() (Iterator[K, V], error) {
	if it.node == it.end {
		return it, errs.ErrInvalidIterator
	}
	return Iterator[K, V]{node: it.node.next, end: it.end}, nil
}

// Prev moves it to the preceding element in ascending order.
// Returns errs.ErrInvalidIterator if it already references Begin().
func (it Iterator[K, V]) Prev() (Iterator[K, V], error) {
	if it.node.prev == it.end {
		return it, errs.ErrInvalidIterator
	}
	return Iterator[K, V]{node: it.node.prev, end: it.end}, nil
}

// Equal reports whether it and other reference the same position.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}
