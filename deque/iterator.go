package deque

import "github.com/niceyeti/stl/internal/errs"

// Iterator references a single position within a Deque: either a real
// element or the past-the-end position. Unlike omap's tree-node iterators,
// a deque Iterator carries its own rank so that Add/Sub can jump by an
// arbitrary offset in O(sqrt(n)) via a fresh seek, rather than walking
// element by element.
type Iterator[T any] struct {
	owner  *Deque[T]
	rank   int
	block  *block[T]
	offset int
}

// Value returns the element the iterator references.
// Returns errs.ErrIndexOutOfBound if the iterator is past-the-end.
func (it Iterator[T]) Value() (T, error) {
	if it.block == it.owner.end {
		var zero T
		return zero, errs.ErrIndexOutOfBound
	}
	return it.block.buf[it.block.l+it.offset], nil
}

// SetValue overwrites the element the iterator references.
// Returns errs.ErrIndexOutOfBound if the iterator is past-the-end.
func (it Iterator[T]) SetValue(v T) error {
	if it.block == it.owner.end {
		return errs.ErrIndexOutOfBound
	}
	it.block.buf[it.block.l+it.offset] = v
	return nil
}

// Next returns an iterator to the following element.
// Returns errs.ErrInvalidIterator if it is already past-the-end.
func (it Iterator[T]) Next() (Iterator[T], error) {
	if it.block == it.owner.end {
		return Iterator[T]{}, errs.ErrInvalidIterator
	}
	if it.offset+1 < it.block.size() {
		return Iterator[T]{owner: it.owner, rank: it.rank + 1, block: it.block, offset: it.offset + 1}, nil
	}
	return Iterator[T]{owner: it.owner, rank: it.rank + 1, block: it.block.next, offset: 0}, nil
}

// Prev returns an iterator to the preceding element.
// Returns errs.ErrInvalidIterator if it is already at Begin() (this also
// correctly rejects Prev() on an empty deque's Begin()/End(), since both
// coincide with end.prev == end there).
func (it Iterator[T]) Prev() (Iterator[T], error) {
	if it.block.prev == it.owner.end && it.offset == 0 {
		return Iterator[T]{}, errs.ErrInvalidIterator
	}
	if it.offset > 0 {
		return Iterator[T]{owner: it.owner, rank: it.rank - 1, block: it.block, offset: it.offset - 1}, nil
	}
	prev := it.block.prev
	return Iterator[T]{owner: it.owner, rank: it.rank - 1, block: prev, offset: prev.size() - 1}, nil
}

// Add returns an iterator n positions ahead of it (n may be negative).
// The result is computed by a fresh seek from rank, not by incremental
// walking, so this is the efficient way to jump by more than one position.
func (it Iterator[T]) Add(n int) Iterator[T] {
	return it.owner.iteratorAt(it.rank + n)
}

// Sub returns an iterator n positions behind it.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	return it.owner.iteratorAt(it.rank - n)
}

// Diff returns the number of positions from other to it (it.rank -
// other.rank). Returns errs.ErrInvalidIterator if the two iterators belong
// to different deques.
func (it Iterator[T]) Diff(other Iterator[T]) (int, error) {
	if it.owner != other.owner {
		return 0, errs.ErrInvalidIterator
	}
	return it.rank - other.rank, nil
}

// Equal reports whether it and other reference the same position in the
// same deque.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.owner == other.owner && it.rank == other.rank
}
