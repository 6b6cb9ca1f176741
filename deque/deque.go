// Package deque implements a double-ended sequence with random access,
// built on an unrolled doubly linked list of bounded blocks rather than a
// single contiguous buffer (Go's slice) or a plain linked list — an
// asymptotic middle ground giving O(1) amortized push/pop at both ends and
// O(sqrt(n)) random access/positional insert/erase.
//
// NOTE: this container is not safe for concurrent use; callers must
// synchronize externally if shared.
package deque

import (
	"fmt"

	"github.com/niceyeti/stl/internal/errs"
	"github.com/niceyeti/stl/internal/pool"
)

// Default block-size and waste-ratio tunables, matching the source's
// template defaults.
const (
	DefaultBlockSize  = 1333
	DefaultWasteRatio = 5
)

// Config carries the construction-time tunables for a Deque. BlockSize is
// the capacity of each block in elements; WasteRatio controls both the
// slack threshold (BlockSize/WasteRatio) below which PushBack/PushFront
// open a new end block instead of recentering a full one, and the
// threshold at which two neighboring blocks are merged (suck) after an
// erase.
type Config struct {
	BlockSize  int
	WasteRatio int
}

// Deque is a sequence of elements of type T. The zero value is not usable;
// construct with New or NewWithConfig.
type Deque[T any] struct {
	end        *block[T] // sentinel; end.prev = last real block, end.next = first real block
	size       int
	blockSize  int
	wasteRatio int
	maxW       int
	pool       pool.Pool[block[T]]
}

// New returns an empty deque using the default block size and waste ratio.
func New[T any]() *Deque[T] {
	d, _ := NewWithConfig[T](Config{BlockSize: DefaultBlockSize, WasteRatio: DefaultWasteRatio})
	return d
}

// NewWithConfig returns an empty deque using the given tunables. Returns an
// error if BlockSize is not positive or WasteRatio is less than 2.
func NewWithConfig[T any](cfg Config) (*Deque[T], error) {
	if cfg.BlockSize <= 0 {
		return nil, fmt.Errorf("deque: block size must be positive, got %d", cfg.BlockSize)
	}
	if cfg.WasteRatio < 2 {
		return nil, fmt.Errorf("deque: waste ratio must be at least 2, got %d", cfg.WasteRatio)
	}

	d := &Deque[T]{
		blockSize:  cfg.BlockSize,
		wasteRatio: cfg.WasteRatio,
		maxW:       cfg.BlockSize / cfg.WasteRatio,
	}
	d.end = &block[T]{}
	d.end.prev, d.end.next = d.end, d.end
	return d, nil
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.size
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.size == 0
}

func (d *Deque[T]) newBlock() *block[T] {
	if b, ok := d.pool.Get(); ok {
		b.l, b.r = 0, 0
		return b
	}
	return &block[T]{buf: make([]T, d.blockSize)}
}

// linkNewBlock allocates a block and splices it into the ring between
// prev and next (which may both be the sentinel, when the deque is
// currently empty).
func (d *Deque[T]) linkNewBlock(prev, next *block[T]) *block[T] {
	b := d.newBlock()
	b.prev, b.next = prev, next
	prev.next = b
	next.prev = b
	return b
}

func (d *Deque[T]) unlinkBlock(b *block[T]) {
	b.prev.next = b.next
	b.next.prev = b.prev
	d.pool.Put(b)
}

// burst splits an over-full block x by moving the second half of its
// elements into a fresh successor block's front, preserving order. The
// source computes the move count via a single loop whose bound shifts
// every iteration (sz shrinks as the index grows); this computes the same
// ceil(size/2) count up front, which is equivalent and easier to follow.
func (d *Deque[T]) burst(x *block[T]) {
	nb := d.linkNewBlock(x, x.next)
	moveCount := (x.size() + 1) / 2
	for i := 0; i < moveCount; i++ {
		nb.addFront(x.buf[x.r-1])
		x.destroyRight()
	}
}

// suck merges x's successor into x when their combined size falls at or
// below the waste threshold, pouring the successor's elements into x in
// order and unlinking the now-empty successor.
func (d *Deque[T]) suck(x *block[T]) {
	next := x.next
	for next.size() > 0 {
		x.addBack(next.buf[next.l])
		next.destroyLeft()
	}
	d.unlinkBlock(next)
}

// seek returns the block and in-block offset holding rank, or the
// sentinel (block, 0) if rank is out of [0, size).
func (d *Deque[T]) seek(rank int) (*block[T], int) {
	if rank < 0 || rank >= d.size {
		return d.end, 0
	}
	c := 0
	for b := d.end.next; b != d.end; b = b.next {
		if c+b.size() > rank {
			return b, rank - c
		}
		c += b.size()
	}
	return d.end, 0
}

func (d *Deque[T]) iteratorAt(rank int) Iterator[T] {
	b, off := d.seek(rank)
	return Iterator[T]{owner: d, rank: rank, block: b, offset: off}
}

// Begin returns an iterator to the first element (or End() if empty).
func (d *Deque[T]) Begin() Iterator[T] {
	return d.iteratorAt(0)
}

// End returns the past-the-end iterator.
func (d *Deque[T]) End() Iterator[T] {
	return d.iteratorAt(d.size)
}

// Last returns an iterator to the final element.
// Returns errs.ErrContainerEmpty if the deque is empty.
func (d *Deque[T]) Last() (Iterator[T], error) {
	if d.size == 0 {
		return Iterator[T]{}, errs.ErrContainerEmpty
	}
	return d.iteratorAt(d.size - 1), nil
}

// At returns the element at index i.
// Returns errs.ErrIndexOutOfBound if i is outside [0, size).
func (d *Deque[T]) At(i int) (T, error) {
	b, off := d.seek(i)
	if b == d.end {
		var zero T
		return zero, errs.ErrIndexOutOfBound
	}
	return b.buf[b.l+off], nil
}

// SetAt overwrites the element at index i.
// Returns errs.ErrIndexOutOfBound if i is outside [0, size).
func (d *Deque[T]) SetAt(i int, v T) error {
	b, off := d.seek(i)
	if b == d.end {
		return errs.ErrIndexOutOfBound
	}
	b.buf[b.l+off] = v
	return nil
}

// Front returns the first element.
// Returns errs.ErrContainerEmpty if the deque is empty.
func (d *Deque[T]) Front() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, errs.ErrContainerEmpty
	}
	head := d.end.next
	return head.buf[head.l], nil
}

// Back returns the last element.
// Returns errs.ErrContainerEmpty if the deque is empty.
func (d *Deque[T]) Back() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, errs.ErrContainerEmpty
	}
	tail := d.end.prev
	return tail.buf[tail.r-1], nil
}

// PushBack appends value to the end of the deque.
func (d *Deque[T]) PushBack(value T) {
	tail := d.end.prev
	if tail.rightSlack() == 0 && tail.leftSlack() < d.maxW {
		d.linkNewBlock(tail, d.end)
	}
	d.end.prev.addBack(value)
	d.size++
}

// PushFront prepends value to the front of the deque.
func (d *Deque[T]) PushFront(value T) {
	head := d.end.next
	if head.leftSlack() == 0 && head.rightSlack() < d.maxW {
		d.linkNewBlock(d.end, head)
	}
	d.end.next.addFront(value)
	d.size++
}

// PopBack removes the last element.
// Returns errs.ErrContainerEmpty if the deque is empty.
func (d *Deque[T]) PopBack() error {
	if d.size == 0 {
		return errs.ErrContainerEmpty
	}
	d.size--
	tail := d.end.prev
	tail.destroyRight()
	if tail.size() == 0 {
		d.unlinkBlock(tail)
	}
	return nil
}

// PopFront removes the first element.
// Returns errs.ErrContainerEmpty if the deque is empty.
func (d *Deque[T]) PopFront() error {
	if d.size == 0 {
		return errs.ErrContainerEmpty
	}
	d.size--
	head := d.end.next
	head.destroyLeft()
	if head.size() == 0 {
		d.unlinkBlock(head)
	}
	return nil
}

// Insert constructs value at the position it references, returning an
// iterator to the new element. Returns errs.ErrInvalidIterator if it does
// not belong to d, or errs.ErrIndexOutOfBound if its rank is outside
// [0, size].
func (d *Deque[T]) Insert(it Iterator[T], value T) (Iterator[T], error) {
	if it.owner != d {
		return Iterator[T]{}, errs.ErrInvalidIterator
	}
	if it.rank < 0 || it.rank > d.size {
		return Iterator[T]{}, errs.ErrIndexOutOfBound
	}
	if it.rank == 0 {
		d.PushFront(value)
		return d.Begin(), nil
	}
	if it.rank == d.size {
		d.PushBack(value)
		last, _ := d.Last()
		return last, nil
	}

	b, offset := d.seek(it.rank)
	if b.size() == d.blockSize {
		d.burst(b)
		b, offset = d.seek(it.rank)
	}
	b.insertAt(offset, value)
	d.size++
	return Iterator[T]{owner: d, rank: it.rank, block: b, offset: offset}, nil
}

// Erase removes the element it references, returning an iterator to the
// successor. Returns errs.ErrInvalidIterator if it does not belong to d,
// or errs.ErrIndexOutOfBound if its rank is outside [0, size).
func (d *Deque[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	if it.owner != d {
		return Iterator[T]{}, errs.ErrInvalidIterator
	}
	if it.rank < 0 || it.rank >= d.size {
		return Iterator[T]{}, errs.ErrIndexOutOfBound
	}
	if it.rank == 0 {
		if err := d.PopFront(); err != nil {
			return Iterator[T]{}, err
		}
		return d.Begin(), nil
	}
	if it.rank == d.size-1 {
		if err := d.PopBack(); err != nil {
			return Iterator[T]{}, err
		}
		return d.End(), nil
	}

	b, offset := d.seek(it.rank)
	d.size--
	b.eraseAt(offset)
	switch {
	case b.size() == 0:
		d.unlinkBlock(b)
	case b.next != d.end && b.size()+b.next.size() <= d.blockSize*(d.wasteRatio-1)/d.wasteRatio:
		d.suck(b)
	}
	return d.iteratorAt(it.rank), nil
}

// Clear removes every element, returning blocks to the pool.
func (d *Deque[T]) Clear() {
	var zero T
	for b := d.end.next; b != d.end; {
		next := b.next
		for i := b.l; i < b.r; i++ {
			b.buf[i] = zero
		}
		d.pool.Put(b)
		b = next
	}
	d.end.prev, d.end.next = d.end, d.end
	d.size = 0
}

// Clone returns a deep copy of d: an independent deque holding the same
// elements in the same order, sharing no block storage with d.
func (d *Deque[T]) Clone() *Deque[T] {
	out, _ := NewWithConfig[T](Config{BlockSize: d.blockSize, WasteRatio: d.wasteRatio})
	for b := d.end.next; b != d.end; b = b.next {
		for i := b.l; i < b.r; i++ {
			out.PushBack(b.buf[i])
		}
	}
	return out
}
