// Package errs declares the sentinel error kinds shared by every container
// in this module. All three containers (deque, omap, pqueue) return these
// directly; callers compare with errors.Is.
package errs

import "errors"

var (
	// ErrContainerEmpty is returned by Top/Front/Back/Pop-style operations
	// invoked on an empty container.
	ErrContainerEmpty error = errors.New("container is empty")

	// ErrIndexOutOfBound is returned by indexed access outside [0, size),
	// by map At() with a missing key, and by dereferencing an end iterator.
	ErrIndexOutOfBound error = errors.New("index out of bound")

	// ErrInvalidIterator is returned when incrementing past end, decrementing
	// before begin, or passing an iterator that does not belong to the
	// receiving container.
	ErrInvalidIterator error = errors.New("invalid iterator")

	// ErrRuntime is a reserved root kind in the taxonomy. No operation in
	// this module raises it.
	ErrRuntime error = errors.New("runtime error")

	// ErrException is a reserved root kind in the taxonomy. No operation in
	// this module raises it.
	ErrException error = errors.New("exception")
)
