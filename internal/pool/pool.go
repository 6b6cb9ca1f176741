// Package pool implements the free-list node/block pool shared by every
// container in this module. Each container owns its own Pool instance —
// pools are never shared across containers; there is no global state and
// no cross-container recycling.
//
// The pool recycles raw storage without running any destructor of its own;
// it is the caller's job to reset a recycled value's fields before reuse
// and to have already torn down anything that needed tearing down before
// returning it to the pool.
package pool

import "github.com/gammazero/deque"

// Pool recycles detached *T pointers (deque blocks, map nodes, heap nodes)
// across a single container's insert/erase cycles. The backing store is a
// gammazero/deque.Deque used purely as a LIFO stack (push/pop the same end)
// so that recently-freed storage — still hot in cache — is handed back out
// first.
type Pool[T any] struct {
	free deque.Deque[*T]
}

// Get returns a recycled *T and true if the pool has one, or (nil, false)
// if the pool is empty and the caller must allocate fresh storage.
func (p *Pool[T]) Get() (*T, bool) {
	if p.free.Len() == 0 {
		return nil, false
	}
	return p.free.PopBack(), true
}

// Put returns a detached *T to the pool for later reuse. The caller must
// not retain any other reference to v after calling Put.
func (p *Pool[T]) Put(v *T) {
	p.free.PushBack(v)
}

// Len reports how many detached values are currently recycled in the pool.
func (p *Pool[T]) Len() int {
	return p.free.Len()
}
