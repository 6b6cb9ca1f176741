// Package omap implements an ordered key-value container over a splay tree
// threaded by an in-order doubly linked list, following the same design as
// the unrolled deque in this module: a non-standard internal representation
// chosen for its asymptotic and constant-factor properties rather than for
// textbook simplicity.
//
// Keys need only a strict weak ordering (a Less function); no equality or
// hashing is required. Duplicate keys are rejected.
//
// NOTE: this container is not safe for concurrent use; callers must
// synchronize externally if shared.
package omap

import (
	"github.com/niceyeti/stl/internal/errs"
	"github.com/niceyeti/stl/internal/pool"
)

// Less reports whether a is strictly less than b under the map's ordering.
type Less[K any] func(a, b K) bool

// Map is an ordered associative container keyed by K, holding values of V.
// The zero value is not usable; construct with New.
type Map[K any, V any] struct {
	less    Less[K]
	root    *node[K, V]
	end     *node[K, V]
	nilNode *node[K, V]
	size    int
	pool    pool.Pool[node[K, V]]
}

// New returns an empty map ordered by less.
func New[K any, V any](less Less[K]) *Map[K, V] {
	m := &Map[K, V]{less: less}
	m.nilNode = &node[K, V]{aux: true}
	m.nilNode.parent = m.nilNode
	m.nilNode.child[0] = m.nilNode
	m.nilNode.child[1] = m.nilNode

	m.end = &node[K, V]{aux: true}
	m.end.parent = m.nilNode
	m.end.child[0] = m.nilNode
	m.end.child[1] = m.nilNode
	m.end.prev = m.end
	m.end.next = m.end

	m.root = m.end
	return m
}

// Len returns the number of key/value pairs in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Empty reports whether the map holds no key/value pairs.
func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// keyLessNode reports whether k orders before n under the unified
// comparator that treats the end sentinel as greater than every real key.
func (m *Map[K, V]) keyLessNode(k K, n *node[K, V]) bool {
	if n.aux {
		return true
	}
	return m.less(k, n.key)
}

// nodeLessKey reports whether n orders before k under the unified
// comparator.
func (m *Map[K, V]) nodeLessKey(n *node[K, V], k K) bool {
	if n.aux {
		return false
	}
	return m.less(n.key, k)
}

// descend walks from the root toward k, returning the matching node (or
// nil if none) and the last real-or-end node visited along the way — the
// would-be parent of a freshly inserted k.
func (m *Map[K, V]) descend(k K) (match, lastVisited *node[K, V]) {
	x := m.root
	lastVisited = m.nilNode
	for x != m.nilNode {
		lastVisited = x
		switch {
		case m.keyLessNode(k, x):
			x = x.child[0]
		case m.nodeLessKey(x, k):
			x = x.child[1]
		default:
			return x, lastVisited
		}
	}
	return nil, lastVisited
}

// get returns the node matching k, splayed to the root, or the end
// sentinel on a miss (after splaying the last node visited, per the
// amortization rule: a miss still pays for — and benefits from — bringing
// the nearest node to the root).
func (m *Map[K, V]) get(k K) *node[K, V] {
	match, last := m.descend(k)
	if match != nil {
		return m.splay(match, m.nilNode)
	}
	if last != m.nilNode {
		m.splay(last, m.nilNode)
	}
	return m.end
}

// tget is get, but signals not-found instead of returning the end node.
func (m *Map[K, V]) tget(k K) (*node[K, V], error) {
	match, last := m.descend(k)
	if match != nil {
		return m.splay(match, m.nilNode), nil
	}
	if last != m.nilNode {
		m.splay(last, m.nilNode)
	}
	return nil, errs.ErrIndexOutOfBound
}

// nget returns the node matching k, creating one with a default-constructed
// value if absent, splayed to the root either way.
func (m *Map[K, V]) nget(k K) (*node[K, V], bool) {
	match, parent := m.descend(k)
	if match != nil {
		return m.splay(match, m.nilNode), false
	}
	var zero V
	return m.insertNew(k, zero, parent), true
}

// insertNew links a freshly created node as a child of parent (the last
// real-or-end node visited while descending for k), splices it into the
// in-order list on the appropriate side, and splays it to the root.
func (m *Map[K, V]) insertNew(k K, v V, parent *node[K, V]) *node[K, V] {
	x := m.newNode(k, v)

	if m.keyLessNode(k, parent) {
		m.setChild(parent, x, 0)
		x.prev = parent.prev
		x.next = parent
		x.prev.next = x
		parent.prev = x
	} else {
		m.setChild(parent, x, 1)
		x.next = parent.next
		x.prev = parent
		x.next.prev = x
		parent.next = x
	}

	m.size++
	return m.splay(x, m.nilNode)
}

func (m *Map[K, V]) newNode(k K, v V) *node[K, V] {
	if n, ok := m.pool.Get(); ok {
		n.key = k
		n.value = v
		n.aux = false
		n.child[0], n.child[1] = m.nilNode, m.nilNode
		n.parent = m.nilNode
		return n
	}
	n := &node[K, V]{key: k, value: v}
	n.child[0], n.child[1] = m.nilNode, m.nilNode
	n.parent = m.nilNode
	return n
}

// Find returns an iterator to the element with key k, or End() if no such
// element exists.
func (m *Map[K, V]) Find(k K) Iterator[K, V] {
	return Iterator[K, V]{node: m.get(k), end: m.end}
}

// Count returns 1 if k is present, 0 otherwise (the map never holds
// duplicate keys).
func (m *Map[K, V]) Count(k K) int {
	if m.get(k) != m.end {
		return 1
	}
	return 0
}

// At returns the value mapped to k. Returns errs.ErrIndexOutOfBound if k is
// not present.
func (m *Map[K, V]) At(k K) (V, error) {
	n, err := m.tget(k)
	if err != nil {
		var zero V
		return zero, err
	}
	return n.value, nil
}

// Index returns a pointer to the value mapped to k, inserting a
// default-constructed value first if k is not already present. This is
// the Go rendering of the source's operator[].
func (m *Map[K, V]) Index(k K) *V {
	n, _ := m.nget(k)
	return &n.value
}

// Insert adds key/value to the map. Returns (iterator-to-element, true) if
// key was newly inserted, or (iterator-to-existing-element, false) if key
// was already present (the existing value is left untouched).
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	match, parent := m.descend(key)
	if match != nil {
		return Iterator[K, V]{node: m.splay(match, m.nilNode), end: m.end}, false
	}
	n := m.insertNew(key, value, parent)
	return Iterator[K, V]{node: n, end: m.end}, true
}

// Erase removes the element at pos. Returns errs.ErrInvalidIterator if pos
// does not belong to this map or points to End().
//
// This uses the splice-and-repoint-via-the-in-order-list strategy rather
// than the splay-based isolation the source also supports: the in-order
// list is always repaired by direct pointer surgery on pos's neighbors,
// never by relying on splay having brought a particular neighbor into a
// particular tree position first.
func (m *Map[K, V]) Erase(pos Iterator[K, V]) error {
	if !pos.belongsTo(m) || !pos.Valid() {
		return errs.ErrInvalidIterator
	}

	x := m.splay(pos.node, m.nilNode)
	left, right := x.child[0], x.child[1]

	var newRoot *node[K, V]
	if left == m.nilNode {
		newRoot = right
	} else {
		m.setChild(m.nilNode, left, 0) // detach left as its own tree
		pred := x.prev                  // max(left) == x's in-order predecessor
		pred = m.splay(pred, m.nilNode) // root of the detached left subtree
		m.setChild(pred, right, 1)
		newRoot = pred
	}

	if newRoot != m.nilNode {
		m.setChild(m.nilNode, newRoot, 0)
	}
	m.root = newRoot

	x.prev.next = x.next
	x.next.prev = x.prev

	x.child[0], x.child[1] = nil, nil
	x.parent = nil
	m.pool.Put(x)
	m.size--

	return nil
}

// Clear removes every key/value pair, returning real nodes to the pool.
func (m *Map[K, V]) Clear() {
	for n := m.end.next; n != m.end; {
		next := n.next
		n.child[0], n.child[1] = nil, nil
		n.parent = nil
		m.pool.Put(n)
		n = next
	}
	m.end.prev = m.end
	m.end.next = m.end
	m.end.child[0], m.end.child[1] = m.nilNode, m.nilNode
	m.end.parent = m.nilNode
	m.root = m.end
	m.size = 0
}

// Begin returns an iterator to the first (smallest-key) element.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{node: m.end.next, end: m.end}
}

// End returns the past-the-end iterator.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{node: m.end, end: m.end}
}

// Keys returns every key in ascending order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.size)
	for n := m.end.next; n != m.end; n = n.next {
		out = append(out, n.key)
	}
	return out
}

// Values returns every value, ordered by ascending key.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.size)
	for n := m.end.next; n != m.end; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Clone returns a deep copy of m: a new map holding the same key/value
// pairs, built by re-inserting them in ascending order rather than
// replicating splay-tree shape (the shape is not part of the container's
// observable contract).
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := New[K, V](m.less)
	for n := m.end.next; n != m.end; n = n.next {
		out.Insert(n.key, n.value)
	}
	return out
}
