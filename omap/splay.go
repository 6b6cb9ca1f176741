package omap

// setChild links child as parent's side-th child (0=left, 1=right).
// The nil sentinel's own child/parent fields are never rewritten by this
// method, regardless of which side of it gets scribbled over elsewhere —
// that is what keeps "nil is its own parent and both its own children" an
// invariant rather than an accident of call order.
func (m *Map[K, V]) setChild(parent, child *node[K, V], side int) {
	if parent != m.nilNode {
		parent.child[side] = child
	}
	if child != m.nilNode {
		child.parent = parent
	}
}

// rotate performs a single zig step, bringing x up to replace its parent.
func (m *Map[K, V]) rotate(x *node[K, V]) {
	fa := x.parent
	gp := fa.parent
	d := x.side()

	m.setChild(gp, x, fa.side())
	m.setChild(fa, x.child[1-d], d)
	m.setChild(x, fa, 1-d)

	if fa == m.root {
		m.root = x
	}
}

// splay brings x up to be a direct child of target (passing the nil
// sentinel as target brings x all the way to the root). It works
// bottom-up, rotating x past its parent and grandparent with the classic
// zig, zig-zig, and zig-zag cases.
func (m *Map[K, V]) splay(x, target *node[K, V]) *node[K, V] {
	for x.parent != target {
		fa := x.parent
		gp := fa.parent
		switch {
		case gp == target:
			m.rotate(x)
		case x.side() == fa.side():
			m.rotate(fa)
			m.rotate(x)
		default:
			m.rotate(x)
			m.rotate(x)
		}
	}
	return x
}
