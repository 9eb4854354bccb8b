package ivtree

// Handle is an opaque, non-owning reference to a stored node, returned by
// Insert and consumed by Erase. It remains valid under any mixture of
// subsequent Insert and Find calls, and under any Erase that does not
// target it; the handle passed to Erase becomes invalid when Erase
// returns.
type Handle[V any, E Endpoint] struct {
	n *node[V, E]
}

// Valid reports whether h still refers to a live node.
func (h Handle[V, E]) Valid() bool {
	return h.n != nil && !h.n.erased
}

// Value returns the interval value referenced by h.
//
// Value panics if h is invalid.
func (h Handle[V, E]) Value() V {
	if !h.Valid() {
		panic(&InvariantViolation{Msg: "ivtree: Value of an invalid handle"})
	}

	return h.n.value
}

// Iterator walks the tree in ascending (low, high) key order. The zero
// Iterator is the end iterator (the value Tree.End returns); obtain a
// positioned one from Tree.Begin or Tree.Locate.
type Iterator[V any, E Endpoint] struct {
	n *node[V, E]
}

// Begin returns an iterator positioned at the smallest-keyed interval, or
// an end iterator if the tree is empty.
func (t *Tree[V, E]) Begin() Iterator[V, E] {
	if t.root == nil {
		return t.End()
	}

	return Iterator[V, E]{n: minimum(t.root)}
}

// End returns an iterator positioned one-past the largest-keyed interval.
func (t *Tree[V, E]) End() Iterator[V, E] {
	return Iterator[V, E]{}
}

// Locate returns an iterator positioned at the node referenced by h.
//
// Locate panics if h is invalid.
func (t *Tree[V, E]) Locate(h Handle[V, E]) Iterator[V, E] {
	if !h.Valid() {
		panic(&InvariantViolation{Msg: "ivtree: Locate of an invalid handle"})
	}

	return Iterator[V, E]{n: h.n}
}

// End reports whether it is positioned one-past the last element.
func (it Iterator[V, E]) End() bool {
	return it.n == nil
}

// Equal reports whether it and other refer to the same node.
func (it Iterator[V, E]) Equal(other Iterator[V, E]) bool {
	return it.n == other.n
}

// Value dereferences the iterator.
//
// Value panics if it.End().
func (it Iterator[V, E]) Value() V {
	if it.End() {
		panic(&InvariantViolation{Msg: "ivtree: Value of an end iterator"})
	}

	return it.n.value
}

// Next returns an iterator positioned at the in-order successor of it;
// it itself is left unchanged.
//
// Next panics if it.End().
func (it Iterator[V, E]) Next() Iterator[V, E] {
	if it.End() {
		panic(&InvariantViolation{Msg: "ivtree: Next past end"})
	}

	return Iterator[V, E]{n: successor(it.n)}
}

// Prev returns an iterator positioned at the in-order predecessor of it;
// it itself is left unchanged.
//
// Prev panics if it is already at the first element.
func (it Iterator[V, E]) Prev() Iterator[V, E] {
	if it.n == nil {
		panic(&InvariantViolation{Msg: "ivtree: Prev of an iterator with no predecessor tracked"})
	}

	p := predecessor(it.n)
	if p == nil {
		panic(&InvariantViolation{Msg: "ivtree: Prev before begin"})
	}

	return Iterator[V, E]{n: p}
}
