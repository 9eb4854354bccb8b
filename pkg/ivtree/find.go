package ivtree

// overlapPhase tags where an OverlapIterator is within its visit of the
// current node, so the walk can be paused between emissions and resumed
// exactly where it left off.
type overlapPhase int

const (
	phaseDescendLeft overlapPhase = iota
	phaseTestNode
	phaseDescendRight
	phaseAscend
)

// OverlapIterator is a pausable overlap walk: a depth-first traversal
// that only visits subtrees whose subtreeMax permits an overlap with
// [low, high], emitting matches in ascending key order. It carries the
// query endpoints, the current node, and a phase tag so the walk can
// resume as a state machine rather than unwinding a recursive call
// stack.
type OverlapIterator[V any, E Endpoint] struct {
	low, high E
	cur       *node[V, E]
	phase     overlapPhase
}

// Find returns an iterator positioned at the first (in key order) interval
// overlapping [low, high], or an end iterator if none exists.
//
// Overlap is inclusive on both ends: [a, b] overlaps [low, high] iff
// a <= high AND low <= b.
func (t *Tree[V, E]) Find(low, high E) OverlapIterator[V, E] {
	it := OverlapIterator[V, E]{low: low, high: high, cur: t.root, phase: phaseDescendLeft}
	it.advance()

	if t.metrics != nil {
		t.metrics.finds.Inc()
	}

	return it
}

// End reports whether the walk is exhausted.
func (it *OverlapIterator[V, E]) End() bool {
	return it.cur == nil
}

// Value dereferences the iterator.
//
// Value panics if it.End().
func (it *OverlapIterator[V, E]) Value() V {
	if it.End() {
		panic(&InvariantViolation{Msg: "ivtree: Value of an end overlap iterator"})
	}

	return it.cur.value
}

// Next resumes the walk from exactly the phase at which the previous
// emission halted, and advances to the next overlapping interval (or to
// end).
//
// Next panics if it.End().
func (it *OverlapIterator[V, E]) Next() {
	if it.End() {
		panic(&InvariantViolation{Msg: "ivtree: Next past end of overlap walk"})
	}

	it.advance()
}

// advance runs the state machine until it emits a node (it.cur is left
// pointing at a match) or exhausts the tree (it.cur becomes nil).
func (it *OverlapIterator[V, E]) advance() {
	for it.cur != nil {
		switch it.phase {
		case phaseDescendLeft:
			// A subtree whose subtreeMax < low ends entirely
			// before the query: by induction every interval in
			// it ends before low, so it cannot overlap and is
			// skipped.
			if it.cur.left != nil && it.low <= it.cur.left.subtreeMax {
				it.cur = it.cur.left
				it.phase = phaseDescendLeft

				continue
			}

			it.phase = phaseTestNode

		case phaseTestNode:
			n := it.cur
			it.phase = phaseDescendRight

			if overlaps(n.low, n.high, it.low, it.high) {
				return
			}

		case phaseDescendRight:
			// If high < node.low, every node to the right also
			// has low > high (BST order), so the right subtree
			// is skipped.
			if it.high >= it.cur.low &&
				it.cur.right != nil && it.low <= it.cur.right.subtreeMax {
				it.cur = it.cur.right
				it.phase = phaseDescendLeft

				continue
			}

			it.phase = phaseAscend

		case phaseAscend:
			child := it.cur
			parent := child.parent

			for parent != nil && child == parent.right {
				child = parent
				parent = parent.parent
			}

			it.cur = parent
			if parent == nil {
				return
			}

			// By the same BST argument as above, once we climb
			// to a node whose low is already past the query, no
			// later node can overlap either.
			if it.high < parent.low {
				it.cur = nil

				return
			}

			it.phase = phaseTestNode
		}
	}
}
