package ivtree

// Erase removes the node referenced by h from the tree. It invalidates
// only h; every other handle and any iterator not observing h remains
// valid, per the container's handle-stability contract.
//
// Erase panics if h was already erased or belongs to a different tree -
// these are programmer errors, not recoverable conditions.
func (t *Tree[V, E]) Erase(h Handle[V, E]) {
	n := h.n
	if n == nil || n.erased {
		panic(&InvariantViolation{Msg: "ivtree: erase of an invalid handle"})
	}

	top := n
	for top.parent != nil {
		top = top.parent
	}

	if top != t.root {
		panic(&InvariantViolation{Msg: "ivtree: erase of a handle from a different tree"})
	}

	t.doDelete(n)
	n.erased = true

	t.size--

	if t.metrics != nil {
		t.metrics.erases.Inc()
		t.metrics.size.Set(float64(t.size))
	}
}

// doDelete removes z from the tree, following CLRS's deletion procedure:
// a node with two children is first swapped with its in-order successor
// (the leftmost node of its right subtree), which has at most one child
// and is then spliced out directly.
func (t *Tree[V, E]) doDelete(z *node[V, E]) {
	y := z
	yOriginalColour := y.colour

	var x, xParent *node[V, E]

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	default:
		y = minimum(z.right)
		yOriginalColour = y.colour
		x = y.right

		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.colour = z.colour
	}

	// Recompute subtreeMax from the deepest touched point upward.
	propagateSubtreeMax(xParent)

	if yOriginalColour == black {
		t.deleteFixup(x, xParent)
	}
}

// transplant replaces the subtree rooted at u with the subtree rooted at
// v, without touching v's own children.
func (t *Tree[V, E]) transplant(u, v *node[V, E]) {
	doAssert(u != nil, "ivtree: transplant of a nil subtree root")

	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// deleteFixup restores the red-black invariants after doDelete unlinked a
// black node. x is the node that moved into the deleted position (possibly
// nil); xParent is tracked alongside it because a nil x carries no parent
// pointer of its own.
//
// This is CLRS's four-case loop (§13.4), adapted to track the "doubly
// black" position by (x, xParent) instead of relying on a shared sentinel
// whose parent pointer is temporarily repointed.
func (t *Tree[V, E]) deleteFixup(x, xParent *node[V, E]) {
	for x != t.root && isBlack(x) {
		if xParent == nil {
			break
		}

		left := xParent.left == x

		var w *node[V, E]
		if left {
			w = xParent.right
		} else {
			w = xParent.left
		}

		if isRed(w) {
			// Case 1: x's sibling w is red. Recolour and rotate
			// to turn this into case 2, 3 or 4.
			w.colour = black
			xParent.colour = red

			if left {
				t.rotateLeft(xParent)
				w = xParent.right
			} else {
				t.rotateRight(xParent)
				w = xParent.left
			}
		}

		var wLeft, wRight *node[V, E]
		if w != nil {
			wLeft, wRight = w.left, w.right
		}

		if isBlack(wLeft) && isBlack(wRight) {
			// Case 2: w is black and both of w's children are
			// black. Recolour w red and move the problem up.
			if w != nil {
				w.colour = red
			}

			x = xParent
			xParent = x.parent

			continue
		}

		outer, inner := wRight, wLeft
		if !left {
			outer, inner = wLeft, wRight
		}

		if isBlack(outer) {
			// Case 3: w's far child is black, near child is red.
			// Recolour and rotate w to turn this into case 4.
			setBlack(inner)

			if w != nil {
				w.colour = red
			}

			if left {
				t.rotateRight(w)
				w = xParent.right
			} else {
				t.rotateLeft(w)
				w = xParent.left
			}

			if w != nil {
				if left {
					outer = w.right
				} else {
					outer = w.left
				}
			}
		}

		// Case 4: w's far child is red. Recolour and rotate; no
		// further inconsistencies can arise, so this terminates the
		// loop.
		if w != nil {
			w.colour = xParent.colour
		}

		xParent.colour = black
		setBlack(outer)

		if left {
			t.rotateLeft(xParent)
		} else {
			t.rotateRight(xParent)
		}

		x = t.root
		xParent = nil
	}

	setBlack(x)
}
