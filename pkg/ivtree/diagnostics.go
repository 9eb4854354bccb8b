package ivtree

import (
	"fmt"
	"io"

	fcolor "github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Dump writes the tree shape to w in CLRS pre-order (colour, [low, high],
// subtreeMax, one node per line, indented by depth) and then runs
// CheckInvariants for convenience. Dump returns the audit's error, if
// any; CheckInvariants remains separately callable when only the audit,
// not the printout, is wanted.
//
// Red and black node labels are rendered with fatih/color when standard
// output is a terminal (fatih/color's NoColor check looks at os.Stdout,
// not at w); otherwise they print as the plain "R"/"B" CLRS labels.
func (t *Tree[V, E]) Dump(w io.Writer) error {
	red := fcolor.New(fcolor.FgRed)
	black := fcolor.New(fcolor.FgHiWhite)

	t.dumpNode(w, t.root, 0, "", red, black)

	return t.CheckInvariants()
}

func (t *Tree[V, E]) dumpNode(w io.Writer, n *node[V, E], depth int, prefix string, redC, blackC *fcolor.Color) {
	if n == nil {
		if depth == 0 {
			fmt.Fprintln(w, "(empty)")
		}

		return
	}

	c := blackC
	label := "B"

	if n.colour == red {
		c, label = redC, "R"
	}

	for range depth {
		fmt.Fprint(w, "  ")
	}

	fmt.Fprintf(w, "%s%s [%v, %v] | %v\n", prefix, c.Sprint(label), n.low, n.high, n.subtreeMax)

	if n.left != nil {
		t.dumpNode(w, n.left, depth+1, "L", redC, blackC)
	}

	if n.right != nil {
		t.dumpNode(w, n.right, depth+1, "R", redC, blackC)
	}
}

// DumpTable renders the same pre-order walk as a table via
// jedib0t/go-pretty, an alternative presentation to Dump's indented text
// form - handy when eyeballing a larger tree from the CLI.
func (t *Tree[V, E]) DumpTable(w io.Writer) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"Depth", "Colour", "Low", "High", "SubtreeMax"})

	t.walkPreOrder(t.root, 0, func(n *node[V, E], depth int) {
		colourLabel := "B"
		if n.colour == red {
			colourLabel = "R"
		}

		tbl.AppendRow(table.Row{depth, colourLabel, n.low, n.high, n.subtreeMax})
	})

	tbl.Render()
}

func (t *Tree[V, E]) walkPreOrder(n *node[V, E], depth int, visit func(*node[V, E], int)) {
	if n == nil {
		return
	}

	visit(n, depth)
	t.walkPreOrder(n.left, depth+1, visit)
	t.walkPreOrder(n.right, depth+1, visit)
}

// CheckInvariants audits the tree's structural invariants - BST order,
// red-black colouring and black-height uniformity, subtreeMax
// augmentation, and low <= high endpoint sanity - plus its size
// bookkeeping, and returns a descriptive error for the first violation
// found. It does not mutate the tree, is safe to call at any time, and is
// useful on its own even when Dump's text output isn't needed.
func (t *Tree[V, E]) CheckInvariants() error {
	if t.root != nil && t.root.colour != black {
		return fmt.Errorf("%w: root is not black", errInvariant)
	}

	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", errInvariant)
	}

	blackHeight := -1
	count := 0

	err := t.checkNode(t.root, 0, &blackHeight, &count)
	if err != nil {
		return err
	}

	if count != t.size {
		return fmt.Errorf("%w: size=%d but reachable node count=%d", errInvariant, t.size, count)
	}

	if t.root != nil {
		prev := minimum(t.root)
		for n := successor(prev); n != nil; prev, n = n, successor(n) {
			if n.less(prev.low, prev.high) {
				return fmt.Errorf("%w: in-order key [%v, %v] follows larger key [%v, %v]", errInvariant, n.low, n.high, prev.low, prev.high)
			}
		}
	}

	return nil
}

func (t *Tree[V, E]) checkNode(n *node[V, E], blackDepth int, blackHeight, count *int) error {
	if n == nil {
		if *blackHeight < 0 {
			*blackHeight = blackDepth
		} else if *blackHeight != blackDepth {
			return fmt.Errorf("%w: unequal black height (%d vs %d)", errInvariant, *blackHeight, blackDepth)
		}

		return nil
	}

	*count++

	if n.high < n.low {
		return fmt.Errorf("%w: interval [%v, %v] has low > high", errInvariant, n.low, n.high)
	}

	if n.colour == red && (isRed(n.left) || isRed(n.right)) {
		return fmt.Errorf("%w: red node [%v, %v] has a red child", errInvariant, n.low, n.high)
	}

	if n.left != nil {
		if n.left.parent != n {
			return fmt.Errorf("%w: left child of [%v, %v] has a mismatched parent pointer", errInvariant, n.low, n.high)
		}

		if n.less(n.left.low, n.left.high) {
			return fmt.Errorf("%w: left subtree of [%v, %v] contains a larger key", errInvariant, n.low, n.high)
		}
	}

	if n.right != nil {
		if n.right.parent != n {
			return fmt.Errorf("%w: right child of [%v, %v] has a mismatched parent pointer", errInvariant, n.low, n.high)
		}

		if n.right.less(n.low, n.high) {
			return fmt.Errorf("%w: right subtree of [%v, %v] contains a smaller key", errInvariant, n.low, n.high)
		}
	}

	want := n.high
	if n.left != nil && n.left.subtreeMax > want {
		want = n.left.subtreeMax
	}

	if n.right != nil && n.right.subtreeMax > want {
		want = n.right.subtreeMax
	}

	if n.subtreeMax != want {
		return fmt.Errorf("%w: [%v, %v] has subtreeMax=%v, want %v", errInvariant, n.low, n.high, n.subtreeMax, want)
	}

	nextBlackDepth := blackDepth
	if n.colour == black {
		nextBlackDepth++
	}

	err := t.checkNode(n.left, nextBlackDepth, blackHeight, count)
	if err != nil {
		return err
	}

	return t.checkNode(n.right, nextBlackDepth, blackHeight, count)
}
