package rangealloc

import (
	"fmt"
	"io"
	"strings"
)

// DumpEntry describes one node of the allocator tree.
type DumpEntry[T Number] struct {
	// Depth is 0 for the root.
	Depth int

	// Extent is the free extent of a leaf, or the hull of an internal node.
	Extent Span[T]

	Leaf bool
}

// Dump returns every node of the tree in pre-order.
func (a *Allocator[T]) Dump() []DumpEntry[T] {
	var entries []DumpEntry[T]

	a.root.dump(0, &entries)

	return entries
}

func (n *node[T]) dump(depth int, entries *[]DumpEntry[T]) {
	*entries = append(*entries, DumpEntry[T]{
		Depth:  depth,
		Extent: n.Extent,
		Leaf:   n.Sub == nil,
	})

	if n.Sub != nil {
		n.Sub.Left.dump(depth+1, entries)
		n.Sub.Right.dump(depth+1, entries)
	}
}

// String renders the tree, one node per line, indented by depth.
//
//	[0, 100) sub
//	  [0, 25) leaf
//	  [75, 100) leaf
func (a *Allocator[T]) String() string {
	var b strings.Builder

	for _, entry := range a.Dump() {
		kind := "sub"

		if entry.Leaf {
			kind = "leaf"
		}

		fmt.Fprintf(&b, "%s%v %s\n", strings.Repeat("  ", entry.Depth), entry.Extent, kind)
	}

	return b.String()
}

// WriteTo implements [io.WriterTo], writing the rendering of [Allocator.String].
func (a *Allocator[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String())

	return int64(n), err
}
