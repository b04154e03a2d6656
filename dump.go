package bptree

import (
	"fmt"
	"strings"
)

// Dump renders the tree structure as one line per node in depth-first
// order, tagged with the node's depth and shape. Debugging aid only; the
// format is not part of the functional contract.
func (t *Tree[K, V]) Dump() string {
	if t.root == nil {
		return "empty tree\n"
	}
	var b strings.Builder
	t.dumpNode(&b, t.root, 0)
	return b.String()
}

// Print writes Dump to standard output.
func (t *Tree[K, V]) Print() {
	fmt.Print(t.Dump())
}

func (t *Tree[K, V]) dumpNode(b *strings.Builder, n *node[K, V], depth int) {
	fmt.Fprintf(b, "level %d: [", depth)
	for i, k := range n.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%v", k)
	}
	if n.isLeaf {
		b.WriteString("] (leaf)\n")
		return
	}
	b.WriteString("] (branch)\n")
	for _, child := range n.children {
		t.dumpNode(b, child, depth+1)
	}
}
