package bptree

import (
	"cmp"
	"sort"
)

// Linear scan beats binary search on small key arrays
const searchThreshold = 32

// node is a B+ tree node. The two shapes share one struct with an isLeaf
// discriminator: leaves carry values and chain links, branches carry
// children. keys and values are preallocated with one slot of headroom so
// an insert can overflow to maxKeys+1 entries before the split runs;
// children gets one more slot on top of that for the child-insertion step
// in insertIntoParent.
type node[K cmp.Ordered, V any] struct {
	isLeaf bool
	keys   []K
	values []V // leaves only

	children []*node[K, V] // branches only

	// Non-owning references. parent is nil for the root; next/prev form
	// the leaf chain in ascending key order. Never used for reclamation.
	parent *node[K, V]
	next   *node[K, V]
	prev   *node[K, V]
}

func (t *Tree[K, V]) newLeaf() *node[K, V] {
	return &node[K, V]{
		isLeaf: true,
		keys:   make([]K, 0, t.maxKeys+1),
		values: make([]V, 0, t.maxKeys+1),
	}
}

func (t *Tree[K, V]) newBranch() *node[K, V] {
	return &node[K, V]{
		keys:     make([]K, 0, t.maxKeys+1),
		children: make([]*node[K, V], 0, t.maxKeys+2),
	}
}

// findChildIndex returns the index of the child pointer to follow for key:
// the count of separator keys <= key. keys[i] is the minimum of the subtree
// at children[i+1], so key >= keys[i] routes right.
func (n *node[K, V]) findChildIndex(key K) int {
	if len(n.keys) < searchThreshold {
		i := 0
		for i < len(n.keys) && key >= n.keys[i] {
			i++
		}
		return i
	}
	return sort.Search(len(n.keys), func(i int) bool {
		return key < n.keys[i]
	})
}

// findKeyIndex returns the position of the first key >= key, which is where
// key lives if present and where it belongs if not.
func (n *node[K, V]) findKeyIndex(key K) int {
	if len(n.keys) < searchThreshold {
		i := 0
		for i < len(n.keys) && n.keys[i] < key {
			i++
		}
		return i
	}
	return sort.Search(len(n.keys), func(i int) bool {
		return n.keys[i] >= key
	})
}

// childIndex returns n's position among its parent's children, or -1 if
// absent. Linear scan bounded by the branching order.
func (n *node[K, V]) childIndex() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// minKey returns the smallest key in the subtree rooted at n by walking the
// leftmost spine.
func (n *node[K, V]) minKey() K {
	for !n.isLeaf {
		n = n.children[0]
	}
	return n.keys[0]
}

// truncateKeys drops keys[i:], zeroing the tail so the backing array does
// not pin discarded keys.
func (n *node[K, V]) truncateKeys(i int) {
	clear(n.keys[i:])
	n.keys = n.keys[:i]
}

func (n *node[K, V]) truncateValues(i int) {
	clear(n.values[i:])
	n.values = n.values[:i]
}

func (n *node[K, V]) truncateChildren(i int) {
	clear(n.children[i:])
	n.children = n.children[:i]
}
