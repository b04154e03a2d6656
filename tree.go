// Package bptree implements a generic in-memory B+ tree: an ordered map
// supporting point lookup, upsert, delete, range scans, bulk loading, and
// bidirectional cursor traversal over a doubly-linked leaf chain.
//
// The tree is not safe for concurrent mutation. Concurrent readers are fine
// as long as no writer is active; no internal locks are taken.
package bptree

import "cmp"

const (
	// MinOrder is the smallest branching order that still leaves a sibling
	// to merge or redistribute with. Smaller requested orders are clamped.
	MinOrder = 3

	// DefaultOrder is a reasonable branching order for in-memory use.
	DefaultOrder = 32
)

// Tree is a B+ tree keyed by any ordered type. All entries live in leaves;
// branch keys are routing separators only. The zero value is not usable,
// construct with New.
type Tree[K cmp.Ordered, V any] struct {
	root  *node[K, V]
	count int

	order   int // branching order m: max children per branch node
	maxKeys int // m - 1
	minKeys int // ceil(m/2) - 1, lower bound for non-root nodes

	logger Logger
}

// Entry is a single key-value pair, used by Range and BulkLoad.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// New creates an empty tree with the given branching order. Orders below
// MinOrder are raised to MinOrder.
func New[K cmp.Ordered, V any](order int, opts ...Option) *Tree[K, V] {
	if order < MinOrder {
		order = MinOrder
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[K, V]{
		order:   order,
		maxKeys: order - 1,
		minKeys: (order+1)/2 - 1,
		logger:  o.logger,
	}
}

// Get returns the value stored for key, or ErrKeyNotFound.
func (t *Tree[K, V]) Get(key K) (V, error) {
	var zero V
	if t.root == nil {
		return zero, ErrKeyNotFound
	}

	leaf := t.findLeaf(key)
	i := leaf.findKeyIndex(key)
	if i < len(leaf.keys) && leaf.keys[i] == key {
		return leaf.values[i], nil
	}
	return zero, ErrKeyNotFound
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the number of levels, counting the root; 0 when empty.
func (t *Tree[K, V]) Height() int {
	h := 0
	for n := t.root; n != nil; n = n.children[0] {
		h++
		if n.isLeaf {
			break
		}
	}
	return h
}

// Clear discards all entries. The leaf chain and parent links go with the
// nodes; there are no cycles through owning references, so the garbage
// collector reclaims the whole structure.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.count = 0
}

// findLeaf descends from the root to the leaf owning key. Callers must
// check t.root != nil first.
func (t *Tree[K, V]) findLeaf(key K) *node[K, V] {
	n := t.root
	for !n.isLeaf {
		n = n.children[n.findChildIndex(key)]
	}
	return n
}

// leftmostLeaf returns the first leaf in the chain, or nil when empty.
func (t *Tree[K, V]) leftmostLeaf() *node[K, V] {
	n := t.root
	if n == nil {
		return nil
	}
	for !n.isLeaf {
		n = n.children[0]
	}
	return n
}

// rightmostLeaf returns the last leaf in the chain, or nil when empty.
func (t *Tree[K, V]) rightmostLeaf() *node[K, V] {
	n := t.root
	if n == nil {
		return nil
	}
	for !n.isLeaf {
		n = n.children[len(n.children)-1]
	}
	return n
}
