package bptree

import "slices"

// Set inserts key with value, overwriting the value in place if key is
// already present. Overwrites never change the tree structure.
func (t *Tree[K, V]) Set(key K, value V) {
	if t.root == nil {
		leaf := t.newLeaf()
		leaf.keys = append(leaf.keys, key)
		leaf.values = append(leaf.values, value)
		t.root = leaf
		t.count = 1
		return
	}

	leaf := t.findLeaf(key)
	pos := leaf.findKeyIndex(key)
	if pos < len(leaf.keys) && leaf.keys[pos] == key {
		leaf.values[pos] = value
		return
	}

	// The headroom slot lets the leaf hold maxKeys+1 entries here, so the
	// split below is a plain partition of an already-valid array.
	leaf.keys = slices.Insert(leaf.keys, pos, key)
	leaf.values = slices.Insert(leaf.values, pos, value)
	t.count++

	if len(leaf.keys) > t.maxKeys {
		t.splitLeaf(leaf)
	}
}

// splitLeaf partitions an overflowing leaf, relinks the chain, and promotes
// a copy of the right half's first key. The leaf keeps its own copy: B+
// tree leaves never lose a key to promotion.
func (t *Tree[K, V]) splitLeaf(leaf *node[K, V]) {
	split := (t.maxKeys + 2) / 2 // ceil((maxKeys+1)/2)

	right := t.newLeaf()
	right.keys = append(right.keys, leaf.keys[split:]...)
	right.values = append(right.values, leaf.values[split:]...)
	leaf.truncateKeys(split)
	leaf.truncateValues(split)

	right.next = leaf.next
	right.prev = leaf
	if leaf.next != nil {
		leaf.next.prev = right
	}
	leaf.next = right

	t.insertIntoParent(leaf, right.keys[0], right)
}

// splitBranch partitions an overflowing branch node. Unlike a leaf split,
// the middle key moves up: it is removed here and represented only in the
// parent.
func (t *Tree[K, V]) splitBranch(n *node[K, V]) {
	// Floor, not ceil: with an even maxKeys the ceiling point would leave
	// the right half below minKeys once the middle key is removed.
	split := (t.maxKeys + 1) / 2
	promoted := n.keys[split]

	right := t.newBranch()
	right.keys = append(right.keys, n.keys[split+1:]...)
	right.children = append(right.children, n.children[split+1:]...)
	for _, c := range right.children {
		c.parent = right
	}
	n.truncateKeys(split)
	n.truncateChildren(split + 1)

	t.insertIntoParent(n, promoted, right)
}

// insertIntoParent links right as left's new sibling under the separator
// key, growing a new root when left was the root.
func (t *Tree[K, V]) insertIntoParent(left *node[K, V], key K, right *node[K, V]) {
	if left.parent == nil {
		root := t.newBranch()
		root.keys = append(root.keys, key)
		root.children = append(root.children, left, right)
		left.parent = root
		right.parent = root
		t.root = root
		return
	}

	parent := left.parent
	pos := parent.findKeyIndex(key)
	parent.keys = slices.Insert(parent.keys, pos, key)
	parent.children = slices.Insert(parent.children, pos+1, right)
	right.parent = parent

	if len(parent.keys) > t.maxKeys {
		t.splitBranch(parent)
	}
}
