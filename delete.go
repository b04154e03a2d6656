package bptree

import "slices"

// Delete removes key and rebalances as needed. Returns ErrKeyNotFound when
// key is absent, leaving the tree untouched.
func (t *Tree[K, V]) Delete(key K) error {
	if t.root == nil {
		return ErrKeyNotFound
	}

	leaf := t.findLeaf(key)
	pos := leaf.findKeyIndex(key)
	if pos >= len(leaf.keys) || leaf.keys[pos] != key {
		return ErrKeyNotFound
	}

	leaf.keys = slices.Delete(leaf.keys, pos, pos+1)
	leaf.values = slices.Delete(leaf.values, pos, pos+1)
	t.count--

	if leaf == t.root {
		// The root has no lower bound; an empty root empties the tree.
		if len(leaf.keys) == 0 {
			t.root = nil
		}
		return nil
	}

	if len(leaf.keys) < t.minKeys {
		t.deleteEntry(leaf)
	}
	return nil
}

// deleteEntry resolves an underflow at n: redistribution from a surplus
// sibling first (left, then right), merge otherwise. Merging can underflow
// the parent, so the recursion climbs at most the tree height.
func (t *Tree[K, V]) deleteEntry(n *node[K, V]) {
	if n == t.root {
		if len(n.keys) == 0 {
			if !n.isLeaf && len(n.children) > 0 {
				// Collapse: the sole remaining child becomes the root,
				// shrinking height by one.
				t.root = n.children[0]
				t.root.parent = nil
			} else {
				t.root = nil
			}
		}
		return
	}

	parent := n.parent
	idx := n.childIndex()
	if idx < 0 {
		// Validate is the authoritative consistency check; an aborted
		// rebalance keeps the tree readable.
		t.logger.Error("rebalance aborted: node missing from parent's child list")
		return
	}

	if idx > 0 {
		left := parent.children[idx-1]
		if len(left.keys) > t.minKeys {
			t.redistribute(n, left, idx-1, true)
			return
		}
	}
	if idx < len(parent.keys) {
		right := parent.children[idx+1]
		if len(right.keys) > t.minKeys {
			t.redistribute(n, right, idx, false)
			return
		}
	}

	// Neither sibling has surplus: merge, left sibling preferred.
	if idx > 0 {
		t.merge(parent.children[idx-1], n, idx-1)
	} else {
		t.merge(n, parent.children[idx+1], idx)
	}
}

// redistribute rotates one entry from a surplus sibling into n through the
// separator at parent.keys[sepIdx]. Node count is unchanged, so no further
// rebalancing can be needed.
func (t *Tree[K, V]) redistribute(n, sibling *node[K, V], sepIdx int, fromLeft bool) {
	parent := n.parent

	if n.isLeaf {
		if fromLeft {
			// Move the sibling's last entry to n's front; the separator
			// tracks n's new minimum.
			last := len(sibling.keys) - 1
			n.keys = slices.Insert(n.keys, 0, sibling.keys[last])
			n.values = slices.Insert(n.values, 0, sibling.values[last])
			sibling.truncateKeys(last)
			sibling.truncateValues(last)
			parent.keys[sepIdx] = n.keys[0]
		} else {
			n.keys = append(n.keys, sibling.keys[0])
			n.values = append(n.values, sibling.values[0])
			sibling.keys = slices.Delete(sibling.keys, 0, 1)
			sibling.values = slices.Delete(sibling.values, 0, 1)
			parent.keys[sepIdx] = sibling.keys[0]
		}
		return
	}

	// Branch rotation: the old separator comes down into n and the
	// sibling's boundary key goes up into the separator slot.
	if fromLeft {
		lastKey := len(sibling.keys) - 1
		lastChild := len(sibling.children) - 1

		n.keys = slices.Insert(n.keys, 0, parent.keys[sepIdx])
		moved := sibling.children[lastChild]
		n.children = slices.Insert(n.children, 0, moved)
		moved.parent = n

		parent.keys[sepIdx] = sibling.keys[lastKey]
		sibling.truncateKeys(lastKey)
		sibling.truncateChildren(lastChild)
	} else {
		n.keys = append(n.keys, parent.keys[sepIdx])
		moved := sibling.children[0]
		n.children = append(n.children, moved)
		moved.parent = n

		parent.keys[sepIdx] = sibling.keys[0]
		sibling.keys = slices.Delete(sibling.keys, 0, 1)
		sibling.children = slices.Delete(sibling.children, 0, 1)
	}
}

// merge absorbs right into left and drops the separator at
// parent.keys[sepIdx]. Branch merges pull the separator down into the
// surviving node; leaf merges discard it, the key still lives in the leaf.
func (t *Tree[K, V]) merge(left, right *node[K, V], sepIdx int) {
	parent := left.parent

	if left.isLeaf {
		left.keys = append(left.keys, right.keys...)
		left.values = append(left.values, right.values...)

		left.next = right.next
		if right.next != nil {
			right.next.prev = left
		}
	} else {
		left.keys = append(left.keys, parent.keys[sepIdx])
		left.keys = append(left.keys, right.keys...)
		for _, c := range right.children {
			c.parent = left
		}
		left.children = append(left.children, right.children...)
	}

	parent.children = slices.Delete(parent.children, sepIdx+1, sepIdx+2)
	parent.keys = slices.Delete(parent.keys, sepIdx, sepIdx+1)

	if len(parent.keys) < t.minKeys {
		t.deleteEntry(parent)
	}
}
