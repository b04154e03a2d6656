package bptree

import (
	"cmp"
	"slices"
)

// BulkLoad replaces the tree's contents with the given entries, building
// the structure bottom-up instead of through repeated Set calls. Entries
// need not be sorted; duplicate keys keep the last occurrence in input
// order, matching what repeated upserts would leave behind.
//
// BulkLoad takes ownership of the slice and sorts it in place. Callers that
// need the original order should pass slices.Clone(entries); a contiguous
// sub-range loads with an ordinary slice expression.
func (t *Tree[K, V]) BulkLoad(entries []Entry[K, V]) {
	t.Clear()
	if len(entries) == 0 {
		return
	}

	// Stable sort keeps equal keys in input order, so the last of each
	// run is the last-written value.
	slices.SortStableFunc(entries, func(a, b Entry[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})

	w := 0
	for i := range entries {
		if i+1 < len(entries) && entries[i+1].Key == entries[i].Key {
			continue
		}
		entries[w] = entries[i]
		w++
	}
	entries = entries[:w]

	leaves := t.packLeaves(entries)
	level := leaves
	for len(level) > 1 {
		level = t.buildLevel(level)
	}

	t.root = level[0]
	t.root.parent = nil
	t.count = len(entries)
}

// packLeaves fills leaves left to right at maxKeys apiece, shorting the
// second-to-last leaf when needed so the final one still reaches minKeys.
// Chain links are set as the leaves are created.
func (t *Tree[K, V]) packLeaves(entries []Entry[K, V]) []*node[K, V] {
	var leaves []*node[K, V]
	var prev *node[K, V]

	for i := 0; i < len(entries); {
		take := t.maxKeys
		if remaining := len(entries) - i; remaining <= t.maxKeys {
			take = remaining
		} else if remaining-t.maxKeys < t.minKeys {
			take = remaining - t.minKeys
		}

		leaf := t.newLeaf()
		for _, e := range entries[i : i+take] {
			leaf.keys = append(leaf.keys, e.Key)
			leaf.values = append(leaf.values, e.Value)
		}

		leaf.prev = prev
		if prev != nil {
			prev.next = leaf
		}
		prev = leaf

		leaves = append(leaves, leaf)
		i += take
	}
	return leaves
}

// buildLevel groups nodes into parents of at most maxKeys+1 children, with
// the same tail balancing as leaf packing so the last parent keeps a legal
// child count. Separators are the minimal keys of each group member after
// the first.
func (t *Tree[K, V]) buildLevel(level []*node[K, V]) []*node[K, V] {
	maxChildren := t.maxKeys + 1
	minChildren := t.minKeys + 1

	var parents []*node[K, V]
	for i := 0; i < len(level); {
		take := maxChildren
		if remaining := len(level) - i; remaining <= maxChildren {
			take = remaining
		} else if remaining-maxChildren < minChildren {
			take = remaining - minChildren
		}

		parent := t.newBranch()
		for j, child := range level[i : i+take] {
			child.parent = parent
			parent.children = append(parent.children, child)
			if j > 0 {
				parent.keys = append(parent.keys, child.minKey())
			}
		}

		parents = append(parents, parent)
		i += take
	}
	return parents
}
