package bptree

import "github.com/cockroachdb/errors"

// Validate recursively checks every structural invariant and returns nil
// when the tree is consistent, or an error describing the first violation
// found. It never panics and never mutates, making it the oracle for every
// mutation path.
//
// Checked invariants: keys strictly ascending within each node, non-root
// occupancy within [minKeys, maxKeys], fanout = keys+1 for branches,
// separator range containment, parent back-references, uniform leaf depth,
// and a leaf chain that visits every entry in ascending order exactly once.
func (t *Tree[K, V]) Validate() error {
	if t.root == nil {
		if t.count != 0 {
			return errors.Newf("empty tree reports %d entries", t.count)
		}
		return nil
	}
	if t.root.parent != nil {
		return errors.New("root has a parent reference")
	}

	leafDepth := -1
	if err := t.validateNode(t.root, 0, &leafDepth, nil, nil); err != nil {
		return err
	}
	return t.validateLeafChain()
}

// validateNode checks the subtree at n. lower and upper bound the keys the
// subtree may contain: lower inclusive, upper exclusive, nil for unbounded.
func (t *Tree[K, V]) validateNode(n *node[K, V], depth int, leafDepth *int, lower, upper *K) error {
	if n != t.root {
		if len(n.keys) < t.minKeys || len(n.keys) > t.maxKeys {
			return errors.Newf("node at depth %d has %d keys, want %d..%d",
				depth, len(n.keys), t.minKeys, t.maxKeys)
		}
	} else if len(n.keys) > t.maxKeys {
		return errors.Newf("root has %d keys, want at most %d", len(n.keys), t.maxKeys)
	} else if !n.isLeaf && len(n.keys) == 0 {
		return errors.New("branch root has no keys")
	}

	for i := 1; i < len(n.keys); i++ {
		if n.keys[i-1] >= n.keys[i] {
			return errors.Newf("keys not strictly ascending at depth %d index %d", depth, i)
		}
	}
	for _, k := range n.keys {
		if lower != nil && k < *lower {
			return errors.Newf("key %v at depth %d below subtree lower bound %v", k, depth, *lower)
		}
		if upper != nil && k >= *upper {
			return errors.Newf("key %v at depth %d reaches subtree upper bound %v", k, depth, *upper)
		}
	}

	if n.isLeaf {
		if *leafDepth == -1 {
			*leafDepth = depth
		} else if *leafDepth != depth {
			return errors.Newf("leaf at depth %d, other leaves at depth %d", depth, *leafDepth)
		}
		if len(n.values) != len(n.keys) {
			return errors.Newf("leaf at depth %d has %d values for %d keys",
				depth, len(n.values), len(n.keys))
		}
		return nil
	}

	if len(n.children) != len(n.keys)+1 {
		return errors.Newf("branch at depth %d has %d children for %d keys",
			depth, len(n.children), len(n.keys))
	}

	for i, child := range n.children {
		if child == nil {
			return errors.Newf("nil child at depth %d index %d", depth, i)
		}
		if child.parent != n {
			return errors.Newf("child at depth %d index %d has wrong parent reference", depth+1, i)
		}

		// children[i] holds keys < keys[i]; children[i+1] holds keys >= keys[i].
		childLower, childUpper := lower, upper
		if i > 0 {
			childLower = &n.keys[i-1]
		}
		if i < len(n.keys) {
			childUpper = &n.keys[i]
		}
		if err := t.validateNode(child, depth+1, leafDepth, childLower, childUpper); err != nil {
			return err
		}
	}
	return nil
}

// validateLeafChain walks next links from the leftmost leaf, checking order,
// prev back-links, entry count, and that the chain terminates at the
// rightmost leaf.
func (t *Tree[K, V]) validateLeafChain() error {
	first := t.leftmostLeaf()
	if first.prev != nil {
		return errors.New("leftmost leaf has a prev link")
	}

	seen := 0
	var last *node[K, V]
	var lastKey K
	for leaf := first; leaf != nil; leaf = leaf.next {
		if leaf.prev != last {
			return errors.New("leaf chain prev link inconsistent")
		}
		if !leaf.isLeaf {
			return errors.New("leaf chain reaches a branch node")
		}
		for _, k := range leaf.keys {
			if seen > 0 && k <= lastKey {
				return errors.Newf("leaf chain not ascending at key %v", k)
			}
			lastKey = k
			seen++
		}
		last = leaf
	}

	if last != t.rightmostLeaf() {
		return errors.New("leaf chain does not end at the rightmost leaf")
	}
	if seen != t.count {
		return errors.Newf("leaf chain holds %d entries, tree reports %d", seen, t.count)
	}
	return nil
}
