package bptree

import "cmp"

// cursor position states. The two exhausted states are distinct so that
// Next past the last entry does not wrap around, while Prev from the end
// state still lands on the last entry.
const (
	cursorUnpositioned = iota
	cursorOnEntry
	cursorBeforeFirst
	cursorAfterLast
)

// Cursor provides ordered bidirectional iteration over the tree, riding the
// leaf chain. A cursor starts unpositioned; Next and Prev from that state
// behave like First and Last.
//
// A cursor whose leaf is split, merged, or redistributed is invalidated and
// must be repositioned before further use. Cursors over leaves untouched by
// a structural change stay valid, and value overwrites never invalidate
// anything.
type Cursor[K cmp.Ordered, V any] struct {
	tree  *Tree[K, V]
	leaf  *node[K, V]
	idx   int
	state int
}

// Cursor returns a new unpositioned cursor.
func (t *Tree[K, V]) Cursor() *Cursor[K, V] {
	return &Cursor[K, V]{tree: t}
}

// First positions the cursor at the smallest key. Returns false when the
// tree is empty.
func (c *Cursor[K, V]) First() bool {
	c.leaf = c.tree.leftmostLeaf()
	c.idx = 0
	if c.leaf == nil {
		c.state = cursorAfterLast
		return false
	}
	c.state = cursorOnEntry
	return true
}

// Last positions the cursor at the largest key. Returns false when the tree
// is empty.
func (c *Cursor[K, V]) Last() bool {
	c.leaf = c.tree.rightmostLeaf()
	if c.leaf == nil {
		c.idx = 0
		c.state = cursorBeforeFirst
		return false
	}
	c.idx = len(c.leaf.keys) - 1
	c.state = cursorOnEntry
	return true
}

// Seek positions the cursor at the first key >= key. Returns false when no
// such key exists.
func (c *Cursor[K, V]) Seek(key K) bool {
	if c.tree.root == nil {
		c.leaf = nil
		c.idx = 0
		c.state = cursorAfterLast
		return false
	}

	leaf := c.tree.findLeaf(key)
	idx := leaf.findKeyIndex(key)
	if idx == len(leaf.keys) {
		// Every key on this leaf is below key; the successor, if any, is
		// the next leaf's first entry.
		leaf = leaf.next
		idx = 0
	}
	c.leaf = leaf
	c.idx = idx
	if leaf == nil {
		c.state = cursorAfterLast
		return false
	}
	c.state = cursorOnEntry
	return true
}

// Next advances to the following key. Returns false once the last entry is
// passed; the cursor then stays in the end state.
func (c *Cursor[K, V]) Next() bool {
	switch c.state {
	case cursorUnpositioned, cursorBeforeFirst:
		return c.First()
	case cursorAfterLast:
		return false
	}

	c.idx++
	if c.idx >= len(c.leaf.keys) {
		c.leaf = c.leaf.next
		c.idx = 0
		if c.leaf == nil {
			c.state = cursorAfterLast
			return false
		}
	}
	return true
}

// Prev retreats to the preceding key. Retreating from the end state lands
// on the last entry, so reverse traversal is Last followed by Prev, or Prev
// alone from a fresh cursor.
func (c *Cursor[K, V]) Prev() bool {
	switch c.state {
	case cursorUnpositioned, cursorAfterLast:
		return c.Last()
	case cursorBeforeFirst:
		return false
	}

	c.idx--
	if c.idx < 0 {
		c.leaf = c.leaf.prev
		if c.leaf == nil {
			c.idx = 0
			c.state = cursorBeforeFirst
			return false
		}
		c.idx = len(c.leaf.keys) - 1
	}
	return true
}

// Valid reports whether the cursor is positioned on an entry.
func (c *Cursor[K, V]) Valid() bool {
	return c.state == cursorOnEntry
}

// Key returns the key at the cursor. Only meaningful when Valid.
func (c *Cursor[K, V]) Key() K {
	var zero K
	if c.state != cursorOnEntry {
		return zero
	}
	return c.leaf.keys[c.idx]
}

// Value returns the value at the cursor. Only meaningful when Valid.
func (c *Cursor[K, V]) Value() V {
	var zero V
	if c.state != cursorOnEntry {
		return zero
	}
	return c.leaf.values[c.idx]
}

// SetValue overwrites the value at the cursor in place. Value overwrites
// never trigger rebalancing. No-op when the cursor is not positioned.
func (c *Cursor[K, V]) SetValue(value V) {
	if c.state == cursorOnEntry {
		c.leaf.values[c.idx] = value
	}
}
