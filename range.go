package bptree

// Range returns all entries with start <= key <= end in ascending order.
// It descends to the leaf owning start and walks the chain, stopping at the
// first key past end without visiting further leaves. Returns nil when the
// tree is empty, start > end, or no keys fall in range.
func (t *Tree[K, V]) Range(start, end K) []Entry[K, V] {
	if t.root == nil || start > end {
		return nil
	}

	var result []Entry[K, V]
	leaf := t.findLeaf(start)
	for leaf != nil {
		for i, k := range leaf.keys {
			if k > end {
				return result
			}
			if k >= start {
				result = append(result, Entry[K, V]{Key: k, Value: leaf.values[i]})
			}
		}
		leaf = leaf.next
	}
	return result
}
