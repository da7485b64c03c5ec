package avl

// Iterator walks the tree keys in sorted order without materializing them.
// It keeps the descent path on an explicit stack, so a full walk costs O(n)
// with O(height) memory. Iterator is not valid until Next() call.
//
// An iterator reads the tree structure directly: inserting into or clearing
// the tree while iterating leaves the iterator undefined. Call Reset to
// restart it after the tree has settled.
type Iterator[K any] struct {
	tree    *Tree[K]
	stack   []*Node[K]
	current *Node[K]
}

// NewIterator creates an in-order iterator over the given tree.
func NewIterator[K any](tree *Tree[K]) Iterator[K] {
	it := Iterator[K]{
		tree: tree,
	}
	it.Reset()
	return it
}

// Iterator creates an in-order iterator over the tree.
func (t *Tree[K]) Iterator() Iterator[K] {
	return NewIterator(t)
}

// Next advances to the next node in sorted order and reports whether one
// exists. After Next returns false the iterator stays exhausted until Reset.
func (it *Iterator[K]) Next() bool {
	if len(it.stack) == 0 {
		it.current = nil
		return false
	}
	node := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.descend(node.right)
	it.current = node
	return true
}

// Current returns the node the iterator stopped on, or nil when the
// iterator is not started or exhausted.
func (it *Iterator[K]) Current() *Node[K] {
	return it.current
}

func (it *Iterator[K]) Valid() bool {
	return it.current != nil
}

// Reset rewinds the iterator to the smallest key of the tree.
func (it *Iterator[K]) Reset() {
	it.stack = it.stack[:0]
	it.current = nil
	it.descend(it.tree.root)
}

// descend pushes the left spine of the subtree rooted at node, making its
// smallest key the top of the stack.
func (it *Iterator[K]) descend(node *Node[K]) {
	for ; node != nil; node = node.left {
		it.stack = append(it.stack, node)
	}
}
