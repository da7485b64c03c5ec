package avl

// Node is a single element of a Tree: a key, two child links and the cached
// height of the subtree rooted here. A missing subtree has height 0, so a
// leaf has height 1.
type Node[K any] struct {
	key    K
	left   *Node[K]
	right  *Node[K]
	height int
}

// Key returns the key stored in the tree node.
func (n *Node[K]) Key() K {
	return n.key
}

// Height returns the cached height of the subtree rooted at n.
// It is safe to call on a nil node, which has height 0.
func (n *Node[K]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *Node[K]) MostLeft() *Node[K] {
	if n.left == nil {
		// Found left most tree node
		return n
	}
	return n.left.MostLeft()
}

func (n *Node[K]) MostRight() *Node[K] {
	if n.right == nil {
		// Found right most tree node
		return n
	}
	return n.right.MostRight()
}

func (n *Node[K]) contains(key K, compare func(a, b K) int) bool {
	return n.find(key, compare) != nil
}

func (n *Node[K]) find(key K, compare func(a, b K) int) *Node[K] {
	current := n
	for current != nil {
		cmp := compare(key, current.key)
		switch {
		case cmp < 0:
			current = current.left
		case cmp > 0:
			current = current.right
		default:
			return current
		}
	}
	return nil
}

// insert attaches node somewhere below n and returns the new root of this
// subtree. Keys comparing lower descend left, everything else descends
// right, so equal keys always land in the right subtree. Every level of the
// descent path is rebalanced on the way back up, which keeps the whole tree
// within the AVL bound after a single top-level call.
func (n *Node[K]) insert(node *Node[K], compare func(a, b K) int) *Node[K] {
	if n == nil {
		// Fresh leaf: its first balance settles the cached height to 1.
		return node.balance()
	}
	if compare(node.key, n.key) < 0 {
		n.left = n.left.insert(node, compare)
	} else {
		n.right = n.right.insert(node, compare)
	}
	return n.balance()
}

// balance restores the AVL invariant at n after one of its subtrees gained a
// node and returns the root to link in place of n. The balance factor must
// be read before n's own height is refreshed: the children were already
// settled by deeper balance calls during the same unwind, while n.height may
// still be stale, and nothing here depends on it.
func (n *Node[K]) balance() *Node[K] {
	bf := n.balanceFactor()
	n.updateHeight()
	switch {
	case bf > 1:
		if n.left.balanceFactor() < 0 {
			n = n.rotateLeftRight()
		} else {
			n = n.rotateRight()
		}
	case bf < -1:
		if n.right.balanceFactor() > 0 {
			n = n.rotateRightLeft()
		} else {
			n = n.rotateLeft()
		}
	default:
		return n
	}
	// Rotations only relink pointers, so settle the heights bottom-up.
	// Both children of the new root are present after any insertion rotation.
	n.left.updateHeight()
	n.right.updateHeight()
	n.updateHeight()
	return n
}

// balanceFactor is the cached left height minus the cached right height.
// Positive means left-heavy, negative means right-heavy, nil counts as 0.
func (n *Node[K]) balanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

func (n *Node[K]) updateHeight() int {
	n.height = 1 + max(n.left.Height(), n.right.Height())
	return n.height
}

////////////////////////////////////////////////////////////////

// rotateLeft lifts the right child to the root of this subtree.
// The right child must be present. Heights are settled by the caller.
func (n *Node[K]) rotateLeft() *Node[K] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n
	return pivot
}

// rotateRight lifts the left child to the root of this subtree.
// The left child must be present. Heights are settled by the caller.
func (n *Node[K]) rotateRight() *Node[K] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n
	return pivot
}

// rotateLeftRight resolves the zig-zag case of a left-heavy node whose left
// child is right-heavy.
func (n *Node[K]) rotateLeftRight() *Node[K] {
	n.left = n.left.rotateLeft()
	return n.rotateRight()
}

// rotateRightLeft resolves the zig-zag case of a right-heavy node whose
// right child is left-heavy.
func (n *Node[K]) rotateRightLeft() *Node[K] {
	n.right = n.right.rotateRight()
	return n.rotateLeft()
}

////////////////////////////////////////////////////////////////

func (n *Node[K]) iteratePreOrder(f func(n *Node[K]) bool) {
	if f(n) {
		return
	}
	if n.left != nil {
		n.left.iteratePreOrder(f)
	}
	if n.right != nil {
		n.right.iteratePreOrder(f)
	}
}

func (n *Node[K]) iterateInOrder(f func(n *Node[K]) bool) {
	if n.left != nil {
		n.left.iterateInOrder(f)
	}
	if f(n) {
		return
	}
	if n.right != nil {
		n.right.iterateInOrder(f)
	}
}

func (n *Node[K]) iteratePostOrder(f func(n *Node[K]) bool) {
	if n.left != nil {
		n.left.iteratePostOrder(f)
	}
	if n.right != nil {
		n.right.iteratePostOrder(f)
	}
	if f(n) {
		return
	}
}
