package avl

import (
	"sync"

	"gopkg.in/typ.v4"
)

// Tree is a binary search tree (BST) for totally ordered keys, implemented
// as an AVL tree (Adelson-Velsky and Landis tree), a type of self-balancing
// BST. This guarantees O(log n) height for insertion and searching. Keys are
// stored as a multiset: inserting an existing key adds another node, with
// ties routed to the right subtree so that an in-order walk reports equal
// keys in insertion order.
type Tree[K any] struct {
	compare   func(a, b K) int
	pool      *sync.Pool
	root      *Node[K]
	mostLeft  *Node[K]
	mostRight *Node[K]
	size      int
}

////////////////////////////////////////////////////////////////

// NewOrderedTree creates a new AVL tree using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrderedTree[K typ.Ordered]() Tree[K] {
	return NewTree[K](typ.Compare[K])
}

// NewOrderedTreePooled creates a new AVL tree for any ordered type using
// given pool for node creation/releasing.
func NewOrderedTreePooled[K typ.Ordered](pool *sync.Pool) Tree[K] {
	return NewTreePooled[K](typ.Compare[K], pool)
}

// NewTree creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
func NewTree[K any](compare func(a, b K) int) Tree[K] {
	return Tree[K]{
		compare: compare,
	}
}

// NewTreePooled creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
// Pooled tree uses given pool for nodes creating/releasing.
func NewTreePooled[K any](compare func(a, b K) int, pool *sync.Pool) Tree[K] {
	return Tree[K]{
		compare: compare,
		pool:    pool,
	}
}

////////////////////////////////////////////////////////////////

// Size returns the amount of nodes in the tree.
func (t *Tree[K]) Size() int {
	return t.size
}

// Height returns the height of the tree, which is 0 when the tree is empty
// and 1 for a single node.
func (t *Tree[K]) Height() int {
	return t.root.Height()
}

// Contains checks if a node with given key exists in the tree by iterating
// the binary search tree.
func (t *Tree[K]) Contains(key K) bool {
	if t.root == nil {
		return false
	}
	return t.root.contains(key, t.compare)
}

// Find finds a node with given key in the tree by iterating the binary
// search tree. It returns nil if no such key exists. When the key was
// inserted more than once, any one of the matching nodes may be returned.
func (t *Tree[K]) Find(key K) *Node[K] {
	if t.root == nil {
		return nil
	}
	return t.root.find(key, t.compare)
}

// Insert adds a node with given key to the tree and returns it.
// Duplicate keys are allowed and create a distinct node each time.
// The tree rebalances itself, so the root may change identity.
func (t *Tree[K]) Insert(key K) *Node[K] {
	// Create tree node
	var node *Node[K]
	if t.pool != nil {
		node = t.pool.Get().(*Node[K])
		node.key = key
	} else {
		node = &Node[K]{
			key: key,
		}
	}
	// Insert the node into the tree
	t.root = t.root.insert(node, t.compare)
	t.size++
	// Update most left/right nodes
	if t.mostLeft == nil || t.compare(node.key, t.mostLeft.key) < 0 {
		t.mostLeft = node
	}
	// Ties go right, so an equal key becomes the new most right node.
	if t.mostRight == nil || t.compare(node.key, t.mostRight.key) >= 0 {
		t.mostRight = node
	}
	return node
}

// MostLeft returns the node holding the minimum key, or nil when empty.
func (t *Tree[K]) MostLeft() *Node[K] {
	return t.mostLeft
}

// MostRight returns the node holding the maximum key, or nil when empty.
func (t *Tree[K]) MostRight() *Node[K] {
	return t.mostRight
}

// Clear will reset this tree to an empty tree. When the tree is pooled all
// nodes are released back to the pool.
func (t *Tree[K]) Clear() {
	if t.root != nil {
		t.root.iteratePostOrder(func(node *Node[K]) bool {
			if t.pool != nil {
				*node = Node[K]{}
				t.pool.Put(node)
			}

			return false
		})
	}
	t.root = nil
	t.mostLeft = nil
	t.mostRight = nil
	t.size = 0
}

// IteratePreOrder will iterate all nodes in this tree by first visiting each
// node itself, followed by its left branch, and then its right branch.
//
// This is useful when copying binary search trees, as inserting back in this
// order will guarantee the clone will have the exact same layout.
func (t *Tree[K]) IteratePreOrder(f func(n *Node[K]) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePreOrder(f)
}

// IterateInOrder will iterate all nodes in this tree by first visiting each
// node's left branch, followed by the node itself, and then its right
// branch.
//
// This is useful when reading a tree's keys in order, as this guarantees
// iterating them in a sorted order.
func (t *Tree[K]) IterateInOrder(f func(n *Node[K]) bool) {
	if t.root == nil {
		return
	}
	t.root.iterateInOrder(f)
}

// IteratePostOrder will iterate all nodes in this tree by first visiting
// each node's left branch, followed by its right branch, and then the node
// itself.
//
// This is useful when releasing a tree's nodes, as this guarantees to always
// visit leaf nodes first.
func (t *Tree[K]) IteratePostOrder(f func(n *Node[K]) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePostOrder(f)
}
