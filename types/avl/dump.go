package avl

import (
	"fmt"
	"strings"
)

// String renders the tree sideways for debugging: one key per line, right
// subtree above, left subtree below, each level indented one step further.
// Read it with the root at the left margin and rotate it 90° clockwise in
// your head. An empty tree renders as an empty string.
func (t *Tree[K]) String() string {
	var sb strings.Builder
	t.root.dump(&sb, 0)
	return sb.String()
}

func (n *Node[K]) dump(sb *strings.Builder, depth int) {
	if n == nil {
		return
	}
	n.right.dump(sb, depth+1)
	sb.WriteString(strings.Repeat("    ", depth))
	fmt.Fprintln(sb, n.key)
	n.left.dump(sb, depth+1)
}
