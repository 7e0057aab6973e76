package bintree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Print draws the shape of the tree, one node per line. Empty subtrees of inner nodes
// are drawn as '·' to tell left children from right children.
func Print[E any](n *Node[E]) string {
	header := fmt.Sprintf("\nTree(len=%d, depth=%d)\n", n.Len(), n.Depth())
	printer := tp.New()
	printNode(printer, n)
	return header + printer.String()
}

func printNode[E any](printer tp.Tree, n *Node[E]) {
	switch n.kind {
	case emptyNode:
		printer.AddNode("·")
	case leafNode:
		printer.AddNode(fmt.Sprint(n.element))
	default:
		branch := printer.AddBranch(fmt.Sprintf("%v  (%d)", n.element, n.size))
		printNode(branch, n.left)
		printNode(branch, n.right)
	}
}

// Walk visits the nodes of the tree in pre-order. For every non-empty node it calls f
// with the node's level (0 for n), and whether it is a left child.
// If f returns false, the children of the node are skipped.
func Walk[E any](n *Node[E], f func(level int, isLeft bool, node *Node[E]) bool) {
	walk(n, 0, false, f)
}

func walk[E any](n *Node[E], level int, isLeft bool, f func(int, bool, *Node[E]) bool) {
	if n.IsEmpty() {
		return
	}
	if f(level, isLeft, n) {
		walk(n.left, level+1, true, f)
		walk(n.right, level+1, false, f)
	}
}
