package bintree

import "github.com/npillmayer/pds/persistent/elem"

// InsertAt returns a tree with e inserted at in-order position index, shifting
// subsequent elements by one. index must be in [0…Len()].
//
// If index addresses the gap between a node and its left subtree, the element is
// appended to the left subtree as long as that one is not larger than the right one.
// Otherwise e takes the node's place and the node's element moves to the front of
// the right subtree. This keeps trees shallow under repeated appends and prepends.
func (n *Node[E]) InsertAt(index int, e E) *Node[E] {
	assertThat(index >= 0 && index <= n.size, "insert position %d out of range [0…%d]", index, n.size)
	var path slotPath[E]
	node := n
	for node.kind == innerNode {
		lsize, rsize := node.left.size, node.right.size
		switch {
		case index < lsize:
			node = path.descend(node, leftSide)
		case index == lsize && lsize <= rsize:
			node = path.descend(node, leftSide)
		case index == lsize:
			node = path.descend(node, rightSide)
			path[len(path)-1].element = e
			e = path[len(path)-1].node.element
			index = 0
		default:
			node = path.descend(node, rightSide)
			index -= lsize + 1
		}
	}
	var cow *Node[E]
	switch {
	case node.IsEmpty():
		cow = Leaf(e)
	case index == 0:
		cow = Inner(Empty[E](), e, node)
	default:
		cow = Inner(node, e, Empty[E]())
	}
	return path.foldR(rebalancing[E], cow)
}

// RemoveAt returns a tree without the element at in-order position index.
// index must be in [0…Len()).
func (n *Node[E]) RemoveAt(index int) *Node[E] {
	assertThat(index >= 0 && index < n.size, "remove position %d out of range [0…%d)", index, n.size)
	var path slotPath[E]
	node := n
	for {
		lsize := node.left.size
		if index < lsize {
			node = path.descend(node, leftSide)
		} else if index > lsize {
			node = path.descend(node, rightSide)
			index -= lsize + 1
		} else {
			break
		}
	}
	return path.foldR(rebalancing[E], node.withoutElement())
}

// SetAt returns a tree with the element at in-order position index replaced by e.
// The shape of the tree does not change. If e is the very element already present
// (see elem.Same), n is returned.
func (n *Node[E]) SetAt(index int, e E) *Node[E] {
	assertThat(index >= 0 && index < n.size, "set position %d out of range [0…%d)", index, n.size)
	var path slotPath[E]
	node := n
	for {
		lsize := node.left.size
		if index < lsize {
			node = path.descend(node, leftSide)
		} else if index > lsize {
			node = path.descend(node, rightSide)
			index -= lsize + 1
		} else {
			break
		}
	}
	if elem.Same(node.element, e) {
		return n
	}
	return path.foldR(copying[E], node.withElement(e))
}

// RemoveFirst returns a tree without its leftmost element.
func (n *Node[E]) RemoveFirst() *Node[E] {
	return n.RemoveAt(0)
}

// RemoveLast returns a tree without its rightmost element.
func (n *Node[E]) RemoveLast() *Node[E] {
	return n.RemoveAt(n.size - 1)
}

// withoutElement drops the element of n, filling the gap from the larger subtree:
// if the right subtree is larger, its first element replaces n's element, otherwise the
// last element of the left subtree does.
func (n *Node[E]) withoutElement() *Node[E] {
	left, right := n.left, n.right
	var e E
	switch {
	case left.size < right.size:
		e, _ = right.First()
		right = right.RemoveFirst()
	case left.size > 0:
		e, _ = left.Last()
		left = left.RemoveLast()
	default:
		return Empty[E]()
	}
	if left.IsEmpty() && right.IsEmpty() {
		return Leaf(e)
	}
	return Inner(left, e, right)
}

// withElement copies n, holding e instead of n's element.
func (n *Node[E]) withElement(e E) *Node[E] {
	if n.kind == leafNode {
		return Leaf(e)
	}
	return Inner(n.left, e, n.right)
}

// IndexFunc returns the in-order position of the first element satisfying pred,
// or -1.
func (n *Node[E]) IndexFunc(pred func(E) bool) int {
	i := 0
	for e := range n.All() {
		if pred(e) {
			return i
		}
		i++
	}
	return -1
}

// LastIndexFunc returns the in-order position of the last element satisfying pred,
// or -1.
func (n *Node[E]) LastIndexFunc(pred func(E) bool) int {
	i := n.size - 1
	for e := range n.Backward() {
		if pred(e) {
			return i
		}
		i--
	}
	return -1
}
