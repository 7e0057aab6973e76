package bintree

import "github.com/npillmayer/pds/persistent/elem"

// Insert returns a tree containing e, ordered by cmp. If the tree already contains an
// element equivalent to e, the result depends on replace: if true, e replaces the
// existing element; otherwise n is returned unchanged. Replacing an element by itself
// (see elem.Same) returns n as well.
func (n *Node[E]) Insert(e E, cmp elem.Comparator[E], replace bool) *Node[E] {
	var path slotPath[E]
	node := n
	for node.kind == innerNode {
		c := cmp(e, node.element)
		switch {
		case c < 0:
			node = path.descend(node, leftSide)
		case c > 0:
			node = path.descend(node, rightSide)
		default:
			if !replace || elem.Same(node.element, e) {
				return n
			}
			return path.foldR(rebalancing[E], Inner(node.left, e, node.right))
		}
	}
	var cow *Node[E]
	if node.IsEmpty() {
		cow = Leaf(e)
	} else {
		c := cmp(e, node.element)
		switch {
		case c < 0:
			cow = Inner(Empty[E](), e, node)
		case c > 0:
			cow = Inner(node, e, Empty[E]())
		case !replace || elem.Same(node.element, e):
			return n
		default:
			cow = Leaf(e)
		}
	}
	return path.foldR(rebalancing[E], cow)
}

// Delete returns a tree without the element equivalent to e. If there is no such
// element, n is returned.
func (n *Node[E]) Delete(e E, cmp elem.Comparator[E]) *Node[E] {
	var path slotPath[E]
	node := n
	for !node.IsEmpty() {
		c := cmp(e, node.element)
		switch {
		case c < 0:
			node = path.descend(node, leftSide)
		case c > 0:
			node = path.descend(node, rightSide)
		default:
			tracer().Debugf("delete %v, path = %s", e, path)
			return path.foldR(rebalancing[E], node.withoutElement())
		}
	}
	return n
}

// Find searches for an element equivalent to probe and returns the stored element.
func (n *Node[E]) Find(probe E, cmp elem.Comparator[E]) (E, bool) {
	node := n
	for !node.IsEmpty() {
		c := cmp(probe, node.element)
		switch {
		case c < 0:
			node = node.left
		case c > 0:
			node = node.right
		default:
			return node.element, true
		}
	}
	var zero E
	return zero, false
}
