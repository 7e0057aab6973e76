package bintree

// Balance checks whether n would profit from a single rotation and returns the
// rotated node if it does. Otherwise n itself is returned.
//
// A node with two non-empty children rotates towards its lighter side if the rotation
// strictly reduces the size difference between its subtrees. A node heading a
// degenerate chain of three nodes (a left-only child with a left-only grandchild, or
// the mirror image) is turned into a node with two leaf children.
//
// Balance is applied to every node on the path from the root to an edit, bottom-up,
// and is the only balancing this tree ever does.
func (n *Node[E]) Balance() *Node[E] {
	if n.kind != innerNode {
		return n
	}
	l, r := n.left, n.right
	if !l.IsEmpty() && !r.IsEmpty() {
		leftBias := l.size - r.size
		if leftBias < 0 {
			newBias := abs(l.size + 1 + r.left.size - r.right.size)
			if newBias < -leftBias {
				tracer().Debugf("rotate left at %v, bias %d → %d", n.element, leftBias, newBias)
				return Inner(Inner(l, n.element, r.left), r.element, r.right)
			}
		} else if leftBias > 0 {
			newBias := abs(l.left.size - (l.right.size + 1 + r.size))
			if newBias < leftBias {
				tracer().Debugf("rotate right at %v, bias %d → %d", n.element, leftBias, newBias)
				return Inner(l.left, l.element, Inner(l.right, n.element, r))
			}
		}
	} else if l.IsEmpty() && !r.IsEmpty() && r.left.IsEmpty() && !r.right.IsEmpty() {
		tracer().Debugf("flatten right chain at %v", n.element)
		return Inner(Leaf(n.element), r.element, r.right)
	} else if r.IsEmpty() && !l.IsEmpty() && l.right.IsEmpty() && !l.left.IsEmpty() {
		tracer().Debugf("flatten left chain at %v", n.element)
		return Inner(l.left, l.element, Leaf(n.element))
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
