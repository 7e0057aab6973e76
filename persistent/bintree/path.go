package bintree

import (
	"fmt"
	"strings"
)

// --- Slot ------------------------------------------------------------------

type side uint8

const (
	leftSide side = iota
	rightSide
)

// slot holds a step of a path: a node, the side of the node we descended into, and
// the element the node's copy will hold. The element differs from the node's own
// element only if an edit moves elements between levels.
type slot[E any] struct {
	node    *Node[E]
	side    side
	element E
}

func (s slot[E]) String() string {
	if s.side == leftSide {
		return fmt.Sprintf("↙%v", s.node.element)
	}
	return fmt.Sprintf("↘%v", s.node.element)
}

func (s slot[E]) child() *Node[E] {
	if s.side == leftSide {
		return s.node.left
	}
	return s.node.right
}

// attach creates a copy of the slot's node with child replacing the child on the
// slot's side. If child is the node's child already, the node is returned unchanged.
func (s slot[E]) attach(child *Node[E]) *Node[E] {
	if child == s.child() {
		return s.node
	}
	if s.side == leftSide {
		return Inner(child, s.element, s.node.right)
	}
	return Inner(s.node.left, s.element, child)
}

// --- Path ------------------------------------------------------------------

type slotPath[E any] []slot[E]

func (path slotPath[E]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

// descend records a step to the left or right child of node and returns that child.
func (path *slotPath[E]) descend(node *Node[E], sd side) *Node[E] {
	*path = append(*path, slot[E]{node: node, side: sd, element: node.element})
	if sd == leftSide {
		return node.left
	}
	return node.right
}

func (path slotPath[E]) foldR(f func(slot[E], *Node[E]) *Node[E], zero *Node[E]) *Node[E] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

// rebalancing re-attaches a changed subtree to its parent and balances the copy.
func rebalancing[E any](s slot[E], cow *Node[E]) *Node[E] {
	parent := s.attach(cow)
	if parent == s.node {
		return parent
	}
	return parent.Balance()
}

// copying re-attaches a changed subtree to its parent without balancing.
func copying[E any](s slot[E], cow *Node[E]) *Node[E] {
	return s.attach(cow)
}
