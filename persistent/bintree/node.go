package bintree

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

type kind uint8

const (
	emptyNode kind = iota
	leafNode
	innerNode
)

// Node is a node of an immutable binary tree. Nodes are either empty, leafs or inner
// nodes. Children of a node are never nil, but may be the empty node.
//
// The zero value is not a valid node; use Empty, Leaf or Inner.
type Node[E any] struct {
	left, right *Node[E]
	element     E
	size        int
	kind        kind
}

var empties sync.Map // reflect.Type ↦ *Node[E]

// Empty returns the empty node for element type E. There is exactly one empty node
// per element type, making it safe to check for emptiness by pointer identity.
func Empty[E any]() *Node[E] {
	t := reflect.TypeFor[E]()
	if n, ok := empties.Load(t); ok {
		return n.(*Node[E])
	}
	n := &Node[E]{kind: emptyNode}
	n.left, n.right = n, n
	actual, loaded := empties.LoadOrStore(t, n)
	if !loaded {
		tracer().Debugf("created empty node for element type %v", t)
	}
	return actual.(*Node[E])
}

// Leaf creates a node holding e without children.
func Leaf[E any](e E) *Node[E] {
	empty := Empty[E]()
	return &Node[E]{left: empty, right: empty, element: e, size: 1, kind: leafNode}
}

// Inner creates a node holding e with children l and r. Either child may be empty.
func Inner[E any](l *Node[E], e E, r *Node[E]) *Node[E] {
	assertThat(l != nil && r != nil, "inner node needs non-nil children")
	return &Node[E]{left: l, right: r, element: e, size: l.size + 1 + r.size, kind: innerNode}
}

// Left returns the left child of n.
func (n *Node[E]) Left() *Node[E] {
	return n.left
}

// Right returns the right child of n.
func (n *Node[E]) Right() *Node[E] {
	return n.right
}

// Element returns the element held by n. For the empty node, the zero value of E is
// returned.
func (n *Node[E]) Element() E {
	return n.element
}

// Len is the number of elements in the tree rooted at n.
func (n *Node[E]) Len() int {
	return n.size
}

// IsEmpty is true for the empty node.
func (n *Node[E]) IsEmpty() bool {
	return n.kind == emptyNode
}

// IsLeaf is true for leaf nodes.
func (n *Node[E]) IsLeaf() bool {
	return n.kind == leafNode
}

// Depth returns the length of the longest path from n to a leaf, counting nodes.
// The empty tree has depth 0. Depth is O(n) and intended for diagnostics.
func (n *Node[E]) Depth() int {
	if n.IsEmpty() {
		return 0
	}
	return max(n.left.Depth(), n.right.Depth()) + 1
}

// At returns the element at in-order position index.
func (n *Node[E]) At(index int) E {
	assertThat(index >= 0 && index < n.size, "index %d out of range [0…%d)", index, n.size)
	for {
		lsize := n.left.size
		switch {
		case index < lsize:
			n = n.left
		case index > lsize:
			index -= lsize + 1
			n = n.right
		default:
			return n.element
		}
	}
}

// First returns the leftmost element, if any.
func (n *Node[E]) First() (E, bool) {
	if n.IsEmpty() {
		var zero E
		return zero, false
	}
	for !n.left.IsEmpty() {
		n = n.left
	}
	return n.element, true
}

// Last returns the rightmost element, if any.
func (n *Node[E]) Last() (E, bool) {
	if n.IsEmpty() {
		var zero E
		return zero, false
	}
	for !n.right.IsEmpty() {
		n = n.right
	}
	return n.element, true
}

// Slice returns the elements of the tree in order.
func (n *Node[E]) Slice() []E {
	s := make([]E, 0, n.size)
	for e := range n.All() {
		s = append(s, e)
	}
	return s
}

// String lists the elements of the tree in order, e.g. "{a,b,c}".
func (n *Node[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for e := range n.All() {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		fmt.Fprint(&sb, e)
	}
	sb.WriteByte('}')
	return sb.String()
}

// DebugString renders the shape of the tree in a single line, like
//
//	(a)<- b ->((c)<- d)
func (n *Node[E]) DebugString() string {
	if n.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	n.debugString(&sb)
	return sb.String()
}

func (n *Node[E]) debugString(sb *strings.Builder) {
	if !n.left.IsEmpty() {
		sb.WriteByte('(')
		n.left.debugString(sb)
		sb.WriteString(")<- ")
	}
	fmt.Fprint(sb, n.element)
	if !n.right.IsEmpty() {
		sb.WriteString(" ->(")
		n.right.debugString(sb)
		sb.WriteByte(')')
	}
}
