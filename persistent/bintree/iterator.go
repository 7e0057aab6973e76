package bintree

import (
	"iter"
)

type step uint8

const (
	descendLeft step = iota
	emitSelf
	descendRight
)

type frame[E any] struct {
	node *Node[E]
	step step
}

// Iterator iterates over the elements of a tree in order. The stack of an iterator
// holds the nodes on the path to the current element which still have work to do,
// thus it never grows beyond the depth of the tree.
//
// Iterators are not safe for concurrent use, but any number of iterators may walk the
// same tree concurrently.
type Iterator[E any] struct {
	stack []frame[E]
}

// Iterator returns a fresh iterator, positioned before the first element of n.
func (n *Node[E]) Iterator() *Iterator[E] {
	it := &Iterator[E]{}
	if !n.IsEmpty() {
		it.stack = append(make([]frame[E], 0, 16), frame[E]{node: n})
	}
	return it
}

// settle advances the state machine until the top of the stack is a node ready to
// emit its element, or the stack is exhausted.
func (it *Iterator[E]) settle() {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		switch top.step {
		case descendLeft:
			top.step = emitSelf
			if l := top.node.left; !l.IsEmpty() {
				it.stack = append(it.stack, frame[E]{node: l})
			}
		case emitSelf:
			return
		case descendRight:
			r := top.node.right
			it.stack = it.stack[:len(it.stack)-1]
			if !r.IsEmpty() {
				it.stack = append(it.stack, frame[E]{node: r})
			}
		}
	}
}

// HasNext returns true if a call to Next will yield an element.
func (it *Iterator[E]) HasNext() bool {
	it.settle()
	return len(it.stack) > 0
}

// Next returns the next element. After the last element, Next returns
// ErrNoSuchElement.
func (it *Iterator[E]) Next() (E, error) {
	it.settle()
	if len(it.stack) == 0 {
		var zero E
		return zero, ErrNoSuchElement
	}
	top := &it.stack[len(it.stack)-1]
	top.step = descendRight
	return top.node.element, nil
}

// All returns an iterator over the elements of the tree, in order.
func (n *Node[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := n.Iterator()
		for it.HasNext() {
			e, _ := it.Next()
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of the tree in reverse order.
func (n *Node[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		n.backward(yield)
	}
}

func (n *Node[E]) backward(yield func(E) bool) bool {
	if n.IsEmpty() {
		return true
	}
	return n.right.backward(yield) && yield(n.element) && n.left.backward(yield)
}
