/*
Package list implements an immutable, persistent list.

A List is a sequence of elements with positional access. Every modification returns a
new list, sharing most of its structure with the list it was derived from. All
operations run in time proportional to the depth of the underlying tree, which stays
logarithmic for typical workloads, including appending and prepending.

An empty instance is usable as an empty list, i.e. this is legal:

	l := list.List[int]{}.Add(1).Add(2)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"iter"

	"github.com/npillmayer/pds/persistent/bintree"
	"github.com/npillmayer/pds/persistent/elem"
	"github.com/npillmayer/pds/result"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pds.list'.
func tracer() tracing.Trace {
	return tracing.Select("pds.list")
}

// List is an immutable list. Lists are values: copying a list is cheap, and a copy can
// never observe modifications of another list.
type List[E any] struct {
	root *bintree.Node[E]
}

// Empty returns the empty list. Every empty list shares the same empty tree.
func Empty[E any]() List[E] {
	return List[E]{root: bintree.Empty[E]()}
}

// Of creates a list of elems.
func Of[E any](elems ...E) List[E] {
	return Empty[E]().AddAll(elems...)
}

func (l List[E]) tree() *bintree.Node[E] {
	if l.root == nil {
		return bintree.Empty[E]()
	}
	return l.root
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements of l.
func (l List[E]) Len() int {
	return l.tree().Len()
}

// IsEmpty is true for a list without elements.
func (l List[E]) IsEmpty() bool {
	return l.tree().IsEmpty()
}

// Get returns the element at position index.
func (l List[E]) Get(index int) (E, error) {
	if index < 0 || index >= l.Len() {
		var zero E
		return zero, bintree.IndexError(index, l.Len())
	}
	return l.tree().At(index), nil
}

// At returns the element at position index as a Result.
func (l List[E]) At(index int) result.Result[E] {
	return result.Of(l.Get(index))
}

// Insert returns a list with e inserted at position index. Elements at index and
// beyond shift one position to the right. index may be equal to l.Len(), which appends
// e.
func (l List[E]) Insert(index int, e E) (List[E], error) {
	if index < 0 || index > l.Len() {
		return l, bintree.IndexError(index, l.Len())
	}
	return List[E]{root: l.tree().InsertAt(index, e)}, nil
}

// Add returns a list with e appended.
func (l List[E]) Add(e E) List[E] {
	return List[E]{root: l.tree().InsertAt(l.Len(), e)}
}

// AddAll appends elems one after the other.
func (l List[E]) AddAll(elems ...E) List[E] {
	for _, e := range elems {
		l = l.Add(e)
	}
	return l
}

// RemoveAt returns a list without the element at position index.
func (l List[E]) RemoveAt(index int) (List[E], error) {
	if index < 0 || index >= l.Len() {
		return l, bintree.IndexError(index, l.Len())
	}
	return List[E]{root: l.tree().RemoveAt(index)}, nil
}

// Remove returns a list without the first element equal to e. If l does not contain e,
// l is returned.
func (l List[E]) Remove(e E) List[E] {
	if i := l.IndexOf(e); i >= 0 {
		tracer().Debugf("remove %v at position %d", e, i)
		return List[E]{root: l.tree().RemoveAt(i)}
	}
	return l
}

// Set returns a list with the element at position index replaced by e. If e is the very
// element at index already, l is returned.
func (l List[E]) Set(index int, e E) (List[E], error) {
	if index < 0 || index >= l.Len() {
		return l, bintree.IndexError(index, l.Len())
	}
	return List[E]{root: l.tree().SetAt(index, e)}, nil
}

// IndexOf returns the position of the first element equal to e, or -1.
func (l List[E]) IndexOf(e E) int {
	return l.tree().IndexFunc(func(x E) bool { return elem.Equal(x, e) })
}

// LastIndexOf returns the position of the last element equal to e, or -1.
func (l List[E]) LastIndexOf(e E) int {
	return l.tree().LastIndexFunc(func(x E) bool { return elem.Equal(x, e) })
}

// IndexFunc returns the position of the first element satisfying pred, or -1.
func (l List[E]) IndexFunc(pred func(E) bool) int {
	return l.tree().IndexFunc(pred)
}

// LastIndexFunc returns the position of the last element satisfying pred, or -1.
func (l List[E]) LastIndexFunc(pred func(E) bool) int {
	return l.tree().LastIndexFunc(pred)
}

// Contains is true if l contains an element equal to e.
func (l List[E]) Contains(e E) bool {
	return l.IndexOf(e) >= 0
}

// FirstEqual returns the first element of l which is equal to e. This is useful for
// finding the canonical instance of e stored in the list.
func (l List[E]) FirstEqual(e E) (E, bool) {
	if i := l.IndexOf(e); i >= 0 {
		return l.tree().At(i), true
	}
	var zero E
	return zero, false
}

// Iterator returns a fresh iterator over the elements of l.
func (l List[E]) Iterator() *bintree.Iterator[E] {
	return l.tree().Iterator()
}

// All returns an iterator over the elements of l.
func (l List[E]) All() iter.Seq[E] {
	return l.tree().All()
}

// Backward returns an iterator over the elements of l, last to first.
func (l List[E]) Backward() iter.Seq[E] {
	return l.tree().Backward()
}

// Slice returns the elements of l as a slice.
func (l List[E]) Slice() []E {
	return l.tree().Slice()
}

// Equal is true if l and other hold equal elements in the same order.
func (l List[E]) Equal(other List[E]) bool {
	return bintree.SeqEqual(l.tree(), other.tree())
}

// HashCode is an order-sensitive hash over the elements of l.
func (l List[E]) HashCode() int32 {
	return bintree.SeqHash(l.tree())
}

// Same is true if l and other share the same tree, i.e. if one has been derived from
// the other without modification.
func (l List[E]) Same(other List[E]) bool {
	return l.tree() == other.tree()
}

// String lists the elements of l, e.g. "{1,2,3}".
func (l List[E]) String() string {
	return l.tree().String()
}

// DebugString renders the shape of the underlying tree.
func (l List[E]) DebugString() string {
	return l.tree().DebugString()
}

// Depth is the depth of the underlying tree.
func (l List[E]) Depth() int {
	return l.tree().Depth()
}

// Tree gives read-only access to the underlying tree.
func (l List[E]) Tree() *bintree.Node[E] {
	return l.tree()
}
