/*
Package treeset implements an immutable, persistent ordered set.

Elements are kept in the order given by a comparator. nil elements are allowed and
sort before all other elements; the comparator is never called with nil.

A set is created with a comparator:

	s, err := treeset.New(func(a, b *Version) int { … })
	s = s.Add(v1).Add(v2)

For Go's ordered types, Natural creates a set with the natural ordering:

	s := treeset.Natural[string]().Add("B").Add("A")   // {A,B}

The zero value of Set has no comparator and may only be used as an empty set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treeset

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/pds/maybe"
	"github.com/npillmayer/pds/persistent/bintree"
	"github.com/npillmayer/pds/persistent/elem"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pds.treeset'.
func tracer() tracing.Trace {
	return tracing.Select("pds.treeset")
}

// Set is an immutable set of elements ordered by a comparator. Sets are values; every
// modification returns a new set, sharing structure with the set it was derived from.
type Set[E any] struct {
	cmp  elem.Comparator[E]
	root *bintree.Node[E]
}

// New creates an empty set ordered by c. A nil comparator is an error.
func New[E any](c elem.Comparator[E]) (Set[E], error) {
	if c == nil {
		return Set[E]{}, fmt.Errorf("%w: set needs a comparator", bintree.ErrInvalidArgument)
	}
	return Set[E]{cmp: elem.NilsFirst(c), root: bintree.Empty[E]()}, nil
}

// Natural creates an empty set of elements in their natural order.
func Natural[E cmp.Ordered]() Set[E] {
	return Set[E]{cmp: elem.Natural[E](), root: bintree.Empty[E]()}
}

// With creates a set of elems, ordered by c. It panics if c is nil.
func With[E any](c elem.Comparator[E], elems ...E) Set[E] {
	s, err := New(c)
	assertThat(err == nil, "%v", err)
	return s.AddAll(elems...)
}

func (s Set[E]) tree() *bintree.Node[E] {
	if s.root == nil {
		return bintree.Empty[E]()
	}
	return s.root
}

func (s Set[E]) derive(root *bintree.Node[E]) Set[E] {
	if root == s.root {
		return s
	}
	return Set[E]{cmp: s.cmp, root: root}
}

func (s Set[E]) comparator() elem.Comparator[E] {
	assertThat(s.cmp != nil, "set has no comparator, create it with treeset.New")
	return s.cmp
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements of s.
func (s Set[E]) Len() int {
	return s.tree().Len()
}

// IsEmpty is true for a set without elements.
func (s Set[E]) IsEmpty() bool {
	return s.tree().IsEmpty()
}

// Add returns a set containing e. If s already contains an element equivalent to e,
// s is returned unchanged, keeping the element already present.
func (s Set[E]) Add(e E) Set[E] {
	return s.derive(s.tree().Insert(e, s.comparator(), false))
}

// Put returns a set containing e. An equivalent element already contained in s is
// replaced by e.
func (s Set[E]) Put(e E) Set[E] {
	return s.derive(s.tree().Insert(e, s.comparator(), true))
}

// AddAll adds elems one after the other.
func (s Set[E]) AddAll(elems ...E) Set[E] {
	for _, e := range elems {
		s = s.Add(e)
	}
	return s
}

// PutAll puts elems one after the other.
func (s Set[E]) PutAll(elems ...E) Set[E] {
	for _, e := range elems {
		s = s.Put(e)
	}
	return s
}

// Remove returns a set without the element equivalent to e. If there is none, s is
// returned.
func (s Set[E]) Remove(e E) Set[E] {
	if s.IsEmpty() {
		return s
	}
	return s.derive(s.tree().Delete(e, s.comparator()))
}

// Get returns the element of s equivalent to probe. This is the instance stored in the
// set, which may differ from probe.
func (s Set[E]) Get(probe E) (E, bool) {
	if s.IsEmpty() {
		var zero E
		return zero, false
	}
	return s.tree().Find(probe, s.comparator())
}

// Lookup is Get, returning a Maybe.
func (s Set[E]) Lookup(probe E) maybe.Maybe[E] {
	return maybe.Of(s.Get(probe))
}

// Contains is true if s contains an element equivalent to e.
func (s Set[E]) Contains(e E) bool {
	_, found := s.Get(e)
	return found
}

// First returns the least element of s.
func (s Set[E]) First() (E, bool) {
	return s.tree().First()
}

// Last returns the greatest element of s.
func (s Set[E]) Last() (E, bool) {
	return s.tree().Last()
}

// Iterator returns a fresh iterator over the elements of s, in order.
func (s Set[E]) Iterator() *bintree.Iterator[E] {
	return s.tree().Iterator()
}

// All returns an iterator over the elements of s, in order.
func (s Set[E]) All() iter.Seq[E] {
	return s.tree().All()
}

// Backward returns an iterator over the elements of s in reverse order.
func (s Set[E]) Backward() iter.Seq[E] {
	return s.tree().Backward()
}

// Slice returns the elements of s in order.
func (s Set[E]) Slice() []E {
	return s.tree().Slice()
}

// Equal is true if s and other contain the same elements. other may be any set
// implementation.
func (s Set[E]) Equal(other elem.Membership[E]) bool {
	return elem.EqualSets[E](s, other)
}

// HashCode is the sum of the hash codes of the elements of s.
func (s Set[E]) HashCode() int32 {
	return elem.SetHash(s.All())
}

// Same is true if s and other share the same tree.
func (s Set[E]) Same(other Set[E]) bool {
	return s.tree() == other.tree()
}

// Comparator returns the ordering of s.
func (s Set[E]) Comparator() elem.Comparator[E] {
	return s.cmp
}

// String lists the elements of s, e.g. "{A,B,C}".
func (s Set[E]) String() string {
	return s.tree().String()
}

// DebugString renders the shape of the underlying tree.
func (s Set[E]) DebugString() string {
	return s.tree().DebugString()
}

// Depth is the depth of the underlying tree.
func (s Set[E]) Depth() int {
	return s.tree().Depth()
}

// Tree gives read-only access to the underlying tree.
func (s Set[E]) Tree() *bintree.Node[E] {
	return s.tree()
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("treeset: "+msg, msgargs...)
		panic(msg)
	}
}
