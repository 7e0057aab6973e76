/*
Package hashset implements an immutable, persistent hash set.

Elements are grouped into buckets of equal hash code. Buckets are kept in a persistent
ordered set, ordered by hash code; within a bucket, elements are held in a persistent
list in insertion order. Elements do not need to be ordered, but need consistent
equality and hash codes (see package elem), or a custom hash function and equality
supplied as options:

	s := hashset.New[*Point](hashset.WithHasher(pointHash), hashset.WithEquality(samePoint))

An empty instance is usable as an empty hash set with default hashing and equality.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashset

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/npillmayer/pds/maybe"
	"github.com/npillmayer/pds/persistent/bintree"
	"github.com/npillmayer/pds/persistent/elem"
	"github.com/npillmayer/pds/persistent/list"
	"github.com/npillmayer/pds/persistent/treeset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pds.hashset'.
func tracer() tracing.Trace {
	return tracing.Select("pds.hashset")
}

// nilHash is the bucket hash of nil elements.
const nilHash int32 = math.MinInt32

// bucket holds all elements of a set sharing a hash code.
type bucket[E any] struct {
	hash     int32
	elements list.List[E]
}

func (b bucket[E]) String() string {
	return fmt.Sprintf("#%d%s", b.hash, b.elements)
}

func byHash[E any](a, b bucket[E]) int {
	return cmp.Compare(a.hash, b.hash)
}

// Set is an immutable hash set.
type Set[E any] struct {
	buckets treeset.Set[bucket[E]]
	size    int
	props   *props[E]
}

type props[E any] struct {
	hash  func(E) int32
	equal func(E, E) bool
}

// Option is a type to help initializing hash sets at creation time.
type Option[E any] func(*props[E])

// WithHasher sets the hash function of a set. It is never called for nil elements.
func WithHasher[E any](hash func(E) int32) Option[E] {
	return func(p *props[E]) {
		p.hash = hash
	}
}

// WithEquality sets the equality of elements. Elements which are equal must have
// the same hash code. It is never called with nil elements.
func WithEquality[E any](equal func(E, E) bool) Option[E] {
	return func(p *props[E]) {
		p.equal = equal
	}
}

// New creates an empty hash set with options, if you need any.
func New[E any](opts ...Option[E]) Set[E] {
	p := &props[E]{hash: elem.Hash[E], equal: elem.Equal[E]}
	for _, option := range opts {
		option(p)
	}
	assertThat(p.hash != nil && p.equal != nil, "hash function and equality must not be nil")
	return Set[E]{buckets: emptyBuckets[E](), props: p}
}

// Of creates a hash set of elems with default hashing and equality.
func Of[E any](elems ...E) Set[E] {
	return New[E]().AddAll(elems...)
}

func emptyBuckets[E any]() treeset.Set[bucket[E]] {
	b, err := treeset.New(byHash[E])
	assertThat(err == nil, "%v", err)
	return b
}

func (s Set[E]) table() treeset.Set[bucket[E]] {
	if s.buckets.Comparator() == nil {
		return emptyBuckets[E]()
	}
	return s.buckets
}

func (s Set[E]) hashOf(e E) int32 {
	if elem.IsNil(e) {
		return nilHash
	}
	if s.props == nil {
		return elem.Hash(e)
	}
	return s.props.hash(e)
}

func (s Set[E]) matcher(e E) func(E) bool {
	if elem.IsNil(e) {
		return func(x E) bool { return elem.IsNil(x) }
	}
	eq := elem.Equal[E]
	if s.props != nil {
		eq = s.props.equal
	}
	return func(x E) bool { return !elem.IsNil(x) && eq(x, e) }
}

func (s Set[E]) bucketFor(e E) (bucket[E], bool) {
	return s.table().Get(bucket[E]{hash: s.hashOf(e)})
}

// withBucket returns a set with b replacing old. Empty buckets are dropped.
func (s Set[E]) withBucket(old, b bucket[E]) Set[E] {
	if b.elements.Same(old.elements) {
		return s
	}
	var buckets treeset.Set[bucket[E]]
	if b.elements.IsEmpty() {
		tracer().Debugf("removing bucket #%d", b.hash)
		buckets = s.table().Remove(b)
	} else {
		if old.elements.IsEmpty() {
			tracer().Debugf("creating bucket #%d", b.hash)
		}
		buckets = s.table().Put(b)
	}
	return Set[E]{
		buckets: buckets,
		size:    s.size - old.elements.Len() + b.elements.Len(),
		props:   s.props,
	}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements of s.
func (s Set[E]) Len() int {
	return s.size
}

// IsEmpty is true for a set without elements.
func (s Set[E]) IsEmpty() bool {
	return s.size == 0
}

// Add returns a set containing e. If s contains an element equal to e already, s is
// returned unchanged.
func (s Set[E]) Add(e E) Set[E] {
	old, _ := s.bucketFor(e)
	if old.elements.IndexFunc(s.matcher(e)) >= 0 {
		return s
	}
	b := bucket[E]{hash: s.hashOf(e), elements: old.elements.Add(e)}
	return s.withBucket(old, b)
}

// Put returns a set containing e. An element equal to e contained in s is replaced by
// e, keeping its position within its bucket.
func (s Set[E]) Put(e E) Set[E] {
	old, _ := s.bucketFor(e)
	b := bucket[E]{hash: s.hashOf(e)}
	if i := old.elements.IndexFunc(s.matcher(e)); i >= 0 {
		var err error
		b.elements, err = old.elements.Set(i, e)
		assertThat(err == nil, "%v", err)
	} else {
		b.elements = old.elements.Add(e)
	}
	return s.withBucket(old, b)
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

// Remove returns a set without the element equal to e. If there is none, s is
// returned.
func (s Set[E]) Remove(e E) Set[E] {
	old, found := s.bucketFor(e)
	if !found {
		return s
	}
	i := old.elements.IndexFunc(s.matcher(e))
	if i < 0 {
		return s
	}
	b := bucket[E]{hash: old.hash}
	var err error
	b.elements, err = old.elements.RemoveAt(i)
	assertThat(err == nil, "%v", err)
	return s.withBucket(old, b)
}

// Get returns the element of s equal to probe. This is the instance stored in the set,
// which may differ from probe.
func (s Set[E]) Get(probe E) (E, bool) {
	b, found := s.bucketFor(probe)
	if found {
		if i := b.elements.IndexFunc(s.matcher(probe)); i >= 0 {
			e, err := b.elements.Get(i)
			return e, err == nil
		}
	}
	var zero E
	return zero, false
}

// Lookup is Get, returning a Maybe.
func (s Set[E]) Lookup(probe E) maybe.Maybe[E] {
	return maybe.Of(s.Get(probe))
}

// Contains is true if s contains an element equal to e.
func (s Set[E]) Contains(e E) bool {
	_, found := s.Get(e)
	return found
}

// All returns an iterator over the elements of s: buckets in order of hash codes,
// elements of a bucket in insertion order.
func (s Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for b := range s.table().All() {
			for e := range b.elements.All() {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Iterator returns a fresh iterator over the elements of s.
func (s Set[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{buckets: s.table().Iterator()}
}

// Slice returns the elements of s in iteration order.
func (s Set[E]) Slice() []E {
	r := make([]E, 0, s.size)
	for e := range s.All() {
		r = append(r, e)
	}
	return r
}

// Buckets is the number of distinct hash codes of the elements of s.
func (s Set[E]) Buckets() int {
	return s.table().Len()
}

// Depth is the depth of the tree of buckets.
func (s Set[E]) Depth() int {
	return s.table().Depth()
}

// Equal is true if s and other contain the same elements. other may be any set
// implementation.
func (s Set[E]) Equal(other elem.Membership[E]) bool {
	return elem.EqualSets[E](s, other)
}

// HashCode is the sum of the hash codes of the elements of s, as defined by
// elem.Hash. It does not depend on a custom hash function.
func (s Set[E]) HashCode() int32 {
	return elem.SetHash(s.All())
}

// Same is true if s and other share the same structure.
func (s Set[E]) Same(other Set[E]) bool {
	return s.table().Same(other.table())
}

// String lists the elements of s in iteration order.
func (s Set[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for e := range s.All() {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		fmt.Fprint(&sb, e)
	}
	sb.WriteByte('}')
	return sb.String()
}

// DebugString renders the buckets of s and the shape of the bucket tree.
func (s Set[E]) DebugString() string {
	return s.table().DebugString()
}

// --- Iterator --------------------------------------------------------------

// Iterator iterates over the elements of a hash set, bucket by bucket.
type Iterator[E any] struct {
	buckets  *bintree.Iterator[bucket[E]]
	elements *bintree.Iterator[E]
}

// HasNext returns true if a call to Next will yield an element.
func (it *Iterator[E]) HasNext() bool {
	for it.elements == nil || !it.elements.HasNext() {
		if !it.buckets.HasNext() {
			return false
		}
		b, _ := it.buckets.Next()
		it.elements = b.elements.Iterator()
	}
	return true
}

// Next returns the next element, or ErrNoSuchElement after the last one.
func (it *Iterator[E]) Next() (E, error) {
	if !it.HasNext() {
		var zero E
		return zero, bintree.ErrNoSuchElement
	}
	return it.elements.Next()
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("hashset: "+msg, msgargs...)
		panic(msg)
	}
}
