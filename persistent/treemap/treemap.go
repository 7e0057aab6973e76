/*
Package treemap implements an immutable, persistent map with ordered keys.

A Map is a set of entries, ordered and identified by their keys. Keys may be nil if
their type allows it; nil keys order before all other keys.

	m := treemap.Natural[int, string]().Put(2, "two").Put(1, "one")
	fmt.Println(m)   // {[1 -> one],[2 -> two]}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treemap

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/pds/maybe"
	"github.com/npillmayer/pds/persistent/bintree"
	"github.com/npillmayer/pds/persistent/elem"
	"github.com/npillmayer/pds/persistent/treeset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pds.treemap'.
func tracer() tracing.Trace {
	return tracing.Select("pds.treemap")
}

// Entry is a key/value pair of a map.
type Entry[K, V any] struct {
	Key   K `json:"key" yaml:"key"`
	Value V `json:"value" yaml:"value"`
}

// Equals is true if both keys and values are equal.
func (e Entry[K, V]) Equals(other Entry[K, V]) bool {
	return elem.Equal(e.Key, other.Key) && elem.Equal(e.Value, other.Value)
}

// HashCode combines the hash codes of key and value.
func (e Entry[K, V]) HashCode() int32 {
	return elem.Hash(e.Key) ^ elem.Hash(e.Value)
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("[%v -> %v]", e.Key, e.Value)
}

// Map is an immutable map with keys ordered by a comparator.
type Map[K, V any] struct {
	entries treeset.Set[Entry[K, V]]
}

// New creates an empty map with keys ordered by c. A nil comparator is an error.
func New[K, V any](c elem.Comparator[K]) (Map[K, V], error) {
	if c == nil {
		return Map[K, V]{}, fmt.Errorf("%w: map needs a key comparator", bintree.ErrInvalidArgument)
	}
	return byKey[K, V](elem.NilsFirst(c)), nil
}

// Natural creates an empty map with keys in their natural order.
func Natural[K cmp.Ordered, V any]() Map[K, V] {
	return byKey[K, V](elem.Natural[K]())
}

func byKey[K, V any](c elem.Comparator[K]) Map[K, V] {
	entries, err := treeset.New(func(a, b Entry[K, V]) int {
		return c(a.Key, b.Key)
	})
	assertThat(err == nil, "%v", err)
	return Map[K, V]{entries: entries}
}

func (m Map[K, V]) derive(entries treeset.Set[Entry[K, V]]) Map[K, V] {
	return Map[K, V]{entries: entries}
}

// --- API -------------------------------------------------------------------

// Len returns the number of entries of m.
func (m Map[K, V]) Len() int {
	return m.entries.Len()
}

// IsEmpty is true for a map without entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.entries.IsEmpty()
}

// Put returns a map with key associated to value. A previous entry for key is
// replaced, including its key instance.
func (m Map[K, V]) Put(key K, value V) Map[K, V] {
	return m.derive(m.entries.Put(Entry[K, V]{Key: key, Value: value}))
}

// Get returns the value associated with key.
func (m Map[K, V]) Get(key K) (V, bool) {
	e, found := m.entries.Get(Entry[K, V]{Key: key})
	return e.Value, found
}

// Lookup is Get, returning a Maybe.
func (m Map[K, V]) Lookup(key K) maybe.Maybe[V] {
	return maybe.Of(m.Get(key))
}

// ContainsKey is true if m has an entry for key.
func (m Map[K, V]) ContainsKey(key K) bool {
	return m.entries.Contains(Entry[K, V]{Key: key})
}

// Remove returns a map without an entry for key. If there is none, m is returned.
func (m Map[K, V]) Remove(key K) Map[K, V] {
	return m.derive(m.entries.Remove(Entry[K, V]{Key: key}))
}

// Entries returns the set of entries of m.
func (m Map[K, V]) Entries() treeset.Set[Entry[K, V]] {
	return m.entries
}

// All returns an iterator over key/value pairs of m, in key order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.entries.All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys of m, in order.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range m.entries.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of m, in key order.
func (m Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range m.entries.All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Equal is true if m and other have the same keys, with equal values associated.
func (m Map[K, V]) Equal(other Map[K, V]) bool {
	if m.Len() != other.Len() {
		return false
	}
	for k, v := range m.All() {
		w, found := other.Get(k)
		if !found || !elem.Equal(v, w) {
			return false
		}
	}
	return true
}

// HashCode is the sum of the hash codes of the entries of m.
func (m Map[K, V]) HashCode() int32 {
	return m.entries.HashCode()
}

// Same is true if m and other share the same tree.
func (m Map[K, V]) Same(other Map[K, V]) bool {
	return m.entries.Same(other.entries)
}

// String lists the entries of m, e.g. "{[1 -> one],[2 -> two]}".
func (m Map[K, V]) String() string {
	return m.entries.String()
}

// DebugString renders the shape of the underlying tree.
func (m Map[K, V]) DebugString() string {
	return m.entries.DebugString()
}

// Depth is the depth of the underlying tree.
func (m Map[K, V]) Depth() int {
	return m.entries.Depth()
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("treemap: "+msg, msgargs...)
		panic(msg)
	}
}
