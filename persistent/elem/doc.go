/*
Package elem defines what persistent collections need to know about their elements:
ordering, equality and hashing.

Go has no universal notion of equality or hash codes for values of arbitrary type.
Collections in this module therefore use a small set of rules, which element types
may override by implementing Equaler, Hasher or Comparable:

  - nil values (nil pointers, interfaces, maps, slices, funcs and channels) are equal
    to each other, hash to 0 and order before every non-nil value.
  - comparable values are equal if == says so.
  - other values are compared with reflect.DeepEqual.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package elem

import (
	"iter"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pds.elem'.
func tracer() tracing.Trace {
	return tracing.Select("pds.elem")
}

// Membership is implemented by every set-like collection of this module. Set equality
// is defined in terms of Membership, which makes sets of different implementations
// comparable to each other.
type Membership[E any] interface {
	Len() int
	Contains(E) bool
	All() iter.Seq[E]
}

// EqualSets reports whether two collections contain exactly the same elements.
func EqualSets[E any](a, b Membership[E]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for e := range a.All() {
		if !b.Contains(e) {
			return false
		}
	}
	return true
}

// SetHash is the hash code of a set: the sum of its elements' hash codes.
func SetHash[E any](elements iter.Seq[E]) int32 {
	var h int32
	for e := range elements {
		h += Hash(e)
	}
	return h
}
