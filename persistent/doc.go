/*
Package persistent offers immutable, persistent collections: lists, ordered sets,
ordered maps and hash sets.

Immutable data structures in many cases offer benefits over mutable data structures in terms
of concurrent access and functional reasoning. *Persistent* immutable data-structures offer
structural sharing, which means that if two data structures are mostly copies of each other,
most of the memory they take up will be shared between them. This implies that making copies
of an immutable data structure is relatively cheap in terms of space- and time-complexity.

All collections of this module are built on a single kind of binary tree (package
bintree), kept shallow by local rotations after every edit. "Modifying" a collection
returns a new collection; the old one stays valid and unchanged, and may be shared
between goroutines without locking:

	l1 := persistent.NewList[int]().Add(1).Add(2).Add(3)
	l2 := l1.Add(4)
	fmt.Println(l1, l2)   // {1,2,3} {1,2,3,4}

This package collects factory functions for the collection types of the sub-packages
list, treeset, treemap and hashset.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent

import (
	"github.com/npillmayer/pds/persistent/bintree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pds.persistent'.
func tracer() tracing.Trace {
	return tracing.Select("pds.persistent")
}

// Errors reported by the collections.
var (
	ErrIndexOutOfRange = bintree.ErrIndexOutOfRange
	ErrNoSuchElement   = bintree.ErrNoSuchElement
	ErrInvalidArgument = bintree.ErrInvalidArgument
)
