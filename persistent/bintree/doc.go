/*
Package bintree implements the immutable binary tree underlying all persistent
collections of this module.

A tree is built from three kinds of nodes: a canonical empty node (one per element
type), leaf nodes and inner nodes. Every node knows the size of the subtree it roots.
Nodes are never modified after construction. An edit copies the path from the root
down to the place of change and shares everything else with the previous version
('cow' stands for copy-on-write and is used throughout the code for variables holding
clones of nodes).

Trees are kept shallow by a local heuristic: after a child of a node has been
replaced, the node checks whether a single rotation reduces the size difference of
its subtrees, or whether it is the top of a degenerate chain of three nodes. There is no
global balance guarantee, but under random as well as under sequential insertion the
depth stays logarithmic.

Positional operations (InsertAt, RemoveAt, SetAt, At) treat the tree as a sequence in
in-order. Ordered operations (Insert, Delete, Find) treat it as a binary search tree
under a comparator. Both kinds of operations share the same balancing and deletion
rules, but should not be mixed on a single tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bintree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pds.bintree'.
func tracer() tracing.Trace {
	return tracing.Select("pds.bintree")
}

// Errors reported by the collections of this module.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNoSuchElement   = errors.New("no such element")
	ErrInvalidArgument = errors.New("invalid argument")
)

// IndexError wraps ErrIndexOutOfRange with the offending index.
func IndexError(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bintree: "+msg, msgargs...)
		panic(msg)
	}
}
