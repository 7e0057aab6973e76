package bintree

import "github.com/npillmayer/pds/persistent/elem"

// SeqEqual reports whether two trees hold equal elements in the same in-order
// sequence. Tree shapes may differ.
func SeqEqual[E any](a, b *Node[E]) bool {
	if a == b {
		return true
	}
	if a.size != b.size {
		return false
	}
	ita, itb := a.Iterator(), b.Iterator()
	for ita.HasNext() {
		x, _ := ita.Next()
		y, _ := itb.Next()
		if !elem.Equal(x, y) {
			return false
		}
	}
	return true
}

// SeqHash computes an order-sensitive hash code over the in-order sequence of
// elements: h = 31·h + hash(e), starting with 1.
func SeqHash[E any](n *Node[E]) int32 {
	var h int32 = 1
	for e := range n.All() {
		h = 31*h + elem.Hash(e)
	}
	return h
}
