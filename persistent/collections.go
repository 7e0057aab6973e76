package persistent

import (
	"cmp"

	"github.com/npillmayer/pds/persistent/elem"
	"github.com/npillmayer/pds/persistent/hashset"
	"github.com/npillmayer/pds/persistent/list"
	"github.com/npillmayer/pds/persistent/treemap"
	"github.com/npillmayer/pds/persistent/treeset"
)

// NewList returns an empty list.
func NewList[E any]() list.List[E] {
	return list.Empty[E]()
}

// NewOrderedSet returns an empty set of elements in their natural order.
func NewOrderedSet[E cmp.Ordered]() treeset.Set[E] {
	return treeset.Natural[E]()
}

// NewOrderedSetWith returns an empty set ordered by c. nil elements sort first and are
// never handed to c. A nil comparator results in ErrInvalidArgument.
func NewOrderedSetWith[E any](c elem.Comparator[E]) (treeset.Set[E], error) {
	s, err := treeset.New(c)
	if err != nil {
		tracer().Errorf("cannot create ordered set: %v", err)
	}
	return s, err
}

// NewOrderedMap returns an empty map with keys in their natural order.
func NewOrderedMap[K cmp.Ordered, V any]() treemap.Map[K, V] {
	return treemap.Natural[K, V]()
}

// NewOrderedMapWith returns an empty map with keys ordered by c. A nil comparator
// results in ErrInvalidArgument.
func NewOrderedMapWith[K, V any](c elem.Comparator[K]) (treemap.Map[K, V], error) {
	m, err := treemap.New[K, V](c)
	if err != nil {
		tracer().Errorf("cannot create ordered map: %v", err)
	}
	return m, err
}

// NewHashSet returns an empty hash set, configured by options.
func NewHashSet[E any](opts ...hashset.Option[E]) hashset.Set[E] {
	return hashset.New(opts...)
}
