package elem

import (
	"cmp"
	"reflect"
)

// Comparator imposes a total order on elements. It returns a negative number if a
// is less than b, 0 if both are equivalent, and a positive number otherwise.
type Comparator[E any] func(a, b E) int

// Comparable is implemented by types carrying their own ordering.
type Comparable[E any] interface {
	CompareTo(E) int
}

// Natural is the comparator for Go's ordered types.
func Natural[E cmp.Ordered]() Comparator[E] {
	return cmp.Compare[E]
}

// ByCompareTo is the comparator for types implementing Comparable.
func ByCompareTo[E Comparable[E]]() Comparator[E] {
	return NilsFirst(func(a, b E) int {
		return a.CompareTo(b)
	})
}

// Reverse reverses the order of c.
func Reverse[E any](c Comparator[E]) Comparator[E] {
	return func(a, b E) int {
		return c(b, a)
	}
}

// NilsFirst wraps c such that nil values are less than every non-nil value and
// equivalent to each other. c will never be called with a nil argument.
func NilsFirst[E any](c Comparator[E]) Comparator[E] {
	return func(a, b E) int {
		anil, bnil := IsNil(a), IsNil(b)
		switch {
		case anil && bnil:
			return 0
		case anil:
			return -1
		case bnil:
			return 1
		}
		return c(a, b)
	}
}

// IsNil reports whether x is nil, including typed nil values of nillable kinds.
func IsNil(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
