package elem

import (
	"math"
	"reflect"
)

// Equaler is implemented by element types which define their own equality.
type Equaler[E any] interface {
	Equals(E) bool
}

// Equal reports whether a and b are equal elements. Nil values are equal to each other
// and unequal to everything else. Types implementing Equaler decide for themselves;
// values of comparable types are compared with ==, all others by reflect.DeepEqual.
//
// Floating point numbers are equal if they compare equal under cmp.Compare: NaN equals
// NaN, and -0 equals +0.
func Equal[E any](a, b E) bool {
	anil, bnil := IsNil(a), IsNil(b)
	if anil || bnil {
		return anil && bnil
	}
	if eq, ok := any(a).(Equaler[E]); ok {
		return eq.Equals(b)
	}
	x, y := any(a), any(b)
	switch f := x.(type) {
	case float64:
		g, ok := y.(float64)
		return ok && (f == g || (math.IsNaN(f) && math.IsNaN(g)))
	case float32:
		g, ok := y.(float32)
		return ok && (f == g || (f != f && g != g))
	}
	if isComparable(x) && isComparable(y) {
		return x == y
	}
	return reflect.DeepEqual(x, y)
}

// Same reports whether a and b are identical, i.e. indistinguishable without looking
// into them. For pointers this is identity, for plain values equality by ==.
// Non-comparable values are never the same.
func Same[E any](a, b E) bool {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if !isComparable(x) || !isComparable(y) {
		return false
	}
	return x == y
}

func isComparable(x any) bool {
	return reflect.TypeOf(x).Comparable() && !containsIncomparable(reflect.ValueOf(x))
}

// containsIncomparable checks interface-typed parts of a value, which may hold
// dynamic values panicking on ==.
func containsIncomparable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return false
		}
		e := v.Elem()
		return !e.Type().Comparable() || containsIncomparable(e)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if containsIncomparable(v.Field(i)) {
				return true
			}
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if containsIncomparable(v.Index(i)) {
				return true
			}
		}
	}
	return false
}
