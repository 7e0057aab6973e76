package elem

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cnf/structhash"
)

// Hasher is implemented by element types which compute their own hash code.
// Elements which are Equal must have the same hash code.
type Hasher interface {
	HashCode() int32
}

// NilHash is the hash code of nil.
const NilHash int32 = 0

// Hash computes a hash code for e. Types implementing Hasher are asked for their hash
// code, strings, numbers and booleans are hashed directly, and everything else gets a
// structural hash of its contents.
func Hash[E any](e E) int32 {
	if IsNil(e) {
		return NilHash
	}
	switch x := any(e).(type) {
	case Hasher:
		return x.HashCode()
	case string:
		return hashString(x)
	case bool:
		if x {
			return 1231
		}
		return 1237
	case int:
		return hashUint64(uint64(x))
	case int8:
		return int32(x)
	case int16:
		return int32(x)
	case int32:
		return x
	case int64:
		return hashUint64(uint64(x))
	case uint:
		return hashUint64(uint64(x))
	case uint8:
		return int32(x)
	case uint16:
		return int32(x)
	case uint32:
		return int32(x)
	case uint64:
		return hashUint64(x)
	case uintptr:
		return hashUint64(uint64(x))
	case float32:
		return hashFloat(float64(x))
	case float64:
		return hashFloat(x)
	}
	return hashStructure(e)
}

func hashString(s string) int32 {
	var h int32
	for _, r := range s {
		h = 31*h + r
	}
	return h
}

// hashFloat hashes -0 like +0 and all NaNs alike, as Equal does not tell them apart.
func hashFloat(f float64) int32 {
	switch {
	case f == 0:
		f = 0
	case math.IsNaN(f):
		f = math.NaN()
	}
	return hashUint64(math.Float64bits(f))
}

func hashUint64(u uint64) int32 {
	return int32(u ^ (u >> 32))
}

// hashStructure folds a SHA-1 digest of the value's contents into 32 bits.
// Pointers without a Hasher implementation hash by identity.
func hashStructure[E any](e E) int32 {
	v := reflect.ValueOf(e)
	if v.Kind() == reflect.Pointer || v.Kind() == reflect.UnsafePointer {
		return hashUint64(uint64(v.Pointer()))
	}
	digest := structhash.Sha1(e, 1)
	var h uint32
	for i := 0; i+4 <= len(digest); i += 4 {
		h ^= binary.BigEndian.Uint32(digest[i : i+4])
	}
	tracer().Debugf("structural hash of %T = %d", e, int32(h))
	return int32(h)
}
