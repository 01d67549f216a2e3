package array

import (
	"encoding/binary"
	"math"
)

// Elem is the closed set of element kinds a lattice array can hold.
// Boxed is the recursive kind: a boxed array's elements each own a full
// Value of their own.
type Elem interface {
	float64 | byte | complex128 | rune | Boxed
}

// typeName reports the human-readable name of an element kind, matching
// the names used in error messages.
func typeName[T Elem]() string {
	var zero T
	switch any(zero).(type) {
	case float64:
		return "number"
	case byte:
		return "byte"
	case complex128:
		return "complex"
	case rune:
		return "character"
	default:
		return "box"
	}
}

func typeNamePlural[T Elem]() string {
	var zero T
	switch any(zero).(type) {
	case float64:
		return "numbers"
	case byte:
		return "bytes"
	case complex128:
		return "complexes"
	case rune:
		return "characters"
	default:
		return "boxes"
	}
}

// cmpElem is the total element ordering used by rise, fall, sorting and
// the extremum reductions. NaN compares greater than every number and
// equal to itself so the ordering stays total.
func cmpElem[T Elem](a, b T) int {
	switch av := any(a).(type) {
	case float64:
		return cmpFloat(av, any(b).(float64))
	case byte:
		bv := any(b).(byte)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case complex128:
		bv := any(b).(complex128)
		if c := cmpFloat(real(av), real(bv)); c != 0 {
			return c
		}
		return cmpFloat(imag(av), imag(bv))
	case rune:
		bv := any(b).(rune)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	default:
		return CompareValues(any(a).(Boxed).Value, any(b).(Boxed).Value)
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}
	// At least one NaN.
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	default:
		return -1
	}
}

func cmpRows[T Elem](a, b []T) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := cmpElem(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// canonicalNaN makes every NaN (and negative zero) hash identically so
// structural-equality hashing agrees with cmpElem.
func canonicalFloatBits(f float64) uint64 {
	if math.IsNaN(f) {
		return math.Float64bits(math.NaN())
	}
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

// appendElemKey appends a hashable structural-equality key for v to b.
func appendElemKey[T Elem](b []byte, v T) []byte {
	switch av := any(v).(type) {
	case float64:
		return binary.BigEndian.AppendUint64(b, canonicalFloatBits(av))
	case byte:
		return append(b, av)
	case complex128:
		b = binary.BigEndian.AppendUint64(b, canonicalFloatBits(real(av)))
		return binary.BigEndian.AppendUint64(b, canonicalFloatBits(imag(av)))
	case rune:
		return binary.BigEndian.AppendUint32(b, uint32(av))
	default:
		return appendValueKey(b, any(v).(Boxed).Value)
	}
}

func rowKey[T Elem](row []T) string {
	b := make([]byte, 0, len(row)*8)
	for _, v := range row {
		b = appendElemKey(b, v)
	}
	return string(b)
}

// cloneElem deep-copies the element header for Boxed values so a shared
// boxed buffer can be privatized before in-place mutation. Leaf data
// buffers stay shared through copy-on-write.
func cloneElem[T Elem](v T) T {
	if bx, ok := any(v).(Boxed); ok {
		return any(Boxed{Value: CloneValue(bx.Value)}).(T)
	}
	return v
}
