package array

import (
	"encoding/binary"
	"fmt"

	"github.com/lattice-lang/lattice/internal/cowslice"
	"github.com/lattice-lang/lattice/internal/shape"
)

// Value is the polymorphic wrapper over the five typed-array kinds. It is
// a closed set: the only implementations are *Array[T] for T in the Elem
// constraint. Dispatch happens by type switch in the value-level
// operations; the uniform structural algorithms are reached through the
// unexported method set below.
type Value interface {
	fmt.Stringer
	Shape() *shape.Shape
	Rank() int
	RowCount() int
	ElementCount() int
	TypeName() string
	Validate() error

	typeNamePlural() string
	deshapeDepth(depth int)
	reverseDepth(depth int)
	transposeDepth(depth, amount int)
	rise(ctx Context) ([]int, error)
	fall(ctx Context) ([]int, error)
	sortUp(ctx Context) error
	sortDown(ctx Context) error
	classifyRows(ctx Context) ([]int, error)
	dedupRows()
	firstValue(ctx Context) (Value, error)
	lastValue(ctx Context) (Value, error)
	extremumIndex(ctx Context, ex extremum) (float64, error)
	appendKey(b []byte) []byte
	cloneValue() Value
	cmpSameKind(other Value) int
}

// Boxed wraps a value so it can live as a single element inside an
// otherwise homogeneous array. A boxed array owns its contained values.
type Boxed struct {
	Value Value
}

// Box wraps a value in a rank-0 boxed array.
func Box(v Value) *Array[Boxed] {
	return Scalar(Boxed{Value: v})
}

// CloneValue returns a copy-on-write clone of v.
func CloneValue(v Value) Value {
	return v.cloneValue()
}

func (a *Array[T]) cloneValue() Value {
	return a.Clone()
}

// appendKey writes a structural-equality key: kind tag, rank, sizes, then
// the element keys. The rank prefix keeps the encoding a prefix code, so
// shape bytes can never be mistaken for element bytes.
func (a *Array[T]) appendKey(b []byte) []byte {
	b = append(b, kindTag[T]())
	sizes := a.shape.Sizes()
	b = binary.BigEndian.AppendUint32(b, uint32(len(sizes)))
	for _, size := range sizes {
		b = binary.BigEndian.AppendUint32(b, uint32(size))
	}
	for _, v := range a.Data() {
		b = appendElemKey(b, v)
	}
	return b
}

func (a *Array[T]) cmpSameKind(other Value) int {
	o := other.(*Array[T])
	if c := cmpRows(a.Data(), o.Data()); c != 0 {
		return c
	}
	return a.shape.Compare(&o.shape)
}

func kindTag[T Elem]() byte {
	var zero T
	switch any(zero).(type) {
	case float64:
		return 'n'
	case byte:
		return 'y'
	case complex128:
		return 'x'
	case rune:
		return 'c'
	default:
		return 'b'
	}
}

func appendValueKey(b []byte, v Value) []byte {
	return v.appendKey(b)
}

// typeOrder fixes an arbitrary but stable ordering between element kinds
// so CompareValues is total. Numbers and bytes share an order slot and
// compare numerically against each other.
func typeOrder(v Value) int {
	switch v.(type) {
	case *Array[float64], *Array[byte]:
		return 0
	case *Array[complex128]:
		return 1
	case *Array[rune]:
		return 2
	default:
		return 3
	}
}

// CompareValues totally orders two values: numerically for number/byte
// pairs, elementwise then by shape for same-kind pairs, and by kind
// otherwise.
func CompareValues(a, b Value) int {
	ta, tb := typeOrder(a), typeOrder(b)
	if ta != tb {
		switch {
		case ta < tb:
			return -1
		default:
			return 1
		}
	}
	if ta == 0 {
		an, aIsNum := a.(*Array[float64])
		bn, bIsNum := b.(*Array[float64])
		if aIsNum != bIsNum {
			// Mixed number/byte pair: compare through the numeric view.
			if !aIsNum {
				an = bytesToNums(a.(*Array[byte]))
			}
			if !bIsNum {
				bn = bytesToNums(b.(*Array[byte]))
			}
			return an.cmpSameKind(bn)
		}
	}
	return a.cmpSameKind(b)
}

// bytesToNums widens a byte array into a number array.
func bytesToNums(a *Array[byte]) *Array[float64] {
	data := make([]float64, a.ElementCount())
	for i, v := range a.Data() {
		data[i] = float64(v)
	}
	out := &Array[float64]{shape: a.shape.Clone(), data: cowslice.FromSlice(data)}
	if a.meta != nil {
		meta := *a.meta
		out.meta = &meta
	}
	return out
}
