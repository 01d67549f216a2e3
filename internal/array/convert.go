package array

import (
	"math"

	"github.com/lattice-lang/lattice/internal/cowslice"
	"github.com/lattice-lang/lattice/internal/shape"
)

// unboxScalar follows boxed scalars down to the first non-box-scalar
// value, without cloning. Read-only paths use this.
func unboxScalar(v Value) Value {
	for {
		b, ok := v.(*Array[Boxed])
		if !ok || b.Rank() != 0 {
			return v
		}
		v = b.Data()[0].Value
	}
}

// unboxScalarMut is unboxScalar for mutating paths: shared boxed buffers
// are privatized before the contained value is exposed for writing.
func unboxScalarMut(v Value) Value {
	for {
		b, ok := v.(*Array[Boxed])
		if !ok || b.Rank() != 0 {
			return v
		}
		v = b.data.MakeMutDeep(cloneElem[Boxed])[0].Value
	}
}

// StringValue builds a character array from a string.
func StringValue(s string) *Array[rune] {
	return FromSlice([]rune(s))
}

// AsNats converts a rank ≤ 1 numeric value into a list of natural
// numbers, failing with msg when an element is fractional or negative or
// the value has the wrong kind or rank.
func AsNats(v Value, ctx Context, msg string) ([]int, error) {
	v = unboxScalar(v)
	if v.Rank() > 1 {
		return nil, ctx.Error("%s, but its rank is %d", msg, v.Rank())
	}
	switch a := v.(type) {
	case *Array[float64]:
		nats := make([]int, 0, a.ElementCount())
		for _, n := range a.Data() {
			if math.Floor(n) != n || n < 0 || math.IsInf(n, 0) || math.IsNaN(n) {
				return nil, ctx.Error("%s", msg)
			}
			nats = append(nats, int(n))
		}
		return nats, nil
	case *Array[byte]:
		nats := make([]int, 0, a.ElementCount())
		for _, n := range a.Data() {
			nats = append(nats, int(n))
		}
		return nats, nil
	default:
		return nil, ctx.Error("%s, but it is %s", msg, v.typeNamePlural())
	}
}

// AsNaturalArray converts a numeric value of any rank into natural
// numbers plus its shape.
func AsNaturalArray(v Value, ctx Context, msg string) ([]int, shape.Shape, error) {
	v = unboxScalar(v)
	switch a := v.(type) {
	case *Array[float64]:
		nats := make([]int, 0, a.ElementCount())
		for _, n := range a.Data() {
			if math.Floor(n) != n || n < 0 || math.IsInf(n, 0) || math.IsNaN(n) {
				return nil, shape.Shape{}, ctx.Error("%s", msg)
			}
			nats = append(nats, int(n))
		}
		return nats, a.shape.Clone(), nil
	case *Array[byte]:
		nats := make([]int, 0, a.ElementCount())
		for _, n := range a.Data() {
			nats = append(nats, int(n))
		}
		return nats, a.shape.Clone(), nil
	default:
		return nil, shape.Shape{}, ctx.Error("%s, but it is %s", msg, v.typeNamePlural())
	}
}

// AsString converts a rank ≤ 1 character value into a Go string.
func AsString(v Value, ctx Context, msg string) (string, error) {
	v = unboxScalar(v)
	a, ok := v.(*Array[rune])
	if !ok || a.Rank() > 1 {
		return "", ctx.Error("%s, but it is %s", msg, v.String())
	}
	return string(a.Data()), nil
}

// AsBytes converts a rank ≤ 1 numeric value into a byte list, rejecting
// values outside 0..255.
func AsBytes(v Value, ctx Context, msg string) ([]byte, error) {
	v = unboxScalar(v)
	switch a := v.(type) {
	case *Array[byte]:
		if a.Rank() > 1 {
			return nil, ctx.Error("%s, but its rank is %d", msg, a.Rank())
		}
		return append([]byte(nil), a.Data()...), nil
	case *Array[float64]:
		if a.Rank() > 1 {
			return nil, ctx.Error("%s, but its rank is %d", msg, a.Rank())
		}
		out := make([]byte, 0, a.ElementCount())
		for _, n := range a.Data() {
			if math.Floor(n) != n || n < 0 || n > 255 {
				return nil, ctx.Error("%s", msg)
			}
			out = append(out, byte(n))
		}
		return out, nil
	default:
		return nil, ctx.Error("%s, but it is %s", msg, v.typeNamePlural())
	}
}

// rowValue extracts row i of a as a standalone array one rank down.
func rowValue[T Elem](a *Array[T], i int) *Array[T] {
	rowShape := shape.FromSizes(a.shape.Sizes()[1:])
	data := append([]T(nil), a.RowSlice(i)...)
	return New(rowShape, cowslice.FromSlice(data))
}

// stackRows combines equal-shaped number rows into one array with a new
// leading dimension, the inverse of taking rows one by one.
func stackRows(rows []*Array[float64], ctx Context) (*Array[float64], error) {
	if len(rows) == 0 {
		return FromSlice([]float64{}), nil
	}
	rowShape := rows[0].Shape()
	data := make([]float64, 0, len(rows)*rows[0].ElementCount())
	for _, row := range rows {
		if !row.Shape().Equal(rowShape) {
			return nil, ctx.Error("cannot combine rows of shapes %v and %v", rowShape, row.Shape())
		}
		data = append(data, row.Data()...)
	}
	sh := shape.WithCapacity(rowShape.Rank() + 1)
	sh.PushSize(len(rows))
	sh.ExtendFromShape(rowShape, 0, rowShape.Rank())
	return New(sh, cowslice.FromSlice(data)), nil
}
