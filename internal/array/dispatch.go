package array

import "github.com/lattice-lang/lattice/internal/shape"

// The value-level operations below route each call to the matching typed
// array. Boxed arrays follow the depth rule: a boxed scalar always
// unwraps and recurses into its contained value; a boxed list recurses
// element-wise only while depth > 0 and the boxed array has rank ≤ 1,
// otherwise the operation applies to the boxed array's own rows.

// boxedDepthMut applies the depth rule on a mutable path, privatizing the
// boxed buffer before recursing. It reports whether recursion happened.
func boxedDepthMut(b *Array[Boxed], depth int, recurse func(Value, int)) bool {
	if b.Rank() == 0 {
		data := b.data.MakeMutDeep(cloneElem[Boxed])
		recurse(data[0].Value, depth)
		return true
	}
	if depth > 0 && b.Rank() <= 1 {
		data := b.data.MakeMutDeep(cloneElem[Boxed])
		for i := range data {
			recurse(data[i].Value, depth-1)
		}
		return true
	}
	return false
}

// Deshape makes the value one-dimensional.
func Deshape(v Value) {
	DeshapeDepth(v, 0)
}

// DeshapeDepth collapses all dimensions beyond depth into one.
func DeshapeDepth(v Value, depth int) {
	if b, ok := v.(*Array[Boxed]); ok && boxedDepthMut(b, depth, DeshapeDepth) {
		return
	}
	v.deshapeDepth(depth)
}

// Fix prepends a 1-length dimension to the value's shape.
func Fix(v Value) {
	v.Shape().Insert(0, shape.SizeDim(1))
}

// InvFix undoes Fix: a leading 1 is removed; otherwise the two leading
// dimensions merge.
func InvFix(v Value) {
	sh := v.Shape()
	switch {
	case sh.Rank() > 0 && sh.Size(0) == 1:
		sh.Remove(0)
	case sh.Rank() >= 2:
		merged := sh.Size(0) * sh.Size(1)
		sh.Drain(0, 2)
		sh.Insert(0, shape.SizeDim(merged))
	}
}

// Reverse reverses the value's rows.
func Reverse(v Value) {
	ReverseDepth(v, 0)
}

// ReverseDepth reverses rows at the given depth in place.
func ReverseDepth(v Value, depth int) {
	if b, ok := v.(*Array[Boxed]); ok && boxedDepthMut(b, depth, ReverseDepth) {
		return
	}
	v.reverseDepth(depth)
}

// Transpose rotates the value's axes forward by one.
func Transpose(v Value) {
	TransposeDepth(v, 0, 1)
}

// TransposeDepth rotates the axes from depth onward by a signed amount,
// permuting the data accordingly.
func TransposeDepth(v Value, depth, amount int) {
	if b, ok := v.(*Array[Boxed]); ok {
		if boxedDepthMut(b, depth, func(inner Value, d int) { TransposeDepth(inner, d, amount) }) {
			return
		}
	}
	v.transposeDepth(depth, amount)
}

// First returns the first row of the value. Byte arrays that fail for
// want of a byte fill are retried through the numeric representation.
func First(v Value, ctx Context) (Value, error) {
	switch a := unboxScalar(v).(type) {
	case *Array[byte]:
		out, err := a.firstValue(ctx)
		if err != nil && ctx.IsFillError(err) {
			return bytesToNums(a).firstValue(ctx)
		}
		return out, err
	default:
		return a.firstValue(ctx)
	}
}

// Last returns the last row of the value.
func Last(v Value, ctx Context) (Value, error) {
	switch a := unboxScalar(v).(type) {
	case *Array[byte]:
		out, err := a.lastValue(ctx)
		if err != nil && ctx.IsFillError(err) {
			return bytesToNums(a).lastValue(ctx)
		}
		return out, err
	default:
		return a.lastValue(ctx)
	}
}

// Unfirst reconstructs an array from a new first row and the rest of a
// previous one, for the invertible-function machinery.
func Unfirst(v, into Value, ctx Context) (Value, error) {
	return unJoin(v, into, ctx, false)
}

// Unlast is Unfirst for the trailing row.
func Unlast(v, into Value, ctx Context) (Value, error) {
	return unJoin(v, into, ctx, true)
}

func unJoin(v, into Value, ctx Context, last bool) (Value, error) {
	which := "first"
	if last {
		which = "last"
	}
	// A rank-0 boxed target unwraps before dispatch and reboxes after.
	if b, ok := into.(*Array[Boxed]); ok && b.Rank() == 0 {
		inner, err := unJoin(v, b.Data()[0].Value, ctx, last)
		if err != nil {
			return nil, err
		}
		return Box(inner), nil
	}
	switch a := v.(type) {
	case *Array[float64]:
		switch b := into.(type) {
		case *Array[float64]:
			return unJoinArrays(a, b, ctx, last)
		case *Array[byte]:
			return unJoinArrays(a, bytesToNums(b), ctx, last)
		}
	case *Array[byte]:
		switch b := into.(type) {
		case *Array[byte]:
			return unJoinArrays(a, b, ctx, last)
		case *Array[float64]:
			return unJoinArrays(bytesToNums(a), b, ctx, last)
		}
	case *Array[complex128]:
		if b, ok := into.(*Array[complex128]); ok {
			return unJoinArrays(a, b, ctx, last)
		}
	case *Array[rune]:
		if b, ok := into.(*Array[rune]); ok {
			return unJoinArrays(a, b, ctx, last)
		}
	case *Array[Boxed]:
		if b, ok := into.(*Array[Boxed]); ok {
			return unJoinArrays(a, b, ctx, last)
		}
	}
	return nil, ctx.Error("cannot invert %s of %s into %s", which, v.TypeName(), into.TypeName())
}

func unJoinArrays[T Elem](a, into *Array[T], ctx Context, last bool) (Value, error) {
	if last {
		return a.unlast(into, ctx)
	}
	return a.unfirst(into, ctx)
}

// Rise returns the permutation of row indices sorting the value's rows
// ascending.
func Rise(v Value, ctx Context) ([]int, error) {
	return unboxScalar(v).rise(ctx)
}

// Fall returns the permutation of row indices sorting the value's rows
// descending.
func Fall(v Value, ctx Context) ([]int, error) {
	return unboxScalar(v).fall(ctx)
}

// SortUp physically sorts the value's rows ascending.
func SortUp(v Value, ctx Context) error {
	return unboxScalarMut(v).sortUp(ctx)
}

// SortDown physically sorts the value's rows descending.
func SortDown(v Value, ctx Context) error {
	return unboxScalarMut(v).sortDown(ctx)
}

// Classify assigns each row the id of its distinct value in first-seen
// order, returned as a numeric value.
func Classify(v Value, ctx Context) (Value, error) {
	classes, err := unboxScalar(v).classifyRows(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]float64, len(classes))
	for i, class := range classes {
		data[i] = float64(class)
	}
	return FromSlice(data), nil
}

// Deduplicate keeps only the first occurrence of each distinct row.
func Deduplicate(v Value) {
	unboxScalarMut(v).dedupRows()
}

// FirstMinIndex returns the index of the first minimal row.
func FirstMinIndex(v Value, ctx Context) (Value, error) {
	return extremumValue(v, ctx, firstMin)
}

// FirstMaxIndex returns the index of the first maximal row.
func FirstMaxIndex(v Value, ctx Context) (Value, error) {
	return extremumValue(v, ctx, firstMax)
}

// LastMinIndex returns the index of the last minimal row.
func LastMinIndex(v Value, ctx Context) (Value, error) {
	return extremumValue(v, ctx, lastMin)
}

// LastMaxIndex returns the index of the last maximal row.
func LastMaxIndex(v Value, ctx Context) (Value, error) {
	return extremumValue(v, ctx, lastMax)
}

func extremumValue(v Value, ctx Context, ex extremum) (Value, error) {
	index, err := unboxScalar(v).extremumIndex(ctx, ex)
	if err != nil {
		return nil, err
	}
	return Scalar(index), nil
}
