package array

import (
	"github.com/lattice-lang/lattice/internal/cowslice"
	"github.com/lattice-lang/lattice/internal/parallel"
)

// transposeParThreshold is the per-chunk moved extent above which the
// transpose gather fans out across goroutines. A tuning knob, not a
// correctness boundary.
const transposeParThreshold = 500

func product(sizes []int) int {
	n := 1
	for _, size := range sizes {
		n *= size
	}
	return n
}

// deshapeDepth collapses all dimensions beyond depth into one trailing
// dimension whose size is their product. Shape-only, no data movement.
func (a *Array[T]) deshapeDepth(depth int) {
	if depth > a.Rank() {
		depth = a.Rank()
	}
	tail := a.shape.SplitOff(depth)
	a.shape.PushSize(product(tail.Sizes()))
}

// reverseDepth reverses the order of rows at the given depth in place,
// swapping mirror-index row blocks from both ends toward the center.
func (a *Array[T]) reverseDepth(depth int) {
	if depth > a.Rank() {
		depth = a.Rank()
	}
	rowShape := a.shape.Sizes()[depth:]
	if len(rowShape) == 0 {
		return
	}
	chunkSize := product(rowShape)
	if chunkSize == 0 {
		return
	}
	data := a.MutData()
	chunkRowCount := rowShape[0]
	chunkRowLen := chunkSize / chunkRowCount
	for start := 0; start+chunkSize <= len(data); start += chunkSize {
		chunk := data[start : start+chunkSize]
		for i := 0; i < chunkRowCount/2; i++ {
			j := chunkRowCount - i - 1
			// The two row blocks never overlap: i < rowCount/2 <= j.
			left := chunk[i*chunkRowLen : (i+1)*chunkRowLen]
			right := chunk[j*chunkRowLen : (j+1)*chunkRowLen]
			for k := range left {
				left[k], right[k] = right[k], left[k]
			}
		}
	}
}

// transposeDepth rotates the dimensions from depth onward by a signed
// amount (positive = forward rotation of axes), simultaneously permuting
// the data into the new axis order via a stride gather.
func (a *Array[T]) transposeDepth(depth, amount int) {
	if depth > a.Rank() {
		depth = a.Rank()
	}
	rank := a.Rank()
	if rank-depth < 2 {
		return
	}
	forward := amount > 0
	count := amount
	if count < 0 {
		count = -count
	}
	count %= rank - depth
	if count == 0 {
		return
	}
	sizes := a.shape.Sizes()
	for _, size := range sizes[depth:] {
		if size == 0 {
			// No data to move; only the axes rotate.
			a.rotateAxes(depth, count, forward)
			return
		}
	}
	data := a.MutData()
	chunkLen := product(sizes[depth:])
	var subs int
	if forward {
		subs = product(sizes[depth : depth+count])
	} else {
		subs = product(sizes[depth : rank-count])
	}
	stride := chunkLen / subs
	temp := make([]T, chunkLen)
	for start := 0; start+chunkLen <= len(data); start += chunkLen {
		chunk := data[start : start+chunkLen]
		gather := func(tc int) {
			dst := temp[tc*subs : (tc+1)*subs]
			for ci := range dst {
				dst[ci] = chunk[ci*stride+tc]
			}
		}
		if subs > transposeParThreshold {
			parallel.For(stride, gather, parCfg)
		} else {
			for tc := 0; tc < stride; tc++ {
				gather(tc)
			}
		}
		copy(chunk, temp)
	}
	a.rotateAxes(depth, count, forward)
}

func (a *Array[T]) rotateAxes(depth, count int, forward bool) {
	if forward {
		a.shape.RotateLeftAt(depth, a.Rank(), count)
	} else {
		a.shape.RotateRightAt(depth, a.Rank(), count)
	}
}

// firstValue extracts the first row, dropping the leading dimension. An
// empty leading dimension resolves through the context's fill value.
func (a *Array[T]) firstValue(ctx Context) (Value, error) {
	switch {
	case a.Rank() == 0:
		return nil, ctx.Error("cannot take first of a scalar")
	case a.shape.Size(0) == 0:
		fill, err := FillOf[T](ctx)
		if err != nil {
			return nil, ctx.MarkFill(ctx.Error("cannot take first of an empty array: %v", err))
		}
		out := a.Clone()
		out.data.ExtendRepeat(fill, out.RowLen())
		out.shape.Remove(0)
		return out, nil
	default:
		out := a.Clone()
		rowLen := out.RowLen()
		out.shape.Remove(0)
		out.data.Truncate(rowLen)
		return out, nil
	}
}

// lastValue extracts the last row, dropping the leading dimension.
func (a *Array[T]) lastValue(ctx Context) (Value, error) {
	switch {
	case a.Rank() == 0:
		return nil, ctx.Error("cannot take last of a scalar")
	case a.shape.Size(0) == 0:
		fill, err := FillOf[T](ctx)
		if err != nil {
			return nil, ctx.MarkFill(ctx.Error("cannot take last of an empty array: %v", err))
		}
		out := a.Clone()
		out.data.ExtendRepeat(fill, out.RowLen())
		out.shape.Remove(0)
		return out, nil
	default:
		out := a.Clone()
		rowLen := out.RowLen()
		out.shape.Remove(0)
		out.data.Tail(rowLen)
		return out, nil
	}
}

// unfirst reconstructs an array from a new first row and the rest of a
// previous array: into loses its first row, a joins back on the front.
func (a *Array[T]) unfirst(into *Array[T], ctx Context) (*Array[T], error) {
	rest, err := into.dropRows(1, false, ctx)
	if err != nil {
		return nil, err
	}
	return a.joinTo(rest, true, ctx)
}

// unlast is the mirror of unfirst for the trailing row.
func (a *Array[T]) unlast(into *Array[T], ctx Context) (*Array[T], error) {
	rest, err := into.dropRows(1, true, ctx)
	if err != nil {
		return nil, err
	}
	return a.joinTo(rest, false, ctx)
}

// dropRows removes n rows from the front or the back, clamping at zero.
func (a *Array[T]) dropRows(n int, fromEnd bool, ctx Context) (*Array[T], error) {
	if a.Rank() == 0 {
		return nil, ctx.Error("cannot drop from a scalar")
	}
	keep := a.RowCount() - n
	if keep < 0 {
		keep = 0
	}
	out := a.Clone()
	rowLen := out.RowLen()
	if fromEnd {
		out.data.Truncate(keep * rowLen)
	} else {
		out.data.Tail(keep * rowLen)
	}
	out.shape.SetSize(0, keep)
	return out, nil
}

// joinTo concatenates a onto rest, at the front when front is true. a may
// be one row (rank one below rest) or a block of rows of matching row
// shape.
func (a *Array[T]) joinTo(rest *Array[T], front bool, ctx Context) (*Array[T], error) {
	if rest.Rank() == 0 {
		return nil, ctx.Error("cannot join onto a scalar")
	}
	restRow := rest.shape.Sizes()[1:]
	var newRows int
	switch {
	case a.Rank() == rest.Rank()-1 && equalSizes(a.shape.Sizes(), restRow):
		newRows = 1
	case a.Rank() == rest.Rank() && equalSizes(a.shape.Sizes()[1:], restRow):
		newRows = a.shape.Size(0)
	default:
		return nil, ctx.Error("cannot join arrays of shapes %v and %v", &a.shape, &rest.shape)
	}
	data := make([]T, 0, a.ElementCount()+rest.ElementCount())
	if front {
		data = append(data, a.Data()...)
		data = append(data, rest.Data()...)
	} else {
		data = append(data, rest.Data()...)
		data = append(data, a.Data()...)
	}
	out := rest.Clone()
	out.data = cowslice.FromSlice(data)
	out.shape.SetSize(0, rest.shape.Size(0)+newRows)
	return out, nil
}

func equalSizes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
