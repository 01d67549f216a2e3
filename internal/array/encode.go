package array

import (
	"math"

	"github.com/lattice-lang/lattice/internal/cowslice"
	"github.com/lattice-lang/lattice/internal/shape"
)

// rangeMaxBytes caps the memory a single Range result may claim.
const rangeMaxBytes = 1 << 30

// Bits encodes a numeric value as its bit expansion: a new trailing
// dimension of size max-bits, bit j (least significant first) stored at
// position j along it. The result carries the boolean flag.
func Bits(v Value, ctx Context) (*Array[byte], error) {
	var nums *Array[float64]
	switch a := unboxScalar(v).(type) {
	case *Array[float64]:
		nums = a
	case *Array[byte]:
		nums = bytesToNums(a)
	default:
		return nil, ctx.Error("argument to bits must be an array of natural numbers")
	}
	nats := make([]uint64, 0, nums.ElementCount())
	for _, n := range nums.Data() {
		if math.Floor(n) != n || n < 0 {
			return nil, ctx.Error("array must be a list of naturals")
		}
		nats = append(nats, uint64(n))
	}
	if len(nats) == 0 {
		sh := nums.shape.Clone()
		sh.PushSize(0)
		return New(sh, cowslice.New[byte](0)), nil
	}
	var max uint64
	for _, n := range nats {
		if n > max {
			max = n
		}
	}
	maxBits := 0
	for max != 0 {
		maxBits++
		max >>= 1
	}
	data := make([]byte, len(nats)*maxBits)
	for i, n := range nats {
		for j := 0; j < maxBits; j++ {
			if n&(1<<j) != 0 {
				data[i*maxBits+j] = 1
			}
		}
	}
	sh := nums.shape.Clone()
	sh.PushSize(maxBits)
	out := New(sh, cowslice.FromSlice(data))
	out.Meta().Flags |= FlagBoolean
	return out, nil
}

// InvBits reverses Bits: a boolean value with a trailing bit axis is
// summed back into integers.
func InvBits(v Value, ctx Context) (*Array[float64], error) {
	var bits *Array[byte]
	switch a := unboxScalar(v).(type) {
	case *Array[byte]:
		bits = a
	case *Array[float64]:
		data := make([]byte, a.ElementCount())
		for i, n := range a.Data() {
			if n != 0 && n != 1 {
				return nil, ctx.Error("array must be a list of booleans")
			}
			data[i] = byte(n)
		}
		bits = New(a.shape.Clone(), cowslice.FromSlice(data))
	default:
		return nil, ctx.Error("argument to inverse bits must be an array of naturals")
	}
	for _, b := range bits.Data() {
		if b > 1 {
			return nil, ctx.Error("array must be a list of booleans")
		}
	}
	if bits.ElementCount() == 0 {
		if bits.Rank() == 0 {
			return Scalar(0.0), nil
		}
		sh := bits.shape.Clone()
		sh.Pop()
		return New(sh, cowslice.Repeat(0.0, sh.Elements())), nil
	}
	if bits.Rank() == 0 {
		return Scalar(float64(bits.Data()[0])), nil
	}
	sh := bits.shape.Clone()
	bitLen, _ := sh.Pop()
	data := make([]float64, bits.ElementCount()/bitLen.Size)
	src := bits.Data()
	for i := range data {
		var n uint64
		for j := 0; j < bitLen.Size; j++ {
			if src[i*bitLen.Size+j] != 0 {
				n |= 1 << j
			}
		}
		data[i] = float64(n)
	}
	return New(sh, cowslice.FromSlice(data)), nil
}

// Where expands an array of non-negative counts into the coordinates of
// each conceptual nonzero position, repeated per count. Rank ≤ 1 input
// yields a flat index list; higher ranks yield a [total, rank] coordinate
// table in row-major order.
func Where(v Value, ctx Context) (*Array[float64], error) {
	const msg = "argument to where must be an array of naturals"
	if v.Rank() <= 1 {
		counts, err := AsNats(v, ctx, msg)
		if err != nil {
			return nil, err
		}
		total := 0
		for _, c := range counts {
			total += c
		}
		data := make([]float64, 0, total)
		for i, c := range counts {
			for k := 0; k < c; k++ {
				data = append(data, float64(i))
			}
		}
		return FromSlice(data), nil
	}
	counts, sh, err := AsNaturalArray(v, ctx, msg)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	rank := sh.Rank()
	data := make([]float64, 0, total*rank)
	coord := make([]float64, rank)
	for i, c := range counts {
		if c == 0 {
			continue
		}
		unravel(i, sh.Sizes(), coord)
		for k := 0; k < c; k++ {
			data = append(data, coord...)
		}
	}
	out := shape.Of(total, rank)
	return New(out, cowslice.FromSlice(data)), nil
}

// unravel decomposes flat index i into the multi-index for sizes,
// row-major, writing into coord.
func unravel(i int, sizes []int, coord []float64) {
	for d := len(sizes) - 1; d >= 0; d-- {
		coord[d] = float64(i % sizes[d])
		i /= sizes[d]
	}
}

// FirstWhere returns the first nonzero position as a scalar index or
// coordinate vector, falling back to the context's fill value when every
// count is zero.
func FirstWhere(v Value, ctx Context) (*Array[float64], error) {
	const msg = "argument to where must be an array of naturals"
	counts, sh, err := AsNaturalArray(v, ctx, msg)
	if err != nil {
		return nil, err
	}
	for i, c := range counts {
		if c == 0 {
			continue
		}
		if sh.Rank() <= 1 {
			return Scalar(float64(i)), nil
		}
		coord := make([]float64, sh.Rank())
		unravel(i, sh.Sizes(), coord)
		return FromSlice(coord), nil
	}
	fill, err := ctx.FillNum()
	if err != nil {
		return nil, ctx.MarkFill(ctx.Error("cannot take first of an empty array: %v", err))
	}
	return Scalar(fill), nil
}

// InvWhere reconstructs a counts array from a coordinate list produced by
// Where. 1-D input tallies indices (two-pointer scan when pre-sorted);
// 2-D input tallies coordinate rows into a dense array shaped by the
// elementwise maximum coordinate plus one. Higher ranks fail.
func InvWhere(v Value, ctx Context) (*Array[float64], error) {
	switch v.Rank() {
	case 0, 1:
		indices, err := AsNats(v, ctx, "argument to inverse where must be a list of naturals")
		if err != nil {
			return nil, err
		}
		size := 0
		sorted := true
		for i, n := range indices {
			if n+1 > size {
				size = n + 1
			}
			if i > 0 && indices[i-1] > n {
				sorted = false
			}
		}
		data := make([]float64, size)
		if sorted {
			j := 0
			for i := 0; i < size; i++ {
				for j < len(indices) && indices[j] < i {
					j++
				}
				for j < len(indices) && indices[j] == i {
					data[i]++
					j++
				}
			}
		} else {
			for _, n := range indices {
				data[n]++
			}
		}
		return FromSlice(data), nil
	case 2:
		coords, sh, err := AsNaturalArray(v, ctx, "argument to inverse where must be an array of naturals")
		if err != nil {
			return nil, err
		}
		trailing := sh.Size(1)
		tally := make(map[string]int)
		rows := make(map[string][]int)
		for r := 0; r < sh.Size(0); r++ {
			row := coords[r*trailing : (r+1)*trailing]
			key := intsKey(row)
			tally[key]++
			rows[key] = row
		}
		outSizes := make([]int, trailing)
		for _, row := range rows {
			for d, n := range row {
				if n+1 > outSizes[d] {
					outSizes[d] = n + 1
				}
			}
		}
		data := make([]float64, product(outSizes))
		for key, row := range rows {
			i := 0
			rowLen := 1
			for d := trailing - 1; d >= 0; d-- {
				i += row[d] * rowLen
				rowLen *= outSizes[d]
			}
			data[i] = float64(tally[key])
		}
		return New(shape.FromSizes(outSizes), cowslice.FromSlice(data)), nil
	default:
		return nil, ctx.Error("cannot invert where of rank-%d array", v.Rank())
	}
}

func intsKey(row []int) string {
	b := make([]byte, 0, len(row)*4)
	for _, n := range row {
		b = append(b, byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
	}
	return string(b)
}

// Range builds a coordinate grid from a natural-number shape request: a
// scalar request yields the flat sequence 0..n, a shape list yields every
// multi-index of that shape in row-major order along a new trailing axis.
func Range(v Value, ctx Context) (Value, error) {
	request, err := AsNats(v, ctx, "range max should be a single natural number or a list of natural numbers")
	if err != nil {
		return nil, err
	}
	if v.Rank() == 0 {
		data := make([]float64, request[0])
		for i := range data {
			data[i] = float64(i)
		}
		return FromSlice(data), nil
	}
	if len(request) == 0 {
		return FromSlice([]float64{}), nil
	}
	rank := len(request)
	count := rank
	for _, size := range request {
		next := count * size
		if size != 0 && (next/size != count || next > rangeMaxBytes/8) {
			total := float64(rank)
			for _, d := range request {
				total *= float64(d)
			}
			reqShape := shape.FromSizes(request)
			return nil, ctx.Error(
				"attempting to make a range from shape %v would create an array with %v elements, which is too large",
				reqShape.String(), total)
		}
		count = next
	}
	data := make([]float64, count)
	coord := make([]float64, rank)
	pos := 0
	for i := 0; i < count/max(rank, 1); i++ {
		unravel(i, request, coord)
		pos += copy(data[pos:], coord)
	}
	sh := shape.FromSizes(request)
	sh.PushSize(rank)
	return New(sh, cowslice.FromSlice(data)), nil
}
