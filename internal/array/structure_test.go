package array

import (
	"testing"
)

// Deshape

func TestDeshape(t *testing.T) {
	a := numArray(t, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	Deshape(a)
	assertShape(t, a, []int{6}, "deshaped")
	assertNums(t, a, []float64{1, 2, 3, 4, 5, 6}, "data untouched")
}

func TestDeshapeScalar(t *testing.T) {
	a := Scalar(5.0)
	Deshape(a)
	assertShape(t, a, []int{1}, "deshaped scalar")
}

func TestDeshapeDepth(t *testing.T) {
	a := numArray(t, []int{2, 3, 4}, make([]float64, 24))
	DeshapeDepth(a, 1)
	assertShape(t, a, []int{2, 12}, "depth 1")

	b := numArray(t, []int{2, 3}, make([]float64, 6))
	DeshapeDepth(b, 5)
	assertShape(t, b, []int{2, 3, 1}, "depth past rank")
}

// Fix

func TestFixInvFix(t *testing.T) {
	a := numArray(t, []int{3}, []float64{1, 2, 3})
	Fix(a)
	assertShape(t, a, []int{1, 3}, "fixed")
	InvFix(a)
	assertShape(t, a, []int{3}, "unfixed")
}

func TestInvFixMerges(t *testing.T) {
	a := numArray(t, []int{2, 3}, make([]float64, 6))
	InvFix(a)
	assertShape(t, a, []int{6}, "merged leading dims")
}

// Reverse

func TestReverseList(t *testing.T) {
	a := numArray(t, []int{4}, []float64{1, 2, 3, 4})
	Reverse(a)
	assertNums(t, a, []float64{4, 3, 2, 1}, "reversed list")
}

func TestReverseMatrixRows(t *testing.T) {
	a := numArray(t, []int{3, 2}, []float64{1, 2, 3, 4, 5, 6})
	Reverse(a)
	assertNums(t, a, []float64{5, 6, 3, 4, 1, 2}, "rows reversed, cells intact")
}

func TestReverseInvolution(t *testing.T) {
	orig := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	a := numArray(t, []int{4, 2}, append([]float64(nil), orig...))
	Reverse(a)
	Reverse(a)
	assertNums(t, a, orig, "double reverse")
}

func TestReverseDepth(t *testing.T) {
	// Depth 1 reverses within each row.
	a := numArray(t, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	ReverseDepth(a, 1)
	assertNums(t, a, []float64{3, 2, 1, 6, 5, 4}, "inner reverse")
}

func TestReverseScalarNoop(t *testing.T) {
	a := Scalar(7.0)
	Reverse(a)
	assertNums(t, a, []float64{7}, "scalar untouched")
}

// Transpose

func TestTransposeMatrix(t *testing.T) {
	a := numArray(t, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	Transpose(a)
	assertShape(t, a, []int{3, 2}, "transposed shape")
	assertNums(t, a, []float64{1, 4, 2, 5, 3, 6}, "transposed data")
}

func TestTransposeRoundTrip(t *testing.T) {
	data := make([]float64, 24)
	for i := range data {
		data[i] = float64(i)
	}
	a := numArray(t, []int{2, 3, 4}, append([]float64(nil), data...))
	TransposeDepth(a, 0, 1)
	assertShape(t, a, []int{3, 4, 2}, "forward")
	TransposeDepth(a, 0, -1)
	assertShape(t, a, []int{2, 3, 4}, "restored shape")
	assertNums(t, a, data, "restored data")
}

func TestTransposeFullCycleIsNoop(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	a := numArray(t, []int{2, 3}, append([]float64(nil), data...))
	TransposeDepth(a, 0, 2)
	assertShape(t, a, []int{2, 3}, "amount = rank")
	assertNums(t, a, data, "data unchanged")
}

func TestTransposeZeroDim(t *testing.T) {
	a := numArray(t, []int{0, 3}, nil)
	Transpose(a)
	assertShape(t, a, []int{3, 0}, "axes rotate without data")
}

func TestTransposeLowRankNoop(t *testing.T) {
	a := numArray(t, []int{4}, []float64{1, 2, 3, 4})
	Transpose(a)
	assertShape(t, a, []int{4}, "rank 1 untouched")
}

// First / Last

func TestFirstLast(t *testing.T) {
	ctx := &testContext{}
	a := numArray(t, []int{3, 2}, []float64{1, 2, 3, 4, 5, 6})

	first, err := First(a, ctx)
	if err != nil {
		t.Fatalf("First: %v", err)
	}
	assertShape(t, first, []int{2}, "first shape")
	assertNums(t, first, []float64{1, 2}, "first row")

	last, err := Last(a, ctx)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	assertNums(t, last, []float64{5, 6}, "last row")
}

func TestFirstScalarFails(t *testing.T) {
	ctx := &testContext{}
	if _, err := First(Scalar(1.0), ctx); err == nil {
		t.Error("First on a scalar succeeded")
	}
}

func TestFirstEmptyUsesFill(t *testing.T) {
	a := numArray(t, []int{0, 2}, nil)

	got, err := First(a, withFill(7))
	if err != nil {
		t.Fatalf("First with fill: %v", err)
	}
	assertNums(t, got, []float64{7, 7}, "fill row")

	ctx := &testContext{}
	_, err = First(a, ctx)
	if err == nil {
		t.Fatal("First on empty without fill succeeded")
	}
	if !ctx.IsFillError(err) {
		t.Errorf("error not fill-marked: %v", err)
	}
}

func TestFirstDoesNotMutate(t *testing.T) {
	ctx := &testContext{}
	a := numArray(t, []int{2, 2}, []float64{1, 2, 3, 4})
	first, err := First(a, ctx)
	if err != nil {
		t.Fatal(err)
	}
	first.(*Array[float64]).MutData()[0] = 99
	assertNums(t, a, []float64{1, 2, 3, 4}, "source after writing extracted row")
}

func TestFirstBoxedScalarUnwraps(t *testing.T) {
	ctx := &testContext{}
	boxed := Box(numArray(t, []int{2}, []float64{4, 5}))
	got, err := First(boxed, ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertNums(t, got, []float64{4}, "first through box")
}

// Unfirst / Unlast

func TestUnfirst(t *testing.T) {
	ctx := &testContext{}
	row := numArray(t, []int{2}, []float64{9, 9})
	into := numArray(t, []int{3, 2}, []float64{1, 2, 3, 4, 5, 6})

	got, err := Unfirst(row, into, ctx)
	if err != nil {
		t.Fatalf("Unfirst: %v", err)
	}
	assertShape(t, got, []int{3, 2}, "shape preserved")
	assertNums(t, got, []float64{9, 9, 3, 4, 5, 6}, "first row replaced")
}

func TestUnlast(t *testing.T) {
	ctx := &testContext{}
	row := numArray(t, []int{2}, []float64{9, 9})
	into := numArray(t, []int{3, 2}, []float64{1, 2, 3, 4, 5, 6})

	got, err := Unlast(row, into, ctx)
	if err != nil {
		t.Fatalf("Unlast: %v", err)
	}
	assertNums(t, got, []float64{1, 2, 3, 4, 9, 9}, "last row replaced")
}

func TestUnfirstRowBlock(t *testing.T) {
	ctx := &testContext{}
	rows := numArray(t, []int{2, 2}, []float64{9, 9, 8, 8})
	into := numArray(t, []int{3, 2}, []float64{1, 2, 3, 4, 5, 6})

	got, err := Unfirst(rows, into, ctx)
	if err != nil {
		t.Fatalf("Unfirst: %v", err)
	}
	assertShape(t, got, []int{4, 2}, "block join grows leading dim")
	assertNums(t, got, []float64{9, 9, 8, 8, 3, 4, 5, 6}, "block on front")
}

func TestUnfirstBytePromotion(t *testing.T) {
	ctx := &testContext{}
	row := Scalar(9.5)
	into := FromSlice([]byte{1, 2, 3})

	got, err := Unfirst(row, into, ctx)
	if err != nil {
		t.Fatalf("Unfirst: %v", err)
	}
	assertNums(t, got, []float64{9.5, 2, 3}, "bytes widened to numbers")
}

func TestUnfirstKindMismatch(t *testing.T) {
	ctx := &testContext{}
	if _, err := Unfirst(Scalar('a'), FromSlice([]float64{1, 2}), ctx); err == nil {
		t.Error("Unfirst of character into numbers succeeded")
	}
}
