package array

import (
	"strings"
	"testing"
)

// Bits

func TestBits(t *testing.T) {
	a := numArray(t, []int{3}, []float64{5, 3, 0})
	ctx := &testContext{}
	got, err := Bits(a, ctx)
	if err != nil {
		t.Fatalf("Bits: %v", err)
	}
	assertShape(t, got, []int{3, 3}, "bit axis sized by the maximum")
	want := []byte{1, 0, 1, 1, 1, 0, 0, 0, 0}
	for i, b := range got.Data() {
		if b != want[i] {
			t.Fatalf("bits = %v, want %v", got.Data(), want)
		}
	}
	if !got.HasFlag(FlagBoolean) {
		t.Error("bits result not flagged boolean")
	}
}

func TestBitsScalar(t *testing.T) {
	ctx := &testContext{}
	got, err := Bits(Scalar(6.0), ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, got, []int{3}, "scalar gains one axis")
}

func TestBitsEmpty(t *testing.T) {
	ctx := &testContext{}
	got, err := Bits(numArray(t, []int{0}, nil), ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, got, []int{0, 0}, "empty input, empty bit axis")
}

func TestBitsRejectsNonNaturals(t *testing.T) {
	ctx := &testContext{}
	if _, err := Bits(Scalar(1.5), ctx); err == nil {
		t.Error("Bits accepted a fraction")
	}
	if _, err := Bits(Scalar(-1.0), ctx); err == nil {
		t.Error("Bits accepted a negative")
	}
	if _, err := Bits(Scalar('a'), ctx); err == nil {
		t.Error("Bits accepted characters")
	}
}

func TestBitsRoundTrip(t *testing.T) {
	ctx := &testContext{}
	orig := numArray(t, []int{4}, []float64{5, 3, 0, 12})
	bits, err := Bits(orig, ctx)
	if err != nil {
		t.Fatal(err)
	}
	back, err := InvBits(bits, ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, back, []int{4}, "round trip shape")
	assertNums(t, back, []float64{5, 3, 0, 12}, "round trip data")
}

func TestInvBitsScalar(t *testing.T) {
	ctx := &testContext{}
	got, err := InvBits(Scalar(1.0), ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertNums(t, got, []float64{1}, "lone bit")
}

func TestInvBitsRejectsNonBooleans(t *testing.T) {
	ctx := &testContext{}
	if _, err := InvBits(numArray(t, []int{2}, []float64{0, 2}), ctx); err == nil {
		t.Error("InvBits accepted a 2")
	}
}

// Where

func TestWhere(t *testing.T) {
	ctx := &testContext{}
	got, err := Where(numArray(t, []int{3}, []float64{2, 0, 1}), ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertNums(t, got, []float64{0, 0, 2}, "counts expand to repeated indices")
}

func TestWhereMatrix(t *testing.T) {
	ctx := &testContext{}
	got, err := Where(numArray(t, []int{2, 2}, []float64{1, 0, 0, 2}), ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, got, []int{3, 2}, "coordinate table")
	assertNums(t, got, []float64{0, 0, 1, 1, 1, 1}, "row-major coordinates")
}

func TestWhereRejectsNegatives(t *testing.T) {
	ctx := &testContext{}
	if _, err := Where(numArray(t, []int{2}, []float64{1, -1}), ctx); err == nil {
		t.Error("Where accepted a negative count")
	}
}

func TestWhereInverseRoundTrip(t *testing.T) {
	ctx := &testContext{}
	counts := []float64{2, 0, 1}
	w, err := Where(numArray(t, []int{3}, append([]float64(nil), counts...)), ctx)
	if err != nil {
		t.Fatal(err)
	}
	back, err := InvWhere(w, ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertNums(t, back, counts, "inverse where restores counts")
}

func TestInvWhereUnsorted(t *testing.T) {
	ctx := &testContext{}
	got, err := InvWhere(numArray(t, []int{3}, []float64{2, 0, 2}), ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertNums(t, got, []float64{1, 0, 2}, "unsorted indices tally")
}

func TestInvWhereCoords(t *testing.T) {
	ctx := &testContext{}
	coords := numArray(t, []int{3, 2}, []float64{0, 0, 1, 1, 1, 1})
	got, err := InvWhere(coords, ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, got, []int{2, 2}, "dense shape from max coordinate")
	assertNums(t, got, []float64{1, 0, 0, 2}, "tallied counts")
}

func TestInvWhereHighRankFails(t *testing.T) {
	ctx := &testContext{}
	if _, err := InvWhere(numArray(t, []int{1, 1, 1}, []float64{0}), ctx); err == nil {
		t.Error("InvWhere accepted a rank-3 array")
	}
}

func TestFirstWhere(t *testing.T) {
	ctx := &testContext{}
	got, err := FirstWhere(numArray(t, []int{4}, []float64{0, 0, 3, 1}), ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertNums(t, got, []float64{2}, "first nonzero index")
}

func TestFirstWhereMatrix(t *testing.T) {
	ctx := &testContext{}
	got, err := FirstWhere(numArray(t, []int{2, 2}, []float64{0, 0, 0, 5}), ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, got, []int{2}, "coordinate vector")
	assertNums(t, got, []float64{1, 1}, "first nonzero coordinate")
}

func TestFirstWhereAllZero(t *testing.T) {
	a := numArray(t, []int{3}, []float64{0, 0, 0})

	got, err := FirstWhere(a, withFill(9))
	if err != nil {
		t.Fatal(err)
	}
	assertNums(t, got, []float64{9}, "fill fallback")

	ctx := &testContext{}
	_, err = FirstWhere(a, ctx)
	if err == nil {
		t.Fatal("all-zero FirstWhere without fill succeeded")
	}
	if !ctx.IsFillError(err) {
		t.Errorf("error not fill-marked: %v", err)
	}
}

// Range

func TestRangeScalar(t *testing.T) {
	ctx := &testContext{}
	got, err := Range(Scalar(4.0), ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, got, []int{4}, "flat range")
	assertNums(t, got, []float64{0, 1, 2, 3}, "0..n exclusive")
}

func TestRangeShape(t *testing.T) {
	ctx := &testContext{}
	got, err := Range(numArray(t, []int{2}, []float64{2, 3}), ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, got, []int{2, 3, 2}, "coordinate grid")
	assertNums(t, got, []float64{
		0, 0, 0, 1, 0, 2,
		1, 0, 1, 1, 1, 2,
	}, "row-major coordinates")
}

func TestRangeEmptyList(t *testing.T) {
	ctx := &testContext{}
	got, err := Range(numArray(t, []int{0}, nil), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.ElementCount() != 0 {
		t.Errorf("Range of empty list has %d elements", got.ElementCount())
	}
}

func TestRangeTooLarge(t *testing.T) {
	ctx := &testContext{}
	_, err := Range(numArray(t, []int{2}, []float64{1 << 20, 1 << 20}), ctx)
	if err == nil {
		t.Fatal("oversized Range succeeded")
	}
	if !strings.Contains(err.Error(), "[1048576 × 1048576]") {
		t.Errorf("error does not name the requested shape: %v", err)
	}
}
