package array

import (
	"fmt"
	"testing"

	"github.com/lattice-lang/lattice/internal/cowslice"
	"github.com/lattice-lang/lattice/internal/shape"
)

// Test helpers

func numArray(t *testing.T, sizes []int, data []float64) *Array[float64] {
	t.Helper()
	return New(shape.FromSizes(sizes), cowslice.FromSlice(data))
}

func assertShape(t *testing.T, v Value, want []int, msg string) {
	t.Helper()
	if !v.Shape().EqualSizes(want) {
		t.Errorf("%s: shape = %v, want %v", msg, v.Shape(), want)
	}
}

func assertNums(t *testing.T, v Value, want []float64, msg string) {
	t.Helper()
	a, ok := v.(*Array[float64])
	if !ok {
		t.Errorf("%s: value is %s, want numbers", msg, v.TypeName())
		return
	}
	got := a.Data()
	if len(got) != len(want) {
		t.Errorf("%s: data = %v, want %v", msg, got, want)
		return
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s: data = %v, want %v", msg, got, want)
			return
		}
	}
}

func assertInts(t *testing.T, got, want []int, msg string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: got %v, want %v", msg, got, want)
		return
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s: got %v, want %v", msg, got, want)
			return
		}
	}
}

// testContext is a minimal Context for exercising the engine. Fill
// values are set directly on the struct.
type testContext struct {
	fillNum  *float64
	fillChar *rune
}

type testError struct {
	msg  string
	fill bool
}

func (e *testError) Error() string { return e.msg }

func (c *testContext) Error(format string, args ...any) error {
	return &testError{msg: fmt.Sprintf(format, args...)}
}

func (c *testContext) MarkFill(err error) error {
	if e, ok := err.(*testError); ok {
		return &testError{msg: e.msg, fill: true}
	}
	return &testError{msg: err.Error(), fill: true}
}

func (c *testContext) IsFillError(err error) bool {
	e, ok := err.(*testError)
	return ok && e.fill
}

func (c *testContext) FillNum() (float64, error) {
	if c.fillNum == nil {
		return 0, c.MarkFill(c.Error("no fill"))
	}
	return *c.fillNum, nil
}

func (c *testContext) FillByte() (byte, error) {
	n, err := c.FillNum()
	if err != nil {
		return 0, err
	}
	return byte(n), nil
}

func (c *testContext) FillComplex() (complex128, error) {
	n, err := c.FillNum()
	if err != nil {
		return 0, err
	}
	return complex(n, 0), nil
}

func (c *testContext) FillChar() (rune, error) {
	if c.fillChar == nil {
		return 0, c.MarkFill(c.Error("no fill"))
	}
	return *c.fillChar, nil
}

func (c *testContext) FillBox() (Boxed, error) {
	return Boxed{}, c.MarkFill(c.Error("no fill"))
}

func withFill(n float64) *testContext {
	return &testContext{fillNum: &n}
}

// Array basics

func TestScalarArray(t *testing.T) {
	a := Scalar(5.0)
	if a.Rank() != 0 {
		t.Errorf("Rank() = %d, want 0", a.Rank())
	}
	if a.ElementCount() != 1 {
		t.Errorf("ElementCount() = %d, want 1", a.ElementCount())
	}
	if a.RowCount() != 1 {
		t.Errorf("RowCount() = %d, want 1", a.RowCount())
	}
	if a.TypeName() != "number" {
		t.Errorf("TypeName() = %q, want %q", a.TypeName(), "number")
	}
}

func TestRowAccess(t *testing.T) {
	a := numArray(t, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	if a.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", a.RowCount())
	}
	if a.RowLen() != 3 {
		t.Errorf("RowLen() = %d, want 3", a.RowLen())
	}
	row := a.RowSlice(1)
	if len(row) != 3 || row[0] != 4 {
		t.Errorf("RowSlice(1) = %v, want [4 5 6]", row)
	}
}

func TestCloneCopyOnWrite(t *testing.T) {
	a := numArray(t, []int{3}, []float64{1, 2, 3})
	b := a.Clone()
	b.MutData()[0] = 9
	if a.Data()[0] != 1 {
		t.Error("writing the clone changed the original")
	}
}

func TestValidate(t *testing.T) {
	good := numArray(t, []int{2, 2}, []float64{1, 2, 3, 4})
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	bad := &Array[float64]{
		shape: shape.Of(2, 3),
		data:  cowslice.FromSlice([]float64{1, 2}),
	}
	if err := bad.Validate(); err == nil {
		t.Error("Validate() accepted a shape/data mismatch")
	}
}

func TestTypeNames(t *testing.T) {
	tests := []struct {
		v    Value
		name string
	}{
		{Scalar(1.0), "number"},
		{Scalar(byte(1)), "byte"},
		{Scalar(complex(1, 0)), "complex"},
		{Scalar('a'), "character"},
		{Box(Scalar(1.0)), "box"},
	}
	for _, tt := range tests {
		if got := tt.v.TypeName(); got != tt.name {
			t.Errorf("TypeName() = %q, want %q", got, tt.name)
		}
	}
}
