// Package array implements the lattice array engine: the typed
// N-dimensional array, its structural algorithms, and the value-level
// dispatch across the five element kinds.
package array

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/lattice-lang/lattice/internal/cowslice"
	"github.com/lattice-lang/lattice/internal/parallel"
	"github.com/lattice-lang/lattice/internal/shape"
)

// parCfg tunes the data-parallel fan-out inside sorting and transposition.
var parCfg = parallel.DefaultConfig()

// SetParallelConfig replaces the parallel execution knob. Not safe to call
// concurrently with running operations.
func SetParallelConfig(cfg parallel.Config) {
	parCfg = cfg
}

// Flags carries per-array flag bits.
type Flags uint8

// FlagBoolean marks an array known to contain only 0/1 values, such as the
// output of Bits.
const FlagBoolean Flags = 1 << 0

// Metadata is opaque per-array information carried alongside the data.
type Metadata struct {
	Label string
	Flags Flags
}

// Array is a shape plus a flat copy-on-write buffer of elements. The
// buffer length always equals the product of the shape's sizes.
type Array[T Elem] struct {
	shape shape.Shape
	data  cowslice.Slice[T]
	meta  *Metadata
}

// New builds an array from a shape and a buffer. It panics if the buffer
// length does not match the shape; constructing a mismatched array is an
// internal invariant violation, not user input.
func New[T Elem](sh shape.Shape, data cowslice.Slice[T]) *Array[T] {
	a := &Array[T]{shape: sh, data: data}
	if err := a.Validate(); err != nil {
		panic(fmt.Sprintf("array: %v", err))
	}
	return a
}

// Scalar builds a rank-0 array holding a single element.
func Scalar[T Elem](v T) *Array[T] {
	return &Array[T]{shape: shape.Scalar(), data: cowslice.FromSlice([]T{v})}
}

// FromSlice builds a rank-1 array that adopts data.
func FromSlice[T Elem](data []T) *Array[T] {
	return &Array[T]{shape: shape.Of(len(data)), data: cowslice.FromSlice(data)}
}

// Shape returns the array's shape for reading and in-place mutation.
// Callers that change it must keep the buffer in step (see Validate).
func (a *Array[T]) Shape() *shape.Shape {
	return &a.shape
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int {
	return a.shape.Rank()
}

// ElementCount returns the total number of elements.
func (a *Array[T]) ElementCount() int {
	return a.shape.Elements()
}

// RowCount returns the leading dimension size, or 1 for a scalar.
func (a *Array[T]) RowCount() int {
	return a.shape.Length()
}

// RowLen returns the element count of one row.
func (a *Array[T]) RowLen() int {
	if n := a.RowCount(); n != 0 {
		return a.ElementCount() / n
	}
	// An empty leading dimension still has a definite row shape.
	n := 1
	for _, size := range a.shape.Sizes()[1:] {
		n *= size
	}
	return n
}

// Data returns a read-only view of the flat buffer.
func (a *Array[T]) Data() []T {
	return a.data.Values()
}

// MutData returns the flat buffer for writing, privatizing it first if it
// is shared.
func (a *Array[T]) MutData() []T {
	return a.data.MakeMut()
}

// RowSlice returns row i as a read-only sub-slice of the flat buffer.
func (a *Array[T]) RowSlice(i int) []T {
	rowLen := a.RowLen()
	return a.Data()[i*rowLen : (i+1)*rowLen]
}

// TypeName returns the element kind name used in error messages.
func (a *Array[T]) TypeName() string {
	return typeName[T]()
}

func (a *Array[T]) typeNamePlural() string {
	return typeNamePlural[T]()
}

// Meta returns the array's metadata, allocating it on first use.
func (a *Array[T]) Meta() *Metadata {
	if a.meta == nil {
		a.meta = &Metadata{}
	}
	return a.meta
}

// HasFlag reports whether flag is set without allocating metadata.
func (a *Array[T]) HasFlag(flag Flags) bool {
	return a.meta != nil && a.meta.Flags&flag != 0
}

// Validate re-checks the buffer-length invariant after a shape-affecting
// mutation.
func (a *Array[T]) Validate() error {
	var errs error
	for i, size := range a.shape.Sizes() {
		if size < 0 {
			errs = multierr.Append(errs, errors.Errorf("negative size %d at dimension %d", size, i))
		}
	}
	if want, got := a.shape.Elements(), a.data.Len(); errs == nil && want != got {
		errs = multierr.Append(errs, errors.Errorf("shape %v requires %d elements, buffer holds %d", &a.shape, want, got))
	}
	return errs
}

// Clone returns a new array header sharing the buffer copy-on-write.
func (a *Array[T]) Clone() *Array[T] {
	out := &Array[T]{shape: a.shape.Clone(), data: a.data.Clone()}
	if a.meta != nil {
		meta := *a.meta
		out.meta = &meta
	}
	return out
}

// String renders the array as its kind and shape.
func (a *Array[T]) String() string {
	return fmt.Sprintf("%s array %v", a.TypeName(), &a.shape)
}
