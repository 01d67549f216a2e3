// Package shape provides the dimension list underlying every lattice array.
package shape

import (
	"fmt"
	"strings"
)

// Marker is a lightweight per-dimension tag used to align matching axes
// between two shapes before a combining operation.
type Marker = rune

// EmptyMarker is the sentinel for an unmarked dimension.
const EmptyMarker Marker = 0

// Dim is a single dimension of a shape.
type Dim struct {
	Size   int
	Marker Marker
}

// SizeDim wraps a bare size into an unmarked dimension.
func SizeDim(size int) Dim {
	return Dim{Size: size, Marker: EmptyMarker}
}

// Shape is an ordered list of non-negative dimension sizes with an optional
// parallel list of per-dimension markers. When markers are present the two
// lists always have the same length; unmarked dimensions hold EmptyMarker.
//
// A shape with zero dimensions denotes a scalar. The element count of an
// array with this shape is the product of all sizes (the empty product is 1).
type Shape struct {
	sizes   []int
	markers []Marker
}

// Scalar returns a shape with no dimensions.
func Scalar() Shape {
	return Shape{}
}

// Of builds a shape from a list of bare sizes.
func Of(sizes ...int) Shape {
	return Shape{sizes: append([]int(nil), sizes...)}
}

// FromSizes builds a shape from a size slice, copying it.
func FromSizes(sizes []int) Shape {
	return Shape{sizes: append([]int(nil), sizes...)}
}

// WithCapacity returns a scalar shape with room for n dimensions.
func WithCapacity(n int) Shape {
	return Shape{sizes: make([]int, 0, n)}
}

// Rank returns the number of dimensions.
func (s *Shape) Rank() int {
	return len(s.sizes)
}

// Sizes returns the dimension sizes. The slice aliases the shape's storage.
func (s *Shape) Sizes() []int {
	return s.sizes
}

// Markers returns the per-dimension markers, or nil if no dimension is
// marked.
func (s *Shape) Markers() []Marker {
	if len(s.markers) == 0 {
		return nil
	}
	return s.markers
}

// Size returns the size of dimension i.
func (s *Shape) Size(i int) int {
	return s.sizes[i]
}

// SetSize replaces the size of dimension i.
func (s *Shape) SetSize(i, size int) {
	s.sizes[i] = size
}

// Dim returns dimension i with its marker.
func (s *Shape) Dim(i int) Dim {
	d := Dim{Size: s.sizes[i], Marker: EmptyMarker}
	if i < len(s.markers) {
		d.Marker = s.markers[i]
	}
	return d
}

// Length returns the leading dimension size, or 1 for a scalar.
func (s *Shape) Length() int {
	if len(s.sizes) == 0 {
		return 1
	}
	return s.sizes[0]
}

// SetLength sets the leading dimension size, adding one to a scalar shape.
func (s *Shape) SetLength(n int) {
	if len(s.sizes) == 0 {
		s.sizes = append(s.sizes, n)
	} else {
		s.sizes[0] = n
	}
}

// Elements returns the product of all dimension sizes.
func (s *Shape) Elements() int {
	n := 1
	for _, size := range s.sizes {
		n *= size
	}
	return n
}

// Push appends a trailing dimension, keeping markers in lockstep.
func (s *Shape) Push(d Dim) {
	s.sizes = append(s.sizes, d.Size)
	if d.Marker != EmptyMarker {
		s.syncMarkers(len(s.sizes) - 1)
		s.markers = append(s.markers, d.Marker)
	} else if len(s.markers) != 0 {
		s.markers = append(s.markers, EmptyMarker)
	}
}

// PushSize appends a trailing unmarked dimension.
func (s *Shape) PushSize(size int) {
	s.Push(SizeDim(size))
}

// Pop removes and returns the trailing dimension. The second result is
// false for a scalar shape.
func (s *Shape) Pop() (Dim, bool) {
	if len(s.sizes) == 0 {
		return Dim{}, false
	}
	d := Dim{Size: s.sizes[len(s.sizes)-1], Marker: EmptyMarker}
	s.sizes = s.sizes[:len(s.sizes)-1]
	if len(s.markers) != 0 {
		d.Marker = s.markers[len(s.markers)-1]
		s.markers = s.markers[:len(s.markers)-1]
	}
	return d, true
}

// Insert adds a dimension at index i. Out-of-range indices violate an
// internal invariant and panic.
func (s *Shape) Insert(i int, d Dim) {
	s.sizes = append(s.sizes, 0)
	copy(s.sizes[i+1:], s.sizes[i:])
	s.sizes[i] = d.Size
	if d.Marker != EmptyMarker {
		s.syncMarkers(len(s.sizes) - 1)
	}
	if len(s.markers) != 0 || d.Marker != EmptyMarker {
		s.markers = append(s.markers, EmptyMarker)
		copy(s.markers[i+1:], s.markers[i:])
		s.markers[i] = d.Marker
	}
}

// Remove deletes and returns the dimension at index i.
func (s *Shape) Remove(i int) Dim {
	d := Dim{Size: s.sizes[i], Marker: EmptyMarker}
	s.sizes = append(s.sizes[:i], s.sizes[i+1:]...)
	if len(s.markers) != 0 {
		d.Marker = s.markers[i]
		s.markers = append(s.markers[:i], s.markers[i+1:]...)
	}
	return d
}

// Drain removes the dimensions in [from, to).
func (s *Shape) Drain(from, to int) {
	s.sizes = append(s.sizes[:from], s.sizes[to:]...)
	if len(s.markers) != 0 {
		s.markers = append(s.markers[:from], s.markers[to:]...)
	}
}

// SplitOff removes the dimensions from index at onward and returns them as
// a new shape.
func (s *Shape) SplitOff(at int) Shape {
	out := Shape{sizes: append([]int(nil), s.sizes[at:]...)}
	s.sizes = s.sizes[:at]
	if len(s.markers) != 0 {
		m := at
		if m > len(s.markers) {
			m = len(s.markers)
		}
		out.markers = append([]Marker(nil), s.markers[m:]...)
		s.markers = s.markers[:m]
	}
	return out
}

// ExtendFromShape appends other's dimensions in [from, to), markers
// included when other carries any.
func (s *Shape) ExtendFromShape(other *Shape, from, to int) {
	s.sizes = append(s.sizes, other.sizes[from:to]...)
	if len(other.markers) != 0 {
		s.syncMarkers(len(s.sizes) - (to - from))
		s.markers = append(s.markers, other.markers[from:to]...)
	} else if len(s.markers) != 0 {
		s.syncMarkers(len(s.sizes))
	}
}

// RotateLeft rotates all dimensions left by n.
func (s *Shape) RotateLeft(n int) {
	s.RotateLeftAt(0, len(s.sizes), n)
}

// RotateRight rotates all dimensions right by n.
func (s *Shape) RotateRight(n int) {
	s.RotateRightAt(0, len(s.sizes), n)
}

// RotateLeftAt rotates the dimensions in [from, to) left by n.
func (s *Shape) RotateLeftAt(from, to, n int) {
	rotateLeft(s.sizes[from:to], n)
	if len(s.markers) != 0 {
		rotateLeft(s.markers[from:to], n)
	}
}

// RotateRightAt rotates the dimensions in [from, to) right by n.
func (s *Shape) RotateRightAt(from, to, n int) {
	if width := to - from; width != 0 {
		rotateLeft(s.sizes[from:to], width-n%width)
		if len(s.markers) != 0 {
			rotateLeft(s.markers[from:to], width-n%width)
		}
	}
}

// SetMarkers replaces all markers. Panics if the marker count does not
// match the dimension count.
func (s *Shape) SetMarkers(markers []Marker) {
	if len(markers) != len(s.sizes) {
		panic(fmt.Sprintf("shape: %d markers for %d dimensions", len(markers), len(s.sizes)))
	}
	s.markers = append([]Marker(nil), markers...)
}

// Equal reports whether two shapes have the same sizes. Markers are
// metadata, not identity.
func (s *Shape) Equal(other *Shape) bool {
	return s.EqualSizes(other.sizes)
}

// EqualSizes reports whether the shape's sizes match the given list.
func (s *Shape) EqualSizes(sizes []int) bool {
	if len(s.sizes) != len(sizes) {
		return false
	}
	for i, size := range s.sizes {
		if size != sizes[i] {
			return false
		}
	}
	return true
}

// Compare orders two shapes lexicographically by sizes.
func (s *Shape) Compare(other *Shape) int {
	n := len(s.sizes)
	if len(other.sizes) < n {
		n = len(other.sizes)
	}
	for i := 0; i < n; i++ {
		if s.sizes[i] != other.sizes[i] {
			if s.sizes[i] < other.sizes[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(s.sizes) < len(other.sizes):
		return -1
	case len(s.sizes) > len(other.sizes):
		return 1
	default:
		return 0
	}
}

// Clone returns a deep copy of the shape.
func (s *Shape) Clone() Shape {
	out := Shape{sizes: append([]int(nil), s.sizes...)}
	if len(s.markers) != 0 {
		out.markers = append([]Marker(nil), s.markers...)
	}
	return out
}

// String renders the shape as "[2 × 3]", prefixing marked dimensions with
// their marker.
func (s *Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, size := range s.sizes {
		if i > 0 {
			b.WriteString(" × ")
		}
		if i < len(s.markers) && s.markers[i] != EmptyMarker {
			b.WriteRune(s.markers[i])
		}
		fmt.Fprintf(&b, "%d", size)
	}
	b.WriteByte(']')
	return b.String()
}

// syncMarkers grows the marker list with EmptyMarker up to n entries so a
// real marker can be appended at the right index.
func (s *Shape) syncMarkers(n int) {
	for len(s.markers) < n {
		s.markers = append(s.markers, EmptyMarker)
	}
}

func rotateLeft[T any](vs []T, n int) {
	if len(vs) == 0 {
		return
	}
	n %= len(vs)
	if n < 0 {
		n += len(vs)
	}
	if n == 0 {
		return
	}
	tmp := make([]T, n)
	copy(tmp, vs[:n])
	copy(vs, vs[n:])
	copy(vs[len(vs)-n:], tmp)
}
