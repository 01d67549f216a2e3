// Copyright 2026 Lattice Array Language. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shape provides the public API for array shapes in the Lattice
// array engine.
//
// A Shape is an ordered list of dimensions. Each dimension carries a
// size and an optional marker rune used to align axes between arrays:
//
//	s := shape.Of(2, 3)
//	s.Push(shape.SizeDim(4))      // [2 × 3 × 4]
//	s.SetMarkers([]shape.Marker{'a', 0, 0})
package shape

import (
	"github.com/lattice-lang/lattice/internal/shape"
)

// Marker labels a dimension for axis alignment. The zero Marker means
// the dimension is unlabeled.
type Marker = shape.Marker

// EmptyMarker is the unlabeled Marker.
const EmptyMarker Marker = shape.EmptyMarker

// Dim is one dimension of a shape: a size plus an optional marker.
type Dim = shape.Dim

// SizeDim returns an unlabeled dimension of the given size.
func SizeDim(size int) Dim {
	return shape.SizeDim(size)
}

// DepthRotation describes how to rotate a shape's axes at a given depth
// so its markers line up with another shape's.
type DepthRotation = shape.DepthRotation

// Shape is the dimension list of an array. The zero value is the scalar
// shape.
type Shape = shape.Shape

// Scalar returns the rank-0 shape.
func Scalar() Shape {
	return shape.Scalar()
}

// Of builds a shape from a list of bare sizes.
func Of(sizes ...int) Shape {
	return shape.Of(sizes...)
}

// FromSizes builds a shape from a size slice, copying it.
func FromSizes(sizes []int) Shape {
	return shape.FromSizes(sizes)
}

// WithCapacity returns an empty shape with room for n dimensions.
func WithCapacity(n int) Shape {
	return shape.WithCapacity(n)
}
