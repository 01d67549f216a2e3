// Copyright 2026 Lattice Array Language. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package value provides the public API for array values in the Lattice
// array engine.
//
// A Value is an N-dimensional array of one of five element kinds:
// numbers, bytes, complex numbers, characters, or boxes. Structural
// operations mutate values in place through copy-on-write storage, so
// clones stay cheap until one side writes:
//
//	ctx := value.NewContext()
//	v := value.FromNums(3, 1, 2)
//	perm, err := value.Rise(v, ctx)  // [1 2 0]
package value

import (
	"github.com/lattice-lang/lattice/internal/array"
	"github.com/lattice-lang/lattice/internal/eval"
)

// Elem is the constraint over the element kinds an array can hold.
type Elem = array.Elem

// Value is an array of any element kind.
type Value = array.Value

// Array is a typed N-dimensional array.
type Array[T Elem] = array.Array[T]

// Boxed wraps a value so it can be an element of another array.
type Boxed = array.Boxed

// Metadata carries a value's label and flags.
type Metadata = array.Metadata

// Flags is the per-value flag set.
type Flags = array.Flags

// FlagBoolean marks an array known to contain only 0s and 1s.
const FlagBoolean = array.FlagBoolean

// Context is the capability a value operation needs from the runtime:
// error construction and fill values.
type Context = array.Context

// NewContext returns an evaluation context with no fills set.
func NewContext() *eval.Context {
	return eval.New()
}

// Creation

// Num returns a scalar number value.
func Num(n float64) Value {
	return array.Scalar(n)
}

// FromNums returns a numeric list value.
func FromNums(ns ...float64) Value {
	return array.FromSlice(ns)
}

// FromBytes returns a byte list value.
func FromBytes(bs []byte) Value {
	return array.FromSlice(bs)
}

// Char returns a scalar character value.
func Char(r rune) Value {
	return array.Scalar(r)
}

// String returns a character list value holding the runes of s.
func String(s string) Value {
	return array.StringValue(s)
}

// Complex returns a scalar complex value.
func Complex(c complex128) Value {
	return array.Scalar(c)
}

// Box wraps a value into a rank-0 boxed value.
func Box(v Value) Value {
	return array.Box(v)
}

// Clone returns an independent copy of v sharing storage until written.
func Clone(v Value) Value {
	return array.CloneValue(v)
}

// Compare totally orders two values for sorting and grouping.
func Compare(a, b Value) int {
	return array.CompareValues(a, b)
}

// Structure

// Deshape makes the value one-dimensional.
func Deshape(v Value) {
	array.Deshape(v)
}

// DeshapeDepth collapses all dimensions beyond depth into one.
func DeshapeDepth(v Value, depth int) {
	array.DeshapeDepth(v, depth)
}

// Fix prepends a 1-length dimension to the value's shape.
func Fix(v Value) {
	array.Fix(v)
}

// InvFix undoes Fix.
func InvFix(v Value) {
	array.InvFix(v)
}

// Reverse reverses the value's rows in place.
func Reverse(v Value) {
	array.Reverse(v)
}

// ReverseDepth reverses rows at the given depth.
func ReverseDepth(v Value, depth int) {
	array.ReverseDepth(v, depth)
}

// Transpose rotates the value's axes forward by one.
func Transpose(v Value) {
	array.Transpose(v)
}

// TransposeDepth rotates the axes from depth onward by a signed amount.
func TransposeDepth(v Value, depth, amount int) {
	array.TransposeDepth(v, depth, amount)
}

// First returns the value's first row, or the fill value when empty.
func First(v Value, ctx Context) (Value, error) {
	return array.First(v, ctx)
}

// Last returns the value's last row, or the fill value when empty.
func Last(v Value, ctx Context) (Value, error) {
	return array.Last(v, ctx)
}

// Unfirst replaces the first row of into with v.
func Unfirst(v, into Value, ctx Context) (Value, error) {
	return array.Unfirst(v, into, ctx)
}

// Unlast replaces the last row of into with v.
func Unlast(v, into Value, ctx Context) (Value, error) {
	return array.Unlast(v, into, ctx)
}

// Ordering

// Rise returns the permutation sorting the value's rows ascending.
func Rise(v Value, ctx Context) ([]int, error) {
	return array.Rise(v, ctx)
}

// Fall returns the permutation sorting the value's rows descending.
func Fall(v Value, ctx Context) ([]int, error) {
	return array.Fall(v, ctx)
}

// SortUp sorts the value's rows ascending in place.
func SortUp(v Value, ctx Context) error {
	return array.SortUp(v, ctx)
}

// SortDown sorts the value's rows descending in place.
func SortDown(v Value, ctx Context) error {
	return array.SortDown(v, ctx)
}

// Classify assigns each row the id of its distinct value in first-seen
// order.
func Classify(v Value, ctx Context) (Value, error) {
	return array.Classify(v, ctx)
}

// Deduplicate keeps only the first occurrence of each distinct row.
func Deduplicate(v Value) {
	array.Deduplicate(v)
}

// FirstMinIndex returns the index of the first minimal row.
func FirstMinIndex(v Value, ctx Context) (Value, error) {
	return array.FirstMinIndex(v, ctx)
}

// FirstMaxIndex returns the index of the first maximal row.
func FirstMaxIndex(v Value, ctx Context) (Value, error) {
	return array.FirstMaxIndex(v, ctx)
}

// LastMinIndex returns the index of the last minimal row.
func LastMinIndex(v Value, ctx Context) (Value, error) {
	return array.LastMinIndex(v, ctx)
}

// LastMaxIndex returns the index of the last maximal row.
func LastMaxIndex(v Value, ctx Context) (Value, error) {
	return array.LastMaxIndex(v, ctx)
}

// Encoding

// Bits expands natural numbers into their binary digits.
func Bits(v Value, ctx Context) (Value, error) {
	return array.Bits(v, ctx)
}

// InvBits collapses binary digits back into numbers.
func InvBits(v Value, ctx Context) (Value, error) {
	return array.InvBits(v, ctx)
}

// Where returns the indices of all nonzero elements.
func Where(v Value, ctx Context) (Value, error) {
	return array.Where(v, ctx)
}

// FirstWhere returns the index of the first nonzero element.
func FirstWhere(v Value, ctx Context) (Value, error) {
	return array.FirstWhere(v, ctx)
}

// InvWhere builds the smallest count array whose Where is v.
func InvWhere(v Value, ctx Context) (Value, error) {
	return array.InvWhere(v, ctx)
}

// Range returns all coordinates of the hyperrectangle described by v.
func Range(v Value, ctx Context) (Value, error) {
	return array.Range(v, ctx)
}

// Text

// ParseNum parses character data into numbers.
func ParseNum(v Value, ctx Context) (Value, error) {
	return array.ParseNum(v, ctx)
}

// InvParse formats numbers back into character data.
func InvParse(v Value, ctx Context) (Value, error) {
	return array.InvParse(v, ctx)
}

// UTF8 encodes a string value into its UTF-8 bytes.
func UTF8(v Value, ctx Context) (Value, error) {
	return array.UTF8(v, ctx)
}

// InvUTF8 decodes UTF-8 bytes back into a string value.
func InvUTF8(v Value, ctx Context) (Value, error) {
	return array.InvUTF8(v, ctx)
}
