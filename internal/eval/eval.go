// Package eval provides the execution context the value engine runs
// against: error construction and the fill-value scopes that give
// otherwise-failing operations a default result.
package eval

import (
	"math"

	"github.com/pkg/errors"

	"github.com/lattice-lang/lattice/internal/array"
)

// Error is an evaluation error. Errors produced because a fill value was
// needed but not set carry the fill marker.
type Error struct {
	err  error
	fill bool
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

// Context holds the evaluation state the value engine consults. Fill
// values are scoped per element kind; an unset kind reports an error and
// the operation decides whether that is fatal.
type Context struct {
	fillNum     *float64
	fillComplex *complex128
	fillChar    *rune
	fillBox     *array.Boxed
}

// New returns a context with no fills set.
func New() *Context {
	return &Context{}
}

// SetFillNum scopes a numeric fill value. A nil pointer clears it.
func (c *Context) SetFillNum(n *float64) { c.fillNum = n }

// SetFillComplex scopes a complex fill value.
func (c *Context) SetFillComplex(v *complex128) { c.fillComplex = v }

// SetFillChar scopes a character fill value.
func (c *Context) SetFillChar(r *rune) { c.fillChar = r }

// SetFillBox scopes a boxed fill value.
func (c *Context) SetFillBox(b *array.Boxed) { c.fillBox = b }

// Error builds an evaluation error with a formatted message.
func (c *Context) Error(format string, args ...any) error {
	return &Error{err: errors.Errorf(format, args...)}
}

// MarkFill marks err as a fill failure.
func (c *Context) MarkFill(err error) error {
	if e, ok := err.(*Error); ok {
		return &Error{err: e.err, fill: true}
	}
	return &Error{err: err, fill: true}
}

// IsFillError reports whether err is a fill failure.
func (c *Context) IsFillError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.fill
}

// FillNum returns the scoped numeric fill.
func (c *Context) FillNum() (float64, error) {
	if c.fillNum == nil {
		return 0, c.MarkFill(c.Error("no number fill set"))
	}
	return *c.fillNum, nil
}

// FillByte returns the numeric fill when it fits in a byte.
func (c *Context) FillByte() (byte, error) {
	n, err := c.FillNum()
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) || n < 0 || n > 255 {
		return 0, c.MarkFill(c.Error("fill value %v is not a byte", n))
	}
	return byte(n), nil
}

// FillComplex returns the scoped complex fill, widening the numeric fill
// when no complex fill is set.
func (c *Context) FillComplex() (complex128, error) {
	if c.fillComplex != nil {
		return *c.fillComplex, nil
	}
	if c.fillNum != nil {
		return complex(*c.fillNum, 0), nil
	}
	return 0, c.MarkFill(c.Error("no complex fill set"))
}

// FillChar returns the scoped character fill.
func (c *Context) FillChar() (rune, error) {
	if c.fillChar == nil {
		return 0, c.MarkFill(c.Error("no character fill set"))
	}
	return *c.fillChar, nil
}

// FillBox returns the scoped box fill.
func (c *Context) FillBox() (array.Boxed, error) {
	if c.fillBox == nil {
		return array.Boxed{}, c.MarkFill(c.Error("no box fill set"))
	}
	return *c.fillBox, nil
}

var _ array.Context = (*Context)(nil)
