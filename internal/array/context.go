package array

// Context is the execution-context capability consumed by the engine. It
// supplies error construction and per-kind fill values; the engine never
// performs other I/O through it.
type Context interface {
	// Error builds an error value with a formatted message.
	Error(format string, args ...any) error
	// MarkFill decorates an error as a fill failure so callers can
	// recognize "no fill was available" distinctly from ordinary errors.
	MarkFill(err error) error
	// IsFillError reports whether err was marked by MarkFill.
	IsFillError(err error) bool

	// Fill resolution, queried per element kind. Each returns an error
	// when no fill value is configured for that kind.
	FillNum() (float64, error)
	FillByte() (byte, error)
	FillComplex() (complex128, error)
	FillChar() (rune, error)
	FillBox() (Boxed, error)
}

// FillOf resolves the context's fill value for element kind T.
func FillOf[T Elem](ctx Context) (T, error) {
	var zero T
	switch any(zero).(type) {
	case float64:
		v, err := ctx.FillNum()
		return any(v).(T), err
	case byte:
		v, err := ctx.FillByte()
		return any(v).(T), err
	case complex128:
		v, err := ctx.FillComplex()
		return any(v).(T), err
	case rune:
		v, err := ctx.FillChar()
		return any(v).(T), err
	default:
		v, err := ctx.FillBox()
		return any(v).(T), err
	}
}
