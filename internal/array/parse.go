package array

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lattice-lang/lattice/internal/cowslice"
)

var numReplacer = strings.NewReplacer(
	"¯", "-",
	"`", "-",
	"∞", "inf",
)

// parseScalarNum parses one textual number, honoring the high-minus and
// constant glyphs.
func parseScalarNum(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	switch strings.TrimPrefix(trimmed, "¯") {
	case "η":
		return signed(trimmed, math.Pi/2), nil
	case "π":
		return signed(trimmed, math.Pi), nil
	case "τ":
		return signed(trimmed, 2*math.Pi), nil
	}
	return strconv.ParseFloat(numReplacer.Replace(trimmed), 64)
}

func signed(s string, v float64) float64 {
	if strings.HasPrefix(s, "¯") {
		return -v
	}
	return v
}

// ParseNum parses a character value into numbers. A string yields a
// scalar number; a list of boxed strings or a character matrix yields a
// number per row.
func ParseNum(v Value, ctx Context) (Value, error) {
	switch a := v.(type) {
	case *Array[rune]:
		if a.Rank() <= 1 {
			s := string(a.Data())
			n, err := parseScalarNum(s)
			if err != nil {
				return nil, ctx.Error("cannot parse into number: %s", s)
			}
			return Scalar(n), nil
		}
		rows := make([]*Array[float64], a.RowCount())
		for i := range rows {
			row, err := ParseNum(rowValue(a, i), ctx)
			if err != nil {
				return nil, err
			}
			rows[i] = row.(*Array[float64])
		}
		return stackRows(rows, ctx)
	case *Array[Boxed]:
		if a.Rank() == 0 {
			return ParseNum(a.Data()[0].Value, ctx)
		}
		rows := make([]*Array[float64], a.RowCount())
		for i, b := range a.Data() {
			row, err := ParseNum(b.Value, ctx)
			if err != nil {
				return nil, err
			}
			rows[i] = row.(*Array[float64])
		}
		return stackRows(rows, ctx)
	default:
		return nil, ctx.Error("cannot parse %s array", v.TypeName())
	}
}

// fmtNum formats a number the way the language prints it, with the
// high-minus glyph for negatives.
func fmtNum(n float64) string {
	if math.IsInf(n, 1) {
		return "∞"
	}
	if math.IsInf(n, -1) {
		return "¯∞"
	}
	s := strconv.FormatFloat(n, 'g', -1, 64)
	return strings.Replace(s, "-", "¯", 1)
}

func fmtComplex(c complex128) string {
	re, im := real(c), imag(c)
	if im == 0 {
		return fmtNum(re)
	}
	return fmtNum(re) + "r" + fmtNum(im)
}

// InvParse formats a value back into characters, inverting ParseNum: a
// scalar becomes a string and a list becomes a same-shaped array of
// boxed strings.
func InvParse(v Value, ctx Context) (Value, error) {
	if b, ok := v.(*Array[Boxed]); ok && b.Rank() == 0 {
		return InvParse(b.Data()[0].Value, ctx)
	}
	if v.Rank() == 0 {
		switch a := v.(type) {
		case *Array[float64]:
			return StringValue(fmtNum(a.Data()[0])), nil
		case *Array[byte]:
			return StringValue(fmtNum(float64(a.Data()[0]))), nil
		case *Array[complex128]:
			return StringValue(fmtComplex(a.Data()[0])), nil
		case *Array[rune]:
			return StringValue(string(a.Data()[0])), nil
		}
	}
	format := func(formatted []Boxed) Value {
		sh := v.Shape().Clone()
		return New(sh, cowslice.FromSlice(formatted))
	}
	switch a := v.(type) {
	case *Array[float64]:
		boxes := make([]Boxed, a.ElementCount())
		for i, n := range a.Data() {
			boxes[i] = Boxed{Value: StringValue(fmtNum(n))}
		}
		return format(boxes), nil
	case *Array[byte]:
		boxes := make([]Boxed, a.ElementCount())
		for i, n := range a.Data() {
			boxes[i] = Boxed{Value: StringValue(fmtNum(float64(n)))}
		}
		return format(boxes), nil
	case *Array[complex128]:
		boxes := make([]Boxed, a.ElementCount())
		for i, c := range a.Data() {
			boxes[i] = Boxed{Value: StringValue(fmtComplex(c))}
		}
		return format(boxes), nil
	default:
		return nil, ctx.Error("cannot unparse %s array", v.TypeName())
	}
}

// UTF8 encodes a string value into its UTF-8 bytes.
func UTF8(v Value, ctx Context) (Value, error) {
	s, err := AsString(v, ctx, "argument to utf8 must be a string")
	if err != nil {
		return nil, err
	}
	return FromSlice([]byte(s)), nil
}

// InvUTF8 decodes UTF-8 bytes back into a string value.
func InvUTF8(v Value, ctx Context) (Value, error) {
	bs, err := AsBytes(v, ctx, "argument to inverse utf8 must be a list of bytes")
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(bs) {
		return nil, ctx.Error("invalid UTF-8 byte sequence")
	}
	return StringValue(string(bs)), nil
}
