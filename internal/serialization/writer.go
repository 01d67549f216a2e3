package serialization

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/lattice-lang/lattice/internal/array"
)

// engineVersion is stamped into headers by the writer.
const engineVersion = "v0.1.0-dev"

// Save writes the named values to path in .lat format. Names are written
// in the given order; Load returns them keyed by name.
func Save(path string, names []string, values []array.Value) error {
	if len(names) != len(values) {
		return errors.Errorf("serialization: %d names for %d values", len(names), len(values))
	}

	header := Header{
		FormatVersion: FormatVersion,
		EngineVersion: engineVersion,
		CreatedAt:     time.Now().UTC(),
	}
	var data []byte
	for i, v := range values {
		kind, encoded, err := encodeValue(v)
		if err != nil {
			return errors.Wrapf(err, "value %q", names[i])
		}
		offset := alignUp(int64(len(data)), DataAlignment)
		data = append(data, make([]byte, offset-int64(len(data)))...)
		data = append(data, encoded...)
		header.Values = append(header.Values, ValueMeta{
			Name:   names[i],
			Kind:   kind,
			Shape:  v.Shape().Clone(),
			Offset: offset,
			Size:   int64(len(encoded)),
		})
	}

	headerJSON, err := json.Marshal(&header)
	if err != nil {
		return errors.Wrap(err, "serialization: encoding header")
	}

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed, MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:], FormatVersion)
	binary.LittleEndian.PutUint32(fixed[8:], uint32(len(headerJSON)))
	sum := ComputeChecksum(data)
	copy(fixed[ChecksumOffset:], sum[:])

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "serialization: creating file")
	}
	defer f.Close()

	for _, chunk := range [][]byte{fixed, headerJSON, pad(len(fixed) + len(headerJSON)), data} {
		if _, err := f.Write(chunk); err != nil {
			return errors.Wrap(err, "serialization: writing file")
		}
	}
	return f.Sync()
}

// pad returns the zero bytes needed to align the data section start.
func pad(written int) []byte {
	aligned := alignUp(int64(written), DataAlignment)
	return make([]byte, aligned-int64(written))
}

// encodeValue flattens a value's elements into little-endian bytes.
func encodeValue(v array.Value) (string, []byte, error) {
	switch a := v.(type) {
	case *array.Array[float64]:
		out := make([]byte, 0, a.ElementCount()*8)
		for _, n := range a.Data() {
			out = binary.LittleEndian.AppendUint64(out, math.Float64bits(n))
		}
		return KindNumber, out, nil
	case *array.Array[byte]:
		return KindByte, append([]byte(nil), a.Data()...), nil
	case *array.Array[complex128]:
		out := make([]byte, 0, a.ElementCount()*16)
		for _, c := range a.Data() {
			out = binary.LittleEndian.AppendUint64(out, math.Float64bits(real(c)))
			out = binary.LittleEndian.AppendUint64(out, math.Float64bits(imag(c)))
		}
		return KindComplex, out, nil
	case *array.Array[rune]:
		out := make([]byte, 0, a.ElementCount()*4)
		for _, r := range a.Data() {
			out = binary.LittleEndian.AppendUint32(out, uint32(r))
		}
		return KindCharacter, out, nil
	default:
		return "", nil, ErrBoxedValue
	}
}
