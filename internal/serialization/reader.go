package serialization

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/lattice-lang/lattice/internal/array"
	"github.com/lattice-lang/lattice/internal/cowslice"
)

// Load reads every value from a .lat file, keyed by name. The data
// section checksum is verified before any value is decoded.
func Load(path string) (map[string]array.Value, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "serialization: reading file")
	}
	if len(raw) < FixedHeaderSize || string(raw[:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}
	version := binary.LittleEndian.Uint32(raw[4:])
	if version > FormatVersion {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "version %d", version)
	}
	headerLen := int64(binary.LittleEndian.Uint32(raw[8:]))
	if int64(len(raw)) < FixedHeaderSize+headerLen {
		return nil, ErrTruncated
	}
	var stored [32]byte
	copy(stored[:], raw[ChecksumOffset:ChecksumOffset+ChecksumSize])

	var header Header
	if err := json.Unmarshal(raw[FixedHeaderSize:FixedHeaderSize+headerLen], &header); err != nil {
		return nil, errors.Wrap(err, "serialization: decoding header")
	}

	dataStart := alignUp(FixedHeaderSize+headerLen, DataAlignment)
	if dataStart > int64(len(raw)) {
		return nil, ErrTruncated
	}
	data := raw[dataStart:]
	if err := ValidateChecksum(ComputeChecksum(data), stored); err != nil {
		return nil, err
	}

	values := make(map[string]array.Value, len(header.Values))
	for _, meta := range header.Values {
		v, err := decodeValue(meta, data)
		if err != nil {
			return nil, errors.Wrapf(err, "value %q", meta.Name)
		}
		values[meta.Name] = v
	}
	return values, nil
}

// decodeValue rebuilds one value from its metadata and the data section.
func decodeValue(meta ValueMeta, data []byte) (array.Value, error) {
	width, ok := elemSize(meta.Kind)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "%q", meta.Kind)
	}
	if meta.Offset < 0 || meta.Offset+meta.Size > int64(len(data)) {
		return nil, ErrTruncated
	}
	elems := meta.Shape.Elements()
	if int64(elems*width) != meta.Size {
		return nil, errors.Errorf("shape %v wants %d bytes, header says %d",
			&meta.Shape, elems*width, meta.Size)
	}
	src := data[meta.Offset : meta.Offset+meta.Size]

	switch meta.Kind {
	case KindNumber:
		out := make([]float64, elems)
		for i := range out {
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(src[i*8:]))
		}
		return array.New(meta.Shape.Clone(), cowslice.FromSlice(out)), nil
	case KindByte:
		return array.New(meta.Shape.Clone(), cowslice.FromSlice(append([]byte(nil), src...))), nil
	case KindComplex:
		out := make([]complex128, elems)
		for i := range out {
			re := math.Float64frombits(binary.LittleEndian.Uint64(src[i*16:]))
			im := math.Float64frombits(binary.LittleEndian.Uint64(src[i*16+8:]))
			out[i] = complex(re, im)
		}
		return array.New(meta.Shape.Clone(), cowslice.FromSlice(out)), nil
	default: // KindCharacter, elemSize already filtered the rest.
		out := make([]rune, elems)
		for i := range out {
			out[i] = rune(binary.LittleEndian.Uint32(src[i*4:]))
		}
		return array.New(meta.Shape.Clone(), cowslice.FromSlice(out)), nil
	}
}
