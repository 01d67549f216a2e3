// Package serialization implements the .lat binary format for storing
// named lattice values on disk.
//
// A .lat file is a fixed 64-byte header, a JSON value index, then the
// raw element data of every value, 64-byte aligned. Element data is
// little-endian. A SHA-256 checksum of the data section lives in the
// fixed header so readers can detect corruption before decoding.
package serialization

import (
	"time"

	"github.com/lattice-lang/lattice/internal/shape"
)

// Format constants.
const (
	MagicBytes      = "LATT"
	FormatVersion   = 1
	DataAlignment   = 64   // Align value data to 64 bytes.
	FixedHeaderSize = 64   // Fixed header size (0x40 bytes).
	ChecksumSize    = 32   // SHA-256 checksum size.
	ChecksumOffset  = 0x20 // Checksum offset in the fixed header.
)

// Element kind string constants for serialization.
const (
	KindNumber    = "number"
	KindByte      = "byte"
	KindComplex   = "complex"
	KindCharacter = "character"
)

// Header is the JSON value index in a .lat file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	EngineVersion string            `json:"engine_version"`
	CreatedAt     time.Time         `json:"created_at"`
	Values        []ValueMeta       `json:"values"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// ValueMeta describes one value in the data section.
type ValueMeta struct {
	Name   string      `json:"name"`
	Kind   string      `json:"kind"`
	Shape  shape.Shape `json:"shape"`
	Offset int64       `json:"offset"` // Bytes from the start of the data section.
	Size   int64       `json:"size"`   // Size in bytes.
}

// elemSize reports the byte width of one element of the given kind.
func elemSize(kind string) (int, bool) {
	switch kind {
	case KindNumber:
		return 8, true
	case KindByte:
		return 1, true
	case KindComplex:
		return 16, true
	case KindCharacter:
		return 4, true
	default:
		return 0, false
	}
}

// alignUp rounds n up to the next multiple of align.
func alignUp(n int64, align int64) int64 {
	return (n + align - 1) / align * align
}
