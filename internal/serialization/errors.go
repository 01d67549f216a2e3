package serialization

import "github.com/pkg/errors"

// Sentinel errors for .lat file handling.
var (
	// ErrInvalidMagic means the file does not start with the LATT magic.
	ErrInvalidMagic = errors.New("serialization: not a .lat file")

	// ErrUnsupportedVersion means the file was written by a newer format
	// revision than this reader understands.
	ErrUnsupportedVersion = errors.New("serialization: unsupported format version")

	// ErrChecksumMismatch means the data section does not match the
	// checksum stored in the header.
	ErrChecksumMismatch = errors.New("serialization: checksum mismatch")

	// ErrUnknownKind means a value's element kind string is not one the
	// format defines.
	ErrUnknownKind = errors.New("serialization: unknown element kind")

	// ErrBoxedValue means a boxed value was passed to the writer. Boxes
	// are not serializable.
	ErrBoxedValue = errors.New("serialization: boxed values cannot be serialized")

	// ErrTruncated means the file ends before the data a header entry
	// points at.
	ErrTruncated = errors.New("serialization: file truncated")
)
