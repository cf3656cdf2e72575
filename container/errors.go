package container

import (
	"errors"
)

var (
	// ErrBadMagic is returned when the input does not start with the
	// container magic bytes.
	ErrBadMagic = errors.New("container: not a huffpack file")

	// ErrUnsupportedVersion is returned for a container written by an
	// incompatible version of this package.
	ErrUnsupportedVersion = errors.New("container: unsupported version")

	// ErrTooLarge is returned when a header declares a section larger than
	// this package is willing to read, or larger than the header allows.
	ErrTooLarge = errors.New("container: declared size out of range")

	// ErrChecksumMismatch is returned when the decompressed bytes do not
	// hash to the checksum recorded at compression time.
	ErrChecksumMismatch = errors.New("container: checksum mismatch")
)
