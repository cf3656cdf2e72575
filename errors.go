package huffpack

import (
	"errors"
)

var (
	// ErrMissingCode is returned when the input contains a Symbol that has
	// no Code in the CodeTable, i.e. the table was built for other data.
	ErrMissingCode = errors.New("huffpack: symbol has no code")

	// ErrTruncatedStream is returned when the packed bits run out before
	// the expected number of symbols has been decoded.
	ErrTruncatedStream = errors.New("huffpack: packed stream ended early")

	// ErrCorruptStream is returned when the packed bits contain a run that
	// is longer than every Code without matching any of them.
	ErrCorruptStream = errors.New("huffpack: packed stream contains an unknown code")

	// ErrInvalidCodeTable is returned when a CodeTable is not prefix-free.
	ErrInvalidCodeTable = errors.New("huffpack: invalid code table")
)
