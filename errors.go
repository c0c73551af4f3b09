// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEndOfBuffer is returned when the source ends before a value could be read.
	ErrUnexpectedEndOfBuffer = errors.New("tiffmeta: unexpected end of buffer")
	// ErrUnknownBuffer is returned when the source fails to seek or report its position.
	ErrUnknownBuffer = errors.New("tiffmeta: unknown buffer error")
	// ErrCannotOpenFile is returned when the named file could not be opened.
	ErrCannotOpenFile = errors.New("tiffmeta: cannot open file")

	// ErrBadByteOrder is returned when the header does not start with II or MM.
	ErrBadByteOrder = errors.New("tiffmeta: bad byte order")
	// ErrBadVersion is returned when the header version is neither 42 nor 43.
	ErrBadVersion = errors.New("tiffmeta: bad version")
	// ErrBadOffsetSize is returned when a BigTIFF header declares an offset size other than 8.
	ErrBadOffsetSize = errors.New("tiffmeta: bad offset size")
	// ErrBadReserved is returned when the reserved BigTIFF header field is not zero.
	ErrBadReserved = errors.New("tiffmeta: bad reserved field")

	// ErrUnknownKind is returned for an unrecognized tag value kind code.
	ErrUnknownKind = errors.New("tiffmeta: unknown tag kind")
	// ErrUnknownTagID is reserved. Unknown tag ids decode as private tags.
	ErrUnknownTagID = errors.New("tiffmeta: unknown tag id")
	// ErrIncompatibleKind is returned when a value cannot be coerced to the requested type.
	ErrIncompatibleKind = errors.New("tiffmeta: incompatible tag kind")
	// ErrTagNotFound is returned when a required tag is missing from a directory.
	ErrTagNotFound = errors.New("tiffmeta: tag not found")

	// ErrInvalidIndex is returned by ReadFrame for an out of range frame index.
	ErrInvalidIndex = errors.New("tiffmeta: invalid index")
	// ErrUnsupportedCompression is returned for a compression code outside the known schemes.
	ErrUnsupportedCompression = errors.New("tiffmeta: unsupported compression scheme")

	// ErrDirectoryCycle is returned when the directory chain points back to a visited directory.
	ErrDirectoryCycle = errors.New("tiffmeta: directory chain contains a cycle")
	// ErrTooManyDirectories is returned when the chain is longer than Options.LimitNumDirectories.
	ErrTooManyDirectories = errors.New("tiffmeta: too many directories")
	// ErrTagTooLarge is returned when a tag value is larger than Options.LimitTagSize.
	ErrTagTooLarge = errors.New("tiffmeta: tag value too large")

	// Internal error to signal that we should stop any further processing.
	errStop = errors.New("stop")
)

// Errors caused by malformed input.
var invalidFormatErrors = []error{
	ErrUnexpectedEndOfBuffer,
	ErrBadByteOrder,
	ErrBadVersion,
	ErrBadOffsetSize,
	ErrBadReserved,
	ErrUnknownKind,
	ErrDirectoryCycle,
	ErrTooManyDirectories,
	ErrTagTooLarge,
}

// InvalidFormatError is used when the source is not a valid TIFF or BigTIFF file.
type InvalidFormatError struct {
	Err error
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format: %v", e.Err)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// IsInvalidFormat reports whether err was caused by malformed input.
func IsInvalidFormat(err error) bool {
	var e *InvalidFormatError
	return errors.As(err, &e)
}

func newInvalidFormatError(err error) error {
	if IsInvalidFormat(err) {
		return err
	}
	return &InvalidFormatError{Err: err}
}

func isInvalidFormatErrorCandidate(err error) bool {
	for _, e := range invalidFormatErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
