// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"encoding/binary"
	"fmt"
)

const (
	byteOrderBigEndian    = 0x4d4d
	byteOrderLittleEndian = 0x4949

	versionClassic = 42
	versionBig     = 43
)

// ByteOrder is the byte order of a TIFF file.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (b ByteOrder) String() string {
	if b == BigEndian {
		return "BigEndian"
	}
	return "LittleEndian"
}

// Binary returns the encoding/binary byte order for b.
func (b ByteOrder) Binary() binary.ByteOrder {
	if b == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Variant is the TIFF format variant.
type Variant uint8

const (
	// Classic is TIFF 6.0 with 32-bit offsets.
	Classic Variant = iota
	// Big is BigTIFF with 64-bit offsets.
	Big
)

func (v Variant) String() string {
	if v == Big {
		return "Big"
	}
	return "Classic"
}

// Header is the file header.
type Header struct {
	ByteOrder ByteOrder
	Variant   Variant
	// FirstDirectory is the file offset of the first image directory.
	FirstDirectory uint64
}

// IsBig reports whether this is a BigTIFF file.
func (h Header) IsBig() bool {
	return h.Variant == Big
}

// OffsetSize returns the size in bytes of offsets and of the inline value field.
func (h Header) OffsetSize() uint64 {
	if h.IsBig() {
		return 8
	}
	return 4
}

// EntrySize returns the size in bytes of one tag record in a directory.
func (h Header) EntrySize() uint64 {
	if h.IsBig() {
		return 20
	}
	return 12
}

// Size returns the size in bytes of the header itself.
func (h Header) Size() uint64 {
	if h.IsBig() {
		return 16
	}
	return 8
}

// decodeHeader reads the header at the current position, which must be the start of the file.
// On success the byte order of e is set to the one declared in the header.
func decodeHeader(e *streamReader) Header {
	var h Header

	// The magic reads the same in both byte orders.
	e.byteOrder = binary.LittleEndian
	switch e.read2() {
	case byteOrderLittleEndian:
		h.ByteOrder = LittleEndian
	case byteOrderBigEndian:
		h.ByteOrder = BigEndian
	default:
		e.stop(ErrBadByteOrder)
	}
	e.byteOrder = h.ByteOrder.Binary()

	switch version := e.read2(); version {
	case versionClassic:
		h.Variant = Classic
		h.FirstDirectory = uint64(e.read4())
	case versionBig:
		h.Variant = Big
		if offsetSize := e.read2(); offsetSize != 8 {
			e.stop(fmt.Errorf("%w: %d", ErrBadOffsetSize, offsetSize))
		}
		if reserved := e.read2(); reserved != 0 {
			e.stop(fmt.Errorf("%w: %d", ErrBadReserved, reserved))
		}
		h.FirstDirectory = e.read8()
	default:
		e.stop(fmt.Errorf("%w: %d", ErrBadVersion, version))
	}

	return h
}
