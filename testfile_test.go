// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"bytes"
	"encoding/binary"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// CmpValueOpts compares decoded tag values, which have unexported fields and may hold NaN.
var CmpValueOpts = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateNaNs(),
}

// TestEntry is a tag record to be written by TestFile.
type TestEntry struct {
	Code  uint16
	Kind  Kind
	Count uint64
	enc   func(bo binary.ByteOrder) []byte
}

// NewTestEntry creates an entry of the given kind holding vals.
// Rationals are passed as [2]uint32 or [2]int32.
func NewTestEntry[T any](code uint16, kind Kind, vals ...T) TestEntry {
	return TestEntry{
		Code:  code,
		Kind:  kind,
		Count: uint64(len(vals)),
		enc: func(bo binary.ByteOrder) []byte {
			var buf bytes.Buffer
			if err := binary.Write(&buf, bo, vals); err != nil {
				panic(err)
			}
			return buf.Bytes()
		},
	}
}

// NewTestEntryASCII creates a NUL terminated ASCII entry.
func NewTestEntryASCII(code uint16, s string) TestEntry {
	return NewTestEntry(code, KindASCII, []byte(s+"\x00")...)
}

// TestFile writes synthetic TIFF files.
type TestFile struct {
	Order       binary.ByteOrder
	Big         bool
	Directories [][]TestEntry
}

// TestLayout describes where things ended up in the bytes written by TestFile.
type TestLayout struct {
	// Directories holds the offset of each directory's tag count field.
	Directories []uint64
	// NextFields holds the offset of each directory's next directory field.
	NextFields []uint64
	// Values holds, per directory and entry, the offset of the value bytes.
	Values [][]uint64
}

func (f TestFile) offsetSize() uint64 {
	if f.Big {
		return 8
	}
	return 4
}

// Bytes lays out the header, then each directory followed by its out of line values.
func (f TestFile) Bytes() ([]byte, TestLayout) {
	var (
		bo         = f.Order
		big        = f.Big
		offsetSize = f.offsetSize()
		countSize  = uint64(2)
		entrySize  = uint64(12)
		headerSize = uint64(8)
		layout     TestLayout
	)
	if bo == nil {
		bo = binary.LittleEndian
	}
	if big {
		countSize, entrySize, headerSize = 8, 20, 16
	}

	var out []byte
	putUint := func(b []byte, v uint64, size uint64) {
		switch size {
		case 2:
			bo.PutUint16(b, uint16(v))
		case 4:
			bo.PutUint32(b, uint32(v))
		default:
			bo.PutUint64(b, v)
		}
	}
	grow := func(n uint64) uint64 {
		pos := uint64(len(out))
		out = append(out, make([]byte, n)...)
		return pos
	}

	grow(headerSize)
	if bo == binary.BigEndian {
		copy(out, "MM")
	} else {
		copy(out, "II")
	}
	if big {
		putUint(out[2:], 43, 2)
		putUint(out[4:], 8, 2)
		putUint(out[6:], 0, 2)
	} else {
		putUint(out[2:], 42, 2)
	}

	prevNext := uint64(4)
	if big {
		prevNext = 8
	}

	for _, entries := range f.Directories {
		if len(out)%2 != 0 {
			grow(1)
		}
		dirPos := grow(countSize + uint64(len(entries))*entrySize + offsetSize)
		putUint(out[prevNext:], dirPos, offsetSize)
		layout.Directories = append(layout.Directories, dirPos)

		putUint(out[dirPos:], uint64(len(entries)), countSize)
		var values []uint64
		for i, e := range entries {
			rec := dirPos + countSize + uint64(i)*entrySize
			putUint(out[rec:], uint64(e.Code), 2)
			putUint(out[rec+2:], uint64(e.Kind), 2)
			putUint(out[rec+4:], e.Count, offsetSize)
			field := rec + 4 + offsetSize

			data := e.enc(bo)
			if uint64(len(data)) <= offsetSize {
				copy(out[field:], data)
				values = append(values, field)
				continue
			}
			if len(out)%2 != 0 {
				grow(1)
			}
			valPos := grow(uint64(len(data)))
			copy(out[valPos:], data)
			putUint(out[field:], valPos, offsetSize)
			values = append(values, valPos)
		}
		layout.Values = append(layout.Values, values)

		prevNext = dirPos + countSize + uint64(len(entries))*entrySize
		layout.NextFields = append(layout.NextFields, prevNext)
	}

	return out, layout
}

// PutOffset overwrites the offset sized field at pos in b.
func (f TestFile) PutOffset(b []byte, pos, v uint64) {
	bo := f.Order
	if bo == nil {
		bo = binary.LittleEndian
	}
	if f.Big {
		bo.PutUint64(b[pos:], v)
		return
	}
	bo.PutUint32(b[pos:], uint32(v))
}
