// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"fmt"
)

// CompressionScheme is the value of the Compression tag.
type CompressionScheme uint16

const (
	NoCompression CompressionScheme = 1
	LZW           CompressionScheme = 5
	AdobeDeflate  CompressionScheme = 8
	PackBits      CompressionScheme = 32773
	Deflate       CompressionScheme = 32946
)

var compressionSchemes = map[CompressionScheme]string{
	NoCompression: "NoCompression",
	LZW:           "LZW",
	AdobeDeflate:  "AdobeDeflate",
	PackBits:      "PackBits",
	Deflate:       "Deflate",
}

func (c CompressionScheme) String() string {
	if s, ok := compressionSchemes[c]; ok {
		return s
	}
	return fmt.Sprintf("CompressionScheme(%d)", uint16(c))
}

// Tag is a tag in a directory.
type Tag struct {
	ID    TagID
	Value Value
}

func (t Tag) String() string {
	return fmt.Sprintf("%s: %s", t.ID, t.Value)
}

// Directory is an image file directory (IFD).
type Directory struct {
	// Position is the file offset of the tag count field.
	Position uint64
	// TagCount is the number of tags declared in the file.
	TagCount uint64
	// Tags in on-disk order. Empty if the directory was decoded without tags.
	Tags []Tag
	// Next is the file offset of the next directory, 0 if this is the last one.
	Next uint64
}

// Lookup returns the value of the tag with the given id.
func (d Directory) Lookup(id TagID) (Value, bool) {
	for _, t := range d.Tags {
		if t.ID == id {
			return t.Value, true
		}
	}
	return nil, false
}

func (d Directory) require(id TagID) (Value, error) {
	v, ok := d.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTagNotFound, id)
	}
	return v, nil
}

// Width returns the ImageWidth tag.
func (d Directory) Width() (uint64, error) {
	v, err := d.require(TagImageWidth.ID())
	if err != nil {
		return 0, err
	}
	return v.Uint64()
}

// Height returns the ImageLength tag.
func (d Directory) Height() (uint64, error) {
	v, err := d.require(TagImageLength.ID())
	if err != nil {
		return 0, err
	}
	return v.Uint64()
}

// Samples returns the SamplesPerPixel tag, 1 if not set.
func (d Directory) Samples() (uint64, error) {
	v, ok := d.Lookup(TagSamplesPerPixel.ID())
	if !ok {
		return 1, nil
	}
	return v.Uint64()
}

// BitsPerSample returns the BitsPerSample tag.
// If not set, it returns 1 for each sample.
func (d Directory) BitsPerSample() ([]uint64, error) {
	if v, ok := d.Lookup(TagBitsPerSample.ID()); ok {
		return v.Uint64s()
	}
	samples, err := d.Samples()
	if err != nil {
		return nil, err
	}
	if samples > 0xffff {
		// SamplesPerPixel is a SHORT.
		return nil, fmt.Errorf("%w: %d samples per pixel", ErrIncompatibleKind, samples)
	}
	bpp := make([]uint64, samples)
	for i := range bpp {
		bpp[i] = 1
	}
	return bpp, nil
}

// Compression returns the Compression tag, NoCompression if not set.
func (d Directory) Compression() (CompressionScheme, error) {
	v, ok := d.Lookup(TagCompression.ID())
	if !ok {
		return NoCompression, nil
	}
	n, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	c := CompressionScheme(n)
	if _, found := compressionSchemes[c]; !found || uint64(c) != n {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedCompression, n)
	}
	return c, nil
}

// IsTiled reports whether the image data is stored in tiles rather than strips.
func (d Directory) IsTiled() bool {
	_, ok := d.Lookup(TagTileWidth.ID())
	return ok
}

// Text returns the ASCII tag with the given id as a string.
func (d Directory) Text(id TagID) (string, error) {
	v, err := d.require(id)
	if err != nil {
		return "", err
	}
	return Text(v)
}

// Strings returns the ASCII tag with the given id split on NUL.
func (d Directory) Strings(id TagID) ([]string, error) {
	v, err := d.require(id)
	if err != nil {
		return nil, err
	}
	return Strings(v)
}

type decoder struct {
	*streamReader
	header Header
	opts   Options
}

func newDecoder(s *streamReader, h Header, opts Options) *decoder {
	s.byteOrder = h.ByteOrder.Binary()
	return &decoder{streamReader: s, header: h, opts: opts}
}

// decodeDirectory decodes the directory at the current position.
// If skipTags is set, the tag records are skipped over, leaving Tags empty.
// Both modes end at the same position, right after the next directory offset.
func (e *decoder) decodeDirectory(skipTags bool) Directory {
	var d Directory
	d.Position = e.pos()

	if e.header.IsBig() {
		d.TagCount = e.read8()
	} else {
		d.TagCount = uint64(e.read2())
	}

	if d.TagCount == 0 {
		e.opts.Warnf("directory at %d has no tags", d.Position)
	}

	if skipTags {
		if d.TagCount > (1<<63)/e.header.EntrySize() {
			e.stop(fmt.Errorf("%w: directory at %d declares %d tags", ErrUnexpectedEndOfBuffer, d.Position, d.TagCount))
		}
		e.skip(d.TagCount * e.header.EntrySize())
	} else {
		for i := uint64(0); i < d.TagCount; i++ {
			d.Tags = append(d.Tags, e.decodeTag())
		}
	}

	d.Next = e.readOffset(e.header.IsBig())

	return d
}

// A tag is represented in 12 (classic) or 20 (big) bytes:
//   - 2 bytes for the tag ID
//   - 2 bytes for the data kind
//   - 4 or 8 bytes for the number of values of the specified kind
//   - 4 or 8 bytes for the value itself, if it fits, otherwise for a pointer to another location where the data may be found.
func (e *decoder) decodeTag() Tag {
	id := NewTagID(e.read2())
	v, err := e.decodeValue()
	if err != nil {
		e.stop(fmt.Errorf("tag %s: %w", id, err))
	}
	if n, ok := v.(*Numbers[uint8]); ok && n.Kind() == KindASCII && n.Len() > 0 && n.Values[n.Len()-1] != 0 {
		e.opts.Warnf("ASCII value of tag %s is not NUL terminated", id)
	}
	return Tag{ID: id, Value: v}
}

func (e *decoder) decodeValue() (Value, error) {
	big := e.header.IsBig()
	kind := Kind(e.read2())
	count := e.readOffset(big)

	size := kind.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint16(kind))
	}
	if count > uint64(e.opts.LimitTagSize)/size {
		return nil, fmt.Errorf("%w: %d %s values", ErrTagTooLarge, count, kind)
	}
	valLen := count * size

	pos := e.pos()
	offsetSize := e.header.OffsetSize()

	if valLen > offsetSize {
		e.seek(e.readOffset(big), ErrUnexpectedEndOfBuffer)
	}

	b := e.readBytes(int(valLen))

	// Continue right after the value/offset field.
	e.seek(pos+offsetSize, ErrUnknownBuffer)

	return newValue(kind, b, e.byteOrder)
}
