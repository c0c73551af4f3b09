// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/bep/tiffmeta"
)

func FuzzOpen(f *testing.F) {
	for _, tf := range []tiffmeta.TestFile{
		{Directories: [][]tiffmeta.TestEntry{frame(100, 80)}},
		{Order: binary.BigEndian, Directories: [][]tiffmeta.TestEntry{
			frame(10, 10, tiffmeta.NewTestEntryASCII(uint16(tiffmeta.TagArtist), "artist")),
			frame(20, 20, tiffmeta.NewTestEntry(uint16(tiffmeta.TagXResolution), tiffmeta.KindRational, [2]uint32{72, 1})),
		}},
		{Big: true, Directories: [][]tiffmeta.TestEntry{
			frame(1, 2, tiffmeta.NewTestEntry(0xc000, tiffmeta.KindLong8, uint64(1), 2, 3)),
		}},
	} {
		b, _ := tf.Bytes()
		f.Add(b)
	}

	f.Fuzz(func(t *testing.T, b []byte) {
		fuzzOpenBytes(t, b)
	})
}

func fuzzOpenBytes(t *testing.T, b []byte) {
	f, err := tiffmeta.Open(tiffmeta.Options{
		R:                   bytes.NewReader(b),
		DecodeTags:          true,
		LimitNumDirectories: 1000,
		LimitTagSize:        1 << 16,
	})
	if err != nil {
		if !tiffmeta.IsInvalidFormat(err) {
			t.Fatalf("unknown error in Open: %v %T", err, err)
		}
		return
	}

	for i := 0; i < f.FrameCount(); i++ {
		d, err := f.ReadFrame(i)
		if err != nil {
			t.Fatalf("ReadFrame(%d) failed after a successful Open: %v", i, err)
		}
		if len(d.Tags) != len(f.Directories[i].Tags) {
			t.Fatalf("ReadFrame(%d): got %d tags, want %d", i, len(d.Tags), len(f.Directories[i].Tags))
		}
		for _, fn := range []func() error{
			func() error { _, err := d.Width(); return err },
			func() error { _, err := d.Height(); return err },
			func() error { _, err := d.Samples(); return err },
			func() error { _, err := d.BitsPerSample(); return err },
			func() error { _, err := d.Compression(); return err },
		} {
			if err := fn(); err != nil && !isAccessorError(err) {
				t.Fatalf("unexpected accessor error: %v", err)
			}
		}
		for _, tag := range d.Tags {
			_ = tag.String()
			_, _ = tag.Value.Float64s()
		}
	}
}

func isAccessorError(err error) bool {
	return errors.Is(err, tiffmeta.ErrTagNotFound) ||
		errors.Is(err, tiffmeta.ErrIncompatibleKind) ||
		errors.Is(err, tiffmeta.ErrUnsupportedCompression)
}
