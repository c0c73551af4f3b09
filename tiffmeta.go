// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package tiffmeta reads the structure of TIFF and BigTIFF files:
// the header, the chain of image file directories (IFDs) and their typed tag values.
// Pixel data is never read.
package tiffmeta

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"
)

const (
	defaultLimitNumDirectories = 1 << 16
	defaultLimitTagSize        = 256 << 20
)

// Options contains the options for Open.
type Options struct {
	// The file to read. It is opened for every operation and closed when done.
	// Either Filename or R must be set.
	Filename string

	// The Reader (typically a *os.File) to read from.
	// If R also implements io.ReaderAt, every ReadFrame gets its own io.SectionReader,
	// else reads are serialized.
	R io.ReadSeeker

	// If set, the tags of all directories are decoded when the file is opened.
	// By default, only the directory chain is indexed and tags are read with ReadFrame.
	DecodeTags bool

	// Warnf will be called for each warning.
	Warnf func(string, ...any)

	// LimitNumDirectories is the maximum number of directories in the chain.
	// Default value is 65536.
	LimitNumDirectories uint32

	// LimitTagSize is the maximum size in bytes of a single tag value.
	// Default value is 256 MiB.
	LimitTagSize uint64
}

// File is a TIFF or BigTIFF file with its indexed directory chain.
type File struct {
	// Source is the filename, or empty if the file was opened from a Reader.
	Source string

	Header Header

	// Directories in chain order.
	// Unless Options.DecodeTags was set, the directories have no tags; use ReadFrame.
	Directories []Directory

	opts Options

	// Used when opts.R is not an io.ReaderAt.
	mu sync.Mutex
}

// OpenFile opens the named file and indexes its directory chain.
func OpenFile(filename string) (*File, error) {
	return Open(Options{Filename: filename})
}

// Open reads the header and walks the directory chain.
func Open(opts Options) (f *File, err error) {
	if opts.Filename == "" && opts.R == nil {
		return nil, fmt.Errorf("no filename or reader provided")
	}
	if opts.LimitNumDirectories == 0 {
		opts.LimitNumDirectories = defaultLimitNumDirectories
	}
	if opts.LimitTagSize == 0 {
		opts.LimitTagSize = defaultLimitTagSize
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}

	f = &File{
		Source: opts.Filename,
		opts:   opts,
	}

	err = f.withReader(func(s *streamReader) {
		s.seek(0, ErrUnknownBuffer)
		f.Header = decodeHeader(s)
		f.Directories = f.walk(newDecoder(s, f.Header, f.opts))
	})
	if err != nil {
		return nil, err
	}

	return f, nil
}

// FrameCount returns the number of directories in the chain.
func (f *File) FrameCount() int {
	return len(f.Directories)
}

// ReadFrame decodes the directory at index i including all its tags.
// The returned Directory is independent of f.Directories.
// It is safe to call ReadFrame concurrently.
func (f *File) ReadFrame(i int) (d Directory, err error) {
	if i < 0 || i >= f.FrameCount() {
		return d, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, i, f.FrameCount())
	}
	pos := f.Directories[i].Position
	err = f.withReader(func(s *streamReader) {
		dec := newDecoder(s, f.Header, f.opts)
		dec.seek(pos, ErrUnexpectedEndOfBuffer)
		d = dec.decodeDirectory(false)
	})
	if err != nil {
		return Directory{}, err
	}
	return d, nil
}

func (f *File) walk(dec *decoder) []Directory {
	var dirs []Directory
	visited := make(map[uint64]bool)
	skipTags := !f.opts.DecodeTags

	for next := f.Header.FirstDirectory; next != 0; {
		if visited[next] {
			dec.stop(fmt.Errorf("%w: offset %d", ErrDirectoryCycle, next))
		}
		if len(dirs) >= int(f.opts.LimitNumDirectories) {
			dec.stop(fmt.Errorf("%w: more than %d", ErrTooManyDirectories, f.opts.LimitNumDirectories))
		}
		visited[next] = true
		if next%2 != 0 {
			f.opts.Warnf("directory offset %d is not word aligned", next)
		}
		dec.seek(next, ErrUnexpectedEndOfBuffer)
		d := dec.decodeDirectory(skipTags)
		dirs = append(dirs, d)
		next = d.Next
	}

	return dirs
}

// withReader acquires a reader for the source, runs fn and releases the reader.
// Any error recorded while running fn is returned.
func (f *File) withReader(fn func(s *streamReader)) (err error) {
	r, closer, err := f.acquire()
	if err != nil {
		return err
	}
	defer func() {
		if errc := closer.Close(); err == nil {
			err = errc
		}
	}()

	s := newStreamReader(r, nil)

	defer func() {
		if err != nil && isInvalidFormatErrorCandidate(err) {
			err = newInvalidFormatError(err)
		}
	}()
	defer s.recoverStop(&err)

	fn(s)

	return nil
}

func (f *File) acquire() (io.ReadSeeker, io.Closer, error) {
	if f.Source != "" {
		fh, err := os.Open(f.Source)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrCannotOpenFile, err)
		}
		return fh, fh, nil
	}
	if ra, ok := f.opts.R.(io.ReaderAt); ok {
		return io.NewSectionReader(ra, 0, math.MaxInt64), noopCloser, nil
	}
	f.mu.Lock()
	return f.opts.R, closerFunc(func() error {
		f.mu.Unlock()
		return nil
	}), nil
}
