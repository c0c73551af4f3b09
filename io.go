// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

var noopCloser closerFunc = func() error {
	return nil
}

func newStreamReader(r io.ReadSeeker, byteOrder binary.ByteOrder) *streamReader {
	return &streamReader{
		r:         r,
		byteOrder: byteOrder,
	}
}

// streamReader is a wrapper around a ReadSeeker that provides methods to read binary data.
// All read and seek errors are recorded in readErr and abort the decoding by panicking
// with errStop, which is recovered in recoverStop.
// Note that this is not thread safe.
type streamReader struct {
	r         io.ReadSeeker
	byteOrder binary.ByteOrder

	buf []byte

	readErr error
}

func (e *streamReader) allocateBuf(length int) {
	if length > cap(e.buf) {
		e.buf = make([]byte, length)
	}
}

func (e *streamReader) pos() uint64 {
	n, err := e.r.Seek(0, io.SeekCurrent)
	if err != nil {
		e.stop(fmt.Errorf("%w: %w", ErrUnknownBuffer, err))
	}
	return uint64(n)
}

func (e *streamReader) read2() uint16 {
	const n = 2
	e.readNIntoBuf(n)
	return e.byteOrder.Uint16(e.buf[:n])
}

func (e *streamReader) read4() uint32 {
	const n = 4
	e.readNIntoBuf(n)
	return e.byteOrder.Uint32(e.buf[:n])
}

func (e *streamReader) read8() uint64 {
	const n = 8
	e.readNIntoBuf(n)
	return e.byteOrder.Uint64(e.buf[:n])
}

// readOffset reads a 4 byte offset (widened) or an 8 byte offset if big is set.
func (e *streamReader) readOffset(big bool) uint64 {
	if big {
		return e.read8()
	}
	return uint64(e.read4())
}

// readBytes reads exactly n bytes into a newly allocated slice.
func (e *streamReader) readBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := io.ReadFull(e.r, b); err != nil {
		e.stop(shortReadError(err))
	}
	return b
}

func (e *streamReader) readNIntoBuf(n int) {
	e.allocateBuf(n)
	if _, err := io.ReadFull(e.r, e.buf[:n]); err != nil {
		e.stop(shortReadError(err))
	}
}

// seek moves to the absolute position pos.
// Positions that cannot be represented or reached are reported with sentinel.
func (e *streamReader) seek(pos uint64, sentinel error) {
	if pos > math.MaxInt64 {
		e.stop(fmt.Errorf("%w: offset %d out of range", sentinel, pos))
	}
	if _, err := e.r.Seek(int64(pos), io.SeekStart); err != nil {
		e.stop(fmt.Errorf("%w: %w", sentinel, err))
	}
}

func (e *streamReader) skip(n uint64) {
	e.seek(e.pos()+n, ErrUnexpectedEndOfBuffer)
}

func (e *streamReader) stop(err error) {
	if err != nil {
		e.readErr = err
	}
	panic(errStop)
}

// recoverStop turns a stop panic into the recorded read error.
// It must be deferred directly.
func (e *streamReader) recoverStop(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if r != errStop {
		panic(r)
	}
	if e.readErr != nil {
		*err = e.readErr
		return
	}
	*err = errors.New("tiffmeta: decoding stopped")
}

func shortReadError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %w", ErrUnexpectedEndOfBuffer, err)
	}
	return fmt.Errorf("%w: %w", ErrUnknownBuffer, err)
}
