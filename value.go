// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Value is the decoded value of a tag: an ordered sequence of elements of one Kind.
//
// The set of implementations is closed:
//
//	*Numbers[uint8]    Byte, ASCII, Undefined
//	*Numbers[int8]     SByte
//	*Numbers[uint16]   Short
//	*Numbers[int16]    SShort
//	*Numbers[uint32]   Long, IFD
//	*Numbers[int32]    SLong
//	*Numbers[uint64]   Long8, IFD8
//	*Numbers[int64]    SLong8
//	*Numbers[float32]  Float
//	*Numbers[float64]  Double
//	*Rationals[uint32] Rational
//	*Rationals[int32]  SRational
type Value interface {
	// Kind returns the on-disk kind of the value.
	Kind() Kind
	// Len returns the number of elements.
	Len() int

	// Int64 returns the only element as an int64.
	Int64() (int64, error)
	// Int64s returns all elements as int64s.
	Int64s() ([]int64, error)
	// Uint64 returns the only element as an uint64.
	Uint64() (uint64, error)
	// Uint64s returns all elements as uint64s.
	Uint64s() ([]uint64, error)
	// Float64 returns the only element as a float64.
	Float64() (float64, error)
	// Float64s returns all elements as float64s.
	Float64s() ([]float64, error)

	String() string

	isValue()
}

var (
	_ Value = (*Numbers[uint8])(nil)
	_ Value = (*Rationals[int32])(nil)
)

// Numbers holds the elements of every non-rational kind.
type Numbers[T Number] struct {
	kind   Kind
	Values []T
}

// NewNumbers creates a new Numbers value of the given kind.
func NewNumbers[T Number](kind Kind, values ...T) *Numbers[T] {
	return &Numbers[T]{kind: kind, Values: values}
}

func (n *Numbers[T]) Kind() Kind { return n.kind }
func (n *Numbers[T]) Len() int   { return len(n.Values) }

func (n *Numbers[T]) Int64() (int64, error) {
	return coerceOne(n.kind, n.Values, toInt64[T])
}

func (n *Numbers[T]) Int64s() ([]int64, error) {
	return coerceAll(n.kind, n.Values, toInt64[T])
}

func (n *Numbers[T]) Uint64() (uint64, error) {
	return coerceOne(n.kind, n.Values, toUint64[T])
}

func (n *Numbers[T]) Uint64s() ([]uint64, error) {
	return coerceAll(n.kind, n.Values, toUint64[T])
}

func (n *Numbers[T]) Float64() (float64, error) {
	return coerceOne(n.kind, n.Values, toFloat64[T])
}

func (n *Numbers[T]) Float64s() ([]float64, error) {
	return coerceAll(n.kind, n.Values, toFloat64[T])
}

func (n *Numbers[T]) String() string {
	if n.kind == KindASCII {
		if b, ok := any(n.Values).([]uint8); ok {
			return fmt.Sprintf("%s(%q)", n.kind, printableString(string(trimBytesNulls(b))))
		}
	}
	return fmt.Sprintf("%s%v", n.kind, n.Values)
}

func (n *Numbers[T]) isValue() {}

// Rationals holds the elements of the Rational and SRational kinds.
type Rationals[T int32 | uint32] struct {
	kind   Kind
	Values []Rat[T]
}

// NewRationals creates a new Rationals value of the given kind.
func NewRationals[T int32 | uint32](kind Kind, values ...Rat[T]) *Rationals[T] {
	return &Rationals[T]{kind: kind, Values: values}
}

func (r *Rationals[T]) Kind() Kind { return r.kind }
func (r *Rationals[T]) Len() int   { return len(r.Values) }

func (r *Rationals[T]) Int64() (int64, error) {
	return coerceOne(r.kind, r.Values, ratToInt64[T])
}

func (r *Rationals[T]) Int64s() ([]int64, error) {
	return coerceAll(r.kind, r.Values, ratToInt64[T])
}

func (r *Rationals[T]) Uint64() (uint64, error) {
	return coerceOne(r.kind, r.Values, ratToUint64[T])
}

func (r *Rationals[T]) Uint64s() ([]uint64, error) {
	return coerceAll(r.kind, r.Values, ratToUint64[T])
}

func (r *Rationals[T]) Float64() (float64, error) {
	return coerceOne(r.kind, r.Values, ratToFloat64[T])
}

func (r *Rationals[T]) Float64s() ([]float64, error) {
	return coerceAll(r.kind, r.Values, ratToFloat64[T])
}

func (r *Rationals[T]) String() string {
	var sb strings.Builder
	sb.WriteString(r.kind.String())
	sb.WriteString("[")
	for i, v := range r.Values {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString("]")
	return sb.String()
}

func (r *Rationals[T]) isValue() {}

// decodeElements decodes the elements in b, each size bytes wide.
func decodeElements[T any](b []byte, size int, dec func([]byte) T) []T {
	values := make([]T, len(b)/size)
	for i := range values {
		values[i] = dec(b[i*size:])
	}
	return values
}

func decodeRats[T int32 | uint32](b []byte, bo binary.ByteOrder) []Rat[T] {
	return decodeElements(b, 8, func(p []byte) Rat[T] {
		return Rat[T]{num: T(bo.Uint32(p)), den: T(bo.Uint32(p[4:]))}
	})
}

// newValue creates a Value of the given kind from the raw bytes in b,
// which must hold a whole number of elements in byte order bo.
func newValue(kind Kind, b []byte, bo binary.ByteOrder) (Value, error) {
	switch kind {
	case KindByte, KindASCII, KindUndefined:
		return NewNumbers(kind, b...), nil
	case KindSByte:
		return NewNumbers(kind, decodeElements(b, 1, func(p []byte) int8 { return int8(p[0]) })...), nil
	case KindShort:
		return NewNumbers(kind, decodeElements(b, 2, bo.Uint16)...), nil
	case KindSShort:
		return NewNumbers(kind, decodeElements(b, 2, func(p []byte) int16 { return int16(bo.Uint16(p)) })...), nil
	case KindLong, KindIFD:
		return NewNumbers(kind, decodeElements(b, 4, bo.Uint32)...), nil
	case KindSLong:
		return NewNumbers(kind, decodeElements(b, 4, func(p []byte) int32 { return int32(bo.Uint32(p)) })...), nil
	case KindLong8, KindIFD8:
		return NewNumbers(kind, decodeElements(b, 8, bo.Uint64)...), nil
	case KindSLong8:
		return NewNumbers(kind, decodeElements(b, 8, func(p []byte) int64 { return int64(bo.Uint64(p)) })...), nil
	case KindFloat:
		return NewNumbers(kind, decodeElements(b, 4, func(p []byte) float32 { return math.Float32frombits(bo.Uint32(p)) })...), nil
	case KindDouble:
		return NewNumbers(kind, decodeElements(b, 8, func(p []byte) float64 { return math.Float64frombits(bo.Uint64(p)) })...), nil
	case KindRational:
		return NewRationals(kind, decodeRats[uint32](b, bo)...), nil
	case KindSRational:
		return NewRationals(kind, decodeRats[int32](b, bo)...), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint16(kind))
	}
}
