// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"fmt"
	"math"
)

// Number is the set of element types a non-rational tag value can hold.
type Number interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 | uint64 | int64 | float32 | float64
}

type numberClass uint8

const (
	classUnsigned numberClass = iota
	classSigned
	classFloat
)

// scalar is a single element widened to its 64-bit representation.
// All coercion rules are applied on this type.
type scalar struct {
	class numberClass
	u     uint64
	i     int64
	f     float64
}

// widen maps any element type onto a scalar.
func widen[T Number](v T) scalar {
	switch x := any(v).(type) {
	case uint8:
		return scalar{class: classUnsigned, u: uint64(x)}
	case uint16:
		return scalar{class: classUnsigned, u: uint64(x)}
	case uint32:
		return scalar{class: classUnsigned, u: uint64(x)}
	case uint64:
		return scalar{class: classUnsigned, u: x}
	case int8:
		return scalar{class: classSigned, i: int64(x)}
	case int16:
		return scalar{class: classSigned, i: int64(x)}
	case int32:
		return scalar{class: classSigned, i: int64(x)}
	case int64:
		return scalar{class: classSigned, i: x}
	case float32:
		return scalar{class: classFloat, f: float64(x)}
	case float64:
		return scalar{class: classFloat, f: x}
	}
	panic("unreachable")
}

// 2^63 and 2^64 are exact in float64.
const (
	twoPow63 = float64(1 << 63)
	twoPow64 = twoPow63 * 2
)

func isIntegral(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Trunc(f) == f
}

func (s scalar) int64() (int64, bool) {
	switch s.class {
	case classUnsigned:
		if s.u > math.MaxInt64 {
			return 0, false
		}
		return int64(s.u), true
	case classSigned:
		return s.i, true
	default:
		if !isIntegral(s.f) || s.f < -twoPow63 || s.f >= twoPow63 {
			return 0, false
		}
		return int64(s.f), true
	}
}

func (s scalar) uint64() (uint64, bool) {
	switch s.class {
	case classUnsigned:
		return s.u, true
	case classSigned:
		if s.i < 0 {
			return 0, false
		}
		return uint64(s.i), true
	default:
		if !isIntegral(s.f) || s.f < 0 || s.f >= twoPow64 {
			return 0, false
		}
		return uint64(s.f), true
	}
}

func (s scalar) float64() float64 {
	switch s.class {
	case classUnsigned:
		return float64(s.u)
	case classSigned:
		return float64(s.i)
	default:
		return s.f
	}
}

// converter converts one element of type E to R.
type converter[E, R any] func(E) (R, bool)

func toInt64[T Number](v T) (int64, bool) {
	return widen(v).int64()
}

func toUint64[T Number](v T) (uint64, bool) {
	return widen(v).uint64()
}

func toFloat64[T Number](v T) (float64, bool) {
	return widen(v).float64(), true
}

func ratToInt64[T int32 | uint32](r Rat[T]) (int64, bool) {
	s, ok := r.quotient()
	if !ok {
		return 0, false
	}
	return s.int64()
}

func ratToUint64[T int32 | uint32](r Rat[T]) (uint64, bool) {
	s, ok := r.quotient()
	if !ok {
		return 0, false
	}
	return s.uint64()
}

func ratToFloat64[T int32 | uint32](r Rat[T]) (float64, bool) {
	return r.Float64(), true
}

// coerceOne converts the single element in elems.
func coerceOne[E, R any](kind Kind, elems []E, conv converter[E, R]) (R, error) {
	var zero R
	if len(elems) != 1 {
		return zero, fmt.Errorf("%w: %s value has %d elements, expected 1", ErrIncompatibleKind, kind, len(elems))
	}
	r, ok := conv(elems[0])
	if !ok {
		return zero, fmt.Errorf("%w: cannot convert %s value %v to %T", ErrIncompatibleKind, kind, elems[0], zero)
	}
	return r, nil
}

// coerceAll converts all elements, stopping at the first failure.
func coerceAll[E, R any](kind Kind, elems []E, conv converter[E, R]) ([]R, error) {
	result := make([]R, len(elems))
	for i, e := range elems {
		r, ok := conv(e)
		if !ok {
			return nil, fmt.Errorf("%w: cannot convert %s value %v at index %d to %T", ErrIncompatibleKind, kind, e, i, r)
		}
		result[i] = r
	}
	return result, nil
}
