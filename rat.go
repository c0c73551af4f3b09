// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"encoding"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	_ encoding.TextUnmarshaler = (*Rat[int32])(nil)
	_ encoding.TextMarshaler   = Rat[int32]{}
)

// Rat is a rational number as stored in a TIFF file.
// Unlike math/big.Rat it keeps the numerator and denominator as read,
// including a zero denominator.
type Rat[T int32 | uint32] struct {
	num T
	den T
}

// NewRat returns a new Rat with the given numerator and denominator.
// No normalization is done.
func NewRat[T int32 | uint32](num, den T) Rat[T] {
	return Rat[T]{num: num, den: den}
}

// Num returns the numerator of the rational number.
func (r Rat[T]) Num() T {
	return r.num
}

// Den returns the denominator of the rational number.
func (r Rat[T]) Den() T {
	return r.den
}

// Float64 returns the float64 representation of the rational number.
// A zero denominator gives NaN.
func (r Rat[T]) Float64() float64 {
	if r.den == 0 {
		return math.NaN()
	}
	return float64(r.num) / float64(r.den)
}

// String returns the string representation of the rational number.
// If the denominator is 1, the string will be the numerator only.
func (r Rat[T]) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

func (r *Rat[T]) UnmarshalText(text []byte) error {
	s := string(text)
	nums, dens, hasDen := strings.Cut(s, "/")
	num, err := parseRatPart[T](nums)
	if err != nil {
		return fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
	}
	den := T(1)
	if hasDen {
		if den, err = parseRatPart[T](dens); err != nil {
			return fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
		}
	}
	r.num, r.den = num, den
	return nil
}

// parseRatPart parses s as a T, failing if it is out of range for T.
func parseRatPart[T int32 | uint32](s string) (T, error) {
	var zero T
	if _, ok := any(zero).(uint32); ok {
		n, err := strconv.ParseUint(s, 10, 32)
		return T(n), err
	}
	n, err := strconv.ParseInt(s, 10, 32)
	return T(n), err
}

func (r Rat[T]) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}

// quotient returns the exact quotient of r.
// It fails for a zero denominator or a remainder.
func (r Rat[T]) quotient() (scalar, bool) {
	if r.den == 0 {
		return scalar{}, false
	}
	// Both int32 and uint32 fit in int64, which also avoids MinInt32/-1 overflow.
	n, d := int64(r.num), int64(r.den)
	if n%d != 0 {
		return scalar{}, false
	}
	return scalar{class: classSigned, i: n / d}, true
}
