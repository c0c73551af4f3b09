// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Text returns an ASCII value as a string.
// Trailing NULs are removed. TIFF requires 7-bit ASCII, but many writers store
// Latin-1 or UTF-8; bytes that are not valid UTF-8 are decoded as ISO 8859-1.
func Text(v Value) (string, error) {
	b, err := asciiBytes(v)
	if err != nil {
		return "", err
	}
	return decodeText(bytes.TrimRight(b, "\x00"))
}

// Strings returns an ASCII value holding multiple NUL terminated strings, e.g. InkNames.
func Strings(v Value) ([]string, error) {
	b, err := asciiBytes(v)
	if err != nil {
		return nil, err
	}
	b = bytes.TrimRight(b, "\x00")
	if len(b) == 0 {
		return nil, nil
	}
	parts := bytes.Split(b, []byte{0})
	ss := make([]string, len(parts))
	for i, p := range parts {
		s, err := decodeText(p)
		if err != nil {
			return nil, err
		}
		ss[i] = s
	}
	return ss, nil
}

func asciiBytes(v Value) ([]byte, error) {
	n, ok := v.(*Numbers[uint8])
	if !ok || n.Kind() != KindASCII {
		return nil, fmt.Errorf("%w: %s is not ASCII", ErrIncompatibleKind, v.Kind())
	}
	return n.Values, nil
}

func decodeText(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	return charmap.ISO8859_1.NewDecoder().String(string(b))
}

func printableString(s string) string {
	ss := strings.Map(func(r rune) rune {
		if unicode.IsGraphic(r) {
			return r
		}
		return -1
	}, s)

	return strings.TrimSpace(ss)
}

func trimBytesNulls(b []byte) []byte {
	var lo, hi int
	for lo = 0; lo < len(b) && b[lo] == 0; lo++ {
	}
	for hi = len(b) - 1; hi >= 0 && b[hi] == 0; hi-- {
	}
	if lo > hi {
		return nil
	}
	return b[lo : hi+1]
}
