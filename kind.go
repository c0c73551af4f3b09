// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import "strconv"

// Kind is the on-disk data type code of a tag value.
type Kind uint16

const (
	KindByte      Kind = 1
	KindASCII     Kind = 2
	KindShort     Kind = 3
	KindLong      Kind = 4
	KindRational  Kind = 5
	KindSByte     Kind = 6
	KindUndefined Kind = 7
	KindSShort    Kind = 8
	KindSLong     Kind = 9
	KindSRational Kind = 10
	KindFloat     Kind = 11
	KindDouble    Kind = 12
	KindIFD       Kind = 13
	KindLong8     Kind = 16
	KindSLong8    Kind = 17
	KindIFD8      Kind = 18
)

// Size in bytes of one element of each kind.
var kindSize = map[Kind]uint64{
	KindByte:      1,
	KindASCII:     1,
	KindShort:     2,
	KindLong:      4,
	KindRational:  8,
	KindSByte:     1,
	KindUndefined: 1,
	KindSShort:    2,
	KindSLong:     4,
	KindSRational: 8,
	KindFloat:     4,
	KindDouble:    8,
	KindIFD:       4,
	KindLong8:     8,
	KindSLong8:    8,
	KindIFD8:      8,
}

var kindNames = map[Kind]string{
	KindByte:      "Byte",
	KindASCII:     "ASCII",
	KindShort:     "Short",
	KindLong:      "Long",
	KindRational:  "Rational",
	KindSByte:     "SByte",
	KindUndefined: "Undefined",
	KindSShort:    "SShort",
	KindSLong:     "SLong",
	KindSRational: "SRational",
	KindFloat:     "Float",
	KindDouble:    "Double",
	KindIFD:       "IFD",
	KindLong8:     "Long8",
	KindSLong8:    "SLong8",
	KindIFD8:      "IFD8",
}

// Size returns the size in bytes of one element, or 0 for an unknown kind.
func (k Kind) Size() uint64 {
	return kindSize[k]
}

// IsValid reports whether k is one of the 16 known kinds.
func (k Kind) IsValid() bool {
	_, ok := kindSize[k]
	return ok
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
