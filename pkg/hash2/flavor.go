// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash2

import (
	"fmt"

	"github.com/ChainSafe/hash2/internal/endian"
)

// Endian selects the byte order multi-byte scalars are hashed in.
type Endian uint8

const (
	// NativeEndian uses the byte order of the host.
	NativeEndian Endian = iota
	// LittleEndian hashes scalars least significant byte first.
	LittleEndian
	// BigEndian hashes scalars most significant byte first.
	BigEndian
)

func (e Endian) String() string {
	switch e {
	case NativeEndian:
		return "native"
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return fmt.Sprintf("Endian(%d)", uint8(e))
	}
}

// isBig resolves e against the host byte order.
func (e Endian) isBig() bool {
	switch e {
	case BigEndian:
		return true
	case LittleEndian:
		return false
	default:
		return endian.NativeIsBig
	}
}

// Flavor configures how scalars and size suffixes are serialised.
type Flavor struct {
	ByteOrder Endian
	// SizeWidth is the number of bytes a size suffix is written with.
	SizeWidth int
}

var (
	// DefaultFlavor hashes in host byte order with 4 byte sizes.
	DefaultFlavor = Flavor{ByteOrder: NativeEndian, SizeWidth: 4}
	// LittleEndianFlavor gives results independent of the host.
	LittleEndianFlavor = Flavor{ByteOrder: LittleEndian, SizeWidth: 8}
	// BigEndianFlavor gives results independent of the host.
	BigEndianFlavor = Flavor{ByteOrder: BigEndian, SizeWidth: 8}
)

// Validate returns an error wrapping ErrInvalidFlavor if the flavor
// cannot be used.
func (f Flavor) Validate() error {
	if f.ByteOrder > BigEndian {
		return fmt.Errorf("%w: byte order %s", ErrInvalidFlavor, f.ByteOrder)
	}
	switch f.SizeWidth {
	case 1, 2, 4, 8:
		return nil
	default:
		return fmt.Errorf("%w: size width %d", ErrInvalidFlavor, f.SizeWidth)
	}
}

func (f Flavor) String() string {
	return fmt.Sprintf("%s endian, %d byte sizes", f.ByteOrder, f.SizeWidth)
}
