// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package digest defines the fixed-size byte digests produced by the
// cryptographic and 128-bit hash algorithms.
package digest

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Digest is satisfied by every fixed-size digest type of this package.
type Digest interface {
	comparable
	Bytes() []byte
	Size() int
	String() string
}

func decodeHex(dst []byte, text []byte) error {
	s := strings.TrimPrefix(string(text), "0x")
	if hex.DecodedLen(len(s)) != len(dst) {
		return fmt.Errorf("%w: expected %d hex characters, got %d",
			ErrInvalidLength, 2*len(dst), len(s))
	}
	_, err := hex.Decode(dst, []byte(s))
	return err
}

func fromBytes(dst []byte, b []byte) error {
	if len(b) != len(dst) {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}
