// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import (
	"fmt"

	"github.com/multiformats/go-multihash"
)

// Multicodec codes for the digest producing algorithms.
const (
	CodeMD5            uint64 = multihash.MD5
	CodeSHA1           uint64 = multihash.SHA1
	CodeSHA2_224       uint64 = 0x1013
	CodeSHA2_256       uint64 = multihash.SHA2_256
	CodeSHA2_384       uint64 = 0x20
	CodeSHA2_512       uint64 = multihash.SHA2_512
	CodeSHA2_512_224   uint64 = 0x1014
	CodeSHA2_512_256   uint64 = 0x1015
	CodeRIPEMD160      uint64 = 0x1053
	CodeMurmur3X64_128 uint64 = 0x22
)

// Multihash renders d as a self-describing multihash tagged with code.
func Multihash[D Digest](code uint64, d D) (multihash.Multihash, error) {
	mh, err := multihash.Encode(d.Bytes(), code)
	if err != nil {
		return nil, fmt.Errorf("encoding multihash for code 0x%x: %w", code, err)
	}
	return mh, nil
}

// FromMultihash decodes mh, checks that it carries the expected code
// and a digest of the right size, and copies the digest into dst.
func FromMultihash(code uint64, mh []byte, dst []byte) error {
	decoded, err := multihash.Decode(mh)
	if err != nil {
		return fmt.Errorf("decoding multihash: %w", err)
	}

	if decoded.Code != code {
		return fmt.Errorf("%w: expected 0x%x, got 0x%x", ErrMultihashCode, code, decoded.Code)
	}

	if len(decoded.Digest) != len(dst) {
		return fmt.Errorf("%w: expected %d bytes, got %d",
			ErrMultihashLength, len(dst), len(decoded.Digest))
	}

	copy(dst, decoded.Digest)
	return nil
}
