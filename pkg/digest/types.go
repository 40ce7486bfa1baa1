// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import "encoding/hex"

// Digest128 is a 16-byte digest, as produced by MD5 and the 128-bit MurmurHash3 and SpookyHash.
type Digest128 [16]byte

// NewDigest128 copies b into a Digest128. b must be exactly 16 bytes long.
func NewDigest128(b []byte) (d Digest128, err error) {
	err = fromBytes(d[:], b)
	return d, err
}

// Bytes returns the digest bytes.
func (d Digest128) Bytes() []byte { return d[:] }

// Size returns the digest length in bytes.
func (d Digest128) Size() int { return len(d) }

// String returns the lowercase hex encoding of the digest.
func (d Digest128) String() string { return hex.EncodeToString(d[:]) }

// MarshalText implements encoding.TextMarshaler.
func (d Digest128) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. An optional 0x prefix is accepted.
func (d *Digest128) UnmarshalText(text []byte) error { return decodeHex(d[:], text) }

// Digest160 is a 20-byte digest, as produced by SHA-1 and RIPEMD-160.
type Digest160 [20]byte

// NewDigest160 copies b into a Digest160. b must be exactly 20 bytes long.
func NewDigest160(b []byte) (d Digest160, err error) {
	err = fromBytes(d[:], b)
	return d, err
}

// Bytes returns the digest bytes.
func (d Digest160) Bytes() []byte { return d[:] }

// Size returns the digest length in bytes.
func (d Digest160) Size() int { return len(d) }

// String returns the lowercase hex encoding of the digest.
func (d Digest160) String() string { return hex.EncodeToString(d[:]) }

// MarshalText implements encoding.TextMarshaler.
func (d Digest160) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. An optional 0x prefix is accepted.
func (d *Digest160) UnmarshalText(text []byte) error { return decodeHex(d[:], text) }

// Digest224 is a 28-byte digest, as produced by SHA-224 and SHA-512/224.
type Digest224 [28]byte

// NewDigest224 copies b into a Digest224. b must be exactly 28 bytes long.
func NewDigest224(b []byte) (d Digest224, err error) {
	err = fromBytes(d[:], b)
	return d, err
}

// Bytes returns the digest bytes.
func (d Digest224) Bytes() []byte { return d[:] }

// Size returns the digest length in bytes.
func (d Digest224) Size() int { return len(d) }

// String returns the lowercase hex encoding of the digest.
func (d Digest224) String() string { return hex.EncodeToString(d[:]) }

// MarshalText implements encoding.TextMarshaler.
func (d Digest224) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. An optional 0x prefix is accepted.
func (d *Digest224) UnmarshalText(text []byte) error { return decodeHex(d[:], text) }

// Digest256 is a 32-byte digest, as produced by SHA-256 and SHA-512/256.
type Digest256 [32]byte

// NewDigest256 copies b into a Digest256. b must be exactly 32 bytes long.
func NewDigest256(b []byte) (d Digest256, err error) {
	err = fromBytes(d[:], b)
	return d, err
}

// Bytes returns the digest bytes.
func (d Digest256) Bytes() []byte { return d[:] }

// Size returns the digest length in bytes.
func (d Digest256) Size() int { return len(d) }

// String returns the lowercase hex encoding of the digest.
func (d Digest256) String() string { return hex.EncodeToString(d[:]) }

// MarshalText implements encoding.TextMarshaler.
func (d Digest256) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. An optional 0x prefix is accepted.
func (d *Digest256) UnmarshalText(text []byte) error { return decodeHex(d[:], text) }

// Digest384 is a 48-byte digest, as produced by SHA-384.
type Digest384 [48]byte

// NewDigest384 copies b into a Digest384. b must be exactly 48 bytes long.
func NewDigest384(b []byte) (d Digest384, err error) {
	err = fromBytes(d[:], b)
	return d, err
}

// Bytes returns the digest bytes.
func (d Digest384) Bytes() []byte { return d[:] }

// Size returns the digest length in bytes.
func (d Digest384) Size() int { return len(d) }

// String returns the lowercase hex encoding of the digest.
func (d Digest384) String() string { return hex.EncodeToString(d[:]) }

// MarshalText implements encoding.TextMarshaler.
func (d Digest384) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. An optional 0x prefix is accepted.
func (d *Digest384) UnmarshalText(text []byte) error { return decodeHex(d[:], text) }

// Digest512 is a 64-byte digest, as produced by SHA-512.
type Digest512 [64]byte

// NewDigest512 copies b into a Digest512. b must be exactly 64 bytes long.
func NewDigest512(b []byte) (d Digest512, err error) {
	err = fromBytes(d[:], b)
	return d, err
}

// Bytes returns the digest bytes.
func (d Digest512) Bytes() []byte { return d[:] }

// Size returns the digest length in bytes.
func (d Digest512) Size() int { return len(d) }

// String returns the lowercase hex encoding of the digest.
func (d Digest512) String() string { return hex.EncodeToString(d[:]) }

// MarshalText implements encoding.TextMarshaler.
func (d Digest512) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. An optional 0x prefix is accepted.
func (d *Digest512) UnmarshalText(text []byte) error { return decodeHex(d[:], text) }
