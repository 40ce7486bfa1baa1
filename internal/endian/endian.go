// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package endian holds the byte and bit primitives shared by the hash
// state machines: fixed-width little and big endian loads and stores,
// and rotations.
package endian

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// NativeIsBig is true when the host stores multi-byte integers most
// significant byte first.
var NativeIsBig = cpu.IsBigEndian

// Read32LE reads a little endian uint32 from the first 4 bytes of b.
func Read32LE(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Read64LE reads a little endian uint64 from the first 8 bytes of b.
func Read64LE(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// Read32BE reads a big endian uint32 from the first 4 bytes of b.
func Read32BE(b []byte) uint32 {
	_ = b[3]
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
}

// Read64BE reads a big endian uint64 from the first 8 bytes of b.
func Read64BE(b []byte) uint64 {
	_ = b[7]
	return uint64(b[7]) | uint64(b[6])<<8 | uint64(b[5])<<16 | uint64(b[4])<<24 |
		uint64(b[3])<<32 | uint64(b[2])<<40 | uint64(b[1])<<48 | uint64(b[0])<<56
}

// Put32LE writes v into the first 4 bytes of b, little endian.
func Put32LE(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// Put64LE writes v into the first 8 bytes of b, little endian.
func Put64LE(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

// Put32BE writes v into the first 4 bytes of b, big endian.
func Put32BE(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// Put64BE writes v into the first 8 bytes of b, big endian.
func Put64BE(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}

// Rotl32 rotates x left by k bits.
func Rotl32(x uint32, k int) uint32 { return bits.RotateLeft32(x, k) }

// Rotl64 rotates x left by k bits.
func Rotl64(x uint64, k int) uint64 { return bits.RotateLeft64(x, k) }

// Rotr32 rotates x right by k bits.
func Rotr32(x uint32, k int) uint32 { return bits.RotateLeft32(x, -k) }

// Rotr64 rotates x right by k bits.
func Rotr64(x uint64, k int) uint64 { return bits.RotateLeft64(x, -k) }

// Zero clears b.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
