// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package sha1 implements the SHA-1 digest of FIPS 180-4 as an incremental
// state.
//
// SHA-1 is cryptographically broken and is provided for compatibility only.
package sha1

import (
	"github.com/ChainSafe/hash2/internal/endian"
	"github.com/ChainSafe/hash2/pkg/digest"
)

// Size is the length of a SHA-1 digest in bytes.
const Size = 20

// BlockSize is the SHA-1 block length in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
	init4 = 0xc3d2e1f0
)

const (
	k0 = 0x5a827999
	k1 = 0x6ed9eba1
	k2 = 0x8f1bbcdc
	k3 = 0xca62c1d6
)

// State is a SHA-1 state.
type State struct {
	h      [5]uint32
	buffer [BlockSize]byte
	m      int
	n      uint64
}

// New returns a fresh SHA-1 state.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// NewWithSeed returns a state that has absorbed the 8 little endian bytes
// of a non-zero seed and been finalised.
func NewWithSeed(seed uint64) *State {
	s := New()
	if seed != 0 {
		var q [8]byte
		endian.Put64LE(q[:], seed)
		s.Update(q[:])
		s.Result()
	}
	return s
}

// NewWithSeedBytes returns a state that has absorbed a non-empty seed and
// been finalised.
func NewWithSeedBytes(seed []byte) *State {
	s := New()
	if len(seed) != 0 {
		s.Update(seed)
		s.Result()
	}
	return s
}

func (s *State) block(p []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = endian.Read32BE(p[4*i:])
	}
	for i := 16; i < 80; i++ {
		w[i] = endian.Rotl32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := s.h[0], s.h[1], s.h[2], s.h[3], s.h[4]

	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & d)
			k = k0
		case i < 40:
			f = b ^ c ^ d
			k = k1
		case i < 60:
			f = (b & c) | (b & d) | (c & d)
			k = k2
		default:
			f = b ^ c ^ d
			k = k3
		}
		t := endian.Rotl32(a, 5) + f + e + k + w[i]
		a, b, c, d, e = t, a, endian.Rotl32(b, 30), c, d
	}

	s.h[0] += a
	s.h[1] += b
	s.h[2] += c
	s.h[3] += d
	s.h[4] += e
}

// Update absorbs p.
func (s *State) Update(p []byte) {
	if len(p) == 0 {
		return
	}
	s.n += uint64(len(p))

	if s.m > 0 {
		k := copy(s.buffer[s.m:], p)
		s.m += k
		p = p[k:]
		if s.m < BlockSize {
			return
		}
		s.block(s.buffer[:])
		s.m = 0
		endian.Zero(s.buffer[:])
	}

	for len(p) >= BlockSize {
		s.block(p)
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		s.m = copy(s.buffer[:], p)
	}
}

// Write implements io.Writer. It never fails.
func (s *State) Write(p []byte) (int, error) {
	s.Update(p)
	return len(p), nil
}

// Result pads the message through the state and returns the digest.
func (s *State) Result() digest.Digest160 {
	var length [8]byte
	endian.Put64BE(length[:], s.n*8)

	k := 56 - s.m
	if s.m >= 56 {
		k = 120 - s.m
	}

	var padding [BlockSize]byte
	padding[0] = 0x80
	s.Update(padding[:k])
	s.Update(length[:])

	var d digest.Digest160
	for i, v := range s.h {
		endian.Put32BE(d[4*i:], v)
	}
	return d
}

// Reset restores the initial state.
func (s *State) Reset() {
	s.h = [5]uint32{init0, init1, init2, init3, init4}
	s.buffer = [BlockSize]byte{}
	s.m = 0
	s.n = 0
}

// Size returns the digest length in bytes.
func (*State) Size() int { return Size }

// BlockSize returns the block length in bytes.
func (*State) BlockSize() int { return BlockSize }
