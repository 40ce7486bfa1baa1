// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package md5 implements the MD5 digest of RFC 1321 as an incremental
// state.
//
// MD5 is cryptographically broken and is provided for compatibility only.
package md5

import (
	"github.com/ChainSafe/hash2/internal/endian"
	"github.com/ChainSafe/hash2/pkg/digest"
)

// Size is the length of an MD5 digest in bytes.
const Size = 16

// BlockSize is the MD5 block length in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

var table = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

var shifts = [4][4]int{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

// State is an MD5 state.
type State struct {
	s      [4]uint32
	buffer [BlockSize]byte
	m      int
	n      uint64
}

// New returns a fresh MD5 state.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// NewWithSeed returns a state that has absorbed the 8 little endian bytes
// of a non-zero seed and been finalised. A zero seed gives the default
// state.
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
	var x [16]uint32
	for i := range x {
		x[i] = endian.Read32LE(p[4*i:])
	}

	a, b, c, d := s.s[0], s.s[1], s.s[2], s.s[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch i / 16 {
		case 0:
			f = (b & c) | (^b & d)
			g = i
		case 1:
			f = (d & b) | (^d & c)
			g = (5*i + 1) % 16
		case 2:
			f = b ^ c ^ d
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			g = (7 * i) % 16
		}
		f += a + table[i] + x[g]
		a, d, c = d, c, b
		b += endian.Rotl32(f, shifts[i/16][i%4])
	}

	s.s[0] += a
	s.s[1] += b
	s.s[2] += c
	s.s[3] += d
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

// Result pads the message through the state and returns the digest. The
// padding stays absorbed, so another Result yields a different digest.
func (s *State) Result() digest.Digest128 {
	var length [8]byte
	endian.Put64LE(length[:], s.n*8)

	k := 56 - s.m
	if s.m >= 56 {
		k = 120 - s.m
	}

	var padding [BlockSize]byte
	padding[0] = 0x80
	s.Update(padding[:k])
	s.Update(length[:])

	var d digest.Digest128
	for i, v := range s.s {
		endian.Put32LE(d[4*i:], v)
	}
	return d
}

// Reset restores the initial state.
func (s *State) Reset() {
	s.s = [4]uint32{init0, init1, init2, init3}
	s.buffer = [BlockSize]byte{}
	s.m = 0
	s.n = 0
}

// Size returns the digest length in bytes.
func (*State) Size() int { return Size }

// BlockSize returns the block length in bytes.
func (*State) BlockSize() int { return BlockSize }
