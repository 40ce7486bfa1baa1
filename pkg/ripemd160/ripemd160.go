// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package ripemd160 implements the RIPEMD-160 digest as an incremental state.
package ripemd160

import (
	"github.com/ChainSafe/hash2/internal/endian"
	"github.com/ChainSafe/hash2/pkg/digest"
)

// Size is the length of a RIPEMD-160 digest in bytes.
const Size = 20

// BlockSize is the RIPEMD-160 block length in bytes.
const BlockSize = 64

// message word selection for the left and right lines
var (
	rl = [80]uint8{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
		3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
		1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
		4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
	}
	rr = [80]uint8{
		5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
		6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
		15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
		8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
		12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
	}
)

// rotation amounts for the left and right lines
var (
	sl = [80]uint8{
		11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
		7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
		11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
		11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
		9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
	}
	sr = [80]uint8{
		8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
		9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
		9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
		15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
		8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
	}
)

var (
	kl = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
	kr = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}
)

func f(j int, x, y, z uint32) uint32 {
	switch j {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	case 3:
		return (x & z) | (y & ^z)
	default:
		return x ^ (y | ^z)
	}
}

// State is a RIPEMD-160 state.
type State struct {
	h      [5]uint32
	buffer [BlockSize]byte
	m      int
	n      uint64
}

// New returns a fresh RIPEMD-160 state.
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
	var x [16]uint32
	for i := range x {
		x[i] = endian.Read32LE(p[4*i:])
	}

	al, bl, cl, dl, el := s.h[0], s.h[1], s.h[2], s.h[3], s.h[4]
	ar, br, cr, dr, er := al, bl, cl, dl, el

	for i := 0; i < 80; i++ {
		j := i / 16

		t := endian.Rotl32(al+f(j, bl, cl, dl)+x[rl[i]]+kl[j], int(sl[i])) + el
		al, el, dl, cl, bl = el, dl, endian.Rotl32(cl, 10), bl, t

		t = endian.Rotl32(ar+f(4-j, br, cr, dr)+x[rr[i]]+kr[j], int(sr[i])) + er
		ar, er, dr, cr, br = er, dr, endian.Rotl32(cr, 10), br, t
	}

	t := s.h[1] + cl + dr
	s.h[1] = s.h[2] + dl + er
	s.h[2] = s.h[3] + el + ar
	s.h[3] = s.h[4] + al + br
	s.h[4] = s.h[0] + bl + cr
	s.h[0] = t
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
	endian.Put64LE(length[:], s.n*8)

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
		endian.Put32LE(d[4*i:], v)
	}
	return d
}

// Reset restores the initial state.
func (s *State) Reset() {
	s.h = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
	s.buffer = [BlockSize]byte{}
	s.m = 0
	s.n = 0
}

// Size returns the digest length in bytes.
func (*State) Size() int { return Size }

// BlockSize returns the block length in bytes.
func (*State) BlockSize() int { return BlockSize }
