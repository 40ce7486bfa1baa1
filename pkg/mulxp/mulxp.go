// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package mulxp implements mulxp3_64, a 64-bit hash built on the folded
// 64x64->128 bit multiply.
package mulxp

import (
	"math/bits"

	"github.com/ChainSafe/hash2/internal/endian"
)

const (
	q uint64 = 0x9e3779b97f4a7c15
	k uint64 = 0xdf442d22ce4859b9 // q * q mod 2^64

	blockSize = 16
)

// mulx folds the 128-bit product of x and y into 64 bits.
func mulx(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return hi ^ lo
}

// State is a mulxp3_64 state.
type State struct {
	w, h   uint64
	buffer [blockSize]byte
	m      int
	n      uint64
}

// New returns a state with seed 0.
func New() *State {
	return NewWithSeed(0)
}

// NewWithSeed returns a state for seed.
func NewWithSeed(seed uint64) *State {
	s := &State{}
	s.init(seed)
	return s
}

// NewWithSeedBytes returns a seed 0 state that has absorbed seed and been
// finalised. An empty seed gives the default state.
func NewWithSeedBytes(seed []byte) *State {
	s := New()
	if len(seed) != 0 {
		s.Update(seed)
		s.Result()
	}
	return s
}

func (s *State) init(seed uint64) {
	s.w = mulx(seed+q, k)
	s.h = s.w
	s.buffer = [blockSize]byte{}
	s.m = 0
	s.n = 0
}

func (s *State) mix(v1, v2 uint64) {
	s.w += q
	s.h ^= mulx(v1+s.w, v2+s.w+k)
}

func (s *State) block(p []byte) {
	s.mix(endian.Read64LE(p[0:]), endian.Read64LE(p[8:]))
}

// Update absorbs p.
func (s *State) Update(p []byte) {
	if len(p) == 0 {
		return
	}
	s.n += uint64(len(p))

	if s.m > 0 {
		c := copy(s.buffer[s.m:], p)
		s.m += c
		p = p[c:]
		if s.m < blockSize {
			return
		}
		s.block(s.buffer[:])
		s.m = 0
	}

	for len(p) >= blockSize {
		s.block(p)
		p = p[blockSize:]
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

// Result mixes the buffered tail and the total length into the state and
// returns the folded hash word.
func (s *State) Result() uint64 {
	p := s.buffer[:]
	n := s.m

	var v1, v2 uint64
	switch {
	case n > 8:
		v1 = endian.Read64LE(p)
		v2 = endian.Read64LE(p[n-8:]) >> ((16 - n) * 8)
	case n >= 4:
		v1 = uint64(endian.Read32LE(p[n-4:]))<<((n-4)*8) | uint64(endian.Read32LE(p))
	case n >= 1:
		x1 := (n - 1) & 2
		x2 := n >> 1
		v1 = uint64(p[x1])<<(x1*8) | uint64(p[x2])<<(x2*8) | uint64(p[0])
	}
	s.mix(v1, v2)

	s.h ^= s.n

	s.n += uint64(blockSize - s.m)
	s.m = 0
	endian.Zero(s.buffer[:])

	return mulx(s.h, k)
}

// Reset restores the seed 0 state.
func (s *State) Reset() { s.init(0) }

// Size returns the result width in bytes.
func (*State) Size() int { return 8 }

// BlockSize returns the block length.
func (*State) BlockSize() int { return blockSize }
