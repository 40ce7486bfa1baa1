// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package murmur3 implements MurmurHash3, in its x86 32-bit and x64 128-bit
// forms, as incremental states.
package murmur3

import (
	"github.com/ChainSafe/hash2/internal/endian"
	"github.com/ChainSafe/hash2/pkg/digest"
)

const (
	c1_32 uint32 = 0xcc9e2d51
	c2_32 uint32 = 0x1b873593

	c1_128 uint64 = 0x87c37b91114253d5
	c2_128 uint64 = 0x4cf5ad432745937f
)

const (
	block32  = 4
	block128 = 16
)

func fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

func scramble32(k uint32) uint32 {
	k *= c1_32
	k = endian.Rotl32(k, 15)
	return k * c2_32
}

// State32 is a MurmurHash3_x86_32 state.
type State32 struct {
	h      uint32
	buffer [block32]byte
	m      int
	n      uint64
}

// New32 returns a state with seed 0.
func New32() *State32 {
	return &State32{}
}

// New32WithSeed returns a state whose hash word is the low half of seed. A
// non-zero high half is absorbed as 4 little endian bytes and finalised.
func New32WithSeed(seed uint64) *State32 {
	s := &State32{h: uint32(seed)}
	if hi := uint32(seed >> 32); hi != 0 {
		var q [4]byte
		endian.Put32LE(q[:], hi)
		s.Update(q[:])
		s.Result()
	}
	return s
}

// New32WithSeedBytes returns a state for a byte seed. Up to 4 bytes form
// the little endian hash word; longer seeds use the first 4 bytes as the
// hash word and absorb the rest.
func New32WithSeedBytes(seed []byte) *State32 {
	s := &State32{}
	if len(seed) <= 4 {
		var q [4]byte
		copy(q[:], seed)
		s.h = endian.Read32LE(q[:])
		return s
	}
	s.h = endian.Read32LE(seed)
	s.Update(seed[4:])
	s.Result()
	return s
}

func (s *State32) block(p []byte) {
	h := s.h ^ scramble32(endian.Read32LE(p))
	h = endian.Rotl32(h, 13)
	s.h = h*5 + 0xe6546b64
}

// Update absorbs p.
func (s *State32) Update(p []byte) {
	if len(p) == 0 {
		return
	}
	s.n += uint64(len(p))

	if s.m > 0 {
		k := copy(s.buffer[s.m:], p)
		s.m += k
		p = p[k:]
		if s.m < block32 {
			return
		}
		s.block(s.buffer[:])
		s.m = 0
	}

	for len(p) >= block32 {
		s.block(p)
		p = p[block32:]
	}

	if len(p) > 0 {
		s.m = copy(s.buffer[:], p)
	}
}

// Write implements io.Writer. It never fails.
func (s *State32) Write(p []byte) (int, error) {
	s.Update(p)
	return len(p), nil
}

// Result finalises a copy of the hash word and advances the length to the
// next word boundary.
func (s *State32) Result() uint32 {
	endian.Zero(s.buffer[s.m:])

	h := s.h ^ scramble32(endian.Read32LE(s.buffer[:]))
	h ^= uint32(s.n)
	h = fmix32(h)

	s.n += uint64(block32 - s.m)
	s.m = 0
	endian.Zero(s.buffer[:])

	return h
}

// Reset restores the seed 0 state.
func (s *State32) Reset() { *s = State32{} }

// Size returns the result width in bytes.
func (*State32) Size() int { return 4 }

// BlockSize returns the word length consumed per step.
func (*State32) BlockSize() int { return block32 }

// State128 is a MurmurHash3_x64_128 state.
type State128 struct {
	h1, h2 uint64
	buffer [block128]byte
	m      int
	n      uint64
}

// New128 returns a state with seed 0.
func New128() *State128 {
	return &State128{}
}

// New128WithSeed returns a state with both hash words set to seed.
func New128WithSeed(seed uint64) *State128 {
	return &State128{h1: seed, h2: seed}
}

// New128WithSeeds returns a state with independent hash words.
func New128WithSeeds(seed1, seed2 uint64) *State128 {
	return &State128{h1: seed1, h2: seed2}
}

// New128WithSeedBytes returns a state for a byte seed. Up to 8 bytes give
// one word used for both halves, up to 16 bytes give two words, and longer
// seeds use the first 16 bytes as words and absorb the rest.
func New128WithSeedBytes(seed []byte) *State128 {
	switch {
	case len(seed) <= 8:
		var q [8]byte
		copy(q[:], seed)
		w := endian.Read64LE(q[:])
		return New128WithSeeds(w, w)
	case len(seed) <= 16:
		var q [16]byte
		copy(q[:], seed)
		return New128WithSeeds(endian.Read64LE(q[:]), endian.Read64LE(q[8:]))
	default:
		s := New128WithSeeds(endian.Read64LE(seed), endian.Read64LE(seed[8:]))
		s.Update(seed[16:])
		s.Result()
		return s
	}
}

func (s *State128) block(p []byte) {
	h1, h2 := s.h1, s.h2

	k1 := endian.Read64LE(p[0:])
	k2 := endian.Read64LE(p[8:])

	k1 *= c1_128
	k1 = endian.Rotl64(k1, 31)
	k1 *= c2_128
	h1 ^= k1

	h1 = endian.Rotl64(h1, 27)
	h1 += h2
	h1 = h1*5 + 0x52dce729

	k2 *= c2_128
	k2 = endian.Rotl64(k2, 33)
	k2 *= c1_128
	h2 ^= k2

	h2 = endian.Rotl64(h2, 31)
	h2 += h1
	h2 = h2*5 + 0x38495ab5

	s.h1, s.h2 = h1, h2
}

// Update absorbs p.
func (s *State128) Update(p []byte) {
	if len(p) == 0 {
		return
	}
	s.n += uint64(len(p))

	if s.m > 0 {
		k := copy(s.buffer[s.m:], p)
		s.m += k
		p = p[k:]
		if s.m < block128 {
			return
		}
		s.block(s.buffer[:])
		s.m = 0
	}

	for len(p) >= block128 {
		s.block(p)
		p = p[block128:]
	}

	if len(p) > 0 {
		s.m = copy(s.buffer[:], p)
	}
}

// Write implements io.Writer. It never fails.
func (s *State128) Write(p []byte) (int, error) {
	s.Update(p)
	return len(p), nil
}

// Result returns the 128-bit digest, h1 then h2 little endian, and advances
// the length to the next block boundary.
func (s *State128) Result() digest.Digest128 {
	endian.Zero(s.buffer[s.m:])

	h1, h2 := s.h1, s.h2

	k1 := endian.Read64LE(s.buffer[0:])
	k2 := endian.Read64LE(s.buffer[8:])

	k2 *= c2_128
	k2 = endian.Rotl64(k2, 33)
	k2 *= c1_128
	h2 ^= k2

	k1 *= c1_128
	k1 = endian.Rotl64(k1, 31)
	k1 *= c2_128
	h1 ^= k1

	h1 ^= s.n
	h2 ^= s.n

	h1 += h2
	h2 += h1

	h1 = fmix64(h1)
	h2 = fmix64(h2)

	h1 += h2
	h2 += h1

	s.n += uint64(block128 - s.m)
	s.m = 0
	endian.Zero(s.buffer[:])

	var d digest.Digest128
	endian.Put64LE(d[0:], h1)
	endian.Put64LE(d[8:], h2)
	return d
}

// Reset restores the seed 0 state.
func (s *State128) Reset() { *s = State128{} }

// Size returns the digest length in bytes.
func (*State128) Size() int { return 16 }

// BlockSize returns the block length.
func (*State128) BlockSize() int { return block128 }
