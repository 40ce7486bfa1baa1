// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package xxhash implements XXH32 and XXH64 as incremental, seedable states.
package xxhash

import "github.com/ChainSafe/hash2/internal/endian"

const (
	prime32_1 uint32 = 2654435761
	prime32_2 uint32 = 2246822519
	prime32_3 uint32 = 3266489917
	prime32_4 uint32 = 668265263
	prime32_5 uint32 = 374761393

	prime64_1 uint64 = 11400714785074694791
	prime64_2 uint64 = 14029467366897019727
	prime64_3 uint64 = 1609587929392839161
	prime64_4 uint64 = 9650029242287828579
	prime64_5 uint64 = 2870177450012600261
)

const (
	block32 = 16
	block64 = 32
)

func round32(acc, input uint32) uint32 {
	acc += input * prime32_2
	acc = endian.Rotl32(acc, 13)
	return acc * prime32_1
}

func avalanche32(h uint32) uint32 {
	h ^= h >> 15
	h *= prime32_2
	h ^= h >> 13
	h *= prime32_3
	h ^= h >> 16
	return h
}

// State32 is an XXH32 state.
type State32 struct {
	v1, v2, v3, v4 uint32
	buffer         [block32]byte
	m              int
	n              uint64
}

// New32 returns an XXH32 state with seed 0.
func New32() *State32 {
	s := &State32{}
	s.init(0)
	return s
}

// New32WithSeed returns an XXH32 state for seed. The low half of seed is
// the XXH32 seed; a non-zero high half is further mixed into every lane.
func New32WithSeed(seed uint64) *State32 {
	s := &State32{}
	s.init(uint32(seed))
	if hi := uint32(seed >> 32); hi != 0 {
		s.v1 = round32(s.v1, hi)
		s.v2 = round32(s.v2, hi)
		s.v3 = round32(s.v3, hi)
		s.v4 = round32(s.v4, hi)
	}
	return s
}

// New32WithSeedBytes returns an XXH32 state for a byte seed. Up to 4 bytes
// form a little endian seed word; longer seeds use the first 4 bytes as the
// seed word and absorb the rest.
func New32WithSeedBytes(seed []byte) *State32 {
	s := &State32{}
	if len(seed) <= 4 {
		var q [4]byte
		copy(q[:], seed)
		s.init(endian.Read32LE(q[:]))
		return s
	}
	s.init(endian.Read32LE(seed))
	s.Update(seed[4:])
	s.Result()
	return s
}

func (s *State32) init(seed uint32) {
	s.v1 = seed + prime32_1 + prime32_2
	s.v2 = seed + prime32_2
	s.v3 = seed
	s.v4 = seed - prime32_1
	s.buffer = [block32]byte{}
	s.m = 0
	s.n = 0
}

func (s *State32) block(p []byte) {
	s.v1 = round32(s.v1, endian.Read32LE(p[0:]))
	s.v2 = round32(s.v2, endian.Read32LE(p[4:]))
	s.v3 = round32(s.v3, endian.Read32LE(p[8:]))
	s.v4 = round32(s.v4, endian.Read32LE(p[12:]))
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

// Result returns the XXH32 value of the input so far. The lanes are kept
// and the length advanced to the next block boundary, so calling Result
// again yields a new value.
func (s *State32) Result() uint32 {
	var h uint32
	if s.n >= block32 {
		h = endian.Rotl32(s.v1, 1) + endian.Rotl32(s.v2, 7) +
			endian.Rotl32(s.v3, 12) + endian.Rotl32(s.v4, 18)
	} else {
		h = s.v3 + prime32_5
	}
	h += uint32(s.n)

	p := s.buffer[:s.m]
	for ; len(p) >= 4; p = p[4:] {
		h += endian.Read32LE(p) * prime32_3
		h = endian.Rotl32(h, 17) * prime32_4
	}
	for _, b := range p {
		h += uint32(b) * prime32_5
		h = endian.Rotl32(h, 11) * prime32_1
	}

	s.n += uint64(block32 - s.m)
	s.m = 0
	endian.Zero(s.buffer[:])

	return avalanche32(h)
}

// Reset restores the seed 0 state.
func (s *State32) Reset() { s.init(0) }

// Size returns the result width in bytes.
func (*State32) Size() int { return 4 }

// BlockSize returns the stripe length.
func (*State32) BlockSize() int { return block32 }

func round64(acc, input uint64) uint64 {
	acc += input * prime64_2
	acc = endian.Rotl64(acc, 31)
	return acc * prime64_1
}

func mergeRound64(acc, val uint64) uint64 {
	acc ^= round64(0, val)
	return acc*prime64_1 + prime64_4
}

func avalanche64(h uint64) uint64 {
	h ^= h >> 33
	h *= prime64_2
	h ^= h >> 29
	h *= prime64_3
	h ^= h >> 32
	return h
}

// State64 is an XXH64 state.
type State64 struct {
	v1, v2, v3, v4 uint64
	buffer         [block64]byte
	m              int
	n              uint64
}

// New64 returns an XXH64 state with seed 0.
func New64() *State64 {
	s := &State64{}
	s.init(0)
	return s
}

// New64WithSeed returns an XXH64 state for seed.
func New64WithSeed(seed uint64) *State64 {
	s := &State64{}
	s.init(seed)
	return s
}

// New64WithSeedBytes returns an XXH64 state for a byte seed. Up to 8 bytes
// form a little endian seed word; longer seeds use the first 8 bytes as the
// seed word and absorb the rest.
func New64WithSeedBytes(seed []byte) *State64 {
	s := &State64{}
	if len(seed) <= 8 {
		var q [8]byte
		copy(q[:], seed)
		s.init(endian.Read64LE(q[:]))
		return s
	}
	s.init(endian.Read64LE(seed))
	s.Update(seed[8:])
	s.Result()
	return s
}

func (s *State64) init(seed uint64) {
	s.v1 = seed + prime64_1 + prime64_2
	s.v2 = seed + prime64_2
	s.v3 = seed
	s.v4 = seed - prime64_1
	s.buffer = [block64]byte{}
	s.m = 0
	s.n = 0
}

func (s *State64) block(p []byte) {
	s.v1 = round64(s.v1, endian.Read64LE(p[0:]))
	s.v2 = round64(s.v2, endian.Read64LE(p[8:]))
	s.v3 = round64(s.v3, endian.Read64LE(p[16:]))
	s.v4 = round64(s.v4, endian.Read64LE(p[24:]))
}

// Update absorbs p.
func (s *State64) Update(p []byte) {
	if len(p) == 0 {
		return
	}
	s.n += uint64(len(p))

	if s.m > 0 {
		k := copy(s.buffer[s.m:], p)
		s.m += k
		p = p[k:]
		if s.m < block64 {
			return
		}
		s.block(s.buffer[:])
		s.m = 0
	}

	for len(p) >= block64 {
		s.block(p)
		p = p[block64:]
	}

	if len(p) > 0 {
		s.m = copy(s.buffer[:], p)
	}
}

// Write implements io.Writer. It never fails.
func (s *State64) Write(p []byte) (int, error) {
	s.Update(p)
	return len(p), nil
}

// Result returns the XXH64 value of the input so far and advances the
// length to the next block boundary.
func (s *State64) Result() uint64 {
	var h uint64
	if s.n >= block64 {
		h = endian.Rotl64(s.v1, 1) + endian.Rotl64(s.v2, 7) +
			endian.Rotl64(s.v3, 12) + endian.Rotl64(s.v4, 18)
		h = mergeRound64(h, s.v1)
		h = mergeRound64(h, s.v2)
		h = mergeRound64(h, s.v3)
		h = mergeRound64(h, s.v4)
	} else {
		h = s.v3 + prime64_5
	}
	h += s.n

	p := s.buffer[:s.m]
	for ; len(p) >= 8; p = p[8:] {
		h ^= round64(0, endian.Read64LE(p))
		h = endian.Rotl64(h, 27)*prime64_1 + prime64_4
	}
	if len(p) >= 4 {
		h ^= uint64(endian.Read32LE(p)) * prime64_1
		h = endian.Rotl64(h, 23)*prime64_2 + prime64_3
		p = p[4:]
	}
	for _, b := range p {
		h ^= uint64(b) * prime64_5
		h = endian.Rotl64(h, 11) * prime64_1
	}

	s.n += uint64(block64 - s.m)
	s.m = 0
	endian.Zero(s.buffer[:])

	return avalanche64(h)
}

// Reset restores the seed 0 state.
func (s *State64) Reset() { s.init(0) }

// Size returns the result width in bytes.
func (*State64) Size() int { return 8 }

// BlockSize returns the stripe length.
func (*State64) BlockSize() int { return block64 }
