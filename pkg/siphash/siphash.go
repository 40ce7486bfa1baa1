// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package siphash implements SipHash-2-4 (64-bit) and HalfSipHash-2-4
// (32-bit) as keyed incremental states.
package siphash

import "github.com/ChainSafe/hash2/internal/endian"

const (
	block64 = 8
	block32 = 4
)

// State64 is a SipHash-2-4 state with a 128-bit key.
type State64 struct {
	v0, v1, v2, v3 uint64
	buffer         [block64]byte
	m              int
	n              uint64
}

// New64 returns a state keyed with zeroes.
func New64() *State64 {
	return New64WithKeys(0, 0)
}

// New64WithSeed returns a state keyed with k0 = seed and k1 = 0.
func New64WithSeed(seed uint64) *State64 {
	return New64WithKeys(seed, 0)
}

// New64WithKeys returns a state keyed with the two 64-bit key halves.
func New64WithKeys(k0, k1 uint64) *State64 {
	s := &State64{}
	s.init(k0, k1)
	return s
}

// New64WithSeedBytes returns a state for a byte seed. Seeds of up to 16
// bytes are the zero padded little endian key. Longer seeds are absorbed
// in full by a zero keyed state which is then finalised.
func New64WithSeedBytes(seed []byte) *State64 {
	if len(seed) <= 16 {
		var q [16]byte
		copy(q[:], seed)
		return New64WithKeys(endian.Read64LE(q[0:]), endian.Read64LE(q[8:]))
	}
	s := New64()
	s.Update(seed)
	s.Result()
	return s
}

func (s *State64) init(k0, k1 uint64) {
	s.v0 = 0x736f6d6570736575 ^ k0
	s.v1 = 0x646f72616e646f6d ^ k1
	s.v2 = 0x6c7967656e657261 ^ k0
	s.v3 = 0x7465646279746573 ^ k1
	s.buffer = [block64]byte{}
	s.m = 0
	s.n = 0
}

func (s *State64) sipround() {
	s.v0 += s.v1
	s.v1 = endian.Rotl64(s.v1, 13)
	s.v1 ^= s.v0
	s.v0 = endian.Rotl64(s.v0, 32)

	s.v2 += s.v3
	s.v3 = endian.Rotl64(s.v3, 16)
	s.v3 ^= s.v2

	s.v0 += s.v3
	s.v3 = endian.Rotl64(s.v3, 21)
	s.v3 ^= s.v0

	s.v2 += s.v1
	s.v1 = endian.Rotl64(s.v1, 17)
	s.v1 ^= s.v2
	s.v2 = endian.Rotl64(s.v2, 32)
}

func (s *State64) block(p []byte) {
	m := endian.Read64LE(p)
	s.v3 ^= m
	s.sipround()
	s.sipround()
	s.v0 ^= m
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

// Result returns the SipHash-2-4 value of the input so far. The
// finalisation rounds stay in the state and the length is advanced to the
// next block boundary.
func (s *State64) Result() uint64 {
	endian.Zero(s.buffer[s.m:])
	s.buffer[7] = byte(s.n)
	s.block(s.buffer[:])

	s.v2 ^= 0xff
	s.sipround()
	s.sipround()
	s.sipround()
	s.sipround()

	s.n += uint64(block64 - s.m)
	s.m = 0
	endian.Zero(s.buffer[:])

	return s.v0 ^ s.v1 ^ s.v2 ^ s.v3
}

// Reset restores the zero key state.
func (s *State64) Reset() { s.init(0, 0) }

// Size returns the result width in bytes.
func (*State64) Size() int { return 8 }

// BlockSize returns the word length consumed per compression.
func (*State64) BlockSize() int { return block64 }

// State32 is a HalfSipHash-2-4 state with a 64-bit key.
type State32 struct {
	v0, v1, v2, v3 uint32
	buffer         [block32]byte
	m              int
	n              uint32
}

// New32 returns a state keyed with zeroes.
func New32() *State32 {
	return New32WithKeys(0, 0)
}

// New32WithSeed returns a state keyed with the low and high halves of seed.
func New32WithSeed(seed uint64) *State32 {
	return New32WithKeys(uint32(seed), uint32(seed>>32))
}

// New32WithKeys returns a state keyed with the two 32-bit key halves.
func New32WithKeys(k0, k1 uint32) *State32 {
	s := &State32{}
	s.init(k0, k1)
	return s
}

// New32WithSeedBytes returns a state for a byte seed. Seeds of up to 8
// bytes are the zero padded little endian key. Longer seeds are absorbed
// in full by a zero keyed state which is then finalised.
func New32WithSeedBytes(seed []byte) *State32 {
	if len(seed) <= 8 {
		var q [8]byte
		copy(q[:], seed)
		return New32WithKeys(endian.Read32LE(q[0:]), endian.Read32LE(q[4:]))
	}
	s := New32()
	s.Update(seed)
	s.Result()
	return s
}

func (s *State32) init(k0, k1 uint32) {
	s.v0 = k0
	s.v1 = k1
	s.v2 = 0x6c796765 ^ k0
	s.v3 = 0x74656462 ^ k1
	s.buffer = [block32]byte{}
	s.m = 0
	s.n = 0
}

func (s *State32) sipround() {
	s.v0 += s.v1
	s.v1 = endian.Rotl32(s.v1, 5)
	s.v1 ^= s.v0
	s.v0 = endian.Rotl32(s.v0, 16)

	s.v2 += s.v3
	s.v3 = endian.Rotl32(s.v3, 8)
	s.v3 ^= s.v2

	s.v0 += s.v3
	s.v3 = endian.Rotl32(s.v3, 7)
	s.v3 ^= s.v0

	s.v2 += s.v1
	s.v1 = endian.Rotl32(s.v1, 13)
	s.v1 ^= s.v2
	s.v2 = endian.Rotl32(s.v2, 16)
}

func (s *State32) block(p []byte) {
	m := endian.Read32LE(p)
	s.v3 ^= m
	s.sipround()
	s.sipround()
	s.v0 ^= m
}

// Update absorbs p.
func (s *State32) Update(p []byte) {
	if len(p) == 0 {
		return
	}
	s.n += uint32(len(p))

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

// Result returns the HalfSipHash-2-4 value of the input so far and
// advances the length to the next block boundary.
func (s *State32) Result() uint32 {
	endian.Zero(s.buffer[s.m:])
	s.buffer[3] = byte(s.n)
	s.block(s.buffer[:])

	s.v2 ^= 0xff
	s.sipround()
	s.sipround()
	s.sipround()
	s.sipround()

	s.n += uint32(block32 - s.m)
	s.m = 0
	endian.Zero(s.buffer[:])

	return s.v1 ^ s.v3
}

// Reset restores the zero key state.
func (s *State32) Reset() { s.init(0, 0) }

// Size returns the result width in bytes.
func (*State32) Size() int { return 4 }

// BlockSize returns the word length consumed per compression.
func (*State32) BlockSize() int { return block32 }
