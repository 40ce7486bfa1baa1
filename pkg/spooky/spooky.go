// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package spooky implements the 128-bit SpookyHash V2 as an incremental
// state. Inputs shorter than 192 bytes take the short path; longer inputs
// are mixed 96 bytes at a time.
package spooky

import (
	"github.com/ChainSafe/hash2/internal/endian"
	"github.com/ChainSafe/hash2/pkg/digest"
)

const (
	numVars   = 12
	blockSize = numVars * 8
	bufSize   = 2 * blockSize

	scConst uint64 = 0xdeadbeefdeadbeef
)

var (
	mixRotations        = [numVars]int{11, 32, 43, 31, 17, 28, 39, 57, 55, 54, 22, 46}
	endPartialRotations = [numVars]int{44, 15, 34, 21, 38, 33, 10, 13, 38, 53, 42, 54}
	shortMixRotations   = [12]int{50, 52, 30, 41, 54, 48, 38, 37, 62, 34, 5, 36}
	shortEndRotations   = [11]int{15, 52, 26, 51, 28, 9, 47, 54, 32, 25, 63}
)

// mix absorbs one 96-byte block into s.
func mix(data []byte, s *[numVars]uint64) {
	_ = data[blockSize-1]
	for i := 0; i < numVars; i++ {
		s[i] += endian.Read64LE(data[8*i:])
		s[(i+2)%numVars] ^= s[(i+10)%numVars]
		s[(i+11)%numVars] ^= s[i]
		s[i] = endian.Rotl64(s[i], mixRotations[i])
		s[(i+11)%numVars] += s[(i+1)%numVars]
	}
}

func endPartial(h *[numVars]uint64) {
	for i := 0; i < numVars; i++ {
		a, b, c := (i+11)%numVars, (i+1)%numVars, (i+2)%numVars
		h[a] += h[b]
		h[c] ^= h[a]
		h[b] = endian.Rotl64(h[b], endPartialRotations[i])
	}
}

// end absorbs the final padded block and runs the finalisation rounds.
func end(data []byte, h *[numVars]uint64) {
	for i := 0; i < numVars; i++ {
		h[i] += endian.Read64LE(data[8*i:])
	}
	endPartial(h)
	endPartial(h)
	endPartial(h)
}

func shortMix(h *[4]uint64) {
	for i, r := range shortMixRotations {
		a, b, c := (i+2)%4, (i+3)%4, i%4
		h[a] = endian.Rotl64(h[a], r)
		h[a] += h[b]
		h[c] ^= h[a]
	}
}

func shortEnd(h *[4]uint64) {
	for i, r := range shortEndRotations {
		a, b := (i+3)%4, (i+2)%4
		h[a] ^= h[b]
		h[b] = endian.Rotl64(h[b], r)
		h[a] += h[b]
	}
}

// short hashes a message of fewer than 192 bytes.
func short(msg []byte, seed1, seed2 uint64) (uint64, uint64) {
	length := len(msg)
	rem := length % 32
	h := [4]uint64{seed1, seed2, scConst, scConst}

	if length > 15 {
		for ; len(msg) >= 32; msg = msg[32:] {
			h[2] += endian.Read64LE(msg[0:])
			h[3] += endian.Read64LE(msg[8:])
			shortMix(&h)
			h[0] += endian.Read64LE(msg[16:])
			h[1] += endian.Read64LE(msg[24:])
		}
		if rem >= 16 {
			h[2] += endian.Read64LE(msg[0:])
			h[3] += endian.Read64LE(msg[8:])
			shortMix(&h)
			msg = msg[16:]
			rem -= 16
		}
	}

	h[3] += uint64(length) << 56
	if rem == 0 {
		h[2] += scConst
		h[3] += scConst
	} else {
		var q [16]byte
		copy(q[:], msg[:rem])
		h[2] += endian.Read64LE(q[0:])
		h[3] += endian.Read64LE(q[8:])
	}

	shortEnd(&h)
	return h[0], h[1]
}

// State is a SpookyHash V2 state producing 128-bit digests.
type State struct {
	data      [bufSize]byte
	state     [numVars]uint64
	length    uint64
	remainder int
}

// New returns a state with both seeds 0.
func New() *State {
	return &State{}
}

// NewWithSeed returns a state using seed for both seed words.
func NewWithSeed(seed uint64) *State {
	return NewWithSeeds(seed, seed)
}

// NewWithSeeds returns a state with two independent seed words.
func NewWithSeeds(seed1, seed2 uint64) *State {
	s := &State{}
	s.state[0] = seed1
	s.state[1] = seed2
	return s
}

// NewWithSeedBytes returns a state for a byte seed. Up to 16 bytes give
// the two zero padded little endian seed words; longer seeds use the first
// 16 bytes as seed words and absorb the rest.
func NewWithSeedBytes(seed []byte) *State {
	if len(seed) <= 16 {
		var q [16]byte
		copy(q[:], seed)
		return NewWithSeeds(endian.Read64LE(q[0:]), endian.Read64LE(q[8:]))
	}
	s := NewWithSeeds(endian.Read64LE(seed[0:]), endian.Read64LE(seed[8:]))
	s.Update(seed[16:])
	s.Result()
	return s
}

// Update absorbs p.
func (s *State) Update(p []byte) {
	if len(p) == 0 {
		return
	}

	newLength := len(p) + s.remainder
	if newLength < bufSize {
		copy(s.data[s.remainder:], p)
		s.length += uint64(len(p))
		s.remainder = newLength
		return
	}

	var h [numVars]uint64
	if s.length < bufSize {
		for i := 0; i < numVars; i += 3 {
			h[i] = s.state[0]
			h[i+1] = s.state[1]
			h[i+2] = scConst
		}
	} else {
		h = s.state
	}
	s.length += uint64(len(p))

	if s.remainder > 0 {
		prefix := bufSize - s.remainder
		copy(s.data[s.remainder:], p[:prefix])
		mix(s.data[:blockSize], &h)
		mix(s.data[blockSize:], &h)
		p = p[prefix:]
	}

	for len(p) >= blockSize {
		mix(p, &h)
		p = p[blockSize:]
	}

	s.remainder = copy(s.data[:], p)
	s.state = h
}

// Write implements io.Writer. It never fails.
func (s *State) Write(p []byte) (int, error) {
	s.Update(p)
	return len(p), nil
}

// Result returns the two hash words as a little endian digest. The state
// is then re-seeded with those words, so a following Result differs.
func (s *State) Result() digest.Digest128 {
	var h1, h2 uint64

	if s.length < bufSize {
		h1, h2 = short(s.data[:s.length], s.state[0], s.state[1])
	} else {
		h := s.state
		data := s.data[:]
		rem := s.remainder
		if rem >= blockSize {
			mix(data, &h)
			data = data[blockSize:]
			rem -= blockSize
		}

		var last [blockSize]byte
		copy(last[:], data[:rem])
		last[blockSize-1] = byte(rem)
		end(last[:], &h)
		endian.Zero(last[:])

		h1, h2 = h[0], h[1]
	}

	endian.Zero(s.data[:])
	s.state = [numVars]uint64{h1, h2}
	s.length = 0
	s.remainder = 0

	var d digest.Digest128
	endian.Put64LE(d[0:], h1)
	endian.Put64LE(d[8:], h2)
	return d
}

// Reset restores the zero seed state.
func (s *State) Reset() { *s = State{} }

// Size returns the digest length in bytes.
func (*State) Size() int { return 16 }

// BlockSize returns the length of one mixing block.
func (*State) BlockSize() int { return blockSize }
