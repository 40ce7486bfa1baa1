// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sha2

import (
	"github.com/ChainSafe/hash2/internal/endian"
	"github.com/ChainSafe/hash2/pkg/digest"
)

// BlockSize256 is the block length of SHA-224 and SHA-256 in bytes.
const BlockSize256 = 64

var iv224 = [8]uint32{
	0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
	0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
}

var iv256 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// core256 is the SHA-256 compression state shared by SHA-224 and SHA-256.
type core256 struct {
	h      [8]uint32
	buffer [BlockSize256]byte
	m      int
	n      uint64
}

func (c *core256) reset(iv *[8]uint32) {
	c.h = *iv
	c.buffer = [BlockSize256]byte{}
	c.m = 0
	c.n = 0
}

func (c *core256) block(p []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = endian.Read32BE(p[4*i:])
	}
	for i := 16; i < 64; i++ {
		v1 := w[i-2]
		t1 := endian.Rotr32(v1, 17) ^ endian.Rotr32(v1, 19) ^ (v1 >> 10)
		v2 := w[i-15]
		t2 := endian.Rotr32(v2, 7) ^ endian.Rotr32(v2, 18) ^ (v2 >> 3)
		w[i] = t1 + w[i-7] + t2 + w[i-16]
	}

	a, b, c2, d, e, f, g, h := c.h[0], c.h[1], c.h[2], c.h[3], c.h[4], c.h[5], c.h[6], c.h[7]

	for i := 0; i < 64; i++ {
		t1 := h + (endian.Rotr32(e, 6) ^ endian.Rotr32(e, 11) ^ endian.Rotr32(e, 25)) +
			((e & f) ^ (^e & g)) + k256[i] + w[i]
		t2 := (endian.Rotr32(a, 2) ^ endian.Rotr32(a, 13) ^ endian.Rotr32(a, 22)) +
			((a & b) ^ (a & c2) ^ (b & c2))

		h = g
		g = f
		f = e
		e = d + t1
		d = c2
		c2 = b
		b = a
		a = t1 + t2
	}

	c.h[0] += a
	c.h[1] += b
	c.h[2] += c2
	c.h[3] += d
	c.h[4] += e
	c.h[5] += f
	c.h[6] += g
	c.h[7] += h
}

func (c *core256) update(p []byte) {
	if len(p) == 0 {
		return
	}
	c.n += uint64(len(p))

	if c.m > 0 {
		k := copy(c.buffer[c.m:], p)
		c.m += k
		p = p[k:]
		if c.m < BlockSize256 {
			return
		}
		c.block(c.buffer[:])
		c.m = 0
		endian.Zero(c.buffer[:])
	}

	for len(p) >= BlockSize256 {
		c.block(p)
		p = p[BlockSize256:]
	}

	if len(p) > 0 {
		c.m = copy(c.buffer[:], p)
	}
}

// pad absorbs the 0x80 marker, zero fill and the big endian bit length.
func (c *core256) pad() {
	var length [8]byte
	endian.Put64BE(length[:], c.n*8)

	k := 56 - c.m
	if c.m >= 56 {
		k = 120 - c.m
	}

	var padding [BlockSize256]byte
	padding[0] = 0x80
	c.update(padding[:k])
	c.update(length[:])
}

func (c *core256) seed(seed uint64) {
	if seed != 0 {
		var q [8]byte
		endian.Put64LE(q[:], seed)
		c.update(q[:])
		c.pad()
	}
}

func (c *core256) seedBytes(seed []byte) {
	if len(seed) != 0 {
		c.update(seed)
		c.pad()
	}
}

func (c *core256) sum(out []byte) {
	for i := 0; i < len(out)/4; i++ {
		endian.Put32BE(out[4*i:], c.h[i])
	}
}

// State256 is a SHA-256 state.
type State256 struct {
	core256
}

// New256 returns a fresh SHA-256 state.
func New256() *State256 {
	s := &State256{}
	s.Reset()
	return s
}

// New256WithSeed returns a state that has absorbed the 8 little endian
// bytes of a non-zero seed and been finalised.
func New256WithSeed(seed uint64) *State256 {
	s := New256()
	s.seed(seed)
	return s
}

// New256WithSeedBytes returns a state that has absorbed a non-empty seed
// and been finalised.
func New256WithSeedBytes(seed []byte) *State256 {
	s := New256()
	s.seedBytes(seed)
	return s
}

// Update absorbs p.
func (s *State256) Update(p []byte) { s.update(p) }

// Write implements io.Writer. It never fails.
func (s *State256) Write(p []byte) (int, error) {
	s.update(p)
	return len(p), nil
}

// Result pads the message through the state and returns the digest.
func (s *State256) Result() (d digest.Digest256) {
	s.pad()
	s.sum(d[:])
	return d
}

// Reset restores the initial state.
func (s *State256) Reset() { s.reset(&iv256) }

// Size returns the digest length in bytes.
func (*State256) Size() int { return 32 }

// BlockSize returns the block length in bytes.
func (*State256) BlockSize() int { return BlockSize256 }

// State224 is a SHA-224 state.
type State224 struct {
	core256
}

// New224 returns a fresh SHA-224 state.
func New224() *State224 {
	s := &State224{}
	s.Reset()
	return s
}

// New224WithSeed returns a state that has absorbed the 8 little endian
// bytes of a non-zero seed and been finalised.
func New224WithSeed(seed uint64) *State224 {
	s := New224()
	s.seed(seed)
	return s
}

// New224WithSeedBytes returns a state that has absorbed a non-empty seed
// and been finalised.
func New224WithSeedBytes(seed []byte) *State224 {
	s := New224()
	s.seedBytes(seed)
	return s
}

// Update absorbs p.
func (s *State224) Update(p []byte) { s.update(p) }

// Write implements io.Writer. It never fails.
func (s *State224) Write(p []byte) (int, error) {
	s.update(p)
	return len(p), nil
}

// Result pads the message through the state and returns the first 28
// bytes of the chaining value.
func (s *State224) Result() (d digest.Digest224) {
	s.pad()
	s.sum(d[:])
	return d
}

// Reset restores the initial state.
func (s *State224) Reset() { s.reset(&iv224) }

// Size returns the digest length in bytes.
func (*State224) Size() int { return 28 }

// BlockSize returns the block length in bytes.
func (*State224) BlockSize() int { return BlockSize256 }
