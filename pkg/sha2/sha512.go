// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sha2

import (
	"github.com/ChainSafe/hash2/internal/endian"
	"github.com/ChainSafe/hash2/pkg/digest"
)

// BlockSize512 is the block length of the SHA-512 family in bytes.
const BlockSize512 = 128

var iv384 = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507,
	0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511,
	0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

var iv512 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var iv512_224 = [8]uint64{
	0x8c3d37c819544da2, 0x73e1996689dcd4d6,
	0x1dfab7ae32ff9c82, 0x679dd514582f9fcf,
	0x0f6d2b697bd44da8, 0x77e36f7304c48942,
	0x3f9d85a86a1d36c8, 0x1112e6ad91d692a1,
}

var iv512_256 = [8]uint64{
	0x22312194fc2bf72c, 0x9f555fa3c84c64c2,
	0x2393b86b6f53b151, 0x963877195940eabd,
	0x96283ee2a88effe3, 0xbe5e1e2553863992,
	0x2b0199fc2c85b8aa, 0x0eb72ddc81c52ca2,
}

var k512 = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// core512 is the SHA-512 compression state shared by SHA-384, SHA-512
// and the truncated SHA-512/t variants.
type core512 struct {
	h      [8]uint64
	buffer [BlockSize512]byte
	m      int
	n      uint64
}

func (c *core512) reset(iv *[8]uint64) {
	c.h = *iv
	c.buffer = [BlockSize512]byte{}
	c.m = 0
	c.n = 0
}

func (c *core512) block(p []byte) {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		w[i] = endian.Read64BE(p[8*i:])
	}
	for i := 16; i < 80; i++ {
		v1 := w[i-2]
		t1 := endian.Rotr64(v1, 19) ^ endian.Rotr64(v1, 61) ^ (v1 >> 6)
		v2 := w[i-15]
		t2 := endian.Rotr64(v2, 1) ^ endian.Rotr64(v2, 8) ^ (v2 >> 7)
		w[i] = t1 + w[i-7] + t2 + w[i-16]
	}

	a, b, c2, d, e, f, g, h := c.h[0], c.h[1], c.h[2], c.h[3], c.h[4], c.h[5], c.h[6], c.h[7]

	for i := 0; i < 80; i++ {
		t1 := h + (endian.Rotr64(e, 14) ^ endian.Rotr64(e, 18) ^ endian.Rotr64(e, 41)) +
			((e & f) ^ (^e & g)) + k512[i] + w[i]
		t2 := (endian.Rotr64(a, 28) ^ endian.Rotr64(a, 34) ^ endian.Rotr64(a, 39)) +
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

func (c *core512) update(p []byte) {
	if len(p) == 0 {
		return
	}
	c.n += uint64(len(p))

	if c.m > 0 {
		k := copy(c.buffer[c.m:], p)
		c.m += k
		p = p[k:]
		if c.m < BlockSize512 {
			return
		}
		c.block(c.buffer[:])
		c.m = 0
		endian.Zero(c.buffer[:])
	}

	for len(p) >= BlockSize512 {
		c.block(p)
		p = p[BlockSize512:]
	}

	if len(p) > 0 {
		c.m = copy(c.buffer[:], p)
	}
}

// pad absorbs the 0x80 marker, zero fill and the 128-bit big endian bit
// length.
func (c *core512) pad() {
	var length [16]byte
	endian.Put64BE(length[0:], c.n>>61)
	endian.Put64BE(length[8:], c.n<<3)

	k := 112 - c.m
	if c.m >= 112 {
		k = 240 - c.m
	}

	var padding [BlockSize512]byte
	padding[0] = 0x80
	c.update(padding[:k])
	c.update(length[:])
}

func (c *core512) seed(seed uint64) {
	if seed != 0 {
		var q [8]byte
		endian.Put64LE(q[:], seed)
		c.update(q[:])
		c.pad()
	}
}

func (c *core512) seedBytes(seed []byte) {
	if len(seed) != 0 {
		c.update(seed)
		c.pad()
	}
}

// sum writes the leading len(out) bytes of the big endian chaining value.
func (c *core512) sum(out []byte) {
	var full [64]byte
	for i, v := range c.h {
		endian.Put64BE(full[8*i:], v)
	}
	copy(out, full[:])
}

// State512 is a SHA-512 state.
type State512 struct {
	core512
}

// New512 returns a fresh SHA-512 state.
func New512() *State512 {
	s := &State512{}
	s.Reset()
	return s
}

// New512WithSeed returns a state that has absorbed the 8 little endian
// bytes of a non-zero seed and been finalised.
func New512WithSeed(seed uint64) *State512 {
	s := New512()
	s.seed(seed)
	return s
}

// New512WithSeedBytes returns a state that has absorbed a non-empty seed
// and been finalised.
func New512WithSeedBytes(seed []byte) *State512 {
	s := New512()
	s.seedBytes(seed)
	return s
}

// Update absorbs p.
func (s *State512) Update(p []byte) { s.update(p) }

// Write implements io.Writer. It never fails.
func (s *State512) Write(p []byte) (int, error) {
	s.update(p)
	return len(p), nil
}

// Result pads the message through the state and returns the digest.
func (s *State512) Result() (d digest.Digest512) {
	s.pad()
	s.sum(d[:])
	return d
}

// Reset restores the initial state.
func (s *State512) Reset() { s.reset(&iv512) }

// Size returns the digest length in bytes.
func (*State512) Size() int { return 64 }

// BlockSize returns the block length in bytes.
func (*State512) BlockSize() int { return BlockSize512 }

// State384 is a SHA-384 state.
type State384 struct {
	core512
}

// New384 returns a fresh SHA-384 state.
func New384() *State384 {
	s := &State384{}
	s.Reset()
	return s
}

// New384WithSeed returns a state that has absorbed the 8 little endian
// bytes of a non-zero seed and been finalised.
func New384WithSeed(seed uint64) *State384 {
	s := New384()
	s.seed(seed)
	return s
}

// New384WithSeedBytes returns a state that has absorbed a non-empty seed
// and been finalised.
func New384WithSeedBytes(seed []byte) *State384 {
	s := New384()
	s.seedBytes(seed)
	return s
}

// Update absorbs p.
func (s *State384) Update(p []byte) { s.update(p) }

// Write implements io.Writer. It never fails.
func (s *State384) Write(p []byte) (int, error) {
	s.update(p)
	return len(p), nil
}

// Result pads the message through the state and returns the digest.
func (s *State384) Result() (d digest.Digest384) {
	s.pad()
	s.sum(d[:])
	return d
}

// Reset restores the initial state.
func (s *State384) Reset() { s.reset(&iv384) }

// Size returns the digest length in bytes.
func (*State384) Size() int { return 48 }

// BlockSize returns the block length in bytes.
func (*State384) BlockSize() int { return BlockSize512 }

// State512_224 is a SHA-512/224 state.
type State512_224 struct {
	core512
}

// New512_224 returns a fresh SHA-512/224 state.
func New512_224() *State512_224 {
	s := &State512_224{}
	s.Reset()
	return s
}

// New512_224WithSeed returns a state that has absorbed the 8 little endian
// bytes of a non-zero seed and been finalised.
func New512_224WithSeed(seed uint64) *State512_224 {
	s := New512_224()
	s.seed(seed)
	return s
}

// New512_224WithSeedBytes returns a state that has absorbed a non-empty
// seed and been finalised.
func New512_224WithSeedBytes(seed []byte) *State512_224 {
	s := New512_224()
	s.seedBytes(seed)
	return s
}

// Update absorbs p.
func (s *State512_224) Update(p []byte) { s.update(p) }

// Write implements io.Writer. It never fails.
func (s *State512_224) Write(p []byte) (int, error) {
	s.update(p)
	return len(p), nil
}

// Result pads the message through the state and returns the digest.
func (s *State512_224) Result() (d digest.Digest224) {
	s.pad()
	s.sum(d[:])
	return d
}

// Reset restores the initial state.
func (s *State512_224) Reset() { s.reset(&iv512_224) }

// Size returns the digest length in bytes.
func (*State512_224) Size() int { return 28 }

// BlockSize returns the block length in bytes.
func (*State512_224) BlockSize() int { return BlockSize512 }

// State512_256 is a SHA-512/256 state.
type State512_256 struct {
	core512
}

// New512_256 returns a fresh SHA-512/256 state.
func New512_256() *State512_256 {
	s := &State512_256{}
	s.Reset()
	return s
}

// New512_256WithSeed returns a state that has absorbed the 8 little endian
// bytes of a non-zero seed and been finalised.
func New512_256WithSeed(seed uint64) *State512_256 {
	s := New512_256()
	s.seed(seed)
	return s
}

// New512_256WithSeedBytes returns a state that has absorbed a non-empty
// seed and been finalised.
func New512_256WithSeedBytes(seed []byte) *State512_256 {
	s := New512_256()
	s.seedBytes(seed)
	return s
}

// Update absorbs p.
func (s *State512_256) Update(p []byte) { s.update(p) }

// Write implements io.Writer. It never fails.
func (s *State512_256) Write(p []byte) (int, error) {
	s.update(p)
	return len(p), nil
}

// Result pads the message through the state and returns the digest.
func (s *State512_256) Result() (d digest.Digest256) {
	s.pad()
	s.sum(d[:])
	return d
}

// Reset restores the initial state.
func (s *State512_256) Reset() { s.reset(&iv512_256) }

// Size returns the digest length in bytes.
func (*State512_256) Size() int { return 32 }

// BlockSize returns the block length in bytes.
func (*State512_256) BlockSize() int { return BlockSize512 }
