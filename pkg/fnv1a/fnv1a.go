// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package fnv1a implements the 32 and 64 bit FNV-1a hashes as incremental
// states. Unlike hash/fnv, Result advances the state, so successive calls
// without an intervening Update return distinct values.
package fnv1a

const (
	offset32 uint32 = 0x811c9dc5
	prime32  uint32 = 0x01000193
	offset64 uint64 = 0xcbf29ce484222325
	prime64  uint64 = 0x00000100000001b3
)

type word interface {
	~uint32 | ~uint64
}

// core is the shared FNV-1a state, parameterised by the word width.
type core[W word] struct {
	st W
}

func (c *core[W]) update(p []byte, prime W) {
	st := c.st
	for _, b := range p {
		st = (st ^ W(b)) * prime
	}
	c.st = st
}

func (c *core[W]) result(prime W) W {
	r := c.st
	c.st = (c.st ^ 0xff) * prime
	return r
}

// seedBytes returns the little endian encoding of seed, 4 bytes wide when
// it fits in 32 bits and 8 bytes wide otherwise.
func seedBytes(seed uint64) []byte {
	b := []byte{
		byte(seed), byte(seed >> 8), byte(seed >> 16), byte(seed >> 24),
		byte(seed >> 32), byte(seed >> 40), byte(seed >> 48), byte(seed >> 56),
	}
	if seed>>32 == 0 {
		return b[:4]
	}
	return b
}

// State32 is an FNV-1a 32-bit hash state.
type State32 struct {
	core[uint32]
}

// New32 returns a default FNV-1a 32-bit state.
func New32() *State32 {
	return &State32{core[uint32]{st: offset32}}
}

// New32WithSeed returns a state that has absorbed seed. A zero seed gives
// the default state.
func New32WithSeed(seed uint64) *State32 {
	s := New32()
	if seed != 0 {
		s.Update(seedBytes(seed))
	}
	return s
}

// New32WithSeedBytes returns a state that has absorbed seed.
func New32WithSeedBytes(seed []byte) *State32 {
	s := New32()
	s.Update(seed)
	return s
}

// Update absorbs p.
func (s *State32) Update(p []byte) { s.update(p, prime32) }

// Write implements io.Writer. It never fails.
func (s *State32) Write(p []byte) (int, error) {
	s.Update(p)
	return len(p), nil
}

// Result returns the current hash value and advances the state.
func (s *State32) Result() uint32 { return s.result(prime32) }

// Reset restores the default state.
func (s *State32) Reset() { s.st = offset32 }

// Size returns the result width in bytes.
func (*State32) Size() int { return 4 }

// BlockSize returns 1: FNV-1a consumes input a byte at a time.
func (*State32) BlockSize() int { return 1 }

// State64 is an FNV-1a 64-bit hash state.
type State64 struct {
	core[uint64]
}

// New64 returns a default FNV-1a 64-bit state.
func New64() *State64 {
	return &State64{core[uint64]{st: offset64}}
}

// New64WithSeed returns a state that has absorbed seed. A zero seed gives
// the default state.
func New64WithSeed(seed uint64) *State64 {
	s := New64()
	if seed != 0 {
		s.Update(seedBytes(seed))
	}
	return s
}

// New64WithSeedBytes returns a state that has absorbed seed.
func New64WithSeedBytes(seed []byte) *State64 {
	s := New64()
	s.Update(seed)
	return s
}

// Update absorbs p.
func (s *State64) Update(p []byte) { s.update(p, prime64) }

// Write implements io.Writer. It never fails.
func (s *State64) Write(p []byte) (int, error) {
	s.Update(p)
	return len(p), nil
}

// Result returns the current hash value and advances the state.
func (s *State64) Result() uint64 { return s.result(prime64) }

// Reset restores the default state.
func (s *State64) Reset() { s.st = offset64 }

// Size returns the result width in bytes.
func (*State64) Size() int { return 8 }

// BlockSize returns 1: FNV-1a consumes input a byte at a time.
func (*State64) BlockSize() int { return 1 }
