// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package hmac implements RFC 2104 keyed hashing over any digest state of
// this module.
package hmac

import (
	"github.com/ChainSafe/hash2/internal/endian"
	"github.com/ChainSafe/hash2/pkg/digest"
)

const (
	ipad = 0x36
	opad = 0x5c

	maxBlockSize = 128
)

// State is the contract a digest state must satisfy to be keyed.
type State[T any, D digest.Digest] interface {
	*T
	Update(p []byte)
	Result() D
	Reset()
	BlockSize() int
	Size() int
}

// HMAC keys the digest state T. The value holds both underlying states
// directly, so assigning an HMAC copies it.
type HMAC[T any, D digest.Digest, PT State[T, D]] struct {
	inner T
	outer T
}

// New returns an HMAC keyed with key. Keys longer than the block size are
// first hashed.
func New[T any, D digest.Digest, PT State[T, D]](key []byte) *HMAC[T, D, PT] {
	h := &HMAC[T, D, PT]{}
	h.init(key)
	return h
}

// NewWithSeed returns an HMAC keyed with the 8 little endian bytes of seed,
// or with the empty key when seed is zero.
func NewWithSeed[T any, D digest.Digest, PT State[T, D]](seed uint64) *HMAC[T, D, PT] {
	if seed == 0 {
		return New[T, D, PT](nil)
	}
	var q [8]byte
	endian.Put64LE(q[:], seed)
	return New[T, D, PT](q[:])
}

func (h *HMAC[T, D, PT]) init(key []byte) {
	inner, outer := PT(&h.inner), PT(&h.outer)
	inner.Reset()
	outer.Reset()

	bs := inner.BlockSize()

	var k [maxBlockSize]byte
	if len(key) <= bs {
		copy(k[:], key)
	} else {
		var t T
		kh := PT(&t)
		kh.Reset()
		kh.Update(key)
		copy(k[:], kh.Result().Bytes())
		kh.Reset()
	}

	for i := 0; i < bs; i++ {
		k[i] ^= ipad
	}
	inner.Update(k[:bs])

	for i := 0; i < bs; i++ {
		k[i] ^= ipad ^ opad
	}
	outer.Update(k[:bs])

	endian.Zero(k[:])
}

// Update absorbs p into the inner state.
func (h *HMAC[T, D, PT]) Update(p []byte) {
	PT(&h.inner).Update(p)
}

// Write implements io.Writer. It never fails.
func (h *HMAC[T, D, PT]) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// Result finalises the inner state, feeds its digest to the outer state and
// returns the outer digest. Both states advance, so consecutive results
// differ.
func (h *HMAC[T, D, PT]) Result() D {
	r := PT(&h.inner).Result()
	outer := PT(&h.outer)
	outer.Update(r.Bytes())
	return outer.Result()
}

// Size returns the digest length in bytes.
func (h *HMAC[T, D, PT]) Size() int { return PT(&h.inner).Size() }

// BlockSize returns the block length of the underlying digest.
func (h *HMAC[T, D, PT]) BlockSize() int { return PT(&h.inner).BlockSize() }
