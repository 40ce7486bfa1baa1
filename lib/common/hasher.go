// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package common holds one-shot helpers hashing a whole byte slice with
// the algorithms of this module.
package common

import (
	"github.com/ChainSafe/hash2/internal/endian"
	"github.com/ChainSafe/hash2/pkg/digest"
	"github.com/ChainSafe/hash2/pkg/fnv1a"
	"github.com/ChainSafe/hash2/pkg/hmac"
	"github.com/ChainSafe/hash2/pkg/md5"
	"github.com/ChainSafe/hash2/pkg/murmur3"
	"github.com/ChainSafe/hash2/pkg/ripemd160"
	"github.com/ChainSafe/hash2/pkg/sha1"
	"github.com/ChainSafe/hash2/pkg/sha2"
	"github.com/ChainSafe/hash2/pkg/siphash"
	"github.com/ChainSafe/hash2/pkg/xxhash"
)

// Md5 returns the MD5 digest of the input data
func Md5(in []byte) digest.Digest128 {
	h := md5.New()
	h.Update(in)
	return h.Result()
}

// Sha1 returns the SHA-1 digest of the input data
func Sha1(in []byte) digest.Digest160 {
	h := sha1.New()
	h.Update(in)
	return h.Result()
}

// Sha256 returns the SHA2-256 digest of the input data
func Sha256(in []byte) digest.Digest256 {
	h := sha2.New256()
	h.Update(in)
	return h.Result()
}

// Sha512 returns the SHA2-512 digest of the input data
func Sha512(in []byte) digest.Digest512 {
	h := sha2.New512()
	h.Update(in)
	return h.Result()
}

// Ripemd160 returns the RIPEMD-160 digest of the input data
func Ripemd160(in []byte) digest.Digest160 {
	h := ripemd160.New()
	h.Update(in)
	return h.Result()
}

// HmacSha256 returns the HMAC-SHA-256 of the input data under key
func HmacSha256(key, in []byte) digest.Digest256 {
	h := hmac.NewSHA256(key)
	h.Update(in)
	return h.Result()
}

// Fnv1a32 returns the 32-bit FNV-1a hash of the input data
func Fnv1a32(in []byte) uint32 {
	h := fnv1a.New32()
	h.Update(in)
	return h.Result()
}

// Fnv1a64 returns the 64-bit FNV-1a hash of the input data
func Fnv1a64(in []byte) uint64 {
	h := fnv1a.New64()
	h.Update(in)
	return h.Result()
}

// Murmur3x128 returns the 128-bit MurmurHash3 of the input data
func Murmur3x128(in []byte, seed uint64) digest.Digest128 {
	h := murmur3.New128WithSeed(seed)
	h.Update(in)
	return h.Result()
}

// SipHash64 returns the SipHash-2-4 of the input data under the 128-bit key
// k0, k1
func SipHash64(k0, k1 uint64, in []byte) uint64 {
	h := siphash.New64WithKeys(k0, k1)
	h.Update(in)
	return h.Result()
}

// XXHash64 returns the xxHash64 of the input data
func XXHash64(in []byte, seed uint64) uint64 {
	h := xxhash.New64WithSeed(seed)
	h.Update(in)
	return h.Result()
}

// twox concatenates the little endian xxHash64 of in for the seeds
// 0 to len(out)/8-1.
func twox(out, in []byte) {
	for i := 0; i*8 < len(out); i++ {
		endian.Put64LE(out[i*8:], XXHash64(in, uint64(i)))
	}
}

// Twox64 returns the xx64 hash of the input data
func Twox64(in []byte) (out [8]byte) {
	twox(out[:], in)
	return out
}

// Twox128 computes xxHash64 twice with seeds 0 and 1 applied on given byte array
func Twox128(in []byte) digest.Digest128 {
	var d digest.Digest128
	twox(d[:], in)
	return d
}

// Twox256 returns the twox256 hash of the input data
func Twox256(in []byte) digest.Digest256 {
	var d digest.Digest256
	twox(d[:], in)
	return d
}
