// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hmac

import (
	"github.com/ChainSafe/hash2/pkg/digest"
	"github.com/ChainSafe/hash2/pkg/md5"
	"github.com/ChainSafe/hash2/pkg/ripemd160"
	"github.com/ChainSafe/hash2/pkg/sha1"
	"github.com/ChainSafe/hash2/pkg/sha2"
)

type (
	// MD5 is HMAC-MD5.
	MD5 = HMAC[md5.State, digest.Digest128, *md5.State]
	// SHA1 is HMAC-SHA1.
	SHA1 = HMAC[sha1.State, digest.Digest160, *sha1.State]
	// SHA224 is HMAC-SHA-224.
	SHA224 = HMAC[sha2.State224, digest.Digest224, *sha2.State224]
	// SHA256 is HMAC-SHA-256.
	SHA256 = HMAC[sha2.State256, digest.Digest256, *sha2.State256]
	// SHA384 is HMAC-SHA-384.
	SHA384 = HMAC[sha2.State384, digest.Digest384, *sha2.State384]
	// SHA512 is HMAC-SHA-512.
	SHA512 = HMAC[sha2.State512, digest.Digest512, *sha2.State512]
	// SHA512_224 is HMAC-SHA-512/224.
	SHA512_224 = HMAC[sha2.State512_224, digest.Digest224, *sha2.State512_224]
	// SHA512_256 is HMAC-SHA-512/256.
	SHA512_256 = HMAC[sha2.State512_256, digest.Digest256, *sha2.State512_256]
	// RIPEMD160 is HMAC-RIPEMD-160.
	RIPEMD160 = HMAC[ripemd160.State, digest.Digest160, *ripemd160.State]
)

func NewMD5(key []byte) *MD5 { return New[md5.State, digest.Digest128, *md5.State](key) }

func NewMD5WithSeed(seed uint64) *MD5 {
	return NewWithSeed[md5.State, digest.Digest128, *md5.State](seed)
}

func NewSHA1(key []byte) *SHA1 { return New[sha1.State, digest.Digest160, *sha1.State](key) }

func NewSHA1WithSeed(seed uint64) *SHA1 {
	return NewWithSeed[sha1.State, digest.Digest160, *sha1.State](seed)
}

func NewSHA224(key []byte) *SHA224 {
	return New[sha2.State224, digest.Digest224, *sha2.State224](key)
}

func NewSHA224WithSeed(seed uint64) *SHA224 {
	return NewWithSeed[sha2.State224, digest.Digest224, *sha2.State224](seed)
}

func NewSHA256(key []byte) *SHA256 {
	return New[sha2.State256, digest.Digest256, *sha2.State256](key)
}

func NewSHA256WithSeed(seed uint64) *SHA256 {
	return NewWithSeed[sha2.State256, digest.Digest256, *sha2.State256](seed)
}

func NewSHA384(key []byte) *SHA384 {
	return New[sha2.State384, digest.Digest384, *sha2.State384](key)
}

func NewSHA384WithSeed(seed uint64) *SHA384 {
	return NewWithSeed[sha2.State384, digest.Digest384, *sha2.State384](seed)
}

func NewSHA512(key []byte) *SHA512 {
	return New[sha2.State512, digest.Digest512, *sha2.State512](key)
}

func NewSHA512WithSeed(seed uint64) *SHA512 {
	return NewWithSeed[sha2.State512, digest.Digest512, *sha2.State512](seed)
}

func NewSHA512_224(key []byte) *SHA512_224 {
	return New[sha2.State512_224, digest.Digest224, *sha2.State512_224](key)
}

func NewSHA512_224WithSeed(seed uint64) *SHA512_224 {
	return NewWithSeed[sha2.State512_224, digest.Digest224, *sha2.State512_224](seed)
}

func NewSHA512_256(key []byte) *SHA512_256 {
	return New[sha2.State512_256, digest.Digest256, *sha2.State512_256](key)
}

func NewSHA512_256WithSeed(seed uint64) *SHA512_256 {
	return NewWithSeed[sha2.State512_256, digest.Digest256, *sha2.State512_256](seed)
}

func NewRIPEMD160(key []byte) *RIPEMD160 {
	return New[ripemd160.State, digest.Digest160, *ripemd160.State](key)
}

func NewRIPEMD160WithSeed(seed uint64) *RIPEMD160 {
	return NewWithSeed[ripemd160.State, digest.Digest160, *ripemd160.State](seed)
}
