// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash2

import (
	"encoding/hex"
	"testing"

	"github.com/ChainSafe/hash2/pkg/digest"
	"github.com/ChainSafe/hash2/pkg/fnv1a"
	"github.com/ChainSafe/hash2/pkg/md5"
	"github.com/ChainSafe/hash2/pkg/sha2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IntegralResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0x0101010101010101), IntegralResult[uint64](uint8(1)))
	assert.Equal(t, uint64(0xffffffffffffffff), IntegralResult[uint64](uint8(0xff)))
	assert.Equal(t, uint64(0x0001000100010001), IntegralResult[uint64](uint16(1)))
	assert.Equal(t, uint64(0x1234567812345678), IntegralResult[uint64](uint32(0x12345678)))
	assert.Equal(t, uint32(0x01010101), IntegralResult[uint32](uint8(1)))
	assert.Equal(t, uint32(0x00020002), IntegralResult[uint32](uint16(2)))
	assert.Equal(t, uint16(0x0303), IntegralResult[uint16](uint8(3)))

	assert.Equal(t, uint32(0x9abcdef0), IntegralResult[uint32](uint64(0x123456789abcdef0)))
	assert.Equal(t, uint8(0xf0), IntegralResult[uint8](uint64(0x123456789abcdef0)))
	assert.Equal(t, uint64(0x123456789abcdef0), IntegralResult[uint64](uint64(0x123456789abcdef0)))
}

func Test_IntegralResult_Distinct(t *testing.T) {
	t.Parallel()

	seen := make(map[uint64]struct{})
	for i := 0; i < 0x10000; i++ {
		seen[IntegralResult[uint64](uint16(i))] = struct{}{}
	}
	assert.Len(t, seen, 0x10000)
}

type shortDigest [4]byte

func (d shortDigest) Bytes() []byte  { return d[:] }
func (d shortDigest) Size() int      { return len(d) }
func (d shortDigest) String() string { return hex.EncodeToString(d[:]) }

func Test_DigestIntegralResult(t *testing.T) {
	t.Parallel()

	d := digest.Digest128{0xf0, 0xde, 0xbc, 0x9a, 0x78, 0x56, 0x34, 0x12, 0xff}
	assert.Equal(t, uint64(0x123456789abcdef0), DigestIntegralResult[uint64](d))
	assert.Equal(t, uint32(0x9abcdef0), DigestIntegralResult[uint32](d))
	assert.Equal(t, uint8(0xf0), DigestIntegralResult[uint8](d))

	assert.PanicsWithValue(t, "hash2: 4 byte digest is too short for an integral result", func() {
		DigestIntegralResult[uint64](shortDigest{1, 2, 3, 4})
	})
}

func Test_integralResult(t *testing.T) {
	t.Parallel()

	r32, err := integralResult(fnv1a.New32())
	require.NoError(t, err)
	assert.Equal(t, IntegralResult[uint64](uint32(2166136261)), r32)

	r64, err := integralResult(fnv1a.New64())
	require.NoError(t, err)
	assert.Equal(t, uint64(14695981039346656037), r64)

	h := md5.New()
	expected := DigestIntegralResult[uint64](md5.New().Result())
	r128, err := integralResult(h)
	require.NoError(t, err)
	assert.Equal(t, expected, r128)

	r256, err := integralResult(sha2.New256())
	require.NoError(t, err)
	assert.Equal(t, DigestIntegralResult[uint64](sha2.New256().Result()), r256)

	_, err = integralResult(&stream{})
	assert.ErrorIs(t, err, ErrNoIntegralResult)
}
