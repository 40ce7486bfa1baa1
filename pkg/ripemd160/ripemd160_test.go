// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ripemd160

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/ChainSafe/hash2/internal/hashtest"
	"github.com/ChainSafe/hash2/pkg/digest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xripemd160 "golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

func Test_State(t *testing.T) {
	t.Parallel()

	hashtest.Run(t, hashtest.Constructors[State, digest.Digest160, *State]{
		New:           New,
		WithSeed:      NewWithSeed,
		WithSeedBytes: NewWithSeedBytes,
	})
}

func Test_Vectors(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input    string
		expected string
	}{
		"empty": {
			expected: "9c1185a5c5e9fc54612808977ee8f548b2258d31",
		},
		"a": {
			input:    "a",
			expected: "0bdc9d2d256b3ee9daae347be6f4dc835a467ffe",
		},
		"abc": {
			input:    "abc",
			expected: "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc",
		},
		"message_digest": {
			input:    "message digest",
			expected: "5d0689ef49d2fae572b881b123a85ffa21595f36",
		},
		"alphabet": {
			input:    "abcdefghijklmnopqrstuvwxyz",
			expected: "f71c27109c692c1b56bbdceb5b9d2865b3708dbc",
		},
		"million_a": {
			input:    strings.Repeat("a", 1000000),
			expected: "52783243c1697bdbe16d37f97f68f08325dc1528",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h := New()
			h.Update([]byte(testCase.input))
			assert.Equal(t, testCase.expected, h.Result().String())
		})
	}
}

func reference(t *testing.T, p []byte) digest.Digest160 {
	t.Helper()

	h := xripemd160.New()
	_, err := h.Write(p)
	require.NoError(t, err)

	var d digest.Digest160
	copy(d[:], h.Sum(nil))
	return d
}

func Test_MatchesReference(t *testing.T) {
	t.Parallel()

	for n := 0; n < 300; n += 3 {
		input := make([]byte, n)
		for i := range input {
			input[i] = byte(i*13 + 5)
		}

		h := New()
		_, err := h.Write(input)
		require.NoError(t, err)
		assert.Equalf(t, reference(t, input), h.Result(), "length %d", n)
	}
}

func padded(msg []byte) []byte {
	out := append([]byte{}, msg...)
	out = append(out, 0x80)
	for len(out)%BlockSize != 56 {
		out = append(out, 0)
	}
	return binary.LittleEndian.AppendUint64(out, uint64(len(msg))*8)
}

func Test_ResultAndSeeds(t *testing.T) {
	t.Parallel()

	msg := []byte("The quick brown fox jumps over the lazy dog")

	h := New()
	h.Update(msg)
	assert.Equal(t, reference(t, msg), h.Result())
	assert.Equal(t, reference(t, padded(msg)), h.Result())

	seeded := NewWithSeed(7)
	seeded.Update(msg)
	seed := binary.LittleEndian.AppendUint64(nil, 7)
	assert.Equal(t, reference(t, append(padded(seed), msg...)), seeded.Result())

	assert.Equal(t, Size, h.Size())
	assert.Equal(t, BlockSize, h.BlockSize())
}
