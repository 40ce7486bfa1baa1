// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package md5

import (
	stdmd5 "crypto/md5"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/ChainSafe/hash2/internal/hashtest"
	"github.com/ChainSafe/hash2/pkg/digest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_State(t *testing.T) {
	t.Parallel()

	hashtest.Run(t, hashtest.Constructors[State, digest.Digest128, *State]{
		New:           New,
		WithSeed:      NewWithSeed,
		WithSeedBytes: NewWithSeedBytes,
	})
}

func Test_RFC1321(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input    string
		expected string
	}{
		"empty": {
			expected: "d41d8cd98f00b204e9800998ecf8427e",
		},
		"a": {
			input:    "a",
			expected: "0cc175b9c0f1b6a831c399e269772661",
		},
		"abc": {
			input:    "abc",
			expected: "900150983cd24fb0d6963f7d28e17f72",
		},
		"message_digest": {
			input:    "message digest",
			expected: "f96b697d7cb7938d525a2f31aaf161d0",
		},
		"alphabet": {
			input:    "abcdefghijklmnopqrstuvwxyz",
			expected: "c3fcd3d76192e4007dfb496cca67e13b",
		},
		"alphanumeric": {
			input:    "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
			expected: "d174ab98d277d9f5a5611c2c9f419d9f",
		},
		"digits": {
			input:    strings.Repeat("1234567890", 8),
			expected: "57edf4a22be3c955ac49da2e2107b67a",
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

func Test_MatchesStdlib(t *testing.T) {
	t.Parallel()

	for n := 0; n < 300; n += 7 {
		input := make([]byte, n)
		for i := range input {
			input[i] = byte(i * 11)
		}

		h := New()
		_, err := h.Write(input)
		require.NoError(t, err)
		assert.Equalf(t, digest.Digest128(stdmd5.Sum(input)), h.Result(), "length %d", n)
	}
}

// padded returns msg followed by its MD5 padding.
func padded(msg []byte) []byte {
	out := append([]byte{}, msg...)
	out = append(out, 0x80)
	for len(out)%BlockSize != 56 {
		out = append(out, 0)
	}
	return binary.LittleEndian.AppendUint64(out, uint64(len(msg))*8)
}

func Test_ResultKeepsPadding(t *testing.T) {
	t.Parallel()

	msg := []byte("The quick brown fox jumps over the lazy dog")

	h := New()
	h.Update(msg)
	first := h.Result()
	second := h.Result()

	assert.Equal(t, digest.Digest128(stdmd5.Sum(msg)), first)
	assert.Equal(t, digest.Digest128(stdmd5.Sum(padded(msg))), second)
}

func Test_Seeds(t *testing.T) {
	t.Parallel()

	msg := []byte("The quick brown fox jumps over the lazy dog")

	seeded := NewWithSeed(7)
	seeded.Update(msg)
	seed := binary.LittleEndian.AppendUint64(nil, 7)
	assert.Equal(t, digest.Digest128(stdmd5.Sum(append(padded(seed), msg...))), seeded.Result())

	keyed := NewWithSeedBytes([]byte("key"))
	keyed.Update(msg)
	assert.Equal(t, digest.Digest128(stdmd5.Sum(append(padded([]byte("key")), msg...))), keyed.Result())
}

func Test_ZeroBytes(t *testing.T) {
	t.Parallel()

	h := New()
	h.Update(make([]byte, 95))
	assert.Equal(t, digest.Digest128(stdmd5.Sum(make([]byte, 95))), h.Result())
	assert.Equal(t, 16, h.Size())
	assert.Equal(t, 64, h.BlockSize())
}
