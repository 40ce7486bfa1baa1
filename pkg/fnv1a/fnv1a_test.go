// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package fnv1a

import (
	"hash/fnv"
	"testing"

	"github.com/ChainSafe/hash2/internal/hashtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fox = "The quick brown fox jumps over the lazy dog"

func Test_State32(t *testing.T) {
	t.Parallel()

	hashtest.Run(t, hashtest.Constructors[State32, uint32, *State32]{
		New:           New32,
		WithSeed:      New32WithSeed,
		WithSeedBytes: New32WithSeedBytes,
	})
}

func Test_State64(t *testing.T) {
	t.Parallel()

	hashtest.Run(t, hashtest.Constructors[State64, uint64, *State64]{
		New:           New64,
		WithSeed:      New64WithSeed,
		WithSeedBytes: New64WithSeedBytes,
	})
}

func Test_State32_Vectors(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		seed     uint64
		input    []byte
		expected uint32
	}{
		"zero_byte": {
			input:    []byte{0},
			expected: 84696351,
		},
		"counting_bytes": {
			input:    []byte{0, 1, 2, 3},
			expected: 3282719153,
		},
		"one_to_four": {
			input:    []byte{1, 2, 3, 4},
			expected: 1463068797,
		},
		"fox": {
			input:    []byte(fox),
			expected: 76545936,
		},
		"fox_seed_7": {
			seed:     7,
			input:    []byte(fox),
			expected: 4199948453,
		},
		"fox_wide_seed": {
			seed:     1 << 32,
			input:    []byte(fox),
			expected: 807649599,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h := New32WithSeed(testCase.seed)
			h.Update(testCase.input)
			assert.Equal(t, testCase.expected, h.Result())
		})
	}
}

func Test_State64_Vectors(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		seed     uint64
		input    []byte
		expected uint64
	}{
		"zero_byte": {
			input:    []byte{0},
			expected: 12638153115695167455,
		},
		"one_to_four": {
			input:    []byte{1, 2, 3, 4},
			expected: 13725386680924731485,
		},
		"fox": {
			input:    []byte(fox),
			expected: 17580284887202820368,
		},
		"fox_seed_7": {
			seed:     7,
			input:    []byte(fox),
			expected: 12375514040224932933,
		},
		"fox_wide_seed": {
			seed:     1 << 32,
			input:    []byte(fox),
			expected: 7724346891458569375,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h := New64WithSeed(testCase.seed)
			h.Update(testCase.input)
			assert.Equal(t, testCase.expected, h.Result())
		})
	}
}

func Test_MatchesStdlib(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 5, 64, 333} {
		input := make([]byte, n)
		for i := range input {
			input[i] = byte(i)
		}

		ref32 := fnv.New32a()
		_, _ = ref32.Write(input)
		h32 := New32()
		_, err := h32.Write(input)
		require.NoError(t, err)
		assert.Equal(t, ref32.Sum32(), h32.Result())

		ref64 := fnv.New64a()
		_, _ = ref64.Write(input)
		h64 := New64()
		h64.Update(input)
		assert.Equal(t, ref64.Sum64(), h64.Result())
	}
}

func Test_State32_ResultSequence(t *testing.T) {
	t.Parallel()

	h := New32()
	results := []uint32{h.Result(), h.Result(), h.Result(), h.Result()}
	assert.Equal(t, []uint32{2166136261, 2047574606, 3508452515, 2405598420}, results)

	h.Reset()
	assert.Equal(t, uint32(2166136261), h.Result())
}

func Test_ByteSeed(t *testing.T) {
	t.Parallel()

	h := New32WithSeedBytes([]byte("abc"))
	assert.Equal(t, uint32(440920331), h.Result())
	assert.Equal(t, 1, h.BlockSize())
	assert.Equal(t, 4, h.Size())
	assert.Equal(t, 8, New64().Size())
}
