// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package mulxp

import (
	"testing"

	"github.com/ChainSafe/hash2/internal/hashtest"

	"github.com/stretchr/testify/assert"
)

func Test_State(t *testing.T) {
	t.Parallel()

	hashtest.Run(t, hashtest.Constructors[State, uint64, *State]{
		New:           New,
		WithSeed:      NewWithSeed,
		WithSeedBytes: NewWithSeedBytes,
	})
}

func Test_Constants(t *testing.T) {
	t.Parallel()

	x := q
	assert.Equal(t, k, x*x)
	assert.Equal(t, uint64(0), mulx(0, k))
	assert.Equal(t, uint64(1), mulx(1<<32, 1<<32))
}

func Test_TailLengths(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		length   int
		expected uint64
	}{
		"empty":        {length: 0, expected: 14417426087775514013},
		"one":          {length: 1, expected: 16764932591890958295},
		"two":          {length: 2, expected: 9317376906522357683},
		"three":        {length: 3, expected: 16884268212764237824},
		"four":         {length: 4, expected: 4953569912186228333},
		"five":         {length: 5, expected: 15386386901579800751},
		"eight":        {length: 8, expected: 14807974852815923648},
		"nine":         {length: 9, expected: 18048101507490377271},
		"fifteen":      {length: 15, expected: 11552645985959207674},
		"one_block":    {length: 16, expected: 2406175322188866705},
		"block_plus_1": {length: 17, expected: 9354767299352445508},
		"three_blocks": {length: 48, expected: 17117177673432972823},
		"forty_nine":   {length: 49, expected: 10880397844167024013},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			input := make([]byte, testCase.length)
			for i := range input {
				input[i] = byte(i)
			}

			h := New()
			h.Update(input)
			assert.Equal(t, testCase.expected, h.Result())
		})
	}
}

func Test_Seeds(t *testing.T) {
	t.Parallel()

	fox := []byte("The quick brown fox jumps over the lazy dog")

	testCases := map[string]struct {
		state    *State
		expected uint64
	}{
		"default":   {state: New(), expected: 14337305699501789490},
		"seed_7":    {state: NewWithSeed(7), expected: 13046177217843702180},
		"wide_seed": {state: NewWithSeed(1 << 32), expected: 1127119441466813140},
		"bytes":     {state: NewWithSeedBytes([]byte("0123456789")), expected: 8993762198421727696},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			testCase.state.Update(fox)
			assert.Equal(t, testCase.expected, testCase.state.Result())
		})
	}
}

func Test_ResultSequence(t *testing.T) {
	t.Parallel()

	h := New()
	got := []uint64{h.Result(), h.Result(), h.Result(), h.Result()}
	assert.Equal(t, []uint64{14417426087775514013, 1474497921067300883, 7260658013628098956, 15620431926319523060}, got)
}
