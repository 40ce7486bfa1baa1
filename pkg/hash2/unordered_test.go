// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash2

import (
	"context"
	"testing"

	"github.com/ChainSafe/hash2/pkg/fnv1a"
	"github.com/ChainSafe/hash2/pkg/hmac"
	"github.com/ChainSafe/hash2/pkg/sha2"
	"github.com/ChainSafe/hash2/pkg/xxhash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMap() map[uint32]uint32 {
	m := make(map[uint32]uint32, 64)
	for i := uint32(0); i < 64; i++ {
		m[i] = 3*i + 1
	}
	return m
}

func permutations() map[string]set {
	ascending := make(set, 64)
	descending := make(set, 64)
	strided := make(set, 64)
	for i := 0; i < 64; i++ {
		ascending[i] = uint32(i)
		descending[i] = uint32(63 - i)
		strided[i] = uint32((i * 17) % 64)
	}
	return map[string]set{
		"ascending":  ascending,
		"descending": descending,
		"strided":    strided,
	}
}

func Test_HashAppend_Map(t *testing.T) {
	t.Parallel()

	little32 := fnv1a.New32()
	require.NoError(t, HashAppend(little32, LittleEndianFlavor, newMap()))
	assert.Equal(t, uint32(1094735330), little32.Result())

	big32 := fnv1a.New32()
	require.NoError(t, HashAppend(big32, BigEndianFlavor, newMap()))
	assert.Equal(t, uint32(210926348), big32.Result())

	little64 := fnv1a.New64()
	require.NoError(t, HashAppend(little64, LittleEndianFlavor, newMap()))
	assert.Equal(t, uint64(2617313294186790738), little64.Result())
}

func Test_HashAppend_UnorderedRanger(t *testing.T) {
	t.Parallel()

	for name, s := range permutations() {
		h := fnv1a.New32()
		require.NoError(t, HashAppend(h, LittleEndianFlavor, s))
		assert.Equalf(t, uint32(3782055292), h.Result(), "order %s", name)
	}
}

func Test_HashAppendUnorderedRange_Stream(t *testing.T) {
	t.Parallel()

	var s stream
	require.NoError(t, HashAppendUnorderedRange(&s, LittleEndianFlavor, map[string]bool{}))
	assert.Equal(t, concat(le(0, 8), le(0, 8)), s.bytes())

	err := HashAppendUnorderedRange(&s, LittleEndianFlavor, []int{1})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	err = HashAppendUnorderedRange(&s, LittleEndianFlavor, map[int]int{1: 1})
	assert.ErrorIs(t, err, ErrNoIntegralResult)
}

func Test_HashAppend_UnorderedDigestStates(t *testing.T) {
	t.Parallel()

	first := permutations()["ascending"]
	second := permutations()["strided"]

	h1 := sha2.New256()
	require.NoError(t, HashAppend(h1, LittleEndianFlavor, first))
	h2 := sha2.New256()
	require.NoError(t, HashAppend(h2, LittleEndianFlavor, second))
	assert.Equal(t, h1.Result(), h2.Result())

	m1 := hmac.NewSHA256([]byte("key"))
	require.NoError(t, HashAppend(m1, BigEndianFlavor, newMap()))
	m2 := hmac.NewSHA256([]byte("key"))
	require.NoError(t, HashAppend(m2, BigEndianFlavor, newMap()))
	assert.Equal(t, m1.Result(), m2.Result())

	x1 := xxhash.New64WithSeed(7)
	require.NoError(t, HashAppend(x1, DefaultFlavor, map[string][]string{"a": {"b"}, "c": nil}))
	x2 := xxhash.New64WithSeed(7)
	require.NoError(t, HashAppend(x2, DefaultFlavor, map[string][]string{"c": nil, "a": {"b"}}))
	assert.Equal(t, x1.Result(), x2.Result())
}

func Test_HashAppend_NestedMaps(t *testing.T) {
	t.Parallel()

	value := map[string]map[uint8]string{
		"x": {1: "one", 2: "two"},
		"y": {},
	}

	h1 := fnv1a.New64()
	require.NoError(t, HashAppend(h1, LittleEndianFlavor, value))

	h2 := fnv1a.New64()
	require.NoError(t, HashAppend(h2, LittleEndianFlavor, value))
	assert.Equal(t, h1.Result(), h2.Result())

	value["y"][3] = "three"
	h3 := fnv1a.New64()
	require.NoError(t, HashAppend(h3, LittleEndianFlavor, value))
	assert.NotEqual(t, h1.Result(), h3.Result())
}

func Test_HashAppendUnorderedRangeConcurrent(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		value any
		limit int
	}{
		"map_unlimited": {
			value: newMap(),
		},
		"map_limited": {
			value: newMap(),
			limit: 3,
		},
		"set_one_worker": {
			value: permutations()["strided"],
			limit: 1,
		},
		"empty": {
			value: map[uint8]uint8{},
			limit: 2,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			sequential := fnv1a.New64()
			require.NoError(t, HashAppendUnorderedRange(sequential, LittleEndianFlavor, testCase.value))

			concurrent := fnv1a.New64()
			err := HashAppendUnorderedRangeConcurrent(context.Background(),
				concurrent, LittleEndianFlavor, testCase.value, testCase.limit)
			require.NoError(t, err)

			assert.Equal(t, sequential.Result(), concurrent.Result())
		})
	}
}

func Test_HashAppendUnorderedRangeConcurrent_Errors(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := HashAppendUnorderedRangeConcurrent(ctx, fnv1a.New32(), LittleEndianFlavor, newMap(), 1)
	assert.ErrorIs(t, err, context.Canceled)

	err = HashAppendUnorderedRangeConcurrent(context.Background(), fnv1a.New32(),
		LittleEndianFlavor, map[int]func(){1: nil}, 0)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	err = HashAppendUnorderedRangeConcurrent(context.Background(), fnv1a.New32(),
		Flavor{}, newMap(), 0)
	assert.ErrorIs(t, err, ErrInvalidFlavor)
}

func Test_HashAppend_CopyLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	h := fnv1a.New64()
	h.Update([]byte("prefix"))
	before := *h

	require.NoError(t, HashAppendUnorderedRange(h, LittleEndianFlavor, set{1, 2, 3}))

	expected := before
	c1, c2, c3 := before, before, before
	c1.Update(le(1, 4))
	c2.Update(le(2, 4))
	c3.Update(le(3, 4))
	sum := c1.Result() + c2.Result() + c3.Result()
	expected.Update(concat(le(sum, 8), le(3, 8)))

	assert.Equal(t, expected.Result(), h.Result())
}
