// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyMD5 = "d41d8cd98f00b204e9800998ecf8427e"

func Test_Digest128_String(t *testing.T) {
	t.Parallel()

	d := Digest128{0xd4, 0x1d, 0x8c, 0xd9, 0x8f, 0x00, 0xb2, 0x04,
		0xe9, 0x80, 0x09, 0x98, 0xec, 0xf8, 0x42, 0x7e}

	assert.Equal(t, emptyMD5, d.String())
	assert.Equal(t, 16, d.Size())
	assert.Equal(t, d[:], d.Bytes())
}

func Test_Digest_Equality(t *testing.T) {
	t.Parallel()

	a := Digest160{1, 2, 3}
	b := Digest160{1, 2, 3}
	c := Digest160{1, 2, 4}

	assert.True(t, a == b)
	assert.False(t, a == c)
}

func Test_Digest_UnmarshalText(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		text     string
		expected string
		errWrap  error
		errMsg   string
	}{
		"plain hex": {
			text:     emptyMD5,
			expected: emptyMD5,
		},
		"0x prefixed hex": {
			text:     "0x" + emptyMD5,
			expected: emptyMD5,
		},
		"too short": {
			text:    "d41d",
			errWrap: ErrInvalidLength,
			errMsg:  "invalid digest length: expected 32 hex characters, got 4",
		},
		"not hex": {
			text:   "zz1d8cd98f00b204e9800998ecf8427e",
			errMsg: "encoding/hex: invalid byte: U+007A 'z'",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var d Digest128
			err := d.UnmarshalText([]byte(testCase.text))

			if testCase.errMsg != "" {
				require.Error(t, err)
				assert.EqualError(t, err, testCase.errMsg)
				if testCase.errWrap != nil {
					assert.ErrorIs(t, err, testCase.errWrap)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, d.String())
		})
	}
}

func Test_Digest_JSON(t *testing.T) {
	t.Parallel()

	type record struct {
		Sum Digest256 `json:"sum"`
	}

	in := record{Sum: Digest256{0xba, 0x78, 0x16, 0xbf}}

	encoded, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sum":"ba7816bf00000000000000000000000000000000000000000000000000000000"}`, string(encoded))

	var out record
	err = json.Unmarshal(encoded, &out)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func Test_NewDigest(t *testing.T) {
	t.Parallel()

	d, err := NewDigest224(make([]byte, 28))
	require.NoError(t, err)
	assert.Equal(t, Digest224{}, d)

	_, err = NewDigest384(make([]byte, 47))
	assert.ErrorIs(t, err, ErrInvalidLength)

	d512, err := NewDigest512(append(make([]byte, 63), 0xff))
	require.NoError(t, err)
	assert.Equal(t, byte(0xff), d512[63])
	assert.Equal(t, 64, d512.Size())
}
