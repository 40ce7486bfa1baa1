// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash2

import (
	"testing"

	"github.com/ChainSafe/hash2/internal/endian"

	"github.com/stretchr/testify/assert"
)

func Test_Flavor_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		flavor     Flavor
		errWrapped error
		errMessage string
	}{
		"default": {
			flavor: DefaultFlavor,
		},
		"little": {
			flavor: LittleEndianFlavor,
		},
		"big_one_byte_size": {
			flavor: Flavor{ByteOrder: BigEndian, SizeWidth: 1},
		},
		"zero_value": {
			flavor:     Flavor{},
			errWrapped: ErrInvalidFlavor,
			errMessage: "invalid flavor: size width 0",
		},
		"width_three": {
			flavor:     Flavor{ByteOrder: LittleEndian, SizeWidth: 3},
			errWrapped: ErrInvalidFlavor,
			errMessage: "invalid flavor: size width 3",
		},
		"bad_order": {
			flavor:     Flavor{ByteOrder: 7, SizeWidth: 4},
			errWrapped: ErrInvalidFlavor,
			errMessage: "invalid flavor: byte order Endian(7)",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := testCase.flavor.Validate()

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Endian(t *testing.T) {
	t.Parallel()

	assert.True(t, BigEndian.isBig())
	assert.False(t, LittleEndian.isBig())
	assert.Equal(t, endian.NativeIsBig, NativeEndian.isBig())
	assert.Equal(t, "little endian, 8 byte sizes", LittleEndianFlavor.String())
	assert.Equal(t, "native endian, 4 byte sizes", DefaultFlavor.String())
}
