// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash2

import "errors"

var (
	ErrUnsupportedType  = errors.New("type cannot be hashed")
	ErrSizeOverflow     = errors.New("size does not fit the flavor size width")
	ErrInvalidFlavor    = errors.New("invalid flavor")
	ErrNoIntegralResult = errors.New("state has no integral result")
)
