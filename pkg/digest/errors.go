// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import "errors"

var (
	ErrInvalidLength   = errors.New("invalid digest length")
	ErrMultihashCode   = errors.New("multihash code mismatch")
	ErrMultihashLength = errors.New("multihash digest length mismatch")
)
