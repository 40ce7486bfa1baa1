// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package hash2 extends the incremental hash states of this module to
// arbitrary Go values.
//
// HashAppend walks a value and feeds a canonical byte stream to a state:
// scalars as fixed-width bytes in the byte order selected by a Flavor,
// arrays and structs element by element, strings, slices and ordered
// ranges followed by their element count, and maps or unordered ranges
// through an order independent sum of per-element results. Types can take
// over their own encoding by implementing HashAppender.
package hash2
