// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package sha2 implements the SHA-2 family of FIPS 180-4 as incremental
// states: SHA-224 and SHA-256 over 64-byte blocks, and SHA-384, SHA-512,
// SHA-512/224 and SHA-512/256 over 128-byte blocks.
//
// Result absorbs the message padding into the state, so successive
// results of one state differ.
package sha2
