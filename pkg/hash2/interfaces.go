// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash2

// Updater is a sink for the byte stream produced by HashAppend.
type Updater interface {
	Update(p []byte)
}

// State constrains PT to a pointer to a hash state value T. States are
// copied by value when hashing unordered ranges.
type State[T any] interface {
	*T
	Updater
}

// HashAppender is implemented by types that define their own encoding.
// It takes precedence over every built-in rule.
type HashAppender interface {
	HashAppend(e *Encoder) error
}

// Ranger is an ordered sequence of elements. Elements are hashed in
// iteration order followed by their count. Iteration stops when f returns
// false.
type Ranger interface {
	Range(f func(v any) bool)
}

// UnorderedRanger is a collection whose iteration order carries no
// meaning, such as a set. It is hashed like a map.
type UnorderedRanger interface {
	RangeUnordered(f func(v any) bool)
}
