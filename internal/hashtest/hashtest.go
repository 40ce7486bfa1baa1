// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package hashtest holds the behavioural checks every hash state of this
// module must pass, shared by the per-algorithm test suites.
package hashtest

import (
	"bytes"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// State is the incremental hashing contract checked by this package.
type State[R comparable] interface {
	Update(p []byte)
	Result() R
}

// Pointer constrains PT to be a pointer to the state value T, so the checks
// can copy states by value.
type Pointer[T any, R comparable] interface {
	*T
	State[R]
}

// Constructors groups the three constructors of an algorithm variant.
type Constructors[T any, R comparable, PT Pointer[T, R]] struct {
	New           func() PT
	WithSeed      func(seed uint64) PT
	WithSeedBytes func(seed []byte) PT
}

// Run executes every check against the given variant.
func Run[T any, R comparable, PT Pointer[T, R]](t *testing.T, c Constructors[T, R, PT]) {
	t.Helper()

	t.Run("chunking", func(t *testing.T) { Chunking[T, R](t, c.New) })
	t.Run("determinism", func(t *testing.T) { Determinism[T, R](t, c) })
	t.Run("seeds", func(t *testing.T) { Seeds[T, R](t, c) })
	t.Run("multiple_results", func(t *testing.T) { MultipleResults[T, R](t, c.New) })
	t.Run("copy", func(t *testing.T) { CopyIndependence[T, R](t, c.New) })
	t.Run("reset", func(t *testing.T) { Reset[T, R](t, c) })
	t.Run("plaintext", func(t *testing.T) { PlaintextLeak[T, R](t, c.New) })
}

func sequence(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i*7 + 3)
	}
	return p
}

// Chunking checks that splitting the input across Update calls never
// changes the result.
func Chunking[T any, R comparable, PT Pointer[T, R]](t *testing.T, newState func() PT) {
	t.Helper()

	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 3, 4, 7, 8, 15, 16, 31, 32, 63, 64, 65, 127, 128, 129, 191, 192, 193, 300, 1031} {
		input := sequence(n)

		whole := newState()
		whole.Update(input)
		expected := whole.Result()

		for i := 0; i <= n; i++ {
			split := newState()
			split.Update(input[:i])
			split.Update(nil)
			split.Update(input[i:])
			require.Equalf(t, expected, split.Result(), "length %d split at %d", n, i)
		}

		chunked := newState()
		for rest := input; len(rest) > 0; {
			k := rng.Intn(len(rest)) + 1
			chunked.Update(rest[:k])
			rest = rest[k:]
		}
		require.Equalf(t, expected, chunked.Result(), "length %d random chunks", n)
	}
}

// Determinism checks that equal constructions give equal results.
func Determinism[T any, R comparable, PT Pointer[T, R]](t *testing.T, c Constructors[T, R, PT]) {
	t.Helper()

	input := sequence(100)
	results := func(h PT) R {
		h.Update(input)
		return h.Result()
	}

	assert.Equal(t, results(c.New()), results(c.New()))
	assert.Equal(t, results(c.New()), results(c.WithSeed(0)))
	assert.Equal(t, results(c.New()), results(c.WithSeedBytes(nil)))
	assert.Equal(t, results(c.WithSeed(12345)), results(c.WithSeed(12345)))
	assert.Equal(t, results(c.WithSeedBytes([]byte("seed"))), results(c.WithSeedBytes([]byte("seed"))))
}

// Seeds checks that the seeds 0, 1 and 2^32 and a non-empty byte seed all
// give different results.
func Seeds[T any, R comparable, PT Pointer[T, R]](t *testing.T, c Constructors[T, R, PT]) {
	t.Helper()

	for _, n := range []int{0, 1, 17, 200} {
		input := sequence(n)
		result := func(h PT) R {
			h.Update(input)
			return h.Result()
		}

		r0 := result(c.WithSeed(0))
		r1 := result(c.WithSeed(1))
		r2 := result(c.WithSeed(1 << 32))
		rb := result(c.WithSeedBytes([]byte{1}))
		rl := result(c.WithSeedBytes(sequence(40)))

		assert.NotEqualf(t, r0, r1, "length %d", n)
		assert.NotEqualf(t, r0, r2, "length %d", n)
		assert.NotEqualf(t, r1, r2, "length %d", n)
		assert.NotEqualf(t, r0, rb, "length %d", n)
		assert.NotEqualf(t, r0, rl, "length %d", n)
		assert.NotEqualf(t, rb, rl, "length %d", n)
	}
}

// MultipleResults checks that four consecutive results are pairwise distinct.
func MultipleResults[T any, R comparable, PT Pointer[T, R]](t *testing.T, newState func() PT) {
	t.Helper()

	h := newState()
	seen := make(map[R]int, 4)
	for i := 0; i < 4; i++ {
		r := h.Result()
		prev, ok := seen[r]
		require.Falsef(t, ok, "result %d repeats result %d", i, prev)
		seen[r] = i
	}
}

// CopyIndependence checks that a value copy of a running state evolves on
// its own.
func CopyIndependence[T any, R comparable, PT Pointer[T, R]](t *testing.T, newState func() PT) {
	t.Helper()

	original := newState()
	original.Update(sequence(37))

	var copied T = *original
	PT(&copied).Update([]byte("diverge"))
	copiedResult := PT(&copied).Result()

	reference := newState()
	reference.Update(sequence(37))
	assert.Equal(t, reference.Result(), original.Result())

	again := newState()
	again.Update(sequence(37))
	again.Update([]byte("diverge"))
	assert.Equal(t, again.Result(), copiedResult)
}

// Reset checks that Reset brings a used, seeded state back to the default
// state. States without a Reset method are skipped.
func Reset[T any, R comparable, PT Pointer[T, R]](t *testing.T, c Constructors[T, R, PT]) {
	t.Helper()

	if _, ok := any(c.New()).(interface{ Reset() }); !ok {
		t.Skip("state has no Reset method")
	}

	expected := c.New()
	expected.Update(sequence(50))
	want := expected.Result()

	for name, h := range map[string]PT{
		"default":    c.New(),
		"seed":       c.WithSeed(7),
		"seed_bytes": c.WithSeedBytes(sequence(40)),
	} {
		h.Update(sequence(77))
		h.Result()
		any(h).(interface{ Reset() }).Reset()

		h.Update(sequence(50))
		assert.Equalf(t, want, h.Result(), "reset after %s construction", name)
	}
}

// PlaintextLeak checks that no input bytes remain in the state's memory
// once a result has been produced.
func PlaintextLeak[T any, R comparable, PT Pointer[T, R]](t *testing.T, newState func() PT) {
	t.Helper()

	secret := []byte("xxxx")
	image := func(h PT) []byte {
		return unsafe.Slice((*byte)(unsafe.Pointer(h)), unsafe.Sizeof(*h))
	}

	h := newState()
	h.Update(secret)
	h.Result()
	assert.Equal(t, -1, bytes.Index(image(h), secret))

	h = newState()
	h.Update(make([]byte, 1024))
	h.Update(secret)
	h.Result()
	assert.Equal(t, -1, bytes.Index(image(h), secret))
}
