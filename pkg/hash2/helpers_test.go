// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash2

// stream records every byte written to it. It is a plain value, so copies
// taken for unordered ranges are independent.
type stream struct {
	data [1024]byte
	n    int
}

func (s *stream) Update(p []byte) {
	s.n += copy(s.data[s.n:], p)
}

func (s *stream) bytes() []byte { return s.data[:s.n] }

func le(v uint64, width int) []byte {
	b := make([]byte, width)
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	return b
}

func be(v uint64, width int) []byte {
	b := make([]byte, width)
	for i := range b {
		b[i] = byte(v >> (8 * (width - 1 - i)))
	}
	return b
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

type set []uint32

func (s set) RangeUnordered(f func(v any) bool) {
	for _, v := range s {
		if !f(v) {
			return
		}
	}
}

type sequence []uint32

func (s sequence) Range(f func(v any) bool) {
	for _, v := range s {
		if !f(v) {
			return
		}
	}
}

type point struct {
	X, Y int32
}

type origin struct {
	X int32
}

type located struct {
	origin
	Y int32
}

type celsius float64

func (c celsius) HashAppend(e *Encoder) error {
	return e.Append(int64(c * 100))
}

type counter struct {
	N uint16
}

func (c *counter) HashAppend(e *Encoder) error {
	e.Update([]byte("counter"))
	return e.Append(c.N)
}
