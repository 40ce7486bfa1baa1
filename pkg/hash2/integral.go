// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash2

import (
	"fmt"
	"reflect"

	"github.com/ChainSafe/hash2/internal/endian"
	"github.com/ChainSafe/hash2/pkg/digest"

	"golang.org/x/exp/constraints"
)

// IntegralResult maps the result r of a hash to the unsigned type T.
// Narrower targets keep the low bits of r. Wider targets multiply r by
// maxT / maxR, which spreads it over the full range of T:
// 0x0101010101010101 for a byte, 0x0001000100010001 for two bytes and
// 0x0000000100000001 for four bytes widened to eight.
func IntegralResult[T, R constraints.Unsigned](r R) T {
	maxT, maxR := ^T(0), ^R(0)
	if uint64(maxT) <= uint64(maxR) {
		return T(r)
	}
	return T(r) * (maxT / T(maxR))
}

// DigestIntegralResult reads the first eight bytes of d as a little endian
// integer and narrows it to T. It panics for digests shorter than eight
// bytes.
func DigestIntegralResult[T constraints.Unsigned, D digest.Digest](d D) T {
	b := d.Bytes()
	if len(b) < 8 {
		panic(fmt.Sprintf("hash2: %d byte digest is too short for an integral result", len(b)))
	}
	return IntegralResult[T](endian.Read64LE(b))
}

type (
	result32 interface{ Result() uint32 }
	result64 interface{ Result() uint64 }
)

// integralResult finalises s and maps its result to a uint64.
func integralResult(s any) (uint64, error) {
	switch r := s.(type) {
	case result64:
		return r.Result(), nil
	case result32:
		return IntegralResult[uint64](r.Result()), nil
	}

	method := reflect.ValueOf(s).MethodByName("Result")
	if !method.IsValid() || method.Type().NumIn() != 0 || method.Type().NumOut() != 1 {
		return 0, fmt.Errorf("%w: %T", ErrNoIntegralResult, s)
	}

	out := method.Call(nil)[0]
	if d, ok := out.Interface().(interface{ Bytes() []byte }); ok {
		b := d.Bytes()
		if len(b) < 8 {
			return 0, fmt.Errorf("%w: %T returns %d bytes", ErrNoIntegralResult, s, len(b))
		}
		return endian.Read64LE(b), nil
	}

	switch out.Kind() {
	case reflect.Uint8:
		return IntegralResult[uint64](uint8(out.Uint())), nil
	case reflect.Uint16:
		return IntegralResult[uint64](uint16(out.Uint())), nil
	case reflect.Uint32:
		return IntegralResult[uint64](uint32(out.Uint())), nil
	case reflect.Uint64, reflect.Uint:
		return out.Uint(), nil
	}
	return 0, fmt.Errorf("%w: %T returns %s", ErrNoIntegralResult, s, out.Type())
}
