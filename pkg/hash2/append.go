// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash2

import (
	"context"
	"reflect"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

func encoderFor[T any, PT State[T]](h PT, f Flavor) (*Encoder, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return newEncoder[T, PT](h, f), nil
}

// HashAppend writes the canonical encoding of v to h.
func HashAppend[T any, PT State[T]](h PT, f Flavor, v any) error {
	e, err := encoderFor[T, PT](h, f)
	if err != nil {
		return failed("hash append", err)
	}
	return failed("hash append", e.Append(v))
}

// HashAppendRange writes each element of the array, slice, string, list or
// Ranger v to h, without a size suffix.
func HashAppendRange[T any, PT State[T]](h PT, f Flavor, v any) error {
	e, err := encoderFor[T, PT](h, f)
	if err != nil {
		return failed("hash append range", err)
	}
	return failed("hash append range", e.AppendRange(v))
}

// HashAppendSize writes n to h as a size suffix of f.SizeWidth bytes.
func HashAppendSize[T any, PT State[T]](h PT, f Flavor, n int) error {
	e, err := encoderFor[T, PT](h, f)
	if err != nil {
		return failed("hash append size", err)
	}
	return failed("hash append size", e.AppendSize(n))
}

// HashAppendSizedRange writes each element of v followed by the element
// count.
func HashAppendSizedRange[T any, PT State[T]](h PT, f Flavor, v any) error {
	e, err := encoderFor[T, PT](h, f)
	if err != nil {
		return failed("hash append sized range", err)
	}
	return failed("hash append sized range", e.AppendSizedRange(v))
}

// HashAppendUnorderedRange hashes every element of the map or
// UnorderedRanger v with its own copy of h, then writes the wrapping sum
// of the 64 bit results and the element count to h.
func HashAppendUnorderedRange[T any, PT State[T]](h PT, f Flavor, v any) error {
	e, err := encoderFor[T, PT](h, f)
	if err != nil {
		return failed("hash append unordered range", err)
	}
	return failed("hash append unordered range", e.AppendUnorderedRange(v))
}

// HashAppendUnorderedRangeConcurrent is HashAppendUnorderedRange with the
// elements hashed on up to limit goroutines. A limit below one means no
// limit. The result is the same as the sequential form.
func HashAppendUnorderedRangeConcurrent[T any, PT State[T]](
	ctx context.Context, h PT, f Flavor, v any, limit int) error {
	return failed("concurrent hash append unordered range",
		appendUnorderedConcurrent[T, PT](ctx, h, f, v, limit))
}

func appendUnorderedConcurrent[T any, PT State[T]](
	ctx context.Context, h PT, f Flavor, v any, limit int) error {
	e, err := encoderFor[T, PT](h, f)
	if err != nil {
		return err
	}

	elements, err := unorderedElements(reflect.ValueOf(v))
	if err != nil {
		return err
	}

	results := make([]uint64, len(elements))
	g, gctx := errgroup.WithContext(ctx)

	var sem *semaphore.Weighted
	if limit > 0 {
		sem = semaphore.NewWeighted(int64(limit))
	}

	for i, element := range elements {
		i, element := i, element
		fork, result := e.fork()

		if sem != nil {
			if err := sem.Acquire(gctx, 1); err != nil {
				break
			}
		}

		g.Go(func() error {
			if sem != nil {
				defer sem.Release(1)
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := element(fork); err != nil {
				return err
			}
			r, err := result()
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var sum uint64
	for _, r := range results {
		sum += r
	}
	return e.appendUnorderedSuffix(sum, len(elements))
}

// Sum64 writes the encoding of v to h and returns the result of h mapped
// to 64 bits.
func Sum64[T any, PT State[T]](h PT, f Flavor, v any) (uint64, error) {
	if err := HashAppend[T, PT](h, f, v); err != nil {
		return 0, err
	}
	return integralResult(h)
}
