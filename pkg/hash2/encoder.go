// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash2

import (
	"container/list"
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

const pointerSize = int(unsafe.Sizeof(uintptr(0)))

// Encoder writes the canonical encoding of values to a hash state. It is
// handed to HashAppender implementations.
type Encoder struct {
	flavor Flavor
	big    bool
	update func(p []byte)
	// fork copies the underlying state and returns an encoder over the
	// copy together with a function finalising it.
	fork func() (*Encoder, func() (uint64, error))
}

func newEncoder[T any, PT State[T]](h PT, f Flavor) *Encoder {
	e := &Encoder{
		flavor: f,
		big:    f.ByteOrder.isBig(),
		update: h.Update,
	}
	e.fork = func() (*Encoder, func() (uint64, error)) {
		c := new(T)
		*c = *h
		pc := PT(c)
		return newEncoder[T, PT](pc, f), func() (uint64, error) {
			return integralResult(pc)
		}
	}
	return e
}

// Flavor returns the flavor the encoder writes with.
func (e *Encoder) Flavor() Flavor { return e.flavor }

// Update writes p to the state unchanged.
func (e *Encoder) Update(p []byte) {
	if len(p) > 0 {
		e.update(p)
	}
}

// Append writes the encoding of v.
func (e *Encoder) Append(v any) error {
	return e.appendValue(reflect.ValueOf(v))
}

// AppendSize writes n as a size suffix.
func (e *Encoder) AppendSize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrSizeOverflow, n)
	}
	if w := e.flavor.SizeWidth; w < 8 && uint64(n) >= 1<<(8*w) {
		return fmt.Errorf("%w: %d does not fit %d bytes", ErrSizeOverflow, n, w)
	}
	e.appendUint(uint64(n), e.flavor.SizeWidth)
	return nil
}

// AppendRange writes each element of the array, slice, string or range v
// without a size suffix.
func (e *Encoder) AppendRange(v any) error {
	_, err := e.appendElements(reflect.ValueOf(v))
	return err
}

// AppendSizedRange writes each element of v followed by the element count.
func (e *Encoder) AppendSizedRange(v any) error {
	n, err := e.appendElements(reflect.ValueOf(v))
	if err != nil {
		return err
	}
	return e.AppendSize(n)
}

// AppendUnorderedRange writes the order independent encoding of the map or
// collection v.
func (e *Encoder) AppendUnorderedRange(v any) error {
	elements, err := unorderedElements(reflect.ValueOf(v))
	if err != nil {
		return err
	}

	var sum uint64
	for _, element := range elements {
		fork, result := e.fork()
		if err := element(fork); err != nil {
			return err
		}
		r, err := result()
		if err != nil {
			return err
		}
		sum += r
	}
	return e.appendUnorderedSuffix(sum, len(elements))
}

func (e *Encoder) appendUnorderedSuffix(sum uint64, n int) error {
	e.appendUint(sum, 8)
	return e.AppendSize(n)
}

func (e *Encoder) appendUint(v uint64, width int) {
	var b [8]byte
	e.update(e.putUint(b[:width], v))
}

func (e *Encoder) putUint(b []byte, v uint64) []byte {
	width := len(b)
	for i := 0; i < width; i++ {
		shift := 8 * i
		if e.big {
			shift = 8 * (width - 1 - i)
		}
		b[i] = byte(v >> shift)
	}
	return b
}

func floatBits(f float64, width int) uint64 {
	if f == 0 {
		// +0 and -0 compare equal
		f = 0
	}
	if width == 4 {
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(f)
}

func scalarBits(v reflect.Value, s *shape) uint64 {
	switch s.kind {
	case kindBool:
		if v.Bool() {
			return 1
		}
		return 0
	case kindInt:
		return uint64(v.Int())
	case kindPointer:
		return uint64(v.Pointer())
	default:
		return v.Uint()
	}
}

func (e *Encoder) appendValue(v reflect.Value) error {
	if !v.IsValid() {
		e.appendUint(0, pointerSize)
		return nil
	}

	s := shapeOf(v.Type())
	switch s.kind {
	case kindAppender:
		if v.Kind() == reflect.Pointer && v.IsNil() {
			e.appendUint(0, pointerSize)
			return nil
		}
		return v.Interface().(HashAppender).HashAppend(e)
	case kindAppenderPtr:
		if !v.CanAddr() {
			c := reflect.New(v.Type()).Elem()
			c.Set(v)
			v = c
		}
		return v.Addr().Interface().(HashAppender).HashAppend(e)
	case kindBool, kindInt, kindUint, kindPointer:
		e.appendUint(scalarBits(v, s), s.width)
	case kindFloat:
		e.appendUint(floatBits(v.Float(), s.width), s.width)
	case kindComplex:
		c := v.Complex()
		e.appendUint(floatBits(real(c), s.width/2), s.width/2)
		e.appendUint(floatBits(imag(c), s.width/2), s.width/2)
	case kindInterface:
		if v.IsNil() {
			e.appendUint(0, pointerSize)
			return nil
		}
		return e.appendValue(v.Elem())
	case kindArray:
		_, err := e.appendElements(v)
		return err
	case kindString, kindSlice, kindList, kindRanger:
		n, err := e.appendElements(v)
		if err != nil {
			return err
		}
		return e.AppendSize(n)
	case kindMap, kindUnorderedRanger:
		return e.AppendUnorderedRange(v.Interface())
	case kindStruct:
		return e.appendStruct(v, s)
	default:
		return unsupported(v.Type())
	}
	return nil
}

func (e *Encoder) appendStruct(v reflect.Value, s *shape) error {
	if len(s.fields) == 0 {
		e.update([]byte{0})
		return nil
	}
	for _, f := range s.fields {
		var err error
		if f.base {
			err = e.appendBase(v.Field(f.index))
		} else {
			err = e.appendValue(v.Field(f.index))
		}
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", v.Type(), v.Type().Field(f.index).Name, err)
		}
	}
	return nil
}

// appendBase writes an embedded struct of an unexported type. Its own
// methods are promoted to the outer type, so only its fields are left
// to hash here.
func (e *Encoder) appendBase(v reflect.Value) error {
	s := shapeOf(v.Type())
	if s.kind != kindStruct {
		s = &shape{kind: kindStruct, fields: hashedFields(v.Type())}
	}
	return e.appendStruct(v, s)
}

// appendElements writes the elements of v in order and returns how many
// there were.
func (e *Encoder) appendElements(v reflect.Value) (n int, err error) {
	if !v.IsValid() {
		return 0, fmt.Errorf("%w: nil", ErrUnsupportedType)
	}

	switch shapeOf(v.Type()).kind {
	case kindString:
		e.Update([]byte(v.String()))
		return v.Len(), nil
	case kindArray, kindSlice:
		return v.Len(), e.appendSequence(v)
	case kindList:
		l := v.Interface().(*list.List)
		if l == nil {
			return 0, nil
		}
		for element := l.Front(); element != nil; element = element.Next() {
			if err := e.Append(element.Value); err != nil {
				return n, err
			}
			n++
		}
		return n, nil
	case kindRanger:
		v.Interface().(Ranger).Range(func(element any) bool {
			err = e.Append(element)
			if err != nil {
				return false
			}
			n++
			return true
		})
		return n, err
	default:
		return 0, fmt.Errorf("%w: %s is not a range", ErrUnsupportedType, v.Type())
	}
}

// appendSequence writes the elements of an array or slice. Runs of
// integer scalars are written with a single Update.
func (e *Encoder) appendSequence(v reflect.Value) error {
	n := v.Len()
	if n == 0 {
		return nil
	}

	elem := shapeOf(v.Type().Elem())
	if elem.scalar() && elem.kind != kindPointer {
		if elem.width == 1 && v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			e.update(v.Bytes())
			return nil
		}
		buf := make([]byte, n*elem.width)
		for i := 0; i < n; i++ {
			e.putUint(buf[i*elem.width:(i+1)*elem.width], scalarBits(v.Index(i), elem))
		}
		e.update(buf)
		return nil
	}

	for i := 0; i < n; i++ {
		if err := e.appendValue(v.Index(i)); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// unorderedElements returns one writer per element of the map or
// unordered collection v. Map elements are written as key then value.
func unorderedElements(v reflect.Value) ([]func(*Encoder) error, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedType)
	}

	switch shapeOf(v.Type()).kind {
	case kindMap:
		elements := make([]func(*Encoder) error, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			key, value := iter.Key(), iter.Value()
			elements = append(elements, func(e *Encoder) error {
				if err := e.appendValue(key); err != nil {
					return err
				}
				return e.appendValue(value)
			})
		}
		return elements, nil
	case kindUnorderedRanger:
		var elements []func(*Encoder) error
		v.Interface().(UnorderedRanger).RangeUnordered(func(element any) bool {
			elements = append(elements, func(e *Encoder) error {
				return e.Append(element)
			})
			return true
		})
		return elements, nil
	default:
		return nil, fmt.Errorf("%w: %s is not an unordered range", ErrUnsupportedType, v.Type())
	}
}
