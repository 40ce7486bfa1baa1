// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash2

import "reflect"

// IsUniquelyRepresented reports whether equal values of t always share
// one byte representation: booleans, integers, pointers and arrays of
// them. Floats are excluded since +0 and -0 compare equal.
func IsUniquelyRepresented(t reflect.Type) bool {
	s := shapeOf(t)
	switch s.kind {
	case kindBool, kindInt, kindUint, kindPointer:
		return true
	case kindArray:
		return IsUniquelyRepresented(t.Elem())
	default:
		return false
	}
}

// IsEndianIndependent reports whether the encoding of t does not depend
// on byte order: single byte scalars and arrays of them.
func IsEndianIndependent(t reflect.Type) bool {
	s := shapeOf(t)
	switch {
	case s.scalar():
		return s.width == 1
	case s.kind == kindArray:
		return IsEndianIndependent(t.Elem())
	default:
		return false
	}
}

// IsContiguouslyHashable reports whether values of t can be hashed as
// their in-memory bytes under f.
func IsContiguouslyHashable(t reflect.Type, f Flavor) bool {
	if !IsUniquelyRepresented(t) {
		return false
	}
	return IsEndianIndependent(t) || f.ByteOrder.isBig() == NativeEndian.isBig()
}

// IsContiguousRange reports whether t is a dynamically sized sequence
// stored contiguously: strings and slices.
func IsContiguousRange(t reflect.Type) bool {
	switch shapeOf(t).kind {
	case kindString, kindSlice:
		return true
	default:
		return false
	}
}

// IsRange reports whether t holds a sequence of elements.
func IsRange(t reflect.Type) bool {
	switch shapeOf(t).kind {
	case kindArray, kindString, kindSlice, kindList, kindRanger, kindMap, kindUnorderedRanger:
		return true
	default:
		return false
	}
}

// IsUnorderedRange reports whether the iteration order of t carries no
// meaning: maps and UnorderedRanger implementations.
func IsUnorderedRange(t reflect.Type) bool {
	switch shapeOf(t).kind {
	case kindMap, kindUnorderedRanger:
		return true
	default:
		return false
	}
}

// IsTupleLike reports whether t has a fixed number of elements known from
// the type alone: arrays and structs.
func IsTupleLike(t reflect.Type) bool {
	switch shapeOf(t).kind {
	case kindArray, kindStruct:
		return true
	default:
		return false
	}
}
