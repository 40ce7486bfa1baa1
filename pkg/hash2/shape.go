// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash2

import (
	"container/list"
	"fmt"
	"reflect"
	"sync"
)

type kind uint8

const (
	kindUnsupported kind = iota
	kindAppender
	kindAppenderPtr
	kindBool
	kindInt
	kindUint
	kindPointer
	kindFloat
	kindComplex
	kindInterface
	kindArray
	kindString
	kindSlice
	kindList
	kindRanger
	kindMap
	kindUnorderedRanger
	kindStruct
)

func (k kind) String() string {
	switch k {
	case kindAppender:
		return "appender"
	case kindAppenderPtr:
		return "pointer appender"
	case kindBool:
		return "bool"
	case kindInt:
		return "int"
	case kindUint:
		return "uint"
	case kindPointer:
		return "pointer"
	case kindFloat:
		return "float"
	case kindComplex:
		return "complex"
	case kindInterface:
		return "interface"
	case kindArray:
		return "array"
	case kindString:
		return "string"
	case kindSlice:
		return "slice"
	case kindList:
		return "list"
	case kindRanger:
		return "range"
	case kindMap:
		return "map"
	case kindUnorderedRanger:
		return "unordered range"
	case kindStruct:
		return "struct"
	default:
		return "unsupported"
	}
}

// shape is the classification of a type, computed once.
type shape struct {
	kind kind
	// width is the encoded size in bytes of scalar kinds.
	width int
	// fields holds the hashed struct fields in declaration order.
	fields []field
}

// field is a hashed struct field. A base is an embedded struct of an
// unexported type: it cannot be read through Interface, so it is always
// walked field by field.
type field struct {
	index int
	base  bool
}

// scalar reports whether values of the shape are written as a single
// fixed-width integer.
func (s *shape) scalar() bool {
	switch s.kind {
	case kindBool, kindInt, kindUint, kindPointer:
		return true
	default:
		return false
	}
}

var (
	appenderType        = reflect.TypeOf((*HashAppender)(nil)).Elem()
	rangerType          = reflect.TypeOf((*Ranger)(nil)).Elem()
	unorderedRangerType = reflect.TypeOf((*UnorderedRanger)(nil)).Elem()
	listType            = reflect.TypeOf((*list.List)(nil))
)

type shapeCache struct {
	mutex  sync.RWMutex
	shapes map[reflect.Type]*shape
}

var shapes = &shapeCache{shapes: make(map[reflect.Type]*shape)}

func (c *shapeCache) get(t reflect.Type) *shape {
	c.mutex.RLock()
	s, ok := c.shapes[t]
	c.mutex.RUnlock()
	if ok {
		return s
	}

	s = classify(t)

	c.mutex.Lock()
	defer c.mutex.Unlock()
	if existing, ok := c.shapes[t]; ok {
		return existing
	}
	c.shapes[t] = s
	logger.Tracef("classified %s as %s", t, s.kind)
	return s
}

func (c *shapeCache) len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.shapes)
}

// shapeOf returns the cached classification of t.
func shapeOf(t reflect.Type) *shape {
	return shapes.get(t)
}

func classify(t reflect.Type) *shape {
	switch {
	case t.Kind() == reflect.Interface:
		// resolved per value from the dynamic type
		return &shape{kind: kindInterface}
	case t.Implements(appenderType):
		return &shape{kind: kindAppender}
	case t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(appenderType):
		return &shape{kind: kindAppenderPtr}
	case t.Implements(unorderedRangerType):
		return &shape{kind: kindUnorderedRanger}
	case t.Implements(rangerType):
		return &shape{kind: kindRanger}
	case t == listType:
		return &shape{kind: kindList}
	}

	switch t.Kind() {
	case reflect.Bool:
		return &shape{kind: kindBool, width: 1}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &shape{kind: kindInt, width: int(t.Size())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return &shape{kind: kindUint, width: int(t.Size())}
	case reflect.Pointer, reflect.UnsafePointer:
		return &shape{kind: kindPointer, width: int(t.Size())}
	case reflect.Float32, reflect.Float64:
		return &shape{kind: kindFloat, width: int(t.Size())}
	case reflect.Complex64, reflect.Complex128:
		return &shape{kind: kindComplex, width: int(t.Size())}
	case reflect.Array:
		return &shape{kind: kindArray}
	case reflect.String:
		return &shape{kind: kindString}
	case reflect.Slice:
		return &shape{kind: kindSlice}
	case reflect.Map:
		return &shape{kind: kindMap}
	case reflect.Struct:
		return &shape{kind: kindStruct, fields: hashedFields(t)}
	default:
		return &shape{kind: kindUnsupported}
	}
}

// hashedFields returns the exported fields of t and its embedded structs,
// skipping fields tagged hash:"-".
func hashedFields(t reflect.Type) []field {
	var fields []field
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Tag.Get("hash") == "-" {
			continue
		}
		switch {
		case f.IsExported():
			fields = append(fields, field{index: i})
		case f.Anonymous && f.Type.Kind() == reflect.Struct:
			fields = append(fields, field{index: i, base: true})
		}
	}
	return fields
}

func unsupported(t reflect.Type) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}
