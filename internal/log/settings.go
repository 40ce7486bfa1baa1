// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	caller  callerSettings
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

// mergePointer sets *dst to a copy of *src when dst is unset.
func mergePointer[T any](dst **T, src *T) {
	if *dst == nil && src != nil {
		value := *src
		*dst = &value
	}
}

// overridePointer sets *dst to a copy of *src when src is set.
func overridePointer[T any](dst **T, src *T) {
	if src != nil {
		value := *src
		*dst = &value
	}
}

// mergeWith fills the unset values of s from other. The context of other
// comes first.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}
	mergePointer(&s.level, other.level)
	s.caller.mergeWith(other.caller)

	if len(other.context) == 0 {
		return
	}
	var context []contextKeyValues
	for _, kv := range other.context {
		context = appendContext(context, kv)
	}
	for _, kv := range s.context {
		context = appendContext(context, kv)
	}
	s.context = context
}

// overrideWith replaces the values of s with the ones set in other and
// extends its context.
func (s *settings) overrideWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}
	overridePointer(&s.level, other.level)
	s.caller.overrideWith(other.caller)

	for _, kv := range other.context {
		s.context = appendContext(s.context, kv)
	}
}

// appendContext adds the values of kv to the entry with the same key, or
// appends a copy of kv.
func appendContext(context []contextKeyValues, kv contextKeyValues) []contextKeyValues {
	for i := range context {
		if context[i].key == kv.key {
			context[i].values = append(context[i].values, kv.values...)
			return context
		}
	}
	return append(context, contextKeyValues{
		key:    kv.key,
		values: append([]string(nil), kv.values...),
	})
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}
	info := Info
	mergePointer(&s.level, &info)
	s.caller.setDefaults()
}
