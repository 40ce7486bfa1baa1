// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"sync"
)

// Logger writes leveled lines to its writer. It is safe for concurrent
// use, and so are the child loggers created from it.
type Logger struct {
	settings settings
	children []*Logger
	// mutex is shared with every child so lines never interleave.
	mutex *sync.Mutex
}

// New creates a root logger. Loggers sharing a writer should be children
// of one root, created with the New method.
func New(options ...Option) *Logger {
	s := newSettings(options)
	s.setDefaults()
	return &Logger{
		settings: s,
		mutex:    new(sync.Mutex),
	}
}

// New creates a child logger. Options it does not set are inherited from
// l, and later patches of l propagate to it.
func (l *Logger) New(options ...Option) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	s := newSettings(options)
	s.mergeWith(l.settings)
	s.setDefaults()

	child := &Logger{settings: s, mutex: l.mutex}
	l.children = append(l.children, child)
	return child
}
