// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// Patch patches the existing settings with any option given.
// This is thread safe and propagates to all child loggers.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.patchWithoutLocking(newSettings(options))
}

func (l *Logger) patchWithoutLocking(patch settings) {
	l.settings.overrideWith(patch)
	for _, child := range l.children {
		child.patchWithoutLocking(patch)
	}
}
