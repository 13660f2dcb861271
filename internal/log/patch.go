// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// Patch patches the existing settings with any option given.
// This is thread safe and propagates to all child loggers.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	patch := newSettings(options)
	l.patchWithoutLocking(patch)
}

// PatchLevel patches the level of the logger and of all its childs.
func (l *Logger) PatchLevel(level Level) {
	l.Patch(SetLevel(level))
}

func (l *Logger) patchWithoutLocking(patch settings) {
	l.settings.patch(patch)
	for _, child := range l.childs {
		child.patchWithoutLocking(patch)
	}
}
