// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"sync"
)

// Logger writes levelled lines with a key values context.
// A logger and its children share one mutex and are safe for
// concurrent use.
type Logger struct {
	settings settings
	childs   []*Logger
	mutex    *sync.Mutex
}

// New creates a root logger. Loggers sharing a writer should be
// children of the same root.
func New(options ...Option) *Logger {
	s := newSettings(options)
	s.setDefaults()

	return &Logger{
		settings: s,
		mutex:    new(sync.Mutex),
	}
}

// New creates a child logger inheriting the settings it does not set.
// Patches of the parent propagate to it.
func (l *Logger) New(options ...Option) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	s := newSettings(options)
	s.inherit(l.settings)
	s.setDefaults()

	child := &Logger{
		settings: s,
		mutex:    l.mutex,
	}
	l.childs = append(l.childs, child)
	return child
}
