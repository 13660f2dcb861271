// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type contextKeyValues struct {
	key    string
	values []string
}

type settings struct {
	writer  io.Writer
	level   *Level
	context []contextKeyValues
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

func (s *settings) addContext(key string, values ...string) {
	for i := range s.context {
		if s.context[i].key == key {
			s.context[i].values = append(s.context[i].values, values...)
			return
		}
	}
	s.context = append(s.context, contextKeyValues{key: key, values: values})
}

// inherit fills the fields the child did not set from its parent.
// The parent context is printed first.
func (s *settings) inherit(parent settings) {
	if s.writer == nil {
		s.writer = parent.writer
	}
	if s.level == nil && parent.level != nil {
		level := *parent.level
		s.level = &level
	}

	own := s.context
	s.context = make([]contextKeyValues, 0, len(parent.context)+len(own))
	for _, kv := range parent.context {
		s.addContext(kv.key, append([]string(nil), kv.values...)...)
	}
	for _, kv := range own {
		s.addContext(kv.key, kv.values...)
	}
}

// patch overrides the fields set in the patch.
func (s *settings) patch(patch settings) {
	if patch.writer != nil {
		s.writer = patch.writer
	}
	if patch.level != nil {
		level := *patch.level
		s.level = &level
	}
	for _, kv := range patch.context {
		s.addContext(kv.key, kv.values...)
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}
	if s.level == nil {
		level := Info
		s.level = &level
	}
}
