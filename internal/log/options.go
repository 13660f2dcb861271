// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
)

// Option modifies the settings of a logger.
type Option func(s *settings)

// SetLevel sets the minimum level logged, info by default.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// SetWriter sets the output of the logger, os.Stdout by default.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// AddContext appends a value to the context key, which is printed as
// key=value1,value2 after each message.
func AddContext(key, value string) Option {
	return func(s *settings) {
		s.addContext(key, value)
	}
}
