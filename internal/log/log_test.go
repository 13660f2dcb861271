// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timePrefixRegex = `^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}(Z|[+-][0-9]{2}:[0-9]{2}) `

// levelRegex matches the level string with or without terminal colours.
func levelRegex(level Level) string {
	return `(\x1b\[[0-9;]*m)?` + level.String() + `(\x1b\[[0-9;]*m)? `
}

func Test_Logger_log(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		options []Option
		level   Level
		format  string
		args    []interface{}
		regex   string
	}{
		"below level": {
			options: []Option{SetLevel(Info)},
			level:   Debug,
			format:  "message",
		},
		"plain message": {
			options: []Option{SetLevel(Trace)},
			level:   Info,
			format:  "message",
			regex:   timePrefixRegex + levelRegex(Info) + "message\n$",
		},
		"formatted message": {
			options: []Option{SetLevel(Warn)},
			level:   Error,
			format:  "clamped %d to %s",
			args:    []interface{}{10, "zero"},
			regex:   timePrefixRegex + levelRegex(Error) + "clamped 10 to zero\n$",
		},
		"context": {
			options: []Option{AddContext("pkg", "kp"), AddContext("pkg", "power")},
			level:   Critical,
			format:  "message",
			regex:   timePrefixRegex + levelRegex(Critical) + "message\tpkg=kp,power\n$",
		},
		"trace": {
			options: []Option{SetLevel(Trace)},
			level:   Trace,
			format:  "%s",
			args:    []interface{}{"deep"},
			regex:   timePrefixRegex + levelRegex(Trace) + "deep\n$",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buffer := bytes.NewBuffer(nil)
			options := append([]Option{SetWriter(buffer)}, testCase.options...)
			logger := New(options...)

			switch testCase.level {
			case Trace:
				logger.Tracef(testCase.format, testCase.args...)
			case Debug:
				logger.Debugf(testCase.format, testCase.args...)
			case Info:
				logger.Infof(testCase.format, testCase.args...)
			case Error:
				logger.Errorf(testCase.format, testCase.args...)
			case Critical:
				logger.Criticalf(testCase.format, testCase.args...)
			}

			if testCase.regex == "" {
				assert.Empty(t, buffer.String())
				return
			}
			assert.Regexp(t, regexp.MustCompile(testCase.regex), buffer.String())
		})
	}
}

func Test_Logger_New(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	parent := New(SetWriter(buffer), SetLevel(Warn), AddContext("module", "parent"))
	child := parent.New(AddContext("pkg", "child"))

	child.Info("not logged")
	assert.Empty(t, buffer.String())

	child.Warnf("%s", "logged")
	assert.Regexp(t, timePrefixRegex+levelRegex(Warn)+"logged\tmodule=parent pkg=child\n$", buffer.String())

	buffer.Reset()
	parent.PatchLevel(Debug)
	child.Debugf("patched")
	assert.Regexp(t, timePrefixRegex+levelRegex(Debug)+"patched\tmodule=parent pkg=child\n$", buffer.String())
}

func Test_ParseLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		level      Level
		errWrapped error
	}{
		"short":   {s: "dbug", level: Debug},
		"long":    {s: "Debug", level: Debug},
		"info":    {s: "INFO", level: Info},
		"crit":    {s: "critical", level: Critical},
		"warning": {s: "warning", level: Warn},
		"unknown": {
			s:          "verbose",
			errWrapped: ErrLevelNotRecognised,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(testCase.s)
			require.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.level, level)
		})
	}
}
