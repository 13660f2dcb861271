// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"fmt"
	"strings"
	"time"
)

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if level < *l.settings.level {
		return
	}

	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}

	var line strings.Builder
	line.WriteString(time.Now().Format(time.RFC3339))
	line.WriteString(" " + level.colouredString() + " " + message)
	for i, kv := range l.settings.context {
		separator := " "
		if i == 0 {
			separator = "\t"
		}
		line.WriteString(separator + kv.key + "=" + strings.Join(kv.values, ","))
	}
	line.WriteString("\n")

	_, _ = l.settings.writer.Write([]byte(line.String()))
}

func (l *Logger) Info(s string) { l.log(Info, s) }

func (l *Logger) Tracef(format string, args ...interface{}) { l.log(Trace, format, args...) }

func (l *Logger) Debugf(format string, args ...interface{}) { l.log(Debug, format, args...) }

func (l *Logger) Infof(format string, args ...interface{}) { l.log(Info, format, args...) }

func (l *Logger) Warnf(format string, args ...interface{}) { l.log(Warn, format, args...) }

func (l *Logger) Errorf(format string, args ...interface{}) { l.log(Error, format, args...) }

// Criticalf logs at the critical level, for failures stopping the node.
func (l *Logger) Criticalf(format string, args ...interface{}) { l.log(Critical, format, args...) }
