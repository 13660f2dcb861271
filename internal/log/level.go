// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Level is the level of the logger.
type Level uint8

const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
	Critical
)

type levelFormat struct {
	short  string
	long   string
	colour color.Attribute
}

var levelFormats = [...]levelFormat{
	Trace:    {short: "TRCE", long: "TRACE", colour: color.FgHiCyan},
	Debug:    {short: "DBUG", long: "DEBUG", colour: color.FgHiBlue},
	Info:     {short: "INFO", long: "INFO", colour: color.FgCyan},
	Warn:     {short: "WARN", long: "WARNING", colour: color.FgYellow},
	Error:    {short: "EROR", long: "ERROR", colour: color.FgHiRed},
	Critical: {short: "CRIT", long: "CRITICAL", colour: color.FgRed},
}

func (level Level) String() string {
	if int(level) >= len(levelFormats) {
		return "???"
	}
	return levelFormats[level].short
}

func (level Level) colouredString() string {
	if int(level) >= len(levelFormats) {
		return level.String()
	}
	return color.New(levelFormats[level].colour).Sprint(levelFormats[level].short)
}

// ErrLevelNotRecognised is returned by ParseLevel for an unknown level.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// ParseLevel parses a short (dbug) or long (debug) level name,
// ignoring case.
func ParseLevel(s string) (Level, error) {
	upper := strings.ToUpper(s)
	for level, format := range levelFormats {
		if upper == format.short || upper == format.long {
			return Level(level), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrLevelNotRecognised, s)
}
