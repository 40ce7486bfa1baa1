// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color" //nolint:misspell
)

// Level is the level of the logger.
type Level uint8

const (
	// Trace is the trace (trce) level.
	Trace Level = iota
	// Debug is the debug (dbug) level.
	Debug
	// Info is the info level.
	Info
	// Warn is the warn level.
	Warn
	// Error is the error (eror) level.
	Error
	// Critical is the critical (crit) level.
	Critical
)

type levelNames struct {
	short  string
	long   string
	colour color.Attribute
}

var levels = [...]levelNames{
	Trace:    {short: "TRCE", long: "TRACE", colour: color.FgHiCyan},
	Debug:    {short: "DBUG", long: "DEBUG", colour: color.FgHiBlue},
	Info:     {short: "INFO", long: "INFO", colour: color.FgCyan},
	Warn:     {short: "WARN", long: "WARNING", colour: color.FgYellow},
	Error:    {short: "EROR", long: "ERROR", colour: color.FgHiRed},
	Critical: {short: "CRIT", long: "CRITICAL", colour: color.FgRed},
}

// String returns the four letter name of the level.
func (level Level) String() string {
	if int(level) >= len(levels) {
		return "???"
	}
	return levels[level].short
}

// ColouredString returns the four letter name of the level wrapped in
// its terminal colour.
func (level Level) ColouredString() string {
	attribute := color.Reset
	if int(level) < len(levels) {
		attribute = levels[level].colour
	}
	return color.New(attribute).Sprint(level.String())
}

// ErrLevelNotRecognised is returned by ParseLevel for unknown names.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// ParseLevel parses the short (trce) or long (trace) name of a level,
// case insensitively.
func ParseLevel(s string) (Level, error) {
	upper := strings.ToUpper(s)
	for level, names := range levels {
		if upper == names.short || upper == names.long {
			return Level(level), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrLevelNotRecognised, s)
}
