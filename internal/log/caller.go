// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// callerSettings selects which parts of the logging call site are
// appended to each line. A nil field is unset.
type callerSettings struct {
	file     *bool
	line     *bool
	function *bool
}

func (c *callerSettings) fields() [3]**bool {
	return [3]**bool{&c.file, &c.line, &c.function}
}

func (c *callerSettings) mergeWith(other callerSettings) {
	own, others := c.fields(), other.fields()
	for i := range own {
		mergePointer(own[i], *others[i])
	}
}

func (c *callerSettings) overrideWith(other callerSettings) {
	own, others := c.fields(), other.fields()
	for i := range own {
		overridePointer(own[i], *others[i])
	}
}

func (c *callerSettings) setDefaults() {
	for _, field := range c.fields() {
		mergePointer(field, new(bool))
	}
}

func (c callerSettings) enabled() bool {
	return *c.file || *c.line || *c.function
}

// callerDepth skips callerString, Logger.log and the exported logging
// method.
const callerDepth = 3

// callerString formats the call site as file:Lline:function, keeping
// only the enabled parts.
func callerString(c callerSettings) string {
	if !c.enabled() {
		return ""
	}

	pc, file, line, ok := runtime.Caller(callerDepth)
	if !ok {
		return "error"
	}

	parts := make([]string, 0, 3)
	if *c.file {
		parts = append(parts, filepath.Base(file))
	}
	if *c.line {
		parts = append(parts, "L"+strconv.Itoa(line))
	}
	if *c.function {
		if f := runtime.FuncForPC(pc); f != nil {
			parts = append(parts, strings.TrimPrefix(filepath.Ext(f.Name()), "."))
		}
	}
	return strings.Join(parts, ":")
}
