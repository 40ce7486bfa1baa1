// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash2

import (
	"fmt"

	"github.com/ChainSafe/hash2/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "hash2"))

// SetLogLevel sets the level of the package logger, for example "debug"
// or "trce".
func SetLogLevel(level string) error {
	l, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("setting log level: %w", err)
	}
	logger.Patch(log.SetLevel(l))
	return nil
}

// failed logs a non-nil err of operation at debug level and returns it
// unchanged.
func failed(operation string, err error) error {
	if err != nil {
		logger.Debugf("%s failed: %s", operation, err)
	}
	return err
}
