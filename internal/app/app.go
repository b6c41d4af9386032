// Package app defines application-wide types, constants, and context
// that are shared across multiple commands.
package app

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"os"
	"path/filepath"

	"cpuident/internal/config"
)

// Name is the name of the application executable.
var Name = filepath.Base(os.Args[0])

// Context represents the application context that can be accessed from all commands.
type Context struct {
	Config      config.Config // Config is the resolved configuration.
	LogFilePath string        // LogFilePath is the path to the log file, empty when not logging to a file.
	Version     string        // Version is the version of the application.
}

// Flag names for flags defined in the root command, but sometimes used in other commands.
const (
	FlagConfigName    = "config"
	FlagDebugName     = "debug"
	FlagSyslogName    = "syslog"
	FlagLogStdOutName = "log-stdout"
	FlagLogFileName   = "log-file"
	FlagReplayName    = "replay"
	FlagFormatName    = "format"
	FlagOutputName    = "output"
)

// ExitError carries a process exit status. Err, when set, is reported before
// exiting; a nil Err exits silently, e.g., when a feature check evaluates
// false.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e ExitError) Unwrap() error {
	return e.Err
}
