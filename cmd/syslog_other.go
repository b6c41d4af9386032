//go:build windows || plan9

package cmd

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"log/slog"

	"github.com/pkg/errors"
)

// NewSyslogHandler fails, there is no syslog on this platform.
func NewSyslogHandler(logOpts *slog.HandlerOptions) (slog.Handler, error) {
	return nil, errors.New("syslog is not available on this platform")
}
