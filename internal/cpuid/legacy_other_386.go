// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

//go:build 386 && !linux

package cpuid

import (
	"runtime"

	"github.com/pkg/errors"
)

func requestPorts(from uint16, count int) error {
	return errors.Errorf("no user mode access to ports %#x+%d on %s", from, count, runtime.GOOS)
}
