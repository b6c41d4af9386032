// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package cpuid

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// requestPorts asks the kernel for access to count ports starting at from.
// This needs CAP_SYS_RAWIO.
func requestPorts(from uint16, count int) error {
	if err := unix.Ioperm(int(from), count, 1); err != nil {
		return errors.Wrapf(err, "ioperm %#x+%d", from, count)
	}
	return nil
}
