// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package hostid

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sys/cpu"
)

// implemented in midr_linux_arm64.s
func getMIDR() uint64

const midrSysfsPath = "/sys/devices/system/cpu/cpu0/regs/identification/midr_el1"

// readIDRegister reads MIDR_EL1 directly when the kernel emulates the
// access, otherwise from sysfs.
func readIDRegister() (IDRegister, error) {
	if cpu.ARM64.HasCPUID {
		return IDRegister{Kind: KindMIDR, Value: getMIDR()}, nil
	}
	data, err := os.ReadFile(midrSysfsPath)
	if err != nil {
		return IDRegister{}, errors.Wrap(err, "failed to read midr_el1")
	}
	v, err := parseMIDR(string(data))
	if err != nil {
		return IDRegister{}, err
	}
	return IDRegister{Kind: KindMIDR, Value: v}, nil
}

func parseMIDR(s string) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse midr_el1 %q", s)
	}
	return v, nil
}
