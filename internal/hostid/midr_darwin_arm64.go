// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package hostid

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"cpuident/internal/vendor"
)

// hw.cpufamily values and the performance core part number they stand for
var appleFamilies = map[uint32]uint32{
	0x1b588bb3: 0x023, // Firestorm/Icestorm
	0xda33d83d: 0x033, // Avalanche/Blizzard
}

// readIDRegister synthesizes a main ID register from hw.cpufamily since user
// space cannot read MIDR_EL1 on macOS.
func readIDRegister() (IDRegister, error) {
	family, err := unix.SysctlUint32("hw.cpufamily")
	if err != nil {
		return IDRegister{}, errors.Wrap(err, "failed to read hw.cpufamily")
	}
	midr, err := appleMIDR(family)
	if err != nil {
		return IDRegister{}, err
	}
	return IDRegister{Kind: KindMIDR, Value: uint64(midr)}, nil
}

func appleMIDR(family uint32) (MIDR, error) {
	part, ok := appleFamilies[family]
	if !ok {
		return 0, errors.Errorf("unrecognized hw.cpufamily %#x", family)
	}
	return NewMIDR(vendor.ImplementerApple, 0, 0xF, part, 0), nil
}
