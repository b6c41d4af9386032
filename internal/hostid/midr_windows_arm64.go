// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package hostid

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows/registry"
)

const centralProcessorKey = `HARDWARE\DESCRIPTION\System\CentralProcessor\0`

// readIDRegister reads the MIDR_EL1 copy Windows keeps in the registry.
func readIDRegister() (IDRegister, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, centralProcessorKey, registry.QUERY_VALUE)
	if err != nil {
		return IDRegister{}, errors.Wrap(err, "failed to open processor registry key")
	}
	defer k.Close()
	v, _, err := k.GetIntegerValue("CP 4000")
	if err != nil {
		return IDRegister{}, errors.Wrap(err, "failed to read CP 4000")
	}
	return IDRegister{Kind: KindMIDR, Value: v}, nil
}
