// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package hostid

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/siderolabs/go-smbios/smbios"
)

// processorVersion returns the SMBIOS type 4 processor version string.
func processorVersion() (string, error) {
	s, err := smbios.New()
	if err != nil {
		return "", errors.Wrap(err, "failed to read SMBIOS")
	}
	return platformFrom(s.ProcessorInformation), nil
}

func platformFrom(p smbios.ProcessorInformation) string {
	if !p.Status.SocketPopulated() {
		return ""
	}
	return strings.TrimSpace(p.ProcessorVersion)
}
