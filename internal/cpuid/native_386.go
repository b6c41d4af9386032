// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package cpuid

import (
	"log/slog"
	"sync"
)

// implemented in cpuid_386.s
func hasCPUID() bool
func isCyrix() bool
func isI386() bool
func cpuidex(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)
func inb(port uint32) uint32
func outb(port, val uint32)

// native is the 386 probe. Support is tested on every call because the Cyrix
// enablement sequence turns the instruction on at runtime.
type native struct {
	enableOnce sync.Once
}

var nativeProbe = &native{}

// Native returns the probe backed by the processor the program runs on.
func Native() Probe {
	return nativeProbe
}

func (n *native) HasSupport() bool {
	return hasCPUID()
}

func (n *native) DetectLegacyVendor() bool {
	return isCyrix()
}

func (n *native) EnableLegacyVendorSupport() {
	n.enableOnce.Do(func() {
		if err := requestPorts(cyrixIndexPort, 2); err != nil {
			slog.Debug("legacy vendor enablement skipped", slog.String("error", err.Error()))
			return
		}
		enableCyrixCPUID(hwPorts{})
		slog.Debug("legacy vendor enablement done", slog.Bool("has_cpuid", hasCPUID()))
	})
}

// Is386 reports whether the alignment check flag is fixed, which is the case
// on the 386 only.
func (n *native) Is386() bool {
	return isI386()
}

func (n *native) Query(leaf, subleaf uint32) Registers {
	if !n.HasSupport() {
		return Registers{}
	}
	a, b, c, d := cpuidex(leaf, subleaf)
	return Registers{EAX: a, EBX: b, ECX: c, EDX: d}
}

// hwPorts drives the real I/O ports.
type hwPorts struct{}

func (hwPorts) In(port uint16) uint8 {
	return uint8(inb(uint32(port))) // #nosec G115
}

func (hwPorts) Out(port uint16, val uint8) {
	outb(uint32(port), uint32(val))
}
