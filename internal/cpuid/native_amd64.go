// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package cpuid

// cpuidex executes the identification instruction, see cpuid_amd64.s
func cpuidex(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

// native is the amd64 probe. The instruction is architecturally guaranteed in
// long mode and no legacy vendor ever shipped a 64-bit part.
type native struct{}

var nativeProbe Probe = native{}

// Native returns the probe backed by the processor the program runs on.
func Native() Probe {
	return nativeProbe
}

func (native) HasSupport() bool           { return true }
func (native) DetectLegacyVendor() bool   { return false }
func (native) EnableLegacyVendorSupport() {}

func (native) Query(leaf, subleaf uint32) Registers {
	a, b, c, d := cpuidex(leaf, subleaf)
	return Registers{EAX: a, EBX: b, ECX: c, EDX: d}
}
