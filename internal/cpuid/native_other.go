// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

//go:build !amd64 && !386

package cpuid

// Native returns the probe for targets without the x86 identification
// instruction. Every query answers zero.
func Native() Probe {
	return Zero{}
}
