// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

//go:build ppc64 || ppc64le

package hostid

// implemented in pvr_ppc64x.s
func getPVR() uint64

func readIDRegister() (IDRegister, error) {
	return IDRegister{Kind: KindPVR, Value: getPVR() & 0xFFFFFFFF}, nil
}
