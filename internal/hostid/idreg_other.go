// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(linux && arm64) && !(darwin && arm64) && !(windows && arm64) && !ppc64 && !ppc64le

package hostid

import (
	"runtime"

	"github.com/pkg/errors"
)

func readIDRegister() (IDRegister, error) {
	return IDRegister{}, errors.Errorf("no identification register reader for %s/%s", runtime.GOOS, runtime.GOARCH)
}
