// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package hostid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMIDR(t *testing.T) {
	v, err := parseMIDR("0x00000000413fd0c1\n")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x413fd0c1), v)

	_, err = parseMIDR("garbage")
	assert.Error(t, err)
}
