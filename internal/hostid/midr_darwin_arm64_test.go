// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package hostid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpuident/internal/vendor"
)

func TestAppleMIDR(t *testing.T) {
	tests := []struct {
		name   string
		family uint32
		part   uint32
	}{
		{"m1", 0x1b588bb3, 0x023},
		{"m2", 0xda33d83d, 0x033},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			midr, err := appleMIDR(tt.family)
			require.NoError(t, err)
			assert.Equal(t, vendor.ImplementerApple, midr.Implementer())
			assert.Equal(t, tt.part, midr.PartNum())
		})
	}
}

func TestAppleMIDRUnknownFamily(t *testing.T) {
	midr, err := appleMIDR(0x8765edea)
	assert.ErrorContains(t, err, "unrecognized hw.cpufamily")
	assert.Zero(t, midr)
}
