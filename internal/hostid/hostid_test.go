// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package hostid

import (
	"context"
	"runtime"
	"testing"

	"github.com/siderolabs/go-smbios/smbios"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMIDRFields(t *testing.T) {
	tests := []struct {
		name        string
		midr        MIDR
		implementer uint32
		variant     uint32
		part        uint32
		revision    uint32
	}{
		{"neoverse n1", 0x413fd0c1, 0x41, 0x3, 0xd0c, 0x1},
		{"neoverse v1", 0x411fd401, 0x41, 0x1, 0xd40, 0x1},
		{"ampereone", 0xc00fac30, 0xc0, 0x0, 0xac3, 0x0},
		{"cortex-a72", 0x410fd083, 0x41, 0x0, 0xd08, 0x3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.implementer, tt.midr.Implementer())
			assert.Equal(t, tt.variant, tt.midr.Variant())
			assert.Equal(t, uint32(0xF), tt.midr.Architecture())
			assert.Equal(t, tt.part, tt.midr.PartNum())
			assert.Equal(t, tt.revision, tt.midr.Revision())
			assert.Equal(t, tt.midr, NewMIDR(tt.implementer, tt.variant, 0xF, tt.part, tt.revision))
		})
	}
}

func TestMIDRString(t *testing.T) {
	assert.Equal(t, "implementer=0x41 variant=0x3 architecture=0xf part=0xd0c revision=0x1", MIDR(0x413fd0c1).String())
	r := IDRegister{Kind: KindMIDR, Value: 0x413fd0c1}
	assert.Equal(t, MIDR(0x413fd0c1).String(), r.String())
	assert.False(t, r.IsZero())
	assert.True(t, IDRegister{}.IsZero())
	assert.Empty(t, IDRegister{}.String())
}

func TestPVR(t *testing.T) {
	p := PVR(0x004e1202)
	assert.Equal(t, uint32(0x004e), p.Version())
	assert.Equal(t, uint32(0x1202), p.Revision())
	assert.Equal(t, "version=0x004e revision=0x1202", p.String())
	assert.Equal(t, p.String(), IDRegister{Kind: KindPVR, Value: 0x004e1202}.String())
}

func TestPlatformFrom(t *testing.T) {
	populated := smbios.ProcessorInformation{Status: 0x41, ProcessorVersion: " AWS Graviton2 "}
	assert.Equal(t, "AWS Graviton2", platformFrom(populated))
	empty := smbios.ProcessorInformation{Status: 0, ProcessorVersion: "AWS Graviton2"}
	assert.Empty(t, platformFrom(empty))
}

func TestDetect(t *testing.T) {
	info, err := Detect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	if runtime.GOARCH == "amd64" || runtime.GOARCH == "386" {
		assert.True(t, info.ID.IsZero())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Detect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
