// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package cpuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type portWrite struct {
	port uint16
	val  uint8
}

// fakeCyrix models the index/data configuration register pair. CCR4 is only
// reachable while MAPEN is 0001.
type fakeCyrix struct {
	ccr    map[uint8]uint8
	index  uint8
	writes []portWrite
}

func newFakeCyrix(ccr3, ccr4 uint8) *fakeCyrix {
	return &fakeCyrix{ccr: map[uint8]uint8{cyrixCCR3: ccr3, cyrixCCR4: ccr4}}
}

func (f *fakeCyrix) mapped(reg uint8) bool {
	if reg != cyrixCCR4 {
		return true
	}
	return f.ccr[cyrixCCR3]&ccr3MapEnMask == ccr3MapEnValue
}

func (f *fakeCyrix) In(port uint16) uint8 {
	if port != cyrixDataPort || !f.mapped(f.index) {
		return 0xFF
	}
	return f.ccr[f.index]
}

func (f *fakeCyrix) Out(port uint16, val uint8) {
	f.writes = append(f.writes, portWrite{port, val})
	switch port {
	case cyrixIndexPort:
		f.index = val
	case cyrixDataPort:
		if f.mapped(f.index) {
			f.ccr[f.index] = val
		}
	}
}

func TestEnableCyrixCPUID(t *testing.T) {
	bus := newFakeCyrix(0x0A, 0x01)
	enableCyrixCPUID(bus)
	assert.Equal(t, uint8(0x81), bus.ccr[cyrixCCR4], "CPUID bit set, other CCR4 bits kept")
	assert.Equal(t, uint8(0x0A), bus.ccr[cyrixCCR3], "CCR3 restored")
	require.Len(t, bus.writes, 8)
	assert.Equal(t, []portWrite{
		{cyrixIndexPort, cyrixCCR3},
		{cyrixIndexPort, cyrixCCR3},
		{cyrixDataPort, 0x1A},
		{cyrixIndexPort, cyrixCCR4},
		{cyrixIndexPort, cyrixCCR4},
		{cyrixDataPort, 0x81},
		{cyrixIndexPort, cyrixCCR3},
		{cyrixDataPort, 0x0A},
	}, bus.writes)
}

func TestEnableCyrixCPUIDIdempotent(t *testing.T) {
	bus := newFakeCyrix(0xF3, 0x00)
	enableCyrixCPUID(bus)
	first := map[uint8]uint8{cyrixCCR3: bus.ccr[cyrixCCR3], cyrixCCR4: bus.ccr[cyrixCCR4]}
	enableCyrixCPUID(bus)
	assert.Equal(t, first[cyrixCCR3], bus.ccr[cyrixCCR3])
	assert.Equal(t, first[cyrixCCR4], bus.ccr[cyrixCCR4])
	assert.Equal(t, uint8(0x80), bus.ccr[cyrixCCR4])
	assert.Equal(t, uint8(0xF3), bus.ccr[cyrixCCR3])
}
