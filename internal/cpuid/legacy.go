// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package cpuid

// Cyrix configuration registers are reached through an index/data port pair.
const (
	cyrixIndexPort uint16 = 0x22
	cyrixDataPort  uint16 = 0x23

	cyrixCCR3 uint8 = 0xC3
	cyrixCCR4 uint8 = 0xE8

	ccr3MapEnMask  uint8 = 0xF0
	ccr3MapEnValue uint8 = 0x10
	ccr4CPUIDBit   uint8 = 0x80
)

// PortIO is byte-wide access to the processor I/O port space.
type PortIO interface {
	In(port uint16) uint8
	Out(port uint16, val uint8)
}

func readCCR(io PortIO, reg uint8) uint8 {
	io.Out(cyrixIndexPort, reg)
	return io.In(cyrixDataPort)
}

func writeCCR(io PortIO, reg, val uint8) {
	io.Out(cyrixIndexPort, reg)
	io.Out(cyrixDataPort, val)
}

// enableCyrixCPUID sets the CPUID enable bit in CCR4. CCR4 is only visible
// while MAPEN in CCR3 is 0001, so CCR3 is switched over and then restored.
// Running it twice leaves the registers in the same state as running it once.
func enableCyrixCPUID(io PortIO) {
	ccr3 := readCCR(io, cyrixCCR3)
	writeCCR(io, cyrixCCR3, (ccr3&^ccr3MapEnMask)|ccr3MapEnValue)
	ccr4 := readCCR(io, cyrixCCR4)
	writeCCR(io, cyrixCCR4, ccr4|ccr4CPUIDBit)
	writeCCR(io, cyrixCCR3, ccr3)
}
