// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package cpuid provides access to the x86 processor identification
// instruction. A Probe answers leaf/subleaf queries; Native returns the probe
// for the build target and Replay answers from a recorded dump.
package cpuid

import (
	"encoding/binary"
	"fmt"
)

// well known leaves
const (
	LeafVendor        uint32 = 0x0
	LeafProcessorInfo uint32 = 0x1
	LeafCacheParams   uint32 = 0x4
	LeafExtFeatures   uint32 = 0x7
	LeafTopology      uint32 = 0xB
	LeafXSave         uint32 = 0xD

	ExtendedBase     uint32 = 0x80000000
	LeafExtFeatures1 uint32 = 0x80000001
	LeafBrand1       uint32 = 0x80000002
	LeafBrand2       uint32 = 0x80000003
	LeafBrand3       uint32 = 0x80000004

	// non-standard leaves that return a vendor message on some parts
	LeafAMDEasterEgg  uint32 = 0x8FFFFFFF
	LeafRiseEasterEgg uint32 = 0x5A4E
)

// Register names one of the four result words.
type Register int

const (
	EAX Register = iota
	EBX
	ECX
	EDX
)

func (r Register) String() string {
	switch r {
	case EAX:
		return "EAX"
	case EBX:
		return "EBX"
	case ECX:
		return "ECX"
	case EDX:
		return "EDX"
	}
	return fmt.Sprintf("Register(%d)", int(r))
}

// Registers holds the four result words of one query.
type Registers struct {
	EAX uint32 `json:"eax" yaml:"eax"`
	EBX uint32 `json:"ebx" yaml:"ebx"`
	ECX uint32 `json:"ecx" yaml:"ecx"`
	EDX uint32 `json:"edx" yaml:"edx"`
}

// Get returns the named result word. Unknown register names return zero.
func (r Registers) Get(reg Register) uint32 {
	switch reg {
	case EAX:
		return r.EAX
	case EBX:
		return r.EBX
	case ECX:
		return r.ECX
	case EDX:
		return r.EDX
	}
	return 0
}

// Bytes returns the words in EAX, EBX, ECX, EDX order, each low byte first.
func (r Registers) Bytes() []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint32(b[0:], r.EAX)
	binary.LittleEndian.PutUint32(b[4:], r.EBX)
	binary.LittleEndian.PutUint32(b[8:], r.ECX)
	binary.LittleEndian.PutUint32(b[12:], r.EDX)
	return b
}

func (r Registers) IsZero() bool {
	return r == Registers{}
}

func (r Registers) String() string {
	return fmt.Sprintf("eax=%08x ebx=%08x ecx=%08x edx=%08x", r.EAX, r.EBX, r.ECX, r.EDX)
}

// Probe is the access path to the identification instruction.
//
// Query must return all-zero words, without executing the instruction, when
// HasSupport reports false. EnableLegacyVendorSupport is idempotent and only
// has an effect on processors for which DetectLegacyVendor reports true.
type Probe interface {
	HasSupport() bool
	DetectLegacyVendor() bool
	EnableLegacyVendorSupport()
	Query(leaf, subleaf uint32) Registers
}

// MaxBasicLeaf returns the highest basic leaf the processor reports.
func MaxBasicLeaf(p Probe) uint32 {
	return p.Query(LeafVendor, 0).EAX
}

// MaxExtendedLeaf returns the highest extended leaf the processor reports, or
// zero when the extended range is not implemented.
func MaxExtendedLeaf(p Probe) uint32 {
	eax := p.Query(ExtendedBase, 0).EAX
	if eax < ExtendedBase {
		return 0
	}
	return eax
}

// Available reports whether leaf lies within the basic or extended range the
// processor reports as supported.
func Available(p Probe, leaf uint32) bool {
	if !p.HasSupport() {
		return false
	}
	if leaf >= ExtendedBase {
		return leaf <= MaxExtendedLeaf(p)
	}
	return leaf <= MaxBasicLeaf(p)
}

// QueryAvailable queries leaf only when it is within the reported range.
// The second result is false, and the words zero, when it is not.
func QueryAvailable(p Probe, leaf, subleaf uint32) (Registers, bool) {
	if !Available(p, leaf) {
		return Registers{}, false
	}
	return p.Query(leaf, subleaf), true
}

// ClassProber is implemented by probes that can tell a 386 from a later
// processor when the identification instruction is missing.
type ClassProber interface {
	Is386() bool
}

// Is386 reports whether p identifies the processor as a 386. Probes that
// cannot tell report false.
func Is386(p Probe) bool {
	if c, ok := p.(ClassProber); ok {
		return c.Is386()
	}
	return false
}

// Zero is a probe for processors without the identification instruction.
type Zero struct{}

func (Zero) HasSupport() bool            { return false }
func (Zero) DetectLegacyVendor() bool    { return false }
func (Zero) EnableLegacyVendorSupport()  {}
func (Zero) Query(_, _ uint32) Registers { return Registers{} }
