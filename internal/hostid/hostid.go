// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package hostid reads processor identification that is not available
// through CPUID: the ARM main ID register, the POWER processor version
// register, and descriptive hints from the operating system and firmware.
package hostid

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	kcpuid "github.com/klauspost/cpuid/v2"
)

// Kind names the identification register a value came from.
type Kind string

const (
	KindNone Kind = ""
	KindMIDR Kind = "midr"
	KindPVR  Kind = "pvr"
)

// IDRegister is a raw identification register value.
type IDRegister struct {
	Kind  Kind   `json:"kind,omitempty" yaml:"kind,omitempty" cbor:"kind,omitempty"`
	Value uint64 `json:"value,omitempty" yaml:"value,omitempty" cbor:"value,omitempty"`
}

// IsZero reports whether no register was read.
func (r IDRegister) IsZero() bool {
	return r.Kind == KindNone
}

func (r IDRegister) String() string {
	switch r.Kind {
	case KindMIDR:
		return MIDR(r.Value).String()
	case KindPVR:
		return PVR(r.Value).String() // #nosec G115
	}
	return ""
}

// MIDR is the ARM Main ID Register.
type MIDR uint64

func (m MIDR) Implementer() uint32  { return uint32(m>>24) & 0xFF }
func (m MIDR) Variant() uint32      { return uint32(m>>20) & 0xF }
func (m MIDR) Architecture() uint32 { return uint32(m>>16) & 0xF }
func (m MIDR) PartNum() uint32      { return uint32(m>>4) & 0xFFF }
func (m MIDR) Revision() uint32     { return uint32(m) & 0xF }

func (m MIDR) String() string {
	return fmt.Sprintf("implementer=0x%02x variant=0x%x architecture=0x%x part=0x%03x revision=0x%x",
		m.Implementer(), m.Variant(), m.Architecture(), m.PartNum(), m.Revision())
}

// NewMIDR packs the fields of a main ID register.
func NewMIDR(implementer, variant, architecture, part, revision uint32) MIDR {
	return MIDR(uint64(implementer&0xFF)<<24 |
		uint64(variant&0xF)<<20 |
		uint64(architecture&0xF)<<16 |
		uint64(part&0xFFF)<<4 |
		uint64(revision&0xF))
}

// PVR is the POWER Processor Version Register.
type PVR uint32

func (p PVR) Version() uint32  { return uint32(p) >> 16 }
func (p PVR) Revision() uint32 { return uint32(p) & 0xFFFF }

func (p PVR) String() string {
	return fmt.Sprintf("version=0x%04x revision=0x%04x", p.Version(), p.Revision())
}

// Info is everything the host could tell about its processor besides CPUID.
type Info struct {
	Arch string
	ID   IDRegister
	// Platform is the SMBIOS processor version, used to tell apart designs
	// built on the same licensed core.
	Platform string
	// Brand is the marketing name the operating system reports.
	Brand string
	// Cores is the logical processor count the operating system reports.
	Cores int
}

// Detect gathers host information. A missing ID register or SMBIOS table is
// not an error; the corresponding fields stay empty and the reason is
// logged at debug level.
func Detect(ctx context.Context) (Info, error) {
	info := Info{Arch: runtime.GOARCH}
	if err := ctx.Err(); err != nil {
		return info, err
	}
	id, err := readIDRegister()
	if err != nil {
		slog.Debug("no identification register", slog.String("error", err.Error()))
	}
	info.ID = id
	if err := ctx.Err(); err != nil {
		return info, err
	}
	platform, err := processorVersion()
	if err != nil {
		slog.Debug("no SMBIOS processor version", slog.String("error", err.Error()))
	}
	info.Platform = platform
	info.Brand = strings.TrimSpace(kcpuid.CPU.BrandName)
	info.Cores = kcpuid.CPU.LogicalCores
	slog.Debug("host identification",
		slog.String("arch", info.Arch),
		slog.String("id", id.String()),
		slog.String("platform", info.Platform),
		slog.String("brand", info.Brand),
		slog.Int("cores", info.Cores))
	return info, nil
}
