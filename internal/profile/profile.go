// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package profile composes register probing, vendor and signature decoding,
// microarchitecture classification and feature detection into one report.
package profile

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"cpuident/internal/cpuid"
	"cpuident/internal/feature"
	"cpuident/internal/hostid"
	"cpuident/internal/signature"
	"cpuident/internal/uarch"
	"cpuident/internal/vendor"
)

// UnknownModel is reported when the processor has no brand string.
const UnknownModel = "Unknown"

// Profile describes one processor. It is built once by New and not modified
// afterwards.
type Profile struct {
	Arch string
	// Vendor is resolved from the identifying string.
	Vendor       vendor.Vendor
	VendorString string
	// Brand is Vendor with the Centaur lineage resolved.
	Brand     vendor.Vendor
	HasCPUID  bool
	Signature signature.Raw
	Display   signature.Display
	MicroArch uarch.Entry
	Features  feature.Set
	Threads   int
	// Model is the processor brand string, or UnknownModel.
	Model string
	// EasterEgg is the hidden string some AMD and Rise parts return.
	EasterEgg  string
	BrandID    uint32
	IDRegister hostid.IDRegister

	// Table and Row identify the classification row that matched; Row is
	// -1 when no table applies.
	Table string
	Row   int

	is386 bool
}

type options struct {
	arch string
	host hostid.Info
}

// Option configures New.
type Option func(*options)

// WithArch overrides the architecture the probe answers for. It defaults to
// the running GOARCH.
func WithArch(arch string) Option {
	return func(o *options) {
		o.arch = arch
	}
}

// WithHost supplies identification gathered outside CPUID. It is used for
// processors without the instruction.
func WithHost(info hostid.Info) Option {
	return func(o *options) {
		o.host = info
	}
}

// IsX86 reports whether arch has the identification instruction.
func IsX86(arch string) bool {
	return arch == "amd64" || arch == "386"
}

// New builds the profile for the processor p answers for.
func New(p cpuid.Probe, opts ...Option) Profile {
	o := options{arch: runtime.GOARCH}
	for _, opt := range opts {
		opt(&o)
	}
	if !IsX86(o.arch) {
		return newFromHost(o)
	}
	return newFromCPUID(p, o)
}

func newFromCPUID(p cpuid.Probe, o options) Profile {
	if !p.HasSupport() && p.DetectLegacyVendor() {
		p.EnableLegacyVendorSupport()
	}
	prof := Profile{
		Arch:     o.arch,
		HasCPUID: p.HasSupport(),
		Threads:  1,
	}
	prof.VendorString = vendor.DetectString(p)
	prof.Vendor = vendor.Resolve(prof.VendorString)

	leaf1, leaf1OK := cpuid.QueryAvailable(p, cpuid.LeafProcessorInfo, 0)
	prof.Signature = signature.Decode(leaf1.EAX)
	prof.Display = prof.Signature.Display()
	prof.Brand = uarch.Lineage(prof.Vendor, prof.Signature)
	prof.MicroArch, prof.Table, prof.Row = uarch.Match(prof.Vendor, prof.Signature)

	prof.Model = brandString(p)
	prof.Features = feature.Detect(p, prof.Vendor)
	if leaf1OK {
		if n := (leaf1.EBX >> 16) & 0xFF; n > 0 {
			prof.Threads = int(n)
		}
		prof.BrandID = leaf1.EBX & 0xFF
	}
	prof.EasterEgg = easterEgg(p, prof.Vendor)
	if !prof.HasCPUID {
		prof.is386 = cpuid.Is386(p)
	}
	return prof
}

// newFromHost builds the profile of a processor without the identification
// instruction from its ID register and the operating system hints. Without an
// ID register only the hints are reported.
func newFromHost(o options) Profile {
	prof := Profile{
		Arch:       o.arch,
		Vendor:     vendor.Unknown,
		IDRegister: o.host.ID,
		MicroArch:  uarch.UnknownEntry,
		Threads:    1,
		Model:      UnknownModel,
		Row:        -1,
		Features:   feature.Detect(cpuid.Zero{}, vendor.Unknown),
	}
	switch o.host.ID.Kind {
	case hostid.KindMIDR:
		midr := hostid.MIDR(o.host.ID.Value)
		prof.Vendor = vendor.FromImplementer(midr.Implementer())
		prof.MicroArch = uarch.ClassifyARM(midr.Implementer(), midr.PartNum(), o.host.Platform)
		prof.Table = "ARM"
	case hostid.KindPVR:
		pvr := hostid.PVR(o.host.ID.Value) // #nosec G115
		prof.Vendor = vendor.IBM
		prof.MicroArch = uarch.ClassifyPOWER(pvr.Version())
		prof.Table = "POWER"
	}
	prof.Brand = prof.Vendor
	switch {
	case o.host.Brand != "":
		prof.Model = o.host.Brand
	case o.host.Platform != "":
		prof.Model = o.host.Platform
	}
	if o.host.Cores > 0 {
		prof.Threads = o.host.Cores
	}
	return prof
}

// Detect builds the profile of the processor the program runs on.
func Detect(ctx context.Context) (Profile, error) {
	host, err := hostid.Detect(ctx)
	if err != nil {
		return Profile{}, err
	}
	prof := New(cpuid.Native(), WithHost(host))
	slog.Debug("detected processor",
		slog.String("vendor", prof.VendorString),
		slog.String("signature", prof.Signature.String()),
		slog.String("microarchitecture", string(prof.MicroArch.MicroArch)),
		slog.String("codename", prof.MicroArch.Codename))
	return prof, nil
}

// asciiWords appends the non-zero bytes of regs, low byte first.
func asciiWords(b *strings.Builder, regs cpuid.Registers) {
	for _, c := range regs.Bytes() {
		if c != 0 {
			b.WriteByte(c)
		}
	}
}

// brandString reads the three brand string leaves.
func brandString(p cpuid.Probe) string {
	if cpuid.MaxExtendedLeaf(p) < cpuid.LeafBrand3 {
		return UnknownModel
	}
	var b strings.Builder
	for leaf := cpuid.LeafBrand1; leaf <= cpuid.LeafBrand3; leaf++ {
		asciiWords(&b, p.Query(leaf, 0))
	}
	return strings.TrimSpace(b.String())
}

// easterEgg reads the hidden string AMD and Rise parts return from a
// non-standard leaf. The leaf lies outside the reported ranges so it is
// queried without gating.
func easterEgg(p cpuid.Probe, v vendor.Vendor) string {
	var leaf uint32
	switch v {
	case vendor.AMD:
		leaf = cpuid.LeafAMDEasterEgg
	case vendor.Rise:
		leaf = cpuid.LeafRiseEasterEgg
	default:
		return ""
	}
	var b strings.Builder
	asciiWords(&b, p.Query(leaf, 0))
	return strings.TrimSpace(b.String())
}
