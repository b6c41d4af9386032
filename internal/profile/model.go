// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package profile

import (
	"cpuident/internal/signature"
	"cpuident/internal/uarch"
	"cpuident/internal/vendor"
)

const (
	celeron = "Intel® Celeron® processor"
	xeon    = "Intel® Xeon® processor"
	xeonMP  = "Intel® Xeon® processor MP"
)

// intelBrandIndex maps the leaf 1 brand index of early Intel parts to a
// model name. It only applies up to family 0xF model 2.
func intelBrandIndex(id uint32, s signature.Raw) string {
	if s.Family > 0xF || (s.Family == 0xF && s.Model >= 0x3) {
		return ""
	}
	is := func(family, model, stepping uint32) bool {
		return s.Family == family && s.Model == model && s.Stepping == stepping
	}
	switch id {
	case 0x01, 0x0A, 0x14:
		return celeron
	case 0x02, 0x04:
		return "Intel® Pentium® III processor"
	case 0x03:
		if is(0x6, 0xB, 0x1) {
			return celeron
		}
		return "Intel® Pentium® III Xeon"
	case 0x06:
		return "Mobile Intel® Pentium® III processor-M"
	case 0x07, 0x0F, 0x13, 0x17:
		return "Mobile Intel® Celeron® processor"
	case 0x08, 0x09:
		return "Intel® Pentium® 4 processor"
	case 0x0B:
		if is(0xF, 0x1, 0x3) {
			return xeonMP
		}
		return xeon
	case 0x0C:
		return xeonMP
	case 0x0E:
		if is(0xF, 0x1, 0x3) {
			return xeon
		}
		return "Mobile Intel® Pentium® 4 processor-M"
	case 0x11, 0x15:
		return "Mobile Genuine Intel® processor"
	case 0x12:
		return "Intel® Celeron® M processor"
	case 0x16:
		return "Intel® Pentium® M processor"
	}
	return ""
}

var am486Names = map[string]string{
	"Am486DX2":   "AMD 486 DX2",
	"Am486X2WB":  "AMD 486 DX2 with Write-Back Cache",
	"Am486DX4":   "AMD 486 DX4",
	"Am486DX4WB": "AMD 486 DX4 with Write-Back Cache",
}

var i486Names = map[string]string{
	"i80486DX":    "Intel 486 DX",
	"RapidCAD":    "Intel RapidCAD",
	"i80486DX-50": "Intel 486 DX-50",
	"i80486SX":    "Intel 486 SX",
	"i80486DX2":   "Intel 486 DX2",
	"i80486SL":    "Intel 486 SL",
	"i80486SX2":   "Intel 486 SX2",
	"i80486DX2WB": "Intel 486 DX2 with Write-Back Cache",
	"i80486DX4":   "Intel 486 DX4",
	"i80486DX4WB": "Intel 486 DX4 with Write-Back Cache",
}

// DisplayModel returns the best available name for the processor: the brand
// string, then the Intel brand index, then a name derived from the
// microarchitecture, then a class guess for processors without CPUID.
func (p Profile) DisplayModel() string {
	if p.Model != "" && p.Model != UnknownModel {
		return p.Model
	}
	if p.Vendor == vendor.Intel {
		if name := intelBrandIndex(p.BrandID, p.Signature); name != "" {
			return name
		}
	}
	switch p.MicroArch.MicroArch {
	case uarch.Am486:
		if name, ok := am486Names[p.MicroArch.Codename]; ok {
			return name
		}
		return "486 Class CPU"
	case uarch.SSA5, uarch.K5:
		return "AMD K5"
	case uarch.I486:
		if name, ok := i486Names[p.MicroArch.Codename]; ok {
			return name
		}
		return "486 Class CPU"
	case uarch.P5:
		if p.Features.Has("mmx") {
			return "Intel Pentium with MMX"
		}
		return "Intel Pentium"
	case uarch.P5MMX:
		return "Intel Pentium with MMX"
	case uarch.P6Pro:
		return "Intel Pentium Pro"
	case uarch.P6PentiumII:
		return "Intel Pentium II"
	case uarch.P6PentiumIII:
		return "Intel Pentium III"
	case uarch.Cyrix5x86:
		return "5x86"
	case uarch.M1:
		if p.Features.Has("cx8") {
			return "6x86L"
		}
		return "6x86"
	case uarch.M2:
		return "6x86MX (MII)"
	case uarch.U5S:
		return "UMC Green CPU 486 U5-SX"
	case uarch.U5D:
		return "UMC Green CPU 486 U5-DX"
	}
	if IsX86(p.Arch) && p.IDRegister.IsZero() && (p.Signature.IsZero() || !p.HasCPUID) {
		switch {
		case p.Vendor == vendor.Cyrix && !p.is386:
			return "Cyrix/IBM 486"
		case p.is386:
			return "386 Class CPU"
		default:
			return "486 Class CPU"
		}
	}
	return UnknownModel
}
