// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package uarch

import (
	"strings"

	"cpuident/internal/vendor"
)

// ARMRow classifies an ID register implementer and part number. Platform,
// when set, must equal the SMBIOS processor version reported by the host;
// it separates designs that share a licensed core.
type ARMRow struct {
	Implementer uint32
	Part        Guard
	Platform    string
	Entry       Entry
}

// ARMTable is evaluated top to bottom, first match wins. Platform qualified
// rows come before the generic row for the same part.
var ARMTable = []ARMRow{
	{vendor.ImplementerARM, Is(0xD0C), "AWS Graviton2", entry(NeoverseN1, "Graviton2", "7nm")},
	{vendor.ImplementerARM, Is(0xD40), "AWS Graviton3", entry(NeoverseV1, "Graviton3", "5nm")},
	{vendor.ImplementerARM, Is(0xD4F), "AWS Graviton4", entry(NeoverseV2, "Graviton4", "4nm")},
	{vendor.ImplementerARM, Is(0xD4F), "Not Specified", entry(NeoverseV2, "Axion", "")},
	{vendor.ImplementerARM, Is(0xD0C), "Not Specified", entry(NeoverseN1, "Altra Family", "7nm")},
	{vendor.ImplementerAmpere, Is(0xAC3), "", entry(AmpereOne, "AmpereOne AC03", "5nm")},
	{vendor.ImplementerAmpere, Is(0xAC4), "X", entry(AmpereOne, "AmpereOne AC04", "5nm")},
	{vendor.ImplementerAmpere, Is(0xAC4), "M", entry(AmpereOne, "AmpereOne AC04_1", "5nm")},

	{vendor.ImplementerARM, Is(0xD03), "", entry(CortexA53, "Cortex-A53", "")},
	{vendor.ImplementerARM, Is(0xD05), "", entry(CortexA55, "Cortex-A55", "")},
	{vendor.ImplementerARM, Is(0xD07), "", entry(CortexA57, "Cortex-A57", "")},
	{vendor.ImplementerARM, Is(0xD08), "", entry(CortexA72, "Cortex-A72", "")},
	{vendor.ImplementerARM, Is(0xD09), "", entry(CortexA73, "Cortex-A73", "")},
	{vendor.ImplementerARM, Is(0xD0A), "", entry(CortexA75, "Cortex-A75", "")},
	{vendor.ImplementerARM, Is(0xD0B), "", entry(CortexA76, "Cortex-A76", "")},
	{vendor.ImplementerARM, Is(0xD0D), "", entry(CortexA77, "Cortex-A77", "")},
	{vendor.ImplementerARM, Is(0xD41), "", entry(CortexA78, "Cortex-A78", "")},
	{vendor.ImplementerARM, Is(0xD44), "", entry(CortexX1, "Cortex-X1", "")},
	{vendor.ImplementerARM, Is(0xD46), "", entry(CortexA510, "Cortex-A510", "")},
	{vendor.ImplementerARM, Is(0xD47), "", entry(CortexA710, "Cortex-A710", "")},
	{vendor.ImplementerARM, Is(0xD48), "", entry(CortexX2, "Cortex-X2", "")},
	{vendor.ImplementerARM, Is(0xD4D), "", entry(CortexA715, "Cortex-A715", "")},
	{vendor.ImplementerARM, Is(0xD4E), "", entry(CortexX3, "Cortex-X3", "")},
	{vendor.ImplementerARM, Is(0xD80), "", entry(CortexA520, "Cortex-A520", "")},
	{vendor.ImplementerARM, Is(0xD81), "", entry(CortexA720, "Cortex-A720", "")},
	{vendor.ImplementerARM, Is(0xD82), "", entry(CortexX4, "Cortex-X4", "")},
	{vendor.ImplementerARM, Is(0xD0C), "", entry(NeoverseN1, "Neoverse N1", "")},
	{vendor.ImplementerARM, Is(0xD49), "", entry(NeoverseN2, "Neoverse N2", "")},
	{vendor.ImplementerARM, Is(0xD8E), "", entry(NeoverseN3, "Neoverse N3", "")},
	{vendor.ImplementerARM, Is(0xD40), "", entry(NeoverseV1, "Neoverse V1", "")},
	{vendor.ImplementerARM, Is(0xD4F), "", entry(NeoverseV2, "Neoverse V2", "")},
	{vendor.ImplementerARM, Is(0xD84), "", entry(NeoverseV3, "Neoverse V3", "")},

	{vendor.ImplementerApple, OneOf(0x022, 0x024, 0x028), "", entry(Icestorm, "M1", "5nm")},
	{vendor.ImplementerApple, OneOf(0x023, 0x025, 0x029), "", entry(Firestorm, "M1", "5nm")},
	{vendor.ImplementerApple, OneOf(0x032, 0x034, 0x038), "", entry(Blizzard, "M2", "5nm")},
	{vendor.ImplementerApple, OneOf(0x033, 0x035, 0x039), "", entry(Avalanche, "M2", "5nm")},
}

// ClassifyARM maps an implementer, part number and optional platform string
// to an entry. Platform qualified rows only match when platform equals
// their Platform after trimming.
func ClassifyARM(implementer, part uint32, platform string) Entry {
	platform = strings.TrimSpace(platform)
	for _, row := range ARMTable {
		if row.Implementer != implementer || !row.Part.Accepts(part) {
			continue
		}
		if row.Platform != "" && row.Platform != platform {
			continue
		}
		return row.Entry
	}
	return UnknownEntry
}

// POWERRow classifies a PVR version field.
type POWERRow struct {
	Version Guard
	Entry   Entry
}

var POWERTable = []POWERRow{
	{OneOf(0x0039, 0x003C, 0x0044), entry(PPC970, "PowerPC 970", "")},
	{Is(0x003E), entry(POWER6, "POWER6", "65nm")},
	{OneOf(0x003F, 0x004A), entry(POWER7, "POWER7", "45nm")},
	{OneOf(0x004B, 0x004C, 0x004D), entry(POWER8, "POWER8", "22nm")},
	{Is(0x004E), entry(POWER9, "POWER9", "14nm")},
	{Is(0x0080), entry(POWER10, "POWER10", "7nm")},
	{Is(0x0082), entry(POWER11, "POWER11", "7nm")},
}

// ClassifyPOWER maps the PVR version field to an entry.
func ClassifyPOWER(version uint32) Entry {
	for _, row := range POWERTable {
		if row.Version.Accepts(version) {
			return row.Entry
		}
	}
	return UnknownEntry
}
