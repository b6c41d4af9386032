// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package uarch classifies a processor signature to a microarchitecture,
// codename and process node using ordered per-vendor tables.
package uarch

// MicroArch names a core design lineage.
type MicroArch string

// Entry is the result of a classification.
type Entry struct {
	MicroArch  MicroArch `json:"microarchitecture" yaml:"microarchitecture" cbor:"microarchitecture"`
	Codename   string    `json:"codename" yaml:"codename" cbor:"codename"`
	Technology string    `json:"technology,omitempty" yaml:"technology,omitempty" cbor:"technology,omitempty"`
}

// UnknownCodename is reported when no row matches.
const UnknownCodename = "Unknown"

// UnknownEntry is the catch-all result. It carries no process node.
var UnknownEntry = Entry{MicroArch: MicroArchUnknown, Codename: UnknownCodename}

// IsUnknown reports whether no table row recognized the signature.
func (e Entry) IsUnknown() bool {
	return e.MicroArch == MicroArchUnknown
}

func entry(arch MicroArch, codename, technology string) Entry {
	return Entry{MicroArch: arch, Codename: codename, Technology: technology}
}

const MicroArchUnknown MicroArch = "Unknown"

// AMD
const (
	Am486       MicroArch = "Am486"
	Am5x86      MicroArch = "Am5x86"
	SSA5        MicroArch = "SSA5"
	K5          MicroArch = "K5"
	K6          MicroArch = "K6"
	K7          MicroArch = "K7"
	K8          MicroArch = "K8"
	K10         MicroArch = "K10"
	Bobcat      MicroArch = "Bobcat"
	Puma2008    MicroArch = "Puma2008"
	Bulldozer   MicroArch = "Bulldozer"
	Piledriver  MicroArch = "Piledriver"
	Steamroller MicroArch = "Steamroller"
	Excavator   MicroArch = "Excavator"
	Jaguar      MicroArch = "Jaguar"
	Puma2014    MicroArch = "Puma2014"
	Zen         MicroArch = "Zen"
	ZenPlus     MicroArch = "ZenPlus"
	Zen2        MicroArch = "Zen2"
	Zen3        MicroArch = "Zen3"
	Zen3Plus    MicroArch = "Zen3Plus"
	Zen4        MicroArch = "Zen4"
	Zen4C       MicroArch = "Zen4C"
	Zen5        MicroArch = "Zen5"
	Zen5C       MicroArch = "Zen5C"
)

// Centaur lineages
const (
	Winchip   MicroArch = "Winchip"
	Winchip2  MicroArch = "Winchip2"
	Winchip2A MicroArch = "Winchip2A"
	Winchip2B MicroArch = "Winchip2B"
	Winchip3  MicroArch = "Winchip3"
	Samuel    MicroArch = "Samuel"
	Samuel2   MicroArch = "Samuel2"
	Ezra      MicroArch = "Ezra"
	EzraT     MicroArch = "EzraT"
	Nehemiah  MicroArch = "Nehemiah"
	NehemiahP MicroArch = "NehemiahP"
	Esther    MicroArch = "Esther"
	Isaiah    MicroArch = "Isaiah"
	Wudaokou  MicroArch = "Wudaokou"
	Lujiazui  MicroArch = "Lujiazui"
	Yongfeng  MicroArch = "Yongfeng"
)

// Cyrix, National Semiconductor, NexGen, DM&P, Rise, SiS, Transmeta, UMC
const (
	Cyrix5x86 MicroArch = "Cyrix5x86"
	M1        MicroArch = "M1"
	M2        MicroArch = "M2"
	MediaGX   MicroArch = "MediaGX"
	Joshua    MicroArch = "Joshua"
	Geode     MicroArch = "Geode"
	Nx586     MicroArch = "Nx586"
	VortexDX3 MicroArch = "VortexDX3"
	MP6       MicroArch = "MP6"
	MP6Shrink MicroArch = "MP6Shrink"
	SiS55x    MicroArch = "SiS55x"
	Crusoe    MicroArch = "Crusoe"
	Efficeon  MicroArch = "Efficeon"
	U5S       MicroArch = "U5S"
	U5D       MicroArch = "U5D"
)

// Intel
const (
	I486             MicroArch = "I486"
	P5               MicroArch = "P5"
	P5MMX            MicroArch = "P5MMX"
	Lakemont         MicroArch = "Lakemont"
	P6Pro            MicroArch = "P6Pro"
	P6PentiumII      MicroArch = "P6PentiumII"
	P6PentiumIII     MicroArch = "P6PentiumIII"
	PentiumM         MicroArch = "PentiumM"
	Dothan           MicroArch = "Dothan"
	Yonah            MicroArch = "Yonah"
	Merom            MicroArch = "Merom"
	Penryn           MicroArch = "Penryn"
	Nehalem          MicroArch = "Nehalem"
	Westmere         MicroArch = "Westmere"
	SandyBridge      MicroArch = "SandyBridge"
	IvyBridge        MicroArch = "IvyBridge"
	Haswell          MicroArch = "Haswell"
	Broadwell        MicroArch = "Broadwell"
	Skylake          MicroArch = "Skylake"
	CascadeLake      MicroArch = "CascadeLake"
	CooperLake       MicroArch = "CooperLake"
	KabyLake         MicroArch = "KabyLake"
	CoffeeLake       MicroArch = "CoffeeLake"
	WhiskeyLake      MicroArch = "WhiskeyLake"
	CometLake        MicroArch = "CometLake"
	PalmCove         MicroArch = "PalmCove"
	SunnyCove        MicroArch = "SunnyCove"
	IceLake          MicroArch = "IceLake"
	TigerLake        MicroArch = "TigerLake"
	RocketLake       MicroArch = "RocketLake"
	AlderLake        MicroArch = "AlderLake"
	RaptorLake       MicroArch = "RaptorLake"
	MeteorLake       MicroArch = "MeteorLake"
	ArrowLake        MicroArch = "ArrowLake"
	LunarLake        MicroArch = "LunarLake"
	SapphireRapids   MicroArch = "SapphireRapids"
	EmeraldRapids    MicroArch = "EmeraldRapids"
	GraniteRapids    MicroArch = "GraniteRapids"
	SierraForest     MicroArch = "SierraForest"
	ClearwaterForest MicroArch = "ClearwaterForest"
	DiamondRapids    MicroArch = "DiamondRapids"
	Bonnell          MicroArch = "Bonnell"
	Saltwell         MicroArch = "Saltwell"
	Silvermont       MicroArch = "Silvermont"
	Airmont          MicroArch = "Airmont"
	Goldmont         MicroArch = "Goldmont"
	GoldmontPlus     MicroArch = "GoldmontPlus"
	Tremont          MicroArch = "Tremont"
	KnightsFerry     MicroArch = "KnightsFerry"
	KnightsCorner    MicroArch = "KnightsCorner"
	KnightsLanding   MicroArch = "KnightsLanding"
	KnightsMill      MicroArch = "KnightsMill"
	Willamette       MicroArch = "Willamette"
	Northwood        MicroArch = "Northwood"
	Prescott         MicroArch = "Prescott"
	CedarMill        MicroArch = "CedarMill"
)

// ARM implementers
const (
	CortexA53  MicroArch = "CortexA53"
	CortexA55  MicroArch = "CortexA55"
	CortexA57  MicroArch = "CortexA57"
	CortexA72  MicroArch = "CortexA72"
	CortexA73  MicroArch = "CortexA73"
	CortexA75  MicroArch = "CortexA75"
	CortexA76  MicroArch = "CortexA76"
	CortexA77  MicroArch = "CortexA77"
	CortexA78  MicroArch = "CortexA78"
	CortexX1   MicroArch = "CortexX1"
	CortexA510 MicroArch = "CortexA510"
	CortexA710 MicroArch = "CortexA710"
	CortexX2   MicroArch = "CortexX2"
	CortexA715 MicroArch = "CortexA715"
	CortexX3   MicroArch = "CortexX3"
	CortexA520 MicroArch = "CortexA520"
	CortexA720 MicroArch = "CortexA720"
	CortexX4   MicroArch = "CortexX4"
	NeoverseN1 MicroArch = "NeoverseN1"
	NeoverseN2 MicroArch = "NeoverseN2"
	NeoverseN3 MicroArch = "NeoverseN3"
	NeoverseV1 MicroArch = "NeoverseV1"
	NeoverseV2 MicroArch = "NeoverseV2"
	NeoverseV3 MicroArch = "NeoverseV3"
	AmpereOne  MicroArch = "AmpereOne"
	Icestorm   MicroArch = "Icestorm"
	Firestorm  MicroArch = "Firestorm"
	Blizzard   MicroArch = "Blizzard"
	Avalanche  MicroArch = "Avalanche"
)

// IBM POWER
const (
	PPC970  MicroArch = "PPC970"
	POWER6  MicroArch = "POWER6"
	POWER7  MicroArch = "POWER7"
	POWER8  MicroArch = "POWER8"
	POWER9  MicroArch = "POWER9"
	POWER10 MicroArch = "POWER10"
	POWER11 MicroArch = "POWER11"
)
