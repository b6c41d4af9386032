// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package uarch

// family6 matches family 6 by display model, extended model in the high
// nibble.
func family6(displayModel uint32, stepping Guard) Pattern {
	return sig(Is(0), Is(6), Is(displayModel>>4), Is(displayModel&0xF), stepping)
}

// extended matches family 0xF parts by display family and display model.
func extended(displayFamily, displayModel uint32, stepping Guard) Pattern {
	return sig(Is(displayFamily-0xF), Is(0xF), Is(displayModel>>4), Is(displayModel&0xF), stepping)
}

var intelTable = Table{
	Name: "Intel",
	Rows: []Row{
		// i486
		{sig(Is(0), Is(4), Is(0), Is(0), Any()), entry(I486, "i80486DX", "1000nm")},
		{sig(Is(0), Is(4), Is(0), Is(1), Any()), entry(I486, "i80486DX-50", "800nm")},
		{sig(Is(0), Is(4), Is(0), Is(2), Any()), entry(I486, "i80486SX", "1000nm")},
		{sig(Is(0), Is(4), Is(0), Is(3), Any()), entry(I486, "i80486DX2", "800nm")},
		{sig(Is(0), Is(4), Is(0), Is(4), Any()), entry(I486, "i80486SL", "800nm")},
		{sig(Is(0), Is(4), Is(0), Is(5), Any()), entry(I486, "i80486SX2", "800nm")},
		{sig(Is(0), Is(4), Is(0), Is(7), Any()), entry(I486, "i80486DX2WB", "800nm")},
		{sig(Is(0), Is(4), Is(0), Is(8), Any()), entry(I486, "i80486DX4", "600nm")},
		{sig(Is(0), Is(4), Is(0), Is(9), Any()), entry(I486, "i80486DX4WB", "600nm")},

		// P5
		{sig(Is(0), Is(5), Is(0), Is(0), Any()), entry(P5, "P5 A-step", "800nm")},
		{sig(Is(0), Is(5), Is(0), Is(1), Any()), entry(P5, "P5", "800nm")},
		{sig(Is(0), Is(5), Is(0), Is(2), Any()), entry(P5, "P54C", "600nm")},
		{sig(Is(0), Is(5), Is(0), Is(3), Any()), entry(P5, "P24T", "600nm")},
		{sig(Is(0), Is(5), Is(0), Is(4), Any()), entry(P5MMX, "P55C", "350nm")},
		{sig(Is(0), Is(5), Is(0), Is(7), Any()), entry(P5, "P54CS", "350nm")},
		{sig(Is(0), Is(5), Is(0), Is(8), Any()), entry(P5MMX, "Tillamook", "250nm")},
		{sig(Is(0), Is(5), Is(0), Is(9), Any()), entry(Lakemont, "Quark X1000", "32nm")},
		{sig(Is(0), Is(5), Is(0), Is(10), Any()), entry(Lakemont, "Quark D1000", "32nm")},

		// P6
		{family6(0x01, OneOf(1, 2, 6, 7, 8, 9)), entry(P6Pro, "P6", "350nm")},
		{family6(0x03, Any()), entry(P6PentiumII, "Klamath", "350nm")},
		{family6(0x05, Any()), entry(P6PentiumII, "Deschutes", "250nm")},
		{family6(0x06, Any()), entry(P6PentiumII, "Mendocino", "250nm")},
		{family6(0x07, Any()), entry(P6PentiumIII, "Katmai", "250nm")},
		{family6(0x08, Any()), entry(P6PentiumIII, "Coppermine", "180nm")},
		{family6(0x0A, Any()), entry(P6PentiumIII, "Coppermine T", "180nm")},
		{family6(0x0B, Any()), entry(P6PentiumIII, "Tualatin", "130nm")},
		{family6(0x09, Any()), entry(PentiumM, "Banias", "130nm")},
		{family6(0x0D, Any()), entry(Dothan, "Dothan", "90nm")},
		{family6(0x15, Any()), entry(PentiumM, "Tolapai", "90nm")},
		{family6(0x0E, Any()), entry(Yonah, "Yonah", "65nm")},

		// Core
		{family6(0x0F, Any()), entry(Merom, "Merom", "65nm")},
		{family6(0x16, Any()), entry(Merom, "Merom-L", "65nm")},
		{family6(0x17, Any()), entry(Penryn, "Penryn", "45nm")},
		{family6(0x1D, Any()), entry(Penryn, "Dunnington", "45nm")},
		{family6(0x1A, Any()), entry(Nehalem, "Bloomfield", "45nm")},
		{family6(0x1E, Is(5)), entry(Nehalem, "Lynnfield", "45nm")},
		{family6(0x1F, Any()), entry(Nehalem, "Havendale", "45nm")},
		{family6(0x2E, Any()), entry(Nehalem, "Beckton", "45nm")},
		{family6(0x25, Any()), entry(Westmere, "Arrandale", "32nm")},
		{family6(0x2C, Any()), entry(Westmere, "Gulftown", "32nm")},
		{family6(0x2F, Any()), entry(Westmere, "Westmere-EX", "32nm")},
		{family6(0x2A, Any()), entry(SandyBridge, "Sandy Bridge", "32nm")},
		{family6(0x2D, Any()), entry(SandyBridge, "Sandy Bridge-E", "32nm")},
		{family6(0x3A, Any()), entry(IvyBridge, "Ivy Bridge", "22nm")},
		{family6(0x3E, Any()), entry(IvyBridge, "Ivy Bridge-E", "22nm")},
		{family6(0x3C, Any()), entry(Haswell, "Haswell", "22nm")},
		{family6(0x3F, Any()), entry(Haswell, "Haswell-E", "22nm")},
		{family6(0x45, Any()), entry(Haswell, "Haswell-ULT", "22nm")},
		{family6(0x46, Any()), entry(Haswell, "Crystal Well", "22nm")},
		{family6(0x3D, Any()), entry(Broadwell, "Broadwell", "14nm")},
		{family6(0x47, Any()), entry(Broadwell, "Broadwell-H", "14nm")},
		{family6(0x4F, Any()), entry(Broadwell, "Broadwell-E", "14nm")},
		{family6(0x56, Any()), entry(Broadwell, "Broadwell-DE", "14nm")},
		{family6(0x4E, Any()), entry(Skylake, "Skylake-U", "14nm")},
		{family6(0x5E, Any()), entry(Skylake, "Skylake-S", "14nm")},
		{family6(0x55, Range(0, 4)), entry(Skylake, "Skylake-SP", "14nm")},
		{family6(0x55, Range(5, 7)), entry(CascadeLake, "Cascade Lake-SP", "14nm")},
		{family6(0x55, Is(11)), entry(CooperLake, "Cooper Lake", "14nm")},
		{family6(0x8E, Is(9)), entry(KabyLake, "Kaby Lake", "14nm")},
		{family6(0x8E, Is(10)), entry(KabyLake, "Kaby Lake R", "14nm")},
		{family6(0x8E, Is(11)), entry(WhiskeyLake, "Whiskey Lake", "14nm")},
		{family6(0x8E, Is(12)), entry(CometLake, "Comet Lake-U", "14nm")},
		{family6(0x9E, Is(9)), entry(KabyLake, "Kaby Lake", "14nm")},
		{family6(0x9E, Range(10, 13)), entry(CoffeeLake, "Coffee Lake", "14nm")},
		{family6(0xA5, Any()), entry(CometLake, "Comet Lake", "14nm")},
		{family6(0xA6, Any()), entry(CometLake, "Comet Lake-U", "14nm")},
		{family6(0x66, Any()), entry(PalmCove, "Cannon Lake", "10nm")},
		{family6(0x7D, Any()), entry(IceLake, "Ice Lake", "10nm")},
		{family6(0x7E, Any()), entry(IceLake, "Ice Lake", "10nm")},
		{family6(0x6A, Any()), entry(IceLake, "Ice Lake-SP", "10nm")},
		{family6(0x6C, Any()), entry(IceLake, "Ice Lake-D", "10nm")},
		{family6(0x8A, Any()), entry(SunnyCove, "Lakefield", "10nm")},
		{family6(0x8C, Any()), entry(TigerLake, "Tiger Lake", "10nm SuperFin")},
		{family6(0x8D, Any()), entry(TigerLake, "Tiger Lake-H", "10nm SuperFin")},
		{family6(0xA7, Any()), entry(RocketLake, "Rocket Lake", "14nm")},
		{family6(0x97, Any()), entry(AlderLake, "Alder Lake-S", "Intel 7")},
		{family6(0x9A, Any()), entry(AlderLake, "Alder Lake-P", "Intel 7")},
		{family6(0xBE, Any()), entry(AlderLake, "Alder Lake-N", "Intel 7")},
		{family6(0xB7, Any()), entry(RaptorLake, "Raptor Lake-S", "Intel 7")},
		{family6(0xBA, Any()), entry(RaptorLake, "Raptor Lake-P", "Intel 7")},
		{family6(0xBF, Any()), entry(RaptorLake, "Raptor Lake-S", "Intel 7")},
		{family6(0xAA, Any()), entry(MeteorLake, "Meteor Lake", "Intel 4")},
		{family6(0xAC, Any()), entry(MeteorLake, "Meteor Lake-S", "Intel 4")},
		{family6(0xC5, Any()), entry(ArrowLake, "Arrow Lake-H", "TSMC N3B")},
		{family6(0xC6, Any()), entry(ArrowLake, "Arrow Lake-S", "TSMC N3B")},
		{family6(0xB5, Any()), entry(ArrowLake, "Arrow Lake-U", "Intel 3")},
		{family6(0xBD, Any()), entry(LunarLake, "Lunar Lake", "TSMC N3B")},

		// Xeon
		{family6(0x8F, Any()), entry(SapphireRapids, "Sapphire Rapids", "Intel 7")},
		{family6(0xCF, Any()), entry(EmeraldRapids, "Emerald Rapids", "Intel 7")},
		{family6(0xAD, Any()), entry(GraniteRapids, "Granite Rapids", "Intel 3")},
		{family6(0xAE, Any()), entry(GraniteRapids, "Granite Rapids-D", "Intel 3")},
		{family6(0xAF, Any()), entry(SierraForest, "Sierra Forest", "Intel 3")},
		{family6(0xDD, Any()), entry(ClearwaterForest, "Clearwater Forest", "Intel 18A")},
		{extended(0x13, 0x01, Any()), entry(DiamondRapids, "Diamond Rapids", "Intel 18A")},

		// Atom
		{family6(0x1C, Any()), entry(Bonnell, "Silverthorne", "45nm")},
		{family6(0x26, Any()), entry(Bonnell, "Lincroft", "45nm")},
		{family6(0x27, Any()), entry(Saltwell, "Penwell", "32nm")},
		{family6(0x35, Any()), entry(Saltwell, "Cloverview", "32nm")},
		{family6(0x36, Any()), entry(Saltwell, "Cedarview", "32nm")},
		{family6(0x37, Any()), entry(Silvermont, "Bay Trail", "22nm")},
		{family6(0x4A, Any()), entry(Silvermont, "Merrifield", "22nm")},
		{family6(0x4D, Any()), entry(Silvermont, "Avoton", "22nm")},
		{family6(0x5A, Any()), entry(Silvermont, "Moorefield", "22nm")},
		{family6(0x4C, Any()), entry(Airmont, "Cherry Trail", "14nm")},
		{family6(0x5C, Any()), entry(Goldmont, "Apollo Lake", "14nm")},
		{family6(0x5F, Any()), entry(Goldmont, "Denverton", "14nm")},
		{family6(0x7A, Any()), entry(GoldmontPlus, "Gemini Lake", "14nm")},
		{family6(0x86, Any()), entry(Tremont, "Snow Ridge", "10nm")},
		{family6(0x96, Any()), entry(Tremont, "Elkhart Lake", "10nm")},
		{family6(0x9C, Any()), entry(Tremont, "Jasper Lake", "10nm")},

		// Xeon Phi
		{sig(Is(0), Is(0xB), Is(0), Is(0), Any()), entry(KnightsFerry, "Knights Ferry", "45nm")},
		{sig(Is(0), Is(0xB), Is(0), Is(1), Any()), entry(KnightsCorner, "Knights Corner", "22nm")},
		{family6(0x57, Any()), entry(KnightsLanding, "Knights Landing", "14nm")},
		{family6(0x85, Any()), entry(KnightsMill, "Knights Mill", "14nm")},

		// NetBurst
		{extended(0xF, 0x00, Any()), entry(Willamette, "Willamette", "180nm")},
		{extended(0xF, 0x01, Any()), entry(Willamette, "Willamette", "180nm")},
		{extended(0xF, 0x02, Any()), entry(Northwood, "Northwood", "130nm")},
		{extended(0xF, 0x03, Any()), entry(Prescott, "Prescott", "90nm")},
		{extended(0xF, 0x04, Any()), entry(Prescott, "Prescott", "90nm")},
		{extended(0xF, 0x06, Any()), entry(CedarMill, "Cedar Mill", "65nm")},

		{catchAll, UnknownEntry},
	},
}
