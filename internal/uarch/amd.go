// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package uarch

var amdTable = Table{
	Name: "AMD",
	Rows: []Row{
		// 486 and 5x86
		{sig(Is(0), Is(4), Is(0), Is(3), Any()), entry(Am486, "Am486DX2", "700nm")},
		{sig(Is(0), Is(4), Is(0), Is(7), Any()), entry(Am486, "Am486X2WB", "700nm")},
		{sig(Is(0), Is(4), Is(0), Is(8), Any()), entry(Am486, "Am486DX4", "500nm")},
		{sig(Is(0), Is(4), Is(0), Is(9), Any()), entry(Am486, "Am486DX4WB", "500nm")},
		{sig(Is(0), Is(4), Is(0), Is(14), Any()), entry(Am5x86, "Am5x86", "350nm")},
		{sig(Is(0), Is(4), Is(0), Is(15), Any()), entry(Am5x86, "Am5x86WB", "350nm")},

		// K5 and K6
		{sig(Is(0), Is(5), Is(0), Is(0), Any()), entry(SSA5, "SSA5 (K5)", "350nm")},
		{sig(Is(0), Is(5), Is(0), Range(1, 3), Any()), entry(K5, "K5", "350nm")},
		{sig(Is(0), Is(5), Is(0), OneOf(6, 7), Any()), entry(K6, "K6", "250nm")},
		{sig(Is(0), Is(5), Is(0), Is(8), Any()), entry(K6, "Chompers/CXT (K6-2)", "250nm")},
		{sig(Is(0), Is(5), Is(0), Is(9), Any()), entry(K6, "Sharptooth (K6-III)", "250nm")},
		{sig(Is(0), Is(5), Is(0), Is(10), Any()), entry(Geode, "Geode LX", "130nm")},
		{sig(Is(0), Is(5), Is(0), Is(13), Any()), entry(K6, "Sharptooth (K6-2+/K6-III+)", "180nm")},

		// K7
		{sig(Is(0), Is(6), Is(0), Is(1), Any()), entry(K7, "Argon", "250nm")},
		{sig(Is(0), Is(6), Is(0), Is(2), Any()), entry(K7, "Pluto", "180nm")},
		{sig(Is(0), Is(6), Is(0), Is(3), Any()), entry(K7, "Spitfire", "180nm")},
		{sig(Is(0), Is(6), Is(0), Is(4), Any()), entry(K7, "Thunderbird", "180nm")},
		{sig(Is(0), Is(6), Is(0), Is(6), Any()), entry(K7, "Palomino", "180nm")},
		{sig(Is(0), Is(6), Is(0), Is(7), Any()), entry(K7, "Morgan", "180nm")},
		{sig(Is(0), Is(6), Is(0), Is(8), Any()), entry(K7, "Thoroughbred", "130nm")},
		{sig(Is(0), Is(6), Is(0), Is(10), Any()), entry(K7, "Barton", "130nm")},

		// K8
		{extended(0xF, 0x04, Any()), entry(K8, "ClawHammer", "130nm")},
		{extended(0xF, 0x05, Any()), entry(K8, "SledgeHammer", "130nm")},
		{sig(Is(0), Is(0xF), Is(0), Any(), Any()), entry(K8, "Newcastle", "130nm")},
		{sig(Is(0), Is(0xF), Is(1), Any(), Any()), entry(K8, "Winchester", "90nm")},
		{sig(Is(0), Is(0xF), Is(2), Any(), Any()), entry(K8, "Toledo", "90nm")},
		{sig(Is(0), Is(0xF), Is(4), Any(), Any()), entry(K8, "Windsor", "90nm")},
		{sig(Is(0), Is(0xF), Is(5), Any(), Any()), entry(K8, "Santa Ana", "90nm")},
		{sig(Is(0), Is(0xF), Is(6), Any(), Any()), entry(K8, "Brisbane", "65nm")},
		{sig(Is(0), Is(0xF), Is(7), Any(), Any()), entry(K8, "Lima", "65nm")},
		{sig(Is(0), Is(0xF), Is(0xC), Any(), Any()), entry(K8, "Sherman", "65nm")},

		// K10
		{extended(0x10, 0x02, Any()), entry(K10, "Agena", "65nm")},
		{extended(0x10, 0x04, Any()), entry(K10, "Deneb", "45nm")},
		{extended(0x10, 0x05, Any()), entry(K10, "Propus", "45nm")},
		{extended(0x10, 0x06, Any()), entry(K10, "Regor", "45nm")},
		{extended(0x10, 0x08, Any()), entry(K10, "Istanbul", "45nm")},
		{extended(0x10, 0x09, Any()), entry(K10, "Magny-Cours", "45nm")},
		{extended(0x10, 0x0A, Any()), entry(K10, "Thuban", "45nm")},
		{sig(Is(2), Is(0xF), Any(), Any(), Any()), entry(Puma2008, "Griffin", "65nm")},
		{sig(Is(3), Is(0xF), Any(), Any(), Any()), entry(K10, "Llano", "32nm")},

		// Bobcat
		{sig(Is(5), Is(0xF), Is(0), Range(1, 2), Any()), entry(Bobcat, "Ontario", "40nm")},

		// Bulldozer family
		{extended(0x15, 0x01, Any()), entry(Bulldozer, "Zambezi", "32nm")},
		{extended(0x15, 0x02, Any()), entry(Piledriver, "Vishera", "32nm")},
		{extended(0x15, 0x10, Any()), entry(Piledriver, "Trinity", "32nm")},
		{extended(0x15, 0x13, Any()), entry(Piledriver, "Richland", "32nm")},
		{extended(0x15, 0x30, Any()), entry(Steamroller, "Kaveri", "28nm")},
		{extended(0x15, 0x38, Any()), entry(Steamroller, "Godavari", "28nm")},
		{extended(0x15, 0x60, Any()), entry(Excavator, "Carrizo", "28nm")},
		{extended(0x15, 0x65, Any()), entry(Excavator, "BristolRidge", "28nm")},
		{extended(0x15, 0x70, Any()), entry(Excavator, "StoneyRidge", "28nm")},

		// Jaguar and Puma
		{extended(0x16, 0x00, Any()), entry(Jaguar, "Kabini", "28nm")},
		{extended(0x16, 0x30, Any()), entry(Puma2014, "Beema", "28nm")},

		// Zen through Zen 2, family 17h
		{extended(0x17, 0x01, Any()), entry(Zen, "Naples", "14nm")},
		{sig(Is(8), Is(15), Is(1), Is(1), Is(0)), entry(Zen, "RavenRidge", "14nm")},
		{extended(0x17, 0x11, Any()), entry(Zen, "RavenRidge", "14nm")},
		{extended(0x17, 0x20, Any()), entry(Zen, "Dali", "14nm")},
		{extended(0x17, 0x08, Any()), entry(ZenPlus, "PinnacleRidge", "12nm")},
		{extended(0x17, 0x18, Any()), entry(ZenPlus, "Picasso", "12nm")},
		{extended(0x17, 0x31, Any()), entry(Zen2, "Rome", "7nm")},
		{extended(0x17, 0x60, Any()), entry(Zen2, "Renoir", "7nm")},
		{extended(0x17, 0x68, Any()), entry(Zen2, "Lucienne", "7nm")},
		{extended(0x17, 0x71, Any()), entry(Zen2, "Matisse", "7nm")},
		{extended(0x17, 0x90, Any()), entry(Zen2, "VanGogh", "7nm")},
		{extended(0x17, 0xA0, Any()), entry(Zen2, "Mendocino", "6nm")},

		// Zen 3 and Zen 4, family 19h
		{extended(0x19, 0x01, Any()), entry(Zen3, "Milan", "7nm")},
		{extended(0x19, 0x08, Any()), entry(Zen3, "Chagall", "7nm")},
		{sig(Is(10), Is(15), Is(2), Is(1), Any()), entry(Zen3, "Vermeer", "7nm")},
		{extended(0x19, 0x50, Any()), entry(Zen3, "Cezanne", "7nm")},
		{extended(0x19, 0x44, Any()), entry(Zen3Plus, "Rembrandt", "6nm")},
		{extended(0x19, 0x18, Any()), entry(Zen4, "StormPeak", "5nm")},
		{sig(Is(10), Is(15), Is(1), Any(), Any()), entry(Zen4, "Genoa", "5nm")},
		{sig(Is(10), Is(15), Is(0xA), Any(), Any()), entry(Zen4C, "Bergamo", "5nm")},
		{sig(Is(10), Is(15), Is(6), Is(1), Is(2)), entry(Zen4, "Raphael", "5nm")},
		{sig(Is(10), Is(15), Is(7), Is(4), Is(1)), entry(Zen4, "Phoenix", "4nm")},
		{extended(0x19, 0x75, Any()), entry(Zen4, "HawkPoint", "4nm")},
		{extended(0x19, 0x78, Any()), entry(Zen4, "Phoenix2", "4nm")},

		// Zen 5, family 1Ah
		{extended(0x1A, 0x02, Any()), entry(Zen5, "Turin", "4nm")},
		{extended(0x1A, 0x11, Any()), entry(Zen5C, "TurinDense", "3nm")},
		{extended(0x1A, 0x24, Any()), entry(Zen5, "StrixPoint", "4nm")},
		{extended(0x1A, 0x44, Any()), entry(Zen5, "GraniteRidge", "4nm")},

		{catchAll, UnknownEntry},
	},
}

var hygonTable = Table{
	Name: "Hygon",
	Rows: []Row{
		{sig(Is(9), Is(15), Is(0), Range(0, 2), Any()), entry(Zen, "Dhyana", "14nm")},
		{catchAll, UnknownEntry},
	},
}
