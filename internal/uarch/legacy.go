// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package uarch

var cyrixTable = Table{
	Name: "Cyrix",
	Rows: []Row{
		{sig(Is(0), Is(4), Is(0), Is(4), Any()), entry(MediaGX, "MediaGX", "600nm")},
		{sig(Is(0), Is(4), Is(0), Is(9), Any()), entry(Cyrix5x86, "5x86", "650nm")},
		{sig(Is(0), Is(5), Is(0), Is(2), Any()), entry(M1, "M1/6x86", "600nm")},
		{sig(Is(0), Is(5), Is(0), Is(4), Any()), entry(MediaGX, "MediaGX GXm", "350nm")},
		{sig(Is(0), Is(6), Is(0), Is(0), Any()), entry(M2, "M2/6x86MX", "350nm")},
		{sig(Is(0), Is(6), Is(0), Is(5), Any()), entry(Joshua, "Joshua", "180nm")},
		{catchAll, UnknownEntry},
	},
}

var nscTable = Table{
	Name: "National Semiconductor",
	Rows: []Row{
		{sig(Is(0), Is(5), Is(0), Is(4), Any()), entry(Geode, "Geode GX1", "180nm")},
		{sig(Is(0), Is(5), Is(0), Is(5), Any()), entry(Geode, "Geode GX2", "150nm")},
		{catchAll, UnknownEntry},
	},
}

var nexgenTable = Table{
	Name: "NexGen",
	Rows: []Row{
		{sig(Is(0), Is(5), Is(0), Is(0), Any()), entry(Nx586, "Nx586", "500nm")},
		{catchAll, UnknownEntry},
	},
}

var dmpTable = Table{
	Name: "DM&P",
	Rows: []Row{
		{sig(Is(0), Is(6), Is(0), Is(1), Is(1)), entry(VortexDX3, "Vortex86DX3", "65nm")},
		{catchAll, UnknownEntry},
	},
}

var riseTable = Table{
	Name: "Rise",
	Rows: []Row{
		{sig(Is(0), Is(5), Is(0), Is(0), Any()), entry(MP6, "mP6", "250nm")},
		{sig(Is(0), Is(5), Is(0), Is(2), Any()), entry(MP6Shrink, "mP6", "180nm")},
		{catchAll, UnknownEntry},
	},
}

var sisTable = Table{
	Name: "SiS",
	Rows: []Row{
		{sig(Is(0), Is(5), Is(0), Is(0), Any()), entry(SiS55x, "SiS550", "180nm")},
		{catchAll, UnknownEntry},
	},
}

var umcTable = Table{
	Name: "UMC",
	Rows: []Row{
		{sig(Is(0), Is(4), Is(0), Is(1), Any()), entry(U5D, "U5D", "600nm")},
		{sig(Is(0), Is(4), Is(0), Is(2), Any()), entry(U5S, "U5S", "600nm")},
		{catchAll, UnknownEntry},
	},
}

var transmetaTable = Table{
	Name: "Transmeta",
	Rows: []Row{
		{sig(Is(0), Is(5), Is(0), Is(4), Any()), entry(Crusoe, "Crusoe", "130nm")},
		{sig(Is(0), Is(15), Is(0), OneOf(2, 3), Any()), entry(Efficeon, "Efficeon", "90nm")},
		{catchAll, UnknownEntry},
	},
}
