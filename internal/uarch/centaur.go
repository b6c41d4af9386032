// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package uarch

var idtTable = Table{
	Name: "IDT",
	Rows: []Row{
		{sig(Is(0), Is(5), Is(0), Is(4), Any()), entry(Winchip, "C6", "350nm")},
		{sig(Is(0), Is(5), Is(0), Is(8), Is(5)), entry(Winchip2, "C2", "350nm")},
		{sig(Is(0), Is(5), Is(0), Is(8), Is(7)), entry(Winchip2A, "W2A", "250nm")},
		{sig(Is(0), Is(5), Is(0), Is(8), Is(10)), entry(Winchip2B, "W2B", "250nm")},
		{sig(Is(0), Is(5), Is(0), Is(9), Any()), entry(Winchip3, "C3", "250nm")},
		{catchAll, UnknownEntry},
	},
}

var viaTable = Table{
	Name: "VIA",
	Rows: []Row{
		{sig(Is(0), Is(6), Is(0), Is(6), Any()), entry(Samuel, "Samuel (C5A)", "180nm")},
		{sig(Is(0), Is(6), Is(0), Is(7), Range(0, 7)), entry(Samuel2, "Samuel 2 (C5B)", "150nm")},
		{sig(Is(0), Is(6), Is(0), Is(7), Range(8, 15)), entry(Ezra, "Ezra (C5C)", "130nm")},
		{sig(Is(0), Is(6), Is(0), Is(8), Any()), entry(EzraT, "Ezra-T (C5N)", "130nm")},
		{sig(Is(0), Is(6), Is(0), Is(9), Range(0, 7)), entry(Nehemiah, "Nehemiah (C5XL)", "130nm")},
		{sig(Is(0), Is(6), Is(0), Is(9), Range(8, 15)), entry(NehemiahP, "Nehemiah+ (C5P)", "130nm")},
		{sig(Is(0), Is(6), Is(0), Is(10), Any()), entry(Esther, "Esther (C5J)", "90nm")},
		{sig(Is(0), Is(6), Is(1), Range(9, 12), Is(8)), entry(Isaiah, "Isaiah (CNS)", "40nm")},
		{sig(Is(0), Is(6), Is(1), Is(15), Any()), entry(Isaiah, "Isaiah (CN)", "65nm")},
		{catchAll, UnknownEntry},
	},
}

var zhaoxinTable = Table{
	Name: "Zhaoxin",
	Rows: []Row{
		{sig(Is(0), Is(7), Is(1), Is(11), Is(0)), entry(Wudaokou, "WuDaoKou", "28nm")},
		{sig(Is(0), Is(7), Is(3), Is(11), Is(0)), entry(Lujiazui, "LuJiaZui", "16nm")},
		{sig(Is(0), Is(7), Is(5), Is(11), Any()), entry(Yongfeng, "YongFeng", "16nm")},
		{catchAll, UnknownEntry},
	},
}
