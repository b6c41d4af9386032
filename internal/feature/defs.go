// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package feature

import (
	"cpuident/internal/cpuid"
	"cpuident/internal/vendor"
)

// Definition ties a feature name to one register bit.
type Definition struct {
	Name     string
	Leaf     uint32
	Subleaf  uint32
	Register cpuid.Register
	Bit      uint
	// Applies, when set, must accept the vendor for the bit to count.
	Applies func(vendor.Vendor) bool
}

func notIntel(v vendor.Vendor) bool { return v != vendor.Intel }
func onlyAMD(v vendor.Vendor) bool  { return v == vendor.AMD }

func leaf1EDX(name string, bit uint) Definition {
	return Definition{Name: name, Leaf: cpuid.LeafProcessorInfo, Register: cpuid.EDX, Bit: bit}
}

func leaf1ECX(name string, bit uint) Definition {
	return Definition{Name: name, Leaf: cpuid.LeafProcessorInfo, Register: cpuid.ECX, Bit: bit}
}

func leaf7(name string, reg cpuid.Register, bit uint) Definition {
	return Definition{Name: name, Leaf: cpuid.LeafExtFeatures, Register: reg, Bit: bit}
}

func ext1(name string, reg cpuid.Register, bit uint) Definition {
	return Definition{Name: name, Leaf: cpuid.LeafExtFeatures1, Register: reg, Bit: bit}
}

// Definitions lists every tracked feature in display order.
var Definitions = []Definition{
	leaf1EDX("fpu", 0),
	leaf1EDX("vme", 1),
	leaf1EDX("de", 2),
	leaf1EDX("pse", 3),
	leaf1EDX("tsc", 4),
	leaf1EDX("msr", 5),
	leaf1EDX("pae", 6),
	leaf1EDX("mce", 7),
	leaf1EDX("cx8", 8),
	leaf1EDX("apic", 9),
	leaf1EDX("sep", 11),
	leaf1EDX("mtrr", 12),
	leaf1EDX("pge", 13),
	leaf1EDX("mca", 14),
	leaf1EDX("cmov", 15),
	leaf1EDX("pat", 16),
	leaf1EDX("pse36", 17),
	leaf1EDX("clflush", 19),
	leaf1EDX("mmx", 23),
	leaf1EDX("fxsr", 24),
	leaf1EDX("sse", 25),
	leaf1EDX("sse2", 26),
	leaf1EDX("htt", 28),

	leaf1ECX("sse3", 0),
	leaf1ECX("pclmulqdq", 1),
	leaf1ECX("monitor", 3),
	leaf1ECX("ssse3", 9),
	leaf1ECX("fma", 12),
	leaf1ECX("cx16", 13),
	leaf1ECX("sse41", 19),
	leaf1ECX("sse42", 20),
	leaf1ECX("movbe", 22),
	leaf1ECX("popcnt", 23),
	leaf1ECX("aes", 25),
	leaf1ECX("xsave", 26),
	leaf1ECX("avx", 28),
	leaf1ECX("f16c", 29),
	leaf1ECX("rdrand", 30),
	leaf1ECX("hypervisor", 31),

	leaf7("bmi1", cpuid.EBX, 3),
	leaf7("hle", cpuid.EBX, 4),
	leaf7("avx2", cpuid.EBX, 5),
	leaf7("bmi2", cpuid.EBX, 8),
	leaf7("erms", cpuid.EBX, 9),
	leaf7("rtm", cpuid.EBX, 11),
	leaf7("avx512f", cpuid.EBX, 16),
	leaf7("avx512dq", cpuid.EBX, 17),
	leaf7("rdseed", cpuid.EBX, 18),
	leaf7("adx", cpuid.EBX, 19),
	leaf7("avx512ifma", cpuid.EBX, 21),
	leaf7("avx512cd", cpuid.EBX, 28),
	leaf7("sha", cpuid.EBX, 29),
	leaf7("avx512bw", cpuid.EBX, 30),
	leaf7("avx512vl", cpuid.EBX, 31),
	leaf7("avx512vbmi", cpuid.ECX, 1),
	leaf7("gfni", cpuid.ECX, 8),
	leaf7("vaes", cpuid.ECX, 9),
	leaf7("vpclmulqdq", cpuid.ECX, 10),
	leaf7("avx512vnni", cpuid.ECX, 11),
	leaf7("amxbf16", cpuid.EDX, 22),
	leaf7("amxtile", cpuid.EDX, 24),
	leaf7("amxint8", cpuid.EDX, 25),

	ext1("lahf", cpuid.ECX, 0),
	ext1("abm", cpuid.ECX, 5),
	ext1("sse4a", cpuid.ECX, 6),
	ext1("xop", cpuid.ECX, 11),
	{Name: "fma4", Leaf: cpuid.LeafExtFeatures1, Register: cpuid.ECX, Bit: 16, Applies: onlyAMD},
	ext1("tbm", cpuid.ECX, 21),
	ext1("syscall", cpuid.EDX, 11),
	ext1("nx", cpuid.EDX, 20),
	ext1("mmxext", cpuid.EDX, 22),
	ext1("rdtscp", cpuid.EDX, 27),
	ext1("amd64", cpuid.EDX, 29),
	ext1("amd3dnowext", cpuid.EDX, 30),
	// bit 31 is reserved on Intel
	{Name: "amd3dnow", Leaf: cpuid.LeafExtFeatures1, Register: cpuid.EDX, Bit: 31, Applies: notIntel},
}
