// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package uarch

import (
	"cpuident/internal/signature"
	"cpuident/internal/vendor"
)

// tables by effective vendor
var tables = map[vendor.Vendor]*Table{
	vendor.Intel:     &intelTable,
	vendor.AMD:       &amdTable,
	vendor.Hygon:     &hygonTable,
	vendor.IDT:       &idtTable,
	vendor.VIA:       &viaTable,
	vendor.Zhaoxin:   &zhaoxinTable,
	vendor.Cyrix:     &cyrixTable,
	vendor.NSC:       &nscTable,
	vendor.NexGen:    &nexgenTable,
	vendor.DMP:       &dmpTable,
	vendor.Rise:      &riseTable,
	vendor.SiS:       &sisTable,
	vendor.UMC:       &umcTable,
	vendor.Transmeta: &transmetaTable,
}

// Lineage returns the vendor whose table classifies raw. The Centaur string
// is shared by three lineages that are told apart by the raw family: 5 is
// IDT, 6 is VIA and anything else is Zhaoxin. Other vendors map to
// themselves.
func Lineage(v vendor.Vendor, raw signature.Raw) vendor.Vendor {
	if v != vendor.Centaur {
		return v
	}
	switch raw.Family {
	case 5:
		return vendor.IDT
	case 6:
		return vendor.VIA
	default:
		return vendor.Zhaoxin
	}
}

// Classify maps a vendor and raw signature to a microarchitecture entry. It
// is total: vendors without a table and unmatched signatures yield
// UnknownEntry.
func Classify(v vendor.Vendor, raw signature.Raw) Entry {
	e, _, _ := Match(v, raw)
	return e
}

// Match is Classify that also reports the table consulted and the index of
// the matching row. The table name is empty and the index -1 when the
// vendor has no table.
func Match(v vendor.Vendor, raw signature.Raw) (Entry, string, int) {
	t, ok := tables[Lineage(v, raw)]
	if !ok {
		return UnknownEntry, "", -1
	}
	e, i := t.Match(raw)
	return e, t.Name, i
}

// TableFor returns the table for an effective vendor.
func TableFor(v vendor.Vendor) (Table, bool) {
	t, ok := tables[v]
	if !ok {
		return Table{}, false
	}
	return *t, true
}

// Tables returns every x86 table in a fixed order.
func Tables() []Table {
	order := []vendor.Vendor{
		vendor.Intel, vendor.AMD, vendor.Hygon,
		vendor.IDT, vendor.VIA, vendor.Zhaoxin,
		vendor.Cyrix, vendor.NSC, vendor.NexGen, vendor.DMP,
		vendor.Rise, vendor.SiS, vendor.UMC, vendor.Transmeta,
	}
	out := make([]Table, 0, len(order))
	for _, v := range order {
		out = append(out, *tables[v])
	}
	return out
}
