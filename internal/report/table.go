// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cpuident/internal/cpuid"
	"cpuident/internal/profile"
	"cpuident/internal/uarch"
	"cpuident/internal/vendor"
)

// Field represents the values for a field in a table
type Field struct {
	Name   string
	Values []string
}

// Table is a named group of fields. When HasRows is set each field holds one
// value per row, otherwise each field holds a single value.
type Table struct {
	Name        string
	HasRows     bool
	NoDataFound string // message to display when no data is found
	Fields      []Field
}

const (
	ProcessorTableName      = "Processor"
	SignatureTableName      = "Signature"
	MicroArchTableName      = "Microarchitecture"
	FeaturesTableName       = "Features"
	LeavesTableName         = "Leaves"
	ClassificationTableName = "Classification"
	RowsTableName           = "Classification Rows"
)

func field(name string, value string) Field {
	return Field{Name: name, Values: []string{value}}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// use printer to get thousands separators, e.g., 1,024 threads
var printer = message.NewPrinter(language.English)

// Tables returns the report tables for p.
func Tables(p profile.Profile) []Table {
	return []Table{
		processorTable(p),
		signatureTable(p),
		microArchTable(p),
		featuresTable(p),
	}
}

func processorTable(p profile.Profile) Table {
	t := Table{Name: ProcessorTableName}
	t.Fields = append(t.Fields,
		field("Architecture", p.Arch),
		field("Vendor", p.Brand.Name()),
	)
	if p.VendorString != "" {
		t.Fields = append(t.Fields, field("Vendor String", p.VendorString))
	}
	t.Fields = append(t.Fields,
		field("Model", p.DisplayModel()),
		field("Threads", printer.Sprintf("%d", p.Threads)),
		field("CPUID", yesNo(p.HasCPUID)),
	)
	if p.BrandID != 0 {
		t.Fields = append(t.Fields, field("Brand ID", fmt.Sprintf("0x%02x", p.BrandID)))
	}
	if p.EasterEgg != "" {
		t.Fields = append(t.Fields, field("Easter Egg", p.EasterEgg))
	}
	if !p.IDRegister.IsZero() {
		t.Fields = append(t.Fields, field("ID Register", p.IDRegister.String()))
	}
	return t
}

func signatureTable(p profile.Profile) Table {
	t := Table{Name: SignatureTableName, NoDataFound: "No CPUID signature."}
	if !profile.IsX86(p.Arch) {
		return t
	}
	s, d := p.Signature, p.Display
	t.Fields = []Field{
		field("Family", fmt.Sprintf("%Xh", d.Family)),
		field("Model", fmt.Sprintf("%Xh", d.Model)),
		field("Stepping", fmt.Sprintf("%Xh", d.Stepping)),
		field("Extended Family", fmt.Sprintf("%Xh", s.ExtendedFamily)),
		field("Extended Model", fmt.Sprintf("%Xh", s.ExtendedModel)),
		field("Type", strconv.FormatUint(uint64(s.Type), 10)),
		field("Raw", s.String()),
	}
	if s.IsOverDrive() {
		t.Fields = append(t.Fields, field("OverDrive", yesNo(true)))
	}
	return t
}

func microArchTable(p profile.Profile) Table {
	technology := p.MicroArch.Technology
	if technology == "" {
		technology = "Unknown"
	}
	return Table{
		Name: MicroArchTableName,
		Fields: []Field{
			field("Microarchitecture", string(p.MicroArch.MicroArch)),
			field("Codename", p.MicroArch.Codename),
			field("Technology", technology),
		},
	}
}

func featuresTable(p profile.Profile) Table {
	names := p.Features.Names()
	t := Table{Name: FeaturesTableName, NoDataFound: "No features reported."}
	if len(names) == 0 {
		return t
	}
	t.Fields = []Field{
		field("Present", printer.Sprintf("%d of %d", len(names), p.Features.Len())),
		field("Flags", strings.Join(names, " ")),
	}
	return t
}

// ClassificationTable names the table and row that classified p.
func ClassificationTable(p profile.Profile) Table {
	tableName, row, pattern := p.Table, "none", "none"
	if tableName == "" {
		tableName = "none"
	}
	if p.Row >= 0 {
		row = strconv.Itoa(p.Row)
		if t, ok := uarch.TableFor(p.Brand); ok && p.Row < len(t.Rows) {
			pattern = t.Rows[p.Row].Pattern.String()
		}
	}
	return Table{
		Name: ClassificationTableName,
		Fields: []Field{
			field("Table", tableName),
			field("Row", row),
			field("Pattern", pattern),
			field("Known Vendor String", yesNo(vendor.Known().Contains(p.VendorString))),
		},
	}
}

// RowsTable lists every row of the x86 classification tables in evaluation
// order.
func RowsTable() Table {
	names := []string{"Table", "Row", "Pattern", "Microarchitecture", "Codename", "Technology"}
	t := Table{Name: RowsTableName, HasRows: true, Fields: make([]Field, len(names))}
	for i, name := range names {
		t.Fields[i].Name = name
	}
	for _, tbl := range uarch.Tables() {
		for i, r := range tbl.Rows {
			values := []string{tbl.Name, strconv.Itoa(i), r.Pattern.String(), string(r.Entry.MicroArch), r.Entry.Codename, r.Entry.Technology}
			for j, v := range values {
				t.Fields[j].Values = append(t.Fields[j].Values, v)
			}
		}
	}
	return t
}

// LeavesTable lists every recorded leaf as hex words.
func LeavesTable(s cpuid.Snapshot) Table {
	t := Table{Name: LeavesTableName, HasRows: true, NoDataFound: "No leaves recorded."}
	if len(s.Leaves) == 0 {
		return t
	}
	names := []string{"Leaf", "Subleaf", "EAX", "EBX", "ECX", "EDX"}
	t.Fields = make([]Field, len(names))
	for i, name := range names {
		t.Fields[i].Name = name
	}
	for _, l := range s.Leaves {
		for i, v := range []uint32{l.Leaf, l.Subleaf, l.EAX, l.EBX, l.ECX, l.EDX} {
			t.Fields[i].Values = append(t.Fields[i].Values, fmt.Sprintf("%08x", v))
		}
	}
	return t
}
