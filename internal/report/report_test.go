// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"

	"cpuident/internal/cpuid"
	"cpuident/internal/hostid"
	"cpuident/internal/profile"
	"cpuident/internal/uarch"
)

func skylake(t *testing.T) (profile.Profile, *cpuid.Replay) {
	t.Helper()
	p, err := cpuid.LoadReplay(filepath.Join("testdata", "skylake_sp.yaml"))
	require.NoError(t, err)
	return profile.New(p, profile.WithArch("amd64")), p
}

func graviton2() profile.Profile {
	midr := hostid.NewMIDR(0x41, 3, 0xF, 0xD0C, 1)
	return profile.New(cpuid.Zero{},
		profile.WithArch("arm64"),
		profile.WithHost(hostid.Info{
			Arch:     "arm64",
			ID:       hostid.IDRegister{Kind: hostid.KindMIDR, Value: uint64(midr)},
			Platform: "AWS Graviton2",
			Cores:    64,
		}))
}

func TestValidFormat(t *testing.T) {
	for _, format := range FormatOptions {
		assert.True(t, ValidFormat(format), format)
	}
	assert.False(t, ValidFormat("html"))
	assert.True(t, IsBinary(FormatCBOR))
	assert.True(t, IsBinary(FormatXlsx))
	assert.False(t, IsBinary(FormatText))
}

func TestCreateUnknownFormat(t *testing.T) {
	p, _ := skylake(t)
	_, err := Create("html", p, 0)
	assert.ErrorContains(t, err, "expected one of")
}

func TestCreateText(t *testing.T) {
	p, _ := skylake(t)
	out, err := Create(FormatText, p, 0)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "Processor\n=========\n")
	assert.Contains(t, text, "Microarchitecture\n=================\n")
	assert.Regexp(t, `(?m)^Vendor:\s+Intel$`, text)
	assert.Regexp(t, `(?m)^Vendor String:\s+GenuineIntel$`, text)
	assert.Regexp(t, `(?m)^Codename:\s+Skylake-SP$`, text)
	assert.Regexp(t, `(?m)^Family:\s+6h$`, text)
	assert.Regexp(t, `(?m)^Model:\s+55h$`, text)
	assert.Regexp(t, `(?m)^Flags:\s+fpu vme de `, text)
}

func TestCreateTextWraps(t *testing.T) {
	p, _ := skylake(t)
	out, err := Create(FormatText, p, 60)
	require.NoError(t, err)
	flagLines := 0
	for _, line := range strings.Split(string(out), "\n") {
		assert.LessOrEqual(t, len(line), 60, line)
		if strings.HasPrefix(line, strings.Repeat(" ", 9)) {
			flagLines++
		}
	}
	assert.Positive(t, flagLines)
	assert.Contains(t, string(out), "avx512vl")
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  []string
	}{
		{"disabled", "a b c", 0, []string{"a b c"}},
		{"fits", "a b c", 5, []string{"a b c"}},
		{"split", "aa bb cc", 5, []string{"aa bb", "cc"}},
		{"long word", "a verylongword b", 4, []string{"a", "verylongword", "b"}},
		{"empty", "", 3, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.in, tt.limit))
		})
	}
}

func TestCreateJSON(t *testing.T) {
	p, _ := skylake(t)
	out, err := Create(FormatJSON, p, 0)
	require.NoError(t, err)
	var r Record
	require.NoError(t, json.Unmarshal(out, &r))
	assert.Equal(t, "Intel", r.Vendor)
	assert.Equal(t, "GenuineIntel", r.VendorString)
	assert.Equal(t, "Skylake-SP", r.MicroArch.Codename)
	require.NotNil(t, r.Signature)
	assert.Equal(t, "Family 6h, Model 55h, Stepping 4h", r.Signature.Display)
	assert.Equal(t, uint32(0x55), r.Signature.Model)
	assert.Contains(t, r.Features, "avx512f")
	assert.Equal(t, 64, r.Threads)
}

func TestCreateYAML(t *testing.T) {
	p, _ := skylake(t)
	out, err := Create(FormatYAML, p, 0)
	require.NoError(t, err)
	var r Record
	require.NoError(t, yaml.Unmarshal(out, &r))
	assert.Equal(t, NewRecord(p), r)
}

func TestCreateCBOR(t *testing.T) {
	p, _ := skylake(t)
	out, err := Create(FormatCBOR, p, 0)
	require.NoError(t, err)
	var r Record
	require.NoError(t, cbor.Unmarshal(out, &r))
	assert.Equal(t, NewRecord(p), r)

	again, err := Create(FormatCBOR, p, 0)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestCreateXlsx(t *testing.T) {
	p, _ := skylake(t)
	out, err := Create(FormatXlsx, p, 0)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	first, err := f.GetCellValue(xlsxSheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, ProcessorTableName, first)
	rows, err := f.GetRows(xlsxSheetName)
	require.NoError(t, err)
	found := false
	for _, row := range rows {
		if len(row) >= 2 && row[0] == "Codename" {
			assert.Equal(t, "Skylake-SP", row[1])
			found = true
		}
	}
	assert.True(t, found)
}

func TestCreateProm(t *testing.T) {
	p, _ := skylake(t)
	out, err := Create(FormatProm, p, 0)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "# TYPE cpuident_processor_info gauge")
	assert.Contains(t, text, `codename="Skylake-SP"`)
	assert.Contains(t, text, `cpuident_processor_feature{name="avx2"} 1`)
	assert.Contains(t, text, `cpuident_processor_feature{name="sha"} 0`)
	assert.Contains(t, text, "cpuident_processor_threads 64")
	assert.Contains(t, text, `cpuident_processor_signature{field="model"} 85`)
	assert.Contains(t, text, "cpuident_processor_has_cpuid 1")
}

func TestIDRegisterProfile(t *testing.T) {
	p := graviton2()
	out, err := Create(FormatText, p, 0)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "No CPUID signature.")
	assert.Contains(t, text, "No features reported.")
	assert.Regexp(t, `(?m)^Codename:\s+Graviton2$`, text)
	assert.Regexp(t, `(?m)^ID Register:\s+implementer=0x41 `, text)
	assert.Regexp(t, `(?m)^CPUID:\s+No$`, text)

	out, err = CreateTables(FormatText, []Table{ClassificationTable(p)}, 0)
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^Known Vendor String:\s+No$`, string(out))
	assert.Regexp(t, `(?m)^Table:\s+ARM$`, string(out))
	assert.Regexp(t, `(?m)^Pattern:\s+none$`, string(out))

	r := NewRecord(p)
	assert.Nil(t, r.Signature)
	assert.Empty(t, r.Features)
	assert.NotNil(t, r.Features)
	assert.Equal(t, "ARM", r.Vendor)
	assert.Equal(t, 64, r.Threads)
}

func TestCreateTables(t *testing.T) {
	p, replay := skylake(t)
	tables := append(Tables(p), ClassificationTable(p), LeavesTable(replay.Snapshot()))

	out, err := CreateTables(FormatText, tables, 0)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "Leaves\n======\n")
	assert.Regexp(t, `(?m)^Leaf\s+Subleaf\s+EAX\s+EBX\s+ECX\s+EDX\s*$`, text)
	assert.Regexp(t, `(?m)^00000001\s+00000000\s+00050654\s+`, text)
	assert.Regexp(t, `(?m)^Table:\s+Intel$`, text)
	assert.Regexp(t, `(?m)^Known Vendor String:\s+Yes$`, text)
	assert.Regexp(t, `(?m)^Pattern:\s+\(0, 6, 5, 5, 0\.\.=4\)$`, text)

	out, err = CreateTables(FormatJSON, tables, 0)
	require.NoError(t, err)
	var decoded map[string][]map[string]string
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded[LeavesTableName], len(replay.Snapshot().Leaves))
	assert.Equal(t, "80000000", decoded[LeavesTableName][3]["Leaf"])
	assert.Equal(t, "Skylake-SP", decoded[MicroArchTableName][0]["Codename"])

	_, err = CreateTables(FormatYAML, tables, 0)
	assert.Error(t, err)
}

func TestCreateTablesRejectsRaggedFields(t *testing.T) {
	ragged := Table{
		Name:    "ragged",
		HasRows: true,
		Fields: []Field{
			{Name: "a", Values: []string{"1", "2"}},
			{Name: "b", Values: []string{"1"}},
		},
	}
	_, err := CreateTables(FormatText, []Table{ragged}, 0)
	assert.ErrorContains(t, err, "ragged")
}

func TestEmptyLeavesTable(t *testing.T) {
	out, err := CreateTables(FormatText, []Table{LeavesTable(cpuid.Snapshot{})}, 0)
	require.NoError(t, err)
	assert.Equal(t, "Leaves\n======\nNo leaves recorded.\n\n", string(out))
}

func TestRowsTable(t *testing.T) {
	rows := 0
	for _, tbl := range uarch.Tables() {
		rows += len(tbl.Rows)
	}
	out, err := CreateTables(FormatJSON, []Table{RowsTable()}, 0)
	require.NoError(t, err)
	var decoded map[string][]map[string]string
	require.NoError(t, json.Unmarshal(out, &decoded))
	records := decoded[RowsTableName]
	require.Len(t, records, rows)
	assert.Equal(t, "Intel", records[0]["Table"])
	assert.Equal(t, "0", records[0]["Row"])
	last := records[len(records)-1]
	assert.Equal(t, "(_, _, _, _, _)", last["Pattern"])
	assert.Equal(t, uarch.UnknownCodename, last["Codename"])
}
