// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package report renders a processor profile in text, json, yaml, cbor, xlsx
// and prometheus text formats.
package report

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"cpuident/internal/profile"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCBOR = "cbor"
	FormatXlsx = "xlsx"
	FormatProm = "prom"
)

const NoDataFound = "No data found."

var FormatOptions = []string{FormatText, FormatJSON, FormatYAML, FormatCBOR, FormatXlsx, FormatProm}

// ValidFormat reports whether format is one of FormatOptions.
func ValidFormat(format string) bool {
	return slices.Contains(FormatOptions, format)
}

// IsBinary reports whether format produces output that should not be written
// to a terminal.
func IsBinary(format string) bool {
	return format == FormatCBOR || format == FormatXlsx
}

// Create renders p in the specified format. Text output is wrapped to width
// columns; a width of zero disables wrapping.
func Create(format string, p profile.Profile, width int) (out []byte, err error) {
	switch format {
	case FormatText:
		return createTextReport(Tables(p), width)
	case FormatJSON:
		return createJSONRecord(NewRecord(p))
	case FormatYAML:
		return createYAMLRecord(NewRecord(p))
	case FormatCBOR:
		return createCBORRecord(NewRecord(p))
	case FormatXlsx:
		return createXlsxReport(Tables(p))
	case FormatProm:
		return createPromReport(p)
	}
	return nil, errors.Errorf("expected one of %s, got %s", strings.Join(FormatOptions, ", "), format)
}

// CreateTables renders arbitrary tables. Only the tabular formats are
// supported: text, json and xlsx.
func CreateTables(format string, tables []Table, width int) (out []byte, err error) {
	if err = validate(tables); err != nil {
		return nil, err
	}
	switch format {
	case FormatText:
		return createTextReport(tables, width)
	case FormatJSON:
		return createJSONReport(tables)
	case FormatXlsx:
		return createXlsxReport(tables)
	}
	return nil, errors.Errorf("format %s does not support tables, expected one of %s", format, strings.Join([]string{FormatText, FormatJSON, FormatXlsx}, ", "))
}

// validate makes sure that all fields of a table have the same number of values
func validate(tables []Table) error {
	for _, t := range tables {
		numRows := -1
		for _, field := range t.Fields {
			if numRows == -1 {
				numRows = len(field.Values)
				continue
			}
			if len(field.Values) != numRows {
				return errors.Errorf("table %s: expected %d value(s) for field %s, found %d", t.Name, numRows, field.Name, len(field.Values))
			}
		}
	}
	return nil
}
