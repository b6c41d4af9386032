// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalWidth returns the width of the terminal attached to f, or zero when
// f is not a terminal.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd()) // #nosec G115
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func createTextReport(tables []Table, width int) (out []byte, err error) {
	var sb strings.Builder
	for _, t := range tables {
		sb.WriteString(fmt.Sprintf("%s\n", t.Name))
		sb.WriteString(strings.Repeat("=", len(t.Name)))
		sb.WriteString("\n")
		if len(t.Fields) == 0 || len(t.Fields[0].Values) == 0 {
			msg := NoDataFound
			if t.NoDataFound != "" {
				msg = t.NoDataFound
			}
			sb.WriteString(msg + "\n\n")
			continue
		}
		if t.HasRows {
			sb.WriteString(renderTextRows(t))
		} else {
			sb.WriteString(renderTextFields(t, width))
		}
		sb.WriteString("\n")
	}
	out = []byte(sb.String())
	return
}

// renderTextRows prints the field names as column headings across the top of
// the table
func renderTextRows(t Table) string {
	var sb strings.Builder
	// find the longest item per column, either the field name or a value
	maxFieldLen := make([]int, len(t.Fields))
	for i, field := range t.Fields {
		// the last column shouldn't occupy more space than the value
		if i == len(t.Fields)-1 {
			continue
		}
		maxFieldLen[i] = len(field.Name)
		for _, val := range field.Values {
			maxFieldLen[i] = max(maxFieldLen[i], len(val))
		}
	}
	columnSpacing := 3
	for i, field := range t.Fields {
		sb.WriteString(fmt.Sprintf("%-*s", maxFieldLen[i]+columnSpacing, field.Name))
	}
	sb.WriteString("\n")
	for i, field := range t.Fields {
		sb.WriteString(fmt.Sprintf("%-*s", maxFieldLen[i]+columnSpacing, strings.Repeat("-", len(field.Name))))
	}
	sb.WriteString("\n")
	for row := range len(t.Fields[0].Values) {
		for i, field := range t.Fields {
			sb.WriteString(fmt.Sprintf("%-*s", maxFieldLen[i]+columnSpacing, field.Values[row]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderTextFields prints the field names followed by their value. Values
// wider than the space left of width wrap onto indented lines.
func renderTextFields(t Table, width int) string {
	var sb strings.Builder
	maxFieldNameLen := 0
	for _, field := range t.Fields {
		maxFieldNameLen = max(maxFieldNameLen, len(field.Name))
	}
	indent := maxFieldNameLen + 2
	for _, field := range t.Fields {
		var value string
		if len(field.Values) > 0 {
			value = field.Values[0]
		}
		lines := wrap(value, width-indent)
		sb.WriteString(fmt.Sprintf("%s%-*s %s\n", field.Name, maxFieldNameLen-len(field.Name)+1, ":", lines[0]))
		for _, line := range lines[1:] {
			sb.WriteString(strings.Repeat(" ", indent) + line + "\n")
		}
	}
	return sb.String()
}

// wrap splits s on spaces into lines no wider than limit. A single word wider
// than limit gets its own line. A limit below one disables wrapping.
func wrap(s string, limit int) []string {
	if limit < 1 || len(s) <= limit {
		return []string{s}
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > limit {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 || len(lines) == 0 {
		lines = append(lines, line.String())
	}
	return lines
}
