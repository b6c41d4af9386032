// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const xlsxSheetName = "cpuident"

func cellName(col int, row int) (name string) {
	columnName, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return
	}
	name, err = excelize.JoinCellName(columnName, row)
	if err != nil {
		return
	}
	return
}

func createXlsxReport(tables []Table) (out []byte, err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close workbook", slog.String("error", cerr.Error()))
		}
	}()
	if err = f.SetSheetName("Sheet1", xlsxSheetName); err != nil {
		return nil, errors.Wrap(err, "failed to name worksheet")
	}
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create style")
	}
	row := 1
	for _, t := range tables {
		renderXlsxTable(t, f, xlsxSheetName, boldStyle, &row)
	}
	_ = f.SetColWidth(xlsxSheetName, "A", "A", 20)
	_ = f.SetColWidth(xlsxSheetName, "B", "B", 25)
	_ = f.SetColWidth(xlsxSheetName, "C", "H", 15)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}
	return buf.Bytes(), nil
}

func renderXlsxTable(t Table, f *excelize.File, sheetName string, boldStyle int, row *int) {
	col := 1
	// print the table name
	_ = f.SetCellValue(sheetName, cellName(col, *row), t.Name)
	_ = f.SetCellStyle(sheetName, cellName(col, *row), cellName(col, *row), boldStyle)
	*row++
	if len(t.Fields) == 0 || len(t.Fields[0].Values) == 0 {
		msg := NoDataFound
		if t.NoDataFound != "" {
			msg = t.NoDataFound
		}
		_ = f.SetCellValue(sheetName, cellName(col, *row), msg)
		*row += 2
		return
	}
	if t.HasRows {
		// field names across the top, one row per record
		col = 2
		for _, field := range t.Fields {
			_ = f.SetCellValue(sheetName, cellName(col, *row), field.Name)
			_ = f.SetCellStyle(sheetName, cellName(col, *row), cellName(col, *row), boldStyle)
			col++
		}
		*row++
		for tableRow := range len(t.Fields[0].Values) {
			col = 2
			for _, field := range t.Fields {
				_ = f.SetCellValue(sheetName, cellName(col, *row), field.Values[tableRow])
				col++
			}
			*row++
		}
	} else {
		for _, field := range t.Fields {
			_ = f.SetCellValue(sheetName, cellName(1, *row), field.Name)
			_ = f.SetCellStyle(sheetName, cellName(1, *row), cellName(1, *row), boldStyle)
			_ = f.SetCellValue(sheetName, cellName(2, *row), field.Values[0])
			*row++
		}
	}
	*row++
}
