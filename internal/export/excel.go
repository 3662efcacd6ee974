// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

// Package export writes the passenger roster to spreadsheet files.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toeirei/airdesk/internal/model"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet name used when none is configured.
const DefaultSheet = "Passengers"

// Exporter writes passenger records to path.
type Exporter interface {
	SaveToExcel(records []model.PassengerRecord, path string) error
}

// Excel is the excelize-backed Exporter.
type Excel struct {
	Sheet string
}

// NewExcel returns an Excel exporter writing to the named sheet.
func NewExcel(sheet string) *Excel {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &Excel{Sheet: sheet}
}

// SaveToExcel writes the header row followed by one row per record, in the
// given order. The whole workbook is built in memory before it is saved.
// A path without an extension gets ".xlsx".
func (e *Excel) SaveToExcel(records []model.PassengerRecord, path string) error {
	path = WithExtension(path)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := e.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("export: name sheet: %w", err)
	}

	if err := setRow(f, sheet, 1, model.RosterHeader); err != nil {
		return err
	}
	for i, r := range records {
		if err := setRow(f, sheet, i+2, r.Row()); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("export: row %d: %w", row, err)
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("export: write row %d: %w", row, err)
	}
	return nil
}

// workbookExts are the extensions excelize can save to.
var workbookExts = map[string]bool{
	".xlsx": true, ".xlsm": true, ".xltx": true, ".xltm": true, ".xlam": true,
}

// WithExtension appends ".xlsx" unless path already ends in a workbook
// extension. Other dotted names such as "roster.2026" keep their dot.
func WithExtension(path string) string {
	if workbookExts[strings.ToLower(filepath.Ext(path))] {
		return path
	}
	return path + ".xlsx"
}
