// Package export writes a loaded sheet to a local .xlsx workbook, giving the
// Google-Sheets-backed data an offline snapshot.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sheetdesk/sheetdesk/pkg/api"
)

// WriteXLSX writes content to path as a single-worksheet workbook named
// sheetName. Locked cells get a grey fill so the mask survives the export
// visually.
func WriteXLSX(path, sheetName string, content api.SheetContent) error {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	if sheetName == "" {
		sheetName = defaultSheet
	}
	if sheetName != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
			return fmt.Errorf("naming worksheet: %w", err)
		}
	}

	lockedStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return fmt.Errorf("creating locked style: %w", err)
	}

	for r, row := range content.Values {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("addressing cell (%d,%d): %w", r, c, err)
			}
			if err := f.SetCellValue(sheetName, cell, val); err != nil {
				return fmt.Errorf("writing cell %s: %w", cell, err)
			}
			if !content.CellEditable(r, c) {
				if err := f.SetCellStyle(sheetName, cell, cell, lockedStyle); err != nil {
					return fmt.Errorf("styling cell %s: %w", cell, err)
				}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
