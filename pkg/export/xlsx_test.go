package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/sheetdesk/sheetdesk/pkg/api"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	content := api.SheetContent{
		Values: [][]string{
			{"Revenue", "1,200"},
			{"=SUM(B1:B1)", "note"},
		},
		Editable: [][]bool{
			{false, true},
			{false, true},
		},
	}

	if err := WriteXLSX(path, "APR 25", content); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != "APR 25" {
		t.Errorf("sheets = %v", got)
	}

	cases := map[string]string{
		"A1": "Revenue",
		"B1": "1,200",
		"A2": "=SUM(B1:B1)",
		"B2": "note",
	}
	for cell, want := range cases {
		got, err := f.GetCellValue("APR 25", cell)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}

	// Locked cells carry a style, editable ones keep the default.
	lockedStyle, err := f.GetCellStyle("APR 25", "A1")
	if err != nil {
		t.Fatal(err)
	}
	editableStyle, err := f.GetCellStyle("APR 25", "B1")
	if err != nil {
		t.Fatal(err)
	}
	if lockedStyle == editableStyle {
		t.Error("locked and editable cells must not share a style")
	}
}

func TestWriteXLSXEmptySheetName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteXLSX(path, "", api.SheetContent{Values: [][]string{{"x"}}}); err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if got := f.GetSheetList(); len(got) != 1 || got[0] != "Sheet1" {
		t.Errorf("sheets = %v", got)
	}
}
