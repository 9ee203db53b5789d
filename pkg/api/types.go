package api

// Company is one row of the backend's master company list.
type Company struct {
	CompanyID   string `json:"CompanyId"`
	CompanyName string `json:"CompanyName"`
}

// SheetDescriptor names one sheet (tab) inside a company's workbook.
type SheetDescriptor struct {
	SheetName string `json:"sheetName"`
}

// SheetContent is a sheet's cell values plus the parallel editable mask.
// The two matrices are expected to have identical dimensions; the backend
// owns that invariant and the client reads the mask defensively.
type SheetContent struct {
	Values   [][]string `json:"values"`
	Editable [][]bool   `json:"editable"`
}

// CellEditable reports whether the cell at (row, col) may be edited.
// Anything outside the mask's bounds counts as locked.
func (c SheetContent) CellEditable(row, col int) bool {
	if row < 0 || row >= len(c.Editable) {
		return false
	}
	if col < 0 || col >= len(c.Editable[row]) {
		return false
	}
	return c.Editable[row][col]
}
