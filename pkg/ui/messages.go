package ui

import "github.com/sheetdesk/sheetdesk/pkg/api"

// operation tags an async request so failures can be routed: load failures
// only touch status text, mutation failures raise a blocking modal.
type operation int

const (
	opLoadCompanies operation = iota
	opLoadSheets
	opLoadSheet
	opInsertRow
	opSave
	opClone
	opExport
)

type companiesMsg []api.Company

type sheetsMsg []api.SheetDescriptor

// sheetMsg carries the fetch generation it was issued under; responses from
// a navigation the user has since left are discarded.
type sheetMsg struct {
	gen     uint64
	content api.SheetContent
}

type insertedMsg struct {
	gen     uint64
	row     int // 0-based index the insert happened below
	content api.SheetContent
}

type savedMsg struct{}

type clonedMsg struct {
	name string
}

type exportedMsg struct {
	path string
}

type errMsg struct {
	op  operation
	err error
}
