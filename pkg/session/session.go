// Package session holds the client-side record of what is currently open:
// the selected company, the selected sheet, and the live (possibly unsaved)
// cell matrices. There is exactly one Session per running program and it is
// passed explicitly to whatever needs it; navigation replaces its content
// wholesale, it is never partially merged.
package session

import "github.com/sheetdesk/sheetdesk/pkg/api"

// Session is the mutable per-run state. All access happens on the UI
// goroutine; the generation counter exists to discard sheet responses that
// complete after the user has already navigated elsewhere, not to guard
// concurrent writers.
type Session struct {
	CompanyID   string
	CompanyName string
	SheetName   string

	Content api.SheetContent
	Dirty   bool

	generation uint64
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// SelectCompany records the company and clears any sheet state. Returns the
// new fetch generation.
func (s *Session) SelectCompany(id, name string) uint64 {
	s.CompanyID = id
	s.CompanyName = name
	s.SheetName = ""
	s.Content = api.SheetContent{}
	s.Dirty = false
	return s.bump()
}

// SelectSheet records the sheet about to be loaded, drops the previous
// sheet's content (unsaved edits included), and invalidates any in-flight
// fetch for it. Returns the new fetch generation.
func (s *Session) SelectSheet(name string) uint64 {
	s.SheetName = name
	s.Content = api.SheetContent{}
	s.Dirty = false
	return s.bump()
}

// Clear drops all selection and content, as when navigating back to the
// company list.
func (s *Session) Clear() {
	s.CompanyID = ""
	s.CompanyName = ""
	s.SheetName = ""
	s.Content = api.SheetContent{}
	s.Dirty = false
	s.bump()
}

// Generation returns the current fetch generation.
func (s *Session) Generation() uint64 {
	return s.generation
}

// Stale reports whether a response tagged with gen belongs to a navigation
// the user has since left.
func (s *Session) Stale(gen uint64) bool {
	return gen != s.generation
}

func (s *Session) bump() uint64 {
	s.generation++
	return s.generation
}

// Replace swaps in freshly fetched content, discarding any unsaved edits.
func (s *Session) Replace(content api.SheetContent) {
	s.Content = content
	s.Dirty = false
}

// SetCell writes text into values[row][col] if the editable mask allows it.
// Returns false (and leaves the matrices untouched) for locked or
// out-of-range cells.
func (s *Session) SetCell(row, col int, text string) bool {
	if row < 0 || row >= len(s.Content.Values) {
		return false
	}
	if col < 0 || col >= len(s.Content.Values[row]) {
		return false
	}
	if !s.Content.CellEditable(row, col) {
		return false
	}
	s.Content.Values[row][col] = text
	s.Dirty = true
	return true
}

// Cell returns the display value at (row, col), or "" when out of range.
func (s *Session) Cell(row, col int) string {
	if row < 0 || row >= len(s.Content.Values) {
		return ""
	}
	if col < 0 || col >= len(s.Content.Values[row]) {
		return ""
	}
	return s.Content.Values[row][col]
}

// Rows returns the number of rows currently loaded.
func (s *Session) Rows() int {
	return len(s.Content.Values)
}

// Cols returns the widest row currently loaded.
func (s *Session) Cols() int {
	max := 0
	for _, row := range s.Content.Values {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// HasCompany reports whether a company is selected.
func (s *Session) HasCompany() bool {
	return s.CompanyID != ""
}

// HasSheet reports whether a sheet is selected.
func (s *Session) HasSheet() bool {
	return s.HasCompany() && s.SheetName != ""
}
