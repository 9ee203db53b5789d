package session

import (
	"reflect"
	"testing"

	"github.com/sheetdesk/sheetdesk/pkg/api"
)

func sampleContent() api.SheetContent {
	return api.SheetContent{
		Values:   [][]string{{"10", "20"}},
		Editable: [][]bool{{true, false}},
	}
}

func TestSetCellHonorsMask(t *testing.T) {
	s := New()
	s.SelectCompany("1", "Acme")
	s.SelectSheet("APR 25")
	s.Replace(sampleContent())

	if !s.SetCell(0, 0, "99") {
		t.Fatal("editable cell rejected")
	}
	if s.Cell(0, 0) != "99" {
		t.Errorf("cell = %q, want 99", s.Cell(0, 0))
	}
	if !s.Dirty {
		t.Error("edit should mark the session dirty")
	}

	if s.SetCell(0, 1, "nope") {
		t.Error("locked cell accepted an edit")
	}
	if s.Cell(0, 1) != "20" {
		t.Errorf("locked cell changed to %q", s.Cell(0, 1))
	}
}

func TestSetCellOutOfRange(t *testing.T) {
	s := New()
	s.Replace(sampleContent())
	if s.SetCell(5, 0, "x") || s.SetCell(0, 9, "x") || s.SetCell(-1, 0, "x") {
		t.Error("out-of-range edits must be rejected")
	}
}

func TestReplaceDiscardsEdits(t *testing.T) {
	s := New()
	s.Replace(sampleContent())
	s.SetCell(0, 0, "edited")

	fresh := api.SheetContent{
		Values:   [][]string{{"1"}, {"2"}},
		Editable: [][]bool{{true}, {true}},
	}
	s.Replace(fresh)
	if s.Dirty {
		t.Error("replace must clear the dirty flag")
	}
	if !reflect.DeepEqual(s.Content.Values, fresh.Values) {
		t.Errorf("content = %v", s.Content.Values)
	}
}

func TestGenerationGuardsStaleFetches(t *testing.T) {
	s := New()
	s.SelectCompany("1", "Acme")
	first := s.SelectSheet("APR 25")
	second := s.SelectSheet("MAY 25")

	if !s.Stale(first) {
		t.Error("response for the previous sheet must be stale")
	}
	if s.Stale(second) {
		t.Error("response for the current sheet must not be stale")
	}
}

func TestSelectSheetDropsPreviousContent(t *testing.T) {
	s := New()
	s.SelectCompany("1", "Acme")
	s.SelectSheet("APR 25")
	s.Replace(sampleContent())
	s.SetCell(0, 0, "99")

	s.SelectSheet("MAY 25")
	if s.Rows() != 0 || s.Dirty {
		t.Error("switching sheets must drop the old content and edits")
	}
}

func TestSelectCompanyResetsSheetState(t *testing.T) {
	s := New()
	s.SelectCompany("1", "Acme")
	s.SelectSheet("APR 25")
	s.Replace(sampleContent())

	s.SelectCompany("2", "Beta")
	if s.SheetName != "" || s.Rows() != 0 || s.Dirty {
		t.Errorf("stale sheet state survived company switch: %+v", s)
	}
	if !s.HasCompany() || s.HasSheet() {
		t.Error("selection flags wrong after company switch")
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.SelectCompany("1", "Acme")
	gen := s.SelectSheet("APR 25")
	s.Clear()
	if s.HasCompany() || s.HasSheet() {
		t.Error("clear should drop the selection")
	}
	if !s.Stale(gen) {
		t.Error("clear must invalidate in-flight fetches")
	}
}

func TestColsWidestRow(t *testing.T) {
	s := New()
	s.Replace(api.SheetContent{Values: [][]string{{"a"}, {"b", "c", "d"}}})
	if s.Cols() != 3 {
		t.Errorf("cols = %d, want 3", s.Cols())
	}
}
