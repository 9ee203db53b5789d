// mock-sheets is a standalone in-memory sheet backend for developing and
// demoing sheetdesk without real spreadsheet storage. It implements the same
// six endpoints as the production service: cells whose value starts with "="
// count as formulas and are locked, updates only land on editable cells, and
// clone copies a sheet then blanks its plain numbers while keeping labels
// and formulas.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
)

type company struct {
	CompanyID   string `json:"CompanyId"`
	CompanyName string `json:"CompanyName"`
}

type sheet struct {
	Name   string     `json:"name"`
	Values [][]string `json:"values"`
}

// editable derives the mask: formula cells are locked, everything else is
// editable.
func (s *sheet) editable() [][]bool {
	mask := make([][]bool, len(s.Values))
	for r, row := range s.Values {
		mask[r] = make([]bool, len(row))
		for c, val := range row {
			mask[r][c] = !strings.HasPrefix(val, "=")
		}
	}
	return mask
}

type fixture struct {
	Companies []company           `json:"companies"`
	Sheets    map[string][]*sheet `json:"sheets"` // company id -> ordered sheets
}

type store struct {
	mu        sync.Mutex
	companies []company
	sheets    map[string][]*sheet
}

func newStore(fx fixture) *store {
	return &store{companies: fx.Companies, sheets: fx.Sheets}
}

func (st *store) findSheet(companyID, name string) *sheet {
	for _, s := range st.sheets[companyID] {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func (st *store) hasCompany(id string) bool {
	for _, c := range st.companies {
		if c.CompanyID == id {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}

func (st *store) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /companies", st.handleCompanies)
	mux.HandleFunc("GET /company/{id}/sheets", st.handleSheets)
	mux.HandleFunc("GET /sheet/{id}", st.handleSheet)
	mux.HandleFunc("POST /sheet/{id}/insert-row", st.handleInsertRow)
	mux.HandleFunc("POST /sheet/{id}/update", st.handleUpdate)
	mux.HandleFunc("POST /sheet/{id}/clone", st.handleClone)
	return mux
}

func (st *store) handleCompanies(w http.ResponseWriter, r *http.Request) {
	st.mu.Lock()
	defer st.mu.Unlock()
	writeJSON(w, http.StatusOK, st.companies)
}

func (st *store) handleSheets(w http.ResponseWriter, r *http.Request) {
	st.mu.Lock()
	defer st.mu.Unlock()
	id := r.PathValue("id")
	if !st.hasCompany(id) {
		writeError(w, http.StatusNotFound, "Company not found")
		return
	}
	out := make([]map[string]string, 0, len(st.sheets[id]))
	for _, s := range st.sheets[id] {
		out = append(out, map[string]string{"sheetName": s.Name})
	}
	writeJSON(w, http.StatusOK, out)
}

func (st *store) handleSheet(w http.ResponseWriter, r *http.Request) {
	st.mu.Lock()
	defer st.mu.Unlock()
	id := r.PathValue("id")
	name := r.URL.Query().Get("sheet")
	if name == "" {
		writeError(w, http.StatusBadRequest, "sheet parameter is required")
		return
	}
	if !st.hasCompany(id) {
		writeError(w, http.StatusNotFound, "Company not found")
		return
	}
	s := st.findSheet(id, name)
	if s == nil {
		writeError(w, http.StatusNotFound, "Sheet %q not found", name)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"values":   s.Values,
		"editable": s.editable(),
	})
}

func (st *store) handleInsertRow(w http.ResponseWriter, r *http.Request) {
	st.mu.Lock()
	defer st.mu.Unlock()
	id := r.PathValue("id")

	var req struct {
		Sheet    string `json:"sheet"`
		RowIndex int    `json:"row_index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}
	s := st.findSheet(id, req.Sheet)
	if s == nil {
		writeError(w, http.StatusNotFound, "Sheet %q not found", req.Sheet)
		return
	}
	if req.RowIndex < 0 || req.RowIndex >= len(s.Values) {
		writeError(w, http.StatusBadRequest, "row_index %d out of range", req.RowIndex)
		return
	}

	width := len(s.Values[req.RowIndex])
	blank := make([]string, width)
	at := req.RowIndex + 1
	rows := make([][]string, 0, len(s.Values)+1)
	rows = append(rows, s.Values[:at]...)
	rows = append(rows, blank)
	rows = append(rows, s.Values[at:]...)
	s.Values = rows

	writeJSON(w, http.StatusOK, map[string]any{
		"values":   s.Values,
		"editable": s.editable(),
	})
}

func (st *store) handleUpdate(w http.ResponseWriter, r *http.Request) {
	st.mu.Lock()
	defer st.mu.Unlock()
	id := r.PathValue("id")
	name := r.URL.Query().Get("sheet")
	if name == "" {
		writeError(w, http.StatusBadRequest, "sheet parameter is required")
		return
	}

	var req struct {
		Values   [][]string `json:"values"`
		Editable [][]bool   `json:"editable"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}
	s := st.findSheet(id, name)
	if s == nil {
		writeError(w, http.StatusNotFound, "Sheet %q not found", name)
		return
	}

	// Merge only into editable cells; formulas stay untouched no matter
	// what the client sent.
	mask := s.editable()
	for r2 := 0; r2 < len(s.Values) && r2 < len(req.Values); r2++ {
		for c := 0; c < len(s.Values[r2]) && c < len(req.Values[r2]); c++ {
			if mask[r2][c] {
				s.Values[r2][c] = req.Values[r2][c]
			}
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "sheet": name})
}

func (st *store) handleClone(w http.ResponseWriter, r *http.Request) {
	st.mu.Lock()
	defer st.mu.Unlock()
	id := r.PathValue("id")

	var req struct {
		SourceSheet string `json:"source_sheet"`
		NewSheet    string `json:"new_sheet"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}
	if req.SourceSheet == "" || req.NewSheet == "" {
		writeError(w, http.StatusBadRequest, "source_sheet and new_sheet are required")
		return
	}
	src := st.findSheet(id, req.SourceSheet)
	if src == nil {
		writeError(w, http.StatusNotFound, "Source sheet %q not found", req.SourceSheet)
		return
	}
	if st.findSheet(id, req.NewSheet) != nil {
		writeError(w, http.StatusBadRequest, "Cannot create sheet %q: already exists", req.NewSheet)
		return
	}

	clone := &sheet{Name: req.NewSheet, Values: cleanCopy(src.Values)}
	st.sheets[id] = append(st.sheets[id], clone)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"company":      id,
		"source_sheet": req.SourceSheet,
		"new_sheet":    req.NewSheet,
	})
}

// cleanCopy copies the matrix, keeping formulas and labels but blanking any
// cell that parses as a number. This mirrors the month-template workflow:
// headings and formulas carry over, last month's figures do not.
func cleanCopy(values [][]string) [][]string {
	out := make([][]string, len(values))
	for r, row := range values {
		out[r] = make([]string, len(row))
		for c, val := range row {
			if strings.HasPrefix(val, "=") {
				out[r][c] = val
				continue
			}
			trimmed := strings.TrimSpace(val)
			if trimmed == "" {
				continue
			}
			if _, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err == nil {
				continue
			}
			out[r][c] = val
		}
	}
	return out
}

func defaultFixture() fixture {
	return fixture{
		Companies: []company{
			{CompanyID: "1", CompanyName: "Acme"},
			{CompanyID: "2", CompanyName: "Beta Traders"},
		},
		Sheets: map[string][]*sheet{
			"1": {
				{
					Name: "APR 25",
					Values: [][]string{
						{"Item", "Qty", "Rate", "Total"},
						{"Widgets", "10", "4.50", "=B2*C2"},
						{"Gadgets", "3", "12.00", "=B3*C3"},
					},
				},
				{
					Name: "MAY 25",
					Values: [][]string{
						{"Item", "Qty", "Rate", "Total"},
						{"Widgets", "", "", "=B2*C2"},
					},
				},
			},
			"2": {
				{
					Name: "APR 25",
					Values: [][]string{
						{"Account", "Amount"},
						{"Sales", "1,200"},
					},
				},
			},
		},
	}
}

func loadFixture(path string) (fixture, error) {
	if path == "" {
		path = os.Getenv("MOCK_SHEETS_FILE")
	}
	if path == "" {
		return defaultFixture(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fixture{}, err
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return fixture{}, err
	}
	return fx, nil
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	fixturePath := flag.String("fixture", "", "JSON fixture file (default: built-in seed)")
	flag.Parse()

	fx, err := loadFixture(*fixturePath)
	if err != nil {
		log.Fatalf("loading fixture: %v", err)
	}

	st := newStore(fx)
	log.Printf("mock-sheets listening on %s", *addr)
	if err := http.ListenAndServe(*addr, st.handler()); err != nil {
		log.Fatal(err)
	}
}
