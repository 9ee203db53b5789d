// Package ui implements the sheetdesk terminal interface: a company
// directory screen and a company detail screen (sheet tabs plus an editable
// cell grid), backed by the REST client in pkg/api.
package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sheetdesk/sheetdesk/pkg/api"
	"github.com/sheetdesk/sheetdesk/pkg/config"
	"github.com/sheetdesk/sheetdesk/pkg/session"
)

type screen int

const (
	screenCompanies screen = iota
	screenDetail
)

type mode int

const (
	modeNormal mode = iota
	modeEdit  // typing into a cell
	modeClone // typing the new sheet name
	modeModal // blocking alert, any key dismisses
)

// Model is the bubbletea model for the whole client. Exactly one of the two
// screens is visible at any time.
type Model struct {
	width  int
	height int

	client *api.Client
	sess   *session.Session
	cfg    config.Config

	scr  screen
	mode mode

	// company directory
	companies []api.Company
	filter    textinput.Model
	dirCursor int
	dirScroll int

	// sheet tabs
	sheets    []api.SheetDescriptor
	activeTab int

	// grid
	cx, cy  int
	scrollX int
	scrollY int
	editBuf string

	// clone prompt
	cloneInput textinput.Model

	status  *StatusBar
	modal   string
	busy    bool
	spin    spinner.Model
	keys    keyMap
	helpBar help.Model
}

// New builds the initial model.
func New(client *api.Client, cfg config.Config) Model {
	filter := textinput.New()
	filter.Placeholder = "type to filter"
	filter.Prompt = "/ "
	filter.Focus()

	cloneInput := textinput.New()
	cloneInput.Placeholder = "MAY 25"
	cloneInput.Prompt = "new sheet: "
	cloneInput.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client:     client,
		sess:       session.New(),
		cfg:        cfg,
		scr:        screenCompanies,
		filter:     filter,
		cloneInput: cloneInput,
		status:     NewStatusBar(RegionDirectory, RegionSheets, RegionGrid),
		spin:       sp,
		keys:       defaultKeyMap(),
		helpBar:    help.New(),
		width:      100,
		height:     30,
	}
}

func (m Model) Init() tea.Cmd {
	m.status.Report(RegionDirectory, "Loading companies...")
	return tea.Batch(
		textinput.Blink,
		m.spin.Tick,
		loadCompanies(m.client),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpBar.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case companiesMsg:
		m.busy = false
		m.companies = msg
		m.dirCursor = 0
		m.dirScroll = 0
		m.status.Report(RegionDirectory, "Type to search and select a company.")
		return m, nil

	case sheetsMsg:
		m.busy = false
		m.sheets = msg
		m.activeTab = 0
		if len(msg) == 0 {
			m.status.Report(RegionSheets, "No sheets found.")
			return m, nil
		}
		m.status.Report(RegionSheets, fmt.Sprintf("%d sheets", len(msg)))
		return m, m.openTab(0)

	case sheetMsg:
		if m.sess.Stale(msg.gen) {
			return m, nil
		}
		m.busy = false
		m.sess.Replace(msg.content)
		m.resetCursor()
		m.status.Report(RegionGrid, fmt.Sprintf("Loaded %q.", m.sess.SheetName))
		return m, nil

	case insertedMsg:
		if m.sess.Stale(msg.gen) {
			return m, nil
		}
		m.busy = false
		m.sess.Replace(msg.content)
		m.clampCursor()
		m.status.Report(RegionGrid, fmt.Sprintf("Row inserted below row %d (sheet reloaded).", msg.row+1))
		return m, nil

	case savedMsg:
		m.busy = false
		m.status.Report(RegionGrid, "Saved successfully.")
		return m, nil

	case clonedMsg:
		m.busy = false
		m.cloneInput.SetValue("")
		m.status.Report(RegionSheets, fmt.Sprintf("Created new sheet: %s", msg.name))
		m.status.Report(RegionGrid, "Loading sheets...")
		return m, loadSheets(m.client, m.sess.CompanyID)

	case exportedMsg:
		m.busy = false
		m.status.Report(RegionGrid, fmt.Sprintf("Exported to %s", msg.path))
		return m, nil

	case errMsg:
		return m.handleError(msg), nil
	}

	return m, nil
}

func (m Model) handleError(msg errMsg) Model {
	m.busy = false
	switch msg.op {
	case opLoadCompanies:
		m.status.Report(RegionDirectory, "Failed to load companies: "+msg.err.Error())
	case opLoadSheets:
		m.status.Report(RegionSheets, "Failed to load sheets: "+msg.err.Error())
	case opLoadSheet:
		m.status.Report(RegionGrid, "Failed to load sheet: "+msg.err.Error())
	case opInsertRow:
		m.modal = "Insert failed: " + msg.err.Error()
		m.mode = modeModal
		m.status.Report(RegionGrid, "Insert failed.")
	case opSave:
		m.modal = "Save failed: " + msg.err.Error()
		m.mode = modeModal
		m.status.Report(RegionGrid, "Save failed.")
	case opClone:
		m.modal = "Clone failed: " + msg.err.Error()
		m.mode = modeModal
		m.status.Report(RegionGrid, "Clone failed.")
	case opExport:
		m.status.Report(RegionGrid, "Export failed: "+msg.err.Error())
	}
	return m
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.mode == modeModal {
		// Blocking alert: any key dismisses, state was left untouched.
		m.mode = modeNormal
		m.modal = ""
		return m, nil
	}

	switch m.scr {
	case screenCompanies:
		return m.updateCompanies(msg)
	case screenDetail:
		switch m.mode {
		case modeEdit:
			return m.updateCellEdit(msg)
		case modeClone:
			return m.updateClonePrompt(msg)
		default:
			return m.updateDetail(msg)
		}
	}
	return m, nil
}

// selectCompany records the selection, switches screens, and kicks off the
// sheet list load. Everything from the previous company is dropped.
func (m Model) selectCompany(c api.Company) (tea.Model, tea.Cmd) {
	m.sess.SelectCompany(c.CompanyID, c.CompanyName)
	m.sheets = nil
	m.activeTab = 0
	m.scr = screenDetail
	m.mode = modeNormal
	m.resetCursor()
	m.status.Report(RegionSheets, "Loading sheets...")
	m.status.Report(RegionGrid, "")
	m.busy = true
	return m, tea.Batch(m.spin.Tick, loadSheets(m.client, m.sess.CompanyID))
}

// openTab activates the tab at idx and loads its sheet, discarding any
// unsaved edits without warning.
func (m *Model) openTab(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.sheets) {
		return nil
	}
	if !m.sess.HasCompany() {
		return nil
	}
	m.activeTab = idx
	name := m.sheets[idx].SheetName
	gen := m.sess.SelectSheet(name)
	m.resetCursor()
	m.busy = true
	m.status.Report(RegionGrid, fmt.Sprintf("Loading %q...", name))
	return tea.Batch(m.spin.Tick, loadSheet(m.client, m.sess.CompanyID, name, gen))
}

func (m *Model) resetCursor() {
	m.cx, m.cy = 0, 0
	m.scrollX, m.scrollY = 0, 0
	m.editBuf = ""
}

func (m *Model) clampCursor() {
	if rows := m.sess.Rows(); m.cy >= rows && rows > 0 {
		m.cy = rows - 1
	}
	if cols := m.sess.Cols(); m.cx >= cols && cols > 0 {
		m.cx = cols - 1
	}
}

// yankCell copies the current cell value to the system clipboard.
func (m Model) yankCell() Model {
	val := m.sess.Cell(m.cy, m.cx)
	if err := clipboard.WriteAll(val); err != nil {
		m.status.Report(RegionGrid, "Copy failed: "+err.Error())
		return m
	}
	m.status.Report(RegionGrid, fmt.Sprintf("Copied %q", val))
	return m
}

func (m Model) exportPath() string {
	name := strings.ReplaceAll(m.sess.SheetName, " ", "_")
	return filepath.Join(".", fmt.Sprintf("%s_%s.xlsx", m.sess.CompanyID, name))
}

func (m Model) View() string {
	switch m.scr {
	case screenDetail:
		return m.viewDetail()
	default:
		return m.viewCompanies()
	}
}
