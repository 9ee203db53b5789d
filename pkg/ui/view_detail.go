package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sheetdesk/sheetdesk/pkg/ui/styles"
)

const (
	minColWidth = 4
	maxColWidth = 24
	rowNumWidth = 4
)

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.sess.Clear()
		m.sheets = nil
		m.scr = screenCompanies
		m.status.Report(RegionDirectory, "Type to search and select a company.")
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		if m.activeTab > 0 {
			return m, m.openTab(m.activeTab - 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		if m.activeTab < len(m.sheets)-1 {
			return m, m.openTab(m.activeTab + 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.cx > 0 {
			m.cx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.cx < m.sess.Cols()-1 {
			m.cx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cy > 0 {
			m.cy--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cy < m.sess.Rows()-1 {
			m.cy++
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.sess.Rows() == 0 {
			return m, nil
		}
		if !m.sess.Content.CellEditable(m.cy, m.cx) {
			m.status.Report(RegionGrid, "Cell is locked.")
			return m, nil
		}
		m.mode = modeEdit
		m.editBuf = m.sess.Cell(m.cy, m.cx)
		return m, nil

	case key.Matches(msg, m.keys.InsertRow):
		if !m.sess.HasSheet() {
			return m, nil
		}
		m.busy = true
		m.status.Report(RegionGrid, "Inserting row...")
		return m, tea.Batch(m.spin.Tick,
			insertRow(m.client, m.sess.CompanyID, m.sess.SheetName, m.cy, m.sess.Generation()))

	case key.Matches(msg, m.keys.Save):
		if !m.sess.HasSheet() {
			return m, nil
		}
		m.busy = true
		m.status.Report(RegionGrid, "Saving changes...")
		return m, tea.Batch(m.spin.Tick,
			saveSheet(m.client, m.sess.CompanyID, m.sess.SheetName, m.sess.Content))

	case key.Matches(msg, m.keys.Clone):
		if !m.sess.HasCompany() {
			return m, nil
		}
		m.mode = modeClone
		m.cloneInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Reload):
		return m, m.openTab(m.activeTab)

	case key.Matches(msg, m.keys.Yank):
		return m.yankCell(), nil

	case key.Matches(msg, m.keys.Export):
		if !m.sess.HasSheet() {
			return m, nil
		}
		m.busy = true
		m.status.Report(RegionGrid, "Exporting...")
		return m, tea.Batch(m.spin.Tick,
			exportSheet(m.exportPath(), m.sess.SheetName, m.sess.Content))

	case key.Matches(msg, m.keys.Help):
		m.helpBar.ShowAll = !m.helpBar.ShowAll
		return m, nil
	}
	return m, nil
}

func (m Model) updateCellEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.sess.SetCell(m.cy, m.cx, m.editBuf)
		m.mode = modeNormal
		m.editBuf = ""
		if m.cy < m.sess.Rows()-1 {
			m.cy++
		}
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.editBuf = ""
		return m, nil
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
		return m, nil
	default:
		// Arbitrary text is accepted, including non-numeric content in
		// numeric-looking columns.
		switch {
		case msg.Type == tea.KeyRunes:
			m.editBuf += string(msg.Runes)
		case msg.String() == " ":
			m.editBuf += " "
		}
		return m, nil
	}
}

func (m Model) updateClonePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.cloneInput.Value())
		if name == "" {
			// No request leaves this client for a blank name.
			m.mode = modeModal
			m.modal = "Enter a name for the new sheet."
			return m, nil
		}
		m.mode = modeNormal
		m.cloneInput.Blur()
		m.busy = true
		m.status.Report(RegionGrid, fmt.Sprintf("Cloning %q into %q...", m.cfg.CloneSource, name))
		return m, tea.Batch(m.spin.Tick,
			cloneSheet(m.client, m.sess.CompanyID, m.cfg.CloneSource, name))
	case "esc":
		// Input is left populated so the user can retry.
		m.mode = modeNormal
		m.cloneInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.cloneInput, cmd = m.cloneInput.Update(msg)
	return m, cmd
}

func (m Model) viewDetail() string {
	var b strings.Builder

	heading := fmt.Sprintf("%s – %s", m.sess.CompanyID, m.sess.CompanyName)
	b.WriteString(styles.Title.Render(" " + heading + " "))
	if m.sess.Dirty {
		b.WriteString(styles.StatusError.Render(" *"))
	}
	b.WriteString("\n")

	b.WriteString(m.viewTabs())
	b.WriteString("\n")

	if s := m.status.Get(RegionSheets); s != "" {
		b.WriteString(styles.Dim.Render(" " + s))
		b.WriteString("\n")
	}

	b.WriteString(m.viewGrid())
	b.WriteString("\n")

	status := m.status.Get(RegionGrid)
	if m.busy {
		status = m.spin.View() + " " + status
	}
	b.WriteString(styles.Status.Render(" " + status))
	b.WriteString("\n")

	if m.mode == modeClone {
		b.WriteString(styles.Prompt.Render(" "+m.cloneInput.View()) +
			styles.Dim.Render(fmt.Sprintf("  (cloned from %q, enter to create, esc to cancel)", m.cfg.CloneSource)))
		b.WriteString("\n")
	}

	b.WriteString(m.helpBar.View(m.keys))

	if m.mode == modeModal {
		modal := styles.Modal.Render(m.modal + "\n\n" + styles.Dim.Render("press any key"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}
	return b.String()
}

func (m Model) viewTabs() string {
	if len(m.sheets) == 0 {
		return styles.Dim.Render(" (no sheets)")
	}
	parts := make([]string, 0, len(m.sheets))
	for i, s := range m.sheets {
		if i == m.activeTab {
			parts = append(parts, styles.TabActive.Render(s.SheetName))
		} else {
			parts = append(parts, styles.Tab.Render(s.SheetName))
		}
	}
	return " " + strings.Join(parts, " ")
}

func (m Model) viewGrid() string {
	rows := m.sess.Rows()
	cols := m.sess.Cols()
	if rows == 0 || cols == 0 {
		return styles.Dim.Render(" (empty sheet)")
	}

	widths := m.colWidths(cols)

	gridHeight := m.height - 9
	if gridHeight < 1 {
		gridHeight = 1
	}

	scrollY := m.scrollY
	if m.cy < scrollY {
		scrollY = m.cy
	}
	if m.cy >= scrollY+gridHeight {
		scrollY = m.cy - gridHeight + 1
	}

	visStart, visEnd := m.visibleColRange(widths)

	var b strings.Builder

	// header: column letters
	b.WriteString(strings.Repeat(" ", rowNumWidth))
	for ci := visStart; ci < visEnd; ci++ {
		cell := fmt.Sprintf(" %-*s ", widths[ci], colName(ci))
		b.WriteString(styles.GridHeader.Render(cell))
	}
	b.WriteString("\n")

	endRow := scrollY + gridHeight
	if endRow > rows {
		endRow = rows
	}
	for ri := scrollY; ri < endRow; ri++ {
		b.WriteString(styles.Dim.Render(fmt.Sprintf("%*d ", rowNumWidth-1, ri+1)))
		for ci := visStart; ci < visEnd; ci++ {
			display := m.sess.Cell(ri, ci)
			editing := m.mode == modeEdit && ri == m.cy && ci == m.cx
			if editing {
				display = m.editBuf + "_"
			}
			cell := fmt.Sprintf(" %s ", pad(display, widths[ci]))

			switch {
			case ri == m.cy && ci == m.cx:
				b.WriteString(styles.CellCursor.Render(cell))
			case !m.sess.Content.CellEditable(ri, ci):
				b.WriteString(styles.CellLocked.Render(cell))
			default:
				b.WriteString(cell)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.Dim.Render(fmt.Sprintf(" [%s%d] %dx%d", colName(m.cx), m.cy+1, rows, cols)))
	return b.String()
}

// colWidths sizes each column to its widest visible content, clamped to
// [minColWidth, maxColWidth]. Only the first 100 rows are sampled.
func (m Model) colWidths(cols int) []int {
	widths := make([]int, cols)
	for i := range widths {
		widths[i] = minColWidth
	}
	sample := m.sess.Rows()
	if sample > 100 {
		sample = 100
	}
	for ri := 0; ri < sample; ri++ {
		for ci := 0; ci < cols; ci++ {
			if w := runewidth.StringWidth(m.sess.Cell(ri, ci)); w > widths[ci] {
				widths[ci] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColWidth {
			widths[i] = maxColWidth
		}
	}
	return widths
}

func (m Model) visibleColRange(widths []int) (int, int) {
	avail := m.width - rowNumWidth - 2
	start := m.scrollX
	if start >= len(widths) {
		start = 0
	}
	if m.cx < start {
		start = m.cx
	}
	used := 0
	end := start
	for end < len(widths) {
		w := widths[end] + 2
		if used+w > avail && end > start {
			break
		}
		used += w
		end++
	}
	// walk the window right until the cursor column fits
	for m.cx >= end && start < m.cx {
		start++
		used = 0
		end = start
		for end < len(widths) {
			w := widths[end] + 2
			if used+w > avail && end > start {
				break
			}
			used += w
			end++
		}
	}
	return start, end
}

// colName converts a 0-based column index to its spreadsheet letter name.
func colName(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}

func pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
