package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sheetdesk/sheetdesk/pkg/api"
	"github.com/sheetdesk/sheetdesk/pkg/ui/styles"
)

// displayCompany is the exact row text the directory renders and the filter
// matches against.
func displayCompany(c api.Company) string {
	return fmt.Sprintf("%s – %s", c.CompanyID, c.CompanyName)
}

// filterCompanies returns the companies whose rendered row contains query,
// case-insensitively. An empty query matches everything.
func filterCompanies(companies []api.Company, query string) []api.Company {
	if strings.TrimSpace(query) == "" {
		return companies
	}
	q := strings.ToLower(query)
	var out []api.Company
	for _, c := range companies {
		if strings.Contains(strings.ToLower(displayCompany(c)), q) {
			out = append(out, c)
		}
	}
	return out
}

func (m Model) updateCompanies(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := filterCompanies(m.companies, m.filter.Value())

	switch msg.String() {
	case "up":
		if m.dirCursor > 0 {
			m.dirCursor--
		}
		return m, nil
	case "down":
		if m.dirCursor < len(visible)-1 {
			m.dirCursor++
		}
		return m, nil
	case "enter":
		if m.dirCursor >= 0 && m.dirCursor < len(visible) {
			return m.selectCompany(visible[m.dirCursor])
		}
		return m, nil
	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.dirCursor = 0
			return m, nil
		}
		return m, tea.Quit
	}

	// Everything else feeds the filter; the row filter runs live on every
	// keystroke over the already-fetched list, never the backend.
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if n := len(filterCompanies(m.companies, m.filter.Value())); m.dirCursor >= n {
		m.dirCursor = 0
		m.dirScroll = 0
	}
	return m, cmd
}

func (m Model) viewCompanies() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(" sheetdesk "))
	b.WriteString("\n\n")

	status := m.status.Get(RegionDirectory)
	if m.busy {
		status = m.spin.View() + " " + status
	}
	b.WriteString(styles.Status.Render(" " + status))
	b.WriteString("\n\n")

	b.WriteString(" " + m.filter.View())
	b.WriteString("\n\n")

	visible := filterCompanies(m.companies, m.filter.Value())
	rows := m.height - 10
	if rows < 1 {
		rows = 1
	}

	scroll := m.dirScroll
	if m.dirCursor < scroll {
		scroll = m.dirCursor
	}
	if m.dirCursor >= scroll+rows {
		scroll = m.dirCursor - rows + 1
	}

	for i := scroll; i < len(visible) && i < scroll+rows; i++ {
		line := " " + displayCompany(visible[i])
		if i == m.dirCursor {
			b.WriteString(styles.Selected.Render("> " + displayCompany(visible[i])))
		} else {
			b.WriteString(styles.Item.Render(" " + line))
		}
		b.WriteString("\n")
	}
	if len(visible) == 0 && len(m.companies) > 0 {
		b.WriteString(styles.Dim.Render(" (no matches)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(" ↑/↓ move  enter select  esc clear/quit  ctrl+c quit"))
	return b.String()
}
