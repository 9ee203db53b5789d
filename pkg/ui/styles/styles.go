package styles

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	Item = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	Selected = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	Status = lipgloss.NewStyle().
		Foreground(lipgloss.Color("14"))

	StatusError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	Tab = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)

	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	GridHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("237"))

	CellCursor = lipgloss.NewStyle().
			Background(lipgloss.Color("4")).
			Foreground(lipgloss.Color("15"))

	CellLocked = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	Modal = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 3).
		Align(lipgloss.Center)

	Prompt = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)
)
