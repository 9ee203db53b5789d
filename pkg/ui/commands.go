package ui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sheetdesk/sheetdesk/pkg/api"
	"github.com/sheetdesk/sheetdesk/pkg/export"
)

// The commands below run on the bubbletea command pool. Each one performs a
// single request and reports back as a typed message; the model never blocks.

func loadCompanies(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		companies, err := client.Companies(context.Background())
		if err != nil {
			slog.Error("load companies", "err", err)
			return errMsg{op: opLoadCompanies, err: err}
		}
		return companiesMsg(companies)
	}
}

func loadSheets(client *api.Client, companyID string) tea.Cmd {
	return func() tea.Msg {
		sheets, err := client.Sheets(context.Background(), companyID)
		if err != nil {
			slog.Error("load sheets", "company", companyID, "err", err)
			return errMsg{op: opLoadSheets, err: err}
		}
		return sheetsMsg(sheets)
	}
}

func loadSheet(client *api.Client, companyID, sheetName string, gen uint64) tea.Cmd {
	return func() tea.Msg {
		content, err := client.Sheet(context.Background(), companyID, sheetName)
		if err != nil {
			slog.Error("load sheet", "company", companyID, "sheet", sheetName, "err", err)
			return errMsg{op: opLoadSheet, err: err}
		}
		return sheetMsg{gen: gen, content: content}
	}
}

func insertRow(client *api.Client, companyID, sheetName string, rowIndex int, gen uint64) tea.Cmd {
	return func() tea.Msg {
		content, err := client.InsertRow(context.Background(), companyID, sheetName, rowIndex)
		if err != nil {
			slog.Error("insert row", "sheet", sheetName, "row", rowIndex, "err", err)
			return errMsg{op: opInsertRow, err: err}
		}
		return insertedMsg{gen: gen, row: rowIndex, content: content}
	}
}

func saveSheet(client *api.Client, companyID, sheetName string, content api.SheetContent) tea.Cmd {
	return func() tea.Msg {
		if err := client.Update(context.Background(), companyID, sheetName, content); err != nil {
			slog.Error("save sheet", "sheet", sheetName, "err", err)
			return errMsg{op: opSave, err: err}
		}
		return savedMsg{}
	}
}

func cloneSheet(client *api.Client, companyID, source, newName string) tea.Cmd {
	return func() tea.Msg {
		if err := client.Clone(context.Background(), companyID, source, newName); err != nil {
			slog.Error("clone sheet", "source", source, "new", newName, "err", err)
			return errMsg{op: opClone, err: err}
		}
		return clonedMsg{name: newName}
	}
}

func exportSheet(path, sheetName string, content api.SheetContent) tea.Cmd {
	return func() tea.Msg {
		if err := export.WriteXLSX(path, sheetName, content); err != nil {
			slog.Error("export sheet", "path", path, "err", err)
			return errMsg{op: opExport, err: err}
		}
		return exportedMsg{path: path}
	}
}
