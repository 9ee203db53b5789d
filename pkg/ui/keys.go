package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PrevTab   key.Binding
	NextTab   key.Binding
	Edit      key.Binding
	InsertRow key.Binding
	Save      key.Binding
	Clone     key.Binding
	Reload    key.Binding
	Yank      key.Binding
	Export    key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PrevTab:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev tab")),
		NextTab:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next tab")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit cell")),
		InsertRow: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "insert row below")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Clone:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new sheet from template")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload sheet")),
		Yank:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy cell")),
		Export:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export xlsx")),
		Back:      key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "back")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap for the detail screen footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.InsertRow, k.Save, k.Clone, k.Back, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PrevTab, k.NextTab, k.Edit, k.InsertRow},
		{k.Save, k.Clone, k.Reload, k.Yank},
		{k.Export, k.Back, k.Quit},
	}
}
