package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sheetdesk/sheetdesk/pkg/api"
	"github.com/sheetdesk/sheetdesk/pkg/config"
	"github.com/sheetdesk/sheetdesk/pkg/logging"
	"github.com/sheetdesk/sheetdesk/pkg/ui"
)

func main() {
	server := flag.String("server", "", "Backend base URL (overrides config)")
	cloneSource := flag.String("clone-source", "", "Template sheet for clone operations (overrides config)")
	logFile := flag.String("log", "", "Debug log file (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *server != "" {
		cfg.ServerURL = *server
	}
	if *cloneSource != "" {
		cfg.CloneSource = *cloneSource
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	logging.Init(cfg.LogFile)

	client := api.NewClient(cfg.ServerURL)
	p := tea.NewProgram(ui.New(client, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "sheetdesk error: %v\n", err)
		os.Exit(1)
	}
}
