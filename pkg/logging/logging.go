// Package logging configures the process-wide slog logger. The TUI owns the
// terminal while running, so console output is suppressed and all logging
// goes to an optional rotating file.
package logging

import (
	"io"
	"log/slog"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Init sets the default slog logger. With an empty path logging is a no-op.
func Init(path string) {
	var w io.Writer = io.Discard
	if path != "" {
		w = &lj.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, nil)))
}
