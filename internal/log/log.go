// Package log sets up structured logging for femto. The TUI owns stdout, so
// logs only ever go to a file, and only when debugging is enabled via
// --debug or FEMTO_DEBUG.
package log

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/femto/internal/config"
)

// Setup builds the application logger and installs it as slog's default.
// The returned cleanup function closes the log file.
func Setup(cfg *config.Config) (*slog.Logger, func(), error) {
	if !cfg.Debug {
		logger := Nop()
		slog.SetDefault(logger)
		return logger, func() {}, nil
	}

	f, err := tea.LogToFile(cfg.LogFile, "femto")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	logger.Info("logging started", "path", cfg.LogFile)

	return logger, func() { _ = f.Close() }, nil
}

// Nop returns a logger that discards everything
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
