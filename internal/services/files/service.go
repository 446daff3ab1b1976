// Package files reads and writes documents as newline-terminated lines
package files

import (
	"io/fs"
	"log/slog"
	"strings"

	"github.com/spf13/afero"

	"github.com/riordanpawley/femto/internal/domain"
)

const defaultPerm fs.FileMode = 0o644

// Service reads and writes documents through a filesystem
type Service struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewService creates a file service on top of fsys
func NewService(fsys afero.Fs, logger *slog.Logger) *Service {
	return &Service{
		fs:     fsys,
		logger: logger,
	}
}

// NewOSService creates a file service backed by the real filesystem
func NewOSService(logger *slog.Logger) *Service {
	return NewService(afero.NewOsFs(), logger)
}

// ReadLines reads path and returns its content split into lines
func (s *Service) ReadLines(path string) ([]string, error) {
	if path == "" {
		return nil, &domain.IOError{Op: "open", Err: domain.ErrEmptyPath}
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		s.logger.Debug("read failed", "path", path, "error", err)
		return nil, &domain.IOError{Op: "open", Path: path, Err: err}
	}

	lines := SplitLines(string(data))
	s.logger.Debug("read file", "path", path, "lines", len(lines), "bytes", len(data))
	return lines, nil
}

// WriteLines writes every line followed by a newline to path, creating or
// truncating it. An existing file keeps its permissions.
func (s *Service) WriteLines(path string, lines []string) error {
	if path == "" {
		return &domain.IOError{Op: "save", Err: domain.ErrEmptyPath}
	}

	perm := defaultPerm
	if info, err := s.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := afero.WriteFile(s.fs, path, []byte(JoinLines(lines)), perm); err != nil {
		s.logger.Debug("write failed", "path", path, "error", err)
		return &domain.IOError{Op: "save", Path: path, Err: err}
	}

	s.logger.Debug("wrote file", "path", path, "lines", len(lines))
	return nil
}

// SplitLines breaks file content into lines. Both "\n" and "\r\n" end a
// line and a final terminator does not start an extra empty line. Empty
// content yields a single empty line.
func SplitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// JoinLines renders lines as file content, terminating every line
func JoinLines(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
