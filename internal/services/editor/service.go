// Package editor owns the document, the editing mode and the status message,
// and routes input to whichever buffer the mode makes active.
package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/riordanpawley/femto/internal/buffer"
	"github.com/riordanpawley/femto/internal/types"
)

// Service holds the editor state
type Service struct {
	doc     *buffer.Document
	mode    Mode
	message *types.Message
	path    string

	store     buffer.Store
	idleLabel string
	logger    *slog.Logger
}

// NewService creates an editor with an empty, untitled document
func NewService(store buffer.Store, idleLabel string, logger *slog.Logger) *Service {
	return &Service{
		doc:       buffer.NewDocument(),
		mode:      Normal{},
		store:     store,
		idleLabel: idleLabel,
		logger:    logger,
	}
}

// Document returns the document being edited
func (s *Service) Document() *buffer.Document {
	return s.doc
}

// Mode returns the current mode
func (s *Service) Mode() Mode {
	return s.mode
}

// IsNormal returns true if in normal mode
func (s *Service) IsNormal() bool {
	_, ok := s.mode.(Normal)
	return ok
}

// Path returns the path of the current document, "" if untitled
func (s *Service) Path() string {
	return s.path
}

// Message returns the pending status message, if any
func (s *Service) Message() *types.Message {
	return s.message
}

// Active returns the buffer that receives motion and deletion keys
func (s *Service) Active() buffer.Editable {
	if p, ok := s.mode.(CommandPrompt); ok {
		return p.Input
	}
	return s.doc
}

// Resize tells the document how much of it fits on screen
func (s *Service) Resize(width, height int) {
	s.doc.Resize(width, height)
}

// DispatchRune inserts r into the active buffer. A newline in a prompt
// commits the command instead.
func (s *Service) DispatchRune(r rune) {
	p, ok := s.mode.(CommandPrompt)
	if !ok {
		s.doc.Insert(r)
		return
	}
	if r == '\n' {
		s.commit(p)
		return
	}
	p.Input.Insert(r)
}

// StartOpen opens the prompt for a path to load
func (s *Service) StartOpen() {
	s.enterPrompt(types.CommandOpen, "")
}

// StartSave opens the prompt for a path to save to, pre-filled with the
// current path
func (s *Service) StartSave() {
	s.enterPrompt(types.CommandSave, s.path)
}

// Cancel leaves any prompt without side effects
func (s *Service) Cancel() {
	if !s.IsNormal() {
		s.logger.Debug("prompt cancelled", "mode", s.mode.String())
	}
	s.mode = Normal{}
}

// Open loads path into the document. On failure the document is unchanged
// and the error becomes the status message.
func (s *Service) Open(path string) error {
	if err := s.doc.Load(s.store, path); err != nil {
		s.logger.Warn("open failed", "path", path, "error", err)
		s.showError(err)
		return err
	}
	s.path = path
	s.logger.Info("opened document", "path", path, "lines", s.doc.LineCount())
	return nil
}

// OpenInitial opens the file named on the command line. A file that does not
// exist yet starts an empty document that will be saved under that name.
func (s *Service) OpenInitial(path string) error {
	err := s.Open(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		s.path = path
		s.showInfo(fmt.Sprintf("new file: %s", path))
		return nil
	}
	return err
}

// Save writes the document to path
func (s *Service) Save(path string) error {
	if err := s.doc.Save(s.store, path); err != nil {
		s.logger.Warn("save failed", "path", path, "error", err)
		s.showError(err)
		return err
	}
	s.path = path
	s.logger.Info("saved document", "path", path, "lines", s.doc.LineCount())
	s.showInfo(fmt.Sprintf("wrote %d lines to %s", s.doc.LineCount(), path))
	return nil
}

// StatusLine returns what the status bar shows on its left-hand side
func (s *Service) StatusLine() types.Status {
	if p, ok := s.mode.(CommandPrompt); ok {
		return types.Status{
			Label:  p.Kind.Label(),
			Text:   p.Input.String(),
			Col:    p.Input.Col(),
			Prompt: true,
		}
	}
	if s.message != nil {
		return types.Status{Text: s.message.Text, Level: s.message.Level}
	}
	return types.Status{Label: s.idleLabel}
}

// ExpireMessage drops the pending message once it has been shown
func (s *Service) ExpireMessage() {
	s.message = nil
}

func (s *Service) enterPrompt(kind types.CommandKind, text string) {
	s.mode = CommandPrompt{Kind: kind, Input: buffer.NewLine(text)}
	s.logger.Debug("prompt opened", "kind", kind.String())
}

// commit leaves the prompt and runs its command on the typed path
func (s *Service) commit(p CommandPrompt) {
	path := p.Input.String()
	s.mode = Normal{}

	// Open and Save report failures through the status message
	switch p.Kind {
	case types.CommandOpen:
		_ = s.Open(path)
	case types.CommandSave:
		_ = s.Save(path)
	}
}

func (s *Service) showError(err error) {
	s.message = &types.Message{Level: types.MessageError, Text: err.Error()}
}

func (s *Service) showInfo(text string) {
	s.message = &types.Message{Level: types.MessageInfo, Text: text}
}
