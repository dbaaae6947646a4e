package ui

import (
	"fyne.io/fyne/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"slider-panel/internal/config"
	"slider-panel/internal/host"
)

// Session owns the single-instance invariant: at most one panel window
// exists at a time. It replaces the hidden process-global window reference
// with an object whose lifetime belongs to whoever opens the panel.
type Session struct {
	app    fyne.App
	doc    host.Document
	cfg    *config.Config
	logger *logrus.Logger
	status *StatusView

	panel *Panel

	// OnClosed is invoked after the panel closes, however that happened,
	// so the launcher can reset its show/hide control.
	OnClosed func()
}

// NewSession creates a closed session over the given document and config.
func NewSession(a fyne.App, doc host.Document, cfg *config.Config, logger *logrus.Logger, status *StatusView) *Session {
	return &Session{
		app:    a,
		doc:    doc,
		cfg:    cfg,
		logger: logger,
		status: status,
	}
}

// IsOpen reports whether a panel is currently open.
func (s *Session) IsOpen() bool {
	return s.panel != nil
}

// Open builds and shows the panel. Opening while a panel is already open is
// a no-op; the existing panel must be closed first.
func (s *Session) Open() {
	if s.panel != nil {
		return
	}

	id := uuid.NewString()
	logger := s.logger.WithField("session", id)

	s.panel = NewPanel(s.app, s.doc, s.cfg, logger, s.status)
	s.panel.Window().SetOnClosed(func() {
		// User closed the window directly; clear the reference so a
		// later Open works.
		s.panel = nil
		logger.Info("panel closed")
		s.status.AppendLine("Panel closed.")
		if s.OnClosed != nil {
			s.OnClosed()
		}
	})
	s.panel.Window().Show()

	logger.WithField("rows", s.panel.Rows()).Info("panel opened")
	s.status.AppendLine("Panel opened.")
}

// Close closes the open panel, if any.
func (s *Session) Close() {
	if s.panel == nil {
		return
	}
	s.panel.Window().Close() // SetOnClosed clears s.panel
}

// SetVisible mirrors the host's boolean show/hide control: true opens the
// panel, false closes it.
func (s *Session) SetVisible(show bool) {
	if show {
		s.Open()
		return
	}
	s.Close()
}
