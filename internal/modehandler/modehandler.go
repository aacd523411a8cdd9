// internal/modehandler/modehandler.go
package modehandler

import (
	"github.com/gdamore/tcell/v2"

	"kite/internal/clipboard"
	"kite/internal/cursor"
	"kite/internal/document"
	"kite/internal/event"
	"kite/internal/logger"
	"kite/internal/statusbar"
)

// Mode defines the input states of the editor.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand
)

// Label returns the status-line name of the mode.
func (m Mode) Label() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	}
	return "UNKNOWN"
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Document   *document.Document
	Cursor     *cursor.Coordinator
	StatusBar  *statusbar.StatusBar
	Events     *event.Manager
	Clipboard  *clipboard.Register
	TabWidth   int
	QuitSignal chan<- struct{} // Write-only channel to signal quit
}

// ModeHandler interprets key events per the current mode and dispatches
// editing operations against the document and cursor coordinator.
type ModeHandler struct {
	doc        *document.Document
	cursor     *cursor.Coordinator
	statusBar  *statusbar.StatusBar
	events     *event.Manager
	register   *clipboard.Register
	tabWidth   int
	quitSignal chan<- struct{}

	currentMode Mode
	cmdBuffer   string
}

// New creates a ModeHandler starting in Normal mode.
func New(cfg Config) *ModeHandler {
	if cfg.Document == nil || cfg.Cursor == nil || cfg.StatusBar == nil || cfg.Events == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: missing required dependencies in Config")
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	return &ModeHandler{
		doc:         cfg.Document,
		cursor:      cfg.Cursor,
		statusBar:   cfg.StatusBar,
		events:      cfg.Events,
		register:    cfg.Clipboard,
		tabWidth:    cfg.TabWidth,
		quitSignal:  cfg.QuitSignal,
		currentMode: ModeNormal,
	}
}

// HandleKey decides what to do based on the current mode and key event.
// It returns true if the event requires a redraw.
func (mh *ModeHandler) HandleKey(ev *tcell.EventKey) bool {
	// A blocking error message consumes the next keypress as its
	// acknowledgment, whatever the key is.
	if mh.statusBar.HasError() {
		mh.statusBar.ClearError()
		return true
	}

	originalCursor := mh.cursor.Pos()

	var handled bool
	switch mh.currentMode {
	case ModeNormal:
		handled = mh.handleKeyNormal(ev)
	case ModeInsert:
		handled = mh.handleKeyInsert(ev)
	case ModeCommand:
		handled = mh.handleKeyCommand(ev)
	default:
		logger.Warnf("ModeHandler: unknown input mode %v", mh.currentMode)
	}

	if newCursor := mh.cursor.Pos(); handled && newCursor != originalCursor {
		mh.events.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: newCursor})
	}
	return handled
}

// Mode returns the current input mode.
func (mh *ModeHandler) Mode() Mode {
	return mh.currentMode
}

// CommandBuffer returns the accumulated command line, for display.
func (mh *ModeHandler) CommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return mh.cmdBuffer
	}
	return ""
}

// setMode transitions to a new mode and announces it.
func (mh *ModeHandler) setMode(m Mode) {
	if mh.currentMode == m {
		return
	}
	logger.Debugf("ModeHandler: %s -> %s", mh.currentMode.Label(), m.Label())
	mh.currentMode = m
	mh.events.Dispatch(event.TypeModeChanged, event.ModeChangedData{Label: m.Label()})
}
