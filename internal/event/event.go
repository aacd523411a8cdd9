// internal/event/event.go
package event

import (
	"kite/internal/types"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeDocumentModified // Fired when document content changes (insert/delete)
	TypeDocumentSaved    // Fired after a successful save
	TypeCursorMoved      // Fired when the cursor position changes
	TypeModeChanged      // Fired when the input mode changes (Normal -> Insert etc.)
	TypeAppQuit          // Fired just before application termination begins
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// DocumentModifiedData contains info about document changes.
type DocumentModifiedData struct{}

// DocumentSavedData contains info about the saved document.
type DocumentSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// ModeChangedData contains the label of the newly active mode.
type ModeChangedData struct {
	Label string
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}
