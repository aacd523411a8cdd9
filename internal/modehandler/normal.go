// internal/modehandler/normal.go
package modehandler

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"kite/internal/event"
	"kite/internal/history"
	"kite/internal/types"
)

// handleKeyNormal handles navigation and mode switches.
func (mh *ModeHandler) handleKeyNormal(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		return mh.cursor.MoveUp()
	case tcell.KeyDown:
		return mh.cursor.MoveDown()
	case tcell.KeyLeft:
		return mh.cursor.MoveLeft()
	case tcell.KeyRight:
		return mh.cursor.MoveRight()
	case tcell.KeyCtrlR:
		return mh.redo()
	case tcell.KeyRune:
		// fall through to rune dispatch below
	default:
		return false
	}

	switch ev.Rune() {
	case 'h':
		return mh.cursor.MoveLeft()
	case 'j':
		return mh.cursor.MoveDown()
	case 'k':
		return mh.cursor.MoveUp()
	case 'l':
		return mh.cursor.MoveRight()

	case 'i':
		mh.setMode(ModeInsert)
		return true

	case ':':
		mh.cmdBuffer = ""
		mh.setMode(ModeCommand)
		mh.statusBar.SetTemporaryMessage(":")
		return true

	case 'u':
		return mh.undo()

	case 'y':
		return mh.yankLine()
	case 'p':
		return mh.pasteLines()
	}
	return false
}

// undo reverses the latest document edit and cursor move together; both
// logs are driven by the same user action.
func (mh *ModeHandler) undo() bool {
	didDoc := mh.doc.Undo()
	didCur := mh.cursor.Undo()
	if !didDoc && !didCur {
		mh.statusBar.SetTemporaryMessage("Already at oldest change")
		return true
	}
	mh.events.Dispatch(event.TypeDocumentModified, event.DocumentModifiedData{})
	return true
}

func (mh *ModeHandler) redo() bool {
	didDoc := mh.doc.Redo()
	didCur := mh.cursor.Redo()
	if !didDoc && !didCur {
		mh.statusBar.SetTemporaryMessage("Already at newest change")
		return true
	}
	mh.events.Dispatch(event.TypeDocumentModified, event.DocumentModifiedData{})
	return true
}

// yankLine copies the current line into the register.
func (mh *ModeHandler) yankLine() bool {
	if mh.register == nil {
		return false
	}
	pos := mh.cursor.Pos()
	line, ok := mh.doc.Line(pos.Row)
	if !ok {
		return false
	}
	if err := mh.register.Copy(string(line)); err != nil {
		mh.statusBar.SetTemporaryMessage("Yank failed: %v", err)
		return true
	}
	mh.statusBar.SetTemporaryMessage("1 line yanked")
	return true
}

// pasteLines inserts the register content as whole lines below the cursor.
func (mh *ModeHandler) pasteLines() bool {
	if mh.register == nil {
		return false
	}
	text, err := mh.register.Paste()
	if err != nil {
		mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
		return true
	}
	if text == "" {
		mh.statusBar.SetTemporaryMessage("Nothing to paste")
		return true
	}

	pos := mh.cursor.Pos()
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		mh.doc.InsertLine(pos.Row+1+i, []rune(l), history.Do)
	}
	mh.cursor.Set(types.Position{Row: pos.Row + 1, Col: 0})
	mh.events.Dispatch(event.TypeDocumentModified, event.DocumentModifiedData{})
	return true
}
