// internal/modehandler/command_mode.go
package modehandler

import (
	"github.com/gdamore/tcell/v2"

	"kite/internal/event"
	"kite/internal/excmd"
	"kite/internal/logger"
)

// handleKeyCommand accumulates the typed command line and executes or
// aborts it. Command mode always returns to Normal afterward.
func (mh *ModeHandler) handleKeyCommand(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		mh.cmdBuffer += string(ev.Rune())
		mh.statusBar.SetTemporaryMessage(":%s", mh.cmdBuffer)
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(mh.cmdBuffer) > 0 {
			mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-1]
			mh.statusBar.SetTemporaryMessage(":%s", mh.cmdBuffer)
		} else {
			mh.setMode(ModeNormal)
			mh.statusBar.ResetTemporaryMessage()
		}
		return true

	case tcell.KeyEnter:
		mh.executeCommand()
		mh.setMode(ModeNormal)
		return true

	case tcell.KeyEscape:
		mh.cmdBuffer = ""
		mh.setMode(ModeNormal)
		mh.statusBar.ResetTemporaryMessage()
		return true
	}
	return false
}

// executeCommand parses and runs the accumulated command line. Errors
// surface as a blocking status-line message.
func (mh *ModeHandler) executeCommand() {
	cmdStr := mh.cmdBuffer
	mh.cmdBuffer = ""
	mh.statusBar.ResetTemporaryMessage()

	if cmdStr == "" {
		return
	}

	cmd, err := excmd.Parse(cmdStr)
	if err != nil {
		mh.statusBar.SetError("%v", err)
		return
	}

	logger.Debugf("ModeHandler: executing ':%s'", cmdStr)
	quit, err := cmd.Run(mh.doc)
	if err != nil {
		mh.statusBar.SetError("%v", err)
		return
	}

	if cmd.Kind == excmd.Save || cmd.Kind == excmd.SaveQuit {
		mh.events.Dispatch(event.TypeDocumentSaved, event.DocumentSavedData{FilePath: mh.doc.Path()})
		mh.statusBar.SetTemporaryMessage("\"%s\" written", mh.doc.Path())
	}

	if quit {
		close(mh.quitSignal)
	}
}
