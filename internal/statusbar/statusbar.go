// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"kite/internal/types"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault  tcell.Style // Default background/foreground
	StyleModified tcell.Style // Style for the modified indicator
	StyleMessage  tcell.Style // Style for temporary messages
	StyleCommand  tcell.Style // Style for the command-mode input line
	StyleError    tcell.Style // Style for blocking error messages

	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleCommand:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleError:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar renders the status line: mode label, file info, cursor position,
// temporary messages, and blocking error messages that wait for a keypress.
type StatusBar struct {
	config Config

	filePath   string
	cursorPos  types.Position
	isModified bool
	editorMode string

	tempMessage     string
	tempMessageTime time.Time

	errMessage string
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config}
}

// SetFileInfo updates the file path and modified flag shown in the bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.cursorPos = pos
}

// SetEditorMode updates the displayed mode label.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.editorMode = mode
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// SetError displays a highlighted error that blocks further input until any
// key is pressed.
func (sb *StatusBar) SetError(format string, args ...interface{}) {
	sb.errMessage = fmt.Sprintf(format, args...)
}

// ClearError dismisses the blocking error.
func (sb *StatusBar) ClearError() {
	sb.errMessage = ""
}

// HasError reports whether a blocking error is awaiting acknowledgment.
func (sb *StatusBar) HasError() bool {
	return sb.errMessage != ""
}

// getDefaultDisplayText builds the default status line text.
func (sb *StatusBar) getDefaultDisplayText() string {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}

	modeIndicator := ""
	if sb.editorMode != "" {
		modeIndicator = fmt.Sprintf(" -- %s", sb.editorMode)
	}

	cursor := sb.cursorPos
	return fmt.Sprintf("%s%s -- Line: %d, Col: %d%s",
		fPath, modifiedIndicator, cursor.Row+1, cursor.Col+1, modeIndicator)
}

// Draw renders the status bar onto the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string

	switch {
	case sb.errMessage != "":
		text = sb.errMessage + " - press any key to continue"
		style = sb.config.StyleError
	case isTempMsgActive:
		text = sb.tempMessage
		if len(sb.tempMessage) > 0 && sb.tempMessage[0] == ':' {
			style = sb.config.StyleCommand
		} else {
			style = sb.config.StyleMessage
		}
	default:
		text = sb.getDefaultDisplayText()
		style = sb.config.StyleDefault
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	// Draw text using uniseg for visual width calculation.
	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}

		runes := gr.Runes()
		if len(runes) > 0 {
			mainRune := runes[0]
			var combiningRunes []rune
			if len(runes) > 1 {
				combiningRunes = runes[1:]
			}
			screen.SetContent(currentX, y, mainRune, combiningRunes, style)
		}

		currentX += clusterWidth
	}
}
