// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"

	"kite/internal/document"
	"kite/internal/types"
)

// DrawDocument draws the visible window of the document, one column per
// rune, into the region above the status bar.
func DrawDocument(t *TUI, doc *document.Document, viewHeight int) {
	width, _ := t.Size()
	if width <= 0 || viewHeight <= 0 {
		return
	}

	style := tcell.StyleDefault
	for y, line := range doc.Visible(viewHeight) {
		for x, r := range line {
			if x >= width {
				break
			}
			t.screen.SetContent(x, y, r, nil, style)
		}
	}
}

// DrawCursor places the hardware cursor at the coordinator's screen
// position.
func DrawCursor(t *TUI, pos types.Position) {
	t.SetCursor(pos.Col, pos.Row)
}
