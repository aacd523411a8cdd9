// internal/modehandler/insert.go
package modehandler

import (
	"github.com/gdamore/tcell/v2"

	"kite/internal/event"
	"kite/internal/history"
	"kite/internal/pairing"
	"kite/internal/types"
)

// handleKeyInsert handles character-level editing. Every handled keystroke
// triggers a full redraw.
func (mh *ModeHandler) handleKeyInsert(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		mh.setMode(ModeNormal)
		return true
	case tcell.KeyEnter:
		mh.processEnter()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		mh.processBackspace()
	case tcell.KeyTab:
		mh.processTab()
	case tcell.KeyRune:
		mh.processRune(ev.Rune())
	default:
		return false
	}
	mh.events.Dispatch(event.TypeDocumentModified, event.DocumentModifiedData{})
	return true
}

// processRune inserts a printable character, consulting the pairing policy
// for auto-close and closer skip-over.
func (mh *ModeHandler) processRune(c rune) {
	pos := mh.cursor.Pos()
	line, ok := mh.doc.Line(pos.Row)
	if !ok {
		return
	}

	// Typing a closer that already sits under the cursor just moves over
	// it without inserting a second one.
	if _, isCloser := pairing.Openeable(c); isCloser && pos.Col < len(line) && line[pos.Col] == c {
		mh.cursor.Set(types.Position{Row: pos.Row, Col: pos.Col + 1})
		return
	}

	mh.doc.InsertChar(pos.Row, pos.Col, c, history.Do)
	if closer, ok := pairing.Closeable(c); ok {
		mh.doc.InsertChar(pos.Row, pos.Col+1, closer, history.Do)
	}
	mh.cursor.Set(types.Position{Row: pos.Row, Col: pos.Col + 1})
}

// processBackspace deletes left of the cursor: at column 0 it merges the
// current line into the previous one; an adjacent matching pair is removed
// atomically; otherwise a single character goes.
func (mh *ModeHandler) processBackspace() {
	pos := mh.cursor.Pos()
	line, ok := mh.doc.Line(pos.Row)
	if !ok {
		return
	}

	if pos.Col == 0 {
		// Row 0 is the viewport top, not necessarily the first document
		// line: a merge never crosses the scroll boundary.
		if pos.Row == 0 {
			return
		}
		prev, ok := mh.doc.Line(pos.Row - 1)
		if !ok {
			return
		}
		prevLen := len(prev)
		joined := make([]rune, 0, prevLen+len(line))
		joined = append(joined, prev...)
		joined = append(joined, line...)
		mh.doc.SetLine(pos.Row-1, joined, history.Do)
		mh.doc.DeleteLine(pos.Row, history.Do)
		mh.cursor.Set(types.Position{Row: pos.Row - 1, Col: prevLen})
		return
	}

	left := line[pos.Col-1]
	if pos.Col < len(line) && pairing.IsPair(left, line[pos.Col]) {
		// Remove both sides of the pair together, right first so the
		// left index stays valid.
		mh.doc.DeleteChar(pos.Row, pos.Col, history.Do)
		mh.doc.DeleteChar(pos.Row, pos.Col-1, history.Do)
	} else {
		mh.doc.DeleteChar(pos.Row, pos.Col-1, history.Do)
	}
	mh.cursor.Set(types.Position{Row: pos.Row, Col: pos.Col - 1})
}

// processEnter splits the current line at the cursor. The continuation line
// inherits the first half's leading whitespace; a flanking brace pair opens
// an extra indented blank line with the closer on its own line below.
func (mh *ModeHandler) processEnter() {
	pos := mh.cursor.Pos()
	line, ok := mh.doc.Line(pos.Row)
	if !ok {
		return
	}

	col := pos.Col
	if col > len(line) {
		col = len(line)
	}
	first := append([]rune{}, line[:col]...)
	second := append([]rune{}, line[col:]...)
	indent := leadingWhitespace(first)

	mh.doc.SetLine(pos.Row, first, history.Do)

	if len(first) > 0 && len(second) > 0 && pairing.IsBracePair(first[len(first)-1], second[0]) {
		block := make([]rune, 0, len(indent)+mh.tabWidth)
		block = append(block, indent...)
		for i := 0; i < mh.tabWidth; i++ {
			block = append(block, ' ')
		}
		mh.doc.InsertLine(pos.Row+1, block, history.Do)
		mh.doc.InsertLine(pos.Row+2, append(append([]rune{}, indent...), second...), history.Do)
		mh.cursor.Set(types.Position{Row: pos.Row + 1, Col: len(block)})
		return
	}

	mh.doc.InsertLine(pos.Row+1, append(append([]rune{}, indent...), second...), history.Do)
	mh.cursor.Set(types.Position{Row: pos.Row + 1, Col: len(indent)})
}

// processTab inserts spaces one at a time until the cursor column reaches
// the next tab stop, so each space is independently undoable.
func (mh *ModeHandler) processTab() {
	pos := mh.cursor.Pos()
	for i := 0; i < mh.tabWidth; i++ {
		col := mh.cursor.Pos().Col
		if col%mh.tabWidth == 0 && i != 0 {
			break
		}
		mh.doc.InsertChar(pos.Row, col, ' ', history.Do)
		mh.cursor.Set(types.Position{Row: pos.Row, Col: col + 1})
	}
}

func leadingWhitespace(line []rune) []rune {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return append([]rune{}, line[:i]...)
}
