// Package cursor coordinates the screen cursor with the document viewport.
package cursor

import (
	"kite/internal/document"
	"kite/internal/history"
	"kite/internal/types"
)

// Move is one cursor-affecting action, recorded as the screen coordinates
// before and after.
type Move struct {
	Old types.Position
	New types.Position
}

// Coordinator owns the screen cursor position as truth and translates
// between screen and document coordinates. Vertical moves at the viewport
// edges drive the document's scroll steppers; when a scroll occurs the
// screen cursor is compensated one row in the opposite direction first, so
// the document-relative position does not jump.
//
// Movement that would leave the document's bounds is silently ignored.
type Coordinator struct {
	doc        *document.Document
	pos        types.Position
	stickyCol  int // pre-move column remembered across short lines, -1 when unset
	viewHeight int

	hist *history.History[Move]
}

// New creates a coordinator at the origin.
func New(doc *document.Document, maxHistory int) *Coordinator {
	return &Coordinator{
		doc:       doc,
		stickyCol: -1,
		hist:      history.New[Move](maxHistory),
	}
}

// Pos returns the current screen cursor position.
func (c *Coordinator) Pos() types.Position { return c.pos }

// SetViewHeight caches the viewport height (terminal rows minus the status
// bar) used for bottom-edge detection.
func (c *Coordinator) SetViewHeight(h int) {
	if h < 1 {
		h = 1
	}
	c.viewHeight = h
	if c.pos.Row >= h {
		c.pos.Row = h - 1
	}
}

// ViewHeight returns the cached viewport height.
func (c *Coordinator) ViewHeight() int { return c.viewHeight }

// Set places the cursor at p, recording the move for cursor undo/redo.
func (c *Coordinator) Set(p types.Position) {
	if p == c.pos {
		return
	}
	old := c.pos
	c.pos = p
	c.hist.Update(Move{Old: old, New: p}, history.Do)
}

// MoveLeft moves one column left. No-op at the beginning of a line.
func (c *Coordinator) MoveLeft() bool {
	if c.pos.Col <= 0 {
		return false
	}
	if _, ok := c.doc.Line(c.pos.Row); !ok {
		return false
	}
	c.Set(types.Position{Row: c.pos.Row, Col: c.pos.Col - 1})
	return true
}

// MoveRight moves one column right. The cursor may rest one past the last
// character (the end-of-line insert position) but no further.
func (c *Coordinator) MoveRight() bool {
	line, ok := c.doc.Line(c.pos.Row)
	if !ok {
		return false
	}
	if c.pos.Col+1 > len(line) {
		return false
	}
	c.Set(types.Position{Row: c.pos.Row, Col: c.pos.Col + 1})
	return true
}

// MoveUp moves one row up, scrolling the document when the cursor is at the
// top screen edge. Reports whether the cursor or viewport changed.
func (c *Coordinator) MoveUp() bool {
	row := c.pos.Row
	if row <= 0 {
		if !c.doc.MoveUp() {
			return false
		}
		// Compensate for the scroll: the same document line is now one
		// screen row lower.
		row++
	}
	target := row - 1
	line, ok := c.doc.Line(target)
	if !ok {
		return false
	}
	c.Set(types.Position{Row: target, Col: c.landingCol(line)})
	return true
}

// MoveDown moves one row down, scrolling the document when the cursor is at
// the bottom screen edge. Reports whether the cursor or viewport changed.
func (c *Coordinator) MoveDown() bool {
	row := c.pos.Row
	if c.viewHeight > 0 && row >= c.viewHeight-1 {
		if c.doc.MoveDown(row) {
			row--
		}
	}
	target := row + 1
	line, ok := c.doc.Line(target)
	if !ok {
		return false
	}
	c.Set(types.Position{Row: target, Col: c.landingCol(line)})
	return true
}

// landingCol resolves the column for a vertical move onto line. Landing on a
// shorter or empty line remembers the pre-move column; landing on a line
// long enough restores and clears it.
func (c *Coordinator) landingCol(line []rune) int {
	n := len(line)
	col := c.pos.Col
	switch {
	case col < n:
		if c.stickyCol >= 0 {
			if c.stickyCol < n {
				col = c.stickyCol
			} else {
				col = n
			}
			c.stickyCol = -1
		}
	case n == 0:
		if c.stickyCol < 0 {
			c.stickyCol = col
		}
		col = 0
	default:
		if c.stickyCol < 0 {
			c.stickyCol = col
		}
		col = n
	}
	return col
}

// Undo moves the cursor back to where it was before the most recent
// recorded move.
func (c *Coordinator) Undo() bool {
	move, ok := c.hist.Peek(history.Undo)
	if !ok {
		return false
	}
	c.pos = clamp(move.Old, c.viewHeight)
	c.hist.Update(move, history.Undo)
	return true
}

// Redo re-applies the most recently undone cursor move.
func (c *Coordinator) Redo() bool {
	move, ok := c.hist.Peek(history.Redo)
	if !ok {
		return false
	}
	c.pos = clamp(move.New, c.viewHeight)
	c.hist.Update(move, history.Redo)
	return true
}

func clamp(p types.Position, viewHeight int) types.Position {
	if p.Row < 0 {
		p.Row = 0
	}
	if viewHeight > 0 && p.Row >= viewHeight {
		p.Row = viewHeight - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	return p
}
