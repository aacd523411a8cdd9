// internal/document/document.go
package document

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"kite/internal/history"
	"kite/internal/logger"
)

// ErrNoFilePath is returned by Write when the document has no associated
// path yet.
var ErrNoFilePath = errors.New("no file path associated with document")

// Document is the line-oriented text buffer. It owns the content, records
// every mutation into its history log, and exposes a scrollable viewport
// window.
//
// All exported row parameters are viewport-relative; the scroll offset is
// added here and nowhere else. Out-of-range rows and columns are silently
// absorbed as no-ops: they arise continuously from normal navigation.
type Document struct {
	lines        [][]rune
	path         string
	modified     bool
	scrollOffset int

	history *history.History[Edit]
}

// New creates an empty document. An empty document has exactly one empty
// line. The path may be empty for a pathless scratch document.
func New(path string) *Document {
	return &Document{
		lines:   [][]rune{{}},
		path:    path,
		history: history.New[Edit](history.DefaultMaxHistory),
	}
}

// Load reads a file into a fresh document, one entry per input line. A
// missing file yields a new empty document with the path pre-set.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(path), nil
		}
		return nil, fmt.Errorf("failed to open file '%s': %w", path, err)
	}
	defer file.Close()

	var lines [][]rune
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, []rune(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file '%s': %w", path, err)
	}
	if len(lines) == 0 {
		lines = append(lines, []rune{})
	}

	return &Document{
		lines:   lines,
		path:    path,
		history: history.New[Edit](history.DefaultMaxHistory),
	}, nil
}

// SetMaxHistory swaps in a history log with the given cap. Existing records
// are discarded, so call this before editing starts.
func (d *Document) SetMaxHistory(n int) {
	d.history = history.New[Edit](n)
}

// Path returns the associated file path, empty if none.
func (d *Document) Path() string { return d.path }

// Modified reports whether the document has unsaved changes.
func (d *Document) Modified() bool { return d.modified }

// Length returns the number of lines.
func (d *Document) Length() int { return len(d.lines) }

// ScrollOffset returns the index of the first visible line.
func (d *Document) ScrollOffset() int { return d.scrollOffset }

// Line returns the line at row + scrollOffset, or false if out of range.
// Callers must not mutate the returned slice.
func (d *Document) Line(row int) ([]rune, bool) {
	abs := row + d.scrollOffset
	if abs < 0 || abs >= len(d.lines) {
		return nil, false
	}
	return d.lines[abs], true
}

// LineLen returns the rune length of the line at row, or -1 if out of range.
func (d *Document) LineLen(row int) int {
	line, ok := d.Line(row)
	if !ok {
		return -1
	}
	return len(line)
}

// SetLine replaces a line's content, recording a line-replace edit.
func (d *Document) SetLine(row int, content []rune, action history.Action) {
	abs := row + d.scrollOffset
	if abs < 0 || abs >= len(d.lines) {
		return
	}
	old := d.lines[abs]
	d.lines[abs] = cloneLine(content)
	d.modified = true
	d.history.Update(Edit{
		Kind:    EditReplaceLine,
		Row:     abs,
		OldLine: old,
		NewLine: cloneLine(content),
	}, action)
}

// InsertLine inserts a new line before row if row is within the current
// length, else appends, recording a line-insert edit.
func (d *Document) InsertLine(row int, content []rune, action history.Action) {
	abs := row + d.scrollOffset
	if abs < 0 {
		return
	}
	if abs > len(d.lines) {
		abs = len(d.lines)
	}
	line := cloneLine(content)
	d.lines = append(d.lines, nil)
	copy(d.lines[abs+1:], d.lines[abs:])
	d.lines[abs] = line
	d.modified = true
	d.history.Update(Edit{
		Kind: EditInsertLine,
		Row:  abs,
		Line: cloneLine(content),
	}, action)
}

// DeleteLine removes the line at row, recording the removed content as a
// line-delete edit. Deleting the only line of a document degenerates to
// clearing it, which keeps the never-empty invariant and stays reversible.
func (d *Document) DeleteLine(row int, action history.Action) {
	abs := row + d.scrollOffset
	if abs < 0 || abs >= len(d.lines) {
		return
	}
	if len(d.lines) == 1 {
		d.SetLine(row, nil, action)
		return
	}
	removed := d.lines[abs]
	d.lines = append(d.lines[:abs], d.lines[abs+1:]...)
	d.modified = true
	d.history.Update(Edit{
		Kind: EditDeleteLine,
		Row:  abs,
		Line: removed,
	}, action)
}

// InsertChar inserts c at col in the line at row, appending when col exceeds
// the current length, and records a character-insert edit.
func (d *Document) InsertChar(row, col int, c rune, action history.Action) {
	abs := row + d.scrollOffset
	if abs < 0 || abs >= len(d.lines) || col < 0 {
		return
	}
	line := d.lines[abs]
	if col > len(line) {
		col = len(line)
	}
	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = c
	d.lines[abs] = line
	d.modified = true
	d.history.Update(Edit{
		Kind: EditInsertChar,
		Row:  abs,
		Col:  col,
		Ch:   c,
	}, action)
}

// DeleteChar removes the character at col if present, recording the deleted
// character as a character-delete edit.
func (d *Document) DeleteChar(row, col int, action history.Action) {
	abs := row + d.scrollOffset
	if abs < 0 || abs >= len(d.lines) {
		return
	}
	line := d.lines[abs]
	if col < 0 || col >= len(line) {
		return
	}
	ch := line[col]
	d.lines[abs] = append(line[:col], line[col+1:]...)
	d.modified = true
	d.history.Update(Edit{
		Kind: EditDeleteChar,
		Row:  abs,
		Col:  col,
		Ch:   ch,
	}, action)
}

// Undo reverses the most recent edit by replaying its inverse through the
// regular mutation methods, tagged Undo so the history bookkeeping moves the
// record onto the redo stack. No-op when nothing is left to undo.
func (d *Document) Undo() bool {
	rec, ok := d.history.Peek(history.Undo)
	if !ok {
		return false
	}
	row := rec.Row - d.scrollOffset
	switch rec.Kind {
	case EditInsertChar:
		d.DeleteChar(row, rec.Col, history.Undo)
	case EditDeleteChar:
		d.InsertChar(row, rec.Col, rec.Ch, history.Undo)
	case EditReplaceLine:
		d.SetLine(row, rec.OldLine, history.Undo)
	case EditInsertLine:
		d.DeleteLine(row, history.Undo)
	case EditDeleteLine:
		d.InsertLine(row, rec.Line, history.Undo)
	}
	logger.Debugf("Document: undid %v at line %d", rec.Kind, rec.Row)
	return true
}

// Redo re-applies the most recently undone edit, tagged Redo so the record
// moves back onto the undo stack. No-op when the redo stack is empty.
func (d *Document) Redo() bool {
	rec, ok := d.history.Peek(history.Redo)
	if !ok {
		return false
	}
	row := rec.Row - d.scrollOffset
	switch rec.Kind {
	case EditInsertChar:
		d.InsertChar(row, rec.Col, rec.Ch, history.Redo)
	case EditDeleteChar:
		d.DeleteChar(row, rec.Col, history.Redo)
	case EditReplaceLine:
		d.SetLine(row, rec.NewLine, history.Redo)
	case EditInsertLine:
		d.InsertLine(row, rec.Line, history.Redo)
	case EditDeleteLine:
		d.DeleteLine(row, history.Redo)
	}
	logger.Debugf("Document: redid %v at line %d", rec.Kind, rec.Row)
	return true
}

// CanUndo reports whether an undoable edit exists.
func (d *Document) CanUndo() bool { return d.history.CanUndo() }

// CanRedo reports whether a redoable edit exists.
func (d *Document) CanRedo() bool { return d.history.CanRedo() }

// MoveUp scrolls the viewport up one line if possible and reports whether
// the scroll occurred.
func (d *Document) MoveUp() bool {
	if d.scrollOffset > 0 {
		d.scrollOffset--
		return true
	}
	return false
}

// MoveDown scrolls the viewport down one line when the cursor sits at
// viewportRow and more content exists below, reporting whether the scroll
// occurred.
func (d *Document) MoveDown(viewportRow int) bool {
	if d.scrollOffset+viewportRow < len(d.lines)-1 {
		d.scrollOffset++
		return true
	}
	return false
}

// Visible returns the slice of lines starting at the scroll offset, at most
// height entries, without mutating state.
func (d *Document) Visible(height int) [][]rune {
	if height <= 0 {
		return nil
	}
	start := d.scrollOffset
	if start >= len(d.lines) {
		return nil
	}
	end := start + height
	if end > len(d.lines) {
		end = len(d.lines)
	}
	return d.lines[start:end]
}

// Contents serializes all lines, newline-joined.
func (d *Document) Contents() string {
	var sb strings.Builder
	for i, line := range d.lines {
		sb.WriteString(string(line))
		if i < len(d.lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Write serializes the document to its stored path and clears the modified
// flag on success. It fails if no path is set.
func (d *Document) Write() error {
	if d.path == "" {
		return ErrNoFilePath
	}
	if err := os.WriteFile(d.path, []byte(d.Contents()), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", d.path, err)
	}
	d.modified = false
	logger.Infof("Document: wrote %d lines to %s", len(d.lines), d.path)
	return nil
}

func cloneLine(line []rune) []rune {
	out := make([]rune, len(line))
	copy(out, line)
	return out
}
