// internal/document/edit.go
package document

// EditKind discriminates the reversible edit records kept in the document's
// history log.
type EditKind int

const (
	EditInsertChar EditKind = iota
	EditDeleteChar
	EditReplaceLine
	EditInsertLine
	EditDeleteLine
)

func (k EditKind) String() string {
	switch k {
	case EditInsertChar:
		return "insert-char"
	case EditDeleteChar:
		return "delete-char"
	case EditReplaceLine:
		return "replace-line"
	case EditInsertLine:
		return "insert-line"
	case EditDeleteLine:
		return "delete-line"
	}
	return "unknown"
}

// Edit describes one buffer mutation with enough state to re-apply and
// reverse itself. Row is absolute (scroll offset already folded in at record
// time) so replays are immune to later scrolling.
type Edit struct {
	Kind EditKind
	Row  int
	Col  int

	Ch   rune   // EditInsertChar / EditDeleteChar
	Line []rune // EditInsertLine / EditDeleteLine

	OldLine []rune // EditReplaceLine
	NewLine []rune // EditReplaceLine
}
