// internal/types/position.go
package types

// Position is a cursor position on the visible screen.
// Row is the 0-based viewport row (the document adds its scroll offset).
// Col is the 0-based rune index within the line.
type Position struct {
	Row int
	Col int
}
