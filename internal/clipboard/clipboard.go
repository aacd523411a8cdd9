// Package clipboard provides the yank/paste register, optionally backed by
// the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"kite/internal/logger"
)

// Register holds yanked text. With system enabled, reads and writes go
// through the OS clipboard so yanks survive across editor instances.
type Register struct {
	system bool
	text   string
}

// New creates a register. system selects the OS clipboard backing.
func New(system bool) *Register {
	return &Register{system: system}
}

// Copy stores text in the register.
func (r *Register) Copy(text string) error {
	if r.system {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("system clipboard write failed: %w", err)
		}
	}
	r.text = text
	logger.Debugf("Clipboard: copied %d bytes", len(text))
	return nil
}

// Paste returns the register content. Empty content is not an error.
func (r *Register) Paste() (string, error) {
	if r.system {
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("system clipboard read failed: %w", err)
		}
		return text, nil
	}
	return r.text, nil
}
