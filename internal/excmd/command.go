// Package excmd parses and executes colon-prefixed ex-commands.
package excmd

import (
	"errors"
	"fmt"
	"strings"

	"kite/internal/document"
	"kite/internal/logger"
)

// Parse errors and run errors surface on the status line; none are fatal to
// the editor itself.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrQuitModified   = errors.New("unsaved changes (add ! to discard)")
)

// Kind discriminates the supported commands.
type Kind int

const (
	Quit Kind = iota
	Save
	SaveQuit
)

// Command is one parsed ex-command.
type Command struct {
	Kind  Kind
	Force bool // bypass the unsaved-changes check on quit
}

// Parse turns a finalized command string into a Command.
// Recognized: q, q!, w, wq.
func Parse(s string) (Command, error) {
	switch strings.TrimSpace(s) {
	case "q":
		return Command{Kind: Quit}, nil
	case "q!":
		return Command{Kind: Quit, Force: true}, nil
	case "w":
		return Command{Kind: Save}, nil
	case "wq":
		return Command{Kind: SaveQuit}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// Run executes the command against the document. It reports whether the
// editor should quit; termination itself (terminal restore, exit code) is
// the caller's job.
func (c Command) Run(doc *document.Document) (quit bool, err error) {
	switch c.Kind {
	case Quit:
		if doc.Modified() && !c.Force {
			return false, ErrQuitModified
		}
		return true, nil

	case Save:
		return false, save(doc)

	case SaveQuit:
		if err := save(doc); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, fmt.Errorf("%w: kind %d", ErrUnknownCommand, c.Kind)
}

// save writes the document if it has unsaved changes. A clean document is a
// successful no-op. Write failures are hard failures: the document keeps its
// modified flag so the unsaved state stays visible.
func save(doc *document.Document) error {
	if doc.Path() == "" {
		return document.ErrNoFilePath
	}
	if !doc.Modified() {
		return nil
	}
	if err := doc.Write(); err != nil {
		logger.Errorf("excmd: save failed: %v", err)
		return err
	}
	return nil
}
