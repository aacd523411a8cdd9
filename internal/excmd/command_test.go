package excmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"kite/internal/document"
	"kite/internal/history"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Command
		wantErr bool
	}{
		{"q", Command{Kind: Quit}, false},
		{"q!", Command{Kind: Quit, Force: true}, false},
		{"w", Command{Kind: Save}, false},
		{"wq", Command{Kind: SaveQuit}, false},
		{"  q  ", Command{Kind: Quit}, false},
		{"", Command{}, true},
		{"x", Command{}, true},
		{"quit", Command{}, true},
		{"wq!", Command{}, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownCommand) {
				t.Errorf("Parse(%q) error = %v, want ErrUnknownCommand", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestQuitCleanDocument(t *testing.T) {
	doc := document.New("")
	quit, err := Command{Kind: Quit}.Run(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quit {
		t.Fatal("quit on a clean document should succeed")
	}
}

func TestQuitModifiedDocumentFails(t *testing.T) {
	doc := document.New("")
	doc.InsertChar(0, 0, 'x', history.Do)

	quit, err := Command{Kind: Quit}.Run(doc)
	if !errors.Is(err, ErrQuitModified) {
		t.Fatalf("error = %v, want ErrQuitModified", err)
	}
	if quit {
		t.Fatal("quit must not be requested when the check fails")
	}
}

func TestForcedQuitDiscardsChanges(t *testing.T) {
	doc := document.New("")
	doc.InsertChar(0, 0, 'x', history.Do)

	quit, err := Command{Kind: Quit, Force: true}.Run(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quit {
		t.Fatal("forced quit should succeed on a modified document")
	}
}

func TestSaveWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	doc := document.New(path)
	doc.SetLine(0, []rune("saved"), history.Do)

	quit, err := Command{Kind: Save}.Run(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quit {
		t.Fatal("save alone must not request quit")
	}
	if doc.Modified() {
		t.Fatal("save should clear the modified flag")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "saved" {
		t.Fatalf("file content = %q, want %q", string(data), "saved")
	}
}

func TestSaveCleanDocumentIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "untouched.txt")
	doc := document.New(path)

	if _, err := (Command{Kind: Save}).Run(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("clean document should not be written out")
	}
}

func TestSaveWithoutPathFails(t *testing.T) {
	doc := document.New("")
	doc.InsertChar(0, 0, 'x', history.Do)

	_, err := Command{Kind: Save}.Run(doc)
	if !errors.Is(err, document.ErrNoFilePath) {
		t.Fatalf("error = %v, want ErrNoFilePath", err)
	}
}

func TestSaveQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	doc := document.New(path)
	doc.SetLine(0, []rune("bye"), history.Do)

	quit, err := Command{Kind: SaveQuit}.Run(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quit {
		t.Fatal("wq should request quit after a successful save")
	}
}

func TestSaveQuitAbortsOnSaveFailure(t *testing.T) {
	doc := document.New("")
	doc.InsertChar(0, 0, 'x', history.Do)

	quit, err := Command{Kind: SaveQuit}.Run(doc)
	if err == nil {
		t.Fatal("expected save failure")
	}
	if quit {
		t.Fatal("wq must not quit when the save fails")
	}
}
