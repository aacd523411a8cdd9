package statusbar

import (
	"strings"
	"testing"

	"kite/internal/types"
)

func TestDefaultDisplayText(t *testing.T) {
	sb := New(DefaultConfig())

	if got := sb.getDefaultDisplayText(); !strings.HasPrefix(got, "[No Name]") {
		t.Fatalf("pathless text = %q, want [No Name] prefix", got)
	}

	sb.SetFileInfo("notes.txt", true)
	sb.SetCursorInfo(types.Position{Row: 4, Col: 9})
	sb.SetEditorMode("INSERT")

	got := sb.getDefaultDisplayText()
	want := "notes.txt [Modified] -- Line: 5, Col: 10 -- INSERT"
	if got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

func TestCleanFileOmitsModifiedIndicator(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetFileInfo("notes.txt", false)
	if got := sb.getDefaultDisplayText(); strings.Contains(got, "[Modified]") {
		t.Fatalf("text = %q, should not contain [Modified]", got)
	}
}

func TestErrorLifecycle(t *testing.T) {
	sb := New(DefaultConfig())
	if sb.HasError() {
		t.Fatal("new status bar should have no error")
	}

	sb.SetError("save failed: %s", "disk full")
	if !sb.HasError() {
		t.Fatal("HasError() = false after SetError")
	}

	sb.ClearError()
	if sb.HasError() {
		t.Fatal("HasError() = true after ClearError")
	}
}

func TestTemporaryMessageReset(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetTemporaryMessage("%d line yanked", 1)
	if sb.tempMessage != "1 line yanked" {
		t.Fatalf("tempMessage = %q", sb.tempMessage)
	}
	sb.ResetTemporaryMessage()
	if sb.tempMessage != "" || !sb.tempMessageTime.IsZero() {
		t.Fatal("ResetTemporaryMessage should clear message and timestamp")
	}
}
