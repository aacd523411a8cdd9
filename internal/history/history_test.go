package history

import "testing"

func TestUpdateDoPushes(t *testing.T) {
	h := New[int](10)
	h.Update(1, Do)
	h.Update(2, Do)

	if !h.CanUndo() {
		t.Fatal("expected CanUndo after two edits")
	}
	if got, ok := h.Peek(Undo); !ok || got != 2 {
		t.Fatalf("Peek(Undo): got %d, %v; want 2, true", got, ok)
	}
}

func TestUndoRedoMovesBetweenStacks(t *testing.T) {
	h := New[string](10)
	h.Update("a", Do)
	h.Update("b", Do)

	rec, ok := h.Peek(Undo)
	if !ok || rec != "b" {
		t.Fatalf("Peek(Undo): got %q, %v; want \"b\", true", rec, ok)
	}
	h.Update(rec, Undo)

	if got, ok := h.Peek(Redo); !ok || got != "b" {
		t.Fatalf("Peek(Redo) after undo: got %q, %v; want \"b\", true", got, ok)
	}
	if got, ok := h.Peek(Undo); !ok || got != "a" {
		t.Fatalf("Peek(Undo) after undo: got %q, %v; want \"a\", true", got, ok)
	}

	rec, _ = h.Peek(Redo)
	h.Update(rec, Redo)
	if h.CanRedo() {
		t.Fatal("redo stack should be empty after redo")
	}
	if got, _ := h.Peek(Undo); got != "b" {
		t.Fatalf("Peek(Undo) after redo: got %q, want \"b\"", got)
	}
}

func TestPeekOnEmptyStacks(t *testing.T) {
	h := New[int](10)
	if _, ok := h.Peek(Undo); ok {
		t.Fatal("Peek(Undo) on empty history should report false")
	}
	if _, ok := h.Peek(Redo); ok {
		t.Fatal("Peek(Redo) on empty history should report false")
	}

	// Undo/Redo on empty stacks must be harmless no-ops.
	h.Update(0, Undo)
	h.Update(0, Redo)
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("empty history mutated by no-op undo/redo")
	}
}

func TestHistoryFreshEditClearsRedo(t *testing.T) {
	h := New[int](10)
	h.Update(1, Do)
	h.Update(2, Do)

	rec, _ := h.Peek(Undo)
	h.Update(rec, Undo)
	if !h.CanRedo() {
		t.Fatal("expected redo chain after undo")
	}

	// A fresh edit invalidates the undone chain.
	h.Update(3, Do)
	if h.CanRedo() {
		t.Fatal("fresh edit should clear the redo stack")
	}
	if got, _ := h.Peek(Undo); got != 3 {
		t.Fatalf("Peek(Undo): got %d, want 3", got)
	}
}

func TestEvictionKeepsNewest(t *testing.T) {
	h := New[int](3)
	for i := 1; i <= 5; i++ {
		h.Update(i, Do)
	}

	var got []int
	for h.CanUndo() {
		rec, _ := h.Peek(Undo)
		got = append(got, rec)
		h.Update(rec, Undo)
	}
	want := []int{5, 4, 3}
	if len(got) != len(want) {
		t.Fatalf("undo chain length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("undo chain: got %v, want %v", got, want)
		}
	}
}

func TestClear(t *testing.T) {
	h := New[int](10)
	h.Update(1, Do)
	rec, _ := h.Peek(Undo)
	h.Update(rec, Undo)
	h.Update(2, Do)

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("Clear should empty both stacks")
	}
}
