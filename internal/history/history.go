// Package history provides a generic two-stack undo/redo log.
package history

// Action tags how a mutation entered the log: a fresh edit, an undo
// replay, or a redo replay.
type Action int

const (
	Do Action = iota
	Undo
	Redo
)

const DefaultMaxHistory = 1000

// History keeps applied edits on the done stack and undone edits on the
// undone stack, most recent last.
type History[T any] struct {
	done       []T
	undone     []T
	maxHistory int
}

// New creates a history log. A non-positive cap falls back to
// DefaultMaxHistory.
func New[T any](maxHistory int) *History[T] {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &History[T]{
		done:       make([]T, 0, 16),
		undone:     nil,
		maxHistory: maxHistory,
	}
}

// Update records the effect of a mutation on the stacks.
//
// Do pushes the event onto done and discards the redo chain: a fresh edit
// after an undo invalidates whatever was undone. Undo and Redo ignore the
// event argument and move the top record between the stacks; the caller has
// already replayed the record it obtained from Peek.
func (h *History[T]) Update(event T, action Action) {
	switch action {
	case Do:
		h.done = append(h.done, event)
		h.undone = h.undone[:0]
		if len(h.done) > h.maxHistory {
			// FIFO eviction of the oldest edits.
			h.done = h.done[len(h.done)-h.maxHistory:]
		}
	case Undo:
		if n := len(h.done); n > 0 {
			h.undone = append(h.undone, h.done[n-1])
			h.done = h.done[:n-1]
		}
	case Redo:
		if n := len(h.undone); n > 0 {
			h.done = append(h.done, h.undone[n-1])
			h.undone = h.undone[:n-1]
		}
	}
}

// Peek returns the record an Undo or Redo would replay next. For any other
// action it reports nothing.
func (h *History[T]) Peek(action Action) (T, bool) {
	var zero T
	switch action {
	case Undo:
		if n := len(h.done); n > 0 {
			return h.done[n-1], true
		}
	case Redo:
		if n := len(h.undone); n > 0 {
			return h.undone[n-1], true
		}
	}
	return zero, false
}

// CanUndo reports whether the done stack is non-empty.
func (h *History[T]) CanUndo() bool { return len(h.done) > 0 }

// CanRedo reports whether the undone stack is non-empty.
func (h *History[T]) CanRedo() bool { return len(h.undone) > 0 }

// Clear resets both stacks. Call this on file load.
func (h *History[T]) Clear() {
	h.done = h.done[:0]
	h.undone = nil
}
