// Package history provides a bounded linear undo/redo timeline over an
// opaque snapshot type. It knows nothing about what it stores: callers
// push whole-state snapshots and walk the cursor back and forth.
package history

// History holds up to limit snapshots plus a cursor. Pushing while the
// cursor sits in the past truncates the redo side, like any linear
// editor history.
type History[T any] struct {
	entries []T
	cursor  int
	limit   int
}

// DefaultLimit bounds the timeline when no explicit limit is given
const DefaultLimit = 100

// New creates a history seeded with the initial state
func New[T any](initial T, limit int) *History[T] {
	if limit < 2 {
		limit = DefaultLimit
	}
	return &History[T]{entries: []T{initial}, limit: limit}
}

// Current returns the state at the cursor
func (h *History[T]) Current() T {
	return h.entries[h.cursor]
}

// Push records a new state after the cursor, discarding any redo
// entries and dropping the oldest snapshot when over the limit
func (h *History[T]) Push(state T) {
	h.entries = append(h.entries[:h.cursor+1], state)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	h.cursor = len(h.entries) - 1
}

// CanUndo reports whether a prior state exists
func (h *History[T]) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether an undone state exists
func (h *History[T]) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

// Undo moves the cursor back and returns the state there. The second
// return is false when there is nothing to undo.
func (h *History[T]) Undo() (T, bool) {
	if !h.CanUndo() {
		var zero T
		return zero, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Redo moves the cursor forward and returns the state there. The second
// return is false when there is nothing to redo.
func (h *History[T]) Redo() (T, bool) {
	if !h.CanRedo() {
		var zero T
		return zero, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Len returns the number of stored snapshots
func (h *History[T]) Len() int {
	return len(h.entries)
}
