package sokoban

import "time"

// HistoryEntry is a snapshot taken before an accepted move.
type HistoryEntry struct {
	State  GameState // State before the move
	At     time.Time // When the move was made
	Dir    Direction // Direction of the move that followed
	Pushed bool      // Whether that move pushed a box
}

// History is a LIFO stack of snapshots used for undo. There is no redo:
// popped entries are discarded.
type History struct {
	entries []HistoryEntry
	limit   int // 0 means unbounded
}

// NewHistory creates a history holding at most limit entries.
// A limit <= 0 means unbounded. When a bounded history is full, pushing
// evicts the oldest entry.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Push adds an entry on top of the stack.
func (h *History) Push(e HistoryEntry) {
	if h.limit > 0 && len(h.entries) >= h.limit {
		// Drop the oldest.
		copy(h.entries, h.entries[1:])
		h.entries[len(h.entries)-1] = e
		return
	}
	h.entries = append(h.entries, e)
}

// Pop removes and returns the most recent entry.
// ok is false when the history is empty.
func (h *History) Pop() (e HistoryEntry, ok bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	last := len(h.entries) - 1
	e = h.entries[last]
	h.entries[last] = HistoryEntry{}
	h.entries = h.entries[:last]
	return e, true
}

// Peek returns the most recent entry without removing it.
func (h *History) Peek() (e HistoryEntry, ok bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Clear removes all entries.
func (h *History) Clear() {
	h.entries = nil
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Limit returns the capacity, 0 for unbounded.
func (h *History) Limit() int {
	return h.limit
}
