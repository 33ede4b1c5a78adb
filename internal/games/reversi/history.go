package reversi

import "errors"

// HistoryLimit is the maximum number of undo steps kept.
const HistoryLimit = 200

// ErrEmptyHistory is returned when undo is requested with nothing to undo.
var ErrEmptyHistory = errors.New("reversi: history is empty")

// Snapshot is the state captured before a mutating action.
type Snapshot struct {
	Board   Board
	Current Player
	Mode    Mode
}

// History is a bounded stack of snapshots. Once full, the oldest entry
// is evicted so the most recent undo depth is preserved.
type History struct {
	entries []Snapshot
}

// Push records a snapshot, evicting the oldest entry past HistoryLimit.
func (h *History) Push(s Snapshot) {
	h.entries = append(h.entries, s)
	if len(h.entries) > HistoryLimit {
		// Shift in place so the backing array does not grow without bound
		n := copy(h.entries, h.entries[len(h.entries)-HistoryLimit:])
		h.entries = h.entries[:n]
	}
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (Snapshot, error) {
	if len(h.entries) == 0 {
		return Snapshot{}, ErrEmptyHistory
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, nil
}

// CanUndo reports whether there is at least one snapshot.
func (h *History) CanUndo() bool {
	return len(h.entries) > 0
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear drops every snapshot.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}
