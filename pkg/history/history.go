// Package history tracks board-to-board traversal: browser-style back and
// forward stacks plus a bounded most-recently-used list. It holds raw
// board ids, independent of the document tree; a board can still be
// reached from history after its parent note is gone, so entries are a
// cache of reachability, not a guarantee, and callers resolve them against
// the live project.
package history

// DefaultCapacity is the stock size of the most-recently-used list.
const DefaultCapacity = 12

// History remembers where the session has been.
type History struct {
	current  string
	back     []string
	forward  []string
	mru      []string
	capacity int
}

// New starts history at the given board. A capacity below 1 falls back to
// DefaultCapacity.
func New(current string, capacity int) *History {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	h := &History{current: current, capacity: capacity}
	h.touch(current)
	return h
}

// Current returns the board the session is on.
func (h *History) Current() string {
	return h.current
}

// Enter switches to a board: the current board is pushed onto the back
// stack and the forward stack is cleared. Entering the current board is a
// no-op.
func (h *History) Enter(boardID string) {
	if boardID == h.current {
		return
	}
	h.back = append(h.back, h.current)
	h.forward = h.forward[:0]
	h.current = boardID
	h.touch(boardID)
}

// Back pops the back stack, pushing the current board onto the forward
// stack. Reports false (and changes nothing) when the stack is empty.
func (h *History) Back() (string, bool) {
	if len(h.back) == 0 {
		return h.current, false
	}
	prev := h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	h.forward = append(h.forward, h.current)
	h.current = prev
	h.touch(prev)
	return prev, true
}

// Forward is the inverse of Back.
func (h *History) Forward() (string, bool) {
	if len(h.forward) == 0 {
		return h.current, false
	}
	next := h.forward[len(h.forward)-1]
	h.forward = h.forward[:len(h.forward)-1]
	h.back = append(h.back, h.current)
	h.current = next
	h.touch(next)
	return next, true
}

// Recent returns the most-recently-used boards, newest first.
func (h *History) Recent() []string {
	return append([]string(nil), h.mru...)
}

// Drop scrubs a board id from the stacks and the MRU list, for boards
// removed by a cascading delete. The current board is left alone; callers
// relocate the session first.
func (h *History) Drop(boardID string) {
	h.back = remove(h.back, boardID)
	h.forward = remove(h.forward, boardID)
	h.mru = remove(h.mru, boardID)
}

// Reset moves the session to a board, clearing both stacks. Used when the
// current board itself has been deleted.
func (h *History) Reset(boardID string) {
	h.current = boardID
	h.back = nil
	h.forward = nil
	h.touch(boardID)
}

// Snapshot exposes the raw state for session persistence.
func (h *History) Snapshot() (current string, back, forward, mru []string) {
	return h.current,
		append([]string(nil), h.back...),
		append([]string(nil), h.forward...),
		append([]string(nil), h.mru...)
}

// Restore rebuilds a history from persisted session state.
func Restore(current string, back, forward, mru []string, capacity int) *History {
	h := New(current, capacity)
	h.back = append([]string(nil), back...)
	h.forward = append([]string(nil), forward...)
	h.mru = nil
	for i := len(mru) - 1; i >= 0; i-- {
		h.touch(mru[i])
	}
	h.touch(current)
	return h
}

// touch moves a board to the front of the MRU list, evicting past
// capacity.
func (h *History) touch(boardID string) {
	if boardID == "" {
		return
	}
	h.mru = remove(h.mru, boardID)
	h.mru = append([]string{boardID}, h.mru...)
	if len(h.mru) > h.capacity {
		h.mru = h.mru[:h.capacity]
	}
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}
