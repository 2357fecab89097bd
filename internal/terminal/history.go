package terminal

// History is the linear list of submitted commands plus a recall cursor.
// The cursor stays within [0, Len()]; Len() means "past the newest entry".
type History struct {
	entries []string
	cursor  int
}

// Add appends a command and resets the cursor past the end
func (h *History) Add(cmd string) {
	h.entries = append(h.entries, cmd)
	h.cursor = len(h.entries)
}

// Previous steps back one entry. ok is false when already at the oldest
// entry, in which case the input should be left alone.
func (h *History) Previous() (string, bool) {
	if h.cursor <= 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next steps forward one entry. Stepping past the newest entry parks the
// cursor at the end and returns an empty input.
func (h *History) Next() string {
	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return h.entries[h.cursor]
	}
	h.cursor = len(h.entries)
	return ""
}

// Entries returns a copy of the recorded commands
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Cursor returns the recall position
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of recorded commands
func (h *History) Len() int {
	return len(h.entries)
}
