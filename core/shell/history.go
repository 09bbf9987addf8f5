package shell

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HistoryEntry is one executed top-level command line.
type HistoryEntry struct {
	// Seq is the entry's sequence number. Numbers increase monotonically
	// and are never reused, even after eviction or Clear.
	Seq  int
	Line string
	Time time.Time
}

// HistoryStats summarizes the store for the history command.
type HistoryStats struct {
	Count  int
	Oldest time.Time
	Newest time.Time
}

// History is an ordered, capped log of executed command lines. Exactly one
// entry is appended per top-level input line; pipelines and for-loops count
// as a single entry.
type History struct {
	max     int
	nextSeq int
	entries []HistoryEntry
	now     func() time.Time
}

// NewHistory returns a store that evicts its oldest entry once max is
// exceeded.
func NewHistory(max int) *History {
	return &History{max: max, nextSeq: 1, now: time.Now}
}

// Append records a line. Blank lines are ignored.
func (h *History) Append(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	h.entries = append(h.entries, HistoryEntry{
		Seq:  h.nextSeq,
		Line: line,
		Time: h.now(),
	})
	h.nextSeq++
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

// All returns every retained entry in insertion order.
func (h *History) All() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Last returns the n most recent entries in insertion order.
func (h *History) Last(n int) []HistoryEntry {
	if n <= 0 {
		return nil
	}
	if n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]HistoryEntry, n)
	copy(out, h.entries[len(h.entries)-n:])
	return out
}

// Search returns entries whose line contains substr, case-insensitively, in
// insertion order.
func (h *History) Search(substr string) []HistoryEntry {
	needle := strings.ToLower(substr)
	var out []HistoryEntry
	for _, e := range h.entries {
		if strings.Contains(strings.ToLower(e.Line), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Clear empties the store. Sequence numbering continues where it left off.
func (h *History) Clear() {
	h.entries = nil
}

// Stats reports the count and the timestamps of the oldest and newest
// retained entries.
func (h *History) Stats() HistoryStats {
	if len(h.entries) == 0 {
		return HistoryStats{}
	}
	return HistoryStats{
		Count:  len(h.entries),
		Oldest: h.entries[0].Time,
		Newest: h.entries[len(h.entries)-1].Time,
	}
}

// Expand applies !-style history references to a whole input line:
//
//	!!        repeat the last command
//	!n        repeat the command with sequence number n
//	!string   repeat the most recent command starting with string
//	^old^new  repeat the last command with old replaced by new once
//
// Lines without a history reference pass through unchanged.
func (h *History) Expand(line string) (string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return line, nil
	}
	if strings.HasPrefix(trimmed, "^") && strings.Count(trimmed, "^") >= 2 {
		return h.quickSubstitution(trimmed)
	}
	if strings.HasPrefix(trimmed, "!") && len(trimmed) > 1 {
		return h.bangExpansion(trimmed)
	}
	return line, nil
}

func (h *History) quickSubstitution(line string) (string, error) {
	if len(h.entries) == 0 {
		return "", &HistoryExpansionError{Msg: "no previous command for substitution"}
	}
	parts := strings.SplitN(line[1:], "^", 3)
	if len(parts) < 2 {
		return "", &HistoryExpansionError{Msg: "invalid substitution, use ^old^new"}
	}
	oldText, newText := parts[0], parts[1]
	last := h.entries[len(h.entries)-1].Line
	if !strings.Contains(last, oldText) {
		return "", &HistoryExpansionError{
			Msg: fmt.Sprintf("%q not found in last command: %s", oldText, last),
		}
	}
	return strings.Replace(last, oldText, newText, 1), nil
}

func (h *History) bangExpansion(line string) (string, error) {
	if len(h.entries) == 0 {
		return "", &HistoryExpansionError{Msg: "no command history available"}
	}
	if line == "!!" {
		return h.entries[len(h.entries)-1].Line, nil
	}
	rest := line[1:]
	if seq, err := strconv.Atoi(rest); err == nil {
		for _, e := range h.entries {
			if e.Seq == seq {
				return e.Line, nil
			}
		}
		return "", &HistoryExpansionError{Msg: fmt.Sprintf("event %d not found", seq)}
	}
	for i := len(h.entries) - 1; i >= 0; i-- {
		if strings.HasPrefix(h.entries[i].Line, rest) {
			return h.entries[i].Line, nil
		}
	}
	return "", &HistoryExpansionError{Msg: fmt.Sprintf("no command found starting with %q", rest)}
}
