package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetQuery replaces the query and moves the cursor to the best match. Clearing
// the query restores the cursor from before filtering began.
func (j *Jump) SetQuery(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prev := strings.TrimSpace(j.Query)
	j.Query = query
	j.QueryCursor = clamp(cursor, 0, len([]rune(query)))

	if trimmed != "" && prev == "" {
		j.LastCursor = j.Cursor
	}
	j.applyQuery()

	switch {
	case trimmed != "":
		if idx := BestMatchIndex(j.Items, trimmed); idx >= 0 {
			j.Cursor = idx
		}
	case prev != "":
		if j.LastCursor >= 0 && j.LastCursor < len(j.Items) {
			j.Cursor = j.LastCursor
		}
		j.LastCursor = -1
	}
}

func (j *Jump) applyQuery() {
	j.Items = FilterItems(j.Full, j.Query)
	if len(j.Items) == 0 {
		j.Cursor = 0
		j.ViewportOffset = 0
		return
	}
	j.Cursor = clamp(j.Cursor, 0, len(j.Items)-1)
	if j.ViewportOffset > len(j.Items)-1 {
		j.ViewportOffset = 0
	}
}

// QueryCursorPos returns the rune offset of the query cursor.
func (j *Jump) QueryCursorPos() int {
	return clamp(j.QueryCursor, 0, len([]rune(j.Query)))
}

// InsertText inserts text at the query cursor.
func (j *Jump) InsertText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(j.Query)
	pos := j.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	j.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes the rune before the query cursor.
func (j *Jump) DeleteRuneBackward() bool {
	runes := []rune(j.Query)
	pos := j.QueryCursorPos()
	if pos == 0 {
		return false
	}
	j.SetQuery(string(append(runes[:pos-1], runes[pos:]...)), pos-1)
	return true
}

// DeleteWordBackward deletes the word before the query cursor.
func (j *Jump) DeleteWordBackward() bool {
	runes := []rune(j.Query)
	pos := j.QueryCursorPos()
	start := wordStart(runes, pos)
	if start == pos {
		return false
	}
	j.SetQuery(string(append(runes[:start], runes[pos:]...)), start)
	return true
}

// MoveQueryCursor moves the query cursor by delta runes.
func (j *Jump) MoveQueryCursor(delta int) bool {
	pos := j.QueryCursorPos()
	next := clamp(pos+delta, 0, len([]rune(j.Query)))
	j.QueryCursor = next
	return next != pos
}

// MoveQueryCursorWordBackward moves the query cursor to the previous word start.
func (j *Jump) MoveQueryCursorWordBackward() bool {
	pos := j.QueryCursorPos()
	start := wordStart([]rune(j.Query), pos)
	j.QueryCursor = start
	return start != pos
}

// MoveQueryCursorWordForward moves the query cursor past the next word.
func (j *Jump) MoveQueryCursorWordForward() bool {
	runes := []rune(j.Query)
	pos := j.QueryCursorPos()
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	j.QueryCursor = i
	return i != pos
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// FilterItems returns the items whose label fuzzy-matches query, in their
// original order. Descriptions are searched by substring when nothing
// matches fuzzily.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]Item(nil), items...)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		keep := make([]bool, len(items))
		for _, rank := range ranks {
			keep[rank.OriginalIndex] = true
		}
		out := make([]Item, 0, len(ranks))
		for i, item := range items {
			if keep[i] {
				out = append(out, item)
			}
		}
		return out
	}
	lower := strings.ToLower(trimmed)
	var out []Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Description), lower) {
			out = append(out, item)
		}
	}
	return out
}

// BestMatchIndex prefers an exact label, then a prefix, then a substring and
// finally the closest fuzzy match.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	tests := []func(label string) bool{
		func(label string) bool { return strings.EqualFold(label, trimmed) },
		func(label string) bool { return strings.HasPrefix(strings.ToLower(label), lower) },
		func(label string) bool { return strings.Contains(strings.ToLower(label), lower) },
	}
	for _, match := range tests {
		for i, item := range items {
			if match(item.Label) {
				return i
			}
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
