package state

// MoveCursor moves the list cursor by delta, stopping at either end.
func (j *Jump) MoveCursor(delta int) bool {
	if len(j.Items) == 0 {
		j.Cursor = 0
		return false
	}
	old := j.Cursor
	j.Cursor = clamp(j.Cursor+delta, 0, len(j.Items)-1)
	return j.Cursor != old
}

// MoveCursorHome moves the cursor to the first match.
func (j *Jump) MoveCursorHome() bool {
	return j.MoveCursor(-len(j.Items))
}

// MoveCursorEnd moves the cursor to the last match.
func (j *Jump) MoveCursorEnd() bool {
	return j.MoveCursor(len(j.Items))
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays within
// maxVisible rows.
func (j *Jump) EnsureCursorVisible(maxVisible int) {
	if len(j.Items) == 0 || maxVisible <= 0 {
		j.ViewportOffset = 0
		return
	}
	j.Cursor = clamp(j.Cursor, 0, len(j.Items)-1)
	maxOffset := max(len(j.Items)-maxVisible, 0)
	j.ViewportOffset = clamp(j.ViewportOffset, 0, maxOffset)
	if j.Cursor < j.ViewportOffset {
		j.ViewportOffset = j.Cursor
	}
	if upper := j.ViewportOffset + maxVisible - 1; j.Cursor > upper {
		j.ViewportOffset = clamp(j.Cursor-maxVisible+1, 0, maxOffset)
	}
}

// Visible returns the slice of matches inside the viewport.
func (j *Jump) Visible(maxVisible int) []Item {
	if maxVisible <= 0 || len(j.Items) <= maxVisible {
		return j.Items
	}
	j.EnsureCursorVisible(maxVisible)
	return j.Items[j.ViewportOffset : j.ViewportOffset+maxVisible]
}
