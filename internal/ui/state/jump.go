// Package state holds the jump list: a fuzzy-filtered list of the current
// screen's controls that focus can jump to directly.
package state

import "github.com/atomicstack/menunav/internal/element"

// Item is one jump target.
type Item struct {
	Label       string
	Description string
	Target      *element.Selectable
}

// Jump tracks the query, matches, cursor and viewport of the jump list.
type Jump struct {
	Full           []Item
	Items          []Item
	Query          string
	QueryCursor    int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewJump returns a jump list over items with an empty query.
func NewJump(items []Item) *Jump {
	j := &Jump{LastCursor: -1}
	j.UpdateItems(items)
	return j
}

// ItemsFor lists every visible, interactable control of elems.
func ItemsFor(elems []*element.Element) []Item {
	items := make([]Item, 0, len(elems))
	for _, e := range elems {
		c := e.Control()
		if c == nil || !c.Visible() || !c.Interactable() {
			continue
		}
		items = append(items, Item{Label: e.Display(), Description: e.Description(), Target: c.Selectable()})
	}
	return items
}

// UpdateItems replaces the candidates and re-applies the query.
func (j *Jump) UpdateItems(items []Item) {
	j.Full = append([]Item(nil), items...)
	j.applyQuery()
}

// Selected returns the item under the cursor.
func (j *Jump) Selected() (Item, bool) {
	if j.Cursor < 0 || j.Cursor >= len(j.Items) {
		return Item{}, false
	}
	return j.Items[j.Cursor], true
}

// IndexOf returns the position of target among the current matches.
func (j *Jump) IndexOf(target *element.Selectable) int {
	for i, item := range j.Items {
		if item.Target == target {
			return i
		}
	}
	return -1
}
