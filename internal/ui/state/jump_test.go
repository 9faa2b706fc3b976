package state

import (
	"testing"

	"github.com/atomicstack/menunav/internal/element"
	"github.com/atomicstack/menunav/internal/visibility"
)

func newTestJump(labels ...string) *Jump {
	items := make([]Item, len(labels))
	for i, label := range labels {
		items[i] = Item{Label: label}
	}
	return NewJump(items)
}

func labels(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func TestSetQueryTracksCursorAndRestoresPosition(t *testing.T) {
	j := newTestJump("Play", "Options", "Quit")
	j.Cursor = 2
	j.SetQuery("opt", 3)

	if got := labels(j.Items); len(got) != 1 || got[0] != "Options" {
		t.Fatalf("expected only Options, got %v", got)
	}
	if j.Cursor != 0 {
		t.Fatalf("expected cursor on the match, got %d", j.Cursor)
	}

	j.SetQuery("", 0)
	if j.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", j.Cursor)
	}
	if j.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", j.LastCursor)
	}
}

func TestInsertAndDeleteQueryText(t *testing.T) {
	j := newTestJump("alpha")

	if !j.InsertText("ab") {
		t.Fatal("expected insert")
	}
	j.QueryCursor = 1
	j.InsertText("z")
	if j.Query != "azb" || j.QueryCursor != 2 {
		t.Fatalf("unexpected query state %q/%d", j.Query, j.QueryCursor)
	}
	if !j.DeleteRuneBackward() || j.Query != "ab" || j.QueryCursor != 1 {
		t.Fatalf("unexpected query after delete %q/%d", j.Query, j.QueryCursor)
	}
	j.QueryCursor = 0
	if j.DeleteRuneBackward() {
		t.Fatal("expected no delete at start")
	}
	if j.InsertText("") {
		t.Fatal("expected empty insert to be ignored")
	}
}

func TestQueryWordEditing(t *testing.T) {
	j := newTestJump("x")
	j.SetQuery("big red button", len("big red button"))

	if !j.MoveQueryCursorWordBackward() || j.QueryCursor != len("big red ") {
		t.Fatalf("expected cursor at last word, got %d", j.QueryCursor)
	}
	if !j.MoveQueryCursorWordForward() || j.QueryCursor != len("big red button") {
		t.Fatalf("expected cursor at end, got %d", j.QueryCursor)
	}
	if !j.DeleteWordBackward() || j.Query != "big red " {
		t.Fatalf("expected last word deleted, got %q", j.Query)
	}
	if !j.MoveQueryCursor(-100) || j.QueryCursor != 0 {
		t.Fatalf("expected clamp to start, got %d", j.QueryCursor)
	}
	if j.MoveQueryCursor(-1) {
		t.Fatal("expected no move before start")
	}
}

func TestFilterItemsFallsBackToDescription(t *testing.T) {
	items := []Item{
		{Label: "Sound", Description: "audio output"},
		{Label: "Name"},
	}
	if got := labels(FilterItems(items, "sd")); len(got) != 1 || got[0] != "Sound" {
		t.Fatalf("expected fuzzy match on Sound, got %v", got)
	}
	if got := labels(FilterItems(items, "output")); len(got) != 1 || got[0] != "Sound" {
		t.Fatalf("expected description match, got %v", got)
	}
	if got := FilterItems(items, "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", labels(got))
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	items := []Item{{Label: "Level 10"}, {Label: "Level 1"}, {Label: "Back"}}
	if got := BestMatchIndex(items, "level 1"); got != 1 {
		t.Fatalf("expected exact match 1, got %d", got)
	}
	if got := BestMatchIndex(items, "ba"); got != 2 {
		t.Fatalf("expected prefix match 2, got %d", got)
	}
	if got := BestMatchIndex(nil, "x"); got != -1 {
		t.Fatalf("expected -1 for no items, got %d", got)
	}
}

func TestCursorMovement(t *testing.T) {
	j := newTestJump("a", "b", "c", "d", "e")
	if !j.MoveCursorEnd() || j.Cursor != 4 {
		t.Fatalf("expected end, got %d", j.Cursor)
	}
	if j.MoveCursor(1) {
		t.Fatal("expected no move past end")
	}
	j.EnsureCursorVisible(2)
	if j.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", j.ViewportOffset)
	}
	if got := labels(j.Visible(2)); got[0] != "d" || got[1] != "e" {
		t.Fatalf("unexpected window %v", got)
	}
	if !j.MoveCursorHome() || j.Cursor != 0 {
		t.Fatalf("expected home, got %d", j.Cursor)
	}
	j.EnsureCursorVisible(2)
	if j.ViewportOffset != 0 {
		t.Fatalf("expected offset 0, got %d", j.ViewportOffset)
	}

	empty := newTestJump()
	if empty.MoveCursor(1) {
		t.Fatal("expected no movement in empty list")
	}
	if _, ok := empty.Selected(); ok {
		t.Fatal("expected no selection")
	}
}

type rootParent struct{ vis *visibility.Manager }

func (r rootParent) Visibility() *visibility.Manager { return r.vis }

func TestItemsForSkipsUnusableControls(t *testing.T) {
	group := element.NewVerticalGroup()
	a, b, c := element.NewButton("A"), element.NewButton("B"), element.NewButton("C")
	label := element.NewLabel("L")
	if err := group.AddRange(a, label, b, c); err != nil {
		t.Fatal(err)
	}
	if got := ItemsFor(group.Elements()); len(got) != 0 {
		t.Fatalf("expected nothing visible while detached, got %v", labels(got))
	}

	if err := group.AttachTo(rootParent{vis: visibility.New(true)}); err != nil {
		t.Fatal(err)
	}
	b.SetInteractable(false)
	c.SetVisibleSelf(false)

	items := ItemsFor(group.Elements())
	if len(items) != 1 || items[0].Target != a.Selectable() {
		t.Fatalf("expected only A, got %v", labels(items))
	}
}
