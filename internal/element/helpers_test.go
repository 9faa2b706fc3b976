package element

import (
	"testing"

	"github.com/atomicstack/menunav/internal/visibility"
)

type root struct {
	vis *visibility.Manager
}

func newRoot() *root {
	return &root{vis: visibility.New(true)}
}

func (r *root) Visibility() *visibility.Manager {
	return r.vis
}

type fakeWidget struct {
	anchor    Point
	visible   bool
	refreshes int
	released  bool
}

func (w *fakeWidget) SetAnchor(p Point) { w.anchor = p }
func (w *fakeWidget) SetVisible(visible bool) { w.visible = visible }
func (w *fakeWidget) Refresh() { w.refreshes++ }
func (w *fakeWidget) Release() { w.released = true }

type fakeSurface struct {
	widgets map[*Element]*fakeWidget
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{widgets: make(map[*Element]*fakeWidget)}
}

func (s *fakeSurface) NewWidget(e *Element) Widget {
	w := &fakeWidget{}
	s.widgets[e] = w
	return w
}

func buttons(names ...string) []*Button {
	out := make([]*Button, len(names))
	for i, n := range names {
		out[i] = NewButton(n)
	}
	return out
}

func attach(t *testing.T, e Entity) {
	t.Helper()
	if err := e.AttachTo(newRoot()); err != nil {
		t.Fatalf("attach: %v", err)
	}
}

func mustEntry(t *testing.T, n Navigable, d Direction) *Selectable {
	t.Helper()
	s, ok := n.EntrySelectable(d)
	if !ok {
		t.Fatalf("expected entry selectable for %v", d)
	}
	return s
}

func expectNeighbor(t *testing.T, from *Button, d Direction, want *Button) {
	t.Helper()
	got := from.Selectable().Neighbor(d)
	if want == nil {
		if got != nil {
			t.Fatalf("%s %v: expected no neighbor, got %s", from.Text(), d, got)
		}
		return
	}
	if got != want.Selectable() {
		t.Fatalf("%s %v: expected %s, got %v", from.Text(), d, want.Text(), got)
	}
}

// snapshot captures every selectable's links so layouts can be compared.
func snapshot(entity Entity) map[*Selectable][len(Directions)]*Selectable {
	out := make(map[*Selectable][len(Directions)]*Selectable)
	for _, e := range entity.Elements() {
		if c := e.Control(); c != nil {
			out[c.Selectable()] = c.Selectable().neighbors
		}
	}
	return out
}
