package ui

import "github.com/atomicstack/menunav/internal/element"

// surface keeps one widget per element so the view draws from the anchor
// and visibility the element tree last pushed.
type surface struct {
	widgets  map[*element.Element]*widget
	revision int
}

type widget struct {
	s       *surface
	elem    *element.Element
	anchor  element.Point
	visible bool
}

func newSurface() *surface {
	return &surface{widgets: make(map[*element.Element]*widget)}
}

// NewWidget implements element.Surface.
func (s *surface) NewWidget(e *element.Element) element.Widget {
	w := &widget{s: s, elem: e}
	s.widgets[e] = w
	s.revision++
	return w
}

func (s *surface) widget(e *element.Element) (*widget, bool) {
	w, ok := s.widgets[e]
	return w, ok
}

func (w *widget) SetAnchor(p element.Point) {
	w.anchor = p
	w.s.revision++
}

func (w *widget) SetVisible(visible bool) {
	w.visible = visible
	w.s.revision++
}

func (w *widget) Refresh() {
	w.s.revision++
}

func (w *widget) Release() {
	if w.s.widgets[w.elem] == w {
		delete(w.s.widgets, w.elem)
	}
	w.s.revision++
}
