package element

import "github.com/atomicstack/menunav/internal/signal"

// Selectable is the focus target a neighbor link points at. Every control
// owns exactly one.
type Selectable struct {
	name         string
	neighbors    [len(Directions)]*Selectable
	interactable bool
	focused      bool
	control      *Control
	focus        signal.Signal[bool]
}

func newSelectable(name string, control *Control) *Selectable {
	return &Selectable{name: name, interactable: true, control: control}
}

// Name returns the owning control's text at construction time.
func (s *Selectable) Name() string {
	return s.name
}

// Control returns the owning control.
func (s *Selectable) Control() *Control {
	return s.control
}

// Neighbor returns the selectable that receives focus when moving in d, or nil.
func (s *Selectable) Neighbor(d Direction) *Selectable {
	return s.neighbors[d.slot()]
}

// Interactable reports whether activation is accepted.
func (s *Selectable) Interactable() bool {
	return s.interactable
}

// Focused reports the last focus state delivered by the renderer.
func (s *Selectable) Focused() bool {
	return s.focused
}

// NotifyFocus is called by the renderer when the control gains or loses focus.
func (s *Selectable) NotifyFocus(focused bool) {
	if s.focused == focused {
		return
	}
	s.focused = focused
	s.focus.Emit(focused)
}

// OnFocus registers fn for focus transitions.
func (s *Selectable) OnFocus(fn func(focused bool)) signal.Subscription {
	return s.focus.Subscribe(fn)
}

// RemoveOnFocus removes a handler registered with OnFocus.
func (s *Selectable) RemoveOnFocus(id signal.Subscription) {
	s.focus.Unsubscribe(id)
}

func (s *Selectable) setNeighbor(d Direction, target *Selectable) {
	s.neighbors[d.slot()] = target
}

func (s *Selectable) clearNeighbors() {
	s.neighbors = [len(Directions)]*Selectable{}
}

func (s *Selectable) String() string {
	return s.name
}
