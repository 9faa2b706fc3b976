package screen

import (
	"github.com/atomicstack/menunav/internal/element"
	"github.com/atomicstack/menunav/internal/logging/events"
)

// HistoryMode controls how Show changes the history.
type HistoryMode int

const (
	// Add pushes the new screen on top of the history.
	Add HistoryMode = iota
	// Replace swaps the current screen for the new one.
	Replace
)

// Navigator keeps the stack of shown screens and owns keyboard focus.
type Navigator struct {
	history []Screen
	focus   *element.Selectable
	onEmpty func()
}

// NewNavigator returns a navigator with an empty history.
func NewNavigator() *Navigator {
	return &Navigator{}
}

// OnEmpty registers fn to run when going back empties the history.
func (n *Navigator) OnEmpty(fn func()) {
	n.onEmpty = fn
}

// Current returns the screen on top of the history.
func (n *Navigator) Current() (Screen, bool) {
	if len(n.history) == 0 {
		return nil, false
	}
	return n.history[len(n.history)-1], true
}

// History returns the shown screens, oldest first.
func (n *Navigator) History() []Screen {
	return append([]Screen(nil), n.history...)
}

// Depth returns the number of screens in the history.
func (n *Navigator) Depth() int {
	return len(n.history)
}

// Show makes s the current screen. Showing the current screen again does
// nothing.
func (n *Navigator) Show(s Screen, mode HistoryMode) {
	prev, ok := n.Current()
	if ok && prev == s {
		return
	}
	if ok {
		n.blur()
		prev.base().hide(Forwards)
		events.Screen.Hide(prev.Title(), Forwards.String())
	}
	if mode == Replace && len(n.history) > 0 {
		n.history = n.history[:len(n.history)-1]
	}
	n.history = append(n.history, s)
	s.base().show(Forwards, n)
	n.Select(s.Selection(Forwards))
	events.Screen.Show(s.Title(), Forwards.String(), len(n.history))
}

// GoBack pops count screens, stopping at an empty history.
func (n *Navigator) GoBack(count int) bool {
	remaining := count
	return n.GoBackWhile(func(Screen) bool {
		remaining--
		return remaining >= 0
	})
}

// GoBackTo pops screens until target is current.
func (n *Navigator) GoBackTo(target Screen) bool {
	return n.GoBackWhile(func(s Screen) bool { return s != target })
}

// GoBackWhile pops screens while keep returns true for the current one and
// reports whether anything was popped.
func (n *Navigator) GoBackWhile(pop func(Screen) bool) bool {
	leaving, ok := n.Current()
	if !ok {
		return false
	}
	popped := 0
	for len(n.history) > 0 && pop(n.history[len(n.history)-1]) {
		n.history = n.history[:len(n.history)-1]
		popped++
	}
	if popped == 0 {
		return false
	}

	n.blur()
	leaving.base().hide(Backwards)
	events.Screen.GoBack(leaving.Title(), popped)

	cur, ok := n.Current()
	if !ok {
		if n.onEmpty != nil {
			n.onEmpty()
		}
		return true
	}
	cur.base().show(Backwards, n)
	n.Select(cur.Selection(Backwards))
	events.Screen.Show(cur.Title(), Backwards.String(), len(n.history))
	return true
}

// Focus returns the focused control, or nil.
func (n *Navigator) Focus() *element.Selectable {
	return n.focus
}

// Select moves focus to s.
func (n *Navigator) Select(s *element.Selectable) {
	if n.focus == s {
		return
	}
	n.blur()
	n.focus = s
	if s != nil {
		s.NotifyFocus(true)
	}
}

func (n *Navigator) blur() {
	if n.focus != nil {
		n.focus.NotifyFocus(false)
		n.focus = nil
	}
}

// Move follows the focused control's link in d. It reports false when there
// is no link or the target cannot take focus.
func (n *Navigator) Move(d element.Direction) bool {
	from := n.focus
	if from == nil {
		return false
	}
	to := from.Neighbor(d)
	switch {
	case to == nil:
		events.Nav.Blocked(d.String(), from.Name(), events.NavReasonNoNeighbor)
		return false
	case !to.Control().Visible():
		events.Nav.Blocked(d.String(), from.Name(), events.NavReasonHidden)
		return false
	}
	n.Select(to)
	events.Nav.Move(d.String(), from.Name(), to.Name())
	return true
}

// Flush runs pending layout on the current screen and moves focus off any
// control that can no longer take it.
func (n *Navigator) Flush() bool {
	cur, ok := n.Current()
	if !ok {
		return false
	}
	ran := cur.Flush()
	if n.focus == nil || !n.focus.Control().Visible() || !owns(cur, n.focus) {
		n.Select(cur.Selection(Forwards))
	}
	return ran
}

func owns(s Screen, sel *element.Selectable) bool {
	for _, e := range s.Elements() {
		if c := e.Control(); c != nil && c.Selectable() == sel {
			return true
		}
	}
	return false
}
