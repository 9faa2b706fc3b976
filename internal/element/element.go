package element

import (
	"fmt"

	"github.com/atomicstack/menunav/internal/signal"
	"github.com/atomicstack/menunav/internal/visibility"
)

// Element is an atomic leaf occupying layout space. Leaves are invisible
// until attached below a visible parent.
type Element struct {
	text        string
	description string
	state       State
	anchor      Point

	vis     *visibility.Manager
	parent  link[Parent]
	surface link[Surface]
	widget  Widget

	control *Control
	display func() string

	changed      signal.Signal[struct{}]
	stateChanged signal.Signal[State]

	disposed  bool
	onDispose []func()
}

func newElement(text string) *Element {
	e := &Element{text: text, vis: visibility.New(false)}
	e.vis.Subscribe(func(visible bool) {
		if e.widget != nil {
			e.widget.SetVisible(visible)
		}
	})
	return e
}

// Text returns the element's primary text.
func (e *Element) Text() string {
	return e.text
}

// SetText replaces the primary text.
func (e *Element) SetText(text string) {
	if e.text == text {
		return
	}
	e.text = text
	e.refresh()
}

// Description returns the secondary text shown alongside the element.
func (e *Element) Description() string {
	return e.description
}

// SetDescription replaces the secondary text.
func (e *Element) SetDescription(text string) {
	if e.description == text {
		return
	}
	e.description = text
	e.refresh()
}

// Display returns the text the renderer should show, including any value.
func (e *Element) Display() string {
	if e.display != nil {
		return e.display()
	}
	return e.text
}

// State returns the semantic state.
func (e *Element) State() State {
	return e.state
}

// SetState changes the semantic state and notifies listeners.
func (e *Element) SetState(s State) {
	if e.state == s {
		return
	}
	e.state = s
	e.stateChanged.Emit(s)
	e.refresh()
}

// OnStateChanged registers fn for state transitions.
func (e *Element) OnStateChanged(fn func(State)) signal.Subscription {
	return e.stateChanged.Subscribe(fn)
}

// Control returns the control owning this element, or nil for plain labels.
func (e *Element) Control() *Control {
	return e.control
}

// Anchor returns the position assigned by the last layout pass.
func (e *Element) Anchor() Point {
	return e.anchor
}

// Widget returns the renderer handle, or nil while no surface is set.
func (e *Element) Widget() Widget {
	return e.widget
}

// Visibility returns the element's visibility manager.
func (e *Element) Visibility() *visibility.Manager {
	return e.vis
}

// VisibleSelf reports whether the element wants to be shown.
func (e *Element) VisibleSelf() bool {
	return e.vis.VisibleSelf()
}

// SetVisibleSelf shows or hides the element.
func (e *Element) SetVisibleSelf(visible bool) {
	if e.vis.SetVisibleSelf(visible) {
		e.changed.Emit(struct{}{})
	}
}

// Visible reports visibility in hierarchy.
func (e *Element) Visible() bool {
	return e.vis.VisibleInHierarchy()
}

// Elements returns the element itself.
func (e *Element) Elements() []*Element {
	return []*Element{e}
}

// UpdateLayout anchors the element at origin.
func (e *Element) UpdateLayout(origin Point) {
	e.anchor = origin
	if e.control != nil {
		e.control.sel.clearNeighbors()
	}
	if e.widget != nil {
		e.widget.SetAnchor(origin)
	}
}

// SetSurface creates the element's widget on s.
func (e *Element) SetSurface(s Surface) error {
	if s == nil {
		return fmt.Errorf("set surface on %q: nil surface", e.text)
	}
	if e.disposed {
		return fmt.Errorf("set surface on %q: element disposed", e.text)
	}
	if err := e.surface.Set(s); err != nil {
		return fmt.Errorf("set surface on %q: %w", e.text, err)
	}
	e.widget = s.NewWidget(e)
	if e.widget != nil {
		e.widget.SetAnchor(e.anchor)
		e.widget.SetVisible(e.Visible())
	}
	return nil
}

// ClearSurface releases the widget.
func (e *Element) ClearSurface() {
	if e.widget != nil {
		e.widget.Release()
		e.widget = nil
	}
	e.surface.Clear()
}

// AttachTo links the element's visibility below parent.
func (e *Element) AttachTo(parent Parent) error {
	if parent == nil {
		return fmt.Errorf("attach %q: nil parent", e.text)
	}
	if err := e.parent.Set(parent); err != nil {
		return fmt.Errorf("attach %q: %w", e.text, err)
	}
	if err := e.vis.SetParent(parent.Visibility()); err != nil {
		e.parent.Clear()
		return fmt.Errorf("attach %q: %w", e.text, err)
	}
	return nil
}

// Detach clears both parents, which leaves the element invisible.
func (e *Element) Detach() {
	e.vis.ClearParent()
	e.parent.Clear()
	e.ClearSurface()
}

// OnChange registers fn for layout-affecting changes.
func (e *Element) OnChange(fn func()) signal.Subscription {
	return e.changed.Subscribe(func(struct{}) { fn() })
}

// RemoveOnChange removes a handler registered with OnChange.
func (e *Element) RemoveOnChange(id signal.Subscription) {
	e.changed.Unsubscribe(id)
}

// OnDispose registers fn to run once when the element is disposed. If it
// already was, fn runs immediately.
func (e *Element) OnDispose(fn func()) {
	if e.disposed {
		fn()
		return
	}
	e.onDispose = append(e.onDispose, fn)
}

// Disposed reports whether Dispose has run.
func (e *Element) Disposed() bool {
	return e.disposed
}

// Dispose detaches the element and releases its widget. It is idempotent.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.Detach()
	handlers := e.onDispose
	e.onDispose = nil
	for _, fn := range handlers {
		fn()
	}
}

func (e *Element) refresh() {
	if e.widget != nil {
		e.widget.Refresh()
	}
}

// Label is a non-navigable text element.
type Label struct {
	*Element
}

// NewLabel returns a text label.
func NewLabel(text string) *Label {
	return &Label{Element: newElement(text)}
}
