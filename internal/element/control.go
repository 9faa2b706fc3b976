package element

import (
	"fmt"

	"github.com/atomicstack/menunav/internal/model"
	"github.com/atomicstack/menunav/internal/signal"
)

// Control is a focusable leaf element. It is always navigable and is its own
// entry point from every direction.
type Control struct {
	*Element
	sel   *Selectable
	owner any

	activate func()
	adjust   func(delta int) bool

	activated    signal.Signal[struct{}]
	interactable signal.Signal[bool]
}

func newControl(text string) *Control {
	c := &Control{Element: newElement(text)}
	c.sel = newSelectable(text, c)
	c.Element.control = c
	return c
}

// Selectable returns the control's focus handle.
func (c *Control) Selectable() *Selectable {
	return c.sel
}

// Owner returns the concrete control (*Button, *Toggle, *Choice, *TextInput).
func (c *Control) Owner() any {
	return c.owner
}

// ClearNeighbor unsets the link in d.
func (c *Control) ClearNeighbor(d Direction) {
	c.sel.setNeighbor(d, nil)
}

// ClearNeighbors unsets every link.
func (c *Control) ClearNeighbors() {
	c.sel.clearNeighbors()
}

// SetNeighbor points the link in d at target.
func (c *Control) SetNeighbor(d Direction, target *Selectable) {
	c.sel.setNeighbor(d, target)
}

// EntrySelectable always returns the control's own selectable.
func (c *Control) EntrySelectable(Direction) (*Selectable, bool) {
	return c.sel, true
}

// DefaultSelectable returns the control's own selectable.
func (c *Control) DefaultSelectable() (*Selectable, bool) {
	return c.sel, true
}

// Interactable reports whether activation is accepted.
func (c *Control) Interactable() bool {
	return c.sel.interactable
}

// SetInteractable enables or disables activation.
func (c *Control) SetInteractable(v bool) {
	if c.sel.interactable == v {
		return
	}
	c.sel.interactable = v
	c.interactable.Emit(v)
	c.refresh()
}

// OnInteractableChanged registers fn for interactable transitions.
func (c *Control) OnInteractableChanged(fn func(bool)) signal.Subscription {
	return c.interactable.Subscribe(fn)
}

// Activate runs the control's action. Hidden or non-interactable controls
// ignore activation.
func (c *Control) Activate() bool {
	if !c.sel.interactable || !c.Visible() {
		return false
	}
	if c.activate != nil {
		c.activate()
	}
	c.activated.Emit(struct{}{})
	c.refresh()
	return true
}

// OnActivate registers fn to run after each accepted activation.
func (c *Control) OnActivate(fn func()) signal.Subscription {
	return c.activated.Subscribe(func(struct{}) { fn() })
}

// Adjustable reports whether the control consumes left/right input itself.
func (c *Control) Adjustable() bool {
	return c.adjust != nil
}

// Adjust moves an adjustable control's value by delta steps.
func (c *Control) Adjust(delta int) bool {
	if c.adjust == nil || !c.sel.interactable || !c.Visible() {
		return false
	}
	moved := c.adjust(delta)
	if moved {
		c.refresh()
	}
	return moved
}

// Button runs OnSubmit when activated.
type Button struct {
	*Control
	OnSubmit func()
}

// NewButton returns a button with the given text.
func NewButton(text string) *Button {
	b := &Button{Control: newControl(text)}
	b.owner = b
	b.activate = func() {
		if b.OnSubmit != nil {
			b.OnSubmit()
		}
	}
	return b
}

// Toggle flips a boolean on activation.
type Toggle struct {
	*Control
	value   bool
	changed signal.Signal[bool]
}

// NewToggle returns a toggle with the given text and initial value.
func NewToggle(text string, value bool) *Toggle {
	t := &Toggle{Control: newControl(text), value: value}
	t.owner = t
	t.activate = func() { t.SetValue(!t.value) }
	t.display = func() string {
		if t.value {
			return t.text + ": On"
		}
		return t.text + ": Off"
	}
	t.syncState()
	return t
}

// Value returns the current value.
func (t *Toggle) Value() bool {
	return t.value
}

// SetValue changes the value and notifies listeners.
func (t *Toggle) SetValue(v bool) {
	if t.value == v {
		return
	}
	t.value = v
	t.syncState()
	t.changed.Emit(v)
	t.refresh()
}

// OnValueChanged registers fn for value changes.
func (t *Toggle) OnValueChanged(fn func(bool)) signal.Subscription {
	return t.changed.Subscribe(fn)
}

func (t *Toggle) syncState() {
	if t.value {
		t.SetState(StateTrue)
	} else {
		t.SetState(StateFalse)
	}
}

// Choice selects a value from a model with left/right input.
type Choice struct {
	*Control
	model model.Choice
}

// NewChoice returns a choice control over m.
func NewChoice(text string, m model.Choice) *Choice {
	c := &Choice{Control: newControl(text), model: m}
	c.owner = c
	c.activate = func() { m.MoveRight() }
	c.adjust = func(delta int) bool {
		moved := false
		for ; delta < 0; delta++ {
			moved = m.MoveLeft() || moved
		}
		for ; delta > 0; delta-- {
			moved = m.MoveRight() || moved
		}
		return moved
	}
	c.display = func() string {
		return fmt.Sprintf("%s: < %s >", c.text, m.DisplayString())
	}
	m.OnChange(c.refresh)
	return c
}

// Model returns the underlying choice model.
func (c *Choice) Model() model.Choice {
	return c.model
}

// TextInput holds free-form text checked by an optional validator.
type TextInput struct {
	*Control
	value     string
	validator func(string) error
	changed   signal.Signal[string]
}

// NewTextInput returns a text input with an initial value. validator may be nil.
func NewTextInput(text, value string, validator func(string) error) (*TextInput, error) {
	in := &TextInput{Control: newControl(text), validator: validator}
	in.owner = in
	in.display = func() string {
		return fmt.Sprintf("%s: [%s]", in.text, in.value)
	}
	if err := in.SetValue(value); err != nil {
		return nil, err
	}
	return in, nil
}

// Value returns the last accepted value.
func (in *TextInput) Value() string {
	return in.value
}

// SetValue validates and stores v. A rejected value leaves the previous one
// in place and marks the input invalid.
func (in *TextInput) SetValue(v string) error {
	if in.validator != nil {
		if err := in.validator(v); err != nil {
			in.SetState(StateInvalid)
			return fmt.Errorf("input %q: %w", in.text, err)
		}
	}
	in.SetState(StateDefault)
	if in.value == v {
		return nil
	}
	in.value = v
	in.changed.Emit(v)
	in.refresh()
	return nil
}

// OnValueChanged registers fn for accepted value changes.
func (in *TextInput) OnValueChanged(fn func(string)) signal.Subscription {
	return in.changed.Subscribe(fn)
}
