package element

import (
	"errors"
	"testing"

	"github.com/atomicstack/menunav/internal/model"
)

func TestLeafInvisibleUntilAttached(t *testing.T) {
	b := NewButton("a")
	if b.Visible() {
		t.Fatalf("expected parentless leaf to be hidden")
	}
	attach(t, b)
	if !b.Visible() {
		t.Fatalf("expected attached leaf to be visible")
	}
	if err := b.AttachTo(newRoot()); !errors.Is(err, ErrAlreadyAttached) {
		t.Fatalf("expected ErrAlreadyAttached, got %v", err)
	}
	b.Detach()
	if b.Visible() {
		t.Fatalf("expected detached leaf to be hidden")
	}
	if err := b.AttachTo(newRoot()); err != nil {
		t.Fatalf("expected reattach after detach to succeed: %v", err)
	}
}

func TestEntityBelongsToOneGroup(t *testing.T) {
	a := NewButton("a")
	first, second := NewVerticalGroup(), NewFreeGroup()
	if err := first.Add(a); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := second.Add(a, Point{}); !errors.Is(err, ErrAlreadyAttached) {
		t.Fatalf("expected ErrAlreadyAttached, got %v", err)
	}
	if second.Len() != 0 {
		t.Fatalf("expected failed add to leave group empty")
	}
	first.Remove(a)
	if err := second.Add(a, Point{}); err != nil {
		t.Fatalf("expected add after removal to succeed: %v", err)
	}
}

func TestSurfacePropagatesToChildren(t *testing.T) {
	surface := newFakeSurface()
	v := NewVerticalGroup()
	a := NewButton("a")
	if err := v.Add(a); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := v.SetSurface(surface); err != nil {
		t.Fatalf("set surface: %v", err)
	}
	if err := v.SetSurface(surface); !errors.Is(err, ErrAlreadyAttached) {
		t.Fatalf("expected ErrAlreadyAttached, got %v", err)
	}
	attach(t, v)

	late := NewLabel("late")
	if err := v.Add(late); err != nil {
		t.Fatalf("add: %v", err)
	}
	wa, wl := surface.widgets[a.Element], surface.widgets[late.Element]
	if wa == nil || wl == nil {
		t.Fatalf("expected widgets for both children")
	}
	if !wa.visible || !wl.visible {
		t.Fatalf("expected widgets to follow hierarchy visibility")
	}

	v.UpdateLayout(Point{X: 1})
	if wl.anchor != (Point{X: 1, Y: -VSpaceMedium}) {
		t.Fatalf("unexpected widget anchor %+v", wl.anchor)
	}

	v.SetVisibleSelf(false)
	if wa.visible || wl.visible {
		t.Fatalf("expected hiding the group to hide widgets")
	}
	v.Remove(a)
	if !wa.released || a.Widget() != nil {
		t.Fatalf("expected removal to release the widget")
	}
}

func TestDispose(t *testing.T) {
	surface := newFakeSurface()
	b := NewButton("a")
	if err := b.SetSurface(surface); err != nil {
		t.Fatalf("set surface: %v", err)
	}
	calls := 0
	b.OnDispose(func() { calls++ })
	b.Dispose()
	b.Dispose()
	if calls != 1 {
		t.Fatalf("expected one dispose callback, got %d", calls)
	}
	late := false
	b.OnDispose(func() { late = true })
	if !late {
		t.Fatalf("expected late subscriber to run immediately")
	}
	if !surface.widgets[b.Element].released {
		t.Fatalf("expected widget released")
	}
	if err := b.SetSurface(surface); err == nil {
		t.Fatalf("expected disposed element to refuse a surface")
	}
}

func TestButtonActivation(t *testing.T) {
	b := NewButton("go")
	submitted := 0
	b.OnSubmit = func() { submitted++ }
	if b.Activate() {
		t.Fatalf("expected hidden button to ignore activation")
	}
	attach(t, b)
	if !b.Activate() || submitted != 1 {
		t.Fatalf("expected activation to submit once, got %d", submitted)
	}
	b.SetInteractable(false)
	if b.Activate() || submitted != 1 {
		t.Fatalf("expected non-interactable button to ignore activation")
	}
}

func TestToggle(t *testing.T) {
	tg := NewToggle("Sound", false)
	attach(t, tg)
	if tg.State() != StateFalse || tg.Display() != "Sound: Off" {
		t.Fatalf("unexpected initial toggle %v %q", tg.State(), tg.Display())
	}
	var seen []bool
	tg.OnValueChanged(func(v bool) { seen = append(seen, v) })
	tg.Activate()
	if !tg.Value() || tg.State() != StateTrue || tg.Display() != "Sound: On" {
		t.Fatalf("expected toggle on, got %v %v %q", tg.Value(), tg.State(), tg.Display())
	}
	tg.SetValue(true)
	if len(seen) != 1 {
		t.Fatalf("expected one change notification, got %v", seen)
	}
}

func TestChoiceAdjust(t *testing.T) {
	m, err := model.NewListChoice([]string{"low", "mid", "high"})
	if err != nil {
		t.Fatalf("choice: %v", err)
	}
	c := NewChoice("Quality", m)
	attach(t, c)
	if !c.Adjustable() {
		t.Fatalf("expected choice to be adjustable")
	}
	if !c.Adjust(-1) || m.Value() != "high" {
		t.Fatalf("expected circular move to high, got %s", m.Value())
	}
	if c.Display() != "Quality: < high >" {
		t.Fatalf("unexpected display %q", c.Display())
	}
	c.Activate()
	if m.Value() != "low" {
		t.Fatalf("expected activation to move right, got %s", m.Value())
	}
	if NewButton("b").Adjustable() {
		t.Fatalf("expected button not to be adjustable")
	}
}

func TestTextInputValidation(t *testing.T) {
	nonEmpty := func(s string) error {
		if s == "" {
			return errors.New("empty")
		}
		return nil
	}
	if _, err := NewTextInput("Name", "", nonEmpty); err == nil {
		t.Fatalf("expected invalid initial value to fail")
	}
	in, err := NewTextInput("Name", "ada", nonEmpty)
	if err != nil {
		t.Fatalf("input: %v", err)
	}
	if err := in.SetValue(""); err == nil {
		t.Fatalf("expected validation error")
	}
	if in.Value() != "ada" || in.State() != StateInvalid {
		t.Fatalf("expected old value kept and invalid state, got %q %v", in.Value(), in.State())
	}
	if err := in.SetValue("grace"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if in.State() != StateDefault || in.Display() != "Name: [grace]" {
		t.Fatalf("unexpected input %v %q", in.State(), in.Display())
	}
}

func TestFocusNotifications(t *testing.T) {
	b := NewButton("a")
	var seen []bool
	id := b.Selectable().OnFocus(func(f bool) { seen = append(seen, f) })
	b.Selectable().NotifyFocus(true)
	b.Selectable().NotifyFocus(true)
	b.Selectable().RemoveOnFocus(id)
	b.Selectable().NotifyFocus(false)
	if len(seen) != 1 || !seen[0] {
		t.Fatalf("unexpected focus notifications %v", seen)
	}
	if b.Selectable().Focused() {
		t.Fatalf("expected focus state to track the last notification")
	}
}
