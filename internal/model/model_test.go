package model

import (
	"errors"
	"testing"
)

func TestListChoiceRequiresValues(t *testing.T) {
	if _, err := NewListChoice[string](nil); !errors.Is(err, ErrEmptyValues) {
		t.Fatalf("expected ErrEmptyValues, got %v", err)
	}
}

func TestListChoiceMovesCircularly(t *testing.T) {
	c, err := NewListChoice([]string{"north", "east", "south"})
	if err != nil {
		t.Fatal(err)
	}
	changes := 0
	c.OnChange(func() { changes++ })
	if !c.MoveLeft() || c.Value() != "south" {
		t.Fatalf("expected wrap to south, got %q", c.Value())
	}
	if !c.MoveRight() || c.Value() != "north" {
		t.Fatalf("expected wrap back to north, got %q", c.Value())
	}
	if changes != 2 {
		t.Fatalf("expected 2 change notifications, got %d", changes)
	}
}

func TestListChoiceHaltsWhenNotCircular(t *testing.T) {
	c, _ := NewListChoice([]int{1, 2})
	c.Circular = false
	if c.MoveLeft() {
		t.Fatalf("expected no movement past the start")
	}
	c.MoveRight()
	if c.MoveRight() {
		t.Fatalf("expected no movement past the end")
	}
	if c.Index() != 1 {
		t.Fatalf("expected index 1, got %d", c.Index())
	}
}

func TestListChoiceSetValueAndDisplay(t *testing.T) {
	c, _ := NewListChoice([]int{10, 20, 30})
	if c.SetValue(99) {
		t.Fatalf("expected unknown value to be rejected")
	}
	if !c.SetValue(20) || c.Index() != 1 {
		t.Fatalf("expected index 1 after SetValue(20)")
	}
	c.DisplayFn = func(i, v int) string { return "#" + string(rune('0'+i)) }
	if got := c.DisplayString(); got != "#1" {
		t.Fatalf("unexpected display %q", got)
	}
	if err := c.UpdateValues([]int{5}, 3); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestIntRangeResetParamsClamps(t *testing.T) {
	r, err := NewIntRange(0, 4, 9)
	if err != nil {
		t.Fatal(err)
	}
	if r.Value() != 4 {
		t.Fatalf("expected clamp to 4, got %d", r.Value())
	}
	var got []int
	r.OnValueChanged(func(v int) { got = append(got, v) })
	if err := r.ResetParams(0, 2, r.Value()); err != nil {
		t.Fatal(err)
	}
	if r.Value() != 2 || len(got) != 1 {
		t.Fatalf("expected clamp to 2 with one notification, got %d %v", r.Value(), got)
	}
	if err := r.ResetParams(0, 2, 2); err != nil || len(got) != 1 {
		t.Fatalf("expected no notification without a value change")
	}
	if _, err := NewIntRange(3, 1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for inverted bounds, got %v", err)
	}
}

func TestIntRangeCircular(t *testing.T) {
	r, _ := NewIntRange(0, 2, 2)
	if r.MoveRight() {
		t.Fatalf("expected non-circular range to halt")
	}
	r.Circular = true
	if !r.MoveRight() || r.Value() != 0 {
		t.Fatalf("expected wrap to 0, got %d", r.Value())
	}
	r.DisplayFn = func(v int) string { return "page " + string(rune('1'+v)) }
	if r.DisplayString() != "page 1" {
		t.Fatalf("unexpected display %q", r.DisplayString())
	}
}
