// Package model holds the value models behind choice controls.
package model

import (
	"errors"
	"fmt"

	"github.com/atomicstack/menunav/internal/signal"
)

// ErrEmptyValues is returned when a list choice would hold no values.
var ErrEmptyValues = errors.New("choice values cannot be empty")

// ErrOutOfRange is returned for indexes or values outside a model's domain.
var ErrOutOfRange = errors.New("value out of range")

// Choice is a selector moved with left/right input and displayed as text.
type Choice interface {
	MoveLeft() bool
	MoveRight() bool
	DisplayString() string
	OnChange(fn func()) signal.Subscription
}

// ListChoice chooses one value from a finite list of unique values.
type ListChoice[T comparable] struct {
	values  []T
	index   int
	changed signal.Signal[T]

	// Circular makes the list wrap at both ends instead of halting.
	Circular bool
	// DisplayFn overrides the default fmt rendering of the selected value.
	DisplayFn func(index int, value T) string
}

// NewListChoice copies values into a new circular model selecting the first.
func NewListChoice[T comparable](values []T) (*ListChoice[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyValues
	}
	return &ListChoice[T]{values: append([]T(nil), values...), Circular: true}, nil
}

// Values returns a copy of the selectable values.
func (c *ListChoice[T]) Values() []T {
	return append([]T(nil), c.values...)
}

// Index returns the selected position.
func (c *ListChoice[T]) Index() int {
	return c.index
}

// Value returns the selected value.
func (c *ListChoice[T]) Value() T {
	return c.values[c.index]
}

// SetIndex selects the value at index.
func (c *ListChoice[T]) SetIndex(index int) error {
	if index < 0 || index >= len(c.values) {
		return fmt.Errorf("%w: index %d not in [0, %d)", ErrOutOfRange, index, len(c.values))
	}
	if index == c.index {
		return nil
	}
	c.index = index
	c.changed.Emit(c.Value())
	return nil
}

// SetValue selects value and reports whether it is part of the list.
func (c *ListChoice[T]) SetValue(value T) bool {
	for i, v := range c.values {
		if v == value {
			_ = c.SetIndex(i)
			return true
		}
	}
	return false
}

// UpdateValues swaps the value list and selection atomically.
func (c *ListChoice[T]) UpdateValues(values []T, index int) error {
	if len(values) == 0 {
		return ErrEmptyValues
	}
	if index < 0 || index >= len(values) {
		return fmt.Errorf("%w: index %d not in [0, %d)", ErrOutOfRange, index, len(values))
	}
	c.values = append([]T(nil), values...)
	c.index = index
	c.changed.Emit(c.Value())
	return nil
}

// MoveLeft selects the previous value.
func (c *ListChoice[T]) MoveLeft() bool {
	return c.move(-1)
}

// MoveRight selects the next value.
func (c *ListChoice[T]) MoveRight() bool {
	return c.move(1)
}

func (c *ListChoice[T]) move(delta int) bool {
	n := len(c.values)
	next := c.index + delta
	if next < 0 {
		if !c.Circular {
			return false
		}
		next = next%n + n
	}
	if next >= n {
		if !c.Circular {
			return false
		}
		next %= n
	}
	if next == c.index {
		return false
	}
	return c.SetIndex(next) == nil
}

// DisplayString renders the selected value.
func (c *ListChoice[T]) DisplayString() string {
	if c.DisplayFn != nil {
		return c.DisplayFn(c.index, c.Value())
	}
	return fmt.Sprint(c.Value())
}

// OnValueChanged registers fn for selection changes.
func (c *ListChoice[T]) OnValueChanged(fn func(T)) signal.Subscription {
	return c.changed.Subscribe(fn)
}

// OnChange registers fn for selection changes.
func (c *ListChoice[T]) OnChange(fn func()) signal.Subscription {
	return c.changed.Subscribe(func(T) { fn() })
}
