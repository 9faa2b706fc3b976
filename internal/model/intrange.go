package model

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/menunav/internal/signal"
)

// IntRange steps one integer at a time between two inclusive bounds.
type IntRange struct {
	min, max int
	value    int
	changed  signal.Signal[int]

	// Circular wraps past either bound.
	Circular bool
	// DisplayFn overrides the decimal rendering of the value.
	DisplayFn func(int) string
}

// NewIntRange returns a model over [min, max] with value clamped into range.
func NewIntRange(min, max, value int) (*IntRange, error) {
	r := &IntRange{}
	if err := r.reset(min, max, value); err != nil {
		return nil, err
	}
	return r, nil
}

// Min returns the lower bound.
func (r *IntRange) Min() int { return r.min }

// Max returns the upper bound.
func (r *IntRange) Max() int { return r.max }

// Value returns the selected integer.
func (r *IntRange) Value() int { return r.value }

// ResetParams changes the bounds and value together, notifying only if the
// value moved.
func (r *IntRange) ResetParams(min, max, value int) error {
	prev := r.value
	if err := r.reset(min, max, value); err != nil {
		return err
	}
	if r.value != prev {
		r.changed.Emit(r.value)
	}
	return nil
}

func (r *IntRange) reset(min, max, value int) error {
	if max < min {
		return fmt.Errorf("%w: min %d > max %d", ErrOutOfRange, min, max)
	}
	r.min, r.max = min, max
	switch {
	case value < min:
		value = min
	case value > max:
		value = max
	}
	r.value = value
	return nil
}

// SetValue selects value when it lies within the bounds.
func (r *IntRange) SetValue(value int) bool {
	if value == r.value {
		return true
	}
	if value < r.min || value > r.max {
		return false
	}
	r.value = value
	r.changed.Emit(value)
	return true
}

// MoveLeft decrements the value.
func (r *IntRange) MoveLeft() bool {
	switch {
	case r.value > r.min:
		r.value--
	case r.Circular && r.min != r.max:
		r.value = r.max
	default:
		return false
	}
	r.changed.Emit(r.value)
	return true
}

// MoveRight increments the value.
func (r *IntRange) MoveRight() bool {
	switch {
	case r.value < r.max:
		r.value++
	case r.Circular && r.min != r.max:
		r.value = r.min
	default:
		return false
	}
	r.changed.Emit(r.value)
	return true
}

// DisplayString renders the value.
func (r *IntRange) DisplayString() string {
	if r.DisplayFn != nil {
		return r.DisplayFn(r.value)
	}
	return strconv.Itoa(r.value)
}

// OnValueChanged registers fn for value changes.
func (r *IntRange) OnValueChanged(fn func(int)) signal.Subscription {
	return r.changed.Subscribe(fn)
}

// OnChange registers fn for value changes.
func (r *IntRange) OnChange(fn func()) signal.Subscription {
	return r.changed.Subscribe(func(int) { fn() })
}
