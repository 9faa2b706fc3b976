// Package collections holds the ordered containers and iteration helpers the
// layout groups are built on.
package collections

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned when an element is already present elsewhere.
var ErrDuplicate = errors.New("element already present")

// ErrIndexOutOfRange is returned for insert positions outside [0, Len].
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexedList is an ordered list of unique elements with constant-time
// containment checks.
type IndexedList[T comparable] struct {
	items  []T
	lookup map[T]int
}

// NewIndexedList returns an empty list.
func NewIndexedList[T comparable]() *IndexedList[T] {
	return &IndexedList[T]{lookup: make(map[T]int)}
}

// Len returns the number of elements.
func (l *IndexedList[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i.
func (l *IndexedList[T]) At(i int) T {
	return l.items[i]
}

// Items returns a copy of the elements in order.
func (l *IndexedList[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// Contains reports whether v is in the list.
func (l *IndexedList[T]) Contains(v T) bool {
	_, ok := l.lookup[v]
	return ok
}

// IndexOf returns the position of v, or -1.
func (l *IndexedList[T]) IndexOf(v T) int {
	if idx, ok := l.lookup[v]; ok {
		return idx
	}
	return -1
}

// Add appends v. Adding an element that is already present fails.
func (l *IndexedList[T]) Add(v T) error {
	if _, ok := l.lookup[v]; ok {
		return ErrDuplicate
	}
	l.items = append(l.items, v)
	l.lookup[v] = len(l.items) - 1
	return nil
}

// Insert places v at index. Inserting an element at its current index is a
// no-op; inserting one that lives elsewhere fails.
func (l *IndexedList[T]) Insert(index int, v T) error {
	if idx, ok := l.lookup[v]; ok {
		if idx == index {
			return nil
		}
		return ErrDuplicate
	}
	if index < 0 || index > len(l.items) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(l.items))
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = v
	l.reindex(index)
	return nil
}

// Remove deletes v and reports whether it was present.
func (l *IndexedList[T]) Remove(v T) bool {
	idx, ok := l.lookup[v]
	if !ok {
		return false
	}
	l.RemoveAt(idx)
	return true
}

// RemoveAt deletes the element at index. Out of range indexes report false.
func (l *IndexedList[T]) RemoveAt(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	v := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	delete(l.lookup, v)
	l.reindex(index)
	return v, true
}

func (l *IndexedList[T]) reindex(from int) {
	for i := from; i < len(l.items); i++ {
		l.lookup[l.items[i]] = i
	}
}
