// Package visibility tracks hierarchical show/hide state for menu entities.
//
// A Manager only knows its single parent. Propagation is push-based: a child
// subscribes to its parent's change signal, so a manager never holds a list
// of descendants.
package visibility

import (
	"errors"

	"github.com/atomicstack/menunav/internal/signal"
)

// ErrParentAlreadySet is returned when SetParent is called on a manager that
// already has a parent.
var ErrParentAlreadySet = errors.New("visibility parent already set")

// Manager derives VisibleInHierarchy from VisibleSelf and an optional parent.
type Manager struct {
	defaultVisible bool
	visibleSelf    bool
	inHierarchy    bool

	parent    *Manager
	parentSub signal.Subscription

	changed signal.Signal[bool]
}

// New returns a manager that is visible by itself. defaultVisible is the
// visibility used while the manager has no parent.
func New(defaultVisible bool) *Manager {
	return &Manager{
		defaultVisible: defaultVisible,
		visibleSelf:    true,
		inHierarchy:    defaultVisible,
	}
}

// VisibleSelf reports whether this node wants to be shown.
func (m *Manager) VisibleSelf() bool {
	return m.visibleSelf
}

// VisibleInHierarchy reports visibility after folding in every ancestor.
func (m *Manager) VisibleInHierarchy() bool {
	return m.inHierarchy
}

// SetVisibleSelf updates the node's own visibility and reports whether it
// changed.
func (m *Manager) SetVisibleSelf(visible bool) bool {
	if m.visibleSelf == visible {
		return false
	}
	m.visibleSelf = visible
	m.recompute()
	return true
}

// Parent returns the current parent, or nil.
func (m *Manager) Parent() *Manager {
	return m.parent
}

// SetParent links m below parent. A manager accepts one parent at a time;
// ClearParent must run before it can be linked elsewhere.
func (m *Manager) SetParent(parent *Manager) error {
	if m.parent != nil {
		return ErrParentAlreadySet
	}
	if parent == nil {
		return errors.New("visibility parent is nil")
	}
	m.parent = parent
	m.parentSub = parent.changed.Subscribe(m.onParentChanged)
	m.recompute()
	return nil
}

// ClearParent detaches m from its parent, falling back to the default
// visibility.
func (m *Manager) ClearParent() {
	if m.parent == nil {
		return
	}
	m.parent.changed.Unsubscribe(m.parentSub)
	m.parent = nil
	m.parentSub = 0
	m.recompute()
}

// Subscribe registers fn for VisibleInHierarchy transitions.
func (m *Manager) Subscribe(fn func(visible bool)) signal.Subscription {
	return m.changed.Subscribe(fn)
}

// Unsubscribe removes a handler added with Subscribe.
func (m *Manager) Unsubscribe(id signal.Subscription) {
	m.changed.Unsubscribe(id)
}

func (m *Manager) onParentChanged(bool) {
	m.recompute()
}

func (m *Manager) recompute() {
	parentVisible := m.defaultVisible
	if m.parent != nil {
		parentVisible = m.parent.inHierarchy
	}
	next := m.visibleSelf && parentVisible
	if next == m.inHierarchy {
		return
	}
	m.inHierarchy = next
	m.changed.Emit(next)
}
