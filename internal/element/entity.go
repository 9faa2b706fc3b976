package element

import (
	"github.com/atomicstack/menunav/internal/signal"
	"github.com/atomicstack/menunav/internal/visibility"
)

// Parent is anything an entity can be logically attached below.
type Parent interface {
	Visibility() *visibility.Manager
}

// Widget is the renderer-side handle backing one leaf element.
type Widget interface {
	SetAnchor(p Point)
	SetVisible(visible bool)
	// Refresh asks the renderer to redraw text, value or state.
	Refresh()
	// Release tears the widget down; the element no longer uses it.
	Release()
}

// Surface is the rendering container leaf widgets are created in.
type Surface interface {
	NewWidget(e *Element) Widget
}

// Entity is anything that can occupy layout space: a leaf control or a group.
type Entity interface {
	Parent

	// VisibleSelf reports whether the entity wants to be shown.
	VisibleSelf() bool
	// SetVisibleSelf shows or hides the entity and notifies change listeners.
	SetVisibleSelf(visible bool)
	// Visible reports visibility after folding in every ancestor.
	Visible() bool

	// Elements returns every leaf element, recursively, in layout order.
	Elements() []*Element

	// UpdateLayout anchors the entity at origin. Implementations clear their
	// outward navigation, lay out children depth-first, then relink the
	// current level.
	UpdateLayout(origin Point)

	// SetSurface assigns the rendering surface. It can only be set once until
	// ClearSurface runs.
	SetSurface(s Surface) error
	ClearSurface()

	// AttachTo links the entity below parent. It fails if a parent is set.
	AttachTo(parent Parent) error
	// Detach clears both the logical and the surface parent.
	Detach()

	// OnChange registers fn for layout-affecting changes.
	OnChange(fn func()) signal.Subscription
	RemoveOnChange(id signal.Subscription)
}

// link is a parent slot that can be written once until cleared.
type link[T comparable] struct {
	value T
	set   bool
}

func (l *link[T]) Set(v T) error {
	if l.set {
		return ErrAlreadyAttached
	}
	l.value = v
	l.set = true
	return nil
}

func (l *link[T]) Get() (T, bool) {
	return l.value, l.set
}

func (l *link[T]) Clear() {
	var zero T
	l.value = zero
	l.set = false
}
