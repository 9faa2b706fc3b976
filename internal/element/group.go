package element

import (
	"fmt"

	"github.com/atomicstack/menunav/internal/signal"
	"github.com/atomicstack/menunav/internal/visibility"
)

// layout is implemented by each concrete group for the parts that differ.
type layout interface {
	// children returns every child entity in layout order.
	children() []Entity
	// exits returns the children whose outward link in d belongs to the group.
	exits(d Direction) []Navigable
}

// group carries the bookkeeping shared by every group type: visibility,
// parent slots, child adoption and change forwarding.
type group struct {
	impl    layout
	vis     *visibility.Manager
	parent  link[Parent]
	surface link[Surface]

	changed   signal.Signal[struct{}]
	childSubs map[Entity]signal.Subscription
}

func newGroup(impl layout) group {
	return group{
		impl:      impl,
		vis:       visibility.New(false),
		childSubs: make(map[Entity]signal.Subscription),
	}
}

// Visibility returns the group's visibility manager.
func (g *group) Visibility() *visibility.Manager {
	return g.vis
}

// VisibleSelf reports whether the group wants to be shown.
func (g *group) VisibleSelf() bool {
	return g.vis.VisibleSelf()
}

// SetVisibleSelf shows or hides the group and everything below it.
func (g *group) SetVisibleSelf(visible bool) {
	if g.vis.SetVisibleSelf(visible) {
		g.notify()
	}
}

// Visible reports visibility in hierarchy.
func (g *group) Visible() bool {
	return g.vis.VisibleInHierarchy()
}

// Elements returns every leaf element below the group in layout order.
func (g *group) Elements() []*Element {
	var out []*Element
	for _, child := range g.impl.children() {
		out = append(out, child.Elements()...)
	}
	return out
}

// ClearNeighbor clears the outward link in d on every exit child.
func (g *group) ClearNeighbor(d Direction) {
	for _, n := range g.impl.exits(d) {
		n.ClearNeighbor(d)
	}
}

// ClearNeighbors clears the outward links in every direction.
func (g *group) ClearNeighbors() {
	for _, d := range Directions {
		g.ClearNeighbor(d)
	}
}

// SetNeighbor points every exit child's link in d at target.
func (g *group) SetNeighbor(d Direction, target *Selectable) {
	for _, n := range g.impl.exits(d) {
		n.SetNeighbor(d, target)
	}
}

// DefaultSelectable returns the first visible selectable in layout order.
func (g *group) DefaultSelectable() (*Selectable, bool) {
	for _, child := range g.impl.children() {
		if !child.VisibleSelf() {
			continue
		}
		ne, ok := child.(NavigableEntity)
		if !ok {
			continue
		}
		if s, ok := ne.DefaultSelectable(); ok {
			return s, true
		}
	}
	return nil, false
}

// SetSurface assigns the surface and propagates it to every child.
func (g *group) SetSurface(s Surface) error {
	if s == nil {
		return fmt.Errorf("set group surface: nil surface")
	}
	if err := g.surface.Set(s); err != nil {
		return fmt.Errorf("set group surface: %w", err)
	}
	for _, child := range g.impl.children() {
		if err := child.SetSurface(s); err != nil {
			return err
		}
	}
	return nil
}

// ClearSurface releases the surface of the group and every child.
func (g *group) ClearSurface() {
	g.surface.Clear()
	for _, child := range g.impl.children() {
		child.ClearSurface()
	}
}

// AttachTo links the group's visibility below parent.
func (g *group) AttachTo(parent Parent) error {
	if parent == nil {
		return fmt.Errorf("attach group: nil parent")
	}
	if err := g.parent.Set(parent); err != nil {
		return fmt.Errorf("attach group: %w", err)
	}
	if err := g.vis.SetParent(parent.Visibility()); err != nil {
		g.parent.Clear()
		return fmt.Errorf("attach group: %w", err)
	}
	return nil
}

// Detach clears both parents.
func (g *group) Detach() {
	g.vis.ClearParent()
	g.parent.Clear()
	g.ClearSurface()
}

// OnChange registers fn for layout-affecting changes of the group or any
// descendant.
func (g *group) OnChange(fn func()) signal.Subscription {
	return g.changed.Subscribe(func(struct{}) { fn() })
}

// RemoveOnChange removes a handler registered with OnChange.
func (g *group) RemoveOnChange(id signal.Subscription) {
	g.changed.Unsubscribe(id)
}

func (g *group) notify() {
	g.changed.Emit(struct{}{})
}

// adopt attaches child below the group and forwards its changes. On error
// the child is left untouched.
func (g *group) adopt(child Entity) error {
	if child == nil {
		return ErrNilEntity
	}
	if err := child.AttachTo(g); err != nil {
		return err
	}
	if s, ok := g.surface.Get(); ok {
		if err := child.SetSurface(s); err != nil {
			child.Detach()
			return err
		}
	}
	g.childSubs[child] = child.OnChange(g.notify)
	return nil
}

// release detaches child and stops forwarding its changes.
func (g *group) release(child Entity) {
	if id, ok := g.childSubs[child]; ok {
		child.RemoveOnChange(id)
		delete(g.childSubs, child)
	}
	child.Detach()
}

// eligible filters entities down to visible navigables.
func eligible(entities []Entity) []Navigable {
	out := make([]Navigable, 0, len(entities))
	for _, e := range entities {
		if n, ok := asNavigable(e); ok {
			out = append(out, n)
		}
	}
	return out
}
