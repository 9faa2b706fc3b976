package element

import (
	"errors"
	"fmt"

	"github.com/atomicstack/menunav/internal/collections"
)

// VerticalGroup is a single column of evenly spaced entities. Insertion order
// is visual order, top to bottom.
type VerticalGroup struct {
	group
	entities     *collections.IndexedList[Entity]
	spacing      float64
	hideInactive bool
}

// NewVerticalGroup returns an empty column with medium spacing that collapses
// hidden children.
func NewVerticalGroup() *VerticalGroup {
	v := &VerticalGroup{
		entities:     collections.NewIndexedList[Entity](),
		spacing:      VSpaceMedium,
		hideInactive: true,
	}
	v.group = newGroup(v)
	return v
}

// VerticalSpacing returns the distance between consecutive rows.
func (v *VerticalGroup) VerticalSpacing() float64 {
	return v.spacing
}

// SetVerticalSpacing changes the distance between consecutive rows.
func (v *VerticalGroup) SetVerticalSpacing(spacing float64) {
	if v.spacing == spacing {
		return
	}
	v.spacing = spacing
	v.notify()
}

// HideInactiveElements reports whether hidden children are skipped in layout.
func (v *VerticalGroup) HideInactiveElements() bool {
	return v.hideInactive
}

// SetHideInactiveElements controls whether hidden children give up their row.
// Hidden children never take part in navigation either way.
func (v *VerticalGroup) SetHideInactiveElements(hide bool) {
	if v.hideInactive == hide {
		return
	}
	v.hideInactive = hide
	v.notify()
}

// Len returns the number of children.
func (v *VerticalGroup) Len() int {
	return v.entities.Len()
}

// Entities returns the children in visual order.
func (v *VerticalGroup) Entities() []Entity {
	return v.entities.Items()
}

// Add appends entity to the bottom of the column.
func (v *VerticalGroup) Add(entity Entity) error {
	return v.Insert(v.entities.Len(), entity)
}

// AddRange appends every entity in order, stopping at the first failure.
func (v *VerticalGroup) AddRange(entities ...Entity) error {
	for _, e := range entities {
		if err := v.Add(e); err != nil {
			return err
		}
	}
	return nil
}

// Insert places entity at index.
func (v *VerticalGroup) Insert(index int, entity Entity) error {
	if entity == nil {
		return ErrNilEntity
	}
	if v.entities.Contains(entity) {
		return ErrDuplicateEntity
	}
	if index < 0 || index > v.entities.Len() {
		return fmt.Errorf("insert at %d: %w", index, collections.ErrIndexOutOfRange)
	}
	if err := v.adopt(entity); err != nil {
		return err
	}
	if err := v.entities.Insert(index, entity); err != nil {
		v.release(entity)
		if errors.Is(err, collections.ErrDuplicate) {
			return ErrDuplicateEntity
		}
		return err
	}
	v.notify()
	return nil
}

// Remove detaches entity and reports whether it was a child.
func (v *VerticalGroup) Remove(entity Entity) bool {
	if !v.entities.Remove(entity) {
		return false
	}
	v.release(entity)
	v.notify()
	return true
}

// RemoveAt detaches the child at index.
func (v *VerticalGroup) RemoveAt(index int) bool {
	entity, ok := v.entities.RemoveAt(index)
	if !ok {
		return false
	}
	v.release(entity)
	v.notify()
	return true
}

func (v *VerticalGroup) children() []Entity {
	return v.entities.Items()
}

func (v *VerticalGroup) exits(d Direction) []Navigable {
	navs := eligible(v.entities.Items())
	if len(navs) == 0 {
		return nil
	}
	switch d {
	case Up:
		return navs[:1]
	case Down:
		return navs[len(navs)-1:]
	case Left, Right:
		return navs
	}
	panic(fmt.Sprintf("element: %v", invalidDirection(d)))
}

// EntrySelectable enters from the top when moving down, from the bottom when
// moving up, and from the middle outwards when moving sideways.
func (v *VerticalGroup) EntrySelectable(d Direction) (*Selectable, bool) {
	navs := eligible(v.entities.Items())
	switch d {
	case Down:
		return firstEntry(d, navs)
	case Up:
		for i := len(navs) - 1; i >= 0; i-- {
			if s, ok := navs[i].EntrySelectable(d); ok {
				return s, true
			}
		}
		return nil, false
	case Left, Right:
		for _, idx := range collections.MedianOutwards(len(navs)) {
			if s, ok := navs[idx].EntrySelectable(d); ok {
				return s, true
			}
		}
		return nil, false
	}
	return nil, false
}

// UpdateLayout stacks the children downwards from origin and chains the
// visible navigables top to bottom.
func (v *VerticalGroup) UpdateLayout(origin Point) {
	v.ClearNeighbors()
	pos := origin
	for _, e := range v.entities.Items() {
		if v.hideInactive && !e.VisibleSelf() {
			if n, ok := e.(Navigable); ok {
				n.ClearNeighbors()
			}
			continue
		}
		e.UpdateLayout(pos)
		pos.Y -= v.spacing
	}
	for _, p := range collections.Pairs(eligible(v.entities.Items())) {
		connect(Down, p.First, p.Second)
	}
}
