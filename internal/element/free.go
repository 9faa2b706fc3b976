package element

import (
	"fmt"
	"math"
	"sort"

	"github.com/atomicstack/menunav/internal/collections"
)

// FreeGroup places each child at an arbitrary offset from the group origin.
// It exposes exactly one doorway per side: the child furthest in that
// direction.
type FreeGroup struct {
	group
	offsets *collections.OrderedMap[Entity, Point]

	// LinkChildren also links children to their geometric nearest neighbor
	// in each direction. Without it, children are only reachable from
	// outside the group.
	LinkChildren bool
}

// NewFreeGroup returns an empty free-form group.
func NewFreeGroup() *FreeGroup {
	f := &FreeGroup{offsets: collections.NewOrderedMap[Entity, Point]()}
	f.group = newGroup(f)
	return f
}

// Len returns the number of children.
func (f *FreeGroup) Len() int {
	return f.offsets.Len()
}

// Entities returns the children in insertion order.
func (f *FreeGroup) Entities() []Entity {
	return f.offsets.Keys()
}

// Offset returns the offset of entity.
func (f *FreeGroup) Offset(entity Entity) (Point, bool) {
	return f.offsets.Get(entity)
}

// Add places entity at offset from the group origin.
func (f *FreeGroup) Add(entity Entity, offset Point) error {
	if entity == nil {
		return ErrNilEntity
	}
	if f.offsets.Has(entity) {
		return ErrDuplicateEntity
	}
	if err := f.adopt(entity); err != nil {
		return err
	}
	f.offsets.Set(entity, offset)
	f.notify()
	return nil
}

// Update moves an existing child.
func (f *FreeGroup) Update(entity Entity, offset Point) error {
	current, ok := f.offsets.Get(entity)
	if !ok {
		return fmt.Errorf("update offset: %w", ErrUnknownEntity)
	}
	if current == offset {
		return nil
	}
	f.offsets.Set(entity, offset)
	f.notify()
	return nil
}

// Remove detaches entity and reports whether it was a child.
func (f *FreeGroup) Remove(entity Entity) bool {
	if !f.offsets.Delete(entity) {
		return false
	}
	f.release(entity)
	f.notify()
	return true
}

func (f *FreeGroup) children() []Entity {
	return f.offsets.Keys()
}

// sortKey is lowest for the child furthest toward d.
func sortKey(d Direction, p Point) float64 {
	switch d {
	case Up:
		return -p.Y
	case Down:
		return p.Y
	case Left:
		return p.X
	case Right:
		return -p.X
	}
	panic(fmt.Sprintf("element: %v", invalidDirection(d)))
}

type placed struct {
	nav    Navigable
	offset Point
}

func (f *FreeGroup) eligiblePlaced() []placed {
	var out []placed
	f.offsets.Each(func(e Entity, offset Point) {
		if n, ok := asNavigable(e); ok {
			out = append(out, placed{nav: n, offset: offset})
		}
	})
	return out
}

// byExtremity orders the eligible children from the furthest toward d,
// keeping insertion order among equals.
func (f *FreeGroup) byExtremity(d Direction) []Navigable {
	items := f.eligiblePlaced()
	sort.SliceStable(items, func(i, j int) bool {
		return sortKey(d, items[i].offset) < sortKey(d, items[j].offset)
	})
	out := make([]Navigable, len(items))
	for i, it := range items {
		out[i] = it.nav
	}
	return out
}

func (f *FreeGroup) exits(d Direction) []Navigable {
	ordered := f.byExtremity(d)
	if len(ordered) == 0 {
		return nil
	}
	return ordered[:1]
}

// EntrySelectable enters at the child on the side focus arrives from: moving
// Down enters at the top-most child, moving Right at the left-most. Exits use
// the opposite extreme, the one toward d.
func (f *FreeGroup) EntrySelectable(d Direction) (*Selectable, bool) {
	if !d.Valid() {
		return nil, false
	}
	return firstEntry(d, f.byExtremity(d.Opposite()))
}

// UpdateLayout anchors every child at origin plus its offset.
func (f *FreeGroup) UpdateLayout(origin Point) {
	f.ClearNeighbors()
	f.offsets.Each(func(e Entity, offset Point) {
		e.UpdateLayout(origin.Add(offset))
	})
	if f.LinkChildren {
		f.linkChildren()
	}
}

// linkChildren points each child at the closest child in each direction,
// weighting sideways distance double.
func (f *FreeGroup) linkChildren() {
	items := f.eligiblePlaced()
	for i, from := range items {
		for _, d := range Directions {
			best := -1
			bestScore := math.Inf(1)
			for j, to := range items {
				if i == j {
					continue
				}
				primary, secondary := axes(d, from.offset, to.offset)
				if primary <= 0 {
					continue
				}
				if score := primary + 2*math.Abs(secondary); score < bestScore {
					best, bestScore = j, score
				}
			}
			if best < 0 {
				continue
			}
			if s, ok := items[best].nav.EntrySelectable(d); ok {
				from.nav.SetNeighbor(d, s)
			}
		}
	}
}

// axes splits the displacement from a to b into the distance travelled
// along d and the sideways distance.
func axes(d Direction, a, b Point) (primary, secondary float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	switch d {
	case Up:
		return dy, dx
	case Down:
		return -dy, dx
	case Left:
		return -dx, dy
	case Right:
		return dx, dy
	}
	panic(fmt.Sprintf("element: %v", invalidDirection(d)))
}
