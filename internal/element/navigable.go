package element

// Navigable is anything that participates in the directional focus graph.
type Navigable interface {
	// ClearNeighbor unsets the outward link in d.
	ClearNeighbor(d Direction)
	// ClearNeighbors unsets the outward links in every direction.
	ClearNeighbors()
	// SetNeighbor points the outward link in d at target.
	SetNeighbor(d Direction, target *Selectable)
	// EntrySelectable returns the selectable that receives focus when focus
	// moves into this navigable along d. It reports false when nothing inside
	// is eligible.
	EntrySelectable(d Direction) (*Selectable, bool)
}

// NavigableEntity is an entity that can also be navigated.
type NavigableEntity interface {
	Entity
	Navigable
	// DefaultSelectable returns an arbitrary visible selectable inside.
	DefaultSelectable() (*Selectable, bool)
}

// ConnectPair links src to dst along d and dst back to src along the
// opposite direction. Each half is applied independently, so a one-sided
// failure leaves the other half in place.
func ConnectPair(d Direction, src, dst Navigable) error {
	if !d.Valid() {
		return invalidDirection(d)
	}
	if s, ok := dst.EntrySelectable(d); ok {
		src.SetNeighbor(d, s)
	}
	back := d.Opposite()
	if s, ok := src.EntrySelectable(back); ok {
		dst.SetNeighbor(back, s)
	}
	return nil
}

// connect is ConnectPair for directions already known to be valid.
func connect(d Direction, src, dst Navigable) {
	_ = ConnectPair(d, src, dst)
}

// asNavigable returns e as a Navigable if it is one and it is visible by
// itself.
func asNavigable(e Entity) (Navigable, bool) {
	if !e.VisibleSelf() {
		return nil, false
	}
	n, ok := e.(Navigable)
	return n, ok
}

// firstEntry returns the first successful entry query in order.
func firstEntry(d Direction, candidates []Navigable) (*Selectable, bool) {
	for _, n := range candidates {
		if s, ok := n.EntrySelectable(d); ok {
			return s, true
		}
	}
	return nil, false
}
