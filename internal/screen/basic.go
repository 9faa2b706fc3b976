package screen

import "github.com/atomicstack/menunav/internal/element"

// Basic shows a single content entity above the Back control.
type Basic struct {
	*Base
	content element.NavigableEntity
}

// NewBasic returns a screen hosting content. content must not already be
// attached elsewhere.
func NewBasic(title string, content element.NavigableEntity) (*Basic, error) {
	if content == nil {
		return nil, element.ErrNilEntity
	}
	s := &Basic{content: content}
	s.Base = newBase(title, s)
	if err := s.adopt(content); err != nil {
		return nil, err
	}
	return s, nil
}

// Content returns the hosted entity.
func (s *Basic) Content() element.NavigableEntity {
	return s.content
}

func (s *Basic) entities() []element.Entity {
	return []element.Entity{s.content}
}

func (s *Basic) elements() []*element.Element {
	return s.content.Elements()
}

func (s *Basic) defaultSelectable() (*element.Selectable, bool) {
	return s.content.DefaultSelectable()
}

// layout places the content at Anchor, Back below it, and links the top and
// bottom of the content to Back in both directions.
func (s *Basic) layout() {
	s.content.UpdateLayout(s.Anchor)
	s.back.UpdateLayout(s.controlsAnchor(s.content.Elements()))

	sel := s.back.Selectable()
	s.content.SetNeighbor(element.Down, sel)
	s.content.SetNeighbor(element.Up, sel)
	if entry, ok := s.content.EntrySelectable(element.Down); ok {
		s.back.SetNeighbor(element.Down, entry)
	}
	if entry, ok := s.content.EntrySelectable(element.Up); ok {
		s.back.SetNeighbor(element.Up, entry)
	}
}

// Simple is a Basic screen whose content is a single column.
type Simple struct {
	*Basic
	column *element.VerticalGroup
}

// NewSimple returns a screen with an empty column.
func NewSimple(title string) *Simple {
	column := element.NewVerticalGroup()
	// a fresh column is never attached yet
	basic, _ := NewBasic(title, column)
	return &Simple{Basic: basic, column: column}
}

// Column returns the content column.
func (s *Simple) Column() *element.VerticalGroup {
	return s.column
}

// Add appends entity to the column.
func (s *Simple) Add(entity element.Entity) error {
	return s.column.Add(entity)
}

// AddRange appends every entity to the column.
func (s *Simple) AddRange(entities ...element.Entity) error {
	return s.column.AddRange(entities...)
}
