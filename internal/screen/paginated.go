package screen

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/menunav/internal/collections"
	"github.com/atomicstack/menunav/internal/element"
	"github.com/atomicstack/menunav/internal/model"
)

// Paginated shows one of several pages at a time with a page selector
// between the page and Back.
type Paginated struct {
	*Base
	pages      []element.NavigableEntity
	pageModel  *model.IntRange
	pageChoice *element.Choice
}

// NewPaginated returns a screen with no pages.
func NewPaginated(title string) *Paginated {
	// a single-value range is always valid
	pageModel, _ := model.NewIntRange(0, 0, 0)
	pageModel.Circular = true
	pageModel.DisplayFn = func(i int) string { return strconv.Itoa(i + 1) }

	p := &Paginated{pageModel: pageModel, pageChoice: element.NewChoice("Page", pageModel)}
	p.Base = newBase(title, p)
	_ = p.adopt(p.pageChoice)
	pageModel.OnValueChanged(func(int) { p.MarkDirty() })
	return p
}

// AddPage appends a page.
func (p *Paginated) AddPage(page element.NavigableEntity) error {
	if page == nil {
		return element.ErrNilEntity
	}
	for _, existing := range p.pages {
		if existing == page {
			return fmt.Errorf("add page: %w", element.ErrDuplicateEntity)
		}
	}
	if err := p.adopt(page); err != nil {
		return fmt.Errorf("add page: %w", err)
	}
	p.pages = append(p.pages, page)
	return nil
}

// AddPages appends every page in order, stopping at the first failure.
func (p *Paginated) AddPages(pages ...element.NavigableEntity) error {
	for _, page := range pages {
		if err := p.AddPage(page); err != nil {
			return err
		}
	}
	return nil
}

// Pages returns the pages in order.
func (p *Paginated) Pages() []element.NavigableEntity {
	return append([]element.NavigableEntity(nil), p.pages...)
}

// PageCount returns the number of pages.
func (p *Paginated) PageCount() int {
	return len(p.pages)
}

// PageNumber returns the zero-based active page.
func (p *Paginated) PageNumber() int {
	return p.pageModel.Value()
}

// SetPageNumber selects the zero-based active page.
func (p *Paginated) SetPageNumber(n int) bool {
	if n < 0 || n >= len(p.pages) {
		return false
	}
	return p.pageModel.SetValue(n)
}

// PageChoice returns the page selector control.
func (p *Paginated) PageChoice() *element.Choice {
	return p.pageChoice
}

func (p *Paginated) active() (element.NavigableEntity, bool) {
	if len(p.pages) == 0 {
		return nil, false
	}
	return p.pages[p.pageModel.Value()], true
}

func (p *Paginated) entities() []element.Entity {
	out := make([]element.Entity, 0, len(p.pages)+1)
	for _, page := range p.pages {
		out = append(out, page)
	}
	return append(out, p.pageChoice)
}

func (p *Paginated) elements() []*element.Element {
	var out []*element.Element
	for _, page := range p.pages {
		out = append(out, page.Elements()...)
	}
	return append(out, p.pageChoice.Element)
}

func (p *Paginated) defaultSelectable() (*element.Selectable, bool) {
	page, ok := p.active()
	if !ok {
		return nil, false
	}
	return page.DefaultSelectable()
}

// layout shows only the active page and links [page, selector, Back] as a
// circular column. The selector is hidden with fewer than two pages.
func (p *Paginated) layout() {
	page, ok := p.active()
	if !ok {
		p.pageChoice.SetVisibleSelf(false)
		p.back.UpdateLayout(p.controlsAnchor(nil))
		return
	}
	// bounds always hold at least one page here
	_ = p.pageModel.ResetParams(0, len(p.pages)-1, p.pageModel.Value())
	page, _ = p.active()
	multi := len(p.pages) > 1
	p.pageChoice.SetVisibleSelf(multi)
	for i, pg := range p.pages {
		pg.SetVisibleSelf(i == p.pageModel.Value())
	}

	page.UpdateLayout(p.Anchor)
	at := p.controlsAnchor(page.Elements())
	column := []element.Navigable{page}
	if multi {
		p.pageChoice.UpdateLayout(at)
		at.Y -= element.VSpaceMedium
		column = append(column, p.pageChoice)
	}
	p.back.UpdateLayout(at)
	column = append(column, p.back)

	for _, n := range column {
		n.ClearNeighbors()
	}
	for _, pair := range collections.CircularPairs(column) {
		top, bottom := pair.First, pair.Second
		if s, ok := top.EntrySelectable(element.Up); ok {
			bottom.SetNeighbor(element.Up, s)
		}
		if s, ok := bottom.EntrySelectable(element.Down); ok {
			top.SetNeighbor(element.Down, s)
		}
	}
}

// PaginatedBuilder splits a stream of entities into fixed-size column pages.
type PaginatedBuilder struct {
	title    string
	pageSize int
	entities []element.Entity

	// Anchor is the top-centre point of every page.
	Anchor element.Point
	// VerticalSpacing is the row distance on every page.
	VerticalSpacing float64
}

// NewPaginatedBuilder returns a builder placing pageSize entities per page.
// Non-positive sizes fall back to 8.
func NewPaginatedBuilder(title string, pageSize int) *PaginatedBuilder {
	if pageSize <= 0 {
		pageSize = 8
	}
	return &PaginatedBuilder{
		title:           title,
		pageSize:        pageSize,
		Anchor:          element.TopCenterAnchor,
		VerticalSpacing: element.VSpaceMedium,
	}
}

// Add queues entity for the next free page slot.
func (b *PaginatedBuilder) Add(entity element.Entity) {
	b.entities = append(b.entities, entity)
}

// AddRange queues every entity in order.
func (b *PaginatedBuilder) AddRange(entities ...element.Entity) {
	b.entities = append(b.entities, entities...)
}

// Build returns the paginated screen.
func (b *PaginatedBuilder) Build() (*Paginated, error) {
	p := NewPaginated(b.title)
	p.Anchor = b.Anchor
	for start := 0; start < len(b.entities); start += b.pageSize {
		end := start + b.pageSize
		if end > len(b.entities) {
			end = len(b.entities)
		}
		page := element.NewVerticalGroup()
		page.SetVerticalSpacing(b.VerticalSpacing)
		if err := page.AddRange(b.entities[start:end]...); err != nil {
			return nil, fmt.Errorf("build page %d: %w", start/b.pageSize+1, err)
		}
		if err := p.AddPage(page); err != nil {
			return nil, err
		}
	}
	return p, nil
}
