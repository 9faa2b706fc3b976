package element

import (
	"fmt"

	"github.com/atomicstack/menunav/internal/collections"
)

// Cell addresses one slot of a GridGroup.
type Cell struct {
	Row, Column int
}

func (c Cell) before(o Cell) bool {
	return c.Row < o.Row || (c.Row == o.Row && c.Column < o.Column)
}

// GridGroup arranges entities in a fixed number of columns and as many rows
// as needed. Cells may be empty.
type GridGroup struct {
	group
	columns int
	rows    [][]Entity
	index   map[Entity]Cell
	next    Cell

	hSpacing float64
	vSpacing float64
	wrap     bool
}

// NewGridGroup returns an empty grid with the given column count.
func NewGridGroup(columns int) (*GridGroup, error) {
	if columns <= 0 {
		return nil, fmt.Errorf("new grid with %d columns: %w", columns, ErrInvalidColumns)
	}
	g := &GridGroup{
		columns:  columns,
		index:    make(map[Entity]Cell),
		hSpacing: HSpaceMedium,
		vSpacing: VSpaceMedium,
	}
	g.group = newGroup(g)
	return g, nil
}

// Columns returns the fixed column count.
func (g *GridGroup) Columns() int {
	return g.columns
}

// Rows returns the number of rows currently stored.
func (g *GridGroup) Rows() int {
	return len(g.rows)
}

// Len returns the number of occupied cells.
func (g *GridGroup) Len() int {
	return len(g.index)
}

// At returns the entity in the given cell.
func (g *GridGroup) At(row, column int) (Entity, bool) {
	if row < 0 || row >= len(g.rows) || column < 0 || column >= g.columns {
		return nil, false
	}
	e := g.rows[row][column]
	return e, e != nil
}

// CellOf returns the cell holding entity.
func (g *GridGroup) CellOf(entity Entity) (Cell, bool) {
	c, ok := g.index[entity]
	return c, ok
}

// NextCell returns the cell Add will fill next.
func (g *GridGroup) NextCell() Cell {
	return g.next
}

// HorizontalSpacing returns the distance between columns.
func (g *GridGroup) HorizontalSpacing() float64 {
	return g.hSpacing
}

// SetHorizontalSpacing changes the distance between columns.
func (g *GridGroup) SetHorizontalSpacing(spacing float64) {
	if g.hSpacing == spacing {
		return
	}
	g.hSpacing = spacing
	g.notify()
}

// VerticalSpacing returns the distance between rows.
func (g *GridGroup) VerticalSpacing() float64 {
	return g.vSpacing
}

// SetVerticalSpacing changes the distance between rows.
func (g *GridGroup) SetVerticalSpacing(spacing float64) {
	if g.vSpacing == spacing {
		return
	}
	g.vSpacing = spacing
	g.notify()
}

// WrapHorizontal reports whether rows link their ends together.
func (g *GridGroup) WrapHorizontal() bool {
	return g.wrap
}

// SetWrapHorizontal makes Left on the first cell of a row reach the last
// one and vice versa.
func (g *GridGroup) SetWrapHorizontal(wrap bool) {
	if g.wrap == wrap {
		return
	}
	g.wrap = wrap
	g.notify()
}

// Add places entity in the first empty cell in row-major order.
func (g *GridGroup) Add(entity Entity) error {
	return g.AddAt(g.next.Row, g.next.Column, entity)
}

// AddRange adds every entity in order, stopping at the first failure.
func (g *GridGroup) AddRange(entities ...Entity) error {
	for _, e := range entities {
		if err := g.Add(e); err != nil {
			return err
		}
	}
	return nil
}

// AddAt places entity in an explicit cell. Placing an entity where it
// already is does nothing.
func (g *GridGroup) AddAt(row, column int, entity Entity) error {
	if entity == nil {
		return ErrNilEntity
	}
	if row < 0 || column < 0 || column >= g.columns {
		return fmt.Errorf("add at (%d, %d): %w", row, column, ErrInvalidCell)
	}
	target := Cell{Row: row, Column: column}
	if at, ok := g.index[entity]; ok {
		if at == target {
			return nil
		}
		return fmt.Errorf("add at (%d, %d): %w", row, column, ErrDuplicateEntity)
	}
	if existing, ok := g.At(row, column); ok && existing != nil {
		return fmt.Errorf("add at (%d, %d): %w", row, column, ErrCellOccupied)
	}
	if err := g.adopt(entity); err != nil {
		return err
	}
	for len(g.rows) <= row {
		g.rows = append(g.rows, make([]Entity, g.columns))
	}
	g.rows[row][column] = entity
	g.index[entity] = target
	if target == g.next {
		g.advance()
	}
	g.notify()
	return nil
}

// Remove empties the cell holding entity and reports whether it was found.
func (g *GridGroup) Remove(entity Entity) bool {
	c, ok := g.index[entity]
	if !ok {
		return false
	}
	return g.RemoveAt(c.Row, c.Column)
}

// RemoveAt empties a cell and reports whether it was occupied.
func (g *GridGroup) RemoveAt(row, column int) bool {
	entity, ok := g.At(row, column)
	if !ok {
		return false
	}
	g.rows[row][column] = nil
	delete(g.index, entity)
	g.release(entity)

	removed := Cell{Row: row, Column: column}
	if removed.before(g.next) {
		g.next = removed
	}
	g.truncate()
	g.notify()
	return true
}

// advance moves the cursor to the next empty cell at or after it.
func (g *GridGroup) advance() {
	c := g.next
	for c.Row < len(g.rows) && g.rows[c.Row][c.Column] != nil {
		c.Column++
		if c.Column == g.columns {
			c.Column = 0
			c.Row++
		}
	}
	g.next = c
}

// truncate drops trailing rows that no longer hold anything.
func (g *GridGroup) truncate() {
	for n := len(g.rows); n > 0; n-- {
		if !rowEmpty(g.rows[n-1]) {
			break
		}
		g.rows = g.rows[:n-1]
	}
}

func rowEmpty(row []Entity) bool {
	for _, e := range row {
		if e != nil {
			return false
		}
	}
	return true
}

func (g *GridGroup) children() []Entity {
	out := make([]Entity, 0, len(g.index))
	for _, row := range g.rows {
		for _, e := range row {
			if e != nil {
				out = append(out, e)
			}
		}
	}
	return out
}

// eligibleRows returns, for every row, a column-indexed slice where
// ineligible cells are nil.
func (g *GridGroup) eligibleRows() [][]Navigable {
	out := make([][]Navigable, len(g.rows))
	for r, row := range g.rows {
		cells := make([]Navigable, g.columns)
		for c, e := range row {
			if e == nil {
				continue
			}
			if n, ok := asNavigable(e); ok {
				cells[c] = n
			}
		}
		out[r] = cells
	}
	return out
}

// compact drops nil cells.
func compact(cells []Navigable) []Navigable {
	out := make([]Navigable, 0, len(cells))
	for _, n := range cells {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// nonEmptyRows returns the compacted rows that hold at least one eligible
// cell, with their column-indexed form.
func (g *GridGroup) nonEmptyRows() [][]Navigable {
	var out [][]Navigable
	for _, cells := range g.eligibleRows() {
		if len(compact(cells)) > 0 {
			out = append(out, cells)
		}
	}
	return out
}

func (g *GridGroup) exits(d Direction) []Navigable {
	rows := g.nonEmptyRows()
	if len(rows) == 0 {
		return nil
	}
	switch d {
	case Up:
		return compact(rows[0])
	case Down:
		return compact(rows[len(rows)-1])
	case Left, Right:
		out := make([]Navigable, 0, len(rows))
		for _, cells := range rows {
			row := compact(cells)
			if d == Left {
				out = append(out, row[0])
			} else {
				out = append(out, row[len(row)-1])
			}
		}
		return out
	}
	panic(fmt.Sprintf("element: %v", invalidDirection(d)))
}

// EntrySelectable enters at the top-left when moving down, the bottom-right
// when moving up, the left-most column when moving right and the right-most
// column when moving left.
func (g *GridGroup) EntrySelectable(d Direction) (*Selectable, bool) {
	rows := g.eligibleRows()
	var order []Navigable
	switch d {
	case Down:
		for _, cells := range rows {
			order = append(order, compact(cells)...)
		}
	case Up:
		for r := len(rows) - 1; r >= 0; r-- {
			for c := g.columns - 1; c >= 0; c-- {
				if rows[r][c] != nil {
					order = append(order, rows[r][c])
				}
			}
		}
	case Right:
		for c := 0; c < g.columns; c++ {
			for r := range rows {
				if rows[r][c] != nil {
					order = append(order, rows[r][c])
				}
			}
		}
	case Left:
		for c := g.columns - 1; c >= 0; c-- {
			for r := len(rows) - 1; r >= 0; r-- {
				if rows[r][c] != nil {
					order = append(order, rows[r][c])
				}
			}
		}
	default:
		return nil, false
	}
	return firstEntry(d, order)
}

// UpdateLayout centres the columns on origin, stacks rows downwards and links
// cells along rows and to the nearest column of neighbouring rows.
func (g *GridGroup) UpdateLayout(origin Point) {
	g.ClearNeighbors()
	mid := float64(g.columns-1) / 2
	for r, row := range g.rows {
		for c, e := range row {
			if e == nil {
				continue
			}
			e.UpdateLayout(origin.Add(Point{
				X: g.hSpacing * (float64(c) - mid),
				Y: -g.vSpacing * float64(r),
			}))
		}
	}

	rows := g.nonEmptyRows()
	for _, cells := range rows {
		row := compact(cells)
		pairs := collections.Pairs(row)
		if g.wrap {
			pairs = collections.CircularPairs(row)
		}
		for _, p := range pairs {
			connect(Right, p.First, p.Second)
		}
	}
	for i := 0; i+1 < len(rows); i++ {
		upper, lower := rows[i], rows[i+1]
		linkNearest(Down, upper, lower)
		linkNearest(Up, lower, upper)
	}
}

// linkNearest points every cell of from at the nearest-column cell of to
// along d. The scan alternates sides, preferring the higher column index
// when moving down and the lower when moving up.
func linkNearest(d Direction, from, to []Navigable) {
	sign := 1
	if d == Up {
		sign = -1
	}
	for c, src := range from {
		if src == nil {
			continue
		}
		if s, ok := nearestColumn(to, c, sign, d); ok {
			src.SetNeighbor(d, s)
		}
	}
}

// nearestColumn scans cells outwards from column c: c, c+sign, c-sign,
// c+2*sign and so on. Cells that cannot be entered along d are skipped.
func nearestColumn(cells []Navigable, c, sign int, d Direction) (*Selectable, bool) {
	for offset := 0; offset < len(cells); offset++ {
		for _, idx := range []int{c + sign*offset, c - sign*offset} {
			if idx >= 0 && idx < len(cells) && cells[idx] != nil {
				if s, ok := cells[idx].EntrySelectable(d); ok {
					return s, true
				}
			}
			if offset == 0 {
				break
			}
		}
	}
	return nil, false
}
