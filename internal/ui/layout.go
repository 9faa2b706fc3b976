package ui

import (
	"math"
	"sort"
	"strings"

	"github.com/atomicstack/menunav/internal/element"
	"github.com/atomicstack/menunav/internal/screen"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	// columnsPerUnit maps menu units onto terminal cells: one medium column
	// step is 24 cells.
	columnsPerUnit = 24.0 / element.HSpaceMedium
	// maxRowGap caps the blank lines drawn between two rows.
	maxRowGap   = 2
	indicator   = "▌ "
	noIndicator = "  "
)

type placed struct {
	elem   *element.Element
	anchor element.Point
}

// segment is one element's text inside a row.
type segment struct {
	prefix      string
	prefixStyle *lipgloss.Style
	text        string
	style       *lipgloss.Style
}

func (s segment) width() int {
	return ansi.StringWidth(s.prefix + s.text)
}

func (s segment) render() string {
	return renderStyled(s.prefixStyle, s.prefix) + renderStyled(s.style, s.text)
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// placedElements returns the visible elements of cur ordered top to bottom,
// then left to right.
func (m *Model) placedElements(cur screen.Screen) []placed {
	elems := cur.Elements()
	out := make([]placed, 0, len(elems))
	for _, e := range elems {
		w, ok := m.surface.widget(e)
		if !ok || !w.visible {
			continue
		}
		out = append(out, placed{elem: e, anchor: w.anchor})
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].anchor.Y != out[b].anchor.Y {
			return out[a].anchor.Y > out[b].anchor.Y
		}
		return out[a].anchor.X < out[b].anchor.X
	})
	return out
}

// bodyLines draws the screen's elements on a character grid. Elements that
// share a Y anchor share a line; larger vertical gaps become blank lines.
func (m *Model) bodyLines(cur screen.Screen, width int) []string {
	items := m.placedElements(cur)
	var lines []string
	for i := 0; i < len(items); {
		j := i
		for j < len(items) && items[j].anchor.Y == items[i].anchor.Y {
			j++
		}
		if i > 0 {
			gap := int(math.Round((items[i-1].anchor.Y-items[i].anchor.Y)/element.VSpaceMedium)) - 1
			for k := 0; k < min(gap, maxRowGap); k++ {
				lines = append(lines, "")
			}
		}
		lines = append(lines, m.renderRow(items[i:j], width))
		i = j
	}
	return lines
}

func (m *Model) renderRow(row []placed, width int) string {
	var b strings.Builder
	col := 0
	for _, p := range row {
		seg := m.segmentFor(p.elem)
		w := seg.width()
		start := max(int(math.Round(float64(width)/2+p.anchor.X*columnsPerUnit))-w/2, 0)
		if col > 0 {
			start = max(start, col+2)
		}
		b.WriteString(strings.Repeat(" ", start-col))
		b.WriteString(seg.render())
		col = start + w
	}
	return ansi.Truncate(b.String(), width, "…")
}

func (m *Model) segmentFor(e *element.Element) segment {
	c := e.Control()
	if c == nil {
		return segment{text: e.Display(), style: styles.Label}
	}
	seg := segment{
		prefix:      noIndicator,
		prefixStyle: styles.ItemIndicator,
		text:        e.Display(),
		style:       styles.ForState(e.State()),
	}
	switch {
	case m.nav.Focus() == c.Selectable():
		seg.prefix = indicator
		seg.prefixStyle = styles.SelectedItemIndicator
		seg.style = styles.SelectedItem
	case !c.Interactable():
		seg.style = styles.Disabled
	}
	return seg
}
