package layoutdoc

import (
	"fmt"

	"github.com/atomicstack/menunav/internal/collections"
	"github.com/atomicstack/menunav/internal/element"
	"github.com/atomicstack/menunav/internal/model"
	"github.com/atomicstack/menunav/internal/screen"
)

// Menu is a document built into live screens.
type Menu struct {
	nav      *screen.Navigator
	start    string
	screens  *collections.OrderedMap[string, screen.Screen]
	controls *collections.OrderedMap[string, *element.Control]

	// OnQuit runs when a button with action quit is activated.
	OnQuit func()
}

// Build creates every screen of doc. Buttons navigate through nav.
func Build(doc *Document, nav *screen.Navigator) (*Menu, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	m := &Menu{
		nav:      nav,
		start:    doc.StartScreen(),
		screens:  collections.NewOrderedMap[string, screen.Screen](),
		controls: collections.NewOrderedMap[string, *element.Control](),
	}
	for i, sd := range doc.Screens {
		s, err := m.buildScreen(sd)
		if err != nil {
			return nil, fmt.Errorf("screens[%d] %q: %w", i, sd.ID, err)
		}
		m.screens.Set(sd.ID, s)
	}
	return m, nil
}

// Navigator returns the navigator the menu drives.
func (m *Menu) Navigator() *screen.Navigator {
	return m.nav
}

// Start returns the first screen.
func (m *Menu) Start() screen.Screen {
	s, _ := m.screens.Get(m.start)
	return s
}

// Show shows the start screen.
func (m *Menu) Show() {
	m.nav.Show(m.Start(), screen.Add)
}

// Screen returns the screen with the given id.
func (m *Menu) Screen(id string) (screen.Screen, bool) {
	return m.screens.Get(id)
}

// ScreenIDs returns the screen ids in document order.
func (m *Menu) ScreenIDs() []string {
	return m.screens.Keys()
}

// IDOf returns the document id of s.
func (m *Menu) IDOf(s screen.Screen) (string, bool) {
	for _, id := range m.screens.Keys() {
		if other, _ := m.screens.Get(id); other == s {
			return id, true
		}
	}
	return "", false
}

// SetSurface assigns the rendering surface to every screen.
func (m *Menu) SetSurface(s element.Surface) error {
	for _, id := range m.screens.Keys() {
		scr, _ := m.screens.Get(id)
		if err := scr.SetSurface(s); err != nil {
			return err
		}
	}
	return nil
}

// Dispose releases every element of every screen.
func (m *Menu) Dispose() {
	m.screens.Each(func(_ string, s screen.Screen) {
		for _, e := range s.Elements() {
			e.Dispose()
		}
	})
}

// Control returns the control declared with id.
func (m *Menu) Control(id string) (*element.Control, bool) {
	return m.controls.Get(id)
}

// Values returns the current value of every identified toggle, choice and
// input.
func (m *Menu) Values() map[string]string {
	out := make(map[string]string)
	m.controls.Each(func(id string, c *element.Control) {
		switch owner := c.Owner().(type) {
		case *element.Toggle:
			if owner.Value() {
				out[id] = "on"
			} else {
				out[id] = "off"
			}
		case *element.Choice:
			out[id] = owner.Model().DisplayString()
		case *element.TextInput:
			out[id] = owner.Value()
		}
	})
	return out
}

func (m *Menu) buildScreen(sd Screen) (screen.Screen, error) {
	var (
		s    screen.Screen
		base *screen.Base
	)
	anchor := element.TopCenterAnchor
	if sd.Anchor != nil {
		anchor = sd.Anchor.element()
	}

	if sd.PageSize > 0 {
		builder := screen.NewPaginatedBuilder(sd.Title, sd.PageSize)
		builder.Anchor = anchor
		if sd.Content.Spacing > 0 {
			builder.VerticalSpacing = sd.Content.Spacing
		}
		for _, child := range sd.Content.Children {
			e, err := m.buildNode(child)
			if err != nil {
				return nil, err
			}
			builder.Add(e)
		}
		p, err := builder.Build()
		if err != nil {
			return nil, err
		}
		s, base = p, p.Base
	} else {
		e, err := m.buildNode(sd.Content)
		if err != nil {
			return nil, err
		}
		content, ok := e.(element.NavigableEntity)
		if !ok {
			return nil, fmt.Errorf("content %q is not navigable", sd.Content.Type)
		}
		b, err := screen.NewBasic(sd.Title, content)
		if err != nil {
			return nil, err
		}
		s, base = b, b.Base
	}

	base.Anchor = anchor
	// validated already
	base.SelectOnShow, _ = screen.ParseSelectOnShow(sd.SelectOnShow)
	if sd.AllowGoBack != nil {
		base.AllowGoBack = *sd.AllowGoBack
	}
	return s, nil
}

func (m *Menu) buildNode(n Node) (element.Entity, error) {
	var (
		entity element.Entity
		err    error
	)
	switch n.Type {
	case TypeVertical:
		entity, err = m.buildVertical(n)
	case TypeGrid:
		entity, err = m.buildGrid(n)
	case TypeFree:
		entity, err = m.buildFree(n)
	case TypeLabel:
		l := element.NewLabel(n.Text)
		l.SetDescription(n.Description)
		entity = l
	default:
		var c *element.Control
		c, err = m.buildControl(n)
		if err == nil {
			entity = c.Owner().(element.Entity)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", n.Type, n.label(), err)
	}
	if n.Hidden {
		entity.SetVisibleSelf(false)
	}
	return entity, nil
}

func (n Node) label() string {
	if n.ID != "" {
		return n.ID
	}
	return n.Text
}

func (m *Menu) buildChildren(n Node, add func(Node, element.Entity) error) error {
	for _, child := range n.Children {
		e, err := m.buildNode(child)
		if err != nil {
			return err
		}
		if err := add(child, e); err != nil {
			return err
		}
	}
	return nil
}

func (m *Menu) buildVertical(n Node) (*element.VerticalGroup, error) {
	v := element.NewVerticalGroup()
	if n.Spacing > 0 {
		v.SetVerticalSpacing(n.Spacing)
	}
	if n.HideInactive != nil {
		v.SetHideInactiveElements(*n.HideInactive)
	}
	err := m.buildChildren(n, func(_ Node, e element.Entity) error {
		return v.Add(e)
	})
	return v, err
}

func (m *Menu) buildGrid(n Node) (*element.GridGroup, error) {
	g, err := element.NewGridGroup(n.Columns)
	if err != nil {
		return nil, err
	}
	if n.Spacing > 0 {
		g.SetVerticalSpacing(n.Spacing)
	}
	if n.HSpacing > 0 {
		g.SetHorizontalSpacing(n.HSpacing)
	}
	g.SetWrapHorizontal(n.Wrap)
	err = m.buildChildren(n, func(child Node, e element.Entity) error {
		if child.Cell != nil {
			return g.AddAt(child.Cell.Row, child.Cell.Column, e)
		}
		return g.Add(e)
	})
	return g, err
}

func (m *Menu) buildFree(n Node) (*element.FreeGroup, error) {
	f := element.NewFreeGroup()
	f.LinkChildren = n.LinkChildren
	err := m.buildChildren(n, func(child Node, e element.Entity) error {
		return f.Add(e, child.Offset.element())
	})
	return f, err
}

func (m *Menu) buildControl(n Node) (*element.Control, error) {
	var c *element.Control
	switch n.Type {
	case TypeButton:
		b := element.NewButton(n.Text)
		b.OnSubmit = m.submitFor(n)
		c = b.Control
	case TypeToggle:
		c = element.NewToggle(n.Text, n.On).Control
	case TypeChoice:
		ch, err := m.buildChoice(n)
		if err != nil {
			return nil, err
		}
		c = ch.Control
	case TypeInput:
		var validate func(string) error
		if n.Pattern != "" {
			re, err := compilePattern(n.Pattern)
			if err != nil {
				return nil, err
			}
			validate = func(s string) error {
				if !re.MatchString(s) {
					return fmt.Errorf("%q does not match %s", s, n.Pattern)
				}
				return nil
			}
		}
		in, err := element.NewTextInput(n.Text, n.Value, validate)
		if err != nil {
			return nil, err
		}
		c = in.Control
	default:
		return nil, fmt.Errorf("unknown type %q", n.Type)
	}
	c.SetDescription(n.Description)
	c.SetInteractable(!n.Disabled)
	if n.ID != "" {
		m.controls.Set(n.ID, c)
	}
	return c, nil
}

func (m *Menu) buildChoice(n Node) (*element.Choice, error) {
	if n.Min != nil && n.Max != nil {
		r, err := model.NewIntRange(*n.Min, *n.Max, n.Index)
		if err != nil {
			return nil, err
		}
		r.Circular = n.Circular != nil && *n.Circular
		return element.NewChoice(n.Text, r), nil
	}
	lc, err := model.NewListChoice(n.Values)
	if err != nil {
		return nil, err
	}
	if err := lc.SetIndex(n.Index); err != nil {
		return nil, err
	}
	lc.Circular = n.Circular == nil || *n.Circular
	return element.NewChoice(n.Text, lc), nil
}

// submitFor resolves goto targets at activation time so buttons may point
// at screens declared later in the document.
func (m *Menu) submitFor(n Node) func() {
	switch {
	case n.Goto != "":
		target := n.Goto
		return func() {
			if s, ok := m.Screen(target); ok {
				m.nav.Show(s, screen.Add)
			}
		}
	case n.Action == ActionBack:
		return func() {
			if cur, ok := m.nav.Current(); ok {
				cur.RequestBack()
			}
		}
	case n.Action == ActionQuit:
		return func() {
			if m.OnQuit != nil {
				m.OnQuit()
			}
		}
	}
	return nil
}
