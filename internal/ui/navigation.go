package ui

import (
	"errors"

	"github.com/atomicstack/menunav/internal/element"
	"github.com/atomicstack/menunav/internal/logging/events"
	"github.com/atomicstack/menunav/internal/screen"
	"github.com/atomicstack/menunav/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoFocus = errors.New("nothing focused")

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.jump != nil {
		return m.handleJumpKey(keyMsg)
	}
	m.errMsg = ""
	k := m.keys
	switch {
	case key.Matches(keyMsg, k.Quit):
		m.quit()
	case key.Matches(keyMsg, k.Up):
		m.move(element.Up)
	case key.Matches(keyMsg, k.Down):
		m.move(element.Down)
	case key.Matches(keyMsg, k.Left):
		m.adjustOrMove(-1, element.Left)
	case key.Matches(keyMsg, k.Right):
		m.adjustOrMove(1, element.Right)
	case key.Matches(keyMsg, k.Activate):
		return m.activate()
	case key.Matches(keyMsg, k.Back):
		m.back()
	case key.Matches(keyMsg, k.NextPage):
		m.turnPage(1)
	case key.Matches(keyMsg, k.PrevPage):
		m.turnPage(-1)
	case key.Matches(keyMsg, k.Jump):
		m.openJump()
	case key.Matches(keyMsg, k.Help):
		m.showHelp = !m.showHelp
	}
	return nil
}

func (m *Model) move(d element.Direction) {
	if m.nav.Focus() == nil {
		m.nav.Flush()
	}
	m.nav.Move(d)
}

// adjustOrMove steps a focused choice; any other control moves focus.
func (m *Model) adjustOrMove(delta int, d element.Direction) {
	if focus := m.nav.Focus(); focus != nil && focus.Control().Adjustable() {
		if focus.Control().Adjust(delta) {
			events.Nav.Adjust(focus.Name(), delta)
		}
		return
	}
	m.move(d)
}

func (m *Model) activate() tea.Cmd {
	focus := m.nav.Focus()
	if focus == nil {
		m.errMsg = errNoFocus.Error()
		return nil
	}
	c := focus.Control()
	if in, ok := c.Owner().(*element.TextInput); ok && c.Interactable() {
		return m.openEditor(in)
	}
	events.Nav.Activate(focus.Name())
	return m.bus.Execute(command.Request{
		ID:    focus.Name(),
		Label: c.Display(),
		Run: func() error {
			if !c.Activate() {
				return command.ErrRefused
			}
			return nil
		},
	})
}

// back leaves the current screen, or quits from the first one.
func (m *Model) back() {
	cur, ok := m.nav.Current()
	if !ok || m.nav.Depth() <= 1 {
		m.quit()
		return
	}
	cur.RequestBack()
}

func (m *Model) turnPage(delta int) {
	cur, ok := m.nav.Current()
	if !ok {
		return
	}
	p, ok := cur.(*screen.Paginated)
	if !ok {
		return
	}
	if p.PageChoice().Adjust(delta) {
		events.Nav.Adjust(p.PageChoice().Text(), delta)
		m.nav.Flush()
		m.nav.Select(p.Selection(screen.Forwards))
	}
}
