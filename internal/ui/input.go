package ui

import (
	"unicode"

	"github.com/atomicstack/menunav/internal/logging/events"
	uistate "github.com/atomicstack/menunav/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) openJump() {
	cur, ok := m.nav.Current()
	if !ok {
		return
	}
	m.jump = uistate.NewJump(uistate.ItemsFor(cur.Elements()))
	if idx := m.jump.IndexOf(m.nav.Focus()); idx >= 0 {
		m.jump.Cursor = idx
	}
	m.jumpCursor.Focus()
	m.jumpCursorDirty = true
	events.Jump.Open(cur.Title(), len(m.jump.Full))
}

func (m *Model) closeJump(reason string) {
	if m.jump == nil {
		return
	}
	m.jump = nil
	m.jumpCursor.Blur()
	events.Jump.Close(reason)
}

func (m *Model) commitJump() {
	item, ok := m.jump.Selected()
	query := m.jump.Query
	m.closeJump("select")
	if !ok {
		return
	}
	m.nav.Select(item.Target)
	events.Nav.Jump(query, item.Target.Name())
}

func (m *Model) updateJumpCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.jumpCursor, cmd = m.jumpCursor.Update(msg)
	return cmd
}

func (m *Model) noteQueryCursorChange(before int) {
	if before != m.jump.QueryCursorPos() {
		m.jumpCursorDirty = true
	}
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeJump("cancel")
		return nil
	case "enter":
		m.commitJump()
		return nil
	case "ctrl+c":
		m.closeJump("quit")
		m.quit()
		return nil
	case "up", "ctrl+p":
		m.jump.MoveCursor(-1)
		return nil
	case "down", "ctrl+n":
		m.jump.MoveCursor(1)
		return nil
	case "home":
		m.jump.MoveCursorHome()
		return nil
	case "end":
		m.jump.MoveCursorEnd()
		return nil
	}
	m.handleQueryInput(msg)
	return nil
}

// handleQueryInput edits the jump query. It reports whether msg was consumed.
func (m *Model) handleQueryInput(msg tea.KeyMsg) bool {
	j := m.jump
	before := j.QueryCursorPos()
	query := j.Query
	changed := false
	switch msg.String() {
	case "ctrl+u":
		if j.Query == "" {
			return false
		}
		j.SetQuery("", 0)
		changed = true
	case "ctrl+w":
		changed = j.DeleteWordBackward()
	case "ctrl+a":
		changed = j.MoveQueryCursor(-len([]rune(j.Query)))
	case "ctrl+e":
		changed = j.MoveQueryCursor(len([]rune(j.Query)))
	case "alt+b":
		changed = j.MoveQueryCursorWordBackward()
	case "alt+f":
		changed = j.MoveQueryCursorWordForward()
	default:
		switch msg.Type {
		case tea.KeyBackspace, tea.KeyCtrlH:
			changed = j.DeleteRuneBackward()
		case tea.KeyLeft:
			changed = j.MoveQueryCursor(-1)
		case tea.KeyRight:
			changed = j.MoveQueryCursor(1)
		case tea.KeySpace:
			changed = j.InsertText(" ")
		case tea.KeyRunes:
			if msg.Alt || len(msg.Runes) == 0 {
				return false
			}
			for _, r := range msg.Runes {
				if unicode.IsControl(r) {
					return false
				}
			}
			changed = j.InsertText(string(msg.Runes))
		}
	}
	if !changed {
		return false
	}
	m.noteQueryCursorChange(before)
	if j.Query != query {
		events.Jump.Query(j.Query, len(j.Items))
	}
	return true
}
