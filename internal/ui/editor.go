package ui

import (
	"github.com/atomicstack/menunav/internal/element"
	"github.com/atomicstack/menunav/internal/logging/events"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// editor edits the value of one text input control.
type editor struct {
	target *element.TextInput
	input  textinput.Model
}

func (m *Model) openEditor(in *element.TextInput) tea.Cmd {
	ti := textinput.New()
	ti.Prompt = in.Text() + ": "
	ti.SetValue(in.Value())
	ti.CursorEnd()
	if styles.FilterPrompt != nil {
		ti.PromptStyle = styles.FilterPrompt.Copy()
	}
	if styles.Filter != nil {
		ti.TextStyle = styles.Filter.Copy()
	}
	if w := m.viewWidth() - len([]rune(ti.Prompt)) - 1; w > 0 {
		ti.Width = w
	}
	m.editor = &editor{target: in, input: ti}
	events.Nav.Activate(in.Selectable().Name())
	return m.editor.input.Focus()
}

// handleEditor routes messages to the active editor. Enter commits the value
// through the control's validator; a rejected value keeps the editor open.
func (m *Model) handleEditor(msg tea.Msg) (bool, tea.Cmd) {
	if m.editor == nil {
		return false, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.editor = nil
			m.errMsg = ""
			return true, nil
		case "ctrl+c":
			m.editor = nil
			m.quit()
			return true, nil
		case "enter":
			if err := m.editor.target.SetValue(m.editor.input.Value()); err != nil {
				m.errMsg = err.Error()
				return true, nil
			}
			m.editor = nil
			m.errMsg = ""
			return true, nil
		}
	}
	var cmd tea.Cmd
	m.editor.input, cmd = m.editor.input.Update(msg)
	// size and blink messages still need their regular handlers
	return ok, cmd
}
