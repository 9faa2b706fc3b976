package ui

import (
	"fmt"

	"github.com/atomicstack/menunav/internal/layoutdoc"
	"github.com/atomicstack/menunav/internal/logging"
	"github.com/atomicstack/menunav/internal/screen"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForReload(w *layoutdoc.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return reloadDoneMsg{}
		}
		return reloadMsg{event: evt}
	}
}

type reloadMsg struct {
	event layoutdoc.Event
}

type reloadDoneMsg struct{}

func (m *Model) handleReloadMsg(msg tea.Msg) tea.Cmd {
	reload, ok := msg.(reloadMsg)
	if !ok {
		return nil
	}
	m.applyReload(reload.event)
	if m.watcher != nil {
		return waitForReload(m.watcher)
	}
	return nil
}

func (m *Model) handleReloadDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// applyReload swaps in the reloaded document. A document that fails to load
// or build leaves the current menu in place.
func (m *Model) applyReload(evt layoutdoc.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		m.errMsg = evt.Err.Error()
		return
	}
	next, err := layoutdoc.Build(evt.Doc, screen.NewNavigator())
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return
	}

	start := ""
	if cur, ok := m.nav.Current(); ok {
		if id, ok := m.menu.IDOf(cur); ok {
			if _, exists := next.Screen(id); exists {
				start = id
			}
		}
	}
	prev := m.menu
	m.closeJump("reload")
	m.editor = nil
	if err := m.install(next, start); err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return
	}
	prev.Dispose()
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("Reloaded %d screens", len(next.ScreenIDs())))
}
