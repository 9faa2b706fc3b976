package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/atomicstack/menunav/internal/layoutdoc"
	"github.com/atomicstack/menunav/internal/logging/events"
	"github.com/atomicstack/menunav/internal/screen"
	"github.com/atomicstack/menunav/internal/theme"
	"github.com/atomicstack/menunav/internal/ui/command"
	uistate "github.com/atomicstack/menunav/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	menuHeaderSeparator = "→"
	defaultWidth        = 80
	infoDuration        = 5 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	// Width and Height pin the viewport; zero follows the terminal.
	Width  int
	Height int
	// ShowFooter keeps the key hints visible.
	ShowFooter bool
	// StartScreen overrides the document's start screen.
	StartScreen string
	// Watcher, when set, streams reloads of the layout file.
	Watcher *layoutdoc.Watcher
}

// Model implements the Bubble Tea model for a layout menu.
type Model struct {
	menu    *layoutdoc.Menu
	nav     *screen.Navigator
	surface *surface
	bus     *command.Bus
	watcher *layoutdoc.Watcher

	keys       keyMap
	help       help.Model
	showHelp   bool
	showFooter bool

	jump            *uistate.Jump
	jumpCursor      cursor.Model
	jumpCursorDirty bool
	editor          *editor
	errMsg          string
	infoMsg         string
	infoExpire      time.Time
	width, height   int
	fixedWidth      bool
	fixedHeight     bool
	quitting        bool
	handlers        map[reflect.Type]msgHandler
}

// NewModel shows the start screen of menu and returns the model driving it.
func NewModel(menu *layoutdoc.Menu, opts Options) (*Model, error) {
	m := &Model{
		surface:    newSurface(),
		bus:        command.New(),
		watcher:    opts.Watcher,
		keys:       defaultKeyMap(),
		help:       help.New(),
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.jumpCursor = c
	if err := m.install(menu, opts.StartScreen); err != nil {
		return nil, err
	}
	m.registerHandlers()
	return m, nil
}

// install wires menu into the model and shows the screen with id start, or
// the document's start screen when start is empty.
func (m *Model) install(menu *layoutdoc.Menu, start string) error {
	first := menu.Start()
	if start != "" {
		s, ok := menu.Screen(start)
		if !ok {
			return fmt.Errorf("unknown screen %q", start)
		}
		first = s
	}
	if err := menu.SetSurface(m.surface); err != nil {
		return err
	}
	menu.OnQuit = m.quit
	menu.Navigator().OnEmpty(m.quit)
	m.menu = menu
	m.nav = menu.Navigator()
	m.nav.Show(first, screen.Add)
	return nil
}

func (m *Model) quit() {
	if m.quitting {
		return
	}
	m.quitting = true
	title := ""
	if cur, ok := m.nav.Current(); ok {
		title = cur.Title()
	}
	events.App.Quit(title)
}

// Menu returns the menu currently shown.
func (m *Model) Menu() *layoutdoc.Menu {
	return m.menu
}

// Values returns the current control values of the menu.
func (m *Model) Values() map[string]string {
	return m.menu.Values()
}

// Quitting reports whether the program is exiting.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.watcher != nil {
		cmds = append(cmds, waitForReload(m.watcher))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if m.jump != nil {
		if cmd := m.updateJumpCursorModel(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	handled, cmd := m.handleEditor(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled {
		return m, m.finishUpdate(cmds)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResult,
		reflect.TypeOf(reloadMsg{}):         m.handleReloadMsg,
		reflect.TypeOf(reloadDoneMsg{}):     m.handleReloadDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.nav != nil {
		m.nav.Flush()
	}
	if m.quitting {
		return tea.Quit
	}
	if m.jumpCursorDirty {
		m.jumpCursorDirty = false
		m.jumpCursor.Blink = false
		if cmd := m.jumpCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleCommandResult(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if res.Err != nil {
		m.errMsg = res.Err.Error()
		m.forceClearInfo()
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoDuration)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}
