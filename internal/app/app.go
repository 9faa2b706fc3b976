package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/menunav/internal/layoutdoc"
	"github.com/atomicstack/menunav/internal/logging"
	"github.com/atomicstack/menunav/internal/navgraph"
	"github.com/atomicstack/menunav/internal/screen"
	"github.com/atomicstack/menunav/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"
)

// ErrNavigationProblems is returned by Diagnose when a screen has controls
// that focus cannot reach or cannot leave.
var ErrNavigationProblems = errors.New("navigation problems found")

// Config describes user-provided application options.
type Config struct {
	LayoutPath  string
	StartScreen string
	Watch       bool
	Width       int
	Height      int
	ShowFooter  bool
	Diagnose    bool
	PrintValues bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	menu, err := loadMenu(cfg.LayoutPath)
	if err != nil {
		return err
	}
	if cfg.Diagnose {
		return Diagnose(os.Stdout, menu)
	}

	var watcher *layoutdoc.Watcher
	if cfg.Watch {
		watcher, err = layoutdoc.NewWatcher(cfg.LayoutPath, layoutdoc.DefaultReloadInterval)
		if err != nil {
			return fmt.Errorf("watch layout: %w", err)
		}
		defer watcher.Stop()
	}
	model, err := ui.NewModel(menu, ui.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		StartScreen: cfg.StartScreen,
		Watcher:     watcher,
	})
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	if cfg.PrintValues {
		return WriteValues(os.Stdout, model.Values())
	}
	return nil
}

func loadMenu(path string) (*layoutdoc.Menu, error) {
	doc, err := layoutdoc.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	menu, err := layoutdoc.Build(doc, screen.NewNavigator())
	if err != nil {
		return nil, fmt.Errorf("build layout: %w", err)
	}
	return menu, nil
}

// Diagnose shows every screen of menu in turn and writes a navigation report
// for each. It returns ErrNavigationProblems when any report is not clean.
func Diagnose(w io.Writer, menu *layoutdoc.Menu) error {
	nav := menu.Navigator()
	failed := 0
	for i, id := range menu.ScreenIDs() {
		s, _ := menu.Screen(id)
		nav.Show(s, screen.Replace)
		nav.Flush()
		report := navgraph.Analyze(s.Title(), s.Elements(), nav.Focus())
		if !report.OK() {
			failed++
			logging.Errorf("screen %q: %d unreachable, %d dead ends, %d traps", id, len(report.Unreachable), len(report.DeadEnds), len(report.Traps))
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, line := range report.Lines() {
			fmt.Fprintln(w, line)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w in %d screens", ErrNavigationProblems, failed)
	}
	return nil
}

// WriteValues writes the control values as indented JSON.
func WriteValues(w io.Writer, values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode values: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
