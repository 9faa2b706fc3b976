package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/menunav/internal/app"
	"github.com/atomicstack/menunav/internal/config"
	"github.com/atomicstack/menunav/internal/logging"
	"github.com/atomicstack/menunav/internal/logging/events"
	"golang.org/x/term"
)

const (
	exitError    = 1
	exitConfig   = 2
	exitProblems = 3
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(exitConfig)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupPayload(cfg, os.Stdout.Fd()))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, app.ErrNavigationProblems) {
		return exitProblems
	}
	return exitError
}

// runMode names what the process does with the layout.
func runMode(cfg app.Config) string {
	switch {
	case cfg.Diagnose:
		return "diagnose"
	case cfg.Watch:
		return "watch"
	default:
		return "interactive"
	}
}

type layoutInfo struct {
	Path     string `json:"path"`
	Resolved string `json:"resolved,omitempty"`
	Size     int64  `json:"size,omitempty"`
	Error    string `json:"error,omitempty"`
}

func describeLayout(path string) layoutInfo {
	info := layoutInfo{Path: path}
	if abs, err := filepath.Abs(path); err == nil {
		info.Resolved = abs
	}
	st, err := os.Stat(path)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Size = st.Size()
	return info
}

type viewport struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Terminal   bool `json:"terminal"`
	FixedWidth bool `json:"fixed_width"`
}

// resolveViewport reports the size the menu will draw at: configured
// dimensions win, the terminal on fd fills the rest.
func resolveViewport(cfg app.Config, fd uintptr) viewport {
	vp := viewport{Width: cfg.Width, Height: cfg.Height, FixedWidth: cfg.Width > 0}
	if !term.IsTerminal(int(fd)) {
		return vp
	}
	vp.Terminal = true
	if w, h, err := term.GetSize(int(fd)); err == nil {
		if vp.Width == 0 {
			vp.Width = w
		}
		if vp.Height == 0 {
			vp.Height = h
		}
	}
	return vp
}

// startupPayload bundles the layout, mode and viewport for the start trace.
func startupPayload(cfg config.Config, fd uintptr) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    cfg.Flags,
		"mode":     runMode(cfg.App),
		"layout":   describeLayout(cfg.App.LayoutPath),
		"viewport": resolveViewport(cfg.App, fd),
		"trace":    cfg.Logging.Trace,
		"logFile":  cfg.Logging.FilePath,
	}
	if cfg.App.StartScreen != "" {
		payload["screen"] = cfg.App.StartScreen
	}
	if cfg.App.PrintValues {
		payload["printValues"] = true
	}
	return payload
}
