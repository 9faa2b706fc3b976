package command

import (
	"errors"

	"github.com/atomicstack/menunav/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrRefused is reported when a control ignores its activation.
var ErrRefused = errors.New("control refused activation")

// Request encapsulates one control activation.
type Request struct {
	ID    string
	Label string
	Run   func() error
}

// Result is delivered to the model after a request ran.
type Result struct {
	ID    string
	Label string
	Err   error
}

// Bus coordinates control activations.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs the request immediately, since the element tree belongs to
// the update loop, and returns a command that reports the outcome.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	if req.Run == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	err := req.Run()
	events.Command.Result(req.ID, req.Label, err)
	return func() tea.Msg {
		return Result{ID: req.ID, Label: req.Label, Err: err}
	}
}
