package events

import "github.com/atomicstack/menunav/internal/logging"

type CommandTracer struct{}

type JumpTracer struct{}

var (
	Command = CommandTracer{}
	Jump    = JumpTracer{}
)

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := map[string]interface{}{"id": id, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}

func (JumpTracer) Open(screen string, candidates int) {
	logging.Trace("jump.open", map[string]interface{}{"screen": screen, "candidates": candidates})
}

func (JumpTracer) Query(query string, matches int) {
	logging.Trace("jump.query", map[string]interface{}{"query": query, "matches": matches})
}

func (JumpTracer) Close(reason string) {
	logging.Trace("jump.close", map[string]interface{}{"reason": reason})
}
