package events

import "github.com/atomicstack/menunav/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Quit(screen string) {
	logging.Trace("app.quit", map[string]interface{}{"screen": screen})
}
