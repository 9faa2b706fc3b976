package events

import "github.com/atomicstack/menunav/internal/logging"

type LayoutTracer struct{}

var Layout = LayoutTracer{}

func (LayoutTracer) Flush(screen string, passes int) {
	logging.Trace("layout.flush", map[string]interface{}{"screen": screen, "passes": passes})
}

// Unsettled is traced when layout kept dirtying the screen after the last
// allowed pass.
func (LayoutTracer) Unsettled(screen string, passes int) {
	logging.Trace("layout.unsettled", map[string]interface{}{"screen": screen, "passes": passes})
}
