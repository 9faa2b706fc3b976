package events

import "github.com/atomicstack/menunav/internal/logging"

type NavTracer struct{}

type navReason string

const (
	NavReasonNoNeighbor navReason = "no-neighbor"
	NavReasonHidden     navReason = "hidden"
	NavReasonDisabled   navReason = "disabled"
)

var Nav = NavTracer{}

func (NavTracer) Move(direction, from, to string) {
	logging.Trace("nav.move", map[string]interface{}{"direction": direction, "from": from, "to": to})
}

func (NavTracer) Blocked(direction, from string, reason navReason) {
	logging.Trace("nav.blocked", map[string]interface{}{"direction": direction, "from": from, "reason": string(reason)})
}

func (NavTracer) Activate(target string) {
	logging.Trace("nav.activate", map[string]interface{}{"target": target})
}

func (NavTracer) Adjust(target string, delta int) {
	logging.Trace("nav.adjust", map[string]interface{}{"target": target, "delta": delta})
}

func (NavTracer) Jump(query, target string) {
	logging.Trace("nav.jump", map[string]interface{}{"query": query, "target": target})
}
