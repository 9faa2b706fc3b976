package events

import "github.com/atomicstack/menunav/internal/logging"

type ScreenTracer struct{}

var Screen = ScreenTracer{}

func (ScreenTracer) Show(title, navigation string, depth int) {
	logging.Trace("screen.show", map[string]interface{}{"title": title, "navigation": navigation, "depth": depth})
}

func (ScreenTracer) Hide(title, navigation string) {
	logging.Trace("screen.hide", map[string]interface{}{"title": title, "navigation": navigation})
}

func (ScreenTracer) GoBack(from string, popped int) {
	logging.Trace("screen.back", map[string]interface{}{"from": from, "popped": popped})
}

func (ScreenTracer) HookError(title string, err error) {
	if err == nil {
		return
	}
	logging.Trace("screen.hook.error", map[string]interface{}{"title": title, "error": err.Error()})
}
