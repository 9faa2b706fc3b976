package events

import "github.com/atomicstack/menunav/internal/logging"

type DocTracer struct{}

var Doc = DocTracer{}

func (DocTracer) Load(path string, screens int) {
	logging.Trace("doc.load", map[string]interface{}{"path": path, "screens": screens})
}

func (DocTracer) Change(path, op string) {
	logging.Trace("doc.change", map[string]interface{}{"path": path, "op": op})
}

func (DocTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("doc.error", map[string]interface{}{"path": path, "error": err.Error()})
}
