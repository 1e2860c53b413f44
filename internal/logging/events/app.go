package events

import "github.com/unitdash/unitdash/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) Key(key string) {
	logging.Trace("input.key", map[string]interface{}{"key": key})
}

func (InputTracer) Stopped(reason string) {
	logging.Trace("input.stopped", map[string]interface{}{"reason": reason})
}
