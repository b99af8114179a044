package accel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"keyaccel/internal/keys"
)

const (
	attrKeyCode     = attribute.Key("keyaccel.key.code")
	attrConsumed    = attribute.Key("keyaccel.consumed")
	attrID          = attribute.Key("keyaccel.component.id")
	attrSubscribers = attribute.Key("keyaccel.subscribers")
)

// Dispatch offers ev to listening components, most recently registered
// first, and stops at the first handler that returns true. It reports
// whether the event was consumed. A component that stops listening during
// the walk is skipped from then on.
//
// Dispatch is the Listener the registry subscribes to its Source; calling it
// directly is how tests and synthetic keystrokes are delivered.
func (r *Registry) Dispatch(ev Event) bool {
	code := ev.Code()
	_, span := r.tracer.Start(context.Background(), "keyaccel.dispatch")
	defer span.End()
	span.SetAttributes(attrKeyCode.Int(code))

	c := keys.FromNumber(code)
	for _, id := range r.Subscribers() {
		h := r.handler(id, c)
		if h == nil {
			continue
		}
		if h(ev) {
			span.SetAttributes(attrConsumed.Bool(true), attrID.String(string(id)))
			r.logf("accel: key %s consumed by %s", keys.Name(c), id)
			return true
		}
	}
	span.SetAttributes(attrConsumed.Bool(false))
	return false
}
