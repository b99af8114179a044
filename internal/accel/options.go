package accel

import (
	"log"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger logs attach/detach transitions and consumed keys to l.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// WithTracer records a span per dispatch and per attach/detach.
// A nil tracer leaves tracing disabled.
func WithTracer(t trace.Tracer) Option {
	return func(r *Registry) {
		if t != nil {
			r.tracer = t
		}
	}
}

func defaultTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("keyaccel/accel")
}

func (r *Registry) logf(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}
