package accel

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"keyaccel/internal/keys"
)

// Registry holds the accelerators of every listening component and the
// subscription to the keystroke source they share. Create one per UI tree.
type Registry struct {
	mu       sync.Mutex
	entries  map[ID]map[keys.Code]Handler
	order    subscriberOrder
	listener globalListener
	nextID   uint64

	logger *log.Logger
	tracer trace.Tracer
}

// New returns an empty, detached registry. src may be nil, in which case the
// registry tracks attach state but receives no keystrokes except through
// Dispatch.
func New(src Source, opts ...Option) *Registry {
	if src == nil {
		src = nopSource{}
	}
	r := &Registry{
		entries:  make(map[ID]map[keys.Code]Handler),
		listener: globalListener{src: src},
		tracer:   defaultTracer(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewID issues a fresh identity. prefix only makes IDs readable in logs.
func (r *Registry) NewID(prefix string) ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	if prefix == "" {
		prefix = "component"
	}
	return ID(fmt.Sprintf("%s-%d", prefix, r.nextID))
}

// StartListening adds or replaces id's handlers for the keys in handlers.
// The first time id gains a binding it becomes the highest-priority
// subscriber. An empty handlers map does nothing.
func (r *Registry) StartListening(id ID, handlers Bindings) {
	if len(handlers) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		entry = make(map[keys.Code]Handler, len(handlers))
		r.entries[id] = entry
	}
	for code, h := range handlers.resolved() {
		entry[code] = h
	}
	if len(entry) == 0 {
		delete(r.entries, id)
		return
	}
	if r.order.add(id) {
		r.logf("accel: %s listening (%d subscribers)", id, r.order.len())
	}
	if r.listener.attach(r.Dispatch) {
		r.traceTransition("keyaccel.attach", id)
		r.logf("accel: attached to keystroke source")
	}
}

// StopListening removes id's handlers for the keys in handlers, or all of
// them when handlers is nil. An id left with no bindings stops listening.
// Stopping an id that is not listening does nothing.
func (r *Registry) StopListening(id ID, handlers Bindings) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return
	}
	if handlers != nil {
		for name := range handlers {
			delete(entry, keys.Resolve(name))
		}
	}
	if handlers == nil || len(entry) == 0 {
		delete(r.entries, id)
		r.order.remove(id)
		r.logf("accel: %s stopped listening (%d subscribers)", id, r.order.len())
	}
	if r.order.len() == 0 && r.listener.detach() {
		r.traceTransition("keyaccel.detach", id)
		r.logf("accel: detached from keystroke source")
	}
}

// Reset forgets every component and detaches from the source.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[ID]map[keys.Code]Handler)
	r.order.clear()
	if r.listener.detach() {
		r.traceTransition("keyaccel.detach", "")
		r.logf("accel: reset, detached from keystroke source")
	}
}

// Listening reports whether the registry is attached to its source.
func (r *Registry) Listening() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listener.attached()
}

// Len returns the number of listening components.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.len()
}

// Subscribers returns the listening components, highest priority first.
func (r *Registry) Subscribers() []ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.reversed()
}

// Keys returns the codes id is bound to in ascending key-code order.
func (r *Registry) Keys(id ID) []keys.Code {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := r.entries[id]
	out := make([]keys.Code, 0, len(entry))
	for code := range entry {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return codeLess(out[i], out[j]) })
	return out
}

// codeLess orders numeric codes by value, ahead of any non-numeric code.
func codeLess(a, b keys.Code) bool {
	an, aok := a.Number()
	bn, bok := b.Number()
	switch {
	case aok && bok:
		return an < bn
	case aok != bok:
		return aok
	}
	return a < b
}

// handler returns id's current handler for code, or nil.
func (r *Registry) handler(id ID, code keys.Code) Handler {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[id][code]
}

// traceTransition must be called with r.mu held.
func (r *Registry) traceTransition(name string, id ID) {
	_, span := r.tracer.Start(context.Background(), name)
	span.SetAttributes(attrID.String(string(id)), attrSubscribers.Int(r.order.len()))
	span.End()
}
