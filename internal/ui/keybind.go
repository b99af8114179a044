package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"keyaccel/internal/accel"
	"keyaccel/internal/keys"
)

// Binding is one accelerator a component offers while mounted.
// Key is an alias ("esc") or a numeric code ("81").
type Binding struct {
	Key     string
	Help    string
	Handler accel.Handler
}

// Hint is a help-bar entry for a live accelerator.
type Hint struct {
	Key  string
	Help string
}

// Binder is the UI side of the accelerator registry. It issues component
// identities, remembers help text for mounted bindings, and collects
// commands emitted by handlers during a dispatch.
type Binder struct {
	Registry *accel.Registry
	help     map[accel.ID]map[keys.Code]string
	pending  []tea.Cmd
}

// NewBinder wraps reg.
func NewBinder(reg *accel.Registry) *Binder {
	return &Binder{
		Registry: reg,
		help:     make(map[accel.ID]map[keys.Code]string),
	}
}

// New returns an unmounted Accelerators handle with a fresh identity.
func (b *Binder) New(prefix string) *Accelerators {
	return &Accelerators{binder: b, id: b.Registry.NewID(prefix)}
}

// Emit queues cmd to be returned from the current Update.
func (b *Binder) Emit(cmd tea.Cmd) {
	if cmd != nil {
		b.pending = append(b.pending, cmd)
	}
}

// Drain returns and clears the queued commands as one batch.
func (b *Binder) Drain() tea.Cmd {
	if len(b.pending) == 0 {
		return nil
	}
	cmds := b.pending
	b.pending = nil
	return tea.Batch(cmds...)
}

// Hints lists live accelerators in dispatch priority order. A key bound by
// several components appears once, with the help of the one that gets it
// first.
func (b *Binder) Hints() []Hint {
	seen := make(map[keys.Code]bool)
	var out []Hint
	for _, id := range b.Registry.Subscribers() {
		for _, code := range b.Registry.Keys(id) {
			if seen[code] {
				continue
			}
			seen[code] = true
			desc := b.help[id][code]
			if desc == "" {
				continue
			}
			out = append(out, Hint{Key: displayKey(code), Help: desc})
		}
	}
	return out
}

// displayKey renders a code the way users type it.
func displayKey(c keys.Code) string {
	n, ok := c.Number()
	if !ok {
		return string(c)
	}
	switch {
	case n >= 'A' && n <= 'Z':
		return string(rune(n - 'A' + 'a'))
	case n >= '0' && n <= '9':
		return string(rune(n))
	case n == 191:
		return "?"
	}
	return keys.Name(c)
}

// Accelerators binds one component's keys for as long as it is mounted.
type Accelerators struct {
	binder *Binder
	id     accel.ID
}

// ID returns the component identity.
func (a *Accelerators) ID() accel.ID {
	return a.id
}

// Mount registers bs. Calling Mount again adds or replaces bindings.
func (a *Accelerators) Mount(bs ...Binding) {
	handlers := make(accel.Bindings, len(bs))
	help := a.binder.help[a.id]
	if help == nil {
		help = make(map[keys.Code]string)
	}
	for _, b := range bs {
		handlers[b.Key] = b.Handler
		help[keys.Resolve(b.Key)] = b.Help
	}
	a.binder.help[a.id] = help
	a.binder.Registry.StartListening(a.id, handlers)
}

// Unbind removes only the named keys.
func (a *Accelerators) Unbind(names ...string) {
	if len(names) == 0 {
		return
	}
	handlers := make(accel.Bindings, len(names))
	for _, n := range names {
		handlers[n] = nil
		delete(a.binder.help[a.id], keys.Resolve(n))
	}
	a.binder.Registry.StopListening(a.id, handlers)
}

// Unmount removes every binding. Safe to call more than once.
func (a *Accelerators) Unmount() {
	delete(a.binder.help, a.id)
	a.binder.Registry.StopListening(a.id, nil)
}

// Mounted reports whether any of the component's keys are live.
func (a *Accelerators) Mounted() bool {
	return len(a.binder.Registry.Keys(a.id)) > 0
}

// consume wraps fn as a handler that always consumes its key.
func consume(fn func()) accel.Handler {
	return func(accel.Event) bool {
		fn()
		return true
	}
}
