package accel

import (
	"sort"

	"keyaccel/internal/keys"
)

// ID identifies one mounted component for as long as it is registered.
// IDs are issued by Registry.NewID and never reused by that registry.
type ID string

// Event is a single keydown delivered by a Source.
type Event struct {
	KeyCode int    // Primary numeric key code
	Which   int    // Legacy key code, used when KeyCode is zero
	Key     string // Source's textual form of the key (e.g. "ctrl+c")
	Ctrl    bool
	Alt     bool
	Shift   bool
	Msg     any // Original source message, if any
}

// Code returns the event's numeric key code, preferring KeyCode over Which.
func (e Event) Code() int {
	if e.KeyCode != 0 {
		return e.KeyCode
	}
	return e.Which
}

// Handler handles a key event. Returning true consumes the event: no
// lower-priority component sees it.
type Handler func(Event) bool

// Bindings maps key names or codes to handlers. Keys are resolved through
// keys.Resolve, so "enter" and "13" name the same binding.
type Bindings map[string]Handler

// Listener receives every keystroke from a Source and reports whether it
// was consumed.
type Listener func(Event) bool

// Source is the raw keystroke stream. Subscribe registers fn and returns the
// function that removes it again.
type Source interface {
	Subscribe(fn Listener) (unsubscribe func())
}

// resolved converts b into a code-keyed map, dropping nil handlers.
// When two names resolve to the same code, the literal code ("27") beats an
// alias ("esc"), and between aliases the name sorting last wins.
func (b Bindings) resolved() map[keys.Code]Handler {
	names := make([]string, 0, len(b))
	for name, h := range b {
		if h != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make(map[keys.Code]Handler, len(names))
	literal := make(map[keys.Code]bool)
	for _, name := range names {
		code := keys.Resolve(name)
		isLiteral := string(code) == name
		if literal[code] && !isLiteral {
			continue
		}
		out[code] = b[name]
		literal[code] = literal[code] || isLiteral
	}
	return out
}
