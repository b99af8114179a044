// Package keysource adapts Bubble Tea key messages into an accel.Source.
//
// The root model feeds every tea.KeyMsg through Source.Feed before routing it
// to views; Feed reports whether an accelerator consumed the key so the model
// can stop propagation.
package keysource

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"keyaccel/internal/accel"
	"keyaccel/internal/keys"
)

// Source is a keystroke source with at most one subscriber, which is all an
// accel.Registry ever needs.
type Source struct {
	mu       sync.Mutex
	listener accel.Listener
	gen      uint64
}

// Ensure Source implements accel.Source.
var _ accel.Source = (*Source)(nil)

// New creates a source with no subscriber.
func New() *Source {
	return &Source{}
}

// Subscribe implements accel.Source. A second Subscribe replaces the first;
// the stale unsubscribe func then does nothing.
func (s *Source) Subscribe(fn accel.Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	gen := s.gen
	s.listener = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen == gen {
			s.listener = nil
		}
	}
}

// Attached reports whether a listener is subscribed.
func (s *Source) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listener != nil
}

// Feed delivers msg to the subscriber. Returns false when nothing is
// subscribed or the subscriber left the key unconsumed.
func (s *Source) Feed(msg tea.KeyMsg) bool {
	s.mu.Lock()
	fn := s.listener
	s.mu.Unlock()
	if fn == nil {
		return false
	}
	return fn(EventFromKey(msg))
}

// EventFromKey converts a Bubble Tea key message to an accel.Event carrying a
// browser-style numeric key code. Keys without a code (multi-rune pastes,
// unmapped control sequences) produce KeyCode 0 and match no binding.
func EventFromKey(msg tea.KeyMsg) accel.Event {
	ev := accel.Event{
		Key: msg.String(),
		Alt: msg.Alt,
		Msg: msg,
	}
	if code, ok := specialCodes[msg.Type]; ok {
		ev.KeyCode = code
		return ev
	}
	switch {
	case msg.Type == tea.KeyRunes:
		if len(msg.Runes) == 1 {
			ev.KeyCode = runeCode(msg.Runes[0])
		}
	case msg.Type == tea.KeyShiftTab:
		ev.KeyCode = keys.Tab
		ev.Shift = true
	case msg.Type == tea.KeyCtrlH:
		ev.KeyCode = keys.Backspace
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		ev.KeyCode = 'A' + int(msg.Type-tea.KeyCtrlA)
		ev.Ctrl = true
	}
	return ev
}

var specialCodes = map[tea.KeyType]int{
	tea.KeyBackspace: keys.Backspace,
	tea.KeyTab:       keys.Tab,
	tea.KeyEnter:     keys.Enter,
	tea.KeyEsc:       keys.Esc,
	tea.KeySpace:     keys.Space,
	tea.KeyPgUp:      33,
	tea.KeyPgDown:    34,
	tea.KeyEnd:       35,
	tea.KeyHome:      36,
	tea.KeyLeft:      keys.Left,
	tea.KeyUp:        keys.Up,
	tea.KeyRight:     keys.Right,
	tea.KeyDown:      keys.Down,
	tea.KeyInsert:    45,
	tea.KeyDelete:    46,
	tea.KeyF1:        112,
	tea.KeyF2:        113,
	tea.KeyF3:        114,
	tea.KeyF4:        115,
	tea.KeyF5:        116,
	tea.KeyF6:        117,
	tea.KeyF7:        118,
	tea.KeyF8:        119,
	tea.KeyF9:        120,
	tea.KeyF10:       121,
	tea.KeyF11:       122,
	tea.KeyF12:       123,
}

// punctuation codes follow the US layout; shifted symbols share their key.
var punctuation = map[rune]int{
	';': 186, ':': 186,
	'=': 187, '+': 187,
	',': keys.Comma, '<': keys.Comma,
	'-': 189, '_': 189,
	'.': 190, '>': 190,
	'/': 191, '?': 191,
	'`': 192, '~': 192,
	'[': 219, '{': 219,
	'\\': 220, '|': 220,
	']': 221, '}': 221,
	'\'': 222, '"': 222,
}

func runeCode(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a' + 'A')
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return int(r)
	case r == ' ':
		return keys.Space
	}
	return punctuation[r]
}
