package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal view together with the accelerators it owns.
// Its keys are live exactly while it is on an OverlayStack.
type Overlay struct {
	View View
	Keys *Accelerators
}

// OverlayStack manages a stack of overlays. The topmost was mounted last, so
// its accelerators receive keys before anything underneath.
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack and mounts its accelerators.
func (s *OverlayStack) Push(o Overlay, bs ...Binding) {
	s.Stack = append(s.Stack, o)
	if o.Keys != nil {
		o.Keys.Mount(bs...)
	}
}

// Pop removes the top overlay and unmounts its accelerators.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	if top.Keys != nil {
		top.Keys.Unmount()
	}
	return top, true
}

// Remove drops the overlay whose accelerators are keys, wherever it sits in
// the stack. Reports whether it was found.
func (s *OverlayStack) Remove(keys *Accelerators) bool {
	for i := range s.Stack {
		if s.Stack[i].Keys != keys {
			continue
		}
		s.Stack = append(s.Stack[:i], s.Stack[i+1:]...)
		if keys != nil {
			keys.Unmount()
		}
		return true
	}
	return false
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Clear pops every overlay.
func (s *OverlayStack) Clear() {
	for s.Len() > 0 {
		s.Pop()
	}
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}
