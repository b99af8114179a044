// Package ui is the terminal style guide: a page list, a page viewer, and
// modal overlays, composed with Bubble Tea.
//
// Components never look at tea.KeyMsg directly for their shortcuts. Each one
// gets an Accelerators handle from the Binder, mounts its bindings when it
// gains focus or opens, and unmounts them when it loses focus or closes. The
// root model feeds keys through the accelerator registry first, so the most
// recently mounted component (usually the topmost modal) answers first.
//
// Core abstractions:
//   - View: a screen region with its own update and render (Elm-style)
//   - Binder / Accelerators: component identity and mounted key bindings
//   - FocusManager: rotates focus and swaps panel accelerators
//   - OverlayStack: modals whose keys outrank everything beneath them
//   - History: backspace navigation between visited pages
package ui
