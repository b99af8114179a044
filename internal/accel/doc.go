// Package accel implements keyboard accelerators shared by independently
// mounted UI components.
//
// A Registry multiplexes one keystroke Source across every component that has
// called StartListening. It attaches to the source when the first component
// registers and detaches when the last one stops listening.
//
// # Dispatch order
//
// Components are kept in the order they first registered. Each keystroke is
// offered to them newest first, so a modal pushed over a page sees keys before
// the page does:
//
//	reg := accel.New(src)
//	page, modal := reg.NewID("page"), reg.NewID("modal")
//	reg.StartListening(page, accel.Bindings{"esc": closePage})
//	reg.StartListening(modal, accel.Bindings{"esc": closeModal})
//	// esc now reaches closeModal first; closePage runs only if
//	// closeModal returns false.
//
// A handler that returns true consumes the event and ends the walk.
//
// # Failure model
//
// Nothing in this package returns an error. Stopping an identity that never
// registered, registering an empty binding set, and unknown key names all
// degrade to no-ops so that component mount and unmount paths never fail.
package accel
