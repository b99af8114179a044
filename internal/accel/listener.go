package accel

// nopSource is used when a Registry is created without a Source, so attach
// and detach still track state for tests and headless use.
type nopSource struct{}

func (nopSource) Subscribe(Listener) func() { return func() {} }

// globalListener owns the registry's single subscription to its Source.
type globalListener struct {
	src         Source
	unsubscribe func()
}

func (l *globalListener) attached() bool {
	return l.unsubscribe != nil
}

// attach subscribes fn. Reports false if already attached.
func (l *globalListener) attach(fn Listener) bool {
	if l.attached() {
		return false
	}
	unsub := l.src.Subscribe(fn)
	if unsub == nil {
		unsub = func() {}
	}
	l.unsubscribe = unsub
	return true
}

// detach drops the subscription. Reports false if already detached.
func (l *globalListener) detach() bool {
	if !l.attached() {
		return false
	}
	unsub := l.unsubscribe
	l.unsubscribe = nil
	unsub()
	return true
}
