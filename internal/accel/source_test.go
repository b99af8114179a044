package accel

// fakeSource counts subscriptions so tests can check attach/detach pairing.
type fakeSource struct {
	listener     Listener
	subscribes   int
	unsubscribes int
	doubleAttach bool
	doubleDetach bool
}

func (s *fakeSource) Subscribe(fn Listener) func() {
	if s.listener != nil {
		s.doubleAttach = true
	}
	s.listener = fn
	s.subscribes++
	return func() {
		if s.listener == nil {
			s.doubleDetach = true
		}
		s.listener = nil
		s.unsubscribes++
	}
}

func (s *fakeSource) attached() bool {
	return s.listener != nil
}

// press delivers a keydown with the given code through the subscribed listener.
func (s *fakeSource) press(code int) bool {
	if s.listener == nil {
		return false
	}
	return s.listener(Event{KeyCode: code})
}

// recorder returns a handler that appends name to *calls and returns consume.
func recorder(calls *[]string, name string, consume bool) Handler {
	return func(Event) bool {
		*calls = append(*calls, name)
		return consume
	}
}
