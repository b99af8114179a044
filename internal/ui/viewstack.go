package ui

// History is the stack of visited pages used by backspace navigation.
type History struct {
	Stack []string
}

// Push records a visit. Visiting the page already on top is not recorded twice.
func (h *History) Push(page string) {
	if top, ok := h.Peek(); ok && top == page {
		return
	}
	h.Stack = append(h.Stack, page)
}

// Back drops the current page and returns the one before it.
// Returns false when there is nowhere to go back to.
func (h *History) Back() (string, bool) {
	if len(h.Stack) < 2 {
		return "", false
	}
	h.Stack = h.Stack[:len(h.Stack)-1]
	return h.Stack[len(h.Stack)-1], true
}

// Peek returns the current page.
func (h *History) Peek() (string, bool) {
	if len(h.Stack) == 0 {
		return "", false
	}
	return h.Stack[len(h.Stack)-1], true
}

// Len returns the number of recorded visits.
func (h *History) Len() int {
	return len(h.Stack)
}
