package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"keyaccel/internal/accel"
)

func TestBinder_HintsFollowPriority(t *testing.T) {
	b := NewBinder(accel.New(nil))
	page := b.New("page")
	modal := b.New("modal")
	noop := func(accel.Event) bool { return true }

	page.Mount(
		Binding{Key: "esc", Help: "back", Handler: noop},
		Binding{Key: "81", Help: "quit", Handler: noop},
	)
	modal.Mount(Binding{Key: "esc", Help: "cancel", Handler: noop})

	hints := b.Hints()
	if len(hints) != 2 {
		t.Fatalf("expected 2 hints, got %v", hints)
	}
	if hints[0] != (Hint{Key: "esc", Help: "cancel"}) {
		t.Errorf("modal esc should come first, got %v", hints[0])
	}
	if hints[1] != (Hint{Key: "q", Help: "quit"}) {
		t.Errorf("expected q quit second, got %v", hints[1])
	}
}

func TestBinder_HintsInKeyCodeOrder(t *testing.T) {
	b := NewBinder(accel.New(nil))
	page := b.New("page")
	noop := func(accel.Event) bool { return true }

	page.Mount(
		Binding{Key: "81", Help: "quit", Handler: noop},
		Binding{Key: "backspace", Help: "previous page", Handler: noop},
	)

	hints := b.Hints()
	if len(hints) != 2 || hints[0].Key != "backspace" || hints[1].Key != "q" {
		t.Errorf("expected backspace before q, got %v", hints)
	}
}

func TestAccelerators_UnbindAndUnmount(t *testing.T) {
	reg := accel.New(nil)
	b := NewBinder(reg)
	a := b.New("page")
	noop := func(accel.Event) bool { return true }

	a.Mount(
		Binding{Key: "esc", Help: "back", Handler: noop},
		Binding{Key: "enter", Help: "open", Handler: noop},
	)
	if !a.Mounted() || !reg.Listening() {
		t.Fatal("expected mounted and listening")
	}

	a.Unbind("enter")
	if got := b.Hints(); len(got) != 1 || got[0].Key != "esc" {
		t.Errorf("after Unbind(enter): hints %v", got)
	}

	a.Unmount()
	a.Unmount()
	if a.Mounted() || reg.Listening() {
		t.Error("expected unmounted and detached")
	}
	if len(b.Hints()) != 0 {
		t.Error("expected no hints after unmount")
	}
}

func TestBinder_Drain(t *testing.T) {
	b := NewBinder(accel.New(nil))
	if b.Drain() != nil {
		t.Error("empty Drain should be nil")
	}
	b.Emit(nil)
	b.Emit(tea.Quit)
	msgs := runCmd(b.Drain())
	if len(msgs) != 1 {
		t.Fatalf("expected one msg, got %v", msgs)
	}
	if _, ok := msgs[0].(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", msgs[0])
	}
	if b.Drain() != nil {
		t.Error("Drain should clear pending commands")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	b := NewBinder(accel.New(nil))
	if RenderKeybindHelp(b, 80) != "" {
		t.Error("expected empty help with nothing bound")
	}
	b.New("page").Mount(Binding{Key: "esc", Help: "back", Handler: func(accel.Event) bool { return true }})
	if out := RenderKeybindHelp(b, 80); out == "" {
		t.Error("expected help output")
	}
}

// runCmd executes cmd and flattens any batch into the resulting messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
