package ui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creack/pty"

	"keyaccel/internal/accel"
	"keyaccel/internal/keysource"
)

// TestApp_RawTerminalInput runs the program on a pseudo-terminal so key
// bytes go through Bubble Tea's own input parser, the key source, and the
// registry.
func TestApp_RawTerminalInput(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}

	// The first frame means the terminal is already in raw mode.
	rendered := make(chan struct{})
	go func() {
		buf := make([]byte, 1024)
		n, _ := ptmx.Read(buf)
		if n > 0 {
			close(rendered)
		}
		_, _ = io.Copy(io.Discard, ptmx)
	}()

	src := keysource.New()
	a := NewAppModel(accel.New(src), src)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := tea.NewProgram(a.AsTeaModel(),
		tea.WithInput(tty),
		tea.WithOutput(tty),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	)
	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()

	select {
	case <-rendered:
	case <-ctx.Done():
		t.Fatal("program never rendered")
	}

	// tab, left arrow, shift+tab, q
	if _, err := ptmx.Write([]byte("\t\x1b[D\x1b[Zq")); err != nil {
		t.Fatalf("write keys: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-ctx.Done():
		p.Kill()
		t.Fatal("q did not quit the program")
	}

	// tab: pages -> content; left: back to pages; shift+tab: wraps to content.
	if !a.Focus.Is(PanelContent) {
		t.Errorf("expected content focused, got %q", a.Focus.Current)
	}
	if !a.Content.Keys.Mounted() || a.Pages.Keys.Mounted() {
		t.Error("expected content accelerators live and page list's gone")
	}
}
