package ui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"keyaccel/internal/accel"
	"keyaccel/internal/keys"
)

var keyY = strconv.Itoa('Y')

// KeyTesterModal binds every letter, digit, and named key and reports the
// code each keystroke resolves to. Ctrl combinations are left unconsumed so
// ctrl+c still reaches the app.
type KeyTesterModal struct {
	Last    accel.Event
	Presses int
}

// Ensure KeyTesterModal implements Modal.
var _ Modal = (*KeyTesterModal)(nil)

// NewKeyTesterModal creates an empty key tester.
func NewKeyTesterModal() *KeyTesterModal {
	return &KeyTesterModal{}
}

func (m *KeyTesterModal) record(ev accel.Event) bool {
	if ev.Ctrl {
		return false
	}
	m.Last = ev
	m.Presses++
	return true
}

// Bindings implements Modal.
func (m *KeyTesterModal) Bindings(ctx ModalContext) []Binding {
	var out []Binding
	for _, a := range keys.Aliases() {
		if a.Code == keys.Esc {
			continue
		}
		out = append(out, Binding{Key: a.Name, Handler: m.record})
	}
	for c := 'A'; c <= 'Z'; c++ {
		out = append(out, Binding{Key: strconv.Itoa(int(c)), Handler: m.record})
	}
	for c := '0'; c <= '9'; c++ {
		out = append(out, Binding{Key: strconv.Itoa(int(c)), Handler: m.record})
	}
	out = append(out, Binding{Key: "esc", Help: "close tester", Handler: consume(ctx.Close)})
	return out
}

// Init implements View.
func (m *KeyTesterModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *KeyTesterModal) Update(msg tea.Msg) (View, tea.Cmd) {
	return m, nil
}

// View implements View.
func (m *KeyTesterModal) View() string {
	content := Styles.Title.Render("Key tester") + "\n\n"
	if m.Presses == 0 {
		content += Styles.Hint.Render("Press any key.")
	} else {
		code := keys.FromNumber(m.Last.Code())
		content += fmt.Sprintf("%s  code %s  name %s",
			Styles.Code.Render(m.Last.Key),
			Styles.Code.Render(string(code)),
			Styles.Code.Render(keys.Name(code)))
		content += "\n" + Styles.Muted.Render(fmt.Sprintf("%d keys", m.Presses))
	}
	content += "\n\n" + Styles.Hint.Render("Esc: close")
	return Styles.Box.Render(content)
}
