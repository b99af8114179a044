package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap implements help.KeyMap over the live accelerators of a Binder.
type KeyMap struct {
	binder *Binder
}

// Ensure KeyMap implements help.KeyMap.
var _ help.KeyMap = KeyMap{}

// NewKeyMap creates a KeyMap for binder.
func NewKeyMap(binder *Binder) KeyMap {
	return KeyMap{binder: binder}
}

// ShortHelp returns one binding per live accelerator, highest priority first.
func (km KeyMap) ShortHelp() []key.Binding {
	if km.binder == nil {
		return nil
	}
	hints := km.binder.Hints()
	bindings := make([]key.Binding, 0, len(hints))
	for _, h := range hints {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(h.Key),
			key.WithHelp(h.Key, h.Help),
		))
	}
	return bindings
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

// RenderKeybindHelp renders the help bar for the accelerators currently
// listening. Returns "" when nothing is bound.
func RenderKeybindHelp(binder *Binder, width int) string {
	km := NewKeyMap(binder)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted
	if width > 4 {
		helpModel.Width = width - 4
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return boxStyle.Render(helpModel.ShortHelpView(bindings))
}
