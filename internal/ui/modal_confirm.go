package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"keyaccel/internal/accel"
)

// ModalContext lets a modal's accelerators act on the app.
type ModalContext struct {
	Close func()        // pop this modal
	Emit  func(tea.Cmd) // queue a command for the current Update
}

// Modal is an overlay view that declares the accelerators it owns while open.
type Modal interface {
	View
	Bindings(ctx ModalContext) []Binding
}

// ConfirmedMsg is sent when a ConfirmModal is accepted.
type ConfirmedMsg struct {
	Title string
}

// ConfirmModal is a generic confirmation modal.
// Enter or y confirms; Esc cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string // Optional warning details
	OnConfirm func() tea.Msg
}

// Ensure ConfirmModal implements Modal.
var _ Modal = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal that sends ConfirmedMsg.
func NewConfirmModal(title, label string) *ConfirmModal {
	return &ConfirmModal{
		Title: title,
		Label: label,
		OnConfirm: func() tea.Msg {
			return ConfirmedMsg{Title: title}
		},
	}
}

// WithDetails adds warning details to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// Bindings implements Modal.
func (m *ConfirmModal) Bindings(ctx ModalContext) []Binding {
	confirm := func(accel.Event) bool {
		if m.OnConfirm != nil {
			ctx.Emit(m.OnConfirm)
		}
		ctx.Close()
		return true
	}
	return []Binding{
		{Key: "enter", Help: "confirm", Handler: confirm},
		{Key: keyY, Help: "confirm", Handler: confirm},
		{Key: "esc", Help: "cancel", Handler: consume(ctx.Close)},
	}
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View. Keys are handled by the modal's accelerators.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + Styles.Details.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirm  Esc: cancel")
	return Styles.BoxDanger.Render(content)
}
