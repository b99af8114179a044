package ui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"keyaccel/internal/accel"
	"keyaccel/internal/keysource"
	"keyaccel/internal/ui/textutil"
)

var (
	keyQ     = strconv.Itoa('Q')
	keyC     = strconv.Itoa('C')
	keySlash = "191" // '/' and '?'
)

// AppModel is the style-guide root. Every key goes through the accelerator
// registry first; keys nobody consumes fall through to the top overlay or,
// without one, to the focused panel.
type AppModel struct {
	Registry *accel.Registry
	Source   *keysource.Source
	Binder   *Binder
	Focus    *FocusManager
	Pages    *PageListView
	Content  *PageView
	Overlays OverlayStack
	ShowHelp bool
	Status   string

	global *Accelerators
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model. reg must have been created over src.
func NewAppModel(reg *accel.Registry, src *keysource.Source) *AppModel {
	a := &AppModel{
		Registry: reg,
		Source:   src,
		Binder:   NewBinder(reg),
		ShowHelp: true,
	}
	a.global = a.Binder.New("app")
	a.Pages = NewPageListView(a.Binder.New("pages"), a.Open)
	a.Content = NewPageView(a.Binder.New("content"))
	a.Content.OnBack = func() { a.Focus.SetFocus(PanelPages) }
	a.Content.OnAction = a.runAction
	a.Content.OnVisit = func(p Page) { a.Pages.Select(p.Name) }

	// App-wide keys mount first and so have the lowest priority.
	a.global.Mount(
		Binding{Key: "tab", Help: "switch panel", Handler: a.switchPanel},
		Binding{Key: keySlash, Help: "help", Handler: a.unlessModal(func() { a.ShowHelp = !a.ShowHelp })},
		Binding{Key: keyQ, Help: "quit", Handler: a.unlessModal(func() { a.Binder.Emit(tea.Quit) })},
		Binding{Key: keyC, Handler: a.ctrlC},
	)

	a.Focus = &FocusManager{
		Order: []string{PanelPages, PanelContent},
		OnChange: func(from, to string) {
			a.panel(from).Blur()
			a.panel(to).Focus()
		},
	}
	a.Focus.SetFocus(PanelPages)
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

type focusable interface {
	View
	Focus()
	Blur()
}

// noPanel stands in for an unknown panel id.
type noPanel struct{}

func (noPanel) Init() tea.Cmd                    { return nil }
func (p noPanel) Update(tea.Msg) (View, tea.Cmd) { return p, nil }
func (noPanel) View() string                     { return "" }
func (noPanel) Focus()                           {}
func (noPanel) Blur()                            {}

func (m *AppModel) panel(id string) focusable {
	switch id {
	case PanelPages:
		return m.Pages
	case PanelContent:
		return m.Content
	}
	return noPanel{}
}

// unlessModal wraps fn as a handler that declines keys while a modal is open.
func (m *AppModel) unlessModal(fn func()) accel.Handler {
	return func(accel.Event) bool {
		if m.Overlays.Len() > 0 {
			return false
		}
		fn()
		return true
	}
}

// switchPanel moves focus forward on tab and back on shift+tab.
func (m *AppModel) switchPanel(ev accel.Event) bool {
	if m.Overlays.Len() > 0 {
		return false
	}
	if ev.Shift {
		m.Focus.Prev()
	} else {
		m.Focus.Next()
	}
	return true
}

func (m *AppModel) ctrlC(ev accel.Event) bool {
	if !ev.Ctrl {
		return false
	}
	m.Binder.Emit(tea.Quit)
	return true
}

// Open shows p in the content panel and focuses it.
func (m *AppModel) Open(p Page) {
	if p.Name == "" {
		return
	}
	m.Pages.Select(p.Name)
	m.Content.Show(p)
	m.Focus.SetFocus(PanelContent)
	m.Status = "Viewing " + p.Name
}

// OpenModal pushes md and mounts its accelerators above everything else.
func (m *AppModel) OpenModal(md Modal) {
	keys := m.Binder.New("modal")
	ctx := ModalContext{
		Close: func() { m.Overlays.Remove(keys) },
		Emit:  m.Binder.Emit,
	}
	m.Overlays.Push(Overlay{View: md, Keys: keys}, md.Bindings(ctx)...)
}

func (m *AppModel) runAction(a PageAction) {
	switch a {
	case ActionConfirm:
		m.OpenModal(NewConfirmModal("Discard draft?", "Draft: untitled-1").
			WithDetails("Unsaved changes will be lost"))
	case ActionKeyTester:
		m.OpenModal(NewKeyTesterModal())
	}
}

// Close unmounts everything, leaving the registry empty and detached.
func (m *AppModel) Close() {
	m.Overlays.Clear()
	m.Pages.Blur()
	m.Content.Blur()
	m.global.Unmount()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case ConfirmedMsg:
		a.Status = "Confirmed: " + msg.Title
		return a, nil
	case tea.KeyMsg:
		if a.Source.Feed(msg) {
			return a, a.Binder.Drain()
		}
		// Modals are modal: unconsumed keys stop at the top overlay.
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, tea.Batch(cmd, a.Binder.Drain())
		}
	}

	// Panels update in place.
	_, cmd := a.panel(a.Focus.Current).Update(msg)
	return a, tea.Batch(cmd, a.Binder.Drain())
}

func (a *appModelAdapter) resize(w, h int) {
	a.width, a.height = w, h
	bodyH := h - 6
	if bodyH < 5 {
		bodyH = 5
	}
	listW := 26
	a.Pages.SetSize(listW, bodyH)
	a.Content.SetSize(max(w-listW-6, 20), bodyH)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	pagesBox, contentBox := Styles.BoxBlurred, Styles.BoxBlurred
	if a.Focus.Is(PanelPages) {
		pagesBox = Styles.BoxFocused
	} else {
		contentBox = Styles.BoxFocused
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		pagesBox.Render(a.Pages.View()),
		contentBox.Render(a.Content.View()),
	)
	if top, ok := a.Overlays.Peek(); ok && a.width > 0 {
		body = lipgloss.Place(a.width, lipgloss.Height(body), lipgloss.Center, lipgloss.Center, top.View.View())
	} else if ok {
		body = top.View.View()
	}

	status := Styles.Status.Render(fmt.Sprintf("%d listening", a.Registry.Len()))
	if a.Status != "" {
		msg := a.Status
		if a.width > 0 {
			msg = textutil.Truncate(msg, a.width-lipgloss.Width(status)-2)
		}
		status += Styles.Muted.Render("  " + msg)
	}
	out := body + "\n" + status
	if a.ShowHelp {
		if h := RenderKeybindHelp(a.Binder, a.width); h != "" {
			out += "\n" + h
		}
	}
	return out
}
