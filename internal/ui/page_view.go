package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"keyaccel/internal/accel"
)

// Letter key codes for page actions.
var (
	keyM = strconv.Itoa('M')
	keyK = strconv.Itoa('K')
)

// PageView shows one page in a scrollable viewport. While focused it owns
// esc/left (back to the list), backspace (previous page), and the page's
// own action key.
type PageView struct {
	Page     Page
	History  History
	Keys     *Accelerators
	OnBack   func()
	OnAction func(PageAction)
	OnVisit  func(Page) // called when backspace revisits a page

	viewport viewport.Model
	focused  bool
}

// Ensure PageView implements View.
var _ View = (*PageView)(nil)

// NewPageView creates an empty page view.
func NewPageView(keys *Accelerators) *PageView {
	return &PageView{
		Keys:     keys,
		viewport: viewport.New(56, 18),
	}
}

// Show displays p and records the visit.
func (v *PageView) Show(p Page) {
	v.Page = p
	v.History.Push(p.Name)
	v.viewport.SetContent(renderPage(p))
	v.viewport.GotoTop()
	if v.focused {
		v.mountAction()
	}
}

// Focus mounts the view's accelerators.
func (v *PageView) Focus() {
	v.focused = true
	v.Keys.Mount(
		Binding{Key: "esc", Help: "back", Handler: consume(v.back)},
		Binding{Key: "left", Help: "back", Handler: consume(v.back)},
		Binding{Key: "backspace", Help: "previous page", Handler: v.previous},
	)
	v.mountAction()
}

// Blur unmounts the view's accelerators.
func (v *PageView) Blur() {
	v.focused = false
	v.Keys.Unmount()
}

// mountAction swaps the action key for the current page.
func (v *PageView) mountAction() {
	v.Keys.Unbind(keyM, keyK)
	switch v.Page.Action {
	case ActionConfirm:
		v.Keys.Mount(Binding{Key: keyM, Help: "open dialog", Handler: v.action(ActionConfirm)})
	case ActionKeyTester:
		v.Keys.Mount(Binding{Key: keyK, Help: "key tester", Handler: v.action(ActionKeyTester)})
	}
}

func (v *PageView) action(a PageAction) accel.Handler {
	return func(accel.Event) bool {
		if v.OnAction != nil {
			v.OnAction(a)
		}
		return true
	}
}

func (v *PageView) back() {
	if v.OnBack != nil {
		v.OnBack()
	}
}

// previous leaves the key unconsumed when there is no earlier page.
func (v *PageView) previous(accel.Event) bool {
	name, ok := v.History.Back()
	if !ok {
		return false
	}
	p, ok := FindPage(name)
	if !ok {
		return false
	}
	v.Page = p
	v.viewport.SetContent(renderPage(p))
	v.viewport.GotoTop()
	v.mountAction()
	if v.OnVisit != nil {
		v.OnVisit(p)
	}
	return true
}

// SetSize resizes the viewport.
func (v *PageView) SetSize(w, h int) {
	v.viewport.Width = w
	v.viewport.Height = h
}

// Init implements View.
func (v *PageView) Init() tea.Cmd {
	return nil
}

// Update implements View. Scrolling keys are handled by viewport.Model.
func (v *PageView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *PageView) View() string {
	if v.Page.Name == "" {
		return Styles.Hint.Render("Select a page and press enter.")
	}
	if n := v.History.Len(); n > 1 {
		return v.viewport.View() + "\n" + Styles.Muted.Render(fmt.Sprintf("backspace: %d earlier", n-1))
	}
	return v.viewport.View()
}

func renderPage(p Page) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(p.Name) + "\n")
	b.WriteString(Styles.Muted.Render(p.Summary) + "\n\n")
	b.WriteString(Styles.Normal.Render(p.Body))
	return b.String()
}
