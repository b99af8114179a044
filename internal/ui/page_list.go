package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// pageItem implements list.Item for Page.
type pageItem struct {
	Page
}

func (p pageItem) FilterValue() string { return p.Name }
func (p pageItem) Title() string       { return p.Name }
func (p pageItem) Description() string { return p.Summary }

// PageListView is the table of contents. While focused it owns enter and
// right, which open the selected page.
type PageListView struct {
	list   list.Model
	Keys   *Accelerators
	OnOpen func(Page)
}

// Ensure PageListView implements View.
var _ View = (*PageListView)(nil)

// NewPageListView creates the list over Pages.
func NewPageListView(keys *Accelerators, onOpen func(Page)) *PageListView {
	items := make([]list.Item, len(Pages))
	for i, p := range Pages {
		items[i] = pageItem{Page: p}
	}
	l := list.New(items, NewCompactListDelegate(), 24, 20)
	l.Title = "Style guide"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return &PageListView{list: l, Keys: keys, OnOpen: onOpen}
}

// Focus mounts the list's accelerators.
func (v *PageListView) Focus() {
	v.Keys.Mount(
		Binding{Key: "enter", Help: "open", Handler: consume(v.open)},
		Binding{Key: "right", Help: "open", Handler: consume(v.open)},
	)
}

// Blur unmounts the list's accelerators.
func (v *PageListView) Blur() {
	v.Keys.Unmount()
}

func (v *PageListView) open() {
	if v.OnOpen != nil {
		v.OnOpen(v.Selected())
	}
}

// Selected returns the highlighted page.
func (v *PageListView) Selected() Page {
	if it, ok := v.list.SelectedItem().(pageItem); ok {
		return it.Page
	}
	return Page{}
}

// Select highlights the page named name. Returns false if there is none.
func (v *PageListView) Select(name string) bool {
	for i, it := range v.list.Items() {
		if p, ok := it.(pageItem); ok && p.Name == name {
			v.list.Select(i)
			return true
		}
	}
	return false
}

// SetSize resizes the list.
func (v *PageListView) SetSize(w, h int) {
	v.list.SetSize(w, h)
}

// Init implements View.
func (v *PageListView) Init() tea.Cmd {
	return nil
}

// Update implements View. Navigation keys are handled by list.Model.
func (v *PageListView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *PageListView) View() string {
	return v.list.View()
}
