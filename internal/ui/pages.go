package ui

import "strings"

// PageAction is an extra accelerator a page mounts while it is shown.
type PageAction int

const (
	ActionNone PageAction = iota
	ActionConfirm
	ActionKeyTester
)

// Page is one style-guide entry.
type Page struct {
	Name    string
	Summary string
	Body    string
	Action  PageAction
}

// Pages is the style guide's table of contents, in display order.
var Pages = []Page{
	{
		Name:    "Colors",
		Summary: "Theme palette",
		Body: strings.Join([]string{
			"accent    86   titles, focused borders",
			"highlight 205  selection, key names",
			"danger    196  destructive confirmations",
			"muted     241  hints and inactive panels",
			"warning   208  details under a warning title",
		}, "\n"),
	},
	{
		Name:    "Typography",
		Summary: "Titles, labels, hints",
		Body: strings.Join([]string{
			"Titles are bold accent. Labels use the terminal default.",
			"Hints are muted and never carry information that is not",
			"also reachable from a key binding.",
		}, "\n"),
	},
	{
		Name:    "Lists",
		Summary: "Selectable lists",
		Body: strings.Join([]string{
			"Lists move with j/k or the arrow keys and open with enter.",
			"Enter is an accelerator owned by the list while it has focus;",
			"j/k fall through to the list model itself.",
		}, "\n"),
	},
	{
		Name:    "Modal",
		Summary: "Confirmation dialogs",
		Body: strings.Join([]string{
			"Press m to open a confirmation dialog.",
			"",
			"The dialog registers esc and enter after this page did, so it",
			"gets them first: esc closes the dialog, not the page. Close it",
			"and esc returns focus to the page list again.",
		}, "\n"),
		Action: ActionConfirm,
	},
	{
		Name:    "Keyboard",
		Summary: "Accelerator key codes",
		Body: strings.Join([]string{
			"Press k to open the key tester. It binds every letter, digit",
			"and named key, shows the code each press resolves to, and",
			"consumes them all so nothing underneath reacts.",
			"",
			"Named keys: backspace tab enter esc/escape space",
			"            left up right down comma shift",
		}, "\n"),
		Action: ActionKeyTester,
	},
}

// FindPage returns the page named name (case-insensitive).
func FindPage(name string) (Page, bool) {
	for _, p := range Pages {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Page{}, false
}
