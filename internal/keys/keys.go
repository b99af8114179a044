// Package keys maps human-readable key names to the numeric key codes
// delivered by keystroke sources.
//
// Callers may bind accelerators by alias ("enter", "esc") or by code ("13").
// Anything that is not a known alias passes through unchanged, so raw codes
// and future key identifiers keep working without a table update.
package keys

import (
	"sort"
	"strconv"
)

// Code identifies a key in an accelerator binding. Numeric key codes are
// stored in decimal form, so FromNumber(13) == Resolve("enter") == "13".
type Code string

// Numeric key codes for the aliased keys.
const (
	Backspace = 8
	Tab       = 9
	Enter     = 13
	Shift     = 16
	Esc       = 27
	Space     = 32
	Left      = 37
	Up        = 38
	Right     = 39
	Down      = 40
	Comma     = 188
)

var aliases = map[string]int{
	"backspace": Backspace,
	"tab":       Tab,
	"enter":     Enter,
	"esc":       Esc,
	"escape":    Esc,
	"space":     Space,
	"left":      Left,
	"up":        Up,
	"right":     Right,
	"down":      Down,
	"comma":     Comma,
	"shift":     Shift,
}

// preferred is the display name for codes with more than one alias.
var preferred = map[int]string{
	Esc: "esc",
}

// Resolve returns the Code for an alias or, for anything else, the input
// unchanged. Lookup is case-sensitive.
func Resolve(nameOrCode string) Code {
	if n, ok := aliases[nameOrCode]; ok {
		return FromNumber(n)
	}
	return Code(nameOrCode)
}

// FromNumber returns the Code for a numeric key code.
func FromNumber(n int) Code {
	return Code(strconv.Itoa(n))
}

// Number returns the numeric value of c, or false if c is not numeric.
func (c Code) Number() (int, bool) {
	n, err := strconv.Atoi(string(c))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Name returns the alias for c when one exists, otherwise c itself.
func Name(c Code) string {
	n, ok := c.Number()
	if !ok {
		return string(c)
	}
	if name, ok := preferred[n]; ok {
		return name
	}
	for name, code := range aliases {
		if code == n {
			return name
		}
	}
	return string(c)
}

// Alias is one row of the alias table.
type Alias struct {
	Name string
	Code int
}

// Aliases returns the full alias table sorted by code, then name.
func Aliases() []Alias {
	out := make([]Alias, 0, len(aliases))
	for name, code := range aliases {
		out = append(out, Alias{Name: name, Code: code})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].Name < out[j].Name
	})
	return out
}
