package ui

import "testing"

func TestFocusManager_Rotate(t *testing.T) {
	var changes []string
	f := &FocusManager{
		Order:    []string{"a", "b", "c"},
		OnChange: func(from, to string) { changes = append(changes, from+">"+to) },
	}
	if got := f.Next(); got != "a" {
		t.Errorf("Next from empty: got %q, want a", got)
	}
	f.Next()
	f.Next()
	if got := f.Next(); got != "a" {
		t.Errorf("Next should wrap to a, got %q", got)
	}
	if got := f.Prev(); got != "c" {
		t.Errorf("Prev should wrap to c, got %q", got)
	}
	want := []string{">a", "a>b", "b>c", "c>a", "a>c"}
	if len(changes) != len(want) {
		t.Fatalf("changes = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %q, want %q", i, changes[i], want[i])
		}
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	calls := 0
	f := &FocusManager{Order: []string{"a", "b"}, OnChange: func(string, string) { calls++ }}
	if f.SetFocus("zzz") {
		t.Error("SetFocus on unknown id should return false")
	}
	f.SetFocus("b")
	f.SetFocus("b")
	if calls != 1 {
		t.Errorf("expected one OnChange, got %d", calls)
	}
	if !f.Is("b") {
		t.Error("expected b focused")
	}
}

func TestFocusManager_Empty(t *testing.T) {
	f := &FocusManager{}
	if f.Next() != "" || f.Prev() != "" {
		t.Error("empty order should return empty id")
	}
}

func TestHistory(t *testing.T) {
	var h History
	if _, ok := h.Back(); ok {
		t.Error("Back on empty history should fail")
	}
	h.Push("Colors")
	h.Push("Colors")
	h.Push("Modal")
	if h.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", h.Len())
	}
	prev, ok := h.Back()
	if !ok || prev != "Colors" {
		t.Errorf("Back = %q, %v; want Colors, true", prev, ok)
	}
	if _, ok := h.Back(); ok {
		t.Error("Back with one entry should fail")
	}
}
