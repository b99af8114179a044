package textutil

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"Viewing Modal", 40, "Viewing Modal"},
		{"Viewing Modal", 8, "Viewing…"},
		{"Viewing Modal", 1, "…"},
		{"Viewing Modal", 0, ""},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.max); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
	}
}

func TestTruncate_Wide(t *testing.T) {
	got := Truncate("キーボード", 5)
	if w := runewidth.StringWidth(got); w > 5 {
		t.Errorf("Truncate wide: width %d > 5 (%q)", w, got)
	}
}
