package normalize_test

import (
	"testing"

	"iomode/internal/normalize"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single statement", "a := 1", "a := 1"},
		{"line comment hash", "a := 1 # comment\nb := 2", "a := 1; b := 2"},
		{"line comment slash", "a := 1 // comment\nb := 2", "a := 1; b := 2"},
		{"block comment multiline", "/* multi\nline */a", "a"},
		{"block comment unterminated", "a /* never closed\nb", "a "},
		{"all comment", "# only a comment", ""},
		{"call args collapse", "foo(\n  1,\n  2\n)", "foo(1,2)"},
		{"nested call", "foo(bar(\n  1\n),\n  2\n)", "foo(bar(1),2)"},
		{"tabs collapse", "a\t:=\t\t1", "a := 1"},
		{"several statements", "a := 1\nb := 2\nc := 3", "a := 1; b := 2; c := 3"},
		{"blank lines between", "a := 1\n\n\nb := 2", "a := 1; b := 2"},
		{"leading newline dropped", "\na := 1", "a := 1"},
		{"trailing newline dropped", "a := 1\n", "a := 1"},
		{"comment between statements", "a := 1\n# note\nb := 2", "a := 1; b := 2"},
		{"string not protected", "s := \"x # y\"", "s := \"x ", // documented loss
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalize.Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"a := 1 # comment\nb := 2",
		"foo(\n  1,\n  2\n)",
		"/* multi\nline */a",
		"Account := Object clone do(\n  balance := 0\n  deposit := method(amt, balance = balance + amt)\n)",
	}
	for _, in := range inputs {
		once := normalize.Normalize(in)
		twice := normalize.Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\n once: %q\ntwice: %q", in, once, twice)
		}
	}
}

func TestStripComments(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"x # c", "x "},
		{"x // c\ny", "x \ny"},
		{"x /* a */ y", "x  y"},
		{"x /* a /* b */ y", "x  y"}, // nearest */ closes, no nesting
		{"x /* open", "x "},
		{"#\n#\n", "\n\n"},
	}
	for _, tc := range cases {
		if got := normalize.StripComments(tc.in); got != tc.want {
			t.Errorf("StripComments(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
