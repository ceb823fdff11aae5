package stringsx

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", " ", "x", "y"); got != "x" {
		t.Fatalf("FirstNonEmpty: want 'x', got %q", got)
	}
	if got := FirstNonEmpty("", ""); got != "" {
		t.Fatalf("FirstNonEmpty empty: want '', got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Fatalf("Truncate: got %q", got)
	}
	if got := Truncate("abc", 10); got != "abc" {
		t.Fatalf("Truncate short: got %q", got)
	}
	long := strings.Repeat("東", 600)
	if got := Truncate(long, 500); utf8.RuneCountInString(got) != 500 {
		t.Fatalf("Truncate multibyte: got %d runes", utf8.RuneCountInString(got))
	}
}

func TestMoveLeadingArticle(t *testing.T) {
	cases := map[string]string{
		"The Promised Neverland": "Promised Neverland, The",
		"a Silent Voice":         "Silent Voice, A",
		"Naruto":                 "Naruto",
		"The":                    "The",
		"Attack on Titan":        "Attack on Titan",
	}
	for in, want := range cases {
		if got := MoveLeadingArticle(in); got != want {
			t.Fatalf("MoveLeadingArticle(%q): want %q, got %q", in, want, got)
		}
	}
}
