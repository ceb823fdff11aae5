package sanitize

import (
	"strings"
)

// CleanString trims and removes ASCII control characters except tab/newline/carriage
// return up to max bytes (if max <= 0, no truncation).
func CleanString(s string, max int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	// remove controls except \n, \t, \r
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' || (r >= 0x20 && r != 0x7f) {
			b.WriteRune(r)
			if max > 0 && b.Len() >= max {
				break
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// CleanList cleans every element, dropping empties while keeping order.
// Duplicates are kept: author and genre lists are positional.
func CleanList(vals []string, max int) []string {
	if len(vals) == 0 {
		return nil
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v = CleanString(v, max); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SplitList splits a comma-separated string into cleaned elements.
func SplitList(s string, max int) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return CleanList(strings.Split(s, ","), max)
}

// CleanISBN strips hyphens and whitespace from an ISBN.
func CleanISBN(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, CleanString(s, 64))
}

// IsISBN13 reports whether s is exactly 13 ASCII digits.
func IsISBN13(s string) bool {
	if len(s) != 13 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
