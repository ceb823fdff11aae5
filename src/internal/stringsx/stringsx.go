package stringsx

import "strings"

// FirstNonEmpty returns the first string in vals that is non-empty when trimmed.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// Truncate cuts s to at most n characters. No attempt is made to respect
// word boundaries.
func Truncate(s string, n int) string {
	if n < 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

var articles = map[string]bool{"the": true, "a": true, "an": true}

// MoveLeadingArticle shifts a leading English article to the end for filing:
// "The Promised Neverland" -> "Promised Neverland, The".
func MoveLeadingArticle(title string) string {
	words := strings.Fields(title)
	if len(words) < 2 || !articles[strings.ToLower(words[0])] {
		return title
	}
	art := strings.ToUpper(words[0][:1]) + strings.ToLower(words[0][1:])
	return strings.Join(words[1:], " ") + ", " + art
}
