package names

import (
	"strings"
	"unicode/utf8"
)

// UnknownCode stands in for the author code when no usable name exists.
const UnknownCode = "UNK"

// FormatAuthor rewrites a name as "Family, Given". Names already carrying a
// ", " separator are returned unchanged, as are single tokens. Two-token names
// are always inverted; longer names with a hyphen-terminated token (split
// romanizations such as "Yoshi- hiro Togashi") are left as given.
func FormatAuthor(name string) string {
	if name == "" {
		return ""
	}
	if strings.Contains(name, ", ") {
		return name
	}
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[1] + ", " + parts[0]
	}
	for _, p := range parts {
		if strings.HasSuffix(p, "-") {
			return name
		}
	}
	return parts[len(parts)-1] + ", " + strings.Join(parts[:len(parts)-1], " ")
}

// FormatAuthors normalizes each author and joins them with ", ".
func FormatAuthors(authors []string) string {
	if len(authors) == 0 {
		return ""
	}
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		out = append(out, FormatAuthor(a))
	}
	return strings.Join(out, ", ")
}

// LastName returns the family name: the text before the first ", " or, for
// uninverted names, the last whitespace-delimited token.
func LastName(author string) string {
	if i := strings.Index(author, ", "); i >= 0 {
		return author[:i]
	}
	parts := strings.Fields(author)
	if len(parts) == 0 {
		return UnknownCode
	}
	return parts[len(parts)-1]
}

// Code builds the three-letter author code used in call numbers.
func Code(authors []string) string {
	if len(authors) == 0 {
		return UnknownCode
	}
	last := LastName(authors[0])
	if utf8.RuneCountInString(last) < 3 {
		return strings.ToUpper(last)
	}
	return strings.ToUpper(string([]rune(last)[:3]))
}
