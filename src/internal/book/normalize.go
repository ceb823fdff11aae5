package book

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mangamarc/src/internal/dates"
	"mangamarc/src/internal/names"
	"mangamarc/src/internal/sanitize"
	"mangamarc/src/internal/stringsx"
)

// Price band for a single manga volume. Values outside it are kept but flagged.
const (
	MinMSRP = 10.0
	MaxMSRP = 30.0
)

// Field length caps applied while cleaning lookup text.
const (
	maxShort = 512
	maxLong  = 12000
)

// Normalize turns a lookup response into a Record, collecting warnings for
// anything that had to be dropped or looks out of range. It never fails; call
// Validate on the result to enforce required fields.
func Normalize(raw Raw, now time.Time) Record {
	var warnings []string

	series := stringsx.MoveLeadingArticle(sanitize.CleanString(raw.SeriesName, maxShort))
	title := sanitize.CleanString(raw.BookTitle, maxShort)
	if title == "" && series != "" {
		title = fmt.Sprintf("%s (Volume %d)", series, raw.VolumeNumber)
	}
	title = stringsx.MoveLeadingArticle(title)

	rec := Record{
		SeriesName:          series,
		VolumeNumber:        raw.VolumeNumber,
		Title:               title,
		Authors:             normalizeAuthors(raw.Authors),
		Publisher:           sanitize.CleanString(raw.PublisherName, maxShort),
		Description:         sanitize.CleanString(raw.Description, maxLong),
		PhysicalDescription: sanitize.CleanString(raw.PhysicalDescription, maxShort),
		Genres:              normalizeGenres(raw.Genres),
	}

	if !raw.MSRPCost.Set {
		warnings = append(warnings, "No MSRP found")
	} else if v, err := strconv.ParseFloat(strings.TrimPrefix(raw.MSRPCost.Value, "$"), 64); err != nil {
		warnings = append(warnings, "Invalid MSRP format")
	} else {
		rec.MSRP = &v
		switch {
		case v < MinMSRP:
			warnings = append(warnings, fmt.Sprintf("MSRP $%.2f is below minimum $%.0f (rounded up to $%.2f)", v, MinMSRP, MinMSRP))
		case v > MaxMSRP:
			warnings = append(warnings, fmt.Sprintf("MSRP $%.2f exceeds typical maximum $%.0f", v, MaxMSRP))
		}
	}

	if y, ok := dates.ExtractCopyrightYear(raw.CopyrightYear.Value, now); ok {
		rec.CopyrightYear = &y
	} else {
		warnings = append(warnings, "Could not extract valid copyright year")
	}

	if isbn := sanitize.CleanISBN(raw.ISBN13); isbn != "" {
		rec.ISBN13 = isbn
		if !sanitize.IsISBN13(isbn) {
			warnings = append(warnings, fmt.Sprintf("ISBN-13 %q is not 13 digits", isbn))
		}
	}

	rec.Warnings = warnings
	return rec
}

// normalizeAuthors splits a single-string author field and rewrites every
// name as "Family, Given".
func normalizeAuthors(l List) []string {
	items := l.Items
	if l.Joined && len(items) == 1 {
		items = splitAuthors(items[0])
	}
	items = sanitize.CleanList(items, maxShort)
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, names.FormatAuthor(a))
	}
	return out
}

// splitAuthors decides whether "A, B" is one inverted name or two people.
// Two short halves read as "Family, Given"; anything else is a list.
func splitAuthors(s string) []string {
	if !strings.Contains(s, ", ") {
		return []string{s}
	}
	parts := strings.Split(s, ", ")
	if len(parts) == 2 && len(strings.Fields(parts[0])) <= 2 && len(strings.Fields(parts[1])) <= 2 {
		return []string{s}
	}
	return strings.Split(s, ",")
}

func normalizeGenres(l List) []string {
	if l.Joined && len(l.Items) == 1 {
		return sanitize.SplitList(l.Items[0], maxShort)
	}
	return sanitize.CleanList(l.Items, maxShort)
}
