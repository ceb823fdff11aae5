package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MinYear is the earliest copyright year accepted from lookup responses.
const MinYear = 1900

var fourDigits = regexp.MustCompile(`\b\d{4}\b`)

// Plausible reports whether y falls within MinYear..now+1.
func Plausible(y int, now time.Time) bool {
	return y >= MinYear && y <= now.Year()+1
}

// ExtractCopyrightYear returns the first standalone 4-digit number in s when it
// is a plausible copyright year. Strings such as "©2015", "2015-06-02" or
// "Published 2015 by VIZ" all yield 2015.
func ExtractCopyrightYear(s string, now time.Time) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	m := fourDigits.FindString(s)
	if m == "" {
		return 0, false
	}
	y, err := strconv.Atoi(m)
	if err != nil || !Plausible(y, now) {
		return 0, false
	}
	return y, true
}

// DateEntered formats t as the yymmdd stamp used in fixed-length fields.
func DateEntered(t time.Time) string { return t.Format("060102") }

// Transaction formats t as a MARC 005 timestamp (yyyymmddhhmmss.f).
func Transaction(t time.Time) string { return t.Format("20060102150405") + ".0" }
