package dates

import (
	"testing"
	"time"
)

var now = time.Date(2025, time.March, 4, 5, 6, 7, 0, time.UTC)

func TestExtractCopyrightYear(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"2015", 2015, true},
		{"2015-06-02", 2015, true},
		{"Published 2003 by VIZ", 2003, true},
		{"©2019", 2019, true},
		{"2026", 2026, true},
		{"2027", 0, false},
		{"1899", 0, false},
		{"unknown", 0, false},
		{"", 0, false},
		{"20150", 0, false},
	}
	for _, c := range cases {
		got, ok := ExtractCopyrightYear(c.in, now)
		if got != c.want || ok != c.ok {
			t.Fatalf("ExtractCopyrightYear(%q): want (%d,%v), got (%d,%v)", c.in, c.want, c.ok, got, ok)
		}
	}
}

func TestPlausible(t *testing.T) {
	if !Plausible(1900, now) || Plausible(1899, now) {
		t.Fatalf("Plausible lower bound wrong")
	}
	if !Plausible(2026, now) || Plausible(2027, now) {
		t.Fatalf("Plausible upper bound wrong")
	}
}

func TestStamps(t *testing.T) {
	if got := DateEntered(now); got != "250304" {
		t.Fatalf("DateEntered: got %q", got)
	}
	if got := Transaction(now); got != "20250304050607.0" {
		t.Fatalf("Transaction: got %q", got)
	}
}
