package book

import (
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

var now = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func decode(t *testing.T, doc string) Raw {
	t.Helper()
	var r Raw
	if err := yaml.Unmarshal([]byte(doc), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return r
}

func TestValidate(t *testing.T) {
	r := Record{VolumeNumber: 1}
	if err := r.Validate(); err == nil {
		t.Fatalf("expected error for missing title")
	}
	r.Title = "Naruto (Volume 1)"
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.VolumeNumber = 0
	if err := r.Validate(); err == nil {
		t.Fatalf("expected error for zero volume")
	}
}

func TestNormalizeFullRecord(t *testing.T) {
	raw := decode(t, `
series_name: Tokyo Ghoul
volume_number: 1
book_title: Tokyo Ghoul (Volume 1)
authors: ["Sui Ishida"]
msrp_cost: 12.99
isbn_13: 978-1-4215-8036-6
publisher_name: VIZ Media LLC
copyright_year: "2015-06-16"
description: "Ken Kaneki becomes a half-ghoul."
genres: [Horror, Seinen]
`)
	rec := Normalize(raw, now)
	if err := rec.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if rec.ISBN13 != "9781421580366" {
		t.Fatalf("isbn: %q", rec.ISBN13)
	}
	if len(rec.Authors) != 1 || rec.Authors[0] != "Ishida, Sui" {
		t.Fatalf("authors: %v", rec.Authors)
	}
	if !rec.HasPrice() || *rec.MSRP != 12.99 {
		t.Fatalf("msrp: %v", rec.MSRP)
	}
	if rec.Year() != 2015 {
		t.Fatalf("year: %d", rec.Year())
	}
	if len(rec.Genres) != 2 || rec.Genres[1] != "Seinen" {
		t.Fatalf("genres: %v", rec.Genres)
	}
	if len(rec.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", rec.Warnings)
	}
}

func TestNormalizeJSONInput(t *testing.T) {
	raw := decode(t, `{"series_name":"One Piece","volume_number":1,"authors":"Oda, Eiichiro","msrp_cost":"9.99","copyright_year":2003,"genres":"Shonen, Adventure"}`)
	rec := Normalize(raw, now)
	if rec.Title != "One Piece (Volume 1)" {
		t.Fatalf("default title: %q", rec.Title)
	}
	if len(rec.Authors) != 1 || rec.Authors[0] != "Oda, Eiichiro" {
		t.Fatalf("authors: %v", rec.Authors)
	}
	if len(rec.Genres) != 2 || rec.Genres[0] != "Shonen" || rec.Genres[1] != "Adventure" {
		t.Fatalf("genres: %v", rec.Genres)
	}
	if len(rec.Warnings) != 1 || !strings.Contains(rec.Warnings[0], "below minimum $10") {
		t.Fatalf("warnings: %v", rec.Warnings)
	}
	if *rec.MSRP != 9.99 {
		t.Fatalf("msrp should be kept as given: %v", *rec.MSRP)
	}
}

func TestNormalizeSplitsAuthorList(t *testing.T) {
	raw := decode(t, `
volume_number: 3
book_title: Boruto
authors: "Ukyo Kodachi, Masashi Kishimoto, Mikio Ikemoto"
`)
	rec := Normalize(raw, now)
	want := []string{"Kodachi, Ukyo", "Kishimoto, Masashi", "Ikemoto, Mikio"}
	if len(rec.Authors) != len(want) {
		t.Fatalf("authors: %v", rec.Authors)
	}
	for i := range want {
		if rec.Authors[i] != want[i] {
			t.Fatalf("author %d: want %q, got %q", i, want[i], rec.Authors[i])
		}
	}
}

func TestNormalizeWarnings(t *testing.T) {
	raw := decode(t, `
series_name: The Promised Neverland
volume_number: 2
msrp_cost: "call for price"
copyright_year: unknown
isbn_13: "12345"
`)
	rec := Normalize(raw, now)
	if rec.SeriesName != "Promised Neverland, The" {
		t.Fatalf("series: %q", rec.SeriesName)
	}
	if rec.Title != "Promised Neverland, The (Volume 2)" {
		t.Fatalf("title: %q", rec.Title)
	}
	if rec.MSRP != nil || rec.CopyrightYear != nil {
		t.Fatalf("msrp/year should be absent: %v %v", rec.MSRP, rec.CopyrightYear)
	}
	if rec.ISBN13 != "12345" {
		t.Fatalf("isbn should pass through: %q", rec.ISBN13)
	}
	joined := strings.Join(rec.Warnings, "|")
	for _, w := range []string{"Invalid MSRP format", "Could not extract valid copyright year", "not 13 digits"} {
		if !strings.Contains(joined, w) {
			t.Fatalf("missing warning %q in %v", w, rec.Warnings)
		}
	}
}

func TestNormalizeMissingMSRPAndHighPrice(t *testing.T) {
	rec := Normalize(decode(t, "volume_number: 1\nbook_title: X\ncopyright_year: 2020\n"), now)
	if len(rec.Warnings) != 1 || rec.Warnings[0] != "No MSRP found" {
		t.Fatalf("warnings: %v", rec.Warnings)
	}
	rec = Normalize(decode(t, "volume_number: 1\nbook_title: X\ncopyright_year: 2020\nmsrp_cost: 45\n"), now)
	if len(rec.Warnings) != 1 || rec.Warnings[0] != "MSRP $45.00 exceeds typical maximum $30" {
		t.Fatalf("warnings: %v", rec.Warnings)
	}
}

func TestListNullAndNested(t *testing.T) {
	raw := decode(t, "authors: null\ngenres: [Action, {x: 1}, null, Drama]\n")
	if raw.Authors.Items != nil {
		t.Fatalf("null authors: %+v", raw.Authors)
	}
	if len(raw.Genres.Items) != 2 || raw.Genres.Joined {
		t.Fatalf("genres: %+v", raw.Genres)
	}
}
