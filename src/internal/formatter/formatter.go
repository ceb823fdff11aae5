// Package formatter maps a book.Record and a holding barcode onto a MARC21
// bibliographic record with an embedded 852 holding, in the shape Atriuum
// imports.
package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mangamarc/src/internal/book"
	"mangamarc/src/internal/dates"
	"mangamarc/src/internal/marc"
	"mangamarc/src/internal/names"
	"mangamarc/src/internal/stringsx"
)

const (
	DefaultAgency     = "OCoLC"
	DefaultLocation   = "Main Library"
	DefaultCollection = "Manga collection"

	// DefaultPhysicalDescription fills 300 $a when the lookup supplied none.
	// ISBD punctuation keeps a space before ":" and ";", unlike the compact
	// "(unpaged): chiefly illustrations; 19 cm" some catalogs show.
	DefaultPhysicalDescription = "1 volume (unpaged) : chiefly illustrations ; 19 cm"

	SummaryLimit      = 500
	GenreNotePrefix   = "Manga, "
	WarningNotePrefix = "Warnings: "
	FormSubdivision   = "Comic books, strips, etc."
	MangaSubject      = "Manga"

	language         = "eng"
	descriptionRules = "rda"
	callNumberClass  = "FIC"
)

// Options carries the few values that vary between libraries.
type Options struct {
	Agency     string
	Location   string
	Collection string
	Now        func() time.Time
}

// Option adjusts Options.
type Option func(*Options)

// WithClock fixes the time used for 005 and 008, making output reproducible.
func WithClock(now func() time.Time) Option { return func(o *Options) { o.Now = now } }

// WithAgency sets the cataloging agency code written to 003 and 040.
func WithAgency(code string) Option { return func(o *Options) { o.Agency = code } }

// WithLocation sets the 852 $b shelving location.
func WithLocation(loc string) Option { return func(o *Options) { o.Location = loc } }

// WithCollection sets the 852 $x collection note.
func WithCollection(c string) Option { return func(o *Options) { o.Collection = c } }

func newOptions(opts []Option) Options {
	o := Options{
		Agency:     DefaultAgency,
		Location:   DefaultLocation,
		Collection: DefaultCollection,
		Now:        time.Now,
	}
	for _, fn := range opts {
		fn(&o)
	}
	o.Agency = stringsx.FirstNonEmpty(o.Agency, DefaultAgency)
	o.Location = stringsx.FirstNonEmpty(o.Location, DefaultLocation)
	o.Collection = stringsx.FirstNonEmpty(o.Collection, DefaultCollection)
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// ControlNumber is the ISBN without hyphens, or "M" plus the zero-padded
// volume number when there is no ISBN.
func ControlNumber(rec book.Record) string {
	if rec.ISBN13 != "" {
		return strings.ReplaceAll(rec.ISBN13, "-", "")
	}
	return fmt.Sprintf("M%03d", rec.VolumeNumber)
}

// CallNumber builds "FIC <author code> <year> <barcode>". Year is 0 when the
// copyright year is unknown.
func CallNumber(rec book.Record, barcode string) string {
	return fmt.Sprintf("%s %s %d %s", callNumberClass, names.Code(rec.Authors), rec.Year(), barcode)
}

// FixedField builds the 40-byte 008 for a single-date language-material record.
func FixedField(rec book.Record, now time.Time) string {
	date1 := now.Year()
	if rec.HasYear() {
		date1 = rec.Year()
	}
	b := []byte(strings.Repeat(" ", 40))
	copy(b[0:6], dates.DateEntered(now))
	b[6] = 's'
	copy(b[7:11], fmt.Sprintf("%04d", date1))
	copy(b[15:18], "xx ")
	copy(b[29:32], "000")
	copy(b[35:38], language)
	b[39] = 'd'
	return string(b)
}

// Format converts rec into a MARC record. It never fails: absent fields
// suppress the MARC fields that depend on them.
func Format(rec book.Record, barcode string, opts ...Option) *marc.Record {
	o := newOptions(opts)
	now := o.Now()
	authors := names.FormatAuthors(rec.Authors)
	callNumber := CallNumber(rec, barcode)

	r := marc.NewRecord()
	r.Add(
		marc.NewControlField("001", ControlNumber(rec)),
		marc.NewControlField("003", o.Agency),
		marc.NewControlField("005", dates.Transaction(now)),
		marc.NewControlField("008", FixedField(rec, now)),
	)

	if rec.ISBN13 != "" {
		f := marc.NewDataField("020", ' ', ' ', marc.Subfield{Code: 'a', Value: rec.ISBN13})
		if rec.HasPrice() {
			f.AddSubfield('c', fmt.Sprintf("$%.2f", *rec.MSRP))
		}
		r.Add(f)
	}

	r.Add(marc.NewDataField("040", ' ', ' ',
		marc.Subfield{Code: 'a', Value: o.Agency},
		marc.Subfield{Code: 'b', Value: language},
		marc.Subfield{Code: 'c', Value: o.Agency},
		marc.Subfield{Code: 'e', Value: descriptionRules},
	))

	if len(rec.Authors) > 0 {
		r.Add(marc.NewDataField("100", '1', ' ', marc.Subfield{Code: 'a', Value: authors}))
	}

	title := marc.NewDataField("245", '1', '0', marc.Subfield{Code: 'a', Value: rec.Title})
	if len(rec.Authors) > 0 {
		title.AddSubfield('c', authors)
	}
	r.Add(title)

	if rec.Publisher != "" || rec.HasYear() {
		f := marc.NewDataField("264", ' ', '1')
		if rec.Publisher != "" {
			f.AddSubfield('b', rec.Publisher)
		}
		if rec.HasYear() {
			f.AddSubfield('c', strconv.Itoa(rec.Year()))
		}
		r.Add(f)
	}

	r.Add(marc.NewDataField("300", ' ', ' ', marc.Subfield{
		Code:  'a',
		Value: stringsx.FirstNonEmpty(rec.PhysicalDescription, DefaultPhysicalDescription),
	}))

	r.Add(
		rdaField("336", "still image", "sti", "rdacontent"),
		rdaField("337", "unmediated", "n", "rdamedia"),
		rdaField("338", "volume", "nc", "rdacarrier"),
	)

	if rec.SeriesName != "" {
		r.Add(marc.NewDataField("490", '1', ' ',
			marc.Subfield{Code: 'a', Value: rec.SeriesName},
			marc.Subfield{Code: 'v', Value: strconv.Itoa(rec.VolumeNumber)},
		))
	}

	if rec.Description != "" {
		r.Add(marc.NewDataField("520", ' ', ' ', marc.Subfield{
			Code:  'a',
			Value: stringsx.Truncate(rec.Description, SummaryLimit),
		}))
	}

	if len(rec.Genres) > 0 {
		r.Add(marc.NewDataField("500", ' ', ' ', marc.Subfield{
			Code:  'a',
			Value: GenreNotePrefix + strings.Join(rec.Genres, ", "),
		}))
	}

	if len(rec.Warnings) > 0 {
		r.Add(marc.NewDataField("590", ' ', ' ', marc.Subfield{
			Code:  'a',
			Value: WarningNotePrefix + strings.Join(rec.Warnings, ", "),
		}))
	}

	for _, g := range rec.Genres {
		r.Add(subjectField(g))
	}
	r.Add(subjectField(MangaSubject))

	r.Add(marc.NewDataField("852", '8', ' ',
		marc.Subfield{Code: 'b', Value: o.Location},
		marc.Subfield{Code: 'h', Value: callNumber},
		marc.Subfield{Code: 'p', Value: barcode},
		marc.Subfield{Code: 'x', Value: o.Collection},
	))

	if len(rec.Authors) > 0 {
		r.Add(marc.NewDataField("090", ' ', ' ', marc.Subfield{Code: 'a', Value: callNumber}))
	}
	return r
}

func rdaField(tag, term, code, source string) *marc.Field {
	return marc.NewDataField(tag, ' ', ' ',
		marc.Subfield{Code: 'a', Value: term},
		marc.Subfield{Code: 'b', Value: code},
		marc.Subfield{Code: '2', Value: source},
	)
}

func subjectField(term string) *marc.Field {
	return marc.NewDataField("650", ' ', '0',
		marc.Subfield{Code: 'a', Value: term},
		marc.Subfield{Code: 'v', Value: FormSubdivision},
	)
}
