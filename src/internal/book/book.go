package book

import (
	"errors"
	"strings"
)

// Record is a validated manga volume ready for cataloging. Empty strings, nil
// pointers and empty slices mean "absent"; only Title and VolumeNumber are
// required. Treat a Record as immutable once built.
type Record struct {
	SeriesName          string   `yaml:"series_name,omitempty" json:"series_name,omitempty"`
	VolumeNumber        int      `yaml:"volume_number" json:"volume_number"`
	Title               string   `yaml:"book_title" json:"book_title"`
	Authors             []string `yaml:"authors,omitempty" json:"authors,omitempty"`
	MSRP                *float64 `yaml:"msrp_cost,omitempty" json:"msrp_cost,omitempty"`
	ISBN13              string   `yaml:"isbn_13,omitempty" json:"isbn_13,omitempty"`
	Publisher           string   `yaml:"publisher_name,omitempty" json:"publisher_name,omitempty"`
	CopyrightYear       *int     `yaml:"copyright_year,omitempty" json:"copyright_year,omitempty"`
	Description         string   `yaml:"description,omitempty" json:"description,omitempty"`
	PhysicalDescription string   `yaml:"physical_description,omitempty" json:"physical_description,omitempty"`
	Genres              []string `yaml:"genres,omitempty" json:"genres,omitempty"`
	Warnings            []string `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

// Validate checks the two required fields.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("book_title is required")
	}
	if r.VolumeNumber <= 0 {
		return errors.New("volume_number must be positive")
	}
	return nil
}

// HasPrice reports whether an MSRP is present. A zero price is treated as
// missing.
func (r *Record) HasPrice() bool { return r.MSRP != nil && *r.MSRP != 0 }

// HasYear reports whether a copyright year is present.
func (r *Record) HasYear() bool { return r.CopyrightYear != nil && *r.CopyrightYear != 0 }

// Year returns the copyright year or 0.
func (r *Record) Year() int {
	if !r.HasYear() {
		return 0
	}
	return *r.CopyrightYear
}
