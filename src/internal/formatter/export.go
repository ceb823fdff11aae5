package formatter

import (
	"fmt"
	"io"

	"mangamarc/src/internal/barcode"
	"mangamarc/src/internal/book"
	"mangamarc/src/internal/marc"
)

// Assignment records which barcode and call number a record received.
type Assignment struct {
	Barcode       string   `json:"barcode"`
	CallNumber    string   `json:"call_number"`
	ControlNumber string   `json:"control_number"`
	Title         string   `json:"title"`
	Warnings      []string `json:"warnings,omitempty"`
}

// Export formats recs in order and writes them to w. Each record takes exactly
// one barcode from seq. The returned assignments cover every record written.
func Export(w io.Writer, recs []book.Record, seq *barcode.Sequence, opts ...Option) ([]Assignment, error) {
	mw := marc.NewWriter(w)
	out := make([]Assignment, 0, len(recs))
	for i, rec := range recs {
		code := seq.Next()
		if err := mw.Write(Format(rec, code, opts...)); err != nil {
			return out, fmt.Errorf("record %d (%s, barcode %s): %w", i+1, rec.Title, code, err)
		}
		out = append(out, Assignment{
			Barcode:       code,
			CallNumber:    CallNumber(rec, code),
			ControlNumber: ControlNumber(rec),
			Title:         rec.Title,
			Warnings:      rec.Warnings,
		})
	}
	return out, nil
}
