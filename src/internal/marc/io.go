package marc

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Writer writes records to an underlying stream one after another.
type Writer struct {
	w io.Writer
	n int
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Write encodes and writes one record.
func (w *Writer) Write(r *Record) error {
	b, err := Marshal(r)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	w.n++
	return nil
}

// Count returns how many records have been written.
func (w *Writer) Count() int { return w.n }

// Reader splits a stream of ISO 2709 records.
type Reader struct {
	br *bufio.Reader
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader { return &Reader{br: bufio.NewReader(r)} }

// Next returns the next record or io.EOF once the stream is exhausted.
// Whitespace between records (such as a trailing newline) is ignored.
func (r *Reader) Next() (*Record, error) {
	for {
		chunk, err := r.br.ReadBytes(RecordTerminator)
		trimmed := bytes.TrimLeft(chunk, " \t\r\n")
		if len(trimmed) == 0 {
			if err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		return Unmarshal(trimmed)
	}
}

// ReadAll reads every record in r.
func ReadAll(r io.Reader) ([]*Record, error) {
	rd := NewReader(r)
	var out []*Record
	for {
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}
