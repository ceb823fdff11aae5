package barcode

import (
	"fmt"
	"regexp"
	"strconv"
)

// DefaultWidth is the zero-padded digit count of generated barcodes.
const DefaultWidth = 6

var startPattern = regexp.MustCompile(`^([A-Za-z]*)(\d+)$`)

// Format renders prefix + index zero-padded to DefaultWidth digits.
func Format(prefix string, index int) string {
	return fmt.Sprintf("%s%0*d", prefix, DefaultWidth, index)
}

// Sequence hands out consecutive holding barcodes. It is not safe for
// concurrent use; a batch export owns its sequence.
type Sequence struct {
	prefix string
	next   int
	width  int
}

// NewSequence starts at prefix + start with the default width.
func NewSequence(prefix string, start int) *Sequence {
	return &Sequence{prefix: prefix, next: start, width: DefaultWidth}
}

// Parse builds a sequence from a starting barcode such as "T000001". The
// digit width of the start barcode is preserved.
func Parse(start string) (*Sequence, error) {
	m := startPattern.FindStringSubmatch(start)
	if m == nil {
		return nil, fmt.Errorf("invalid barcode format: %q, expected format like 'T000001'", start)
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("invalid barcode number in %q: %w", start, err)
	}
	return &Sequence{prefix: m[1], next: n, width: len(m[2])}, nil
}

// Peek returns the barcode Next would hand out without advancing.
func (s *Sequence) Peek() string {
	return fmt.Sprintf("%s%0*d", s.prefix, s.width, s.next)
}

// Next returns the current barcode and advances the counter by one.
func (s *Sequence) Next() string {
	b := s.Peek()
	s.next++
	return b
}

// Generate returns count consecutive barcodes beginning at start.
func Generate(start string, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid barcode count %d", count)
	}
	seq, err := Parse(start)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, seq.Next())
	}
	return out, nil
}
