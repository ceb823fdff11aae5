// Package marc models MARC21 records and reads and writes them in the ISO 2709
// exchange format.
package marc

import (
	"strings"
)

// DefaultLeader describes a new UTF-8 book record (type a, level m) using ISBD
// punctuation. Length and base address are filled in by Marshal.
const DefaultLeader = "00000nam a2200000 i 4500"

// Subfield is one coded value inside a data field.
type Subfield struct {
	Code  byte
	Value string
}

// Field is either a control field (tags 001-009, Data only) or a data field
// with two indicators and subfields.
type Field struct {
	Tag        string
	Data       string
	Indicators [2]byte
	Subfields  []Subfield
}

// NewControlField returns a control field carrying data.
func NewControlField(tag, data string) *Field {
	return &Field{Tag: tag, Data: data}
}

// NewDataField returns a data field. Use ' ' for an undefined indicator.
func NewDataField(tag string, ind1, ind2 byte, subfields ...Subfield) *Field {
	return &Field{Tag: tag, Indicators: [2]byte{ind1, ind2}, Subfields: subfields}
}

// IsControl reports whether the field is a control field.
func (f *Field) IsControl() bool { return isControlTag(f.Tag) }

func isControlTag(tag string) bool { return tag < "010" }

// AddSubfield appends a subfield.
func (f *Field) AddSubfield(code byte, value string) {
	f.Subfields = append(f.Subfields, Subfield{Code: code, Value: value})
}

// Subfield returns the first value for code, or "".
func (f *Field) Subfield(code byte) string {
	for _, sf := range f.Subfields {
		if sf.Code == code {
			return sf.Value
		}
	}
	return ""
}

// SubfieldValues returns every value for code in order.
func (f *Field) SubfieldValues(code byte) []string {
	var out []string
	for _, sf := range f.Subfields {
		if sf.Code == code {
			out = append(out, sf.Value)
		}
	}
	return out
}

// Value is the field content as plain text: Data for control fields,
// subfield values joined by spaces otherwise.
func (f *Field) Value() string {
	if f.IsControl() {
		return f.Data
	}
	vals := make([]string, 0, len(f.Subfields))
	for _, sf := range f.Subfields {
		vals = append(vals, sf.Value)
	}
	return strings.Join(vals, " ")
}

// String renders the field in mnemonic form: "=245  10$aTitle$cAuthor".
// Blank indicators print as a backslash.
func (f *Field) String() string {
	var b strings.Builder
	b.WriteString("=" + f.Tag + "  ")
	if f.IsControl() {
		b.WriteString(strings.ReplaceAll(f.Data, " ", `\`))
		return b.String()
	}
	for _, ind := range f.Indicators {
		if ind == ' ' || ind == 0 {
			b.WriteByte('\\')
			continue
		}
		b.WriteByte(ind)
	}
	for _, sf := range f.Subfields {
		b.WriteByte('$')
		b.WriteByte(sf.Code)
		b.WriteString(sf.Value)
	}
	return b.String()
}

// Record is a leader plus fields kept in insertion order.
type Record struct {
	Leader string
	fields []*Field
}

// NewRecord returns an empty record with DefaultLeader.
func NewRecord() *Record {
	return &Record{Leader: DefaultLeader}
}

// Add appends fields in the given order.
func (r *Record) Add(fields ...*Field) {
	r.fields = append(r.fields, fields...)
}

// Fields returns the fields matching any of tags, or all fields when no tag
// is given.
func (r *Record) Fields(tags ...string) []*Field {
	if len(tags) == 0 {
		return r.fields
	}
	var out []*Field
	for _, f := range r.fields {
		for _, t := range tags {
			if f.Tag == t {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// Field returns the first field with tag, or nil.
func (r *Record) Field(tag string) *Field {
	for _, f := range r.fields {
		if f.Tag == tag {
			return f
		}
	}
	return nil
}

// String renders the record in mnemonic form, one field per line, leader first.
func (r *Record) String() string {
	lines := make([]string, 0, len(r.fields)+1)
	lines = append(lines, "=LDR  "+strings.ReplaceAll(r.Leader, " ", `\`))
	for _, f := range r.fields {
		lines = append(lines, f.String())
	}
	return strings.Join(lines, "\n")
}
