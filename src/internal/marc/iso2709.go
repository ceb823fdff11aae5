package marc

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ISO 2709 structural bytes.
const (
	SubfieldDelimiter byte = 0x1F
	FieldTerminator   byte = 0x1E
	RecordTerminator  byte = 0x1D
)

const (
	leaderLen    = 24
	dirEntryLen  = 12
	maxFieldLen  = 9999
	maxRecordLen = 99999
)

var (
	ErrFieldTooLong  = errors.New("marc: field exceeds 9999 bytes")
	ErrRecordTooLong = errors.New("marc: record exceeds 99999 bytes")
	ErrInvalidTag    = errors.New("marc: tag must be 3 characters")
	ErrInvalidRecord = errors.New("marc: invalid record")
)

func (f *Field) encode() []byte {
	var b bytes.Buffer
	if f.IsControl() {
		b.WriteString(f.Data)
		b.WriteByte(FieldTerminator)
		return b.Bytes()
	}
	for _, ind := range f.Indicators {
		if ind == 0 {
			ind = ' '
		}
		b.WriteByte(ind)
	}
	for _, sf := range f.Subfields {
		b.WriteByte(SubfieldDelimiter)
		b.WriteByte(sf.Code)
		b.WriteString(sf.Value)
	}
	b.WriteByte(FieldTerminator)
	return b.Bytes()
}

// checkStructural rejects values that would embed delimiter or terminator
// bytes and so corrupt the directory offsets of the stream.
func (f *Field) checkStructural() error {
	const structural = "\x1d\x1e\x1f"
	if strings.ContainsAny(f.Data, structural) {
		return fmt.Errorf("%w: field %s contains a delimiter byte", ErrInvalidRecord, f.Tag)
	}
	for _, ind := range f.Indicators {
		if strings.IndexByte(structural, ind) >= 0 {
			return fmt.Errorf("%w: field %s indicator is a delimiter byte", ErrInvalidRecord, f.Tag)
		}
	}
	for _, sf := range f.Subfields {
		if strings.IndexByte(structural, sf.Code) >= 0 || strings.ContainsAny(sf.Value, structural) {
			return fmt.Errorf("%w: field %s $%c contains a delimiter byte", ErrInvalidRecord, f.Tag, sf.Code)
		}
	}
	return nil
}

// Marshal encodes r in ISO 2709 form. Record length and base address in the
// leader are computed; all other leader bytes are copied from r.Leader.
func Marshal(r *Record) ([]byte, error) {
	var dir, body bytes.Buffer
	for _, f := range r.fields {
		if len(f.Tag) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTag, f.Tag)
		}
		if err := f.checkStructural(); err != nil {
			return nil, err
		}
		data := f.encode()
		if len(data) > maxFieldLen {
			return nil, fmt.Errorf("%w: field %s is %d bytes", ErrFieldTooLong, f.Tag, len(data))
		}
		fmt.Fprintf(&dir, "%s%04d%05d", f.Tag, len(data), body.Len())
		body.Write(data)
	}
	dir.WriteByte(FieldTerminator)

	base := leaderLen + dir.Len()
	total := base + body.Len() + 1
	if total > maxRecordLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrRecordTooLong, total)
	}

	leader := []byte(DefaultLeader)
	copy(leader, r.Leader)
	copy(leader[0:5], fmt.Sprintf("%05d", total))
	copy(leader[12:17], fmt.Sprintf("%05d", base))

	out := make([]byte, 0, total)
	out = append(out, leader...)
	out = append(out, dir.Bytes()...)
	out = append(out, body.Bytes()...)
	out = append(out, RecordTerminator)
	return out, nil
}

// Unmarshal decodes one ISO 2709 record.
func Unmarshal(data []byte) (*Record, error) {
	if len(data) < leaderLen+1 {
		return nil, fmt.Errorf("%w: %d bytes is shorter than a leader", ErrInvalidRecord, len(data))
	}
	total, err := strconv.Atoi(string(data[0:5]))
	if err != nil || total != len(data) {
		return nil, fmt.Errorf("%w: record length %q does not match %d bytes", ErrInvalidRecord, data[0:5], len(data))
	}
	base, err := strconv.Atoi(string(data[12:17]))
	if err != nil || base <= leaderLen || base > len(data) {
		return nil, fmt.Errorf("%w: bad base address %q", ErrInvalidRecord, data[12:17])
	}
	if data[base-1] != FieldTerminator {
		return nil, fmt.Errorf("%w: directory not terminated", ErrInvalidRecord)
	}
	dir := data[leaderLen : base-1]
	if len(dir)%dirEntryLen != 0 {
		return nil, fmt.Errorf("%w: directory length %d", ErrInvalidRecord, len(dir))
	}

	rec := &Record{Leader: string(data[:leaderLen])}
	for i := 0; i < len(dir); i += dirEntryLen {
		entry := dir[i : i+dirEntryLen]
		tag := string(entry[0:3])
		length, err1 := strconv.Atoi(string(entry[3:7]))
		start, err2 := strconv.Atoi(string(entry[7:12]))
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: bad directory entry %q", ErrInvalidRecord, entry)
		}
		lo, hi := base+start, base+start+length
		if length < 1 || hi > len(data)-1 {
			return nil, fmt.Errorf("%w: field %s out of bounds", ErrInvalidRecord, tag)
		}
		raw := bytes.TrimSuffix(data[lo:hi], []byte{FieldTerminator})
		rec.Add(decodeField(tag, raw))
	}
	return rec, nil
}

func decodeField(tag string, raw []byte) *Field {
	if isControlTag(tag) {
		return NewControlField(tag, string(raw))
	}
	f := &Field{Tag: tag, Indicators: [2]byte{' ', ' '}}
	if len(raw) >= 2 {
		f.Indicators = [2]byte{raw[0], raw[1]}
		raw = raw[2:]
	}
	chunks := bytes.Split(raw, []byte{SubfieldDelimiter})
	// chunks[0] is whatever precedes the first delimiter; normally empty.
	for _, c := range chunks[1:] {
		if len(c) == 0 {
			continue
		}
		f.AddSubfield(c[0], string(c[1:]))
	}
	return f
}
