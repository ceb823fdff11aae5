package store

import (
	"bufio"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"mangamarc/src/internal/barcode"
	"mangamarc/src/internal/book"
	"mangamarc/src/internal/formatter"
	"mangamarc/src/internal/marc"
)

// isBookFile reports whether path has an input extension we read.
func isBookFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// ReadBooks loads lookup responses from a YAML/JSON file, or from every such
// file under a directory in lexical order, normalizing and validating each.
func ReadBooks(path string, now time.Time) ([]book.Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to access %s", path)
	}
	if !info.IsDir() {
		return readBookFile(path, now)
	}
	var out []book.Record
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isBookFile(p) {
			return nil
		}
		recs, err := readBookFile(p, now)
		if err != nil {
			return err
		}
		out = append(out, recs...)
		return nil
	})
	return out, err
}

// readBookFile normalizes and validates every entry of one input file.
func readBookFile(path string, now time.Time) ([]book.Record, error) {
	raws, err := ReadRaw(path)
	if err != nil {
		return nil, err
	}
	recs := make([]book.Record, 0, len(raws))
	for i, r := range raws {
		rec := book.Normalize(r, now)
		if err := rec.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid entry %d in %s", i+1, path)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// ReadRaw decodes one input file without normalizing it. The file may hold
// either a single mapping or a sequence of mappings.
func ReadRaw(path string) ([]book.Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "invalid YAML in %s", path)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]

	var raws []book.Raw
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&raws); err != nil {
			return nil, errors.Wrapf(err, "invalid records in %s", path)
		}
	case yaml.MappingNode:
		var r book.Raw
		if err := root.Decode(&r); err != nil {
			return nil, errors.Wrapf(err, "invalid record in %s", path)
		}
		raws = append(raws, r)
	default:
		return nil, errors.Errorf("%s: expected a record or a list of records", path)
	}
	return raws, nil
}

// WriteMARC formats recs into a MARC file at path, creating parent
// directories as needed.
func WriteMARC(path string, recs []book.Record, seq *barcode.Sequence, opts ...formatter.Option) ([]formatter.Assignment, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "unable to create %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to create %s", path)
	}
	bw := bufio.NewWriter(f)
	assigned, err := formatter.Export(bw, recs, seq, opts...)
	if err != nil {
		_ = f.Close()
		return assigned, errors.Wrapf(err, "writing %s", path)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return assigned, errors.Wrapf(err, "writing %s", path)
	}
	if err := f.Close(); err != nil {
		return assigned, errors.Wrapf(err, "closing %s", path)
	}
	return assigned, nil
}

// ReadMARC decodes every record in an ISO 2709 file.
func ReadMARC(path string) ([]*marc.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()
	recs, err := marc.ReadAll(f)
	if err != nil {
		return recs, errors.Wrapf(err, "reading %s", path)
	}
	return recs, nil
}

// WriteManifest writes the barcode assignments of an export as indented JSON.
func WriteManifest(path string, assigned []formatter.Assignment) error {
	b, err := json.MarshalIndent(assigned, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrapf(err, "unable to write %s", path)
	}
	return nil
}
