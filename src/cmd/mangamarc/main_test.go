package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	old, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(old) })
	_ = os.Chdir(dir)
	configFile = ""
	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestBarcodesCommand(t *testing.T) {
	out, err := execute(t, "barcodes", "T000099", "3")
	if err != nil {
		t.Fatalf("barcodes: %v", err)
	}
	if out != "T000099\nT000100\nT000101\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := execute(t, "barcodes", "T000001", "x"); err == nil {
		t.Fatalf("expected error for bad count")
	}
}

func TestVolumesCommand(t *testing.T) {
	out, err := execute(t, "volumes", "3-5,1,17-18-19")
	if err != nil {
		t.Fatalf("volumes: %v", err)
	}
	if strings.TrimSpace(out) != "1,3,4,5,17,18,19" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCallNumberCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.yaml")
	data := "- book_title: Naruto (Volume 1)\n  volume_number: 1\n  authors: Masashi Kishimoto\n  copyright_year: 2003\n- book_title: Anonymous\n  volume_number: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := execute(t, "callnumber", "--start-barcode", "B0010", path)
	if err != nil {
		t.Fatalf("callnumber: %v", err)
	}
	want := "B0010\tFIC KIS 2003 B0010\tNaruto (Volume 1)\n" +
		"B0011\tFIC UNK 0 B0011\tAnonymous\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestConfigFileFeedsExport(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "mangamarc.yaml")
	if err := os.WriteFile(cfg, []byte("barcode_prefix: Z\nbarcode_start: 40\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	in := filepath.Join(dir, "one.yaml")
	if err := os.WriteFile(in, []byte("book_title: One\nvolume_number: 1\nauthors: Eiichiro Oda\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out := filepath.Join(dir, "one.mrc")
	t.Cleanup(func() { configFile = "" })
	if _, err := execute(t, "--config", cfg, "export", in, "-o", out); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "FIC ODA 0 Z000040") {
		t.Fatalf("config barcode not applied: %q", data)
	}
}

func TestUnknownConfigFile(t *testing.T) {
	t.Cleanup(func() { configFile = "" })
	if _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "volumes", "1"); err == nil {
		t.Fatalf("expected error for missing config")
	}
}
