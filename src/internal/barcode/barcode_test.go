package barcode

import "testing"

func TestFormat(t *testing.T) {
	if got := Format("T", 1); got != "T000001" {
		t.Fatalf("Format: got %q", got)
	}
	if got := Format("", 42); got != "000042" {
		t.Fatalf("Format no prefix: got %q", got)
	}
}

func TestSequenceAdvancesOncePerCall(t *testing.T) {
	seq := NewSequence("T", 9)
	if got := seq.Peek(); got != "T000009" {
		t.Fatalf("Peek: got %q", got)
	}
	if got := seq.Peek(); got != "T000009" {
		t.Fatalf("Peek must not advance: got %q", got)
	}
	if a, b := seq.Next(), seq.Next(); a != "T000009" || b != "T000010" {
		t.Fatalf("Next: got %q, %q", a, b)
	}
}

func TestParseKeepsWidth(t *testing.T) {
	seq, err := Parse("MG0099")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a, b := seq.Next(), seq.Next(); a != "MG0099" || b != "MG0100" {
		t.Fatalf("Next: got %q, %q", a, b)
	}
	for _, bad := range []string{"", "T-1", "123T", "T"} {
		if _, err := Parse(bad); err == nil {
			t.Fatalf("Parse(%q): expected error", bad)
		}
	}
}

func TestGenerate(t *testing.T) {
	got, err := Generate("T000001", 3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []string{"T000001", "T000002", "T000003"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Generate[%d]: want %q, got %q", i, want[i], got[i])
		}
	}
	if _, err := Generate("bad!", 2); err == nil {
		t.Fatalf("expected error for invalid start")
	}
	if _, err := Generate("T000001", -1); err == nil {
		t.Fatalf("expected error for negative count")
	}
	if got, err := Generate("T000001", 0); err != nil || len(got) != 0 {
		t.Fatalf("Generate zero: %v %v", got, err)
	}
}
