package commands

import (
	"testing"
)

func TestParseRef_NumericOnly(t *testing.T) {
	ref, err := ParseRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx, ok := ref.Index()
	if !ok {
		t.Fatal("expected an index reference")
	}
	if idx != 5 {
		t.Errorf("expected index 5, got %d", idx)
	}
}

func TestParseRef_Text(t *testing.T) {
	ref, err := ParseRef([]string{"buy", "milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ref.Index(); ok {
		t.Error("expected a text reference")
	}
	if ref.Text() != "buy milk" {
		t.Errorf("expected %q, got %q", "buy milk", ref.Text())
	}
}

func TestParseRef_DigitsWithText(t *testing.T) {
	ref, err := ParseRef([]string{"2", "eggs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ref.Index(); ok {
		t.Error("expected a text reference")
	}
	if ref.Text() != "2 eggs" {
		t.Errorf("expected %q, got %q", "2 eggs", ref.Text())
	}
}

func TestParseRef_Negative(t *testing.T) {
	ref, err := ParseRef([]string{"-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ref.Index(); ok {
		t.Error("expected -1 to be treated as text")
	}
}

func TestParseRef_Overflow(t *testing.T) {
	ref, err := ParseRef([]string{"99999999999999999999999"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Text() != "99999999999999999999999" {
		t.Errorf("expected overflowing digits to fall back to text, got %q", ref)
	}
}

func TestParseRef_NoArgs_Error(t *testing.T) {
	for _, args := range [][]string{nil, {}, {"  "}} {
		_, err := ParseRef(args)
		if err != ErrRefRequired {
			t.Errorf("ParseRef(%q): expected ErrRefRequired, got %v", args, err)
		}
	}
}

func TestParseIndex(t *testing.T) {
	n, err := ParseIndex("3")
	if err != nil || n != 3 {
		t.Errorf("expected 3, got %d (%v)", n, err)
	}

	_, err = ParseIndex("neener")
	if err == nil {
		t.Fatal("expected error for non-integer")
	}
	if err.Error() != "invalid index: neener" {
		t.Errorf("unexpected error message %q", err.Error())
	}
}
