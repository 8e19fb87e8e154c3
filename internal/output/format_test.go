package output

import (
	"bytes"
	"testing"
)

func TestFormatItems(t *testing.T) {
	var buf bytes.Buffer
	FormatItems(&buf, []string{"buy milk", "walk dog\r"})

	expected := "   0  buy milk\n   1  walk dog\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatPlain(t *testing.T) {
	var buf bytes.Buffer
	FormatPlain(&buf, "")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}

	FormatPlain(&buf, "A\nB")
	if buf.String() != "A\nB\n" {
		t.Errorf("expected %q, got %q", "A\nB\n", buf.String())
	}
}

func TestFormatEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatEmpty(&buf)
	if buf.String() != "no items\n" {
		t.Errorf("expected plain notice for non-terminal writer, got %q", buf.String())
	}
}

func TestConfirmations(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Added("X", 3), `Added new todo "X" at 3`},
		{Completed("buy milk"), `Completed "buy milk"`},
		{Moved("c", 0), `Moved "c" to 0`},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, tt.got)
		}
	}
}
