package table

import "testing"

func TestFormatPadsColumnsToWidestCell(t *testing.T) {
	rows := [][]string{
		{"UNIT", "ACTIVE"},
		{"ssh.service", "active"},
		{"x", "inactive"},
	}
	out := Format(rows, []Alignment{AlignLeft, AlignLeft})
	if len(out) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(out))
	}
	if out[0] != "UNIT         ACTIVE  " {
		t.Fatalf("unexpected header row %q", out[0])
	}
	if out[1] != "ssh.service  active  " {
		t.Fatalf("unexpected row %q", out[1])
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{
		{"a", "10"},
		{"bb", "5"},
	}
	out := Format(rows, []Alignment{AlignLeft, AlignRight})
	if out[0] != "a   10" {
		t.Fatalf("unexpected row %q", out[0])
	}
	if out[1] != "bb   5" {
		t.Fatalf("unexpected row %q", out[1])
	}
}

func TestFormatUsesDisplayWidthForWideRunes(t *testing.T) {
	rows := [][]string{
		{"日本", "x"},
		{"ab", "y"},
	}
	out := Format(rows, []Alignment{AlignLeft, AlignLeft})
	// 日本 occupies four cells; ab needs two cells of padding to match.
	if out[1] != "ab    y" {
		t.Fatalf("unexpected row %q", out[1])
	}
}

func TestFormatEmptyInput(t *testing.T) {
	if out := Format(nil, nil); out != nil {
		t.Fatalf("expected nil, got %#v", out)
	}
}
