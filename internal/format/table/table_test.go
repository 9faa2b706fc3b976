package table

import "testing"

func TestFormatAligns(t *testing.T) {
	got := Format([][]string{
		{"controls", "4"},
		{"trap", "a"},
	}, []Alignment{AlignRight, AlignLeft})
	want := []string{
		"controls  4",
		"    trap  a",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatMeasuresCells(t *testing.T) {
	got := Format([][]string{
		{"\x1b[1mbold\x1b[0m", "x"},
		{"界", "y"},
		{"abc", "z"},
	}, nil)
	want := []string{
		"\x1b[1mbold\x1b[0m  x",
		"界    y",
		"abc   z",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatal("expected nil")
	}
}
