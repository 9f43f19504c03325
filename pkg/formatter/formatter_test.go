package formatter

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tc := range tests {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1234, "1.2K"},
		{999999, "1000.0K"},
		{3400000, "3.4M"},
	}
	for _, tc := range tests {
		if got := FormatCompact(tc.in); got != tc.want {
			t.Errorf("FormatCompact(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEscapeMarkdownV2(t *testing.T) {
	in := "1.2K likes (up _a lot_!)"
	want := `1\.2K likes \(up \_a lot\_\!\)`
	if got := EscapeMarkdownV2(in); got != want {
		t.Errorf("EscapeMarkdownV2(%q) = %q, want %q", in, got, want)
	}
}
