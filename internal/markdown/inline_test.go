package markdown

import "testing"

func TestRenderInline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"**a**", "<b>a</b>"},
		{"**a** and **b**", "<b>a</b> and <b>b</b>"},
		{"__a__ and __b__", "<em>a</em> and <em>b</em>"},
		{"**a** __b__", "<b>a</b> <em>b</em>"},
		{"**__both__**", "<b><em>both</em></b>"},
		{"**", "**"},
		{"****", "****"},
		{"*****", "<b>*</b>"},
		{"***x**", "<b>*x</b>"},
		// An empty run is skipped; the closer search starts after one character.
		{"****a**", "<b>**a</b>"},
		{"**open only", "**open only"},
		{"x **a** **b", "x <b>a</b> **b"},
		{"**é**", "<b>é</b>"},
		{"__", "__"},
		{"snake_case_name", "snake_case_name"},
	}
	for _, tc := range tests {
		if got := renderInline(tc.in); got != tc.want {
			t.Errorf("renderInline(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
