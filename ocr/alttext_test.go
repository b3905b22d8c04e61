package ocr

import "testing"

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"collapse whitespace", "hello   world\nagain ", 0, "hello world again"},
		{"fits", "Figure 3", 20, "Figure 3"},
		{"cut at word", "one two three four", 10, "one..."},
		{"cut inside word", "abcdefghijkl", 8, "abcde..."},
		{"tiny limit", "abcdef", 2, "ab"},
		{"multibyte", "ééééé ééééé", 8, "ééééé..."},
		{"empty", "  \n ", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.text, tt.limit); got != tt.want {
				t.Errorf("Summarize(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.want)
			}
		})
	}
}
