package ocr

import "strings"

// MaxAltTextRunes bounds the length of generated picture descriptions.
const MaxAltTextRunes = 120

// Summarize collapses whitespace in recognized text to single spaces and
// cuts it at a word boundary so the result has at most limit runes, adding
// "..." when text was dropped. A non-positive limit disables the cut.
func Summarize(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	r := []rune(text)
	if limit <= 0 || len(r) <= limit {
		return text
	}
	if limit <= 3 {
		return string(r[:limit])
	}

	cut := string(r[:limit-3])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
