package search

import "strings"

// trailingPunctuation is the set of characters stripped from the end of a window.
const trailingPunctuation = ".,/#!$%^&*;:{}=-_`~()"

// formatWindow trims surrounding whitespace from a raw window and removes at
// most one trailing punctuation character.
func formatWindow(raw string) string {
	w := strings.TrimSpace(raw)
	if w == "" {
		return w
	}
	if strings.IndexByte(trailingPunctuation, w[len(w)-1]) >= 0 {
		w = w[:len(w)-1]
	}
	return w
}
