package search

import (
	"strings"

	"github.com/fwojciec/kwic"
)

// FindOccurrences returns every occurrence of query in text in increasing
// order of start offset. Matching is exact and case-sensitive, and occurrences
// may overlap: "aa" occurs twice in "aaa". Offsets are byte offsets.
func FindOccurrences(text, query string) []kwic.Match {
	if query == "" {
		return nil
	}

	var matches []kwic.Match
	for offset := 0; offset+len(query) <= len(text); {
		i := strings.Index(text[offset:], query)
		if i < 0 {
			break
		}
		start := offset + i
		matches = append(matches, kwic.Match{Start: start, End: start + len(query)})

		// Resume one byte past the match start so overlapping matches are found.
		offset = start + 1
	}
	return matches
}
