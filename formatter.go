package kwic

import (
	"fmt"
	"strings"
)

// FormatResults formats search results for display.
// Each result is printed on its own numbered line under a header naming the
// query. Returns a single "No matches" line when results is empty.
func FormatResults(query string, results []string) string {
	if len(results) == 0 {
		return fmt.Sprintf("No matches for %q", query)
	}

	noun := "matches"
	if len(results) == 1 {
		noun = "match"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %s for %q", len(results), noun, query)
	for i, r := range results {
		fmt.Fprintf(&sb, "\n%4d: %s", i+1, r)
	}
	return sb.String()
}
