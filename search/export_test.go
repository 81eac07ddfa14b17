package search

// Exported for testing the boundary walker and window formatter directly.

func LeadingOffset(text string, start, n int) int {
	return newBoundaries(text).leading(start, n)
}

func TrailingOffset(text string, end, n int) int {
	return newBoundaries(text).trailing(end, n)
}

var FormatWindow = formatWindow
