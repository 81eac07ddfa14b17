package kwic

// Match is the byte range of a single query occurrence within a document.
// Start is inclusive, End is exclusive.
type Match struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Searcher searches a single loaded document for a query word.
type Searcher interface {
	// Search returns one context string for every occurrence of query, in
	// document order. contextWords is the number of whole words to include
	// on each side of the occurrence; zero returns the bare match.
	// Returns EINVALID for an empty query or negative contextWords.
	Search(query string, contextWords int) ([]string, error)
}

// ValidateSearch returns an error if the search arguments are invalid.
func ValidateSearch(query string, contextWords int) error {
	if query == "" {
		return Errorf(EINVALID, "query required")
	}
	if contextWords < 0 {
		return Errorf(EINVALID, "context words must be non-negative, got %d", contextWords)
	}
	return nil
}
