package search

import "sort"

// run is a maximal sequence of word separators. A separator is a single space
// or a CRLF pair. last is the offset of the final separator in the run.
type run struct {
	start int
	last  int
	end   int
}

// boundaries is a sorted index of separator runs in a document. Each run
// counts as exactly one word boundary no matter how many separators it holds.
type boundaries struct {
	runs []run
	size int
}

// newBoundaries indexes the separator runs of text. Mixed runs such as
// "\r\n " and "\r\n\r\n" are one boundary, not one per separator.
func newBoundaries(text string) *boundaries {
	b := &boundaries{size: len(text)}
	for i := 0; i < len(text); {
		n := separatorAt(text, i)
		if n == 0 {
			i++
			continue
		}

		r := run{start: i}
		for n > 0 {
			r.last = i
			i += n
			n = separatorAt(text, i)
		}
		r.end = i
		b.runs = append(b.runs, r)
	}
	return b
}

// separatorAt returns the length of the separator starting at i, or 0.
func separatorAt(text string, i int) int {
	switch {
	case i >= len(text):
		return 0
	case text[i] == ' ':
		return 1
	case text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n':
		return 2
	}
	return 0
}

// leading returns the offset where the window of n words before start begins.
// The run immediately preceding start is boundary zero; the offset returned is
// one past the start of boundary n, or 0 when fewer boundaries exist.
func (b *boundaries) leading(start, n int) int {
	k := sort.Search(len(b.runs), func(i int) bool {
		return b.runs[i].start >= start
	})
	j := k - 1 - n
	if j < 0 {
		return 0
	}
	return b.runs[j].start + 1
}

// trailing returns the offset where the window of n words after end stops.
// The first run whose last separator is at or after end is boundary zero; the
// offset returned is the last separator of boundary n, or the document size
// when fewer boundaries exist.
func (b *boundaries) trailing(end, n int) int {
	k := sort.Search(len(b.runs), func(i int) bool {
		return b.runs[i].last >= end
	})
	j := k + n
	if j >= len(b.runs) {
		return b.size
	}
	return b.runs[j].last
}

// words returns the number of words delimited by the indexed runs.
func (b *boundaries) words() int {
	if b.size == 0 {
		return 0
	}

	n := len(b.runs) + 1
	if len(b.runs) > 0 && b.runs[0].start == 0 {
		n--
	}
	if len(b.runs) > 0 && b.runs[len(b.runs)-1].end == b.size {
		n--
	}
	return n
}
