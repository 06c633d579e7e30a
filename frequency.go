package pagesum

import "sort"

// Keyword is a token with its occurrence count.
type Keyword struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Frequencies maps tokens to occurrence counts. Stopwords are excluded
// at construction time by the summarize package.
type Frequencies map[string]int

// Merge adds the counts from other into f.
func (f Frequencies) Merge(other Frequencies) {
	for term, count := range other {
		f[term] += count
	}
}

// Top returns the n highest-count keywords. Ties are broken by term
// ordering so the result is deterministic regardless of map iteration.
func (f Frequencies) Top(n int) []Keyword {
	keywords := make([]Keyword, 0, len(f))
	for term, count := range f {
		keywords = append(keywords, Keyword{Term: term, Count: count})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Term < keywords[j].Term
	})
	if n > 0 && len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}
