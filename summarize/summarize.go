// Package summarize provides the frequency-based keyword extraction
// and extractive summarization over body text produced by an Extractor.
// All functions are pure and operate on immutable inputs.
package summarize

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/hkwon/pagesum"
)

var (
	// tokenPattern matches maximal runs of two or more Latin or Hangul
	// letters. Digits, punctuation, and other scripts are separators.
	tokenPattern = regexp.MustCompile(`[A-Za-z가-힣]{2,}`)

	// footnotePattern matches bracketed footnote markers like [1] or [주 2].
	footnotePattern = regexp.MustCompile(`\[[^\]]+\]`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Tokenize extracts lowercased tokens of two or more Latin or Hangul
// letters from text.
func Tokenize(text string) []string {
	matches := tokenPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.ToLower(m))
	}
	return tokens
}

// SplitSentences splits body text into sentences. Whitespace is
// collapsed and bracketed footnote markers are removed first. A
// sentence boundary sits immediately after '.', '!' or '?' when the
// next character is whitespace or an opening bracket; this also covers
// the Korean "다." sentence ending. Fragments of two or fewer runes
// are discarded.
func SplitSentences(text string) []string {
	t := strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
	if t == "" {
		return nil
	}
	t = footnotePattern.ReplaceAllString(t, " ")

	var sentences []string
	keep := func(fragment []rune) {
		s := strings.TrimSpace(string(fragment))
		if len([]rune(s)) > 2 {
			sentences = append(sentences, s)
		}
	}

	runes := []rune(t)
	start := 0
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 >= len(runes) {
			continue
		}
		if next := runes[i+1]; unicode.IsSpace(next) || next == '[' {
			keep(runes[start : i+1])
			start = i + 1
		}
	}
	keep(runes[start:])
	return sentences
}

// Frequencies counts stopword-excluded token occurrences in text.
func Frequencies(text string) pagesum.Frequencies {
	freq := pagesum.Frequencies{}
	for _, tok := range Tokenize(text) {
		if stopwords[tok] {
			continue
		}
		freq[tok]++
	}
	return freq
}

// Keywords returns the top k tokens by frequency, stopwords excluded,
// alongside the full frequency table. Ties are broken by first
// occurrence in the text, so ordering is stable across runs.
func Keywords(text string, k int) ([]string, pagesum.Frequencies) {
	freq := pagesum.Frequencies{}
	first := make(map[string]int)
	for i, tok := range Tokenize(text) {
		if stopwords[tok] {
			continue
		}
		if _, seen := first[tok]; !seen {
			first[tok] = i
		}
		freq[tok]++
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return first[terms[i]] < first[terms[j]]
	})
	if k > 0 && len(terms) > k {
		terms = terms[:k]
	}
	return terms, freq
}

// Summarize produces an extractive summary of at most maxSentences
// sentences. Each sentence is scored by the sum of global
// stopword-excluded token frequencies for its tokens; the top scorers
// are returned in original document order. maxChars caps each emitted
// sentence (and the whole summary in the short-document case), 0
// disables truncation.
func Summarize(text string, maxSentences, maxChars int) string {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return ""
	}
	if maxSentences < 1 {
		maxSentences = 1
	}

	if len(sentences) <= maxSentences {
		return truncate(strings.Join(sentences, " "), maxChars)
	}

	freq := Frequencies(text)
	scores := make([]int, len(sentences))
	for i, s := range sentences {
		for _, tok := range Tokenize(s) {
			scores[i] += freq[tok]
		}
	}

	// Stable sort keeps earlier sentences ahead on equal scores.
	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	selected := append([]int(nil), order[:maxSentences]...)
	sort.Ints(selected)

	parts := make([]string, 0, len(selected))
	for _, i := range selected {
		parts = append(parts, truncate(sentences[i], maxChars))
	}
	return strings.Join(parts, " ")
}

// truncate caps s at max runes, replacing the tail with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
