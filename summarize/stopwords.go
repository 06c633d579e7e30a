package summarize

import "strings"

// stopwordList holds common Korean particles/conjunctions and English
// function words excluded from keyword and sentence scoring.
// Single-character entries are unreachable through Tokenize (minimum
// token length is two) but kept for use with externally supplied tokens.
const stopwordList = `
그리고 그러나 그래서 또는 또한 및 등 이 그 저 것 수 등등 에 의 은 는 이 가 을 를 으로 로 에서 부터 까지 도 만 보다 보다도
the a an and or but if then else also to too of in on at for from with by as is are was were be been being this that these those
`

var stopwords = func() map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(stopwordList) {
		set[w] = true
	}
	return set
}()

// IsStopword reports whether the (lowercased) token is excluded from
// frequency scoring.
func IsStopword(token string) bool {
	return stopwords[token]
}
