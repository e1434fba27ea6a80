package chatbot

import "strings"

const tokenCutset = ".,!?()[]/"

// Query is a normalized chat message. Text is used for substring tests,
// Tokens for exact word membership.
type Query struct {
	Text       string
	Tokens     map[string]struct{}
	Suggestion string
	Lang       Language
}

// Normalize lowercases and trims text and derives its token set.
func Normalize(text string) *Query {
	text = strings.ToLower(strings.TrimSpace(text))
	q := &Query{
		Text:   text,
		Tokens: make(map[string]struct{}),
		Lang:   DefaultLanguage,
	}
	for _, w := range strings.Fields(text) {
		w = strings.Trim(w, tokenCutset)
		if w == "" {
			continue
		}
		q.Tokens[w] = struct{}{}
	}
	return q
}

// HasToken reports whether any of words is present as a whole token.
func (q *Query) HasToken(words ...string) bool {
	for _, w := range words {
		if _, ok := q.Tokens[w]; ok {
			return true
		}
	}
	return false
}

// Contains reports whether any of phrases occurs anywhere in the text.
func (q *Query) Contains(phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(q.Text, p) {
			return true
		}
	}
	return false
}

// Keywords is a keyword set split by how each entry is tested: short or
// ambiguous words as tokens, distinctive words and phrases as substrings.
type Keywords struct {
	Tokens  []string
	Phrases []string
}

func (k Keywords) In(q *Query) bool {
	return q.HasToken(k.Tokens...) || q.Contains(k.Phrases...)
}
