package chatbot

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// SimilarityCutoff is the minimum ratio a vocabulary word needs before it
// replaces a word of the query.
const SimilarityCutoff = 0.70

// Vocabulary is the fixed list of domain keywords typos are corrected to.
var Vocabulary = []string{
	"courses", "fees", "admission", "facilities", "hostel", "library",
	"sports", "transport", "incubation", "contact", "address", "phone",
	"bca", "bba", "bcom", "ba", "bsc", "msc", "mcom", "dca", "pgdca",
	"biotech", "chemistry", "english", "computer", "science", "commerce",
	"lab", "laboratory", "bus", "wifi", "internet", "reading", "room",
	"scholarship", "placement",
}

// Corrector replaces misspelled words with their closest vocabulary match.
type Corrector struct {
	vocabulary []string
	chars      map[string][]string
}

func NewCorrector(vocabulary []string) *Corrector {
	c := &Corrector{
		vocabulary: vocabulary,
		chars:      make(map[string][]string, len(vocabulary)),
	}
	for _, v := range vocabulary {
		c.chars[v] = strings.Split(v, "")
	}
	return c
}

type substitution struct {
	from, to string
}

// Correct returns the corrected text and a "did you mean" message. When no
// word changes the input is returned as is with an empty suggestion.
func (c *Corrector) Correct(text string) (string, string) {
	return c.CorrectKeeping(text, nil)
}

// CorrectKeeping is Correct, except that words whose parts are all in keep
// are left untouched.
func (c *Corrector) CorrectKeeping(text string, keep WordSet) (string, string) {
	words := strings.Fields(strings.ToLower(text))
	corrected := make([]string, 0, len(words))
	var subs []substitution

	for _, word := range words {
		if keep.covers(word) {
			corrected = append(corrected, word)
			continue
		}
		best, ok := c.Closest(word)
		if ok && best != word {
			corrected = append(corrected, best)
			subs = append(subs, substitution{from: word, to: best})
			continue
		}
		corrected = append(corrected, word)
	}

	if len(subs) == 0 {
		return text, ""
	}

	pairs := make([]string, len(subs))
	for i, s := range subs {
		pairs[i] = fmt.Sprintf("'%s' → '%s'", s.from, s.to)
	}
	return strings.Join(corrected, " "), fmt.Sprintf("🤔 Did you mean: %s?", strings.Join(pairs, ", "))
}

// Closest returns the single best vocabulary word scoring at least
// SimilarityCutoff. Equal scores go to the lexicographically greater word.
func (c *Corrector) Closest(word string) (string, bool) {
	target := strings.Split(word, "")
	best, bestScore := "", 0.0

	for _, candidate := range c.vocabulary {
		m := difflib.NewMatcher(c.chars[candidate], target)
		if m.RealQuickRatio() < SimilarityCutoff || m.QuickRatio() < SimilarityCutoff {
			continue
		}
		score := m.Ratio()
		if score < SimilarityCutoff {
			continue
		}
		if score > bestScore || (score == bestScore && candidate > best) {
			best, bestScore = candidate, score
		}
	}
	return best, best != ""
}

// WordSet is a set of lowercase word parts.
type WordSet map[string]struct{}

// Add inserts every part of each phrase.
func (w WordSet) Add(phrases ...string) {
	for _, p := range phrases {
		for _, part := range wordParts(p) {
			w[part] = struct{}{}
		}
	}
}

func (w WordSet) covers(word string) bool {
	if len(w) == 0 {
		return false
	}
	parts := wordParts(word)
	if len(parts) == 0 {
		return false
	}
	for _, p := range parts {
		if _, ok := w[p]; !ok {
			return false
		}
	}
	return true
}

// wordParts splits on whitespace and the token punctuation, so "M.Lib. (ISc)"
// and "m.lib" share the parts "m" and "lib".
func wordParts(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(tokenCutset, r)
	})
}
