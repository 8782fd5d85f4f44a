package sentiment

import (
	"strings"
	"unicode"
)

// negationWindow is how many preceding tokens a negation reaches.
const negationWindow = 2

// Lexicon scores text by averaging the polarity of known words. A preceding
// intensifier scales a word, a negation within negationWindow tokens flips and
// halves it.
type Lexicon struct {
	words        map[string]float64
	intensifiers map[string]float64
	negations    map[string]bool
}

// NewLexicon returns a scorer over the built-in task vocabulary, extended with extra.
func NewLexicon(extra map[string]float64) *Lexicon {
	words := make(map[string]float64, len(polarity)+len(extra))
	for w, p := range polarity {
		words[w] = p
	}
	for w, p := range extra {
		words[strings.ToLower(w)] = clamp(p)
	}
	return &Lexicon{words: words, intensifiers: intensifiers, negations: negations}
}

// Polarity implements TextSentimentScorer.
func (l *Lexicon) Polarity(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	var n int
	for i, tok := range tokens {
		p, ok := l.words[tok]
		if !ok {
			continue
		}
		if i > 0 {
			if m, ok := l.intensifiers[tokens[i-1]]; ok {
				p *= m
			}
		}
		for j := i - 1; j >= 0 && j >= i-negationWindow; j-- {
			if l.negations[tokens[j]] {
				p *= -0.5
				break
			}
		}
		sum += p
		n++
	}

	if n == 0 {
		return 0
	}
	return clamp(sum / float64(n))
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}
