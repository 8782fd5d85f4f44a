package tfidf

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenRe keeps runs of two or more Unicode word characters. Marks are
// included so decomposed accents stay inside their word.
var tokenRe = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

// Vector is a sparse, L2-normalized TF-IDF vector keyed by vocabulary index.
type Vector map[int]float64

// Model is a fitted TF-IDF vector space. It is read-only after Fit.
type Model struct {
	vocab   map[string]int
	idf     []float64
	stop    map[string]bool
	vectors []Vector
}

// Options configures Fit.
type Options struct {
	StopWords map[string]bool // nil means the built-in English list
}

// Corpus holds tokenized documents and their document frequencies so the
// expensive tokenization can be reused across fits.
type Corpus struct {
	docs [][]string
	df   map[string]int
	stop map[string]bool
}

// NewCorpus tokenizes docs, one document per entry.
func NewCorpus(docs []string, opt Options) *Corpus {
	stop := opt.StopWords
	if stop == nil {
		stop = englishStopWords
	}
	c := &Corpus{docs: make([][]string, 0, len(docs)), df: map[string]int{}, stop: stop}
	for _, d := range docs {
		toks := Tokenize(d, stop)
		c.docs = append(c.docs, toks)
		countTerms(c.df, toks, 1)
	}
	return c
}

// Len returns the number of documents in the corpus.
func (c *Corpus) Len() int { return len(c.docs) }

// Fit builds the vector space over docs, one document per entry. Term weights
// use raw counts times smoothed IDF, ln((1+n)/(1+df)) + 1, then L2 normalization.
func Fit(docs []string, opt Options) (*Model, error) {
	return NewCorpus(docs, opt).Fit()
}

// Fit builds the vector space over the corpus followed by extra documents.
// The corpus itself is not modified; extra vectors come last in the model.
func (c *Corpus) Fit(extra ...string) (*Model, error) {
	docs := make([][]string, 0, len(c.docs)+len(extra))
	docs = append(docs, c.docs...)
	df := make(map[string]int, len(c.df))
	for term, n := range c.df {
		df[term] = n
	}
	for _, d := range extra {
		toks := Tokenize(d, c.stop)
		docs = append(docs, toks)
		countTerms(df, toks, 1)
	}

	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}
	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	m := &Model{
		vocab:   make(map[string]int, len(terms)),
		stop:    c.stop,
		idf:     make([]float64, len(terms)),
		vectors: make([]Vector, len(docs)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		m.vocab[term] = i
		m.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	for i, toks := range docs {
		m.vectors[i] = m.weigh(toks)
	}
	return m, nil
}

func countTerms(df map[string]int, toks []string, delta int) {
	seen := make(map[string]bool, len(toks))
	for _, tok := range toks {
		if !seen[tok] {
			seen[tok] = true
			df[tok] += delta
		}
	}
}

// Tokenize lowercases text and returns its terms minus stop words.
func Tokenize(text string, stop map[string]bool) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, tok := range raw {
		if !stop[tok] {
			out = append(out, tok)
		}
	}
	return out
}

// Len returns the number of fitted documents.
func (m *Model) Len() int { return len(m.vectors) }

// VocabularySize returns the number of distinct terms.
func (m *Model) VocabularySize() int { return len(m.vocab) }

// Vector returns the fitted vector of document i.
func (m *Model) Vector(i int) Vector { return m.vectors[i] }

// Transform projects unseen text into the fitted space; unknown terms are ignored.
func (m *Model) Transform(text string) Vector {
	return m.weigh(Tokenize(text, m.stop))
}

func (m *Model) weigh(tokens []string) Vector {
	v := Vector{}
	for _, tok := range tokens {
		if idx, ok := m.vocab[tok]; ok {
			v[idx] += m.idf[idx]
		}
	}
	var norm float64
	for _, w := range v {
		norm += w * w
	}
	if norm == 0 {
		return v
	}
	norm = math.Sqrt(norm)
	for idx := range v {
		v[idx] /= norm
	}
	return v
}

// Cosine returns the cosine similarity of a and b; 0 when either is all zeros.
func Cosine(a, b Vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var dot, na, nb float64
	for idx, w := range a {
		dot += w * b[idx]
	}
	for _, w := range a {
		na += w * w
	}
	for _, w := range b {
		nb += w * w
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
