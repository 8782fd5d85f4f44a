package tfidf_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-assistant/pkg/tfidf"
)

func TestFit_Errors(t *testing.T) {
	_, err := tfidf.Fit(nil, tfidf.Options{})
	assert.ErrorIs(t, err, tfidf.ErrEmptyCorpus)

	_, err = tfidf.Fit([]string{"the and of", "a"}, tfidf.Options{})
	assert.ErrorIs(t, err, tfidf.ErrEmptyVocabulary)
}

func TestFit_Weights(t *testing.T) {
	m, err := tfidf.Fit([]string{"write report", "write proposal", "buy groceries"}, tfidf.Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 5, m.VocabularySize())

	// Every non-empty vector is unit length.
	for i := 0; i < m.Len(); i++ {
		var norm float64
		for _, w := range m.Vector(i) {
			norm += w * w
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
	}

	// "write" appears in two docs, so it weighs less than the rarer "report".
	v := m.Transform("write report")
	assert.InDelta(t, 1.0, tfidf.Cosine(v, m.Vector(0)), 1e-9)
	assert.Zero(t, tfidf.Cosine(v, m.Vector(2)))
	assert.Greater(t, tfidf.Cosine(v, m.Vector(1)), 0.0)
}

func TestTokenize(t *testing.T) {
	got := tfidf.Tokenize("Write THE report, a b c for Q3!", map[string]bool{"the": true, "for": true})
	assert.Equal(t, []string{"write", "report", "q3"}, got)
}

func TestTokenize_Unicode(t *testing.T) {
	assert.Equal(t, []string{"viết", "báo", "cáo", "tuần"}, tfidf.Tokenize("Viết báo cáo tuần", nil))
	assert.Equal(t, []string{"позвонить", "маме"}, tfidf.Tokenize("Позвонить маме!", nil))
	assert.Equal(t, []string{"会议"}, tfidf.Tokenize("会议", nil))
}

func TestFit_NonLatinCorpus(t *testing.T) {
	m, err := tfidf.Fit([]string{"Viết báo cáo tháng", "Mua rau"}, tfidf.Options{})
	require.NoError(t, err)
	assert.Equal(t, 6, m.VocabularySize())

	v := m.Transform("Viết báo cáo tuần")
	assert.Greater(t, tfidf.Cosine(v, m.Vector(0)), 0.0)
	assert.Zero(t, tfidf.Cosine(v, m.Vector(1)))
}

func TestCosine(t *testing.T) {
	assert.Zero(t, tfidf.Cosine(tfidf.Vector{}, tfidf.Vector{0: 1}))
	assert.InDelta(t, 1.0, tfidf.Cosine(tfidf.Vector{0: 2}, tfidf.Vector{0: 5}), 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), tfidf.Cosine(tfidf.Vector{0: 1, 1: 1}, tfidf.Vector{0: 1}), 1e-9)
}

func TestCorpus_FitExtraMatchesFullFit(t *testing.T) {
	docs := []string{"write report", "write proposal", "buy groceries"}
	c := tfidf.NewCorpus(docs, tfidf.Options{})

	withExtra, err := c.Fit("write summary")
	require.NoError(t, err)
	full, err := tfidf.Fit(append(append([]string{}, docs...), "write summary"), tfidf.Options{})
	require.NoError(t, err)

	require.Equal(t, full.Len(), withExtra.Len())
	for i := 0; i < full.Len(); i++ {
		assert.InDeltaMapValues(t, full.Vector(i), withExtra.Vector(i), 1e-12)
	}

	// The cached corpus is untouched by extra documents.
	assert.Equal(t, 3, c.Len())
}
