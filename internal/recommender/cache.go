package recommender

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"

	pkgLog "smart-task-assistant/pkg/log"
	"smart-task-assistant/pkg/tfidf"
)

// Cache keeps tokenized corpora keyed by a fingerprint of the snapshot so
// repeated lookups against an unchanged task history skip re-tokenization.
type Cache struct {
	l      pkgLog.Logger
	corpus *lru.Cache[string, *tfidf.Corpus]
}

// NewCache creates a Cache holding at most size corpora.
func NewCache(l pkgLog.Logger, size int) (*Cache, error) {
	if size <= 0 {
		return nil, ErrInvalidCacheSize
	}
	c, err := lru.New[string, *tfidf.Corpus](size)
	if err != nil {
		return nil, err
	}
	return &Cache{l: l, corpus: c}, nil
}

// Similar is FindSimilar backed by the cache.
func (c *Cache) Similar(ctx context.Context, corpus []string, candidate string, topN int) []string {
	if len(corpus) == 0 {
		return []string{}
	}
	snapshot := append([]string(nil), corpus...)
	key := Fingerprint(snapshot)

	tc, ok := c.corpus.Get(key)
	if !ok {
		tc = tfidf.NewCorpus(snapshot, tfidf.Options{})
		c.corpus.Add(key, tc)
	}

	model, err := tc.Fit(candidate)
	if err != nil {
		if errors.Is(err, tfidf.ErrEmptyVocabulary) || errors.Is(err, tfidf.ErrEmptyCorpus) {
			c.l.Debugf(ctx, "recommender.Cache.Similar: no vocabulary for %q: %v", candidate, err)
		} else {
			c.l.Warnf(ctx, "recommender.Cache.Similar: fit failed: %v", err)
		}
		return []string{}
	}
	return titles(rankFitted(model, snapshot, candidate, topN))
}

// Len returns the number of cached corpora.
func (c *Cache) Len() int { return c.corpus.Len() }

// Fingerprint identifies an ordered corpus snapshot.
func Fingerprint(corpus []string) string {
	h := sha256.New()
	for _, title := range corpus {
		h.Write([]byte(title))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
