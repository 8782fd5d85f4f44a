package tfidf

import "errors"

var (
	ErrEmptyCorpus     = errors.New("tfidf: no documents")
	ErrEmptyVocabulary = errors.New("tfidf: empty vocabulary; documents contain only stop words")
)
