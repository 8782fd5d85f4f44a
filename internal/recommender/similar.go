package recommender

import (
	"sort"
	"strings"

	"smart-task-assistant/pkg/tfidf"
)

// FindSimilar ranks corpus titles by TF-IDF cosine similarity to candidate and
// returns at most topN of them. Ties keep corpus order. Duplicate titles and
// titles equal to the candidate are skipped. An empty corpus or a degenerate
// vocabulary yields an empty result.
func FindSimilar(corpus []string, candidate string, topN int) []string {
	return titles(RankSimilar(corpus, candidate, topN))
}

// RankSimilar is FindSimilar with scores attached.
func RankSimilar(corpus []string, candidate string, topN int) []Scored {
	if len(corpus) == 0 {
		return []Scored{}
	}
	snapshot := append([]string(nil), corpus...)
	model, err := tfidf.NewCorpus(snapshot, tfidf.Options{}).Fit(candidate)
	if err != nil {
		return []Scored{}
	}
	return rankFitted(model, snapshot, candidate, topN)
}

// rankFitted expects the candidate to be the last document of model.
func rankFitted(model *tfidf.Model, snapshot []string, candidate string, topN int) []Scored {
	topN = normalizeTopN(topN)
	query := model.Vector(len(snapshot))

	scored := make([]Scored, len(snapshot))
	for i, title := range snapshot {
		scored[i] = Scored{Title: title, Score: tfidf.Cosine(query, model.Vector(i))}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	key := foldTitle(candidate)
	seen := map[string]bool{key: true}
	out := make([]Scored, 0, topN)
	for _, s := range scored {
		k := foldTitle(s.Title)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
		if len(out) == topN {
			break
		}
	}
	return out
}

func foldTitle(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
