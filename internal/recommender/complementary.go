package recommender

import (
	"math"
	"sort"
)

// FindComplementary builds a binary user×title presence matrix from occ and
// returns the titles whose columns are most cosine-similar to the candidate's
// column. Titles that never co-occur with it still rank, last, with score 0.
// A candidate that never occurs yields an empty result.
func FindComplementary(occ []Occurrence, candidate string, topN int) []string {
	return titles(RankComplementary(occ, candidate, topN))
}

// FindComplementaryTitles runs FindComplementary over a single user's titles.
// With one row every co-occurring title scores 1, so the result is the other
// titles in first-seen order.
func FindComplementaryTitles(corpus []string, candidate string, topN int) []string {
	occ := make([]Occurrence, 0, len(corpus))
	for _, title := range corpus {
		occ = append(occ, Occurrence{Title: title})
	}
	return FindComplementary(occ, candidate, topN)
}

// RankComplementary is FindComplementary with scores attached.
func RankComplementary(occ []Occurrence, candidate string, topN int) []Scored {
	topN = normalizeTopN(topN)

	var (
		titleOrder []string
		titleCol   = map[string]int{}
		userRow    = map[string]int{}
		columns    []map[int]bool
	)
	for _, o := range occ {
		row, ok := userRow[o.UserID]
		if !ok {
			row = len(userRow)
			userRow[o.UserID] = row
		}
		col, ok := titleCol[o.Title]
		if !ok {
			col = len(titleOrder)
			titleCol[o.Title] = col
			titleOrder = append(titleOrder, o.Title)
			columns = append(columns, map[int]bool{})
		}
		columns[col][row] = true
	}

	target, ok := titleCol[candidate]
	if !ok {
		return []Scored{}
	}

	scored := make([]Scored, 0, len(titleOrder))
	for col, title := range titleOrder {
		if col == target {
			continue
		}
		scored = append(scored, Scored{Title: title, Score: binaryCosine(columns[target], columns[col])})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}

func binaryCosine(a, b map[int]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var shared int
	for row := range a {
		if b[row] {
			shared++
		}
	}
	return float64(shared) / math.Sqrt(float64(len(a))*float64(len(b)))
}

// FindComplementaryFor ranks over every user's occurrences but only returns
// titles userID already has or that at least minUsers distinct users share.
func FindComplementaryFor(occ []Occurrence, userID, candidate string, topN, minUsers int) []string {
	topN = normalizeTopN(topN)

	owners := map[string]map[string]bool{}
	for _, o := range occ {
		if owners[o.Title] == nil {
			owners[o.Title] = map[string]bool{}
		}
		owners[o.Title][o.UserID] = true
	}

	out := make([]string, 0, topN)
	for _, s := range RankComplementary(occ, candidate, len(owners)) {
		users := owners[s.Title]
		if !users[userID] && len(users) < minUsers {
			continue
		}
		out = append(out, s.Title)
		if len(out) == topN {
			break
		}
	}
	return out
}
