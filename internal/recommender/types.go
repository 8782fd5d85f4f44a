package recommender

import "fmt"

// DefaultTopN is used when a caller passes a non-positive top N.
const DefaultTopN = 3

// Scope selects which occurrences feed the complementary lookup.
type Scope string

const (
	// ScopeUser builds the occurrence matrix from the requesting user's titles only.
	ScopeUser Scope = "user"
	// ScopeGlobal builds it from every user's titles.
	ScopeGlobal Scope = "global"
)

// ParseScope returns the Scope named by s. An empty name means ScopeUser.
func ParseScope(s string) (Scope, error) {
	switch sc := Scope(s); sc {
	case "":
		return ScopeUser, nil
	case ScopeUser, ScopeGlobal:
		return sc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScope, s)
	}
}

// Occurrence records that a user has a task with the given title.
type Occurrence struct {
	UserID string
	Title  string
}

// Scored is a title with its cosine similarity to the candidate.
type Scored struct {
	Title string
	Score float64
}

func titles(in []Scored) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, s.Title)
	}
	return out
}

func normalizeTopN(n int) int {
	if n <= 0 {
		return DefaultTopN
	}
	return n
}
