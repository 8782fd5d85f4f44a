package suggestion

import (
	"context"
	"strings"
)

// NoSuggestions is returned by Keyword when no keyword matches.
const NoSuggestions = "No specific suggestions available."

type keywordRule struct {
	keyword string
	items   []string
}

// Rules are checked in order and every match contributes.
var subtaskRules = []keywordRule{
	{"meeting", []string{"Prepare agenda", "Send calendar invite", "Book conference room"}},
	{"report", []string{"Gather data", "Draft report", "Review with team"}},
	{"email", []string{"Draft email", "Send follow-up", "Attach documents"}},
	{"presentation", []string{"Create slides", "Practice delivery", "Check equipment"}},
}

// First match wins.
var planRules = []keywordRule{
	{"assignment", []string{"Research topic", "Draft answers", "Proofread", "Submit"}},
	{"email", []string{"Draft message", "Add recipient", "Attach files", "Send"}},
	{"meeting", []string{"Prepare agenda", "Book time slot", "Notify attendees"}},
}

var defaultPlan = []string{"Break down into subtasks", "Prioritize", "Schedule on calendar"}

// Keyword suggests subtasks from a static keyword table.
type Keyword struct{}

// NewKeyword returns the static keyword provider.
func NewKeyword() Keyword { return Keyword{} }

func (Keyword) Name() string { return "keyword" }

// Subtasks never fails. Without a keyword match it returns the single
// NoSuggestions entry.
func (k Keyword) Subtasks(_ context.Context, title string) ([]string, error) {
	return k.Match(title), nil
}

// Complementary has no static table.
func (Keyword) Complementary(context.Context, string) ([]string, error) {
	return nil, ErrNoSuggestions
}

// Match returns the subtasks for every keyword contained in title.
func (Keyword) Match(title string) []string {
	lowered := strings.ToLower(title)
	var out []string
	for _, r := range subtaskRules {
		if strings.Contains(lowered, r.keyword) {
			out = append(out, r.items...)
		}
	}
	if len(out) == 0 {
		return []string{NoSuggestions}
	}
	return out
}

// Plan returns a generic step-by-step plan for title.
func (Keyword) Plan(title string) []string {
	lowered := strings.ToLower(title)
	for _, r := range planRules {
		if strings.Contains(lowered, r.keyword) {
			return append([]string(nil), r.items...)
		}
	}
	return append([]string(nil), defaultPlan...)
}
