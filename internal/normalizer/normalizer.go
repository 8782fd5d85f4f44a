package normalizer

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"smart-task-assistant/pkg/datemath"
)

var (
	comingWeekdayRe = regexp.MustCompile(`(?i)\bcoming\s+(` + weekdayPattern() + `)\b`)
	bareWeekdayRe   = regexp.MustCompile(`(?i)\b(?:` + weekdayPattern() + `)\b`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// trimCutset is stripped from both ends of the cleaned title.
const trimCutset = " ,.-"

// Normalizer extracts a due instant from free text and returns the cleaned title.
type Normalizer struct {
	dateMath *datemath.Parser
	policy   AmbiguityPolicy
}

// New creates a Normalizer. An empty policy means PolicyFirst.
func New(dateMath *datemath.Parser, policy AmbiguityPolicy) (*Normalizer, error) {
	switch policy {
	case "":
		policy = PolicyFirst
	case PolicyFirst, PolicyEarliest:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
	return &Normalizer{dateMath: dateMath, policy: policy}, nil
}

// Normalize extracts the due instant from raw relative to now and strips every
// recognized temporal phrase from the title. Text without a date phrase is never
// given one.
func (n *Normalizer) Normalize(raw string, now time.Time) (ParsedTask, error) {
	if strings.TrimSpace(raw) == "" {
		return ParsedTask{}, ErrInvalidArgument
	}

	text := comingWeekdayRe.ReplaceAllString(raw, "next ${1}")

	matches := n.dateMath.Search(text, now)

	out := ParsedTask{Resolution: ResolutionNone}
	cleaned := raw
	if len(matches) > 0 {
		chosen := n.choose(matches)
		due := chosen.Time
		out.DueAt = &due
		out.HasTime = chosen.HasTime
		out.Candidates = matches
		out.Resolution = ResolutionSingle
		if !sameInstant(matches) {
			out.Resolution = ResolutionAmbiguous
		}

		cleaned = stripPhrases(text, matches)
	}

	// Stripping can join the remaining words into a new phrase, as in
	// "in 2 tomorrow days". Those are stripped too but never set the due instant.
	cleaned = tidy(cleaned)
	for {
		more := n.dateMath.Search(cleaned, now)
		if len(more) == 0 {
			break
		}
		cleaned = tidy(stripPhrases(cleaned, more))
	}
	out.CleanedTitle = cleaned

	return out, nil
}

func stripPhrases(text string, matches []datemath.Match) string {
	for _, m := range matches {
		text = removeLiteral(text, m.Phrase)
	}
	return text
}

// tidy drops leftover weekday names, collapses whitespace and trims trimCutset.
func tidy(text string) string {
	text = bareWeekdayRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.Trim(text, trimCutset)
}

func (n *Normalizer) choose(matches []datemath.Match) datemath.Match {
	chosen := matches[0]
	if n.policy == PolicyEarliest {
		for _, m := range matches[1:] {
			if m.Time.Before(chosen.Time) {
				chosen = m
			}
		}
	}
	return chosen
}

func sameInstant(matches []datemath.Match) bool {
	for _, m := range matches[1:] {
		if !m.Time.Equal(matches[0].Time) {
			return false
		}
	}
	return true
}

// removeLiteral deletes every case-insensitive occurrence of phrase from text.
func removeLiteral(text, phrase string) string {
	if phrase == "" {
		return text
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
	return re.ReplaceAllLiteralString(text, "")
}

func weekdayPattern() string {
	return strings.ToLower(strings.Join(datemath.WeekdayNames, "|"))
}
