package priority

import (
	"time"

	"smart-task-assistant/pkg/sentiment"
)

// Tiers, most urgent first.
const (
	TierUrgent = 1
	TierHigh   = 2
	TierMedium = 3
	TierLow    = 4
)

// NoDueDateDays stands in for days-left when a task is unscheduled. It exceeds
// every threshold, so dateless tasks always land in TierLow.
const NoDueDateDays = 9999

const (
	urgentWithinDays = 1
	highWithinDays   = 3
	mediumWithinDays = 7
)

// Scorer assigns an urgency tier from the title's tone and the days left until due.
type Scorer struct {
	sentiment sentiment.TextSentimentScorer
}

// New creates a Scorer using the given sentiment capability.
func New(s sentiment.TextSentimentScorer) *Scorer {
	return &Scorer{sentiment: s}
}

// Score returns the tier for a task. Only a negative tone combined with at most one
// day left reaches TierUrgent; tone never moves a task between the other tiers.
func (s *Scorer) Score(title string, dueAt *time.Time, now time.Time) int {
	polarity := s.sentiment.Polarity(title)
	days := DaysLeft(dueAt, now)

	switch {
	case days <= urgentWithinDays && polarity < 0:
		return TierUrgent
	case days <= highWithinDays:
		return TierHigh
	case days <= mediumWithinDays:
		return TierMedium
	default:
		return TierLow
	}
}

// DaysLeft counts whole calendar days from now until dueAt, comparing dates in
// dueAt's location. Overdue tasks give negative values; nil gives NoDueDateDays.
func DaysLeft(dueAt *time.Time, now time.Time) int {
	if dueAt == nil {
		return NoDueDateDays
	}
	loc := dueAt.Location()
	due := civilDay(*dueAt, loc)
	today := civilDay(now.In(loc), loc)
	return int(due.Sub(today).Hours() / 24)
}

// civilDay returns midnight UTC for t's calendar date so DST shifts do not skew day counts.
func civilDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Label names a tier for display.
func Label(tier int) string {
	switch tier {
	case TierUrgent:
		return "urgent"
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}
