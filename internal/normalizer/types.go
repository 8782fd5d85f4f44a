package normalizer

import (
	"time"

	"smart-task-assistant/pkg/datemath"
)

// Resolution tells how the due instant of a ParsedTask was decided.
type Resolution int

const (
	// ResolutionNone means no temporal phrase was found; the task is unscheduled.
	ResolutionNone Resolution = iota
	// ResolutionSingle means every recognized phrase agreed on one instant.
	ResolutionSingle
	// ResolutionAmbiguous means phrases disagreed and the AmbiguityPolicy picked one.
	ResolutionAmbiguous
)

func (r Resolution) String() string {
	switch r {
	case ResolutionSingle:
		return "single"
	case ResolutionAmbiguous:
		return "ambiguous"
	default:
		return "none"
	}
}

// AmbiguityPolicy selects the due instant when several phrases resolve differently.
type AmbiguityPolicy string

const (
	// PolicyFirst honours the first phrase in text order.
	PolicyFirst AmbiguityPolicy = "first"
	// PolicyEarliest honours the soonest instant among all phrases.
	PolicyEarliest AmbiguityPolicy = "earliest"
)

// ParsedTask is the cleaned title and inferred due instant of a raw task description.
type ParsedTask struct {
	CleanedTitle string
	DueAt        *time.Time // nil when the text carries no date
	HasTime      bool       // DueAt includes a clock time
	Resolution   Resolution
	Candidates   []datemath.Match // every recognized phrase, in text order
}
