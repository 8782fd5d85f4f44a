package datemath

import (
	"errors"
	"time"
)

// ErrNoDate is returned by Parse when the phrase is not a recognized date/time expression.
var ErrNoDate = errors.New("no date expression recognized")

// Match is a single temporal phrase found in free text.
type Match struct {
	Phrase  string    // text as it appears in the input, including leading connectives ("by", "on")
	Start   int       // byte offset of Phrase in the input
	End     int       // byte offset just past Phrase
	Time    time.Time // resolved instant in the parser's location
	HasTime bool      // true when a clock time was part of the phrase
}

// spanKind tells whether a raw span carries a calendar date, a clock time, or both.
type spanKind int

const (
	kindDate spanKind = iota
	kindClock
	kindInstant // relative offsets like "in 2 hours" resolve to a full instant
)

// span is an intermediate match before merging and prefix extension.
type span struct {
	start, end int
	kind       spanKind
	t          time.Time // date (start of day) for kindDate; full instant otherwise
	hour, min  int       // clock for kindClock, or the default clock of a date ("tonight")
	clock      bool      // kindDate carries a default clock
	eod        bool      // kindDate resolves to the end of its day when standalone
}
