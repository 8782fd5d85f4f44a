package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser finds and resolves natural-language date expressions relative to a base time.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone resolved instants are expressed in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves a string that consists of exactly one date expression,
// e.g. "tomorrow", "next friday at 5pm", "in 3 days".
func (p *Parser) Parse(phrase string, baseTime time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(phrase)
	matches := p.Search(trimmed, baseTime)
	if len(matches) != 1 || matches[0].Start != 0 || matches[0].End != len(trimmed) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrNoDate, phrase)
	}
	return matches[0].Time, nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// atClock places the clock time on the calendar day of d.
func (p *Parser) atClock(d time.Time, hour, min int) time.Time {
	d = d.In(p.location)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, p.location)
}

// nextWeekday returns the start of the first day strictly after base falling on target.
func (p *Parser) nextWeekday(target time.Weekday, baseTime time.Time) time.Time {
	base := baseTime.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(base.AddDate(0, 0, daysUntil))
}

// thisWeekday returns the start of the first day on or after base falling on target.
func (p *Parser) thisWeekday(target time.Weekday, baseTime time.Time) time.Time {
	base := baseTime.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil < 0 {
		daysUntil += 7
	}
	return p.startOfDay(base.AddDate(0, 0, daysUntil))
}
