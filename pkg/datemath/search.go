package datemath

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	weekdayAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	monthAlt   = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`
	numberAlt  = `\d+|an?|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve`
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

var numberWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

// WeekdayNames lists the weekday names recognized in free text, Monday first.
var WeekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type rule struct {
	re      *regexp.Regexp
	resolve func(p *Parser, g []string, base time.Time) (span, bool)
}

var (
	// connectiveRe matches a preposition right before a phrase ("due by", "on", ...).
	connectiveRe = regexp.MustCompile(`(?i)(?:\b(?:due\s+)?(?:by|on|before|until)|\bdue)\s+$`)
	// mergeGapRe is the text allowed between a date and a clock that form one phrase.
	mergeGapRe = regexp.MustCompile(`(?i)^[\s,]*(?:on\s+)?$`)
)

var rules = []rule{
	{
		re: regexp.MustCompile(`(?i)\bday\s+after\s+tomorrow\b`),
		resolve: func(p *Parser, _ []string, base time.Time) (span, bool) {
			return dateSpan(p.startOfDay(base.In(p.location).AddDate(0, 0, 2))), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(today|tonight|tomorrow|tmrw|yesterday)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (span, bool) {
			today := p.startOfDay(base)
			switch strings.ToLower(g[1]) {
			case "today":
				return dateSpan(today), true
			case "tonight":
				s := dateSpan(today)
				s.clock, s.hour, s.min = true, 20, 0
				return s, true
			case "tomorrow", "tmrw":
				return dateSpan(p.startOfDay(base.In(p.location).AddDate(0, 0, 1))), true
			default:
				return dateSpan(p.startOfDay(base.In(p.location).AddDate(0, 0, -1))), true
			}
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bnext\s+(week|month|year|weekend)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (span, bool) {
			today := p.startOfDay(base)
			switch strings.ToLower(g[1]) {
			case "week":
				return dateSpan(today.AddDate(0, 0, 7)), true
			case "month":
				return dateSpan(today.AddDate(0, 1, 0)), true
			case "year":
				return dateSpan(today.AddDate(1, 0, 0)), true
			default:
				return dateSpan(p.thisWeekday(time.Saturday, base).AddDate(0, 0, 7)), true
			}
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bthis\s+weekend\b`),
		resolve: func(p *Parser, _ []string, base time.Time) (span, bool) {
			return dateSpan(p.thisWeekday(time.Saturday, base)), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bnext\s+(` + weekdayAlt + `)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (span, bool) {
			return dateSpan(p.nextWeekday(weekdays[strings.ToLower(g[1])], base)), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bthis\s+(` + weekdayAlt + `)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (span, bool) {
			return dateSpan(p.thisWeekday(weekdays[strings.ToLower(g[1])], base)), true
		},
	},
	{
		// A bare weekday is ambiguous; the soonest future occurrence wins.
		re: regexp.MustCompile(`(?i)\b(` + weekdayAlt + `)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (span, bool) {
			return dateSpan(p.nextWeekday(weekdays[strings.ToLower(g[1])], base)), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bin\s+(` + numberAlt + `)\s+(minutes?|mins?|hours?|hrs?|days?|weeks?|months?|years?)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (span, bool) {
			n, ok := parseAmount(g[1])
			if !ok {
				return span{}, false
			}
			return p.offset(base, n, g[2])
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(` + numberAlt + `)\s+(days?|weeks?|months?|years?)\s+from\s+(?:now|today)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (span, bool) {
			n, ok := parseAmount(g[1])
			if !ok {
				return span{}, false
			}
			return p.offset(base, n, g[2])
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bend\s+of\s+(?:the\s+)?(week|month)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (span, bool) {
			var day time.Time
			if strings.ToLower(g[1]) == "week" {
				day = p.thisWeekday(time.Sunday, base)
			} else {
				today := p.startOfDay(base)
				day = time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, p.location)
			}
			s := dateSpan(day)
			s.eod = true
			return s, true
		},
	},
	{
		re: regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`),
		resolve: func(p *Parser, g []string, _ time.Time) (span, bool) {
			y, _ := strconv.Atoi(g[1])
			m, _ := strconv.Atoi(g[2])
			d, _ := strconv.Atoi(g[3])
			t, ok := p.calendarDate(y, time.Month(m), d)
			return dateSpan(t), ok
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(` + monthAlt + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`),
		resolve: func(p *Parser, g []string, base time.Time) (span, bool) {
			d, _ := strconv.Atoi(g[2])
			return p.monthDay(monthOf(g[1]), d, g[3], base)
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthAlt + `)(?:,?\s+(\d{4}))?\b`),
		resolve: func(p *Parser, g []string, base time.Time) (span, bool) {
			d, _ := strconv.Atoi(g[1])
			return p.monthDay(monthOf(g[2]), d, g[3], base)
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})(?::([0-5]\d))?\s*(am|pm)\b`),
		resolve: func(_ *Parser, g []string, _ time.Time) (span, bool) {
			h, _ := strconv.Atoi(g[1])
			if h < 1 || h > 12 {
				return span{}, false
			}
			m := 0
			if g[2] != "" {
				m, _ = strconv.Atoi(g[2])
			}
			h %= 12
			if strings.EqualFold(g[3], "pm") {
				h += 12
			}
			return clockSpan(h, m), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:at\s+)?([01]?\d|2[0-3]):([0-5]\d)\b`),
		resolve: func(_ *Parser, g []string, _ time.Time) (span, bool) {
			h, _ := strconv.Atoi(g[1])
			m, _ := strconv.Atoi(g[2])
			return clockSpan(h, m), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:at\s+)?(noon|midnight)\b`),
		resolve: func(_ *Parser, g []string, _ time.Time) (span, bool) {
			if strings.EqualFold(g[1], "noon") {
				return clockSpan(12, 0), true
			}
			return clockSpan(0, 0), true
		},
	},
}

// Search finds every date/time phrase in text, in text order, resolved relative to baseTime.
// Ambiguous phrases (a bare weekday, a month/day without a year, a bare clock time)
// resolve to their soonest occurrence after baseTime. Unrecognized text yields no matches.
func (p *Parser) Search(text string, baseTime time.Time) []Match {
	base := baseTime.In(p.location)

	var spans []span
	for _, r := range rules {
		for _, idx := range r.re.FindAllStringSubmatchIndex(text, -1) {
			groups := make([]string, len(idx)/2)
			for i := range groups {
				if idx[2*i] >= 0 {
					groups[i] = text[idx[2*i]:idx[2*i+1]]
				}
			}
			s, ok := r.resolve(p, groups, base)
			if !ok {
				continue
			}
			s.start, s.end = idx[0], idx[1]
			spans = append(spans, s)
		}
	}

	spans = selectLongest(spans)

	matches := make([]Match, 0, len(spans))
	prevEnd := 0
	for i := 0; i < len(spans); i++ {
		cur := spans[i]
		var m Match

		if i+1 < len(spans) && mergeable(cur, spans[i+1]) && mergeGapRe.MatchString(text[cur.end:spans[i+1].start]) {
			date, clock := cur, spans[i+1]
			if date.kind == kindClock {
				date, clock = clock, date
			}
			m = Match{
				Start:   cur.start,
				End:     spans[i+1].end,
				Time:    p.atClock(date.t, clock.hour, clock.min),
				HasTime: true,
			}
			i++
		} else {
			m = Match{Start: cur.start, End: cur.end}
			m.Time, m.HasTime = p.resolveSpan(cur, base)
		}

		if loc := connectiveRe.FindStringIndex(text[prevEnd:m.Start]); loc != nil {
			m.Start = prevEnd + loc[0]
		}
		m.Phrase = text[m.Start:m.End]
		prevEnd = m.End
		matches = append(matches, m)
	}

	return matches
}

// selectLongest keeps non-overlapping spans, preferring the earliest and then the longest.
func selectLongest(spans []span) []span {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end-spans[i].start > spans[j].end-spans[j].start
	})

	kept := spans[:0]
	lastEnd := -1
	for _, s := range spans {
		if s.start < lastEnd {
			continue
		}
		kept = append(kept, s)
		lastEnd = s.end
	}
	return kept
}

func mergeable(a, b span) bool {
	return (a.kind == kindDate && b.kind == kindClock) || (a.kind == kindClock && b.kind == kindDate)
}

func (p *Parser) resolveSpan(s span, base time.Time) (time.Time, bool) {
	switch s.kind {
	case kindClock:
		t := p.atClock(base, s.hour, s.min)
		if t.Before(base) {
			t = p.atClock(base.AddDate(0, 0, 1), s.hour, s.min)
		}
		return t, true
	case kindInstant:
		return s.t, true
	default:
		if s.eod {
			return p.EndOfDay(s.t), true
		}
		if s.clock {
			return p.atClock(s.t, s.hour, s.min), true
		}
		return s.t, false
	}
}

// offset resolves "in N <unit>" style expressions.
// maxOffsetDays bounds relative offsets to about a century. Larger amounts
// are not treated as dates, and they would overflow time.Duration.
const maxOffsetDays = 36600

func (p *Parser) offset(base time.Time, n int, unit string) (span, bool) {
	unit = strings.ToLower(unit)
	switch {
	case strings.HasPrefix(unit, "min"):
		if n > maxOffsetDays*24*60 {
			return span{}, false
		}
		return span{kind: kindInstant, t: base.Add(time.Duration(n) * time.Minute)}, true
	case strings.HasPrefix(unit, "h"):
		if n > maxOffsetDays*24 {
			return span{}, false
		}
		return span{kind: kindInstant, t: base.Add(time.Duration(n) * time.Hour)}, true
	case strings.HasPrefix(unit, "day"):
		if n > maxOffsetDays {
			return span{}, false
		}
		return dateSpan(p.startOfDay(base.AddDate(0, 0, n))), true
	case strings.HasPrefix(unit, "week"):
		if n > maxOffsetDays/7 {
			return span{}, false
		}
		return dateSpan(p.startOfDay(base.AddDate(0, 0, n*7))), true
	case strings.HasPrefix(unit, "month"):
		if n > maxOffsetDays/31 {
			return span{}, false
		}
		return dateSpan(p.startOfDay(base.AddDate(0, n, 0))), true
	case strings.HasPrefix(unit, "year"):
		if n > maxOffsetDays/366 {
			return span{}, false
		}
		return dateSpan(p.startOfDay(base.AddDate(n, 0, 0))), true
	}
	return span{}, false
}

// monthDay resolves a month/day pair; without an explicit year the next occurrence wins.
func (p *Parser) monthDay(month time.Month, day int, year string, base time.Time) (span, bool) {
	if year != "" {
		y, _ := strconv.Atoi(year)
		t, ok := p.calendarDate(y, month, day)
		return dateSpan(t), ok
	}

	today := p.startOfDay(base)
	t, ok := p.calendarDate(today.Year(), month, day)
	if ok && t.Before(today) {
		t, ok = p.calendarDate(today.Year()+1, month, day)
	}
	return dateSpan(t), ok
}

// calendarDate builds a date, rejecting values time.Date would normalize (e.g. Feb 30).
func (p *Parser) calendarDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

func dateSpan(t time.Time) span {
	return span{kind: kindDate, t: t}
}

func clockSpan(hour, min int) span {
	return span{kind: kindClock, hour: hour, min: min}
}

func monthOf(name string) time.Month {
	name = strings.ToLower(name)
	if len(name) > 3 {
		name = name[:3]
	}
	return months[name]
}

func parseAmount(s string) (int, bool) {
	s = strings.ToLower(s)
	if n, ok := numberWords[s]; ok {
		return n, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
