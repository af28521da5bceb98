package clock

import (
	"time"

	"github.com/vytor/wordull/internal/logger"
)

// DateLayout is the calendar-date format used everywhere a date string
// appears (records, the word API, streak math).
const DateLayout = "2006-01-02"

// Clock supplies the current instant and calendar day in the configured time
// zone. It is an interface so tests can pin "today" to an arbitrary value.
type Clock interface {
	Now() time.Time
	Today() string
	Location() *time.Location
	NextMidnight() time.Time
}

type realClock struct {
	loc *time.Location
}

// New returns a Clock for the named time zone. Unknown zone names fall back
// to UTC rather than failing startup.
func New(tzName string) Clock {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		logger.Default().WithPrefix("clock").Warn("unknown time zone %q, using UTC", tzName)
		loc = time.UTC
	}
	return &realClock{loc: loc}
}

func (c *realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *realClock) Today() string {
	return c.Now().Format(DateLayout)
}

func (c *realClock) Location() *time.Location {
	return c.loc
}

// NextMidnight returns the next local midnight strictly after now. Built from
// calendar components so it lands on the wall-clock midnight even across DST
// transitions.
func (c *realClock) NextMidnight() time.Time {
	now := c.Now()
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, c.loc)
}

// DaysBetween returns the whole calendar days from a to b as observed in loc.
// Both instants are reduced to their civil dates and re-anchored at UTC
// midnight before differencing, so DST shifts cannot produce off-by-one
// results. Negative when b precedes a.
func DaysBetween(a, b time.Time, loc *time.Location) int {
	return int(utcMidnight(b.In(loc)).Sub(utcMidnight(a.In(loc))).Hours() / 24)
}

// DaysBetweenDates is DaysBetween for date strings in DateLayout.
func DaysBetweenDates(a, b string) (int, error) {
	ta, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0, err
	}
	tb, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0, err
	}
	return DaysBetween(ta, tb, time.UTC), nil
}

func utcMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
