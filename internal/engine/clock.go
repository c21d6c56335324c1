package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The picker uses it to determine "today" when no date has been supplied yet.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the local calendar date reported by the clock.
func Today(c Clock) CalendarDate {
	if c == nil {
		c = RealClock{}
	}
	return FromTime(c.Now())
}
