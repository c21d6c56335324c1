// Package engine holds the date-consistency rules shared by the picker:
// the calendar date value, the dial mutation arithmetic and the derivation
// of each dial's range and labels.
package engine

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
	"github.com/tartampluch/go-datespinner/internal/config"
)

// CalendarDate is a Gregorian date with a zero-based month, matching the
// value range of the month dial.
type CalendarDate struct {
	Year  int
	Month int // 0 (January) .. 11 (December)
	Day   int
}

// Date builds a CalendarDate, normalising overflowed fields the way a lenient
// calendar does: Date(2023, 1, 30) is March 2nd, Date(2023, 12, 1) is
// January 1st 2024.
func Date(year, month, day int) CalendarDate {
	return FromTime(time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: int(m) - 1, Day: d}
}

// FromEpochMillis converts a UTC instant in milliseconds to its calendar date.
func FromEpochMillis(ms int64) CalendarDate {
	return FromTime(time.UnixMilli(ms).UTC())
}

// Time returns midnight UTC of the date.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, time.UTC)
}

// EpochMillis returns the instant of Time in milliseconds.
func (d CalendarDate) EpochMillis() int64 {
	return d.Time().UnixMilli()
}

// IsZero reports whether d is the zero value.
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o in calendar order.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d precedes o.
func (d CalendarDate) Before(o CalendarDate) bool { return d.Compare(o) < 0 }

// After reports whether d follows o.
func (d CalendarDate) After(o CalendarDate) bool { return d.Compare(o) > 0 }

// DayOfYear returns the 1-based ordinal day within the year.
func (d CalendarDate) DayOfYear() int {
	return d.Time().YearDay()
}

// SameDay is the quick year + day-of-year comparison used for bounds.
func (d CalendarDate) SameDay(o CalendarDate) bool {
	return d.Year == o.Year && d.DayOfYear() == o.DayOfYear()
}

// DaysInMonth returns the length of d's month.
func (d CalendarDate) DaysInMonth() int {
	return DaysInMonth(d.Year, d.Month)
}

// AddDays shifts d by n days, carrying into month and year.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return Date(d.Year, d.Month, d.Day+n)
}

// AddMonths shifts d by n months, carrying into the year. The day is clamped
// to the length of the target month so Jan 31 + 1 month is the last day of
// February.
func (d CalendarDate) AddMonths(n int) CalendarDate {
	total := d.Year*config.MonthsPerYear + d.Month + n
	year := floorDiv(total, config.MonthsPerYear)
	month := total - year*config.MonthsPerYear
	return CalendarDate{
		Year:  year,
		Month: month,
		Day:   min(d.Day, DaysInMonth(year, month)),
	}
}

// WithYear moves d to another year, clamping Feb 29 to Feb 28 when needed.
// Only used to pin a date into the reference year.
func (d CalendarDate) WithYear(year int) CalendarDate {
	return CalendarDate{
		Year:  year,
		Month: d.Month,
		Day:   min(d.Day, DaysInMonth(year, d.Month)),
	}
}

func (d CalendarDate) String() string {
	return fmt.Sprintf(config.DateFormatDisplay, d.Year, d.Month+1, d.Day)
}

// DaysInMonth returns the number of days of a zero-based month.
func DaysInMonth(year, month int) int {
	return datetime.DaysInMonth(year, datetime.Month(month+1))
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DateRange bounds the selectable dates. Min <= Max is the caller's
// responsibility; an inverted range is not rejected.
type DateRange struct {
	Min CalendarDate
	Max CalendarDate
}

// DefaultRange is used when the host supplies no bounds.
func DefaultRange() DateRange {
	return DateRange{
		Min: CalendarDate{Year: config.DefaultMinYear, Month: config.FirstMonth, Day: config.FirstDay},
		Max: CalendarDate{Year: config.DefaultMaxYear, Month: config.LastMonth, Day: 31},
	}
}

// Clamp snaps d to Min when it precedes it, otherwise to Max when it follows it.
func (r DateRange) Clamp(d CalendarDate) CalendarDate {
	if d.Before(r.Min) {
		return r.Min
	}
	if d.After(r.Max) {
		return r.Max
	}
	return d
}

// Contains reports whether d lies within the range.
func (r DateRange) Contains(d CalendarDate) bool {
	return !d.Before(r.Min) && !d.After(r.Max)
}

// DisplayMode selects which dials are shown.
type DisplayMode struct {
	DayShown  bool
	YearShown bool
}

// DefaultMode shows every dial.
func DefaultMode() DisplayMode {
	return DisplayMode{DayShown: true, YearShown: true}
}

// Pin applies the mode to d: when the year is hidden it is replaced by the
// reference leap year.
func (m DisplayMode) Pin(d CalendarDate) CalendarDate {
	if m.YearShown {
		return d
	}
	return d.WithYear(config.ReferenceLeapYear)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
