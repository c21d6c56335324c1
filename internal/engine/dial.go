package engine

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tartampluch/go-datespinner/internal/config"
)

// ErrUnknownField is returned for a dial tag outside Day, Month and Year.
var ErrUnknownField = errors.New(config.ErrUnknownField)

// Field identifies a dial. Dials are registered with their Field so change
// events carry it explicitly.
type Field int

const (
	FieldDay Field = iota
	FieldMonth
	FieldYear
)

// Fields lists every field in declaration order.
var Fields = []Field{FieldDay, FieldMonth, FieldYear}

func (f Field) String() string {
	switch f {
	case FieldDay:
		return "day"
	case FieldMonth:
		return "month"
	case FieldYear:
		return "year"
	}
	return "field(" + strconv.Itoa(int(f)) + ")"
}

// ApplyDialChange returns the date obtained by moving field's dial from
// oldValue to newValue while current is selected.
//
// Day and month moves are shifts, not assignments, so they cascade into the
// higher fields. A move across the wrap boundary of the dial (last to first or
// first to last) is a single step forward or backward. The year is assigned
// and normalised like Date, so Feb 29 in a common year becomes Mar 1.
// When the year is hidden the computation runs in the reference leap year.
// The result is not clamped to any range.
func ApplyDialChange(current CalendarDate, mode DisplayMode, field Field, oldValue, newValue int) (CalendarDate, error) {
	d := mode.Pin(current)

	switch field {
	case FieldDay:
		maxDay := d.DaysInMonth()
		switch {
		case oldValue == maxDay && newValue == config.FirstDay:
			d = d.AddDays(1)
		case oldValue == config.FirstDay && newValue == maxDay:
			d = d.AddDays(-1)
		default:
			d = d.AddDays(newValue - oldValue)
		}
	case FieldMonth:
		switch {
		case oldValue == config.LastMonth && newValue == config.FirstMonth:
			d = d.AddMonths(1)
		case oldValue == config.FirstMonth && newValue == config.LastMonth:
			d = d.AddMonths(-1)
		default:
			d = d.AddMonths(newValue - oldValue)
		}
	case FieldYear:
		d = Date(newValue, d.Month, d.Day)
	default:
		return CalendarDate{}, fmt.Errorf("%w: %v", ErrUnknownField, field)
	}
	return d, nil
}

// DialState is the derived configuration of one dial.
type DialState struct {
	Field        Field
	Min          int
	Max          int
	Value        int
	Wrap         bool
	Visible      bool
	Padded       bool     // two-digit zero padded numbers
	Labels       []string // one label per value in [Min, Max], nil for numbers
	NumericInput bool     // typed input is restricted to digits
}

// Label returns the text shown for v.
func (s DialState) Label(v int) string {
	if i := v - s.Min; s.Labels != nil && i >= 0 && i < len(s.Labels) {
		return s.Labels[i]
	}
	if s.Padded {
		return fmt.Sprintf(config.DayFormat, v)
	}
	return strconv.Itoa(v)
}

// Contains reports whether v lies within the dial's range.
func (s DialState) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// DialSet groups the three dial states.
type DialSet struct {
	Day   DialState
	Month DialState
	Year  DialState
}

// For returns the state of field f.
func (s DialSet) For(f Field) DialState {
	switch f {
	case FieldMonth:
		return s.Month
	case FieldYear:
		return s.Year
	default:
		return s.Day
	}
}

// MonthLabels describes how the month dial is labelled.
type MonthLabels struct {
	Names   []string // one entry per month, January first
	Numeric bool     // Names are numbers, input should be numeric
}

// ComputeDials derives every dial's range, wrap flag, visibility and labels
// from the current date, the bounds and the display mode.
//
// When the year is shown and the current date is the minimum (or maximum)
// day, the day and month dials start (or end) at the current values and do
// not wrap, so they cannot move past the bound. Otherwise they cover the full
// month and year and wrap. Month labels are always sliced to the live range.
func ComputeDials(current CalendarDate, bounds DateRange, mode DisplayMode, months MonthLabels) DialSet {
	day := DialState{
		Field:   FieldDay,
		Visible: mode.DayShown,
		Padded:  true,
		Value:   current.Day,
	}
	month := DialState{
		Field:        FieldMonth,
		Visible:      true,
		Value:        current.Month,
		NumericInput: months.Numeric,
	}

	switch {
	case mode.YearShown && current.SameDay(bounds.Min):
		day.Min, day.Max = current.Day, current.DaysInMonth()
		month.Min, month.Max = current.Month, config.LastMonth
	case mode.YearShown && current.SameDay(bounds.Max):
		day.Min, day.Max = config.FirstDay, current.Day
		month.Min, month.Max = config.FirstMonth, current.Month
	default:
		day.Min, day.Max = config.FirstDay, mode.Pin(current).DaysInMonth()
		day.Wrap = true
		month.Min, month.Max = config.FirstMonth, config.LastMonth
		month.Wrap = true
	}

	if hi := month.Max + 1; months.Names != nil && hi <= len(months.Names) {
		month.Labels = append([]string(nil), months.Names[month.Min:hi]...)
	}

	year := DialState{
		Field:   FieldYear,
		Min:     bounds.Min.Year,
		Max:     bounds.Max.Year,
		Visible: mode.YearShown,
		Value:   current.Year,
	}
	if !mode.YearShown {
		year.Value = max(year.Min, min(current.Year, year.Max))
	}

	return DialSet{Day: day, Month: month, Year: year}
}
