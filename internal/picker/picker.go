// Package picker implements the spinner date picker controller. It keeps the
// day, month and year dials consistent with one valid date, the date bounds
// and the locale, and reports every change to a listener.
//
// A Controller is not safe for concurrent use: it is driven from the UI
// event thread, by dial callbacks and by the host's setter calls.
package picker

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-datespinner/internal/config"
	"github.com/tartampluch/go-datespinner/internal/engine"
	"github.com/tartampluch/go-datespinner/internal/locale"
	"golang.org/x/text/language"
)

var (
	// ErrMissingDial is returned by New when one of the three dials is nil.
	ErrMissingDial = errors.New(config.ErrMissingDial)
	// ErrMissingLayout is returned by New without a Layout.
	ErrMissingLayout = errors.New(config.ErrMissingLayout)
)

// DateChange is the payload of a change notification. Year is only
// meaningful when HasYear is set.
type DateChange struct {
	Year    int
	Month   int // 0-11
	Day     int
	HasYear bool
}

// Listener receives date changes.
type Listener func(src *Controller, change DateChange)

// Options configures New. Zero values select the defaults.
type Options struct {
	Locale   language.Tag    // language.Und selects English
	Resolver locale.Resolver // required
	Clock    engine.Clock    // RealClock when nil
	MinDate  engine.CalendarDate
	MaxDate  engine.CalendarDate
}

// Controller owns the current, minimum and maximum dates.
type Controller struct {
	dials    Dials
	layout   Layout
	resolver locale.Resolver
	log      *slog.Logger

	profile  locale.Profile
	current  engine.CalendarDate
	bounds   engine.DateRange
	mode     engine.DisplayMode
	enabled  bool
	listener Listener
}

// New wires the dials and the layout, resolves the locale and selects today
// (clamped to the bounds) with every dial shown. It does not notify; call
// Init or InitMonthDay to set the initial date and the listener.
func New(dials Dials, layout Layout, opts Options) (*Controller, error) {
	for _, f := range engine.Fields {
		if dials.get(f) == nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingDial, f)
		}
	}
	if layout == nil {
		return nil, ErrMissingLayout
	}
	if opts.Resolver == nil {
		return nil, fmt.Errorf("%s: nil resolver", config.ErrLocaleResolve)
	}

	bounds := engine.DefaultRange()
	if !opts.MinDate.IsZero() {
		bounds.Min = opts.MinDate
	}
	if !opts.MaxDate.IsZero() {
		bounds.Max = opts.MaxDate
	}

	c := &Controller{
		dials:    dials,
		layout:   layout,
		resolver: opts.Resolver,
		log:      slog.With(config.LogKeyComponent, config.CompPicker),
		bounds:   bounds,
		mode:     engine.DefaultMode(),
		enabled:  true,
	}
	c.current = bounds.Clamp(engine.Today(opts.Clock))

	tag := opts.Locale
	if tag == language.Und {
		tag = language.English
	}
	if err := c.SetLocale(tag); err != nil {
		return nil, err
	}

	for _, f := range engine.Fields {
		c.dials.get(f).SetOnChanged(func(oldValue, newValue int) {
			c.onDialChanged(f, oldValue, newValue)
		})
	}
	c.refresh()
	return c, nil
}

// Init sets the display mode, the date and the listener, then notifies once.
func (c *Controller) Init(year, month, day int, dayShown, yearShown bool, listener Listener) {
	c.mode = engine.DisplayMode{DayShown: dayShown, YearShown: yearShown}
	c.setDate(year, month, day)
	c.refresh()
	c.listener = listener
	c.notify()
}

// InitMonthDay is Init for a picker without a year: the year is pinned to
// the reference leap year so Feb 29 is accepted.
func (c *Controller) InitMonthDay(month, day int, dayShown, yearShown bool, listener Listener) {
	c.mode = engine.DisplayMode{DayShown: dayShown, YearShown: yearShown}
	c.setMonthDay(month, day)
	c.refresh()
	c.listener = listener
	c.notify()
}

// UpdateDate selects a new date. Out-of-range dates snap to the nearest bound.
// The listener is only called when the selected date actually changes.
func (c *Controller) UpdateDate(year, month, day int) {
	if !c.isNewDate(year, month, day) {
		return
	}
	prev := c.current
	c.setDate(year, month, day)
	c.refresh()
	if c.changedSince(prev) {
		c.notify()
	}
}

// UpdateMonthDay selects a new month and day, leaving the year alone when it
// is shown and pinning it to the reference year otherwise.
func (c *Controller) UpdateMonthDay(month, day int) {
	if c.mode.YearShown {
		c.UpdateDate(c.current.Year, month, day)
		return
	}
	if c.current.Month == month && c.current.Day == day {
		return
	}
	prev := c.current
	c.setMonthDay(month, day)
	c.refresh()
	if c.changedSince(prev) {
		c.notify()
	}
}

// Year returns the selected year; the reference leap year when it is hidden.
func (c *Controller) Year() int { return c.current.Year }

// Month returns the selected zero-based month.
func (c *Controller) Month() int { return c.current.Month }

// DayOfMonth returns the selected day of the month.
func (c *Controller) DayOfMonth() int { return c.current.Day }

// Date returns the selected date.
func (c *Controller) Date() engine.CalendarDate { return c.current }

// MinDate returns the lower bound.
func (c *Controller) MinDate() engine.CalendarDate { return c.bounds.Min }

// MaxDate returns the upper bound.
func (c *Controller) MaxDate() engine.CalendarDate { return c.bounds.Max }

// Mode returns which dials are shown.
func (c *Controller) Mode() engine.DisplayMode { return c.mode }

// Profile returns the active locale profile.
func (c *Controller) Profile() locale.Profile { return c.profile }

// Dials returns the derived state of the three dials.
func (c *Controller) Dials() engine.DialSet {
	return engine.ComputeDials(c.current, c.bounds, c.mode, c.profile.Months())
}

// SetMinDate moves the lower bound. Nothing happens when d is already the
// bound's day. A selected date before the new bound snaps to it; the
// listener is not called.
func (c *Controller) SetMinDate(d engine.CalendarDate) {
	if d.SameDay(c.bounds.Min) {
		return
	}
	c.bounds.Min = d
	if c.mode.YearShown && c.current.Before(c.bounds.Min) {
		c.current = c.bounds.Min
	}
	c.logBounds()
	c.refresh()
}

// SetMaxDate moves the upper bound. Nothing happens when d is already the
// bound's day. A selected date after the new bound snaps to it; the
// listener is not called.
func (c *Controller) SetMaxDate(d engine.CalendarDate) {
	if d.SameDay(c.bounds.Max) {
		return
	}
	c.bounds.Max = d
	if c.mode.YearShown && c.current.After(c.bounds.Max) {
		c.current = c.bounds.Max
	}
	c.logBounds()
	c.refresh()
}

// SetEnabled enables or disables all three dials.
func (c *Controller) SetEnabled(enabled bool) {
	for _, f := range engine.Fields {
		c.dials.get(f).SetEnabled(enabled)
	}
	c.enabled = enabled
}

// IsEnabled reports the last value passed to SetEnabled.
func (c *Controller) IsEnabled() bool { return c.enabled }

// SetLocale re-resolves the locale profile, rearranges the dials in the
// locale's order and relabels the month dial. The selected month and day
// are kept, as is the year when it is shown. On error nothing changes.
func (c *Controller) SetLocale(tag language.Tag) error {
	profile, err := c.resolver(tag)
	if err != nil {
		return err
	}
	c.profile = profile
	c.current = c.mode.Pin(c.current)
	c.arrange()
	c.refresh()

	c.log.Info(config.MsgLocaleChanged,
		config.LogKeyLang, profile.Tag.String(),
		config.LogKeyOrder, fmt.Sprint(profile.Order),
		config.LogKeyNumeric, profile.NumericMonths,
	)
	return nil
}

// onDialChanged turns a dial move into the new date. Dial moves always
// notify, even when the resulting date is unchanged.
func (c *Controller) onDialChanged(field engine.Field, oldValue, newValue int) {
	c.log.Debug(config.MsgDialChanged,
		config.LogKeyField, field.String(),
		config.LogKeyOld, oldValue,
		config.LogKeyNew, newValue,
	)

	next, err := engine.ApplyDialChange(c.current, c.mode, field, oldValue, newValue)
	if err != nil {
		panic(err)
	}
	if c.mode.YearShown {
		c.setDate(next.Year, next.Month, next.Day)
	} else {
		c.setMonthDay(next.Month, next.Day)
	}
	c.refresh()
	c.notify()
}

func (c *Controller) setDate(year, month, day int) {
	if !c.mode.YearShown {
		c.setMonthDay(month, day)
		return
	}
	c.current = c.bounds.Clamp(engine.Date(year, month, day))
}

func (c *Controller) setMonthDay(month, day int) {
	c.current = c.mode.Pin(engine.Date(config.ReferenceLeapYear, month, day))
}

func (c *Controller) isNewDate(year, month, day int) bool {
	if c.mode.YearShown && c.current.Year != year {
		return true
	}
	return c.current.Month != month || c.current.Day != day
}

func (c *Controller) changedSince(prev engine.CalendarDate) bool {
	if c.mode.YearShown {
		return prev != c.current
	}
	return prev.Month != c.current.Month || prev.Day != c.current.Day
}

// refresh pushes freshly derived state to every dial.
func (c *Controller) refresh() {
	set := c.Dials()
	for _, f := range engine.Fields {
		c.dials.get(f).Apply(set.For(f))
	}
}

// arrange hands the dials to the layout in locale order. Every dial but the
// last advances input focus on submit.
func (c *Controller) arrange() {
	order := make([]Dial, 0, len(c.profile.Order))
	for i, f := range c.profile.Order {
		d := c.dials.get(f)
		if i < len(c.profile.Order)-1 {
			d.SetInputHint(HintNext)
		} else {
			d.SetInputHint(HintDone)
		}
		order = append(order, d)
	}
	c.layout.Arrange(order)
}

func (c *Controller) notify() {
	change := DateChange{
		Month:   c.current.Month,
		Day:     c.current.Day,
		HasYear: c.mode.YearShown,
	}
	if change.HasYear {
		change.Year = c.current.Year
	}

	c.log.Debug(config.MsgDateChanged,
		config.LogKeyDate, c.current.String(),
		config.LogKeyYearShown, c.mode.YearShown,
	)
	if c.listener != nil {
		c.listener(c, change)
	}
}

func (c *Controller) logBounds() {
	c.log.Debug(config.MsgBoundsChanged,
		config.LogKeyMin, c.bounds.Min.String(),
		config.LogKeyMax, c.bounds.Max.String(),
		config.LogKeyDate, c.current.String(),
	)
}
