// Package export converts a picked date to and from the vCard and iCalendar
// formats used by contact and calendar applications.
package export

import (
	"errors"
	"time"

	"github.com/tartampluch/go-datespinner/internal/config"
	"github.com/tartampluch/go-datespinner/internal/engine"
)

var (
	ErrDateParse  = errors.New(config.ErrDateParse)
	ErrNoBirthday = errors.New(config.ErrNoBirthday)
)

// Birthday is a picked date. When YearKnown is false the year of Date is the
// reference leap year and carries no meaning.
type Birthday struct {
	Date      engine.CalendarDate
	YearKnown bool
}

// NewBirthday builds a Birthday, pinning the year when it is unknown.
func NewBirthday(year, month, day int, yearKnown bool) Birthday {
	if !yearKnown {
		year = config.ReferenceLeapYear
	}
	return Birthday{Date: engine.Date(year, month, day), YearKnown: yearKnown}
}

// BDay formats b as a vCard 4.0 BDAY value: basic ISO 8601 when the year is
// known, the truncated "--MMDD" form otherwise.
func (b Birthday) BDay() string {
	if b.YearKnown {
		return b.Date.Time().Format(config.DateFormatFullBasic)
	}
	return b.Date.Time().Format(config.DateFormatNoYearB)
}

// ParseBirthday reads the BDAY formats found in the wild: full dates in dashed,
// basic and timestamp forms, and the year-less "--MM-DD" and "--MMDD" forms.
func ParseBirthday(value string) (Birthday, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return Birthday{Date: engine.FromTime(t), YearKnown: true}, nil
		}
	}

	// Year 0 is a leap year, so "--0229" parses.
	for _, f := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if t, err := time.Parse(f, value); err == nil {
			return NewBirthday(0, int(t.Month())-1, t.Day(), false), nil
		}
	}

	return Birthday{}, ErrDateParse
}
