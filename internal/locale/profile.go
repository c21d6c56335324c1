// Package locale turns a language into the picker's locale profile: the
// left-to-right order of the dials and the month labels.
package locale

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tartampluch/go-datespinner/internal/config"
	"github.com/tartampluch/go-datespinner/internal/engine"
	"golang.org/x/text/language"
)

var (
	// ErrUnknownOrderSymbol reports a date pattern the dials cannot be ordered by.
	ErrUnknownOrderSymbol = errors.New(config.ErrUnknownOrderSymbol)

	// ErrMonthLabels reports a month name list of the wrong length.
	ErrMonthLabels = errors.New(config.ErrMonthLabels)
)

// Source is the locale formatting service consulted by Resolve.
type Source interface {
	// BestDatePattern returns the locale's pattern for a numeric year, an
	// abbreviated month and a two-digit day, and the tag it was found for.
	BestDatePattern(tag language.Tag) (string, language.Tag, error)

	// ShortMonths returns the abbreviated month names, January first.
	ShortMonths(tag language.Tag) ([]string, error)
}

// Profile is everything the picker derives from a locale.
type Profile struct {
	Tag           language.Tag
	Order         []engine.Field
	MonthLabels   []string
	NumericMonths bool
}

// Months returns the profile's month labelling for engine.ComputeDials.
func (p Profile) Months() engine.MonthLabels {
	return engine.MonthLabels{Names: p.MonthLabels, Numeric: p.NumericMonths}
}

// Resolver maps a language to its profile. The picker receives one at
// construction so tests can substitute fixed profiles.
type Resolver func(tag language.Tag) (Profile, error)

// NewResolver returns a Resolver backed by src.
func NewResolver(src Source) Resolver {
	return func(tag language.Tag) (Profile, error) {
		return Resolve(src, tag)
	}
}

// Resolve asks src for the date pattern and month names of tag and builds
// the profile. Locales whose month names start with a digit get plain
// 1-based numbers as labels.
func Resolve(src Source, tag language.Tag) (Profile, error) {
	pattern, matched, err := src.BestDatePattern(tag)
	if err != nil {
		return Profile{}, fmt.Errorf("%s %s: %w", config.ErrLocaleResolve, tag, err)
	}
	order, err := DateFormatOrder(pattern)
	if err != nil {
		return Profile{}, fmt.Errorf("%s %s: %w", config.ErrLocaleResolve, tag, err)
	}

	months, err := src.ShortMonths(tag)
	if err != nil {
		return Profile{}, fmt.Errorf("%s %s: %w", config.ErrLocaleResolve, tag, err)
	}
	if len(months) != config.MonthsPerYear {
		return Profile{}, fmt.Errorf("%w: got %d", ErrMonthLabels, len(months))
	}

	p := Profile{
		Tag:         matched,
		Order:       order,
		MonthLabels: months,
	}
	if UsesNumericMonths(months) {
		p.NumericMonths = true
		p.MonthLabels = NumericMonthLabels(len(months))
	}
	return p, nil
}

// UsesNumericMonths reports whether the locale has no real month names,
// as in Chinese, Japanese or Korean, by looking at the first rune of January.
func UsesNumericMonths(months []string) bool {
	if len(months) == 0 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(months[0])
	return unicode.IsDigit(r)
}

// NumericMonthLabels returns "1" .. "n".
func NumericMonthLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf(config.NumericMonthFormat, i+1)
	}
	return labels
}

// DateFormatOrder extracts the order of the day, month and year fields from
// a date pattern such as "dd MMM yyyy" or "y年M月d日".
//
// 'd' is the day, 'M' or 'L' the month and 'y' the year; only the first
// occurrence of each counts. The era 'G' is ignored, quoted literals are
// skipped ('' is an escaped quote) and everything that is not an ASCII
// letter is punctuation. Any other letter, an unterminated quote or a
// missing field yields ErrUnknownOrderSymbol.
func DateFormatOrder(pattern string) ([]engine.Field, error) {
	order := make([]engine.Field, 0, len(engine.Fields))
	var sawDay, sawMonth, sawYear bool

	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		switch {
		case ch == 'd':
			if !sawDay {
				order = append(order, engine.FieldDay)
				sawDay = true
			}
		case ch == 'M' || ch == 'L':
			if !sawMonth {
				order = append(order, engine.FieldMonth)
				sawMonth = true
			}
		case ch == 'y':
			if !sawYear {
				order = append(order, engine.FieldYear)
				sawYear = true
			}
		case ch == 'G':
		case ch == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				i++
				continue
			}
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrUnknownOrderSymbol, pattern)
			}
			i += end + 1
		case (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z'):
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownOrderSymbol, ch, pattern)
		}
	}

	if len(order) != len(engine.Fields) {
		return nil, fmt.Errorf("%w: %q lacks a day, month or year field", ErrUnknownOrderSymbol, pattern)
	}
	return order, nil
}
