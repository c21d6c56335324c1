package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datespinner/internal/config"
	"github.com/tartampluch/go-datespinner/internal/engine"
	"github.com/teambition/rrule-go"
)

func TestParseBirthday(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      engine.CalendarDate
		yearKnown bool
		wantErr   bool
	}{
		{"Dashed", "1990-01-02", engine.CalendarDate{Year: 1990, Month: 0, Day: 2}, true, false},
		{"Basic", "19851231", engine.CalendarDate{Year: 1985, Month: 11, Day: 31}, true, false},
		{"Timestamp", "2001-07-04T00:00:00Z", engine.CalendarDate{Year: 2001, Month: 6, Day: 4}, true, false},
		{"RFC3339Offset", "2001-07-04T00:00:00+02:00", engine.CalendarDate{Year: 2001, Month: 6, Day: 4}, true, false},
		{"NoYearDashed", "--03-15", engine.CalendarDate{Year: 2000, Month: 2, Day: 15}, false, false},
		{"NoYearBasic", "--0229", engine.CalendarDate{Year: 2000, Month: 1, Day: 29}, false, false},
		{"Garbage", "yesterday", engine.CalendarDate{}, false, true},
		{"InvalidDay", "2023-02-30", engine.CalendarDate{}, false, true},
		{"Empty", "", engine.CalendarDate{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBirthday(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDateParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Date)
			assert.Equal(t, tt.yearKnown, got.YearKnown)
		})
	}
}

func TestBirthday_BDay(t *testing.T) {
	assert.Equal(t, "19900102", NewBirthday(1990, 0, 2, true).BDay())
	assert.Equal(t, "--0229", NewBirthday(1985, 1, 29, false).BDay())

	b := NewBirthday(1985, 1, 29, false)
	assert.Equal(t, config.ReferenceLeapYear, b.Date.Year)
}

func TestVCard_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Birthday
	}{
		{"FullDate", NewBirthday(1990, 4, 17, true)},
		{"NoYear", NewBirthday(0, 1, 29, false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, VCard(&buf, "Ada Lovelace", tt.in))

			card, err := vcard.NewDecoder(bytes.NewReader(buf.Bytes())).Decode()
			require.NoError(t, err)
			assert.Equal(t, config.VCardVersion, card.Value(vcard.FieldVersion))
			assert.Equal(t, tt.in.BDay(), card.Value(vcard.FieldBirthday))

			name, got, err := ReadVCardBirthday(&buf)
			require.NoError(t, err)
			assert.Equal(t, "Ada Lovelace", name)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestReadVCardBirthday_SkipsCardsWithoutDate(t *testing.T) {
	data := strings.Join([]string{
		"BEGIN:VCARD", "VERSION:3.0", "FN:No Date", "END:VCARD",
		"BEGIN:VCARD", "VERSION:3.0", "FN:Bad Date", "BDAY:someday", "END:VCARD",
		"BEGIN:VCARD", "VERSION:3.0", "FN:Grace Hopper", "BDAY:1906-12-09", "END:VCARD",
	}, "\r\n") + "\r\n"

	name, b, err := ReadVCardBirthday(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", name)
	assert.Equal(t, engine.CalendarDate{Year: 1906, Month: 11, Day: 9}, b.Date)
	assert.True(t, b.YearKnown)
}

func TestReadVCardBirthday_Errors(t *testing.T) {
	_, _, err := ReadVCardBirthday(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoBirthday)

	noDate := "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Nobody\r\nEND:VCARD\r\n"
	_, _, err = ReadVCardBirthday(strings.NewReader(noDate))
	assert.ErrorIs(t, err, ErrNoBirthday)

	_, _, err = ReadVCardBirthday(strings.NewReader("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrVCardParse)
}

func TestICal_FullDate(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	b := NewBirthday(1990, 4, 17, true)

	var buf bytes.Buffer
	require.NoError(t, ICal(&buf, "Birthday", b, now))

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)
	assert.Equal(t, config.ProdID, cal.Props.Get(config.PropProdid).Value)

	events := cal.Events()
	require.Len(t, events, 1)
	ev := events[0]

	summary, err := ev.Props.Text(config.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Birthday", summary)
	assert.Equal(t, UID("Birthday", b), ev.Props.Get(config.PropUID).Value)

	start, err := ev.DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, b.Date.Time(), start)
	assert.Nil(t, ev.Props.Get(config.PropRRule), "a dated birthday is a single event")
}

func TestICal_NoYearRepeatsYearly(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	b := NewBirthday(0, 6, 14, false)

	var buf bytes.Buffer
	require.NoError(t, ICal(&buf, "Anniversaire", b, now))
	assert.Contains(t, buf.String(), "FREQ=YEARLY")

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)

	rule, err := events[0].Props.RecurrenceRule()
	require.NoError(t, err)
	require.NotNil(t, rule)
	assert.Equal(t, rrule.YEARLY, rule.Freq)

	start, err := events[0].DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, config.ReferenceLeapYear, start.Year())
}

func TestUID_Stable(t *testing.T) {
	a := UID("Birthday", NewBirthday(1990, 0, 1, true))
	assert.Equal(t, a, UID("Birthday", NewBirthday(1990, 0, 1, true)))
	assert.NotEqual(t, a, UID("Birthday", NewBirthday(1990, 0, 1, false)))
	assert.True(t, strings.HasSuffix(a, "@"+config.ICalDomain))
	assert.Len(t, strings.TrimSuffix(a, "@"+config.ICalDomain), config.UIDHashLength*2)
}
