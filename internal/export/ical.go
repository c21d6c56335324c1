package export

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-datespinner/internal/config"
	"github.com/teambition/rrule-go"
)

// ICal writes a calendar holding one all-day event on the birthday. Without
// a known year the event repeats every year from the reference year.
func ICal(w io.Writer, summary string, b Birthday, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ProdID)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, UID(summary, b))
	event.Props.SetText(config.PropSummary, summary)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())
	event.Props.Set(dtStampProp)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(b.Date.Time())
	event.Props.Set(dtStartProp)

	if !b.YearKnown {
		event.Props.SetRecurrenceRule(&rrule.ROption{Freq: rrule.YEARLY})
	}

	cal.Children = append(cal.Children, event.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgExported,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyDate, b.Date.String(),
		config.LogKeyYearKnown, b.YearKnown,
	)
	return nil
}

// UID derives a stable event identifier from the summary and the date, so
// exporting the same birthday twice updates rather than duplicates it.
func UID(summary string, b Birthday) string {
	input := fmt.Sprintf(config.FormatHashInput, summary, b.BDay(), b.YearKnown)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID, fmt.Sprintf("%x", hash[:config.UIDHashLength]), config.ICalDomain)
}
