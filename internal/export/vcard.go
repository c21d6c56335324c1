package export

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-datespinner/internal/config"
)

// VCard writes a single vCard 4.0 carrying name and the birthday.
func VCard(w io.Writer, name string, b Birthday) error {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldFormattedName, name)
	card.SetValue(vcard.FieldBirthday, b.BDay())

	if err := vcard.NewEncoder(w).Encode(card); err != nil {
		return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}

	slog.Debug(config.MsgExported,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyDate, b.BDay(),
	)
	return nil
}

// ReadVCardBirthday returns the formatted name and birthday of the first card
// in r with a readable BDAY. Cards without one are skipped. ErrNoBirthday is
// returned when the stream holds none.
func ReadVCardBirthday(r io.Reader) (string, Birthday, error) {
	decoder := vcard.NewDecoder(r)

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", Birthday{}, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}

		bday := card.Get(vcard.FieldBirthday)
		if bday == nil || bday.Value == "" {
			continue
		}

		b, err := ParseBirthday(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompExport,
				config.LogKeyDate, bday.Value)
			continue
		}

		name := card.PreferredValue(vcard.FieldFormattedName)
		slog.Info(config.MsgImported,
			config.LogKeyComponent, config.CompExport,
			config.LogKeyDate, b.Date.String(),
			config.LogKeyYearKnown, b.YearKnown,
		)
		return name, b, nil
	}

	return "", Birthday{}, ErrNoBirthday
}
