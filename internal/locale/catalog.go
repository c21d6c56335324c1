package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datespinner/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Catalog is the embedded translation bundle. It serves the month names and
// date patterns used by the picker as well as the application's UI strings.
type Catalog struct {
	bundle    *i18n.Bundle
	languages []language.Tag
}

// NewCatalog loads every locales/active.<lang>.json file.
func NewCatalog() (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	c := &Catalog{bundle: bundle}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompLocale,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompLocale,
				config.LogKeyFile, name,
			)
			continue
		}

		mf, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", config.ErrLocaleLoad, name, err)
		}
		c.languages = append(c.languages, mf.Tag)

		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyLang, mf.Tag.String(),
			config.LogKeyFile, name,
		)
	}
	return c, nil
}

// Languages returns the tags of the loaded locale files.
func (c *Catalog) Languages() []language.Tag {
	return append([]language.Tag(nil), c.languages...)
}

// Localizer returns a go-i18n localizer for tag, falling back to English.
func (c *Catalog) Localizer(tag language.Tag) *i18n.Localizer {
	return i18n.NewLocalizer(c.bundle, tag.String(), language.English.String())
}

// Message translates key for tag. The key itself is returned when the
// translation is missing so the UI never shows an empty label.
func (c *Catalog) Message(tag language.Tag, key string, data map[string]any) string {
	msg, err := c.Localizer(tag).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// BestDatePattern implements Source.
func (c *Catalog) BestDatePattern(tag language.Tag) (string, language.Tag, error) {
	pattern, matched, err := c.Localizer(tag).LocalizeWithTag(&i18n.LocalizeConfig{
		MessageID: config.TKeyDatePattern,
	})
	if err != nil {
		return "", language.Und, fmt.Errorf("%s %s: %w", config.ErrLocaleMessage, config.TKeyDatePattern, err)
	}
	return pattern, matched, nil
}

// ShortMonths implements Source.
func (c *Catalog) ShortMonths(tag language.Tag) ([]string, error) {
	loc := c.Localizer(tag)
	months := make([]string, config.MonthsPerYear)
	for i := range months {
		key := MonthKey(i)
		name, err := loc.Localize(&i18n.LocalizeConfig{MessageID: key})
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", config.ErrLocaleMessage, key, err)
		}
		months[i] = name
	}
	return months, nil
}

// MonthKey returns the message ID of the zero-based month's short name.
func MonthKey(month int) string {
	return fmt.Sprintf("%s%02d", config.TKeyMonthPrefix, month+1)
}
