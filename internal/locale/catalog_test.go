package locale

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datespinner/internal/config"
	"github.com/tartampluch/go-datespinner/internal/engine"
	"golang.org/x/text/language"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog()
	require.NoError(t, err)
	return c
}

func TestCatalog_Languages(t *testing.T) {
	c := newTestCatalog(t)

	var got []string
	for _, tag := range c.Languages() {
		got = append(got, tag.String())
	}
	assert.ElementsMatch(t, []string{"de", "en", "en-GB", "es", "fr", "ja", "ko", "zh"}, got)
}

// TestCatalog_Profiles resolves every shipped locale through the real bundle.
func TestCatalog_Profiles(t *testing.T) {
	c := newTestCatalog(t)
	resolve := NewResolver(c)

	tests := []struct {
		tag     string
		matched string
		order   []engine.Field
		numeric bool
		first   string
	}{
		{"en", "en", []engine.Field{month, day, year}, false, "Jan"},
		{"en-US", "en", []engine.Field{month, day, year}, false, "Jan"},
		{"en-GB", "en-GB", []engine.Field{day, month, year}, false, "Jan"},
		{"fr-CA", "fr", []engine.Field{day, month, year}, false, "janv."},
		{"de-AT", "de", []engine.Field{day, month, year}, false, "Jan."},
		{"es", "es", []engine.Field{day, month, year}, false, "ene"},
		{"ja", "ja", []engine.Field{year, month, day}, true, "1"},
		{"ko", "ko", []engine.Field{year, month, day}, true, "1"},
		{"zh", "zh", []engine.Field{year, month, day}, true, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			p, err := resolve(language.MustParse(tt.tag))
			require.NoError(t, err)
			assert.Equal(t, tt.matched, p.Tag.String())
			assert.Equal(t, tt.order, p.Order)
			assert.Equal(t, tt.numeric, p.NumericMonths)
			require.Len(t, p.MonthLabels, config.MonthsPerYear)
			assert.Equal(t, tt.first, p.MonthLabels[0])
		})
	}
}

func TestCatalog_Message(t *testing.T) {
	c := newTestCatalog(t)

	assert.Equal(t, "Language", c.Message(language.English, config.TKeyLblLanguage, nil))
	assert.Equal(t, "Langue", c.Message(language.French, config.TKeyLblLanguage, nil))
	assert.Equal(t, "Selected: 2024-02-29",
		c.Message(language.English, config.TKeyLblSelected, map[string]any{"Date": "2024-02-29"}))

	// Missing keys come back verbatim.
	assert.Equal(t, "no_such_key", c.Message(language.English, "no_such_key", nil))
}

// TestCatalog_Integrity ensures every locale file defines exactly the keys
// the code looks up, with the same template fields.
func TestCatalog_Integrity(t *testing.T) {
	keys := []string{
		config.TKeyDatePattern,
		config.TKeyWinTitle,
		config.TKeyLblLanguage,
		config.TKeyLblShowDay,
		config.TKeyLblShowYear,
		config.TKeyLblSelected,
		config.TKeyBtnExportVCF,
		config.TKeyBtnExportICS,
		config.TKeyBtnImportVCF,
		config.TKeyEvtSummary,
		config.TKeyNotifExported,
		config.TKeyErrNoBirthday,
	}
	for m := 0; m < config.MonthsPerYear; m++ {
		keys = append(keys, MonthKey(m))
	}

	entries, err := localeFS.ReadDir("locales")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		t.Run(entry.Name(), func(t *testing.T) {
			content, err := localeFS.ReadFile("locales/" + entry.Name())
			require.NoError(t, err)

			var jsonMap map[string]string
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be a flat string map")

			for _, k := range keys {
				v, ok := jsonMap[k]
				if assert.Truef(t, ok, "Key '%s' is missing", k) {
					assert.NotEmptyf(t, v, "Key '%s' is empty", k)
				}
			}
			assert.Len(t, jsonMap, len(keys), "Locale file carries unused keys")

			assert.Contains(t, jsonMap[config.TKeyLblSelected], "{{.Date}}")
			assert.Contains(t, jsonMap[config.TKeyNotifExported], "{{.File}}")

			_, err = DateFormatOrder(jsonMap[config.TKeyDatePattern])
			assert.NoError(t, err)
		})
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "month_short_01", MonthKey(0))
	assert.Equal(t, "month_short_12", MonthKey(11))
}
