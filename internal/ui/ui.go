package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datespinner/internal/config"
	"github.com/tartampluch/go-datespinner/internal/engine"
	"github.com/tartampluch/go-datespinner/internal/export"
	"github.com/tartampluch/go-datespinner/internal/locale"
	"github.com/tartampluch/go-datespinner/internal/picker"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// AppOptions carries the command line overrides.
type AppOptions struct {
	Language string // BCP 47 tag; empty keeps the saved preference
	HideYear bool
	HideDay  bool
}

// DateSpinnerApp is the demo window around a DatePicker: language choice,
// dial visibility, the selected date and vCard/iCalendar exchange.
type DateSpinnerApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	Catalog     *locale.Catalog
	Clock       engine.Clock // Injected clock for testability
	Options     AppOptions

	Picker   *DatePicker
	Language language.Tag

	langLabel  *widget.Label
	langSelect *widget.Select
	langTags   map[string]language.Tag
	dayCheck   *widget.Check
	yearCheck  *widget.Check
	summary    *widget.Label
	btnExpVCF  *widget.Button
	btnExpICS  *widget.Button
	btnImpVCF  *widget.Button

	// lastYear survives hiding the year dial so showing it again restores it.
	lastYear   int
	lastChange picker.DateChange
}

// hostState is the application part of the saved picker state.
type hostState struct {
	LastYear int `json:"last_year"`
}

// NewDateSpinnerApp constructs the application and wires dependencies.
func NewDateSpinnerApp(a fyne.App, catalog *locale.Catalog, opts AppOptions) *DateSpinnerApp {
	return &DateSpinnerApp{
		App:         a,
		Preferences: a.Preferences(),
		Catalog:     catalog,
		Clock:       engine.RealClock{}, // Default to real clock in production
		Options:     opts,
	}
}

// Run builds the main window and blocks in the UI loop.
func (app *DateSpinnerApp) Run() error {
	if err := app.BuildWindow(); err != nil {
		return err
	}
	app.Window.Show()
	app.App.Run()
	return nil
}

// BuildWindow creates the picker, restores the saved state and lays out the
// main window without showing it.
func (app *DateSpinnerApp) BuildWindow() error {
	app.Language = app.resolveLanguage()

	p, err := NewDatePicker(picker.Options{
		Locale:   app.Language,
		Resolver: locale.NewResolver(app.Catalog),
		Clock:    app.Clock,
	})
	if err != nil {
		return err
	}
	app.Picker = p
	ctrl := p.Controller()

	app.restoreState()
	mode := ctrl.Mode()
	if app.Options.HideDay {
		mode.DayShown = false
	}
	if app.Options.HideYear {
		mode.YearShown = false
	}
	if app.lastYear == 0 {
		app.lastYear = engine.Today(app.Clock).Year
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	app.langLabel = widget.NewLabel(app.GetMsg(config.TKeyLblLanguage))
	app.langSelect = widget.NewSelect(app.languageNames(), nil)
	app.langSelect.Selected = display.Self.Name(app.Language)
	app.langSelect.OnChanged = app.onLanguageSelected

	app.dayCheck = widget.NewCheck(app.GetMsg(config.TKeyLblShowDay), nil)
	app.dayCheck.Checked = mode.DayShown
	app.dayCheck.OnChanged = func(bool) { app.applyMode() }

	app.yearCheck = widget.NewCheck(app.GetMsg(config.TKeyLblShowYear), nil)
	app.yearCheck.Checked = mode.YearShown
	app.yearCheck.OnChanged = func(bool) { app.applyMode() }

	app.summary = widget.NewLabel("")
	app.summary.Alignment = fyne.TextAlignCenter

	app.btnExpVCF = widget.NewButton(app.GetMsg(config.TKeyBtnExportVCF), func() {
		app.showExportDialog(config.ExportVCardName, app.ExportVCard)
	})
	app.btnExpICS = widget.NewButton(app.GetMsg(config.TKeyBtnExportICS), func() {
		app.showExportDialog(config.ExportICalName, app.ExportICal)
	})
	app.btnImpVCF = widget.NewButton(app.GetMsg(config.TKeyBtnImportVCF), app.showImportDialog)

	// Init notifies, which fills the summary label.
	ctrl.Init(app.yearFor(ctrl), ctrl.Month(), ctrl.DayOfMonth(), mode.DayShown, mode.YearShown, app.onDateChanged)

	content := container.NewVBox(
		container.NewBorder(nil, nil, app.langLabel, nil, app.langSelect),
		container.NewCenter(p),
		container.NewHBox(app.dayCheck, app.yearCheck),
		app.summary,
		container.NewGridWithColumns(3, app.btnExpVCF, app.btnExpICS, app.btnImpVCF),
	)
	w.SetContent(container.NewPadded(content))
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetOnClosed(app.saveState)
	return nil
}

// GetMsg is a helper to translate a key in the active language.
func (app *DateSpinnerApp) GetMsg(key string) string {
	return app.Catalog.Message(app.Language, key, nil)
}

// Birthday returns the selected date in export form.
func (app *DateSpinnerApp) Birthday() export.Birthday {
	ctrl := app.Picker.Controller()
	return export.NewBirthday(ctrl.Year(), ctrl.Month(), ctrl.DayOfMonth(), ctrl.Mode().YearShown)
}

// ExportVCard writes the selected date as a vCard.
func (app *DateSpinnerApp) ExportVCard(w io.Writer) error {
	return export.VCard(w, config.ExportFullName, app.Birthday())
}

// ExportICal writes the selected date as an iCalendar event.
func (app *DateSpinnerApp) ExportICal(w io.Writer) error {
	summary := app.GetMsg(config.TKeyEvtSummary)
	if summary == config.TKeyEvtSummary {
		summary = config.FallbackSummary
	}
	return export.ICal(w, summary, app.Birthday(), app.Clock.Now())
}

// ImportVCard selects the first birthday found in r. A year-less birthday
// hides the year dial.
func (app *DateSpinnerApp) ImportVCard(r io.Reader) error {
	_, b, err := export.ReadVCardBirthday(r)
	if errors.Is(err, export.ErrNoBirthday) {
		return errors.New(app.GetMsg(config.TKeyErrNoBirthday))
	}
	if err != nil {
		return err
	}

	if b.YearKnown {
		app.lastYear = b.Date.Year
	}
	app.yearCheck.Checked = b.YearKnown
	app.yearCheck.Refresh()

	ctrl := app.Picker.Controller()
	ctrl.Init(b.Date.Year, b.Date.Month, b.Date.Day, ctrl.Mode().DayShown, b.YearKnown, app.onDateChanged)
	return nil
}

// SummaryText returns the text of the selected-date label.
func (app *DateSpinnerApp) SummaryText() string {
	return app.summary.Text
}

func (app *DateSpinnerApp) onDateChanged(_ *picker.Controller, change picker.DateChange) {
	app.lastChange = change
	if change.HasYear {
		app.lastYear = change.Year
	}
	app.updateSummary()
}

func (app *DateSpinnerApp) updateSummary() {
	if app.summary == nil {
		return
	}
	c := app.lastChange
	date := fmt.Sprintf(config.DateFormatNoYear, c.Month+1, c.Day)
	if c.HasYear {
		date = fmt.Sprintf(config.DateFormatDisplay, c.Year, c.Month+1, c.Day)
	}

	text := app.Catalog.Message(app.Language, config.TKeyLblSelected, map[string]any{"Date": date})
	if text == config.TKeyLblSelected {
		text = fmt.Sprintf(config.FallbackSelected, date)
	}
	app.summary.SetText(text)
}

// applyMode re-initialises the picker with the dial visibility of the checks.
func (app *DateSpinnerApp) applyMode() {
	ctrl := app.Picker.Controller()
	ctrl.Init(app.yearFor(ctrl), ctrl.Month(), ctrl.DayOfMonth(),
		app.dayCheck.Checked, app.yearCheck.Checked, app.onDateChanged)
}

// yearFor returns the year to hand back to the controller: the pinned
// reference year is replaced by the last year the user saw.
func (app *DateSpinnerApp) yearFor(ctrl *picker.Controller) int {
	if ctrl.Mode().YearShown {
		return ctrl.Year()
	}
	return app.lastYear
}

// resolveLanguage picks the flag, then the saved preference, then English,
// and maps the result onto the closest shipped locale.
func (app *DateSpinnerApp) resolveLanguage() language.Tag {
	raw := app.Options.Language
	if raw == "" {
		raw = app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)
	}
	tag, err := language.Parse(raw)
	if err != nil {
		slog.Warn(config.ErrLocaleResolve,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyLang, raw,
			config.LogKeyError, err,
		)
		tag = language.English
	}

	supported := app.Catalog.Languages()
	if len(supported) == 0 {
		return tag
	}
	// The matcher falls back to its first entry.
	sort.SliceStable(supported, func(i, j int) bool {
		return supported[i] == language.English && supported[j] != language.English
	})
	_, idx, _ := language.NewMatcher(supported).Match(tag)
	return supported[idx]
}

// languageNames lists the shipped locales by their native names.
func (app *DateSpinnerApp) languageNames() []string {
	app.langTags = make(map[string]language.Tag)
	var names []string
	for _, tag := range app.Catalog.Languages() {
		name := display.Self.Name(tag)
		app.langTags[name] = tag
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (app *DateSpinnerApp) onLanguageSelected(name string) {
	tag, ok := app.langTags[name]
	if !ok || tag == app.Language {
		return
	}
	if err := app.Picker.Controller().SetLocale(tag); err != nil {
		slog.Error(config.ErrLocaleResolve,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyLang, tag.String(),
			config.LogKeyError, err,
		)
		app.showError(err)
		return
	}

	app.Language = tag
	app.Preferences.SetString(config.PrefLanguage, tag.String())
	app.relabel()
}

// relabel refreshes every translated string after a language change.
func (app *DateSpinnerApp) relabel() {
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.langLabel.SetText(app.GetMsg(config.TKeyLblLanguage))
	app.dayCheck.Text = app.GetMsg(config.TKeyLblShowDay)
	app.dayCheck.Refresh()
	app.yearCheck.Text = app.GetMsg(config.TKeyLblShowYear)
	app.yearCheck.Refresh()
	app.btnExpVCF.SetText(app.GetMsg(config.TKeyBtnExportVCF))
	app.btnExpICS.SetText(app.GetMsg(config.TKeyBtnExportICS))
	app.btnImpVCF.SetText(app.GetMsg(config.TKeyBtnImportVCF))
	app.updateSummary()
}

// saveState persists the picker into the preferences.
func (app *DateSpinnerApp) saveState() {
	log := slog.With(config.LogKeyComponent, config.CompUI)

	host, err := json.Marshal(hostState{LastYear: app.lastYear})
	if err != nil {
		log.Error(config.ErrStateSave, config.LogKeyError, err)
		return
	}
	data, err := picker.Serialize(app.Picker.Controller().SaveState(host))
	if err != nil {
		log.Error(config.ErrStateSave, config.LogKeyError, err)
		return
	}
	app.Preferences.SetString(config.PrefPickerState, string(data))
	log.Debug(config.MsgStateSaved, config.LogKeyDate, app.Picker.Controller().Date().String())
}

// restoreState loads the saved picker, if any. A corrupt entry is logged and
// ignored.
func (app *DateSpinnerApp) restoreState() {
	raw := app.Preferences.String(config.PrefPickerState)
	if raw == "" {
		return
	}

	state, err := picker.Deserialize([]byte(raw))
	if err != nil {
		slog.Warn(config.ErrStateRestore,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
		return
	}

	payload := app.Picker.Controller().RestoreState(state)
	var host hostState
	if len(payload) > 0 && json.Unmarshal(payload, &host) == nil && host.LastYear != 0 {
		app.lastYear = host.LastYear
	}
}
