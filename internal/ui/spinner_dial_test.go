package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datespinner/internal/engine"
	"github.com/tartampluch/go-datespinner/internal/locale"
	"github.com/tartampluch/go-datespinner/internal/picker"
	"golang.org/x/text/language"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// newTestDial returns a standalone dial and the moves it reported.
func newTestDial(state engine.DialState) (*SpinnerDial, *[][2]int) {
	d := NewSpinnerDial()
	var moves [][2]int
	d.SetOnChanged(func(oldValue, newValue int) {
		moves = append(moves, [2]int{oldValue, newValue})
	})
	d.Apply(state)
	return d, &moves
}

func dayState(value int, wrap bool) engine.DialState {
	return engine.DialState{Field: engine.FieldDay, Min: 1, Max: 31, Value: value, Wrap: wrap, Visible: true, Padded: true}
}

// -----------------------------------------------------------------------------
// SpinnerDial
// -----------------------------------------------------------------------------

func TestSpinnerDial_Apply(t *testing.T) {
	test.NewApp()

	d, moves := newTestDial(dayState(5, true))
	assert.Equal(t, "05", d.Entry.Text)
	assert.True(t, d.Entry.Numeric)
	assert.True(t, d.Visible())
	assert.Empty(t, *moves, "applying state is not a move")

	d.Apply(engine.DialState{Field: engine.FieldMonth, Min: 0, Max: 11, Value: 2, Labels: monthNames})
	assert.Equal(t, "Mar", d.Entry.Text)
	assert.False(t, d.Entry.Numeric, "named months accept letters")
	assert.False(t, d.Visible())
}

func TestSpinnerDial_Step(t *testing.T) {
	test.NewApp()

	tests := []struct {
		name  string
		state engine.DialState
		delta int
		want  int
		moves [][2]int
	}{
		{"Up", dayState(5, true), 1, 6, [][2]int{{5, 6}}},
		{"Down", dayState(5, true), -1, 4, [][2]int{{5, 4}}},
		{"WrapUp", dayState(31, true), 1, 1, [][2]int{{31, 1}}},
		{"WrapDown", dayState(1, true), -1, 31, [][2]int{{1, 31}}},
		{"StopAtMax", dayState(31, false), 1, 31, nil},
		{"StopAtMin", dayState(1, false), -1, 1, nil},
		{"MultiStep", dayState(30, true), 3, 2, [][2]int{{30, 31}, {31, 1}, {1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, moves := newTestDial(tt.state)
			d.Step(tt.delta)
			assert.Equal(t, tt.want, d.Value())
			assert.Equal(t, tt.moves, *moves)
		})
	}
}

func TestSpinnerDial_ButtonsAndScroll(t *testing.T) {
	test.NewApp()
	d, moves := newTestDial(dayState(10, true))

	test.Tap(d.Up)
	assert.Equal(t, 11, d.Value())
	assert.Equal(t, "11", d.Entry.Text)

	test.Tap(d.Down)
	test.Tap(d.Down)
	assert.Equal(t, 9, d.Value())

	d.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -10}})
	assert.Equal(t, 10, d.Value())
	d.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 10}})
	assert.Equal(t, 9, d.Value())

	assert.Len(t, *moves, 5)
}

func TestSpinnerDial_Submit(t *testing.T) {
	test.NewApp()

	months := engine.DialState{Field: engine.FieldMonth, Min: 3, Max: 11, Value: 4, Wrap: false, Visible: true, Labels: monthNames[3:]}

	tests := []struct {
		name  string
		state engine.DialState
		input string
		want  int
		text  string
	}{
		{"Number", dayState(5, true), "17", 17, "17"},
		{"PaddedNumber", dayState(5, true), "07", 7, "07"},
		{"OutOfRange", dayState(5, true), "32", 5, "05"},
		{"NotANumber", dayState(5, true), "abc", 5, "05"},
		{"Label", months, "jul", 6, "Jul"},
		{"LabelBelowRange", months, "Jan", 4, "May"},
		{"NumberOnNamedDial", months, "7", 4, "May"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDial(tt.state)
			d.Entry.SetText(tt.input)
			d.Submit(d.Entry.Text)
			assert.Equal(t, tt.want, d.Value())
			assert.Equal(t, tt.text, d.Entry.Text)
		})
	}
}

func TestSpinnerDial_SetEnabled(t *testing.T) {
	test.NewApp()
	d, _ := newTestDial(dayState(1, true))

	d.SetEnabled(false)
	assert.True(t, d.Entry.Disabled())
	assert.True(t, d.Up.Disabled())
	assert.True(t, d.Down.Disabled())

	d.SetEnabled(true)
	assert.False(t, d.Up.Disabled())
}

// -----------------------------------------------------------------------------
// DatePicker
// -----------------------------------------------------------------------------

func newTestPicker(t *testing.T, tag language.Tag) *DatePicker {
	t.Helper()
	catalog, err := locale.NewCatalog()
	require.NoError(t, err)

	p, err := NewDatePicker(picker.Options{
		Locale:   tag,
		Resolver: locale.NewResolver(catalog),
		Clock:    testClock,
	})
	require.NoError(t, err)
	return p
}

func TestDatePicker_Layout(t *testing.T) {
	test.NewApp()

	p := newTestPicker(t, language.English)
	assert.Equal(t, []fyne.CanvasObject{p.Month, p.Day, p.Year}, p.Row.Box.Objects)
	assert.Equal(t, "May", p.Month.Entry.Text)
	assert.Equal(t, picker.HintDone, p.Year.InputHint())

	require.NoError(t, p.Controller().SetLocale(language.Japanese))
	assert.Equal(t, []fyne.CanvasObject{p.Year, p.Month, p.Day}, p.Row.Box.Objects)
	assert.Equal(t, "5", p.Month.Entry.Text)
	assert.True(t, p.Month.Entry.Numeric)
	assert.Equal(t, picker.HintDone, p.Day.InputHint())
}

func TestDatePicker_DialsDriveController(t *testing.T) {
	test.NewApp()
	p := newTestPicker(t, language.English)
	ctrl := p.Controller()

	w := test.NewWindow(p)
	defer w.Close()

	var changes []picker.DateChange
	ctrl.Init(2023, 0, 31, true, true, func(_ *picker.Controller, c picker.DateChange) {
		changes = append(changes, c)
	})

	test.Tap(p.Day.Up)
	assert.Equal(t, engine.CalendarDate{Year: 2023, Month: 1, Day: 1}, ctrl.Date())
	assert.Equal(t, "Feb", p.Month.Entry.Text)
	assert.Equal(t, 28, p.Day.State().Max)

	p.Month.Entry.SetText("dec")
	p.Month.Submit(p.Month.Entry.Text)
	assert.Equal(t, engine.CalendarDate{Year: 2023, Month: 11, Day: 1}, ctrl.Date())

	test.Tap(p.Month.Up)
	assert.Equal(t, engine.CalendarDate{Year: 2024, Month: 0, Day: 1}, ctrl.Date())
	assert.Equal(t, "2024", p.Year.Entry.Text)

	assert.Len(t, changes, 4)
}

func TestDatePicker_SubmitMovesFocus(t *testing.T) {
	test.NewApp()
	p := newTestPicker(t, language.English)
	p.Controller().Init(2024, 4, 10, true, true, nil)

	w := test.NewWindow(p)
	defer w.Close()

	p.Month.Submit("Jun")
	assert.Equal(t, p.Day.Entry, w.Canvas().Focused())

	// The day is hidden: focus skips to the year.
	p.Controller().Init(2024, 4, 10, false, true, nil)
	p.Month.Submit("Jul")
	assert.Equal(t, p.Year.Entry, w.Canvas().Focused())
}
