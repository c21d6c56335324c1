package ui

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datespinner/internal/config"
	"github.com/tartampluch/go-datespinner/internal/engine"
	"github.com/tartampluch/go-datespinner/internal/picker"
)

// SpinnerDial is a vertical number picker: an increment button, an editable
// value and a decrement button. It implements picker.Dial.
type SpinnerDial struct {
	widget.BaseWidget

	Entry *NumericalEntry
	Up    *widget.Button
	Down  *widget.Button

	state     engine.DialState
	hint      picker.InputHint
	next      *SpinnerDial // set by DialRow
	onChanged func(oldValue, newValue int)
}

var _ picker.Dial = (*SpinnerDial)(nil)

// NewSpinnerDial creates an empty dial; the picker controller configures it.
func NewSpinnerDial() *SpinnerDial {
	d := &SpinnerDial{Entry: NewNumericalEntry()}
	d.Up = widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() { d.Step(1) })
	d.Down = widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() { d.Step(-1) })
	d.Entry.OnSubmitted = d.Submit
	d.ExtendBaseWidget(d)
	return d
}

// CreateRenderer stacks the buttons around the entry and enforces a minimum width.
func (d *SpinnerDial) CreateRenderer() fyne.WidgetRenderer {
	width := canvas.NewRectangle(color.Transparent)
	width.SetMinSize(fyne.NewSize(config.DialMinWidth, 0))
	body := container.NewBorder(d.Up, d.Down, nil, nil, d.Entry)
	return widget.NewSimpleRenderer(container.NewStack(width, body))
}

// Apply replaces the dial's configuration and shown value.
func (d *SpinnerDial) Apply(state engine.DialState) {
	d.state = state
	d.Entry.Numeric = state.NumericInput || state.Labels == nil
	d.Entry.SetText(state.Label(state.Value))
	if state.Visible {
		d.Show()
	} else {
		d.Hide()
	}
}

// State returns the configuration last applied.
func (d *SpinnerDial) State() engine.DialState { return d.state }

// Value returns the selected value.
func (d *SpinnerDial) Value() int { return d.state.Value }

// SetEnabled enables or disables the entry and both buttons.
func (d *SpinnerDial) SetEnabled(enabled bool) {
	for _, w := range []fyne.Disableable{d.Entry, d.Up, d.Down} {
		if enabled {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}

// SetInputHint sets what submitting the entry does next.
func (d *SpinnerDial) SetInputHint(hint picker.InputHint) { d.hint = hint }

// InputHint returns the hint set by the controller.
func (d *SpinnerDial) InputHint() picker.InputHint { return d.hint }

// SetOnChanged registers the callback for user moves.
func (d *SpinnerDial) SetOnChanged(fn func(oldValue, newValue int)) { d.onChanged = fn }

// Step moves the value by delta steps, reporting each one. Past either end
// it wraps when the dial wraps and stops otherwise.
func (d *SpinnerDial) Step(delta int) {
	for range abs(delta) {
		v := d.stepOnce(d.state.Value, delta > 0)
		if v == d.state.Value {
			return
		}
		d.set(v)
	}
}

func (d *SpinnerDial) stepOnce(v int, up bool) int {
	if up {
		switch {
		case v < d.state.Max:
			return v + 1
		case d.state.Wrap:
			return d.state.Min
		}
		return v
	}
	switch {
	case v > d.state.Min:
		return v - 1
	case d.state.Wrap:
		return d.state.Max
	}
	return v
}

// Scrolled steps the dial: scrolling down shows the next value.
func (d *SpinnerDial) Scrolled(ev *fyne.ScrollEvent) {
	switch {
	case ev.Scrolled.DY < 0:
		d.Step(1)
	case ev.Scrolled.DY > 0:
		d.Step(-1)
	}
}

// Submit selects the value typed in the entry. Text matching a label (case
// insensitive) selects that label's value; otherwise a number within range is
// expected. Anything else restores the current label. With HintNext the focus
// then moves to the next shown dial.
func (d *SpinnerDial) Submit(text string) {
	if v, ok := d.parse(text); ok && v != d.state.Value {
		d.set(v)
	} else {
		d.Entry.SetText(d.state.Label(d.state.Value))
	}

	if d.hint == picker.HintNext {
		d.focusNext()
	}
}

func (d *SpinnerDial) parse(text string) (int, bool) {
	text = strings.TrimSpace(text)
	for i, label := range d.state.Labels {
		if strings.EqualFold(label, text) {
			return d.state.Min + i, true
		}
	}
	if d.state.Labels != nil {
		return 0, false
	}
	v, err := strconv.Atoi(text)
	if err != nil || !d.state.Contains(v) {
		return 0, false
	}
	return v, true
}

// set shows v and reports the move. The controller answers synchronously
// with a fresh Apply.
func (d *SpinnerDial) set(v int) {
	old := d.state.Value
	d.state.Value = v
	d.Entry.SetText(d.state.Label(v))
	if d.onChanged != nil {
		d.onChanged(old, v)
	}
}

func (d *SpinnerDial) focusNext() {
	next := d.next
	for next != nil && !next.Visible() {
		next = next.next
	}
	a := fyne.CurrentApp()
	if next == nil || a == nil {
		return
	}
	if c := a.Driver().CanvasForObject(d.Entry); c != nil {
		c.Focus(next.Entry)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
