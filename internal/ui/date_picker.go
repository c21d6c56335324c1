package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datespinner/internal/picker"
)

// DatePicker is the three-dial date picker widget. Its Controller owns the
// date; the dials and the row only render it.
type DatePicker struct {
	widget.BaseWidget

	Day   *SpinnerDial
	Month *SpinnerDial
	Year  *SpinnerDial
	Row   *DialRow

	ctrl *picker.Controller
}

// NewDatePicker builds the dials and wires them to a new controller.
func NewDatePicker(opts picker.Options) (*DatePicker, error) {
	p := &DatePicker{
		Day:   NewSpinnerDial(),
		Month: NewSpinnerDial(),
		Year:  NewSpinnerDial(),
		Row:   NewDialRow(),
	}

	ctrl, err := picker.New(picker.Dials{Day: p.Day, Month: p.Month, Year: p.Year}, p.Row, opts)
	if err != nil {
		return nil, err
	}
	p.ctrl = ctrl
	p.ExtendBaseWidget(p)
	return p, nil
}

// Controller gives access to the picker's date operations.
func (p *DatePicker) Controller() *picker.Controller { return p.ctrl }

func (p *DatePicker) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.Row.Box)
}
