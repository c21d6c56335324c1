package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/tartampluch/go-datespinner/internal/picker"
)

// DialRow lays the dials out left to right. It implements picker.Layout.
type DialRow struct {
	Box *fyne.Container
}

var _ picker.Layout = (*DialRow)(nil)

// NewDialRow creates an empty horizontal row.
func NewDialRow() *DialRow {
	return &DialRow{Box: container.NewHBox()}
}

// Arrange replaces the row's content with order and chains submit focus
// from each SpinnerDial to the one after it.
func (r *DialRow) Arrange(order []picker.Dial) {
	r.Box.RemoveAll()

	var prev *SpinnerDial
	for _, d := range order {
		obj, ok := d.(fyne.CanvasObject)
		if !ok {
			continue
		}
		r.Box.Add(obj)

		if s, ok := d.(*SpinnerDial); ok {
			if prev != nil {
				prev.next = s
			}
			prev = s
		}
	}
	if prev != nil {
		prev.next = nil
	}
	r.Box.Refresh()
}
