package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is an Entry that can be restricted to digits.
// It embeds widget.Entry to inherit all standard behavior.
type NumericalEntry struct {
	widget.Entry

	// Numeric filters typed runes to 0-9 and requests a number keypad.
	// Month dials with named labels turn it off.
	Numeric bool
}

// NewNumericalEntry creates a digit-only entry.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{Numeric: true}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune drops non-digits while Numeric is set.
func (e *NumericalEntry) TypedRune(r rune) {
	if e.Numeric && (r < '0' || r > '9') {
		return
	}
	e.Entry.TypedRune(r)
	// Pasted text bypasses this filter; the dial validates on submit.
}

// Keyboard selects the mobile keypad matching the input mode.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	if e.Numeric {
		return mobile.NumberKeyboard
	}
	return mobile.DefaultKeyboard
}
