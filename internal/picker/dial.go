package picker

import "github.com/tartampluch/go-datespinner/internal/engine"

// InputHint tells a dial what submitting typed input should do.
type InputHint int

const (
	// HintNext moves input focus to the following dial.
	HintNext InputHint = iota
	// HintDone finishes input; set on the last dial.
	HintDone
)

func (h InputHint) String() string {
	if h == HintDone {
		return "done"
	}
	return "next"
}

// Dial is one numeric selector. The controller never reads a dial; it pushes
// state with Apply and receives changes through the callback it registers.
type Dial interface {
	// Apply replaces the dial's range, wrap flag, visibility, labels and value.
	Apply(state engine.DialState)

	SetEnabled(enabled bool)
	SetInputHint(hint InputHint)

	// SetOnChanged registers the callback fired when the user moves the dial
	// from oldValue to newValue.
	SetOnChanged(fn func(oldValue, newValue int))
}

// Layout places the dials left to right.
type Layout interface {
	// Arrange removes every dial from the container and re-adds them in order.
	Arrange(order []Dial)
}

// Dials bundles the three collaborators handed to New.
type Dials struct {
	Day   Dial
	Month Dial
	Year  Dial
}

func (d Dials) get(f engine.Field) Dial {
	switch f {
	case engine.FieldDay:
		return d.Day
	case engine.FieldMonth:
		return d.Month
	case engine.FieldYear:
		return d.Year
	}
	return nil
}
