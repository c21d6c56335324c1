package picker

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tartampluch/go-datespinner/internal/config"
	"github.com/tartampluch/go-datespinner/internal/engine"
)

// ErrMalformedState is returned by Deserialize for payloads it cannot read.
var ErrMalformedState = errors.New(config.ErrMalformedState)

// SavedState is the persisted form of a picker. Dates are UTC midnight
// instants in epoch milliseconds. HostState is carried verbatim for the
// embedding view.
type SavedState struct {
	CurrentDate int64           `json:"current_date"`
	MinDate     int64           `json:"min_date"`
	MaxDate     int64           `json:"max_date"`
	DayShown    bool            `json:"day_shown"`
	YearShown   bool            `json:"year_shown"`
	HostState   json.RawMessage `json:"host_state,omitempty"`
}

// Serialize encodes s.
func Serialize(s SavedState) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrStateSave, err)
	}
	return b, nil
}

// wireState mirrors SavedState with pointers so missing keys can be told
// apart from zero values.
type wireState struct {
	CurrentDate *int64          `json:"current_date"`
	MinDate     *int64          `json:"min_date"`
	MaxDate     *int64          `json:"max_date"`
	DayShown    *bool           `json:"day_shown"`
	YearShown   *bool           `json:"year_shown"`
	HostState   json.RawMessage `json:"host_state,omitempty"`
}

// Deserialize decodes data written by Serialize. Anything but a single
// object carrying every date and display key is rejected with
// ErrMalformedState, as are unknown fields and wrong types.
func Deserialize(data []byte) (SavedState, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return SavedState{}, fmt.Errorf("%w: not an object", ErrMalformedState)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	var w wireState
	if err := dec.Decode(&w); err != nil {
		return SavedState{}, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return SavedState{}, fmt.Errorf("%w: trailing data", ErrMalformedState)
	}

	for key, present := range map[string]bool{
		"current_date": w.CurrentDate != nil,
		"min_date":     w.MinDate != nil,
		"max_date":     w.MaxDate != nil,
		"day_shown":    w.DayShown != nil,
		"year_shown":   w.YearShown != nil,
	} {
		if !present {
			return SavedState{}, fmt.Errorf("%w: missing %s", ErrMalformedState, key)
		}
	}

	return SavedState{
		CurrentDate: *w.CurrentDate,
		MinDate:     *w.MinDate,
		MaxDate:     *w.MaxDate,
		DayShown:    *w.DayShown,
		YearShown:   *w.YearShown,
		HostState:   w.HostState,
	}, nil
}

// SaveState captures the current, minimum and maximum dates and the display
// mode. host is stored as is.
func (c *Controller) SaveState(host json.RawMessage) SavedState {
	return SavedState{
		CurrentDate: c.current.EpochMillis(),
		MinDate:     c.bounds.Min.EpochMillis(),
		MaxDate:     c.bounds.Max.EpochMillis(),
		DayShown:    c.mode.DayShown,
		YearShown:   c.mode.YearShown,
		HostState:   host,
	}
}

// RestoreState replaces the dates and display mode with s and refreshes the
// dials without notifying. It returns the host payload.
func (c *Controller) RestoreState(s SavedState) json.RawMessage {
	c.mode = engine.DisplayMode{DayShown: s.DayShown, YearShown: s.YearShown}
	c.bounds = engine.DateRange{
		Min: engine.FromEpochMillis(s.MinDate),
		Max: engine.FromEpochMillis(s.MaxDate),
	}
	c.current = c.mode.Pin(engine.FromEpochMillis(s.CurrentDate))
	c.refresh()

	c.log.Debug(config.MsgStateRestored,
		config.LogKeyDate, c.current.String(),
		config.LogKeyDayShown, s.DayShown,
		config.LogKeyYearShown, s.YearShown,
	)
	return s.HostState
}
