// Package calendar turns a sequence of day clicks into a candidate date
// range. The machine is a pure reducer over an explicit state value, so a
// host can drive it from any UI and unit-test it without one.
package calendar

import (
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/venue"
)

// Phase tags the selection state.
type Phase string

const (
	PhaseNone            Phase = "NONE"
	PhaseCheckInSelected Phase = "CHECK_IN_SELECTED"
	PhaseRangeComplete   Phase = "RANGE_COMPLETE"
)

// Selection is the state value owned by one venue-detail view. RangeComplete
// is terminal for display only: any further accepted click restarts the
// selection.
type Selection struct {
	Phase    Phase
	CheckIn  time.Time
	CheckOut time.Time
}

// NewSelection starts with nothing selected.
func NewSelection() Selection {
	return Selection{Phase: PhaseNone}
}

// Seeded resumes a selection from an externally supplied pair, e.g. when
// editing an existing choice. A lone check-in seeds a partial selection;
// an ordered pair seeds a complete one; anything else falls back to none.
func Seeded(checkIn, checkOut time.Time) Selection {
	ci, co := daterange.Day(checkIn), daterange.Day(checkOut)
	switch {
	case ci.IsZero():
		return NewSelection()
	case co.IsZero() || !co.After(ci):
		return Selection{Phase: PhaseCheckInSelected, CheckIn: ci}
	default:
		return Selection{Phase: PhaseRangeComplete, CheckIn: ci, CheckOut: co}
	}
}

// Range returns the selected range; valid only once the phase is
// RangeComplete.
func (s Selection) Range() daterange.DateRange {
	return daterange.DateRange{CheckIn: s.CheckIn, CheckOut: s.CheckOut}
}

// Changed is the selection event emitted to the host after an accepted
// click, as ISO yyyy-mm-dd strings with "" for an unset endpoint.
type Changed struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// Rules decide which days accept a click. Floor is the first selectable
// day (typically today); Bookings disable their occupied nights using the
// same half-open rule as the availability engine, so a checkout day stays
// selectable as a new check-in.
type Rules struct {
	Floor    time.Time
	Bookings []venue.Booking
}

// Disabled reports whether d rejects clicks: below the floor, or an
// occupied night of an existing booking.
func (r Rules) Disabled(d time.Time) bool {
	d = daterange.Day(d)
	if !r.Floor.IsZero() && d.Before(daterange.Day(r.Floor)) {
		return true
	}
	return !availability.IsAvailable(r.Bookings, daterange.DateRange{
		CheckIn:  d,
		CheckOut: d.AddDate(0, 0, 1),
	})
}

// OnDayClick applies one day click to the selection. It returns the next
// state, the event to emit, and whether the click was accepted; clicks on
// disabled days leave the state untouched.
func OnDayClick(s Selection, d time.Time, rules Rules) (Selection, Changed, bool) {
	d = daterange.Day(d)
	if d.IsZero() || rules.Disabled(d) {
		return s, Changed{}, false
	}

	switch s.Phase {
	case PhaseCheckInSelected:
		if !d.After(s.CheckIn) {
			// Clicking on or before the pending check-in restarts with d
			// as the new check-in.
			next := Selection{Phase: PhaseCheckInSelected, CheckIn: d}
			return next, next.emit(), true
		}
		next := Selection{Phase: PhaseRangeComplete, CheckIn: s.CheckIn, CheckOut: d}
		return next, next.emit(), true
	default:
		// From none or from a completed range: start over, clearing any
		// prior checkout.
		next := Selection{Phase: PhaseCheckInSelected, CheckIn: d}
		return next, next.emit(), true
	}
}

func (s Selection) emit() Changed {
	return Changed{
		CheckIn:  daterange.FormatISO(s.CheckIn),
		CheckOut: daterange.FormatISO(s.CheckOut),
	}
}

// DayClass is a day's render classification. It styles the grid and never
// feeds back into the transition rules.
type DayClass string

const (
	DayDisabled DayClass = "DISABLED"
	DayEndpoint DayClass = "ENDPOINT"
	DayInRange  DayClass = "IN_RANGE"
	DayNormal   DayClass = "NORMAL"
)

// Classify resolves a day's class with precedence
// disabled > selected endpoint > inside the open range > normal.
// "Inside" excludes both endpoints.
func Classify(s Selection, d time.Time, rules Rules) DayClass {
	d = daterange.Day(d)
	switch {
	case rules.Disabled(d):
		return DayDisabled
	case isEndpoint(s, d):
		return DayEndpoint
	case insideOpenRange(s, d):
		return DayInRange
	default:
		return DayNormal
	}
}

func isEndpoint(s Selection, d time.Time) bool {
	switch s.Phase {
	case PhaseCheckInSelected:
		return d.Equal(s.CheckIn)
	case PhaseRangeComplete:
		return d.Equal(s.CheckIn) || d.Equal(s.CheckOut)
	default:
		return false
	}
}

func insideOpenRange(s Selection, d time.Time) bool {
	if s.Phase != PhaseRangeComplete {
		return false
	}
	return d.After(s.CheckIn) && d.Before(s.CheckOut)
}
