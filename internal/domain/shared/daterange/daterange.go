package daterange

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidRange = errors.New("daterange: checkout must be after checkin")
)

// ISO is the wire format for calendar dates exchanged with hosts.
const ISO = "2006-01-02"

// DateRange represents a half-open interval [CheckIn, CheckOut): the
// checkout day itself is not occupied, which is what makes back-to-back
// stays possible.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// New builds a day-granular range and validates its ordering.
func New(checkIn, checkOut time.Time) (DateRange, error) {
	dr := DateRange{CheckIn: Day(checkIn), CheckOut: Day(checkOut)}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

// FromDays builds a range without validating; degenerate ranges are
// representable and simply never overlap themselves.
func FromDays(checkIn, checkOut time.Time) DateRange {
	return DateRange{CheckIn: Day(checkIn), CheckOut: Day(checkOut)}
}

func (dr DateRange) Validate() error {
	if dr.CheckIn.IsZero() || dr.CheckOut.IsZero() {
		return ErrInvalidRange
	}
	if !dr.CheckOut.After(dr.CheckIn) {
		return ErrInvalidRange
	}
	return nil
}

// Nights counts occupied nights, never reporting fewer than one.
func (dr DateRange) Nights() int {
	nights := int(math.Ceil(dr.CheckOut.Sub(dr.CheckIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// Overlaps reports whether two half-open ranges share at least one night.
// Ranges that merely touch on an endpoint do not overlap.
func (dr DateRange) Overlaps(other DateRange) bool {
	return dr.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(dr.CheckOut)
}

// ContainsDay reports whether d falls on an occupied night of the range.
func (dr DateRange) ContainsDay(d time.Time) bool {
	d = Day(d)
	return !d.Before(dr.CheckIn) && d.Before(dr.CheckOut)
}

// Adjacent reports whether the ranges touch on exactly one endpoint.
func (dr DateRange) Adjacent(other DateRange) bool {
	return dr.CheckOut.Equal(other.CheckIn) || dr.CheckIn.Equal(other.CheckOut)
}

// Day truncates any time-of-day component, anchoring t at midnight UTC.
// Comparing untruncated instants produces spurious non-overlaps, so every
// date entering the engine goes through here first.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay compares two instants at day granularity.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// FormatISO renders a date as yyyy-mm-dd, or "" for the zero time.
func FormatISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return Day(t).Format(ISO)
}

// ParseISO parses a yyyy-mm-dd date; "" parses to the zero time.
func ParseISO(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(ISO, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
