// Package availability decides whether a candidate date range can be
// booked against a venue's committed reservations and runs the full
// client-side pre-validation of a booking request. It performs no I/O:
// the external service stays the final arbiter of racing submissions.
package availability

import (
	"fmt"
	"time"

	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/venue"
)

// IsAvailable reports whether candidate conflicts with none of the
// existing bookings. Half-open semantics: a candidate checking in on
// another booking's checkout day is available. An empty booking list is
// always available. Bookings with reversed or zero-length intervals never
// conflict under the same rule.
func IsAvailable(existing []venue.Booking, candidate daterange.DateRange) bool {
	for _, b := range existing {
		if daterange.FromDays(b.DateFrom, b.DateTo).Overlaps(candidate) {
			return false
		}
	}
	return true
}

// Quote is the derived pricing for a validated request.
// Total = Price x Nights x Guests: the nightly rate is per guest, and this
// is the only total formula used anywhere in the engine.
type Quote struct {
	Nights int     `json:"nights"`
	Total  float64 `json:"total"`
}

// PriceQuote prices a request against a venue's nightly rate. Nights is
// the ceiling of the stay in days, floored at one night.
func PriceQuote(v venue.Venue, req venue.BookingRequest) Quote {
	nights := daterange.FromDays(req.DateFrom, req.DateTo).Nights()
	return Quote{
		Nights: nights,
		Total:  v.Price * float64(nights) * float64(req.Guests),
	}
}

// ValidatedRequest is a request that passed every check, carrying its
// quote and day-truncated dates.
type ValidatedRequest struct {
	Request venue.BookingRequest
	Quote   Quote
}

// ValidateRequest runs the pre-submission checks in fixed priority order
// and returns the first failure as a *ValidationError; it never reports
// more than one. today is compared at day granularity and is itself a
// valid check-in day.
func ValidateRequest(v venue.Venue, req venue.BookingRequest, today time.Time) (ValidatedRequest, error) {
	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return ValidatedRequest{}, ErrMissingDates
	}

	from := daterange.Day(req.DateFrom)
	to := daterange.Day(req.DateTo)
	if from.Before(daterange.Day(today)) {
		return ValidatedRequest{}, ErrPastCheckIn
	}
	if !to.After(from) {
		return ValidatedRequest{}, ErrInvalidOrder
	}
	if req.Guests < 1 || req.Guests > v.MaxGuests {
		return ValidatedRequest{}, ErrGuestCountExceeded
	}
	if !IsAvailable(v.Bookings, daterange.DateRange{CheckIn: from, CheckOut: to}) {
		return ValidatedRequest{}, ErrDateConflict
	}

	req.DateFrom = from
	req.DateTo = to
	return ValidatedRequest{Request: req, Quote: PriceQuote(v, req)}, nil
}

// RemoteConflict maps a conflict reported by the external service after
// submission (two clients racing for the same dates) onto the local
// DateConflict vocabulary, so hosts render one message for both cases.
func RemoteConflict(cause error) error {
	return &ValidationError{
		Kind:  KindDateConflict,
		msg:   "availability: dates taken by a concurrent booking",
		cause: cause,
	}
}

// RemoteError wraps any other failure of the external service (transport,
// serialization) without translating it into a field-level failure.
func RemoteError(cause error) error {
	return &ValidationError{
		Kind:  KindRemoteError,
		msg:   fmt.Sprintf("availability: remote service failed: %v", cause),
		cause: cause,
	}
}
