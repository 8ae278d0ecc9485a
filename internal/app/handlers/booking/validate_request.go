package booking

import (
	"context"
	"time"

	"staybook/internal/app/dto"
	"staybook/internal/domain/availability"
	"staybook/internal/domain/venue"
)

const validateBookingKey = "booking.validate"

// ValidateBookingQuery runs the client-side pre-validation of a booking
// request against the venue's last-known booking list. No submission
// happens here; the external service remains the final arbiter of races.
type ValidateBookingQuery struct {
	Request venue.BookingRequest
}

func (q ValidateBookingQuery) Key() string { return validateBookingKey }

type ValidateBookingHandler struct {
	Venues venue.Repository

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func (h *ValidateBookingHandler) Handle(ctx context.Context, q ValidateBookingQuery) (dto.BookingQuote, error) {
	v, err := h.Venues.ByID(ctx, q.Request.VenueID, true)
	if err != nil {
		return dto.BookingQuote{}, err
	}

	today := time.Now().UTC()
	if h.Now != nil {
		today = h.Now().UTC()
	}

	res, err := availability.ValidateRequest(v, q.Request, today)
	if err != nil {
		return dto.BookingQuote{}, err
	}
	return dto.MapBookingQuote(res), nil
}
