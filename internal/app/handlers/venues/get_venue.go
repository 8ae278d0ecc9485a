package venues

import (
	"context"

	"staybook/internal/app/dto"
	"staybook/internal/domain/venue"
)

const getVenueKey = "venues.get"

// GetVenueQuery reads a single venue, optionally expanding its committed
// bookings the way the external service does on request.
type GetVenueQuery struct {
	VenueID      string
	WithBookings bool
}

func (q GetVenueQuery) Key() string { return getVenueKey }

type GetVenueHandler struct {
	Venues venue.Repository
}

func (h *GetVenueHandler) Handle(ctx context.Context, q GetVenueQuery) (dto.VenueDetail, error) {
	v, err := h.Venues.ByID(ctx, q.VenueID, q.WithBookings)
	if err != nil {
		return dto.VenueDetail{}, err
	}
	return dto.MapVenueDetail(v, q.WithBookings), nil
}
