package venues

import (
	"context"

	"staybook/internal/app/dto"
	"staybook/internal/domain/discovery"
	"staybook/internal/domain/venue"
)

const searchVenuesKey = "venues.search"

// SearchVenuesQuery filters and orders the venue collection. Criteria and
// sort key come in already constructed by the transport layer; the engine
// never reads ambient state.
type SearchVenuesQuery struct {
	Term     string
	Criteria discovery.Criteria
	Sort     discovery.SortKey
}

func (q SearchVenuesQuery) Key() string { return searchVenuesKey }

type SearchVenuesHandler struct {
	Venues venue.Repository
}

func (h *SearchVenuesHandler) Handle(ctx context.Context, q SearchVenuesQuery) (dto.VenueList, error) {
	all, err := h.Venues.All(ctx)
	if err != nil {
		return dto.VenueList{}, err
	}
	filtered := discovery.FilterVenues(all, q.Term, q.Criteria)
	return dto.MapVenueList(discovery.SortVenues(filtered, q.Sort)), nil
}
